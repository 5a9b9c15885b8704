package spriterator

import "fmt"

// Bounds is a rectangle within a source image, in pixels.
type Bounds struct {
	X      int
	Y      int
	Width  int
	Height int
}

// trim returns the smallest rectangle of `src` containing every pixel
// with non-zero alpha. Pixels outside the rectangle are simply never
// copied to a sheet; the source is not modified.
//
// Images whose color model has no alpha channel (eg. JPEG) keep their
// full rectangle without a pixel scan. A fully transparent image is an
// error: silently dropping it would shift every later frame index.
func trim(src *SourceImage) (Bounds, error) {
	w, h := src.Width(), src.Height()

	if !src.hasAlpha {
		return Bounds{X: 0, Y: 0, Width: w, Height: h}, nil
	}

	minX, minY := w, h
	maxX, maxY := -1, -1

	pix := src.Image.Pix
	for y := 0; y < h; y++ {
		row := y * src.Image.Stride
		for x := 0; x < w; x++ {
			if pix[row+x*4+3] == 0 {
				continue
			}
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			maxY = y
		}
	}

	if maxX < 0 {
		return Bounds{}, fmt.Errorf("%s: %w", src.Path, ErrTransparentImage)
	}

	return Bounds{
		X:      minX,
		Y:      minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}, nil
}
