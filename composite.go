package spriterator

import (
	"image"
	"image/draw"
)

// render allocates one canvas per sheet, sized exactly to the sheet,
// and copies every entry's trimmed pixel region to its offset.
// draw.Src replaces destination pixels outright (alpha included, no
// blending); the layout plan guarantees destinations never overlap.
func render(sheets []*sheet, sources []*SourceImage, bounds []Bounds) []*image.RGBA {
	canvases := make([]*image.RGBA, len(sheets))

	for i, sh := range sheets {
		canvas := image.NewRGBA(image.Rect(0, 0, sh.width, sh.height))

		for _, r := range sh.rows {
			for _, e := range r.entries {
				src := sources[e.index]
				b := bounds[e.index]

				draw.Draw(
					canvas,
					image.Rect(e.x, e.y, e.x+e.width, e.y+e.height),
					src.Image,
					src.Image.Bounds().Min.Add(image.Pt(b.X, b.Y)),
					draw.Src,
				)
			}
		}

		canvases[i] = canvas
	}

	return canvases
}
