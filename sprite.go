package spriterator

import (
	"bytes"
	"image"
	"image/png"
	"os"
)

// Frame is the rectangle one packed image occupies on its sheet.
type Frame struct {
	// Path of the source file this frame was packed from
	Path string

	// placement on the sheet in pixels
	X      int
	Y      int
	Width  int
	Height int
}

// Sprite is one finished sheet: the composed canvas plus the frames
// placed on it, in input order.
type Sprite struct {
	image  *image.RGBA
	frames []Frame
}

// Image returns the composed canvas.
func (s *Sprite) Image() *image.RGBA {
	return s.image
}

// Frames returns the placement of every packed image on this sheet.
func (s *Sprite) Frames() []Frame {
	return s.frames
}

// SavePNG writes the canvas to disk as a PNG.
func (s *Sprite) SavePNG(fpath string) error {
	buff := new(bytes.Buffer)
	err := png.Encode(buff, s.image)
	if err != nil {
		return err
	}
	return os.WriteFile(fpath, buff.Bytes(), 0644)
}
