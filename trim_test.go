package spriterator

import (
	"github.com/stretchr/testify/assert"

	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

// opaqueRect returns a w x h source, transparent except for the given
// rectangle which is filled with opaque red.
func opaqueRect(w, h int, r image.Rectangle) *SourceImage {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	return &SourceImage{Path: "test.png", Image: img, hasAlpha: true}
}

func TestTrim(t *testing.T) {
	src := opaqueRect(10, 10, image.Rect(2, 2, 8, 8))

	b, err := trim(src)

	assert.Nil(t, err)
	assert.Equal(t, Bounds{X: 2, Y: 2, Width: 6, Height: 6}, b)
}

func TestTrimOpaqueImage(t *testing.T) {
	// alpha present but every pixel opaque: nothing to trim
	src := opaqueRect(7, 3, image.Rect(0, 0, 7, 3))

	b, err := trim(src)

	assert.Nil(t, err)
	assert.Equal(t, Bounds{X: 0, Y: 0, Width: 7, Height: 3}, b)
}

func TestTrimNoAlphaChannel(t *testing.T) {
	// a source whose decoded color model carries no alpha (eg. JPEG)
	// keeps its full rectangle even though the buffer reads as alpha 0
	src := &SourceImage{
		Path:     "test.jpg",
		Image:    image.NewRGBA(image.Rect(0, 0, 5, 4)),
		hasAlpha: false,
	}

	b, err := trim(src)

	assert.Nil(t, err)
	assert.Equal(t, Bounds{X: 0, Y: 0, Width: 5, Height: 4}, b)
}

func TestTrimFullyTransparent(t *testing.T) {
	src := &SourceImage{
		Path:     "blank.png",
		Image:    image.NewRGBA(image.Rect(0, 0, 50, 50)),
		hasAlpha: true,
	}

	_, err := trim(src)

	assert.NotNil(t, err)
	assert.True(t, errors.Is(err, ErrTransparentImage))
	assert.True(t, strings.Contains(err.Error(), "blank.png"))
}

func TestTrimSinglePixel(t *testing.T) {
	src := opaqueRect(10, 10, image.Rect(4, 7, 5, 8))

	b, err := trim(src)

	assert.Nil(t, err)
	assert.Equal(t, Bounds{X: 4, Y: 7, Width: 1, Height: 1}, b)
}

func TestTrimIdempotent(t *testing.T) {
	src := opaqueRect(10, 10, image.Rect(2, 2, 8, 8))

	b, err := trim(src)
	assert.Nil(t, err)

	// crop to the trimmed bounds & trim again: nothing more to remove
	cropped := image.NewRGBA(image.Rect(0, 0, b.Width, b.Height))
	for y := 0; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			cropped.SetRGBA(x, y, src.Image.RGBAAt(x+b.X, y+b.Y))
		}
	}

	again, err := trim(&SourceImage{Path: "crop.png", Image: cropped, hasAlpha: true})
	assert.Nil(t, err)
	assert.Equal(t, Bounds{X: 0, Y: 0, Width: b.Width, Height: b.Height}, again)
}
