package spriterator

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/draw"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	// register decoders with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/nfnt/resize"
	"golang.org/x/sync/errgroup"
)

// SourceImage is one decoded input, held in RGBA form.
type SourceImage struct {
	// Path of the file this image was decoded from, relative paths
	// as given to the scanner. Used as the stable sort key.
	Path string

	// Image is the decoded pixel data.
	Image *image.RGBA

	// hasAlpha records whether the decoded color model carries an
	// alpha channel at all (a JPEG cannot, a PNG can).
	hasAlpha bool
}

// Width of the image in pixels
func (s *SourceImage) Width() int {
	return s.Image.Bounds().Dx()
}

// Height of the image in pixels
func (s *SourceImage) Height() int {
	return s.Image.Bounds().Dy()
}

// findImages walks the given dir collecting files with one of the given
// extensions. Results are sorted by path so the caller gets the same
// order every run regardless of filesystem iteration order.
func findImages(dir string, extensions []string) ([]string, error) {
	found := []string{}

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
		for _, e := range extensions {
			if ext == strings.ToLower(e) {
				found = append(found, path)
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(found)
	return found, nil
}

// decodeImages reads & decodes all given files in parallel.
// Each worker writes into its own slot of a preallocated slice, so the
// output order matches the input order no matter which decode finishes
// first and no locking is needed.
func decodeImages(paths []string, cfg *Config) ([]*SourceImage, error) {
	srcs := make([]*SourceImage, len(paths))

	g := errgroup.Group{}
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			src, err := decodeImage(path)
			if err != nil {
				return err
			}
			srcs[i] = resizeImage(src, cfg)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return srcs, nil
}

// decodeImage decodes a single file into a SourceImage.
func decodeImage(path string) (*SourceImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	in, _, err := image.Decode(bytes.NewBuffer(data))
	if errors.Is(err, image.ErrFormat) {
		return nil, fmt.Errorf("%s: %w", path, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", path, err, ErrDecodeFailed)
	}

	return &SourceImage{
		Path:     path,
		Image:    toRGBA(in),
		hasAlpha: hasAlpha(in),
	}, nil
}

// hasAlpha returns whether the decoded image's color model can encode
// transparency at all.
func hasAlpha(in image.Image) bool {
	switch in.(type) {
	case *image.YCbCr, *image.Gray, *image.Gray16, *image.CMYK:
		return false
	}
	return true
}

// toRGBA copies the decoded image into an RGBA buffer so the rest of the
// pipeline works on one representation.
func toRGBA(in image.Image) *image.RGBA {
	if rgba, ok := in.(*image.RGBA); ok {
		return rgba
	}
	b := in.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), in, b.Min, draw.Src)
	return out
}

// resizeImage scales the source to the configured target size (if any).
// Giving resize a zero for one axis keeps the aspect ratio.
func resizeImage(src *SourceImage, cfg *Config) *SourceImage {
	if cfg.ImageWidth == 0 && cfg.ImageHeight == 0 {
		return src
	}

	scaled := resize.Resize(cfg.ImageWidth, cfg.ImageHeight, src.Image, resize.Lanczos3)
	src.Image = toRGBA(scaled)
	return src
}
