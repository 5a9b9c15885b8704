package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fogleman/gg"
	yaml "github.com/go-yaml/yaml"
	homedir "github.com/mitchellh/go-homedir"

	"github.com/krchmkn/spriterator"
)

const desc = `Packs a directory of images into sprite sheet(s).

Images are gathered recursively, trimmed of transparent padding and laid out
in rows, left to right, top to bottom. When a sheet would grow past the max
height a new sheet is started. One <output>.<n>.png is written per sheet.`

var cli struct {
	// where to find input images
	Input  string `short:"i" help:"input directory containing images (required)"`
	Output string `short:"o" default:"sprite" help:"base name of output .png sheet files"`

	// optional yaml settings file; explicit flags override it
	Config string `short:"c" help:"yaml config file"`

	// sheet limits in pixels
	MaxWidth  uint `default:"1024" help:"max sheet width in px"`
	MaxHeight uint `default:"1024" help:"max sheet height in px"`

	// optional per-image resize (0 keeps natural size, one axis keeps aspect)
	ImageWidth  uint `help:"resize each image to this width in px"`
	ImageHeight uint `help:"resize each image to this height in px"`

	// which files to pick up while scanning
	Extensions []string `short:"e" help:"file extensions to include (default png,webp,jpg,jpeg,gif,bmp,tiff)"`

	// draw frame rectangles for eyeballing the packing
	Outline bool `help:"also write <output>.<n>.outline.png with frame rectangles drawn"`
}

func main() {
	kong.Parse(
		&cli,
		kong.Name("spriterator"),
		kong.Description(desc),
	)

	if cli.Input == "" {
		panic("input directory is required (-i)")
	}

	input, err := homedir.Expand(cli.Input)
	if err != nil {
		panic(err)
	}
	output, err := homedir.Expand(cli.Output)
	if err != nil {
		panic(err)
	}

	cfg, err := buildConfig()
	if err != nil {
		panic(err)
	}

	sprites, err := spriterator.New(input, cfg).Generate()
	if err != nil {
		panic(err)
	}

	for i, sprite := range sprites {
		fname := fmt.Sprintf("%s.%d.png", output, i+1)
		err = sprite.SavePNG(fname)
		if err != nil {
			panic(err)
		}
		b := sprite.Image().Bounds()
		fmt.Printf("wrote %s %dx%d (%d frames)\n", fname, b.Dx(), b.Dy(), len(sprite.Frames()))

		if cli.Outline {
			err = saveOutline(fmt.Sprintf("%s.%d.outline.png", output, i+1), sprite)
			if err != nil {
				panic(err)
			}
		}
	}
}

// buildConfig merges the optional yaml config file with cli flags.
// Flags the user set explicitly win over file values.
func buildConfig() (*spriterator.Config, error) {
	cfg := &spriterator.Config{
		MaxWidth:    cli.MaxWidth,
		MaxHeight:   cli.MaxHeight,
		ImageWidth:  cli.ImageWidth,
		ImageHeight: cli.ImageHeight,
		Extensions:  cli.Extensions,
	}
	if cli.Config == "" {
		return cfg, nil
	}

	fpath, err := homedir.Expand(cli.Config)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	fileCfg := &spriterator.Config{}
	err = yaml.Unmarshal(data, fileCfg)
	if err != nil {
		return nil, err
	}

	if fileCfg.MaxWidth > 0 && cli.MaxWidth == 1024 {
		cfg.MaxWidth = fileCfg.MaxWidth
	}
	if fileCfg.MaxHeight > 0 && cli.MaxHeight == 1024 {
		cfg.MaxHeight = fileCfg.MaxHeight
	}
	if fileCfg.ImageWidth > 0 && cli.ImageWidth == 0 {
		cfg.ImageWidth = fileCfg.ImageWidth
	}
	if fileCfg.ImageHeight > 0 && cli.ImageHeight == 0 {
		cfg.ImageHeight = fileCfg.ImageHeight
	}
	if len(fileCfg.Extensions) > 0 && len(cli.Extensions) == 0 {
		cfg.Extensions = fileCfg.Extensions
	}

	return cfg, nil
}

// saveOutline writes a copy of the sheet with each frame's rectangle
// stroked on top.
func saveOutline(fpath string, sprite *spriterator.Sprite) error {
	ctx := gg.NewContextForImage(sprite.Image())
	ctx.SetRGBA(1, 0, 0, 1)
	ctx.SetLineWidth(1)

	for _, f := range sprite.Frames() {
		ctx.DrawRectangle(float64(f.X), float64(f.Y), float64(f.Width), float64(f.Height))
		ctx.Stroke()
	}

	return ctx.SavePNG(fpath)
}
