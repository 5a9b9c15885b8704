package spriterator

// Config includes settings for sprite sheet generation
type Config struct {
	// in pixels, per output sheet
	MaxWidth  uint
	MaxHeight uint

	// optional per-image resize targets in pixels.
	// Zero keeps the natural size; setting one axis keeps the aspect ratio.
	ImageWidth  uint
	ImageHeight uint

	// file extensions to collect while scanning, without the dot
	Extensions []string
}

// DefaultConfig returns a generation config with default settings.
func DefaultConfig() *Config {
	return &Config{
		MaxWidth:   1024,
		MaxHeight:  1024,
		Extensions: []string{"png", "webp", "jpg", "jpeg", "gif", "bmp", "tiff"},
	}
}
