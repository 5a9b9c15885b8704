package spriterator

import "errors"

var (
	// ErrInvalidConfig means a max sheet dimension was zero.
	ErrInvalidConfig = errors.New("max sheet dimensions must be positive")

	// ErrTransparentImage means an input image has no pixel with non-zero
	// alpha. Such images are rejected rather than dropped so output frames
	// always line up with the scanned inputs.
	ErrTransparentImage = errors.New("image is fully transparent")

	// ErrDecodeFailed wraps an error from an image decoder.
	ErrDecodeFailed = errors.New("failed to decode image")

	// ErrUnsupportedFormat means no registered decoder recognised the file.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrNoImages means the scanned directory held no matching files.
	ErrNoImages = errors.New("no images found")
)
