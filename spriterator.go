/* Package spriterator composes directories of small images into a few
large sprite sheet canvases.

Images are collected recursively, decoded in parallel, trimmed of
transparent padding, then shelf-packed left to right into rows and top
to bottom into sheets. A new sheet is started whenever the configured
max height would be exceeded. The whole pipeline is deterministic:
identical inputs and config always produce identical sheets.
*/
package spriterator

// Spriterator generates sprite sheets from a directory of images.
type Spriterator struct {
	dir string
	cfg *Config
}

// New returns a Spriterator reading images from `dir`.
// A nil config uses defaults.
func New(dir string, cfg *Config) *Spriterator {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if len(cfg.Extensions) == 0 {
		cfg.Extensions = DefaultConfig().Extensions
	}
	return &Spriterator{dir: dir, cfg: cfg}
}

// Generate scans, decodes, trims, packs and composes the images under
// the configured directory, returning one Sprite per finished sheet.
//
// The first failure anywhere in the pipeline aborts the whole call and
// is returned naming the offending file; no partial sheet list is ever
// returned, so callers can safely correlate outputs by index.
func (s *Spriterator) Generate() ([]*Sprite, error) {
	if s.cfg.MaxWidth == 0 || s.cfg.MaxHeight == 0 {
		return nil, ErrInvalidConfig
	}

	paths, err := findImages(s.dir, s.cfg.Extensions)
	if err != nil {
		return nil, err
	}
	if len(paths) == 0 {
		return nil, ErrNoImages
	}

	// decode completion order varies run to run; findImages returned
	// sorted paths and decodeImages fills slots by index, so from here
	// on everything is in stable path order.
	sources, err := decodeImages(paths, s.cfg)
	if err != nil {
		return nil, err
	}

	bounds := make([]Bounds, len(sources))
	entries := make([]*entry, len(sources))
	for i, src := range sources {
		b, err := trim(src)
		if err != nil {
			return nil, err
		}
		bounds[i] = b
		entries[i] = &entry{index: i, width: b.Width, height: b.Height}
	}

	sheets, err := pack(entries, int(s.cfg.MaxWidth), int(s.cfg.MaxHeight))
	if err != nil {
		return nil, err
	}

	canvases := render(sheets, sources, bounds)

	sprites := make([]*Sprite, len(sheets))
	for i, sh := range sheets {
		frames := []Frame{}
		for _, r := range sh.rows {
			for _, e := range r.entries {
				frames = append(frames, Frame{
					Path:   sources[e.index].Path,
					X:      e.x,
					Y:      e.y,
					Width:  e.width,
					Height: e.height,
				})
			}
		}
		sprites[i] = &Sprite{image: canvases[i], frames: frames}
	}

	return sprites, nil
}
