package tui

// Options are viewer defaults, typically filled from wkbscope.toml.
type Options struct {
	// ZoomStep is the multiplicative zoom factor per keypress.
	ZoomStep float64
	// MaxDepth overrides the decoder's nesting limit when above zero.
	MaxDepth int
	// TreeHeight caps the structure table, in rows.
	TreeHeight int

	ShowPoints bool
	ShowLines  bool
	ShowPolys  bool
}

func DefaultOptions() Options {
	return Options{
		ZoomStep:   1.2,
		TreeHeight: 12,
		ShowPoints: true,
		ShowLines:  true,
		ShowPolys:  true,
	}
}
