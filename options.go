package tokfold

// Option configures a Renderer.
type Option func(*config)

type config struct {
	height   int
	compact  bool
	encoding string
}

func defaultConfig() config {
	return config{compact: true, encoding: "utf-8"}
}

// WithHeight bounds the number of output lines. 0 disables the bound.
func WithHeight(height int) Option {
	return func(cfg *config) {
		cfg.height = height
	}
}

// WithCompact enables or disables compact output. Compact output suppresses
// blank-line padding and the base indentation. The default is compact.
func WithCompact(compact bool) Option {
	return func(cfg *config) {
		cfg.compact = compact
	}
}

// WithEncoding selects the text encoding used for display-width
// measurement and bullet glyphs. The default is "utf-8".
func WithEncoding(encoding string) Option {
	return func(cfg *config) {
		if encoding != "" {
			cfg.encoding = encoding
		}
	}
}
