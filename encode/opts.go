package encode

import "github.com/signadot/toml-format/go-toml/format"

type EncodeOption func(*EncState)

// WithFlags replaces the format flag set (format.DefaultFlags otherwise).
func WithFlags(f format.Flags) EncodeOption {
	return func(es *EncState) { es.flags = f }
}

// WithIndent sets the per-level indent unit (four spaces otherwise).
func WithIndent(s string) EncodeOption {
	return func(es *EncState) { es.indentStr = s }
}

// EncodeColors enables terminal colorization of the output.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c != nil {
			es.Color = c.Color
		}
	}
}

// FlagsFromOpts extracts the effective flag set from encode options.
func FlagsFromOpts(opts ...EncodeOption) format.Flags {
	es := &EncState{flags: format.DefaultFlags}
	for _, opt := range opts {
		opt(es)
	}
	return es.flags
}
