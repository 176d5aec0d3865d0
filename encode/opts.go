package encode

import "github.com/signadot/vconf/format"

type EncodeOption func(*EncState)

// EncodeFormat selects the output format: JSON (the default) or YAML.
func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// EncodeIndent writes one member or element per line, indented n spaces per
// level. 0 keeps everything on one line.
func EncodeIndent(n int) EncodeOption {
	return func(es *EncState) { es.indent = n }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
