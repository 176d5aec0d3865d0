// Package encode encodes variants as JSON or YAML.
//
// # JSON
//
//	s, err := encode.ToJSON(v) // {"a": [1, 2.0], "b": "x\/y"}
//
// Object members are written in key order. Strings escape '/' as "\/" and
// control bytes as \u00XX; other bytes are copied verbatim.
//
// Floats use the shortest digits that parse back to the same value, but
// unlike the default decimal rendering they always carry a fraction or an
// exponent: 10.0 is written "10.0", not "10", so that it reads back as a
// Float rather than an integer.
//
// Undefined, Function and non-finite Float values cannot be encoded and
// yield ErrEncoding.
//
// # Options
//
//	err := encode.Encode(v, os.Stdout,
//		encode.EncodeIndent(2),
//		encode.EncodeColors(encode.NewColors()),
//	)
//
// EncodeFormat(format.YAMLFormat) writes YAML instead.
//
// # Related Packages
//
//   - github.com/signadot/vconf/parse - Parse text into variants
//   - github.com/signadot/vconf/variant - The Variant value tree
package encode
