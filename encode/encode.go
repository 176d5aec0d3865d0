package encode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/signadot/vconf/format"
	"github.com/signadot/vconf/token"
	"github.com/signadot/vconf/variant"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth, indent int

	format format.Format

	Color func(variant.Type, ColorAttr, string) string
}

// Encode writes v to w. Nothing is written if v holds a value with no
// encoding: Undefined, a Function, or a NaN or infinite Float.
func Encode(v *variant.Variant, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	var (
		d   []byte
		err error
	)
	switch es.format {
	case format.JSONFormat:
		d, err = appendValue(nil, v, es)
	case format.YAMLFormat:
		d, err = encodeYAML(v, es)
	default:
		err = fmt.Errorf("%w: cannot encode %s", ErrEncoding, es.format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

// ToJSON returns the single line JSON encoding of v.
func ToJSON(v *variant.Variant) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func (es *EncState) color(d []byte, t variant.Type, a ColorAttr, s string) []byte {
	if es.Color == nil {
		return append(d, s...)
	}
	return append(d, es.Color(t, a, s)...)
}

func appendValue(d []byte, v *variant.Variant, es *EncState) ([]byte, error) {
	t := v.Type()
	switch t {
	case variant.NullType:
		return es.color(d, t, ValueColor, "null"), nil
	case variant.BoolType:
		b, _ := v.Bool()
		return es.color(d, t, ValueColor, strconv.FormatBool(b)), nil
	case variant.SignedIntegerType:
		i, _ := v.Int()
		return es.color(d, t, ValueColor, strconv.FormatInt(i, 10)), nil
	case variant.UnsignedIntegerType:
		u, _ := v.Uint()
		return es.color(d, t, ValueColor, strconv.FormatUint(u, 10)), nil
	case variant.FloatType:
		f, _ := v.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("%w: %v has no JSON form", ErrEncoding, f)
		}
		return es.color(d, t, ValueColor, string(AppendFloat(nil, f))), nil
	case variant.StringType:
		s, _ := v.Str()
		return es.color(d, t, ValueColor, token.Quote(s)), nil
	case variant.ArrayType:
		return appendArray(d, v, es)
	case variant.ObjectType:
		return appendObject(d, v, es)
	}
	return nil, fmt.Errorf("%w: %s has no JSON form", ErrEncoding, t)
}

func appendArray(d []byte, v *variant.Variant, es *EncState) ([]byte, error) {
	t := variant.ArrayType
	d = es.color(d, t, SepColor, "[")
	if v.Len() == 0 {
		return es.color(d, t, SepColor, "]"), nil
	}
	es.depth++
	var err error
	for i, elt := range v.Elements() {
		if i > 0 {
			d = es.sep(d, t)
		}
		d = es.newline(d)
		d, err = appendValue(d, elt, es)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i, err)
		}
	}
	es.depth--
	d = es.newline(d)
	return es.color(d, t, SepColor, "]"), nil
}

func appendObject(d []byte, v *variant.Variant, es *EncState) ([]byte, error) {
	t := variant.ObjectType
	d = es.color(d, t, SepColor, "{")
	if v.Len() == 0 {
		return es.color(d, t, SepColor, "}"), nil
	}
	es.depth++
	var err error
	i := 0
	for k, val := range v.Entries() {
		if i > 0 {
			d = es.sep(d, t)
		}
		i++
		d = es.newline(d)
		d = es.color(d, t, FieldColor, token.Quote(k))
		d = es.color(d, t, SepColor, ":")
		d = append(d, ' ')
		d, err = appendValue(d, val, es)
		if err != nil {
			return nil, fmt.Errorf("member %q: %w", k, err)
		}
	}
	es.depth--
	d = es.newline(d)
	return es.color(d, t, SepColor, "}"), nil
}

func (es *EncState) sep(d []byte, t variant.Type) []byte {
	d = es.color(d, t, SepColor, ",")
	if es.indent == 0 {
		d = append(d, ' ')
	}
	return d
}

func (es *EncState) newline(d []byte) []byte {
	if es.indent == 0 {
		return d
	}
	d = append(d, '\n')
	return append(d, strings.Repeat(" ", es.indent*es.depth)...)
}

// AppendFloat appends the shortest decimal form of f that parses back to f.
// Exponents are used below 1e-6 and from 1e21 on; otherwise the rendering
// always has a fraction, so that "10.0" rather than "10" reads back as a
// Float.
func AppendFloat(d []byte, f float64) []byte {
	abs := math.Abs(f)
	fmtc := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		fmtc = 'e'
	}
	start := len(d)
	d = strconv.AppendFloat(d, f, fmtc, -1, 64)
	if fmtc == 'e' {
		// e-07 -> e-7
		n := len(d)
		if n-start >= 4 && d[n-4] == 'e' && d[n-3] == '-' && d[n-2] == '0' {
			d[n-2] = d[n-1]
			d = d[:n-1]
		}
		return d
	}
	if !bytes.ContainsRune(d[start:], '.') {
		d = append(d, ".0"...)
	}
	return d
}
