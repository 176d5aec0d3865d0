package eval

import (
	"fmt"
	"os"
	"strings"

	"github.com/signadot/vconf/encode"
	"github.com/signadot/vconf/libdiff"
	"github.com/signadot/vconf/parse"
	"github.com/signadot/vconf/variant"
)

func getenv(arg *variant.Variant) (*variant.Variant, error) {
	name, err := arg.Str()
	if err != nil {
		return nil, fmt.Errorf("getenv: %w", err)
	}
	return variant.FromString(os.Getenv(strings.TrimSpace(name))), nil
}

func tojson(arg *variant.Variant) (*variant.Variant, error) {
	s, err := encode.ToJSON(arg)
	if err != nil {
		return nil, fmt.Errorf("tojson: %w", err)
	}
	return variant.FromString(s), nil
}

func fromjson(arg *variant.Variant) (*variant.Variant, error) {
	s, err := arg.Str()
	if err != nil {
		return nil, fmt.Errorf("fromjson: %w", err)
	}
	res, err := parse.Parse([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("fromjson: %w", err)
	}
	return res, nil
}

// diff takes a two element array and yields the diff from the first to
// the second, or null when they are equal.
func diff(arg *variant.Variant) (*variant.Variant, error) {
	if arg.Type() != variant.ArrayType || arg.Len() != 2 {
		return nil, fmt.Errorf("diff: %w: want 2 arguments", variant.ErrShape)
	}
	from, _ := arg.At(0)
	to, _ := arg.At(1)
	d := libdiff.Diff(from, to)
	if d == nil {
		return variant.Null(), nil
	}
	return d, nil
}
