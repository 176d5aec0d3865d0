package vconf

import (
	"io"
	"strings"

	"github.com/signadot/vconf/encode"
	"github.com/signadot/vconf/libdiff"
	"github.com/signadot/vconf/parse"
	"github.com/signadot/vconf/variant"
)

// FromJSON parses a single strict JSON document from r. On failure it
// returns an Undefined Variant together with the error, never a partial
// tree.
func FromJSON(r io.Reader, opts ...parse.ParseOption) (*variant.Variant, error) {
	res, err := parse.ParseReader(r, opts...)
	if err != nil {
		return variant.Undefined(), err
	}
	return res, nil
}

// FromJSONString is FromJSON over s.
func FromJSONString(s string, opts ...parse.ParseOption) (*variant.Variant, error) {
	return FromJSON(strings.NewReader(s), opts...)
}

// ToJSON returns the JSON encoding of v.
func ToJSON(v *variant.Variant) (string, error) {
	return encode.ToJSON(v)
}

// FromConfigFile parses the config file path. Relative @include paths are
// resolved against includeBase, or the directory of the including file
// when includeBase is empty.
func FromConfigFile(path, includeBase string, opts ...parse.ParseOption) (*variant.Variant, error) {
	if includeBase != "" {
		opts = append(opts, parse.IncludeBase(includeBase))
	}
	res, err := parse.ParseConfigFile(path, opts...)
	if err != nil {
		return variant.Undefined(), err
	}
	return res, nil
}

// FromConfig parses a config document from r.
func FromConfig(r io.Reader, includeBase string, opts ...parse.ParseOption) (*variant.Variant, error) {
	if includeBase != "" {
		opts = append(opts, parse.IncludeBase(includeBase))
	}
	res, err := parse.ParseConfig(r, opts...)
	if err != nil {
		return variant.Undefined(), err
	}
	return res, nil
}

// Get returns the scalar at the dotted path in v coerced to T, or def.
func Get[T variant.Scalar](v *variant.Variant, path string, def T) T {
	return variant.Get(v, path, def)
}

// Diff produces a succinct comparison of from and to. If there are no
// differences, Diff returns nil.
//
// The result may be reversed with [libdiff.Reverse] and applied with
// [Patch].
//
//   - if the types of from and to differ the result is
//     {"!replace": {"from": from, "to": to}}
//
//   - for objects, a member only in to becomes {"!insert": value} and a
//     member only in from becomes {"!delete": value}; equal members are
//     absent and members which differ hold their own diff.
//
//   - arrays are aligned element by element and strings may be diffed
//     by runes when that is shorter than replacing them.
func Diff(from, to *variant.Variant) *variant.Variant {
	return libdiff.Diff(from, to)
}

// Patch applies a diff produced by Diff to doc. doc is not modified.
func Patch(doc, diff *variant.Variant) (*variant.Variant, error) {
	return libdiff.Patch(doc, diff)
}
