package libdiff

import (
	"fmt"
	"strings"

	"github.com/signadot/vconf/variant"
)

// MakeDiff returns the diff replacing from with to. A nil or Undefined from
// makes an insertion, a nil or Undefined to a deletion.
func MakeDiff(from, to *variant.Variant) *variant.Variant {
	switch {
	case from.IsUndefined():
		return op(InsertOp, to.Clone())
	case to.IsUndefined():
		return op(DeleteOp, from.Clone())
	default:
		return replace(from, to)
	}
}

// replace builds a replacement even when a side is Undefined, which array
// elements padded by Elem may be.
func replace(from, to *variant.Variant) *variant.Variant {
	return op(ReplaceOp, variant.FromMap(map[string]*variant.Variant{
		"from": from.Clone(),
		"to":   to.Clone(),
	}))
}

func op(name string, arg *variant.Variant) *variant.Variant {
	return variant.FromMap(map[string]*variant.Variant{name: arg})
}

// Op splits a diff into its operation name and argument.
func Op(diff *variant.Variant) (string, *variant.Variant, error) {
	if diff.Type() != variant.ObjectType || diff.Len() != 1 {
		return "", nil, fmt.Errorf("%w: expected a single member object, got %s", ErrDiff, diff.Type())
	}
	for name, arg := range diff.Entries() {
		if !strings.HasPrefix(name, "!") {
			return "", nil, fmt.Errorf("%w: unknown operation %q", ErrDiff, name)
		}
		return name, arg, nil
	}
	panic("unreachable")
}

func replaceArgs(arg *variant.Variant) (from, to *variant.Variant, err error) {
	from, err = arg.Get("from")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrDiff, ReplaceOp, err)
	}
	to, err = arg.Get("to")
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %w", ErrDiff, ReplaceOp, err)
	}
	return from, to, nil
}
