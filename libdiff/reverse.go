package libdiff

import (
	"fmt"

	"github.com/signadot/vconf/variant"
)

// Reverse returns the diff undoing diff: inserts become deletes and the
// sides of replacements swap.
func Reverse(diff *variant.Variant) (*variant.Variant, error) {
	name, arg, err := Op(diff)
	if err != nil {
		return nil, err
	}
	switch name {
	case InsertOp:
		return op(DeleteOp, arg.Clone()), nil
	case DeleteOp:
		return op(InsertOp, arg.Clone()), nil
	case ReplaceOp:
		from, to, err := replaceArgs(arg)
		if err != nil {
			return nil, err
		}
		return replace(to, from), nil
	case ObjectOp:
		res := variant.FromMap(nil)
		for k, d := range arg.Entries() {
			r, err := Reverse(d)
			if err != nil {
				return nil, fmt.Errorf("%q: %w", k, err)
			}
			res.Set(k, r)
		}
		return op(name, res), nil
	case ArrayOp, StringOp:
		res := variant.Array()
		for i, o := range arg.Elements() {
			if o.Type() == variant.SignedIntegerType {
				res.Append(o.Clone())
				continue
			}
			r, err := Reverse(o)
			if err != nil {
				return nil, fmt.Errorf("op %d: %w", i, err)
			}
			res.Append(r)
		}
		return op(name, res), nil
	}
	return nil, fmt.Errorf("%w: unknown operation %q", ErrDiff, name)
}
