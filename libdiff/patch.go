package libdiff

import (
	"fmt"

	"github.com/signadot/vconf/variant"
)

// Patch applies diff to doc and returns the result; doc is not modified.
// Every value the diff deletes or replaces must be present in doc, so a
// diff only applies to the document it was computed from. A deletion at the
// top level yields Undefined.
func Patch(doc, diff *variant.Variant) (*variant.Variant, error) {
	if diff == nil {
		return doc.Clone(), nil
	}
	name, arg, err := Op(diff)
	if err != nil {
		return nil, err
	}
	switch name {
	case InsertOp:
		if !doc.IsUndefined() {
			return nil, fmt.Errorf("%w: insert over existing %s", ErrPatch, doc.Type())
		}
		return arg.Clone(), nil
	case DeleteOp:
		if !variant.Equal(doc, arg) {
			return nil, fmt.Errorf("%w: deleted value differs", ErrPatch)
		}
		return variant.Undefined(), nil
	case ReplaceOp:
		from, to, err := replaceArgs(arg)
		if err != nil {
			return nil, err
		}
		if !variant.Equal(doc, from) {
			return nil, fmt.Errorf("%w: replaced value differs", ErrPatch)
		}
		return to.Clone(), nil
	case ObjectOp:
		return patchObject(doc, arg)
	case ArrayOp:
		return patchArray(doc, arg)
	case StringOp:
		return patchString(doc, arg)
	}
	return nil, fmt.Errorf("%w: unknown operation %q", ErrDiff, name)
}

func patchObject(doc, arg *variant.Variant) (*variant.Variant, error) {
	if doc.Type() != variant.ObjectType {
		return nil, fmt.Errorf("%w: %s on %s", ErrPatch, ObjectOp, doc.Type())
	}
	if arg.Type() != variant.ObjectType {
		return nil, fmt.Errorf("%w: %s takes an object, got %s", ErrDiff, ObjectOp, arg.Type())
	}
	res := doc.Clone()
	for k, d := range arg.Entries() {
		cur, err := res.Get(k)
		if err != nil {
			cur = variant.Undefined()
		}
		v, err := Patch(cur, d)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", k, err)
		}
		if v.IsUndefined() {
			res.Delete(k)
			continue
		}
		res.Set(k, v)
	}
	return res, nil
}

func patchArray(doc, arg *variant.Variant) (*variant.Variant, error) {
	if doc.Type() != variant.ArrayType {
		return nil, fmt.Errorf("%w: %s on %s", ErrPatch, ArrayOp, doc.Type())
	}
	if arg.Type() != variant.ArrayType {
		return nil, fmt.Errorf("%w: %s takes an array, got %s", ErrDiff, ArrayOp, arg.Type())
	}
	res := variant.Array()
	i, n := 0, doc.Len()
	next := func() (*variant.Variant, error) {
		if i >= n {
			return nil, fmt.Errorf("%w: array too short (%d)", ErrPatch, n)
		}
		v, _ := doc.At(i)
		i++
		return v, nil
	}
	for _, o := range arg.Elements() {
		if o.Type() == variant.SignedIntegerType {
			for range o.ToInt() {
				v, err := next()
				if err != nil {
					return nil, err
				}
				res.Append(v.Clone())
			}
			continue
		}
		name, _, err := Op(o)
		if err != nil {
			return nil, err
		}
		cur := variant.Undefined()
		if name != InsertOp {
			if cur, err = next(); err != nil {
				return nil, err
			}
		}
		v, err := Patch(cur, o)
		if err != nil {
			return nil, fmt.Errorf("element %d: %w", i-1, err)
		}
		if name != DeleteOp {
			res.Append(v)
		}
	}
	for ; i < n; i++ {
		v, _ := doc.At(i)
		res.Append(v.Clone())
	}
	return res, nil
}

func patchString(doc, arg *variant.Variant) (*variant.Variant, error) {
	s, err := doc.Str()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPatch, err)
	}
	if arg.Type() != variant.ArrayType {
		return nil, fmt.Errorf("%w: %s takes an array, got %s", ErrDiff, StringOp, arg.Type())
	}
	txt := []rune(s)
	res := []rune{}
	i := 0
	for _, o := range arg.Elements() {
		if o.Type() == variant.SignedIntegerType {
			n := int(o.ToInt())
			if n < 0 || i+n > len(txt) {
				return nil, fmt.Errorf("%w: string too short", ErrPatch)
			}
			res = append(res, txt[i:i+n]...)
			i += n
			continue
		}
		name, part, err := Op(o)
		if err != nil {
			return nil, err
		}
		ps, err := part.Str()
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrDiff, name, err)
		}
		pr := []rune(ps)
		switch name {
		case InsertOp:
			res = append(res, pr...)
		case DeleteOp:
			if !runesHasPrefix(txt[i:], pr) {
				return nil, fmt.Errorf("%w: unexpected text %q, expected %q", ErrPatch, string(txt[i:]), ps)
			}
			i += len(pr)
		default:
			return nil, fmt.Errorf("%w: unexpected %s in %s", ErrDiff, name, StringOp)
		}
	}
	res = append(res, txt[i:]...)
	return variant.FromString(string(res)), nil
}

func runesHasPrefix(txt, prefix []rune) bool {
	if len(prefix) > len(txt) {
		return false
	}
	for i, r := range prefix {
		if txt[i] != r {
			return false
		}
	}
	return true
}
