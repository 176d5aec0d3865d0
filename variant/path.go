package variant

import "strings"

// Lookup walks a dotted key path ("a.b.c") through nested Objects. It
// reports false, without modifying anything, as soon as a segment is
// missing or an intermediate value is not an Object. The empty path
// resolves to v itself.
func (v *Variant) Lookup(path string) (*Variant, bool) {
	if v == nil {
		return nil, false
	}
	if path == "" {
		return v, true
	}
	res := v
	for seg := range strings.SplitSeq(path, ".") {
		if res.typ != ObjectType {
			return nil, false
		}
		next, ok := res.obj[seg]
		if !ok {
			return nil, false
		}
		res = next
	}
	return res, true
}

// Get looks up path in v and coerces the result with As. def is returned
// when the path does not resolve or resolves to a value that is not a
// scalar (Undefined, Null, Array, Object or Function).
func Get[T Scalar](v *Variant, path string, def T) T {
	res, ok := v.Lookup(path)
	if !ok {
		return def
	}
	switch res.typ {
	case UndefinedType, NullType, ArrayType, ObjectType, FunctionType:
		return def
	}
	return As[T](res)
}

// SetPath stores val at a dotted key path, auto-vivifying missing or
// Undefined/Null intermediate values as Objects. It panics with a
// *TypeError if an intermediate value is of another type.
func (v *Variant) SetPath(path string, val *Variant) {
	segs := strings.Split(path, ".")
	cur := v
	for _, seg := range segs[:len(segs)-1] {
		cur = cur.Field(seg)
	}
	cur.Set(segs[len(segs)-1], val)
}
