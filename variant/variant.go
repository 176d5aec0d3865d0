package variant

import (
	"fmt"
	"maps"
	"slices"
)

// Func is the payload of a Function variant.
type Func func(arg *Variant) (*Variant, error)

// Variant is a dynamically typed value. The zero value is Undefined.
//
// Exactly one payload is live at a time, selected by the type tag. Arrays
// and objects own their children: a child pointer must not be stored in
// more than one container, and a container must not be stored inside one
// of its own descendants. Use Clone when a subtree is needed in two places.
type Variant struct {
	typ Type
	b   bool
	i   int64
	u   uint64
	f   float64
	s   string
	arr []*Variant
	obj map[string]*Variant
	fn  Func
}

func Null() *Variant {
	return &Variant{typ: NullType}
}

func Undefined() *Variant {
	return &Variant{}
}

func FromBool(v bool) *Variant {
	return &Variant{typ: BoolType, b: v}
}

func FromInt(v int64) *Variant {
	return &Variant{typ: SignedIntegerType, i: v}
}

func FromUint(v uint64) *Variant {
	return &Variant{typ: UnsignedIntegerType, u: v}
}

func FromFloat(v float64) *Variant {
	return &Variant{typ: FloatType, f: v}
}

func FromString(v string) *Variant {
	return &Variant{typ: StringType, s: v}
}

func FromFunc(f Func) *Variant {
	return &Variant{typ: FunctionType, fn: f}
}

// FromSlice makes an Array owning the elements of vs. nil elements become
// Undefined.
func FromSlice(vs []*Variant) *Variant {
	res := &Variant{typ: ArrayType, arr: make([]*Variant, len(vs))}
	for i, v := range vs {
		if v == nil {
			v = &Variant{}
		}
		res.arr[i] = v
	}
	return res
}

// FromMap makes an Object owning the values of m. nil values become
// Undefined.
func FromMap(m map[string]*Variant) *Variant {
	res := &Variant{typ: ObjectType, obj: make(map[string]*Variant, len(m))}
	for k, v := range m {
		if v == nil {
			v = &Variant{}
		}
		res.obj[k] = v
	}
	return res
}

// Array makes an Array of items.
func Array(items ...*Variant) *Variant {
	return FromSlice(items)
}

// Pair returns the 2 element array {key, val} recognized by Object and
// FromList as an object member.
func Pair(key string, val *Variant) *Variant {
	return Array(FromString(key), val)
}

// Object makes an Object from members built with Pair. It fails if any item
// is not a 2 element array whose first element is a String.
func Object(items ...*Variant) (*Variant, error) {
	res := &Variant{typ: ObjectType, obj: make(map[string]*Variant, len(items))}
	for i, item := range items {
		if !isPair(item) {
			return nil, fmt.Errorf("%w: object member %d is not a {key, value} pair", ErrShape, i)
		}
		res.obj[item.arr[0].s] = item.arr[1]
	}
	return res, nil
}

// FromList builds an Object when every item is a {key, value} pair (see
// Pair) and an Array otherwise. An empty list is an empty Array.
func FromList(items ...*Variant) *Variant {
	if len(items) == 0 {
		return Array()
	}
	for _, item := range items {
		if !isPair(item) {
			return FromSlice(items)
		}
	}
	res, _ := Object(items...)
	return res
}

func isPair(v *Variant) bool {
	return v != nil && v.typ == ArrayType && len(v.arr) == 2 && v.arr[0] != nil && v.arr[0].typ == StringType
}

func (v *Variant) Type() Type {
	if v == nil {
		return UndefinedType
	}
	return v.typ
}

func (v *Variant) Is(t Type) bool {
	return v.Type() == t
}

func (v *Variant) IsUndefined() bool { return v.Type() == UndefinedType }
func (v *Variant) IsNull() bool      { return v.Type() == NullType }
func (v *Variant) IsNumber() bool    { return v.Type().IsNumber() }

// Clone returns a deep copy of v. Function payloads are shared.
func (v *Variant) Clone() *Variant {
	if v == nil {
		return &Variant{}
	}
	res := &Variant{}
	return v.CloneTo(res)
}

func (v *Variant) CloneTo(dst *Variant) *Variant {
	*dst = Variant{
		typ: v.typ,
		b:   v.b,
		i:   v.i,
		u:   v.u,
		f:   v.f,
		s:   v.s,
		fn:  v.fn,
	}
	switch v.typ {
	case ArrayType:
		dst.arr = make([]*Variant, len(v.arr))
		for i, e := range v.arr {
			dst.arr[i] = e.Clone()
		}
	case ObjectType:
		dst.obj = make(map[string]*Variant, len(v.obj))
		for k, e := range v.obj {
			dst.obj[k] = e.Clone()
		}
	}
	return dst
}

// CopyFrom replaces v with a deep copy of src.
func (v *Variant) CopyFrom(src *Variant) {
	if src == v {
		return
	}
	src.Clone().CloneTo(v)
}

// MoveFrom transfers the payload of src to v and leaves src Undefined.
func (v *Variant) MoveFrom(src *Variant) {
	if src == v || src == nil {
		return
	}
	*v = *src
	*src = Variant{}
}

// Take moves the payload of v into a new Variant and leaves v Undefined.
func (v *Variant) Take() *Variant {
	res := &Variant{}
	res.MoveFrom(v)
	return res
}

// Reset makes v Undefined.
func (v *Variant) Reset() {
	*v = Variant{}
}

func (v *Variant) Bool() (bool, error) {
	if v.Type() != BoolType {
		return false, typeErr("Bool", v.Type(), BoolType)
	}
	return v.b, nil
}

func (v *Variant) Int() (int64, error) {
	if v.Type() != SignedIntegerType {
		return 0, typeErr("Int", v.Type(), SignedIntegerType)
	}
	return v.i, nil
}

func (v *Variant) Uint() (uint64, error) {
	if v.Type() != UnsignedIntegerType {
		return 0, typeErr("Uint", v.Type(), UnsignedIntegerType)
	}
	return v.u, nil
}

func (v *Variant) Float() (float64, error) {
	if v.Type() != FloatType {
		return 0, typeErr("Float", v.Type(), FloatType)
	}
	return v.f, nil
}

// Str returns the payload of a String variant.
func (v *Variant) Str() (string, error) {
	if v.Type() != StringType {
		return "", typeErr("Str", v.Type(), StringType)
	}
	return v.s, nil
}

func (v *Variant) Func() (Func, error) {
	if v.Type() != FunctionType {
		return nil, typeErr("Func", v.Type(), FunctionType)
	}
	return v.fn, nil
}

// Call invokes a Function variant.
func (v *Variant) Call(arg *Variant) (*Variant, error) {
	f, err := v.Func()
	if err != nil {
		return nil, err
	}
	if f == nil {
		return nil, fmt.Errorf("%w: nil function", ErrType)
	}
	return f(arg)
}

// Len returns the number of elements of an Array or members of an Object,
// and 0 for other types.
func (v *Variant) Len() int {
	switch v.Type() {
	case ArrayType:
		return len(v.arr)
	case ObjectType:
		return len(v.obj)
	}
	return 0
}

// Keys returns the keys of an Object in sorted order, or nil.
func (v *Variant) Keys() []string {
	if v.Type() != ObjectType {
		return nil
	}
	return slices.Sorted(maps.Keys(v.obj))
}

// Truth is false only for Undefined, Null and Boolean false.
func (v *Variant) Truth() bool {
	switch v.Type() {
	case UndefinedType, NullType:
		return false
	case BoolType:
		return v.b
	default:
		return true
	}
}

func Truth(v *Variant) bool {
	return v.Truth()
}
