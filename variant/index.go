package variant

import (
	"fmt"
)

// Get returns the member key of an Object. It does not modify v.
func (v *Variant) Get(key string) (*Variant, error) {
	if v.Type() != ObjectType {
		return nil, typeErr("Get", v.Type(), ObjectType)
	}
	res, ok := v.obj[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}
	return res, nil
}

// At returns element i of an Array. It does not modify v.
func (v *Variant) At(i int) (*Variant, error) {
	if v.Type() != ArrayType {
		return nil, typeErr("At", v.Type(), ArrayType)
	}
	if i < 0 || i >= len(v.arr) {
		return nil, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, i, len(v.arr))
	}
	return v.arr[i], nil
}

// Field returns the member key of v, creating it as Undefined if missing.
// An Undefined or Null v first becomes an empty Object. Field panics with a
// *TypeError if v holds any other non-Object type.
func (v *Variant) Field(key string) *Variant {
	v.vivify("Field", ObjectType)
	res, ok := v.obj[key]
	if !ok {
		res = &Variant{}
		v.obj[key] = res
	}
	return res
}

// Elem returns element i of v, padding the array with Undefined elements up
// to i. An Undefined or Null v first becomes an empty Array. Elem panics
// with a *TypeError if v holds any other non-Array type, and on a negative
// index.
func (v *Variant) Elem(i int) *Variant {
	if i < 0 {
		panic(fmt.Errorf("%w: %d", ErrIndexOutOfRange, i))
	}
	v.vivify("Elem", ArrayType)
	for len(v.arr) <= i {
		v.arr = append(v.arr, &Variant{})
	}
	return v.arr[i]
}

func (v *Variant) vivify(op string, t Type) {
	switch v.typ {
	case t:
		return
	case UndefinedType, NullType:
		*v = Variant{typ: t}
		if t == ObjectType {
			v.obj = map[string]*Variant{}
		}
	default:
		panic(typeErr(op, v.typ, t))
	}
}

// Set stores val as member key, auto-vivifying v like Field. It returns v.
func (v *Variant) Set(key string, val *Variant) *Variant {
	if val == nil {
		val = &Variant{}
	}
	v.vivify("Set", ObjectType)
	v.obj[key] = val
	return v
}

// Append adds vals to the end of v, auto-vivifying v like Elem. It returns v.
func (v *Variant) Append(vals ...*Variant) *Variant {
	v.vivify("Append", ArrayType)
	for _, val := range vals {
		if val == nil {
			val = &Variant{}
		}
		v.arr = append(v.arr, val)
	}
	return v
}

// Delete removes member key from an Object and reports whether it was
// present.
func (v *Variant) Delete(key string) bool {
	if v.Type() != ObjectType {
		return false
	}
	_, ok := v.obj[key]
	delete(v.obj, key)
	return ok
}

// Has reports whether v is an Object with member key.
func (v *Variant) Has(key string) bool {
	if v.Type() != ObjectType {
		return false
	}
	_, ok := v.obj[key]
	return ok
}
