package variant

import (
	"iter"
	"strconv"
)

// Iter iterates over the elements of an Array in index order or the members
// of an Object in key order. Iterating any other type ends immediately.
//
//	it := v.Iter()
//	for it.Next() {
//		use(it.Key(), it.Value())
//	}
type Iter struct {
	v    *Variant
	keys []string
	i    int
}

// Iter returns a new iterator positioned before the first element.
func (v *Variant) Iter() *Iter {
	it := &Iter{v: v, i: -1}
	if v.Type() == ObjectType {
		it.keys = v.Keys()
	}
	return it
}

func (it *Iter) len() int {
	switch it.v.Type() {
	case ArrayType:
		return len(it.v.arr)
	case ObjectType:
		return len(it.keys)
	}
	return 0
}

// Next advances the iterator and reports whether a value is available.
func (it *Iter) Next() bool {
	if it.i < it.len() {
		it.i++
	}
	return it.i < it.len()
}

// Key returns the current Object key. For Arrays it returns the index in
// decimal, and "" otherwise.
func (it *Iter) Key() string {
	if !it.valid() {
		return ""
	}
	if it.v.typ == ObjectType {
		return it.keys[it.i]
	}
	return strconv.Itoa(it.i)
}

// Index returns the position of the current value in the iteration.
func (it *Iter) Index() int {
	return it.i
}

// Value returns the current value, or an Undefined Variant when the
// iterator is not positioned on one.
func (it *Iter) Value() *Variant {
	if !it.valid() {
		return &Variant{}
	}
	if it.v.typ == ObjectType {
		return it.v.obj[it.keys[it.i]]
	}
	return it.v.arr[it.i]
}

func (it *Iter) valid() bool {
	return it.i >= 0 && it.i < it.len()
}

// Values yields Array elements or Object members (in key order).
func (v *Variant) Values() iter.Seq[*Variant] {
	return func(yield func(*Variant) bool) {
		it := v.Iter()
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}

// Entries yields the members of an Object in key order.
func (v *Variant) Entries() iter.Seq2[string, *Variant] {
	return func(yield func(string, *Variant) bool) {
		if v.Type() != ObjectType {
			return
		}
		it := v.Iter()
		for it.Next() {
			if !yield(it.Key(), it.Value()) {
				return
			}
		}
	}
}

// Elements yields the elements of an Array with their indices.
func (v *Variant) Elements() iter.Seq2[int, *Variant] {
	return func(yield func(int, *Variant) bool) {
		if v.Type() != ArrayType {
			return
		}
		for i, e := range v.arr {
			if !yield(i, e) {
				return
			}
		}
	}
}
