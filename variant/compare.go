package variant

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two variants.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Types order as Undefined < Null < Boolean < numbers < String < Array <
// Object < Function; numbers compare by value regardless of tag, with
// integers before an equal Float.
func Compare(a, b *Variant) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.typ)
	rankB := rank(b.typ)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.typ {
	case SignedIntegerType, UnsignedIntegerType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.s, b.s)
	case BoolType:
		if a.b == b.b {
			return 0
		}
		if !a.b {
			return -1
		}
		return 1
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

func rank(t Type) int {
	switch t {
	case UndefinedType:
		return 0
	case NullType:
		return 1
	case BoolType:
		return 2
	case SignedIntegerType, UnsignedIntegerType, FloatType:
		return 3
	case StringType:
		return 4
	case ArrayType:
		return 5
	case ObjectType:
		return 6
	case FunctionType:
		return 7
	}
	return 100
}

func compareNumbers(a, b *Variant) int {
	if a.typ != FloatType && b.typ != FloatType {
		return compareIntegers(a, b)
	}
	if c := cmp.Compare(a.ToFloat(), b.ToFloat()); c != 0 {
		return c
	}
	return cmp.Compare(numberSubRank(a), numberSubRank(b))
}

func compareIntegers(a, b *Variant) int {
	switch {
	case a.typ == SignedIntegerType && b.typ == SignedIntegerType:
		return cmp.Compare(a.i, b.i)
	case a.typ == UnsignedIntegerType && b.typ == UnsignedIntegerType:
		return cmp.Compare(a.u, b.u)
	case a.typ == SignedIntegerType:
		if a.i < 0 {
			return -1
		}
		return cmp.Compare(uint64(a.i), b.u)
	default:
		if b.i < 0 {
			return 1
		}
		return cmp.Compare(a.u, uint64(b.i))
	}
}

func numberSubRank(v *Variant) int {
	if v.typ == FloatType {
		return 1
	}
	return 0
}

func compareArrays(a, b *Variant) int {
	lenA := len(a.arr)
	lenB := len(b.arr)
	minLen := min(lenA, lenB)

	for i := 0; i < minLen; i++ {
		if c := Compare(a.arr[i], b.arr[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

// compareObjects compares members pairwise in key order: first the keys,
// then the values.
func compareObjects(a, b *Variant) int {
	keysA := a.Keys()
	keysB := b.Keys()
	minLen := min(len(keysA), len(keysB))

	for i := 0; i < minLen; i++ {
		if c := strings.Compare(keysA[i], keysB[i]); c != 0 {
			return c
		}
		if c := Compare(a.obj[keysA[i]], b.obj[keysB[i]]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(keysA), len(keysB))
}

// Equal reports whether a and b are structurally equal: same tags, same
// scalar values, same Object key sets and same Array order. Signed and
// unsigned integers holding the same value are equal. Functions are never
// equal.
func Equal(a, b *Variant) bool {
	ta, tb := a.Type(), b.Type()
	if ta != tb {
		if isInteger(ta) && isInteger(tb) {
			return compareIntegers(a, b) == 0
		}
		return false
	}
	switch ta {
	case UndefinedType, NullType:
		return true
	case BoolType:
		return a.b == b.b
	case SignedIntegerType:
		return a.i == b.i
	case UnsignedIntegerType:
		return a.u == b.u
	case FloatType:
		return a.f == b.f
	case StringType:
		return a.s == b.s
	case ArrayType:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	}
	return false
}

func isInteger(t Type) bool {
	return t == SignedIntegerType || t == UnsignedIntegerType
}
