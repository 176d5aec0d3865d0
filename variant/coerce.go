package variant

import (
	"reflect"
	"strconv"
	"strings"
)

// The To* coercions never fail. Numbers convert freely between each other,
// truncating floats toward zero. Strings are parsed best-effort and yield
// the zero value when they do not parse, which callers cannot tell apart
// from a real zero.

// ToString renders scalars as text. Containers, functions and Undefined
// yield "".
func (v *Variant) ToString() string {
	switch v.Type() {
	case StringType:
		return v.s
	case BoolType:
		return strconv.FormatBool(v.b)
	case SignedIntegerType:
		return strconv.FormatInt(v.i, 10)
	case UnsignedIntegerType:
		return strconv.FormatUint(v.u, 10)
	case FloatType:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case NullType:
		return "null"
	}
	return ""
}

func (v *Variant) ToFloat() float64 {
	switch v.Type() {
	case FloatType:
		return v.f
	case SignedIntegerType:
		return float64(v.i)
	case UnsignedIntegerType:
		return float64(v.u)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	case StringType:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.s), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func (v *Variant) ToInt() int64 {
	switch v.Type() {
	case SignedIntegerType:
		return v.i
	case UnsignedIntegerType:
		return int64(v.u)
	case FloatType:
		return int64(v.f)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	case StringType:
		s := strings.TrimSpace(v.s)
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return i
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return int64(f)
		}
		return 0
	}
	return 0
}

func (v *Variant) ToUint() uint64 {
	switch v.Type() {
	case UnsignedIntegerType:
		return v.u
	case SignedIntegerType:
		return uint64(v.i)
	case FloatType:
		if v.f < 0 {
			return uint64(int64(v.f))
		}
		return uint64(v.f)
	case BoolType:
		if v.b {
			return 1
		}
		return 0
	case StringType:
		s := strings.TrimSpace(v.s)
		if u, err := strconv.ParseUint(s, 10, 64); err == nil {
			return u
		}
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return uint64(i)
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil && f >= 0 {
			return uint64(f)
		}
		return 0
	}
	return 0
}

// ToBool is Truth for non-strings. Strings accept the strconv.ParseBool
// spellings, then any number (non-zero is true); anything else is false.
func (v *Variant) ToBool() bool {
	switch v.Type() {
	case BoolType:
		return v.b
	case SignedIntegerType:
		return v.i != 0
	case UnsignedIntegerType:
		return v.u != 0
	case FloatType:
		return v.f != 0
	case StringType:
		s := strings.TrimSpace(v.s)
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f != 0
		}
		return false
	}
	return v.Truth()
}

// Scalar is the set of Go types As can coerce to.
type Scalar interface {
	~bool | ~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// As coerces v to T with the To* rules.
func As[T Scalar](v *Variant) T {
	var res T
	rv := reflect.ValueOf(&res).Elem()
	switch rv.Kind() {
	case reflect.Bool:
		rv.SetBool(v.ToBool())
	case reflect.String:
		rv.SetString(v.ToString())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		rv.SetInt(v.ToInt())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		rv.SetUint(v.ToUint())
	case reflect.Float32, reflect.Float64:
		rv.SetFloat(v.ToFloat())
	}
	return res
}
