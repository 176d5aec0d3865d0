package variant

import (
	"bytes"
	stdjson "encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"

	json "github.com/goccy/go-json"
)

// FromValue converts a Go value to a Variant. Scalars, *Variant, Func,
// maps with string keys, slices and arrays convert directly; any other value
// is marshalled with encoding/json semantics and converted from the result.
func FromValue(x any) (*Variant, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case *Variant:
		return v.Clone(), nil
	case Variant:
		return v.Clone(), nil
	case Func:
		return FromFunc(v), nil
	case func(*Variant) (*Variant, error):
		return FromFunc(v), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case int:
		return FromInt(int64(v)), nil
	case int8:
		return FromInt(int64(v)), nil
	case int16:
		return FromInt(int64(v)), nil
	case int32:
		return FromInt(int64(v)), nil
	case int64:
		return FromInt(v), nil
	case uint:
		return FromUint(uint64(v)), nil
	case uint8:
		return FromUint(uint64(v)), nil
	case uint16:
		return FromUint(uint64(v)), nil
	case uint32:
		return FromUint(uint64(v)), nil
	case uint64:
		return FromUint(v), nil
	case float32:
		return FromFloat(float64(v)), nil
	case float64:
		return FromFloat(v), nil
	case stdjson.Number:
		return fromNumber(string(v))
	case []any:
		res := &Variant{typ: ArrayType, arr: make([]*Variant, len(v))}
		for i, e := range v {
			ev, err := FromValue(e)
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			res.arr[i] = ev
		}
		return res, nil
	case map[string]any:
		res := &Variant{typ: ObjectType, obj: make(map[string]*Variant, len(v))}
		for k, e := range v {
			ev, err := FromValue(e)
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			res.obj[k] = ev
		}
		return res, nil
	}
	return fromReflect(reflect.ValueOf(x))
}

func fromReflect(rv reflect.Value) (*Variant, error) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Null(), nil
		}
	case reflect.Slice:
		if rv.IsNil() {
			return Null(), nil
		}
		if rv.Type().Elem().Kind() == reflect.Uint8 {
			// []byte marshals as base64 text
			break
		}
		fallthrough
	case reflect.Array:
		res := &Variant{typ: ArrayType, arr: make([]*Variant, rv.Len())}
		for i := range rv.Len() {
			ev, err := FromValue(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			res.arr[i] = ev
		}
		return res, nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		if rv.IsNil() {
			return Null(), nil
		}
		res := &Variant{typ: ObjectType, obj: make(map[string]*Variant, rv.Len())}
		iter := rv.MapRange()
		for iter.Next() {
			k := iter.Key().String()
			ev, err := FromValue(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("member %q: %w", k, err)
			}
			res.obj[k] = ev
		}
		return res, nil
	}
	return fromMarshal(rv.Interface())
}

func fromMarshal(x any) (*Variant, error) {
	d, err := json.Marshal(x)
	if err != nil {
		return nil, fmt.Errorf("converting %T: %w", x, err)
	}
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var tmp any
	if err := dec.Decode(&tmp); err != nil {
		return nil, fmt.Errorf("converting %T: %w", x, err)
	}
	return fromDecoded(tmp)
}

// fromDecoded converts the output of a JSON decoder using numbers as
// strings. The number type is matched by kind so that decoders defining
// their own Number type are handled too.
func fromDecoded(x any) (*Variant, error) {
	switch v := x.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(v), nil
	case string:
		return FromString(v), nil
	case float64:
		return FromFloat(v), nil
	case []any:
		res := &Variant{typ: ArrayType, arr: make([]*Variant, len(v))}
		for i, e := range v {
			ev, err := fromDecoded(e)
			if err != nil {
				return nil, err
			}
			res.arr[i] = ev
		}
		return res, nil
	case map[string]any:
		res := &Variant{typ: ObjectType, obj: make(map[string]*Variant, len(v))}
		for k, e := range v {
			ev, err := fromDecoded(e)
			if err != nil {
				return nil, err
			}
			res.obj[k] = ev
		}
		return res, nil
	}
	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.String {
		return fromNumber(rv.String())
	}
	return nil, fmt.Errorf("%w: cannot convert decoded %T", ErrType, x)
}

// fromNumber applies the lexer's classification to a numeric literal:
// int64, then uint64, then float64.
func fromNumber(s string) (*Variant, error) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return FromUint(u), nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: bad number %q", ErrType, s)
	}
	return FromFloat(f), nil
}

// Interface converts v to plain Go values: nil for Undefined and Null,
// bool, int64, uint64, float64, string, []any, map[string]any and Func.
func (v *Variant) Interface() any {
	switch v.Type() {
	case BoolType:
		return v.b
	case SignedIntegerType:
		return v.i
	case UnsignedIntegerType:
		return v.u
	case FloatType:
		return v.f
	case StringType:
		return v.s
	case ArrayType:
		res := make([]any, len(v.arr))
		for i, e := range v.arr {
			res[i] = e.Interface()
		}
		return res
	case ObjectType:
		res := make(map[string]any, len(v.obj))
		for k, e := range v.obj {
			res[k] = e.Interface()
		}
		return res
	case FunctionType:
		return v.fn
	}
	return nil
}

// IsFinite reports whether v is not a NaN or infinite Float.
func (v *Variant) IsFinite() bool {
	if v.Type() != FloatType {
		return true
	}
	return !math.IsNaN(v.f) && !math.IsInf(v.f, 0)
}
