package parse

import (
	"bytes"
	"io"

	"github.com/signadot/vconf/variant"
)

// Parse parses a strict JSON document.
func Parse(d []byte, opts ...ParseOption) (*variant.Variant, error) {
	return ParseReader(bytes.NewReader(d), opts...)
}

// ParseReader parses a strict JSON document read from r. The whole document
// must be valid, including the absence of data after the top level value;
// on error no partial tree is returned.
func ParseReader(r io.Reader, opts ...ParseOption) (*variant.Variant, error) {
	rd := NewReader(r, opts...)
	res, err := rd.ReadValue()
	if err != nil {
		return nil, err
	}
	k, err := rd.Peek()
	if err != nil {
		return nil, err
	}
	if k != EndDocument {
		return nil, grammarErr(rd.Pos(), "expected end of document, got %s", k)
	}
	return res, nil
}

// ReadValue consumes the next value and builds it as a Variant. Unlike the
// Reader itself, building recurses once per level of nesting; use MaxDepth
// to bound it.
func (r *Reader) ReadValue() (*variant.Variant, error) {
	k, err := r.Peek()
	if err != nil {
		return nil, err
	}
	switch k {
	case BeginObject:
		return r.readObject()
	case BeginArray:
		return r.readArray()
	case String:
		s, err := r.NextString()
		if err != nil {
			return nil, err
		}
		return variant.FromString(s), nil
	case SignedInteger:
		i, err := r.NextInt()
		if err != nil {
			return nil, err
		}
		return variant.FromInt(i), nil
	case UnsignedInteger:
		u, err := r.NextUint()
		if err != nil {
			return nil, err
		}
		return variant.FromUint(u), nil
	case Float:
		f, err := r.NextDouble()
		if err != nil {
			return nil, err
		}
		return variant.FromFloat(f), nil
	case Boolean:
		b, err := r.NextBoolean()
		if err != nil {
			return nil, err
		}
		return variant.FromBool(b), nil
	case Null:
		if err := r.NextNull(); err != nil {
			return nil, err
		}
		return variant.Null(), nil
	}
	return nil, r.fail(grammarErr(r.Pos(), "expected value but was %s", k))
}

func (r *Reader) readObject() (*variant.Variant, error) {
	if err := r.BeginObject(); err != nil {
		return nil, err
	}
	res := variant.FromMap(nil)
	for {
		more, err := r.HasNext()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		name, err := r.NextName()
		if err != nil {
			return nil, err
		}
		val, err := r.ReadValue()
		if err != nil {
			return nil, err
		}
		res.Set(name, val)
	}
	if err := r.EndObject(); err != nil {
		return nil, err
	}
	return res, nil
}

func (r *Reader) readArray() (*variant.Variant, error) {
	if err := r.BeginArray(); err != nil {
		return nil, err
	}
	res := variant.Array()
	for {
		more, err := r.HasNext()
		if err != nil {
			return nil, err
		}
		if !more {
			break
		}
		val, err := r.ReadValue()
		if err != nil {
			return nil, err
		}
		res.Append(val)
	}
	if err := r.EndArray(); err != nil {
		return nil, err
	}
	return res, nil
}
