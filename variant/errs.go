package variant

import (
	"errors"
	"fmt"
)

var (
	ErrType            = errors.New("type error")
	ErrKeyNotFound     = errors.New("key not found")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrShape           = errors.New("bad shape")
)

// TypeError reports an operation applied to a Variant of the wrong type.
type TypeError struct {
	Op   string
	Want []Type
	Got  Type
}

func (e *TypeError) Unwrap() error {
	return ErrType
}

func (e *TypeError) Error() string {
	switch len(e.Want) {
	case 0:
		return fmt.Sprintf("%s: %s on %s", ErrType, e.Op, e.Got)
	case 1:
		return fmt.Sprintf("%s: %s expected %s, got %s", ErrType, e.Op, e.Want[0], e.Got)
	default:
		return fmt.Sprintf("%s: %s expected one of %v, got %s", ErrType, e.Op, e.Want, e.Got)
	}
}

func typeErr(op string, got Type, want ...Type) *TypeError {
	return &TypeError{Op: op, Want: want, Got: got}
}
