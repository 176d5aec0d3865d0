package variant

import "fmt"

type Type int

const (
	UndefinedType Type = iota
	NullType
	BoolType
	SignedIntegerType
	UnsignedIntegerType
	FloatType
	StringType
	ArrayType
	ObjectType
	FunctionType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		UndefinedType:       "Undefined",
		NullType:            "Null",
		BoolType:            "Boolean",
		SignedIntegerType:   "SignedInteger",
		UnsignedIntegerType: "UnsignedInteger",
		FloatType:           "Float",
		StringType:          "String",
		ArrayType:           "Array",
		ObjectType:          "Object",
		FunctionType:        "Function",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	for _, tt := range Types() {
		if tt.String() == string(d) {
			*t = tt
			return nil
		}
	}
	return fmt.Errorf("unrecognized type %q", d)
}

func Types() []Type {
	return []Type{
		UndefinedType,
		NullType,
		BoolType,
		SignedIntegerType,
		UnsignedIntegerType,
		FloatType,
		StringType,
		ArrayType,
		ObjectType,
		FunctionType,
	}
}

func (t Type) IsNumber() bool {
	switch t {
	case SignedIntegerType, UnsignedIntegerType, FloatType:
		return true
	default:
		return false
	}
}
