package variant

import (
	"errors"
	"testing"
)

func TestZeroIsUndefined(t *testing.T) {
	var v Variant
	if v.Type() != UndefinedType {
		t.Errorf("got %s", v.Type())
	}
	if v.Truth() {
		t.Error("undefined should be false")
	}
	if Null().Type() == v.Type() {
		t.Error("null and undefined must differ")
	}
}

func TestAccessorsCheckType(t *testing.T) {
	v := FromInt(3)
	if i, err := v.Int(); err != nil || i != 3 {
		t.Errorf("Int: %d %v", i, err)
	}
	_, err := v.Str()
	var te *TypeError
	if !errors.As(err, &te) {
		t.Fatalf("expected TypeError, got %v", err)
	}
	if te.Got != SignedIntegerType || te.Want[0] != StringType {
		t.Errorf("got %v", te)
	}
	if !errors.Is(err, ErrType) {
		t.Errorf("expected ErrType")
	}
	if _, err := v.Call(Null()); !errors.Is(err, ErrType) {
		t.Errorf("call on int: %v", err)
	}
}

func TestCloneIsDeep(t *testing.T) {
	orig := FromMap(map[string]*Variant{
		"a": Array(FromInt(1), FromString("x")),
	})
	cp := orig.Clone()
	cp.Field("a").Elem(0).MoveFrom(FromInt(2))
	cp.Set("b", Null())

	a, _ := orig.Get("a")
	e, _ := a.At(0)
	if i, _ := e.Int(); i != 1 {
		t.Errorf("original modified: %d", i)
	}
	if orig.Has("b") {
		t.Error("original gained key b")
	}
	if Equal(orig, cp) {
		t.Error("clone should now differ")
	}
}

func TestMoveLeavesUndefined(t *testing.T) {
	src := Array(FromInt(1))
	var dst Variant
	dst.MoveFrom(src)
	if src.Type() != UndefinedType {
		t.Errorf("source is %s", src.Type())
	}
	if dst.Len() != 1 {
		t.Errorf("dst len %d", dst.Len())
	}
	src.Append(FromInt(5))
	if src.Len() != 1 || dst.Len() != 1 {
		t.Error("moved-from value should be reusable and independent")
	}

	taken := dst.Take()
	if !dst.IsUndefined() || taken.Len() != 1 {
		t.Errorf("take: dst %s taken %d", dst.Type(), taken.Len())
	}
}

func TestCopyFrom(t *testing.T) {
	src := FromMap(map[string]*Variant{"k": FromString("v")})
	var dst Variant
	dst.CopyFrom(src)
	src.Set("k", FromString("changed"))
	got, _ := dst.Get("k")
	if s, _ := got.Str(); s != "v" {
		t.Errorf("got %q", s)
	}
}

func TestFromListHeuristic(t *testing.T) {
	obj := FromList(Pair("a", FromInt(1)), Pair("b", FromInt(2)))
	if obj.Type() != ObjectType || obj.Len() != 2 {
		t.Errorf("expected object of 2, got %s", obj.Type())
	}
	arr := FromList(Pair("a", FromInt(1)), FromInt(2))
	if arr.Type() != ArrayType || arr.Len() != 2 {
		t.Errorf("expected array of 2, got %s", arr.Type())
	}
	notPair := FromList(Array(FromInt(1), FromInt(2)))
	if notPair.Type() != ArrayType {
		t.Errorf("non-string first element must give array, got %s", notPair.Type())
	}
	if FromList().Type() != ArrayType {
		t.Error("empty list should be an array")
	}
}

func TestExplicitFactories(t *testing.T) {
	arr := Array(Pair("a", FromInt(1)))
	if arr.Type() != ArrayType {
		t.Errorf("Array must bypass the heuristic, got %s", arr.Type())
	}
	if _, err := Object(Pair("a", FromInt(1)), FromInt(2)); !errors.Is(err, ErrShape) {
		t.Errorf("expected ErrShape, got %v", err)
	}
	obj, err := Object(Pair("a", FromInt(1)))
	if err != nil {
		t.Fatal(err)
	}
	if Get(obj, "a", 0) != 1 {
		t.Errorf("got %d", Get(obj, "a", 0))
	}
}

func TestCompare(t *testing.T) {
	ordered := []*Variant{
		{},
		Null(),
		FromBool(false),
		FromBool(true),
		FromInt(-1),
		FromUint(0),
		FromFloat(0.5),
		FromString("a"),
		FromString("b"),
		Array(),
		Array(FromInt(1)),
		FromMap(nil),
		FromMap(map[string]*Variant{"a": FromInt(1)}),
	}
	for i := range ordered {
		for j := range ordered {
			got := Compare(ordered[i], ordered[j])
			want := 0
			switch {
			case i < j:
				want = -1
			case i > j:
				want = 1
			}
			if got != want {
				t.Errorf("Compare(%d, %d) = %d want %d", i, j, got, want)
			}
		}
	}
}

func TestEqual(t *testing.T) {
	if !Equal(FromInt(5), FromUint(5)) {
		t.Error("signed and unsigned 5 should be equal")
	}
	if Equal(FromInt(-1), FromUint(18446744073709551615)) {
		t.Error("-1 and max uint must differ")
	}
	if Equal(FromInt(10), FromFloat(10)) {
		t.Error("integer and float tags must differ")
	}
	f := FromFunc(func(v *Variant) (*Variant, error) { return v, nil })
	if Equal(f, f) {
		t.Error("functions are never equal")
	}
	a := FromMap(map[string]*Variant{"x": Array(Null(), FromString("s"))})
	if !Equal(a, a.Clone()) {
		t.Error("clone should be equal")
	}
}
