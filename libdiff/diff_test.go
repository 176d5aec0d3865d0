package libdiff

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/vconf/variant"
)

func m(kv map[string]*variant.Variant) *variant.Variant {
	return variant.FromMap(kv)
}

func s(v string) *variant.Variant {
	return variant.FromString(v)
}

func i(v int64) *variant.Variant {
	return variant.FromInt(v)
}

// padded returns an array of n Undefined holes, as left by Elem, followed
// by vals.
func padded(n int, vals ...*variant.Variant) *variant.Variant {
	res := variant.Array()
	if n > 0 {
		res.Elem(n - 1)
	}
	return res.Append(vals...)
}

var diffPairs = []struct {
	name     string
	from, to *variant.Variant
}{
	{"scalar", i(1), i(2)},
	{"type change", i(1), s("1")},
	{"members", m(map[string]*variant.Variant{"a": i(1), "b": i(2)}),
		m(map[string]*variant.Variant{"b": i(3), "c": i(4)})},
	{"nested", m(map[string]*variant.Variant{"x": m(map[string]*variant.Variant{"y": variant.Array(i(1), i(2))})}),
		m(map[string]*variant.Variant{"x": m(map[string]*variant.Variant{"y": variant.Array(i(1), i(3), i(2))})})},
	{"array edits", variant.Array(i(1), i(2), i(3), i(4)), variant.Array(i(0), i(1), i(3), i(5))},
	{"array of objects", variant.Array(m(map[string]*variant.Variant{"k": i(1)}), s("z")),
		variant.Array(m(map[string]*variant.Variant{"k": i(2)}), s("z"))},
	{"string", s("hello brave new world"), s("hello bold new world!")},
	{"unicode string", s("héllo wörld"), s("héllo wörld∞")},
	{"string replaced", s("abc"), s("xyz")},
	{"empty to full", variant.Array(), variant.Array(variant.Null(), variant.FromBool(true))},
	{"holes dropped", padded(2, i(1)), variant.Array(i(1))},
	{"holes added", variant.Array(i(1)), padded(2, i(1))},
	{"hole filled", padded(1, i(1)), variant.Array(i(0), i(1))},
	{"hole to null", padded(1), variant.Array(variant.Null())},
}

func TestDiffPatchRoundTrip(t *testing.T) {
	for _, test := range diffPairs {
		t.Run(test.name, func(t *testing.T) {
			d := Diff(test.from, test.to)
			if d == nil {
				t.Fatal("expected a diff")
			}
			got, err := Patch(test.from, d)
			if err != nil {
				t.Fatal(err)
			}
			if !variant.Equal(got, test.to) {
				t.Errorf("patched %v want %v", got.Interface(), test.to.Interface())
			}
			rev, err := Reverse(d)
			if err != nil {
				t.Fatal(err)
			}
			back, err := Patch(test.to, rev)
			if err != nil {
				t.Fatal(err)
			}
			if !variant.Equal(back, test.from) {
				t.Errorf("reversed %v want %v", back.Interface(), test.from.Interface())
			}
		})
	}
}

func TestDiffEqual(t *testing.T) {
	a := m(map[string]*variant.Variant{"a": variant.Array(i(1), s("x"))})
	if d := Diff(a, a.Clone()); d != nil {
		t.Errorf("expected no diff, got %v", d.Interface())
	}
	if d := Diff(i(5), variant.FromUint(5)); d != nil {
		t.Errorf("equal integers should not differ")
	}
}

func TestDiffShape(t *testing.T) {
	from := m(map[string]*variant.Variant{"port": i(80), "keep": s("k")})
	to := m(map[string]*variant.Variant{"port": i(8080), "keep": s("k"), "new": variant.Null()})
	d := Diff(from, to)
	name, arg, err := Op(d)
	if err != nil || name != ObjectOp {
		t.Fatalf("got %s %v", name, err)
	}
	if arg.Has("keep") {
		t.Error("unchanged member in diff")
	}
	port, _ := arg.Get("port")
	if name, _, _ := Op(port); name != ReplaceOp {
		t.Errorf("port: %s", name)
	}
	added, _ := arg.Get("new")
	if name, _, _ := Op(added); name != InsertOp {
		t.Errorf("new: %s", name)
	}
}

func TestPatchMismatch(t *testing.T) {
	from := m(map[string]*variant.Variant{"a": i(1)})
	to := m(map[string]*variant.Variant{"a": i(2)})
	d := Diff(from, to)
	other := m(map[string]*variant.Variant{"a": i(7)})
	if _, err := Patch(other, d); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
	if _, err := Patch(variant.Array(), d); !errors.Is(err, ErrPatch) {
		t.Errorf("got %v", err)
	}
}

func TestPatchInvalidDiff(t *testing.T) {
	bad := []*variant.Variant{
		s("x"),
		m(map[string]*variant.Variant{"a": i(1), "b": i(2)}),
		m(map[string]*variant.Variant{"nobang": i(1)}),
		m(map[string]*variant.Variant{"!replace": m(map[string]*variant.Variant{"from": i(1)})}),
	}
	for _, d := range bad {
		_, err := Patch(i(1), d)
		if !errors.Is(err, ErrDiff) {
			t.Errorf("%v: got %v", d.Interface(), err)
		}
	}
}

func TestDiffStringOps(t *testing.T) {
	d := DiffString(s("config value one"), s("config value two"))
	name, ops, err := Op(d)
	if err != nil {
		t.Fatal(err)
	}
	if name == StringOp {
		first, _ := ops.At(0)
		if first.Type() != variant.SignedIntegerType {
			t.Errorf("expected a leading keep count, got %s", first.Type())
		}
	}
	got, err := Patch(s("config value one"), d)
	if err != nil {
		t.Fatal(err)
	}
	if v, _ := got.Str(); !strings.HasSuffix(v, "two") {
		t.Errorf("got %q", v)
	}
}

func TestDiffArrayHoles(t *testing.T) {
	from := variant.Array()
	from.Elem(2).CopyFrom(i(1))
	to := variant.Array(i(1))
	d := Diff(from, to)
	if d == nil {
		t.Fatal("expected a diff")
	}
	_, ops, err := Op(d)
	if err != nil {
		t.Fatal(err)
	}
	if ops.Len() != 2 {
		t.Fatalf("got %d ops, want 2", ops.Len())
	}
	for _, o := range ops.Elements() {
		name, arg, err := Op(o)
		if err != nil {
			t.Fatal(err)
		}
		if name != DeleteOp || !arg.IsUndefined() {
			t.Errorf("got %s of %s, want %s of Undefined", name, arg.Type(), DeleteOp)
		}
	}
	got, err := Patch(from, d)
	if err != nil {
		t.Fatal(err)
	}
	if !variant.Equal(got, to) {
		t.Errorf("got %d elements, want %v", got.Len(), to.Interface())
	}
}
