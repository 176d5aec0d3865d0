package variant

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIterObjectKeyOrder(t *testing.T) {
	v := FromMap(map[string]*Variant{
		"c": FromInt(3),
		"a": FromInt(1),
		"b": FromInt(2),
	})
	var keys []string
	var vals []int64
	it := v.Iter()
	for it.Next() {
		keys = append(keys, it.Key())
		vals = append(vals, it.Value().ToInt())
	}
	if diff := cmp.Diff([]string{"a", "b", "c"}, keys); diff != "" {
		t.Errorf("keys (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int64{1, 2, 3}, vals); diff != "" {
		t.Errorf("values (-want +got):\n%s", diff)
	}
	if it.Next() {
		t.Error("exhausted iterator advanced")
	}
	if !it.Value().IsUndefined() {
		t.Error("value past the end should be undefined")
	}
}

func TestIterArray(t *testing.T) {
	v := Array(FromString("x"), FromString("y"))
	it := v.Iter()
	if !it.Value().IsUndefined() {
		t.Error("value before Next should be undefined")
	}
	var got []string
	for it.Next() {
		got = append(got, it.Key()+"="+it.Value().ToString())
	}
	if diff := cmp.Diff([]string{"0=x", "1=y"}, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
}

func TestIterScalar(t *testing.T) {
	it := FromInt(1).Iter()
	if it.Next() {
		t.Error("scalar iteration should be empty")
	}
}

func TestSeqs(t *testing.T) {
	obj := FromMap(map[string]*Variant{"b": FromInt(2), "a": FromInt(1)})
	var keys []string
	for k := range obj.Entries() {
		keys = append(keys, k)
	}
	if diff := cmp.Diff([]string{"a", "b"}, keys); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	n := 0
	for range obj.Elements() {
		n++
	}
	if n != 0 {
		t.Error("Elements on object should be empty")
	}
	sum := int64(0)
	for v := range Array(FromInt(1), FromInt(2), FromInt(3)).Values() {
		sum += v.ToInt()
		if sum >= 3 {
			break
		}
	}
	if sum != 3 {
		t.Errorf("sum %d", sum)
	}
}
