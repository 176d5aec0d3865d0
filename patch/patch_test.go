package patch

import (
	"errors"
	"testing"

	"github.com/signadot/vconf/parse"
	"github.com/signadot/vconf/variant"
)

func mustParse(t *testing.T, s string) *variant.Variant {
	t.Helper()
	v, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestApply(t *testing.T) {
	tests := []struct {
		doc, patch, want string
	}{
		{
			doc:   `{"port": 80, "host": "h"}`,
			patch: `[{"op": "replace", "path": "/port", "value": 8080}]`,
			want:  `{"port": 8080, "host": "h"}`,
		},
		{
			doc:   `{"tags": ["a"]}`,
			patch: `[{"op": "add", "path": "/tags/-", "value": "b"}, {"op": "remove", "path": "/tags/0"}]`,
			want:  `{"tags": ["b"]}`,
		},
		{
			doc:   `{"a\/b": 1.5}`,
			patch: `[{"op": "move", "from": "/a~1b", "path": "/c"}]`,
			want:  `{"c": 1.5}`,
		},
		{
			doc:   `[1, 2]`,
			patch: `[{"op": "test", "path": "/0", "value": 1}]`,
			want:  `[1, 2]`,
		},
	}
	for _, test := range tests {
		got, err := Apply(mustParse(t, test.doc), mustParse(t, test.patch))
		if err != nil {
			t.Errorf("%s: %v", test.patch, err)
			continue
		}
		if want := mustParse(t, test.want); !variant.Equal(got, want) {
			t.Errorf("%s: got %v want %v", test.patch, got.Interface(), want.Interface())
		}
	}
}

func TestApplyErrors(t *testing.T) {
	doc := mustParse(t, `{"a": 1}`)
	if _, err := Apply(doc, mustParse(t, `{"op": "add"}`)); !errors.Is(err, ErrPatch) {
		t.Errorf("object patch: %v", err)
	}
	_, err := Apply(doc, mustParse(t, `[{"op": "remove", "path": "/missing"}]`))
	if !errors.Is(err, ErrApply) {
		t.Errorf("missing path: %v", err)
	}
	_, err = Apply(doc, mustParse(t, `[{"op": "test", "path": "/a", "value": 2}]`))
	if !errors.Is(err, ErrApply) {
		t.Errorf("failed test op: %v", err)
	}
}

func TestDecodeJSON(t *testing.T) {
	p, err := DecodeJSON([]byte(`[{"op": "add", "path": "/x", "value": null}]`))
	if err != nil {
		t.Fatal(err)
	}
	if p.Len() != 1 {
		t.Errorf("len %d", p.Len())
	}
	got, err := p.Apply(variant.FromMap(nil))
	if err != nil {
		t.Fatal(err)
	}
	x, err := got.Get("x")
	if err != nil || !x.IsNull() {
		t.Errorf("got %v %v", x, err)
	}
}

func TestMerge(t *testing.T) {
	doc := mustParse(t, `{"a": {"b": 1, "c": 2}, "d": [1]}`)
	got, err := Merge(doc, mustParse(t, `{"a": {"c": null, "e": 3}, "d": [2]}`))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, `{"a": {"b": 1, "e": 3}, "d": [2]}`)
	if !variant.Equal(got, want) {
		t.Errorf("got %v", got.Interface())
	}

	mp, err := CreateMerge(doc, want)
	if err != nil {
		t.Fatal(err)
	}
	again, err := Merge(doc, mp)
	if err != nil {
		t.Fatal(err)
	}
	if !variant.Equal(again, want) {
		t.Errorf("created merge patch gives %v", again.Interface())
	}
}
