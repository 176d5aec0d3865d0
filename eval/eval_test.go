package eval

import (
	"errors"
	"slices"
	"testing"

	"github.com/signadot/vconf/libdiff"
	"github.com/signadot/vconf/parse"
	"github.com/signadot/vconf/variant"
)

func testDoc(t *testing.T) *variant.Variant {
	t.Helper()
	doc, err := parse.Parse([]byte(`{"name": "api", "server": {"port": 8080}, "tags": ["a", "b"]}`))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestEval(t *testing.T) {
	t.Setenv("VCONF_EVAL_TEST", "staging")
	tests := []struct {
		src  string
		want *variant.Variant
	}{
		{`doc.server.port + 1`, variant.FromInt(8081)},
		{`doc.name + "-svc"`, variant.FromString("api-svc")},
		{`len(doc.tags)`, variant.FromInt(2)},
		{`getpath("server.port")`, variant.FromInt(8080)},
		{`getpath("server.host") == nil`, variant.FromBool(true)},
		{`getenv("VCONF_EVAL_TEST")`, variant.FromString("staging")},
		{`tojson(doc.server)`, variant.FromString(`{"port": 8080}`)},
		{`fromjson("[1, 2]")`, variant.Array(variant.FromInt(1), variant.FromInt(2))},
		{`diff(1, 1)`, variant.Null()},
		{`diff(1, 2)`, libdiff.Diff(variant.FromInt(1), variant.FromInt(2))},
		{`{"n": doc.name}`, variant.FromMap(map[string]*variant.Variant{"n": variant.FromString("api")})},
	}
	doc := testDoc(t)
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			got, err := Eval(tc.src, doc)
			if err != nil {
				t.Fatal(err)
			}
			if !variant.Equal(got, tc.want) {
				t.Errorf("got %v, want %v", got.Interface(), tc.want.Interface())
			}
		})
	}
}

func TestCompileFunction(t *testing.T) {
	fn, err := Compile(`doc * 2`)
	if err != nil {
		t.Fatal(err)
	}
	if fn.Type() != variant.FunctionType {
		t.Fatalf("got %s", fn.Type())
	}
	for i := range int64(3) {
		got, err := fn.Call(variant.FromInt(i))
		if err != nil {
			t.Fatal(err)
		}
		if !variant.Equal(got, variant.FromInt(2*i)) {
			t.Errorf("%d: got %v", i, got.Interface())
		}
	}
}

func TestEvalErrors(t *testing.T) {
	doc := testDoc(t)
	if _, err := Eval(`1 +`, doc); !errors.Is(err, ErrCompile) {
		t.Errorf("compile: got %v", err)
	}
	if _, err := Eval(`fromjson("{")`, doc); !errors.Is(err, ErrRun) {
		t.Errorf("run: got %v", err)
	}
}

func TestRegister(t *testing.T) {
	err := Register("twice", func(arg *variant.Variant) (*variant.Variant, error) {
		return variant.Array(arg.Clone(), arg.Clone()), nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := Register("twice", nil); !errors.Is(err, ErrFuncExists) {
		t.Errorf("got %v", err)
	}
	if !slices.Contains(Names(), "twice") {
		t.Errorf("twice not in %v", Names())
	}
	got, err := Eval(`twice(doc.name)`, testDoc(t))
	if err != nil {
		t.Fatal(err)
	}
	want := variant.Array(variant.FromString("api"), variant.FromString("api"))
	if !variant.Equal(got, want) {
		t.Errorf("got %v", got.Interface())
	}
	if Lookup("nope") != nil {
		t.Errorf("unexpected function nope")
	}
	res, err := Lookup("tojson").Call(variant.FromBool(true))
	if err != nil {
		t.Fatal(err)
	}
	if s, _ := res.Str(); s != "true" {
		t.Errorf("got %q", s)
	}
}
