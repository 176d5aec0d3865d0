package parse

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/signadot/vconf/token"
	"github.com/signadot/vconf/variant"
)

func obj(m map[string]*variant.Variant) *variant.Variant {
	return variant.FromMap(m)
}

func TestConfigOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *variant.Variant
	}{
		{
			name: "bare members",
			in:   "x = 1 // comment\n y: \"z\"",
			want: obj(map[string]*variant.Variant{"x": variant.FromInt(1), "y": variant.FromString("z")}),
		},
		{
			name: "braced",
			in:   `{ "a": [1, 2,], b = {c = null,}, }`,
			want: obj(map[string]*variant.Variant{
				"a": variant.Array(variant.FromInt(1), variant.FromInt(2)),
				"b": obj(map[string]*variant.Variant{"c": variant.Null()}),
			}),
		},
		{
			name: "comments",
			in: `# hash
/* block
   comment */
key_1 = 'single' # trailing
flag = TRUE`,
			want: obj(map[string]*variant.Variant{"key_1": variant.FromString("single"), "flag": variant.FromBool(true)}),
		},
		{
			name: "no commas",
			in:   "list = [1 2 3]\nother = 4.5",
			want: obj(map[string]*variant.Variant{
				"list":  variant.Array(variant.FromInt(1), variant.FromInt(2), variant.FromInt(3)),
				"other": variant.FromFloat(4.5),
			}),
		},
		{
			name: "duplicate keys overwrite",
			in:   "a = 1\na = 2",
			want: obj(map[string]*variant.Variant{"a": variant.FromInt(2)}),
		},
		{
			name: "empty",
			in:   "// nothing\n",
			want: obj(nil),
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := ParseConfig(strings.NewReader(test.in))
			if err != nil {
				t.Fatal(err)
			}
			if !variant.Equal(got, test.want) {
				t.Errorf("got %v want %v", got.Interface(), test.want.Interface())
			}
		})
	}
}

func TestConfigErrors(t *testing.T) {
	tests := []struct {
		in  string
		err error
	}{
		{"a = ", ErrGrammar},
		{"a 1", ErrGrammar},
		{"{,}", ErrGrammar},
		{"a = [,]", ErrGrammar},
		{"a = 1,,", ErrGrammar},
		{"{a = 1} b = 2", ErrGrammar},
		{"{a = 1} \"b", ErrGrammar},
		{"{a = 1} \"b", token.ErrUnterminated},
		{"{a = 1", ErrGrammar},
		{"a = [1", ErrGrammar},
		{"a = b", ErrGrammar},
		{"1 = 2", ErrGrammar},
		{"a = 1 /* open", token.ErrUnterminated},
		{"a = @import \"x\"", token.ErrInclude},
	}
	for _, test := range tests {
		v, err := ParseConfig(strings.NewReader(test.in))
		if !errors.Is(err, test.err) {
			t.Errorf("%q: got %v want %v", test.in, err, test.err)
		}
		if v != nil {
			t.Errorf("%q: partial result returned", test.in)
		}
	}
}

func TestConfigInclude(t *testing.T) {
	fsys := fstest.MapFS{
		"conf/main.cfg": {Data: []byte(`
name = "main"
port = 80
@include "base.cfg"
extra = @include "sub/extra.cfg"
list = [1, @include "sub/extra.cfg"]
`)},
		"conf/base.cfg":      {Data: []byte(`port = 8080, base = true`)},
		"conf/sub/extra.cfg": {Data: []byte(`{ "e": 1 } // braced`)},
	}
	got, err := ParseConfigFile("conf/main.cfg", IncludeFS(fsys))
	if err != nil {
		t.Fatal(err)
	}
	extra := obj(map[string]*variant.Variant{"e": variant.FromInt(1)})
	want := obj(map[string]*variant.Variant{
		"name":  variant.FromString("main"),
		"port":  variant.FromInt(8080),
		"base":  variant.FromBool(true),
		"extra": extra,
		"list":  variant.Array(variant.FromInt(1), extra.Clone()),
	})
	if !variant.Equal(got, want) {
		t.Errorf("got %v", got.Interface())
	}
}

func TestConfigIncludeOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"main.cfg": {Data: []byte("@include \"base.cfg\"\nport = 1")},
		"base.cfg": {Data: []byte("port = 2")},
	}
	got, err := ParseConfigFile("main.cfg", IncludeFS(fsys))
	if err != nil {
		t.Fatal(err)
	}
	if p := variant.Get(got, "port", 0); p != 1 {
		t.Errorf("later definitions win: got %d", p)
	}
}

func TestConfigIncludeBase(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "shared"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shared", "db.cfg"), []byte(`db { host = "h" }`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "shared", "ok.cfg"), []byte(`db = { host = "h" }`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ParseConfig(strings.NewReader(`@include "ok.cfg"`), IncludeBase(filepath.Join(dir, "shared")))
	if err != nil {
		t.Fatal(err)
	}
	if h := variant.Get(got, "db.host", ""); h != "h" {
		t.Errorf("db.host = %q", h)
	}

	_, err = ParseConfig(strings.NewReader(`@include "db.cfg"`), IncludeBase(filepath.Join(dir, "shared")))
	if !errors.Is(err, ErrGrammar) {
		t.Errorf("error in included file: %v", err)
	}
	if err != nil && !strings.Contains(err.Error(), "db.cfg") {
		t.Errorf("error should name the included file: %v", err)
	}
}

func TestConfigIncludeRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	main := filepath.Join(dir, "main.cfg")
	if err := os.WriteFile(main, []byte(`@include "inc/a.cfg"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "inc"), 0o755); err != nil {
		t.Fatal(err)
	}
	// nested includes resolve against the including file
	if err := os.WriteFile(filepath.Join(dir, "inc", "a.cfg"), []byte(`a = 1 @include "b.cfg"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "inc", "b.cfg"), []byte(`b = 2`), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := ParseConfigFile(main)
	if err != nil {
		t.Fatal(err)
	}
	if variant.Get(got, "a", 0) != 1 || variant.Get(got, "b", 0) != 2 {
		t.Errorf("got %v", got.Interface())
	}
}

func TestConfigIncludeMissing(t *testing.T) {
	_, err := ParseConfig(strings.NewReader(`@include "missing.cfg"`), IncludeFS(fstest.MapFS{}))
	if !errors.Is(err, ErrInclude) {
		t.Errorf("got %v", err)
	}
	var pe *ParseErr
	if !errors.As(err, &pe) || pe.Pos.Line != 1 {
		t.Errorf("expected position of the directive, got %v", err)
	}
}

func TestConfigIncludeDepth(t *testing.T) {
	fsys := fstest.MapFS{
		"self.cfg": {Data: []byte(`x = 1 @include "self.cfg"`)},
	}
	_, err := ParseConfigFile("self.cfg", IncludeFS(fsys), MaxIncludeDepth(8))
	if !errors.Is(err, ErrIncludeDepth) {
		t.Errorf("got %v", err)
	}
}

func TestConfigMaxDepth(t *testing.T) {
	in := "a = [[[1]]]"
	if _, err := ParseConfig(strings.NewReader(in), MaxDepth(3)); err != nil {
		t.Errorf("depth 3: %v", err)
	}
	if _, err := ParseConfig(strings.NewReader(in), MaxDepth(2)); !errors.Is(err, ErrDepth) {
		t.Errorf("depth 2: %v", err)
	}
}
