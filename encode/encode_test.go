package encode

import (
	"bytes"
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/signadot/vconf/format"
	"github.com/signadot/vconf/variant"
)

func TestToJSON(t *testing.T) {
	tests := []struct {
		in   *variant.Variant
		want string
	}{
		{variant.Null(), `null`},
		{variant.FromBool(false), `false`},
		{variant.FromInt(-12), `-12`},
		{variant.FromUint(18446744073709551615), `18446744073709551615`},
		{variant.FromFloat(10), `10.0`},
		{variant.FromFloat(0.1), `0.1`},
		{variant.FromFloat(-0.0), `0.0`},
		{variant.FromFloat(1e21), `1e+21`},
		{variant.FromFloat(1.5e-7), `1.5e-7`},
		{variant.FromString(`a/b"c`), `"a\/b\"c"`},
		{variant.FromString("tab\there\x01\x1f"), `"tab\there\u0001\u001F"`},
		{variant.FromString("é"), `"é"`},
		{variant.Array(), `[]`},
		{variant.FromMap(nil), `{}`},
		{variant.Array(variant.FromInt(1), variant.FromString("x")), `[1, "x"]`},
		{variant.FromMap(map[string]*variant.Variant{
			"b": variant.FromInt(2),
			"a": variant.Array(variant.FromMap(nil)),
		}), `{"a": [{}], "b": 2}`},
	}
	for _, test := range tests {
		got, err := ToJSON(test.in)
		if err != nil {
			t.Errorf("%s: %v", test.want, err)
			continue
		}
		if got != test.want {
			t.Errorf("got %s want %s", got, test.want)
		}
	}
}

func TestEncodeRejects(t *testing.T) {
	fn := variant.FromFunc(func(v *variant.Variant) (*variant.Variant, error) { return v, nil })
	tests := []*variant.Variant{
		variant.Undefined(),
		fn,
		variant.FromFloat(math.NaN()),
		variant.FromFloat(math.Inf(-1)),
		variant.Array(variant.FromInt(1), variant.Undefined()),
		variant.FromMap(map[string]*variant.Variant{"f": fn}),
	}
	for _, v := range tests {
		buf := bytes.NewBuffer(nil)
		err := Encode(v, buf)
		if !errors.Is(err, ErrEncoding) {
			t.Errorf("%s: got %v", v.Type(), err)
		}
		if buf.Len() != 0 {
			t.Errorf("%s: partial output %q", v.Type(), buf.String())
		}
	}
}

func TestMustStringPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	MustString(variant.Undefined())
}

func TestEncodeIndent(t *testing.T) {
	v := variant.FromMap(map[string]*variant.Variant{
		"a": variant.Array(variant.FromInt(1), variant.FromInt(2)),
		"b": variant.FromMap(nil),
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, EncodeIndent(2)); err != nil {
		t.Fatal(err)
	}
	want := `{
  "a": [
    1,
    2
  ],
  "b": {}
}`
	if buf.String() != want {
		t.Errorf("got\n%s\nwant\n%s", buf.String(), want)
	}
}

func TestEncodeColors(t *testing.T) {
	saved := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = saved }()

	v := variant.FromMap(map[string]*variant.Variant{"k": variant.FromString("100%")})
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, EncodeColors(NewColors())); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	if !strings.Contains(got, "\x1b[") {
		t.Errorf("expected escape sequences in %q", got)
	}
	if !strings.Contains(got, "100%") || strings.Contains(got, "%%") {
		t.Errorf("percent signs mangled: %q", got)
	}

	buf.Reset()
	if err := Encode(v, buf, EncodeColors(nil)); err != nil {
		t.Fatal(err)
	}
	if buf.String() != `{"k": "100%"}` {
		t.Errorf("got %q", buf.String())
	}
}

func TestEncodeYAML(t *testing.T) {
	v := variant.FromMap(map[string]*variant.Variant{
		"zeta":  variant.FromString("last"),
		"alpha": variant.Array(variant.FromInt(1), variant.FromBool(true)),
		"mid":   variant.FromMap(map[string]*variant.Variant{"n": variant.Null()}),
	})
	buf := bytes.NewBuffer(nil)
	if err := Encode(v, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	a, m, z := strings.Index(got, "alpha:"), strings.Index(got, "mid:"), strings.Index(got, "zeta:")
	if a < 0 || m < a || z < m {
		t.Errorf("keys out of order:\n%s", got)
	}
	if !strings.Contains(got, "zeta: last") {
		t.Errorf("missing scalar member:\n%s", got)
	}

	err := Encode(variant.Array(variant.Undefined()), buf, EncodeFormat(format.YAMLFormat))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v", err)
	}
}

func TestEncodeConfigFormat(t *testing.T) {
	err := Encode(variant.Null(), bytes.NewBuffer(nil), EncodeFormat(format.ConfigFormat))
	if !errors.Is(err, ErrEncoding) {
		t.Errorf("got %v", err)
	}
}
