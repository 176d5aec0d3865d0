package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/vconf/encode"
	"github.com/signadot/vconf/format"
	"github.com/signadot/vconf/parse"
	"github.com/signadot/vconf/variant"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"
)

type MainConfig struct {
	Color  bool   `cli:"name=color desc='encode with color'"`
	Indent int    `cli:"name=indent desc='indent output by n spaces per level'"`
	Base   string `cli:"name=base desc='directory against which config includes are resolved'"`

	C bool `cli:"name=c aliases=config desc='read config documents'"`
	Y bool `cli:"name=y aliases=yaml desc='write yaml'"`

	InFormat, OutFormat *format.Format

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fps ...**format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		for _, fp := range fps {
			*fp = &f
		}
		return f, nil
	})
}

func (cfg *MainConfig) inFormat() (format.Format, error) {
	f := format.JSONFormat
	if cfg.C {
		f = format.ConfigFormat
	}
	if cfg.InFormat != nil {
		f = *cfg.InFormat
	}
	if !f.IsInput() {
		return f, fmt.Errorf("%w: cannot read %s", cli.ErrUsage, f)
	}
	return f, nil
}

func (cfg *MainConfig) outFormat() (format.Format, error) {
	f := format.JSONFormat
	if cfg.Y {
		f = format.YAMLFormat
	}
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	if !f.IsOutput() {
		return f, fmt.Errorf("%w: cannot write %s", cli.ErrUsage, f)
	}
	return f, nil
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	var res []parse.ParseOption
	if cfg.Base != "" {
		res = append(res, parse.IncludeBase(cfg.Base))
	}
	return res
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	// outFormat was checked by vcMain
	f, _ := cfg.outFormat()
	res := []encode.EncodeOption{
		encode.EncodeFormat(f),
		encode.EncodeIndent(cfg.Indent),
	}
	if cfg.Color {
		res = append(res, encode.EncodeColors(encode.NewColors()))
		return res
	}
	colorsSet := false
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		colorsSet = opt.Value != nil
		break
	}
	if colorsSet {
		return res
	}
	fd, ok := w.(*os.File)
	if !ok {
		return res
	}
	if isatty.IsTerminal(fd.Fd()) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// output encodes v to w, ending json output with a newline.
func (cfg *MainConfig) output(w io.Writer, v *variant.Variant) error {
	if err := encode.Encode(v, w, cfg.encOpts(w)...); err != nil {
		return err
	}
	f, _ := cfg.outFormat()
	if f != format.JSONFormat {
		return nil
	}
	_, err := w.Write([]byte{'\n'})
	return err
}

type ViewConfig struct {
	*MainConfig

	Sets []setting
	View *cli.Command
}

type setting struct {
	path string
	val  *variant.Variant
}

func (cfg *ViewConfig) setOpt(_ *cli.Context, a string) (any, error) {
	s, err := parseSetting(a)
	if err != nil {
		return nil, err
	}
	cfg.Sets = append(cfg.Sets, s)
	return 0, nil
}

func parseSetting(a string) (setting, error) {
	key, val, ok := strings.Cut(a, "=")
	if !ok || key == "" {
		return setting{}, fmt.Errorf("%w: argument %q expected path=val", cli.ErrUsage, a)
	}
	var x any
	if err := yaml.Unmarshal([]byte(val), &x); err != nil {
		return setting{}, fmt.Errorf("%w: value of %s: %w", cli.ErrUsage, key, err)
	}
	v, err := variant.FromValue(x)
	if err != nil {
		return setting{}, fmt.Errorf("value of %s: %w", key, err)
	}
	return setting{path: key, val: v}, nil
}

// apply stores s in doc, failing rather than panicking when an
// intermediate value on the path is not an object.
func (s setting) apply(doc *variant.Variant) (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		e, ok := r.(error)
		if !ok {
			panic(r)
		}
		err = fmt.Errorf("cannot set %s: %w", s.path, e)
	}()
	doc.SetPath(s.path, s.val.Clone())
	return nil
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type DiffConfig struct {
	*MainConfig
	Reverse bool `cli:"name=r desc='reverse the diff'"`
	Merge   bool `cli:"name=merge desc='output a json merge patch'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig
	Merge   bool `cli:"name=merge desc='patch is a json merge patch'"`
	Diff    bool `cli:"name=diff desc='patch is the output of vc diff'"`
	Reverse bool `cli:"name=r desc='apply a vc diff reversed'"`

	Patch *cli.Command
}

type EvalConfig struct {
	*MainConfig
	NoInput bool `cli:"name=n desc='evaluate once with doc set to null'"`
	Funcs   bool `cli:"name=funcs desc='list available functions'"`

	Eval *cli.Command
}
