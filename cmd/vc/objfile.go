package main

import (
	"fmt"
	"io"
	"os"

	"github.com/signadot/vconf/format"
	"github.com/signadot/vconf/parse"
	"github.com/signadot/vconf/variant"

	"github.com/scott-cotton/cli"
)

// getObjFile reads the document at path, or from the command input when
// path is "-".
func getObjFile(cfg *MainConfig, cc *cli.Context, path string) (*variant.Variant, error) {
	f, err := cfg.inFormat()
	if err != nil {
		return nil, err
	}
	if path == "-" {
		return readObj(cfg, f, cc.In)
	}
	if f == format.ConfigFormat {
		return parse.ParseConfigFile(path, cfg.parseOpts()...)
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return readObj(cfg, f, file)
}

func readObj(cfg *MainConfig, f format.Format, r io.Reader) (*variant.Variant, error) {
	switch f {
	case format.ConfigFormat:
		return parse.ParseConfig(r, cfg.parseOpts()...)
	case format.JSONFormat:
		return parse.ParseReader(r, cfg.parseOpts()...)
	}
	return nil, fmt.Errorf("%w: cannot read %s", cli.ErrUsage, f)
}

// forEachObj calls fn with each document named by args, or with the
// command input when args is empty.
func forEachObj(cfg *MainConfig, cc *cli.Context, args []string, fn func(string, *variant.Variant) error) error {
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := getObjFile(cfg, cc, arg)
		if err != nil {
			return fmt.Errorf("error decoding %s: %w", arg, err)
		}
		if err := fn(arg, doc); err != nil {
			return fmt.Errorf("error processing %s: %w", arg, err)
		}
	}
	return nil
}
