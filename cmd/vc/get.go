package main

import (
	"errors"
	"fmt"

	"github.com/signadot/vconf/variant"

	"github.com/scott-cotton/cli"
)

var errNoPath = errors.New("path not found")

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	if path == "" {
		return fmt.Errorf("%w: invalid path \"\"", cli.ErrUsage)
	}
	return forEachObj(cfg.MainConfig, cc, args[1:], func(_ string, doc *variant.Variant) error {
		v, ok := doc.Lookup(path)
		if !ok {
			return fmt.Errorf("%w: %s", errNoPath, path)
		}
		return cfg.output(cc.Out, v)
	})
}
