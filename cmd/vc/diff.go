package main

import (
	"fmt"

	"github.com/signadot/vconf/libdiff"
	jsonpatch "github.com/signadot/vconf/patch"
	"github.com/signadot/vconf/variant"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	if cfg.Merge && cfg.Reverse {
		return fmt.Errorf("%w: -r does not apply to -merge", cli.ErrUsage)
	}
	a, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cfg.MainConfig, cc, args[1])
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	d, err := diffDocs(cfg, a, b)
	if err != nil {
		return err
	}
	if d == nil {
		return nil
	}
	if err := cfg.output(cc.Out, d); err != nil {
		return err
	}
	return cli.ExitCodeErr(1)
}

// diffDocs returns nil when a and b are equal.
func diffDocs(cfg *DiffConfig, a, b *variant.Variant) (*variant.Variant, error) {
	if variant.Equal(a, b) {
		return nil, nil
	}
	if cfg.Merge {
		return jsonpatch.CreateMerge(a, b)
	}
	d := libdiff.Diff(a, b)
	if !cfg.Reverse {
		return d, nil
	}
	rev, err := libdiff.Reverse(d)
	if err != nil {
		return nil, fmt.Errorf("error reversing: %w", err)
	}
	return rev, nil
}
