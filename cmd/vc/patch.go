package main

import (
	"fmt"

	"github.com/signadot/vconf/libdiff"
	jsonpatch "github.com/signadot/vconf/patch"
	"github.com/signadot/vconf/variant"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if cfg.Merge && cfg.Diff {
		return fmt.Errorf("%w: at most one of -merge and -diff", cli.ErrUsage)
	}
	if cfg.Reverse && !cfg.Diff {
		return fmt.Errorf("%w: -r requires -diff", cli.ErrUsage)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file", cli.ErrUsage)
	}
	p, err := getObjFile(cfg.MainConfig, cc, args[0])
	if err != nil {
		return fmt.Errorf("error decoding patch %s: %w", args[0], err)
	}
	apply, err := patchFunc(cfg, p)
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return forEachObj(cfg.MainConfig, cc, args[1:], func(_ string, doc *variant.Variant) error {
		res, err := apply(doc)
		if err != nil {
			return err
		}
		return cfg.output(cc.Out, res)
	})
}

func patchFunc(cfg *PatchConfig, p *variant.Variant) (func(*variant.Variant) (*variant.Variant, error), error) {
	switch {
	case cfg.Merge:
		return func(doc *variant.Variant) (*variant.Variant, error) {
			return jsonpatch.Merge(doc, p)
		}, nil
	case cfg.Diff:
		if cfg.Reverse {
			rev, err := libdiff.Reverse(p)
			if err != nil {
				return nil, fmt.Errorf("error reversing diff: %w", err)
			}
			p = rev
		}
		return func(doc *variant.Variant) (*variant.Variant, error) {
			return libdiff.Patch(doc, p)
		}, nil
	}
	jp, err := jsonpatch.Decode(p)
	if err != nil {
		return nil, err
	}
	return jp.Apply, nil
}
