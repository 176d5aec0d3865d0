package main

import (
	"fmt"

	"github.com/signadot/vconf/eval"
	"github.com/signadot/vconf/variant"

	"github.com/scott-cotton/cli"
)

func vcEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if cfg.Funcs {
		fmt.Fprintf(cc.Out, "available functions:\n")
		fmt.Fprintf(cc.Out, "\t- getpath\n")
		for _, name := range eval.Names() {
			fmt.Fprintf(cc.Out, "\t- %s\n", name)
		}
		return nil
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression", cli.ErrUsage)
	}
	fn, err := eval.Compile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	run := func(_ string, doc *variant.Variant) error {
		res, err := fn.Call(doc)
		if err != nil {
			return err
		}
		return cfg.output(cc.Out, res)
	}
	if cfg.NoInput {
		if len(args) > 1 {
			return fmt.Errorf("%w: -n takes no files", cli.ErrUsage)
		}
		return run("", variant.Null())
	}
	return forEachObj(cfg.MainConfig, cc, args[1:], run)
}
