package main

import (
	"github.com/signadot/vconf/variant"

	"github.com/scott-cotton/cli"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return forEachObj(cfg.MainConfig, cc, args, func(_ string, doc *variant.Variant) error {
		for _, s := range cfg.Sets {
			if err := s.apply(doc); err != nil {
				return err
			}
		}
		return cfg.output(cc.Out, doc)
	})
}
