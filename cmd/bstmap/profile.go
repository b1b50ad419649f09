package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/npillmayer/bstmap/profile"
)

func runProfile(ctx context.Context, args []string, out io.Writer, colored bool) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	name := fs.String("name", "", "profile to run (default: all)")
	startN := fs.Int("start", 0, "problem size to start with (default: per profile)")
	endMillis := fs.Int("end", 0, "time budget of a single run in ms (default: per profile)")
	grid := fs.Bool("grid", false, "estimate slopes for a grid of start sizes and time budgets")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	catalogue := profile.Builtin()
	if *name != "" {
		if ok, _ := catalogue.ContainsKey(*name); !ok {
			return fmt.Errorf("%w: unknown profile %q, have %v", errUsage, *name, catalogue.Keys())
		}
	}
	for _, p := range catalogue.Entries() {
		if *name != "" && p.Key != *name {
			continue
		}
		cfg := p.Value.Config
		if *startN > 0 {
			cfg.StartN = *startN
		}
		if *endMillis > 0 {
			cfg.EndMillis = *endMillis
		}
		if *grid {
			startNs := []int{cfg.StartN, 2 * cfg.StartN, 4 * cfg.StartN, 8 * cfg.StartN}
			budgets := []int{cfg.EndMillis, cfg.EndMillis + 1000, cfg.EndMillis + 2000}
			estimates, err := profile.FindParameters(ctx, p.Key, p.Value.Timeable, cfg, startNs, budgets)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, p.Key)
			if err := profile.WriteEstimates(out, estimates); err != nil {
				return err
			}
			continue
		}
		if _, err := profile.Run(ctx, out, p.Key, p.Value.Timeable, cfg, colored); err != nil {
			return err
		}
		fmt.Fprintln(out)
	}
	return nil
}
