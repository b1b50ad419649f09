package main

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/npillmayer/bstmap/philosophy"
)

func runPhilosophy(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("philosophy", flag.ContinueOnError)
	source := fs.String("source", philosophy.DefaultSource, "article to start from")
	dest := fs.String("dest", philosophy.DefaultDestination, "article to reach")
	limit := fs.Int("limit", philosophy.DefaultLimit, "maximum number of pages to visit")
	skip := fs.Bool("skip-visited", false, "skip links to visited pages instead of stopping")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}
	fetcher := &philosophy.HTTPFetcher{UserAgent: "bstmap-philosophy/1.0"}
	w, err := philosophy.NewWalker(fetcher, philosophy.Config{
		Limit:       *limit,
		Destination: *dest,
		SkipVisited: *skip,
	})
	if err != nil {
		return err
	}
	hops := w.Subscribe(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for hop := range hops {
			fmt.Fprintf(out, "%2d  %s\n", hop.Step, hop.URL)
		}
	}()
	result, err := w.Walk(ctx, *source)
	<-done
	if err != nil {
		color.New(color.FgRed).Fprintf(out, "stopped after %d pages\n", len(result.Path))
		return err
	}
	color.New(color.FgGreen).Fprintf(out, "Done: reached %s in %d steps\n", *dest, len(result.Path)-1)
	return nil
}
