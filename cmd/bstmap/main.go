/*
Command bstmap demonstrates the bstmap package and its companions.

Usage:

	bstmap [-v] demo [-dot]
	bstmap [-v] profile [-name profile] [-start n] [-end ms] [-grid]
	bstmap [-v] philosophy [-source url] [-dest url] [-limit n] [-skip-visited]
*/
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

var errUsage = errors.New("usage error")

func main() {
	gtrace.CoreTracer = gologadapter.New()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		if !errors.Is(err, errUsage) {
			T().Errorf("%v", err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	global := flag.NewFlagSet("bstmap", flag.ContinueOnError)
	verbose := global.Bool("v", false, "trace debug messages")
	global.Usage = func() {
		fmt.Fprintln(global.Output(), "usage: bstmap [-v] demo|profile|philosophy [flags]")
		global.PrintDefaults()
	}
	if err := global.Parse(args); err != nil {
		return errUsage
	}
	if *verbose {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	} else {
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	}
	colored := isTerminal(out)
	color.NoColor = !colored
	if global.NArg() == 0 {
		global.Usage()
		return errUsage
	}
	cmd, rest := global.Arg(0), global.Args()[1:]
	switch cmd {
	case "demo":
		return runDemo(rest, out)
	case "profile":
		return runProfile(ctx, rest, out, colored)
	case "philosophy":
		return runPhilosophy(ctx, rest, out)
	}
	global.Usage()
	return fmt.Errorf("%w: unknown command %q", errUsage, cmd)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
