/*
Package profile measures how the run time of an operation grows with the
problem size.

A Timeable is set up and timed for n = StartN, 2·StartN, 4·StartN, …, until a
single run exceeds a time budget. Plotting the resulting series on a log-log
scale yields a straight line for polynomial algorithms; its slope estimates
the exponent, i.e. roughly 1 for linear and 2 for quadratic behaviour.

	p, _ := profile.New("append", profile.SliceAppendEnd(), profile.Config{})
	series, _ := p.TimingLoop(ctx)
	slope, _ := profile.EstimateSlope(series)

Each measured point is broadcast to subscribers while the loop runs.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package profile

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
