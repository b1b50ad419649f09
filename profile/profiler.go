package profile

import (
	"context"
	"fmt"

	"github.com/guiguan/caster"
)

// Timeable is an operation whose run time depends on a problem size n.
//
// Setup prepares the state for a run of size n and is not timed. TimeMe
// performs the operation to be measured.
type Timeable interface {
	Setup(n int)
	TimeMe(n int)
}

// Point is a single measurement: TimeMe(N) took Millis milliseconds.
type Point struct {
	N      int
	Millis float64
}

// Series is a sequence of measurements for growing n.
type Series []Point

// Profiler runs the timing loop for a Timeable.
//
// A Profiler is good for a single call to TimingLoop; subscribers are
// released when the loop finishes.
type Profiler struct {
	Title    string
	timeable Timeable
	cfg      Config
	cast     *caster.Caster // broadcaster for measurements
}

// New creates a profiler for timeable.
func New(title string, timeable Timeable, cfg Config) (*Profiler, error) {
	if timeable == nil {
		return nil, fmt.Errorf("%w: timeable is required", ErrInvalidConfig)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Profiler{
		Title:    title,
		timeable: timeable,
		cfg:      cfg.normalized(),
		cast:     caster.New(nil),
	}, nil
}

// Config returns the effective configuration.
func (p *Profiler) Config() Config {
	return p.cfg
}

// Subscribe returns a channel receiving every point as soon as it has been
// measured. The channel is closed when the timing loop ends or ctx is done.
func (p *Profiler) Subscribe(ctx context.Context) <-chan Point {
	out := make(chan Point, p.cfg.MaxSteps)
	sub, ok := p.cast.Sub(ctx, uint(p.cfg.MaxSteps))
	if !ok {
		close(out)
		return out
	}
	go func() {
		defer close(out)
		for msg := range sub {
			if pt, ok := msg.(Point); ok {
				out <- pt
			}
		}
	}()
	return out
}

// TimingLoop measures TimeMe for n = StartN, 2·StartN, … and returns the
// series of positive timings. The loop ends when a run exceeds EndMillis,
// after MaxSteps measurements, or when ctx is done.
func (p *Profiler) TimingLoop(ctx context.Context) (Series, error) {
	defer p.cast.Close()
	var series Series
	n := p.cfg.StartN
	for step := 0; step < p.cfg.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return series, err
		}
		p.timeable.Setup(n)
		start := p.cfg.Clock()
		p.timeable.TimeMe(n)
		millis := float64(p.cfg.Clock().Sub(start).Microseconds()) / 1000.0
		T().Debugf("profile %s: n=%d took %.3f ms", p.Title, n, millis)
		if millis > 0 {
			pt := Point{N: n, Millis: millis}
			series = append(series, pt)
			p.cast.Pub(pt)
		}
		if millis > float64(p.cfg.EndMillis) {
			break
		}
		n *= 2
	}
	T().Infof("profile %s: %d data points", p.Title, len(series))
	return series, nil
}
