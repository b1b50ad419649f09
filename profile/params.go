package profile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
)

// Estimate is the slope measured for one combination of start size and
// time budget. Slope is NaN if the run yielded too few points.
type Estimate struct {
	StartN    int
	EndMillis int
	Slope     float64
}

// FindParameters profiles timeable for every combination of startNs and
// endMillis, helping to choose sizing parameters which give a stable slope.
// Fields of base other than StartN and EndMillis apply to every run.
func FindParameters(ctx context.Context, title string, timeable Timeable, base Config,
	startNs, endMillis []int) ([]Estimate, error) {
	//
	estimates := make([]Estimate, 0, len(startNs)*len(endMillis))
	for _, n := range startNs {
		for _, ms := range endMillis {
			cfg := base
			cfg.StartN, cfg.EndMillis = n, ms
			p, err := New(title, timeable, cfg)
			if err != nil {
				return estimates, err
			}
			series, err := p.TimingLoop(ctx)
			if err != nil {
				return estimates, err
			}
			slope, err := EstimateSlope(series)
			if errors.Is(err, ErrTooFewPoints) {
				slope = math.NaN()
			} else if err != nil {
				return estimates, err
			}
			T().Debugf("profile %s: startN=%d endMillis=%d slope=%.3f", title, n, ms, slope)
			estimates = append(estimates, Estimate{StartN: n, EndMillis: ms, Slope: slope})
		}
	}
	return estimates, nil
}

// WriteEstimates writes one line per estimate to w.
func WriteEstimates(w io.Writer, estimates []Estimate) error {
	for _, e := range estimates {
		if _, err := fmt.Fprintf(w, "estimated slope = %.3f for startN = %d, endMillis = %d\n",
			e.Slope, e.StartN, e.EndMillis); err != nil {
			return err
		}
	}
	return nil
}
