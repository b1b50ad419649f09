package profile

import (
	"fmt"
	"math"
)

// EstimateSlope fits a straight line through the series on a log-log scale
// by least squares and returns its slope.
func EstimateSlope(series Series) (float64, error) {
	var xs, ys []float64
	for _, pt := range series {
		if pt.N <= 0 || pt.Millis <= 0 {
			continue
		}
		xs = append(xs, math.Log(float64(pt.N)))
		ys = append(ys, math.Log(pt.Millis))
	}
	if len(xs) < 2 {
		return 0, fmt.Errorf("%w: have %d, need at least 2", ErrTooFewPoints, len(xs))
	}
	mx, my := mean(xs), mean(ys)
	var sxy, sxx float64
	for i := range xs {
		dx := xs[i] - mx
		sxy += dx * (ys[i] - my)
		sxx += dx * dx
	}
	if sxx == 0 {
		return 0, fmt.Errorf("%w: all points have the same size", ErrTooFewPoints)
	}
	return sxy / sxx, nil
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
