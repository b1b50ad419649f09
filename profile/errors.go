package profile

import "errors"

var (
	// ErrInvalidConfig signals an invalid profiler configuration.
	ErrInvalidConfig = errors.New("profile: invalid configuration")
	// ErrTooFewPoints signals a series too short to fit a line through.
	ErrTooFewPoints = errors.New("profile: too few data points")
)
