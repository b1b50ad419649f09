package profile

import (
	"fmt"
	"time"
)

const (
	// DefaultStartN is the problem size of the first measurement.
	DefaultStartN = 1000
	// DefaultEndMillis is the run time after which the timing loop stops.
	DefaultEndMillis = 1000
	// DefaultMaxSteps limits the number of doublings of n.
	DefaultMaxSteps = 20
)

// Config configures a Profiler. Zero fields are replaced by defaults.
type Config struct {
	StartN    int              // problem size to start with
	EndMillis int              // stop as soon as a single run takes longer
	MaxSteps  int              // upper bound on the number of measurements
	Clock     func() time.Time // time source, time.Now if nil
}

func (cfg Config) normalized() Config {
	if cfg.StartN == 0 {
		cfg.StartN = DefaultStartN
	}
	if cfg.EndMillis == 0 {
		cfg.EndMillis = DefaultEndMillis
	}
	if cfg.MaxSteps == 0 {
		cfg.MaxSteps = DefaultMaxSteps
	}
	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.StartN < 1 {
		return fmt.Errorf("%w: start size must be positive, is %d", ErrInvalidConfig, cfg.StartN)
	}
	if cfg.EndMillis < 1 {
		return fmt.Errorf("%w: time budget must be positive, is %d ms", ErrInvalidConfig, cfg.EndMillis)
	}
	if cfg.MaxSteps < 1 {
		return fmt.Errorf("%w: step limit must be positive, is %d", ErrInvalidConfig, cfg.MaxSteps)
	}
	return nil
}
