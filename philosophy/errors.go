package philosophy

import "errors"

var (
	// ErrInvalidConfig signals an invalid walker configuration.
	ErrInvalidConfig = errors.New("philosophy: invalid configuration")
	// ErrFetch signals a page which could not be loaded.
	ErrFetch = errors.New("philosophy: cannot fetch page")
	// ErrNoLink signals a page without any qualifying link.
	ErrNoLink = errors.New("philosophy: no valid link")
	// ErrLoop signals that the walk returned to a page already visited.
	ErrLoop = errors.New("philosophy: loop detected")
	// ErrLimitExceeded signals that the step limit was reached before the destination.
	ErrLimitExceeded = errors.New("philosophy: step limit exceeded")
)
