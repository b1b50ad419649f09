package bstmap

import "errors"

var (
	// ErrInvalidArgument signals a nil key or an unusable constructor argument.
	ErrInvalidArgument = errors.New("bstmap: invalid argument")
	// ErrTypeMismatch signals a key which cannot be ordered against the keys
	// already stored in a map.
	ErrTypeMismatch = errors.New("bstmap: key type mismatch")
	// ErrCorrupted is returned by Check for trees violating a structural invariant.
	ErrCorrupted = errors.New("bstmap: corrupted tree")
)
