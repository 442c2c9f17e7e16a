package dpq

import "errors"

// Sentinel errors returned by the dual-priority queue.
var (
	// ErrInvalidArity indicates that Compare was asked to order two
	// key tuples of different lengths.
	ErrInvalidArity = errors.New("dpq: key tuples have mismatched arity")

	// ErrEmptyQueue indicates that Peek or Pop was called with no
	// items present.
	ErrEmptyQueue = errors.New("dpq: queue is empty")
)
