package veb

import "errors"

var (
	// ErrOutOfRange indicates an element outside the tree's universe.
	ErrOutOfRange = errors.New("veb: element outside universe")
	// ErrUniverseBits indicates an unsupported universe exponent.
	ErrUniverseBits = errors.New("veb: universe bits must be between 1 and 64")
	// ErrStopIter may be returned by an iteration callback to end the
	// iteration early without an error being reported.
	ErrStopIter = errors.New("veb: stop iteration")
	// ErrInvariant is wrapped by Validate when the structure is corrupt.
	ErrInvariant = errors.New("veb: invariant violated")
)
