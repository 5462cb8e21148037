package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrIndexOutOfRange indicates a 1-indexed slot access fell outside [1, Len()].
	ErrIndexOutOfRange = errors.New("buffer: index out of range")

	// ErrNegativeLength indicates SetLength was called with a negative value.
	ErrNegativeLength = errors.New("buffer: negative length")
)
