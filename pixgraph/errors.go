package pixgraph

import "errors"

// Sentinel errors for pixgraph operations.
var (
	// ErrEmptyImage indicates the input pixel array has no rows or columns.
	ErrEmptyImage = errors.New("pixgraph: input image must have at least one row and one column")

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("pixgraph: all rows must have the same length")

	// ErrGraphInvariant indicates a 2x2 pixel block has a diagonal
	// configuration that is neither diagonal-free, fully-connected, nor
	// checkerboard; this signals a non-reflexive or non-symmetric match
	// function.
	ErrGraphInvariant = errors.New("pixgraph: invalid 2x2 block diagonal configuration")

	// ErrOutOfBounds indicates a pixel coordinate outside the image.
	ErrOutOfBounds = errors.New("pixgraph: pixel coordinate out of range")
)
