package latgraph

import "errors"

// ErrEmptyGrid indicates width or height is non-positive.
var ErrEmptyGrid = errors.New("latgraph: width and height must be positive")
