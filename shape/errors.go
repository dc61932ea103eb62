package shape

import "errors"

// ErrNoOuterLoop indicates a shape's corner subgraph produced no loop
// containing its lexicographically smallest corner, which should never
// happen for a well-formed grid graph and signals caller misuse.
var ErrNoOuterLoop = errors.New("shape: no outer loop found for shape")
