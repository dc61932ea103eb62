package diagonal

import "errors"

// ErrUnresolvable is returned by the Iterative policy when a pass over the
// remaining ambiguous diagonal pairs resolves none of them — the
// heuristics cannot make progress.
var ErrUnresolvable = errors.New("diagonal: iterative heuristics made no progress")
