package bspline

import "errors"

// Sentinel errors for bspline operations. Callers branch with errors.Is;
// context is attached with fmt.Errorf("%w: ...") at the call site.
var (
	// ErrInvalidSpline indicates knots/points/degree violate
	// len(knots) = len(points) + degree + 1, or a closed-spline
	// constructor's wrap invariant (the last `degree` points must equal
	// the first `degree`).
	ErrInvalidSpline = errors.New("bspline: invalid knot/point/degree configuration")

	// ErrOutOfBounds indicates evaluation at a parameter u outside the
	// spline's domain.
	ErrOutOfBounds = errors.New("bspline: u outside spline domain")
)
