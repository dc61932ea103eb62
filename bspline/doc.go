// Package bspline implements the quadratic B-spline core used to fit and
// evaluate shape boundaries: De Boor evaluation, derivatives, curvature
// energy, and the closed-spline variant smoothing operates on.
package bspline
