// Package smoother performs the stochastic, per-control-point
// energy-minimizing hill-climb that relaxes a fitted closed B-spline
// toward lower curvature while staying anchored to its original polyline.
package smoother
