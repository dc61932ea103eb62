// Package depixel implements the Kopf-Lischinski depixelizing pixel art
// pipeline: a similarity graph over the input pixels is built and pruned
// of ambiguous diagonals, a deformed lattice traces the resulting shape
// boundaries, each boundary is fit to a closed quadratic B-spline, and the
// splines are smoothed by a stochastic energy minimization pass.
//
// The pipeline is exposed as a sequence of independent packages
// (pixgraph, diagonal, latgraph, shape, bspline, smoother) so each stage
// can be driven, inspected, or substituted on its own; Pipeline.Run wires
// them together in the fixed order the algorithm requires.
package depixel
