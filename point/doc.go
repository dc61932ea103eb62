// Package point defines a small 2-D floating point value type shared by the
// bspline, smoother, shape and raster packages.
//
// The original depixel implementation modeled points as Python complex
// numbers; that is an implementation detail of the source, not a semantic
// requirement, so this package instead exposes an explicit value type with
// componentwise arithmetic.
package point
