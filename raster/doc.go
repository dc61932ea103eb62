// Package raster implements the reference, non-core collaborators around
// the depixel core: a PNG reader, a PNG emitter for each pipeline stage,
// and an SVG emitter for the final vector output. None of this package's
// types are required by the core pipeline; they may be swapped for any
// implementation satisfying the same signatures.
package raster
