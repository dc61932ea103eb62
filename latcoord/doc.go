// Package latcoord represents corner-lattice coordinates exactly.
//
// Lattice deformation introduces fractional corner points whose
// fractional part is always a multiple of 1/4. Representing these as plain
// float64 pairs would make map-key equality and hashing fragile across
// arithmetic paths that should yield identical points. Instead each axis is
// stored as an integer part plus a quarter-step numerator in 0..3.
package latcoord
