// Package shape groups similarity-graph components into Shapes and walks
// their corner lattice to extract outer and inner boundary loops as
// canonicalized Paths.
package shape
