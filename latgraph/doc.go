// Package latgraph builds and deforms the corner lattice: the dual graph
// over pixel-cell corners that bounds each pixel's cell.
//
// Like pixgraph, Graph is a struct-of-arrays adjacency representation over
// latcoord.Coord nodes rather than a generic attributed graph.
package latgraph
