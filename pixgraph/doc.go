// Package pixgraph builds and stores the similarity graph: an
// 8-neighborhood undirected graph over pixel coordinates, whose edges
// connect pixels the caller's match predicate considers similar.
//
// Graph is not a generic attributed graph but a purpose-built structure:
// pixel values and corner sets live in parallel maps keyed by pixel
// coordinate, and adjacency is a map of neighbor sets annotated with a
// diagonal flag.
package pixgraph
