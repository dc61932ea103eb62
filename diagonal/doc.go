// Package diagonal resolves ambiguous diagonal connections in a similarity
// graph built by package pixgraph.
//
// Every 2x2 pixel block is examined. Fully-connected blocks have both
// diagonals dropped outright. Checkerboard blocks (exactly two diagonals,
// no orthogonal edges) are ambiguous: one of the two crossing diagonals
// must be dropped, chosen by summing three signed heuristic weights
// (curve length, sparsity, island) for each candidate and keeping the
// higher-scoring one.
//
// Two interchangeable policies are provided:
//
//   - Greedy scores every ambiguous diagonal once, using the graph as it
//     stands with every other ambiguous diagonal still present, and drops
//     the lower scorer. This is the default.
//   - Iterative tracks (min,max) weight intervals per diagonal, exploring
//     both "present" and "absent" worlds for every other still-ambiguous
//     diagonal reachable during a weight walk, and only resolves a pair
//     once the intervals make the winner unambiguous. It repeats passes
//     over still-undecided pairs and fails with ErrUnresolvable if a pass
//     makes no progress.
//
// Interval exploration is explicit depth-first branching bounded by the
// number of ambiguous edges, avoiding unbounded recursion.
package diagonal
