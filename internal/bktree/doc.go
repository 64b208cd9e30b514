// Package bktree implements a Burkhard-Keller tree: an index over values in
// an arbitrary metric space supporting bounded-radius nearest-neighbour
// queries.
//
// The tree is parameterized by a Metric so the same structure serves any
// fixed-width code with an integer distance, not just frame hashes. Children
// are bucketed by their exact distance to the parent, and queries prune whole
// subtrees with the triangle inequality, which keeps lookups sub-linear on
// well-spread data.
//
// A tree is not safe for concurrent mutation. Build it fully, then share it
// freely for reads; FindWithin never mutates the tree.
package bktree
