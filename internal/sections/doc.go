// Package sections finds time ranges where two videos show the same content.
//
// The pipeline is: extract both hash sequences concurrently, index each in a
// BK-tree, match every frame of one sequence against the other's tree within
// a Hamming radius, then collapse the matched indices into contiguous runs
// and keep only runs long enough to be a real shared segment (intros,
// credits, recaps). Each file gets its own section list expressed in its own
// timeline; the two lists are independent in length and boundaries.
package sections
