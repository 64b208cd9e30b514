package frames

import "math/bits"

// Frame is one decoded video frame reduced to a perceptual hash and its
// zero-based decode-order position. Index is the sole ordering key and never
// crosses sequences; frames from different files relate only through hash
// distance.
type Frame struct {
	Hash  uint64
	Index uint64
}

// Hamming measures frame similarity as the number of differing hash bits.
// It satisfies the metric-space axioms, which the BK-tree requires for its
// pruning to stay correct.
type Hamming struct{}

// Distance returns the Hamming distance between the two frame hashes.
func (Hamming) Distance(a, b Frame) int {
	return bits.OnesCount64(a.Hash ^ b.Hash)
}
