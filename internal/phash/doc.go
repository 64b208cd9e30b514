// Package phash derives fixed-width perceptual hashes from raw RGB frames.
//
// The hash contract is intentionally small: any deterministic function that
// places visually similar frames at a small Hamming distance can stand in for
// the default DoubleGradient implementation. The matching core never inspects
// hash internals, only XOR popcounts.
package phash
