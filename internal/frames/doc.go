// Package frames turns video files into ordered perceptual-hash sequences.
//
// The FFmpeg source spawns a decoder that emits fixed-size raw RGB frames on
// stdout; each frame is hashed as it arrives and tagged with its decode-order
// index. A short read means the stream ended, not that extraction failed:
// everything decoded so far stays valid. Failing to start the decoder, or a
// decoder that exits without producing a single frame, is fatal.
package frames
