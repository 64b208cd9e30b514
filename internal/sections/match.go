package sections

import (
	"sectionizer/internal/bktree"
	"sectionizer/internal/frames"
)

// MatchedPair links a frame from the scanned sequence to its nearest
// within-radius neighbour in the other sequence's index.
type MatchedPair struct {
	Queried frames.Frame
	Matched frames.Frame
}

// MatchSequence finds, for every queried frame, the closest frame in index
// within radius. Frames with no neighbour inside the radius are dropped;
// absence is the signal, there is no explicit no-match marker. The result is
// ordered by queried index because the input is scanned in order.
func MatchSequence(queried []frames.Frame, index *bktree.Tree[frames.Frame], radius int) []MatchedPair {
	var pairs []MatchedPair
	for _, frame := range queried {
		candidates := index.FindWithin(frame, radius)
		if len(candidates) == 0 {
			continue
		}
		best := candidates[0]
		for _, candidate := range candidates[1:] {
			if candidate.Distance < best.Distance {
				best = candidate
			}
		}
		pairs = append(pairs, MatchedPair{Queried: frame, Matched: best.Item})
	}
	return pairs
}
