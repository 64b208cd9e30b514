package sections

import (
	"testing"

	"sectionizer/internal/bktree"
	"sectionizer/internal/frames"
)

func buildIndex(hashes ...uint64) *bktree.Tree[frames.Frame] {
	tree := bktree.New[frames.Frame](frames.Hamming{})
	for i, hash := range hashes {
		tree.Insert(frames.Frame{Hash: hash, Index: uint64(i)})
	}
	return tree
}

func TestMatchSequenceDropsFramesOutsideRadius(t *testing.T) {
	index := buildIndex(0b0000, 0b1111_0000_1111)

	queried := []frames.Frame{
		{Hash: 0b0001, Index: 0},           // distance 1 from first entry
		{Hash: ^uint64(0), Index: 1},       // far from everything
		{Hash: 0b1111_0000_1111, Index: 2}, // exact match
	}

	pairs := MatchSequence(queried, index, 2)
	if len(pairs) != 2 {
		t.Fatalf("expected 2 pairs, got %d", len(pairs))
	}
	if pairs[0].Queried.Index != 0 || pairs[1].Queried.Index != 2 {
		t.Fatalf("unexpected queried indices: %d, %d", pairs[0].Queried.Index, pairs[1].Queried.Index)
	}
}

func TestMatchSequencePicksNearestCandidate(t *testing.T) {
	// Both entries are inside the radius; only the closer one may win.
	index := buildIndex(0b0111, 0b0011)

	queried := []frames.Frame{{Hash: 0b0011, Index: 9}}
	pairs := MatchSequence(queried, index, 4)
	if len(pairs) != 1 {
		t.Fatalf("expected 1 pair, got %d", len(pairs))
	}
	if pairs[0].Matched.Hash != 0b0011 {
		t.Fatalf("expected nearest hash %b, got %b", 0b0011, pairs[0].Matched.Hash)
	}
}

func TestMatchSequenceKeepsQueriedOrder(t *testing.T) {
	index := buildIndex(1, 2, 3)
	queried := []frames.Frame{
		{Hash: 1, Index: 0},
		{Hash: 2, Index: 1},
		{Hash: 3, Index: 2},
		{Hash: 1, Index: 3},
	}

	pairs := MatchSequence(queried, index, 0)
	if len(pairs) != 4 {
		t.Fatalf("expected 4 pairs, got %d", len(pairs))
	}
	for i := 1; i < len(pairs); i++ {
		if pairs[i].Queried.Index <= pairs[i-1].Queried.Index {
			t.Fatalf("pairs out of order at %d: %d after %d", i, pairs[i].Queried.Index, pairs[i-1].Queried.Index)
		}
	}
}

func TestMatchSequenceEmptyInputs(t *testing.T) {
	index := buildIndex(1, 2)
	if pairs := MatchSequence(nil, index, 4); pairs != nil {
		t.Fatalf("expected nil for empty queried sequence, got %v", pairs)
	}

	empty := bktree.New[frames.Frame](frames.Hamming{})
	queried := []frames.Frame{{Hash: 1, Index: 0}}
	if pairs := MatchSequence(queried, empty, 64); pairs != nil {
		t.Fatalf("expected nil against empty index, got %v", pairs)
	}
}
