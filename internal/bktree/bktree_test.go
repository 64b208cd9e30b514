package bktree

import (
	"math/bits"
	"math/rand"
	"testing"
)

type hamming64 struct{}

func (hamming64) Distance(a, b uint64) int {
	return bits.OnesCount64(a ^ b)
}

func TestEmptyTreeFindsNothing(t *testing.T) {
	tree := New[uint64](hamming64{})
	if got := tree.FindWithin(42, 64); got != nil {
		t.Fatalf("expected nil from empty tree, got %v", got)
	}
	if tree.Len() != 0 {
		t.Fatalf("expected empty tree length 0, got %d", tree.Len())
	}
}

func TestNegativeRadiusFindsNothing(t *testing.T) {
	tree := New[uint64](hamming64{})
	tree.Insert(7)
	if got := tree.FindWithin(7, -1); got != nil {
		t.Fatalf("expected nil for negative radius, got %v", got)
	}
}

func TestInsertAllTracksLength(t *testing.T) {
	tree := New[uint64](hamming64{})
	tree.InsertAll([]uint64{1, 2, 3, 3, 4})
	if tree.Len() != 5 {
		t.Fatalf("expected length 5 including duplicates, got %d", tree.Len())
	}
}

func TestFindWithinRadiusZeroReturnsExactMatches(t *testing.T) {
	tree := New[uint64](hamming64{})
	tree.InsertAll([]uint64{0b1010, 0b1010, 0b1011, 0b0000})

	found := tree.FindWithin(0b1010, 0)
	if len(found) != 2 {
		t.Fatalf("expected both exact copies, got %d matches", len(found))
	}
	for _, match := range found {
		if match.Distance != 0 || match.Item != 0b1010 {
			t.Fatalf("unexpected match %+v", match)
		}
	}
}

// TestFindWithinMatchesBruteForce cross-checks pruned queries against an
// exhaustive scan on random hash sets.
func TestFindWithinMatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	values := make([]uint64, 300)
	for i := range values {
		values[i] = rng.Uint64()
	}

	tree := New[uint64](hamming64{})
	tree.InsertAll(values)

	metric := hamming64{}
	for _, radius := range []int{0, 1, 2, 5, 10, 24, 64} {
		for trial := 0; trial < 20; trial++ {
			target := values[rng.Intn(len(values))]
			if trial%2 == 0 {
				target = rng.Uint64()
			}

			want := map[uint64]int{}
			for _, value := range values {
				if metric.Distance(value, target) <= radius {
					want[value]++
				}
			}

			got := map[uint64]int{}
			for _, match := range tree.FindWithin(target, radius) {
				if d := metric.Distance(match.Item, target); d != match.Distance {
					t.Fatalf("radius %d: reported distance %d, actual %d", radius, match.Distance, d)
				}
				if match.Distance > radius {
					t.Fatalf("radius %d: match at distance %d escaped the radius", radius, match.Distance)
				}
				got[match.Item]++
			}

			if len(got) != len(want) {
				t.Fatalf("radius %d: got %d distinct matches, want %d", radius, len(got), len(want))
			}
			for value, count := range want {
				if got[value] != count {
					t.Fatalf("radius %d: value %x found %d times, want %d", radius, value, got[value], count)
				}
			}
		}
	}
}
