package frames

import (
	"math/rand"
	"testing"
)

// TestHammingIsAMetric verifies the axioms the BK-tree pruning depends on.
func TestHammingIsAMetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	metric := Hamming{}

	sample := make([]Frame, 40)
	for i := range sample {
		sample[i] = Frame{Hash: rng.Uint64(), Index: uint64(i)}
	}

	for _, a := range sample {
		if metric.Distance(a, a) != 0 {
			t.Fatalf("distance(a, a) != 0 for %x", a.Hash)
		}
		for _, b := range sample {
			ab := metric.Distance(a, b)
			if ab < 0 {
				t.Fatalf("negative distance %d", ab)
			}
			if ba := metric.Distance(b, a); ba != ab {
				t.Fatalf("asymmetric distance: %d vs %d", ab, ba)
			}
			if ab == 0 && a.Hash != b.Hash {
				t.Fatalf("zero distance between distinct hashes %x and %x", a.Hash, b.Hash)
			}
			for _, c := range sample {
				ac := metric.Distance(a, c)
				bc := metric.Distance(b, c)
				if ac > ab+bc {
					t.Fatalf("triangle inequality violated: d(a,c)=%d > d(a,b)=%d + d(b,c)=%d", ac, ab, bc)
				}
			}
		}
	}
}

func TestHammingCountsDifferingBits(t *testing.T) {
	metric := Hamming{}
	cases := []struct {
		a, b uint64
		want int
	}{
		{0, 0, 0},
		{0, 1, 1},
		{0b1111, 0b0000, 4},
		{^uint64(0), 0, 64},
	}
	for _, tc := range cases {
		got := metric.Distance(Frame{Hash: tc.a}, Frame{Hash: tc.b})
		if got != tc.want {
			t.Fatalf("distance(%x, %x) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}
