package session

import (
	"fmt"
	"slices"
	"testing"
)

func TestShuffle_IsPermutation(t *testing.T) {
	for n := 0; n <= 12; n++ {
		in := make([]int, n)
		for i := range in {
			in[i] = i
		}
		orig := slices.Clone(in)

		for run := 0; run < 20; run++ {
			out := Shuffle(in)
			if len(out) != n {
				t.Fatalf("n=%d: len = %d", n, len(out))
			}
			sorted := slices.Clone(out)
			slices.Sort(sorted)
			if !slices.Equal(sorted, orig) {
				t.Fatalf("n=%d: %v is not a permutation of %v", n, out, orig)
			}
		}
		if !slices.Equal(in, orig) {
			t.Errorf("n=%d: input mutated to %v", n, in)
		}
	}
}

func TestShuffle_ReachesEveryOrder(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 3000; i++ {
		seen[fmt.Sprint(Shuffle([]string{"a", "b", "c"}))] = true
	}
	if len(seen) != 6 {
		t.Errorf("saw %d distinct orders of 3 items, want 6: %v", len(seen), seen)
	}
}

func TestShuffleWith_Deterministic(t *testing.T) {
	// Always picking index 0 rotates left by one.
	got := ShuffleWith([]int{1, 2, 3, 4}, func(int) int { return 0 })
	want := []int{2, 3, 4, 1}
	if !slices.Equal(got, want) {
		t.Errorf("ShuffleWith = %v, want %v", got, want)
	}

	// Picking the last valid index leaves the order unchanged.
	got = ShuffleWith([]int{1, 2, 3, 4}, func(n int) int { return n - 1 })
	if !slices.Equal(got, []int{1, 2, 3, 4}) {
		t.Errorf("ShuffleWith identity = %v", got)
	}
}
