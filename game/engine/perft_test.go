package engine

import "testing"

func TestPerft(t *testing.T) {
	tests := []struct {
		depth int
		want  int
	}{
		{0, 1},
		{1, 131},
		// 3 pawn replies of 131. A wall also takes the other orientation at
		// its anchor, leaving 126: the 4 walls touching E9 leave 2 pawn
		// replies (128), the other 124 leave 3 (129).
		{2, 16901},
	}

	for _, tt := range tests {
		if got := Standard.Perft(nil, tt.depth); got != tt.want {
			t.Errorf("Perft(depth %d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestPerft_DoesNotMutateHistory(t *testing.T) {
	// Spare capacity lets a careless append write into the caller's array
	h := make(History, 2, 4)
	copy(h, history(t, Standard, "E2;E8"))
	Standard.Perft(h, 2)
	if h.String() != "E2;E8" {
		t.Errorf("history changed to %q", h.String())
	}
	for i, m := range h[len(h):cap(h)] {
		if m != (Move{}) {
			t.Errorf("spare slot %d overwritten with %s", i, m)
		}
	}
}

func BenchmarkPerft2(b *testing.B) {
	for i := 0; i < b.N; i++ {
		Standard.Perft(nil, 2)
	}
}
