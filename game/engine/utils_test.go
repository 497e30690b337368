package engine

import (
	"reflect"
	"testing"
)

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		from, to Square
		want     int
	}{
		{Square{0, 0}, Square{0, 0}, 0},
		{Square{4, 0}, Square{4, 8}, 8},
		{Square{3, 5}, Square{4, 5}, 1},
		{Square{8, 8}, Square{0, 0}, 16},
	}

	for _, tt := range tests {
		if got := ManhattanDistance(tt.from, tt.to); got != tt.want {
			t.Errorf("ManhattanDistance(%v, %v) = %d, want %d", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestDistanceToGoal(t *testing.T) {
	tests := []struct {
		name    string
		history string
		player  int
		want    int
		ok      bool
	}{
		{"start player 0", "", 0, 8, true},
		{"start player 1", "", 1, 8, true},
		{"after a step", "E2", 0, 7, true},
		{"wall forces a detour", "hE8", 1, 9, true},
		{"detour around two walls", "hD1;hF1", 0, 10, true},
		{"sealed", "hA8;hC8;hE8;hG8;vH8", 1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Standard.DistanceToGoal(history(t, Standard, tt.history), tt.player)
			if ok != tt.ok {
				t.Fatalf("DistanceToGoal reachable = %v, want %v", ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Errorf("DistanceToGoal() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRender(t *testing.T) {
	mini := &Rules{Name: "mini", Description: "mini", BoardSize: 3, Starts: [2]string{"B1", "B3"}}
	h := history(t, mini, "hA2;vB1")

	got := mini.Render(h)
	want := []string{
		"3 . 1 .",
		"  - -",
		"2 . .|.",
		"",
		"1 . 0|.",
		"  A B C",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestGreedyPawnMove(t *testing.T) {
	tests := []struct {
		name    string
		history string
		want    string
	}{
		{"opening", "", "E2"},
		{"reply", "E2", "E8"},
		{"around a wall", "E2;hD2", "F2"},
		{"jump", "E2;E8;E3;E7;E4;E6;E5", "E4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Standard.GreedyPawnMove(history(t, Standard, tt.history))
			if !ok {
				t.Fatal("expected a move")
			}
			if got.String() != tt.want {
				t.Errorf("GreedyPawnMove(%q) = %s, want %s", tt.history, got, tt.want)
			}
		})
	}
}

func TestGreedyPawnMove_Race(t *testing.T) {
	var h History
	for len(h) < 100 {
		if _, over := Standard.Winner(h); over {
			break
		}
		s, ok := Standard.GreedyPawnMove(h)
		if !ok {
			t.Fatalf("no pawn move after %q", h)
		}
		h = h.Append(NewPawnMove(s))
	}

	winner, over := Standard.Winner(h)
	if !over {
		t.Fatalf("race did not finish: %q", h)
	}
	// Player 1 saves a ply by jumping over player 0 in the middle
	if winner != 1 || len(h) != 14 {
		t.Errorf("winner %d after %d plies, want player 1 after 14: %q", winner, len(h), h)
	}
	if err := Standard.Replay(h); err != nil {
		t.Errorf("greedy race is not a legal history: %v", err)
	}
}
