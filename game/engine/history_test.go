package engine

import (
	"reflect"
	"testing"
)

func TestHistory_Append(t *testing.T) {
	h := history(t, Standard, "E2;E8")
	next := h.Append(NewPawnMove(sq(t, "E3")))

	if h.String() != "E2;E8" {
		t.Errorf("original history changed to %q", h.String())
	}
	if next.String() != "E2;E8;E3" {
		t.Errorf("appended history = %q, want E2;E8;E3", next.String())
	}
}

func TestHistory_ByPlayer(t *testing.T) {
	groups := history(t, Standard, "E2;E8;hD2;E7;E3").ByPlayer()

	if got := groups[0].String(); got != "E2;hD2;E3" {
		t.Errorf("player 0 moves = %q, want E2;hD2;E3", got)
	}
	if got := groups[1].String(); got != "E8;E7" {
		t.Errorf("player 1 moves = %q, want E8;E7", got)
	}
}

func TestHistory_WallsPlacedBy(t *testing.T) {
	h := history(t, Standard, "hA1;hB3;E2;vC5;hH8")
	if got := h.WallsPlacedBy(0); got != 2 {
		t.Errorf("WallsPlacedBy(0) = %d, want 2", got)
	}
	if got := h.WallsPlacedBy(1); got != 2 {
		t.Errorf("WallsPlacedBy(1) = %d, want 2", got)
	}
}

func TestHistory_Entries(t *testing.T) {
	entries := history(t, Standard, "E2;hE7").Entries()
	want := []MoveHistoryEntry{
		{MoveNumber: 1, Player: 0, Move: "E2", Wall: false},
		{MoveNumber: 2, Player: 1, Move: "hE7", Wall: true},
	}
	if !reflect.DeepEqual(entries, want) {
		t.Errorf("Entries() = %+v, want %+v", entries, want)
	}
}

func TestPawnSquare(t *testing.T) {
	tests := []struct {
		name    string
		history string
		player  int
		want    string
	}{
		{"start player 0", "", 0, "E1"},
		{"start player 1", "", 1, "E9"},
		{"after pawn move", "E2;E8", 1, "E8"},
		{"walls do not move the pawn", "E2;hA1;E3;vB2", 1, "E9"},
		{"latest pawn move wins", "E2;E8;E3;E7;hA1", 0, "E3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Standard.PawnSquare(tt.player, history(t, Standard, tt.history))
			if got.String() != tt.want {
				t.Errorf("PawnSquare(%d) = %s, want %s", tt.player, got, tt.want)
			}
		})
	}
}
