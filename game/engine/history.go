package engine

import "strings"

// History is the ordered list of moves played so far. Player 0 made the
// moves at even indexes, player 1 those at odd indexes.
type History []Move

// String returns the ';'-joined wire form
func (h History) String() string {
	labels := make([]string, len(h))
	for i, m := range h {
		labels[i] = m.String()
	}
	return strings.Join(labels, HistoryDelimiter)
}

// Append returns a new history with m added; h is left untouched
func (h History) Append(m Move) History {
	out := make(History, len(h), len(h)+1)
	copy(out, h)
	return append(out, m)
}

// NextPlayer returns the player to act: 0 on an even move count, 1 on odd
func (h History) NextPlayer() int {
	return len(h) % PlayerCount
}

// ByPlayer partitions the history by the player who made each move,
// preserving order within each partition.
func (h History) ByPlayer() [2]History {
	var out [2]History
	for i, m := range h {
		out[i%PlayerCount] = append(out[i%PlayerCount], m)
	}
	return out
}

// Walls returns the placed walls in placement order
func (h History) Walls() []Wall {
	var walls []Wall
	for _, m := range h {
		if m.IsWall() {
			walls = append(walls, m.Wall())
		}
	}
	return walls
}

// WallsPlacedBy counts the walls a player has placed
func (h History) WallsPlacedBy(player int) int {
	count := 0
	for i, m := range h {
		if i%PlayerCount == player && m.IsWall() {
			count++
		}
	}
	return count
}

// Entries returns the history as numbered entries
func (h History) Entries() []MoveHistoryEntry {
	entries := make([]MoveHistoryEntry, len(h))
	for i, m := range h {
		entries[i] = MoveHistoryEntry{
			MoveNumber: i + 1,
			Player:     i % PlayerCount,
			Move:       m.String(),
			Wall:       m.IsWall(),
		}
	}
	return entries
}

// PawnSquare returns the square of a player's pawn: their most recent pawn
// move, or their start square before they have moved it.
func (r *Rules) PawnSquare(player int, h History) Square {
	own := h.ByPlayer()[player]
	for i := len(own) - 1; i >= 0; i-- {
		if !own[i].IsWall() {
			return own[i].Square
		}
	}
	return r.Start(player)
}

// HeadToHead reports whether the two pawns stand on adjacent squares
func (r *Rules) HeadToHead(h History) bool {
	return ManhattanDistance(r.PawnSquare(0, h), r.PawnSquare(1, h)) == 1
}
