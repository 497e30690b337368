package engine

// directions lists the orthogonal steps in the order neighbours are reported
var directions = []struct{ dx, dy int }{
	{0, 1},  // North (toward row 9)
	{0, -1}, // South
	{-1, 0}, // West
	{1, 0},  // East
}

func (s Square) step(dx, dy int) Square {
	return Square{X: s.X + dx, Y: s.Y + dy}
}

// Neighbours returns the up to four orthogonally adjacent on-board squares.
// A corner has 2, an edge square 3 and an interior square 4.
func (r *Rules) Neighbours(s Square) []Square {
	out := make([]Square, 0, len(directions))
	for _, d := range directions {
		if n := s.step(d.dx, d.dy); r.OnBoard(n) {
			out = append(out, n)
		}
	}
	return out
}

// LegalPawnMoves returns the squares the player to act may move their pawn to.
//
// Each unblocked neighbour is a destination, except the opponent's square.
// Facing the opponent, the pawn jumps straight over it when the square
// beyond is on the board and not walled off; otherwise it may step to either
// side of the opponent where no wall or board edge is in the way.
func (r *Rules) LegalPawnMoves(h History) []Square {
	player := h.NextPlayer()
	from := r.PawnSquare(player, h)
	opponent := r.PawnSquare(1-player, h)
	walls := h.Walls()

	var moves []Square
	seen := make(map[Square]bool)
	add := func(s Square) {
		if s == opponent || s == from || seen[s] {
			return
		}
		seen[s] = true
		moves = append(moves, s)
	}

	for _, d := range directions {
		next := from.step(d.dx, d.dy)
		if !r.OnBoard(next) || blocked(walls, from, next) {
			continue
		}

		if next != opponent {
			add(next)
			continue
		}

		beyond := next.step(d.dx, d.dy)
		if r.OnBoard(beyond) && !blocked(walls, next, beyond) {
			add(beyond)
			continue
		}

		// Straight jump unavailable: sidestep around the opponent
		for _, side := range []struct{ dx, dy int }{{d.dy, d.dx}, {-d.dy, -d.dx}} {
			diagonal := next.step(side.dx, side.dy)
			if r.OnBoard(diagonal) && !blocked(walls, next, diagonal) {
				add(diagonal)
			}
		}
	}

	return moves
}
