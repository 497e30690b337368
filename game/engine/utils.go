package engine

import "strings"

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ManhattanDistance calculates the Manhattan distance between two squares
func ManhattanDistance(from, to Square) int {
	return abs(from.X-to.X) + abs(from.Y-to.Y)
}

// DistanceToGoal returns the fewest single steps the player's pawn needs to
// reach its goal row, honouring walls but ignoring the other pawn. It
// reports false when every route is walled off.
func (r *Rules) DistanceToGoal(h History, player int) (int, bool) {
	start := r.PawnSquare(player, h)
	goal := r.GoalRow(player)
	walls := h.Walls()

	if start.Y == goal {
		return 0, true
	}

	dist := map[Square]int{start: 0}
	queue := []Square{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, next := range r.Neighbours(current) {
			if _, seen := dist[next]; seen || blocked(walls, current, next) {
				continue
			}
			dist[next] = dist[current] + 1
			if next.Y == goal {
				return dist[next], true
			}
			queue = append(queue, next)
		}
	}

	return 0, false
}

// GreedyPawnMove returns the legal pawn move that leaves the player to act
// closest to their goal, preferring the earliest in LegalPawnMoves order on
// ties. It reports false when the player has no pawn move.
func (r *Rules) GreedyPawnMove(h History) (Square, bool) {
	player := h.NextPlayer()
	best, bestDist, found := Square{}, UnreachableDistance+1, false

	for _, s := range r.LegalPawnMoves(h) {
		d, ok := r.DistanceToGoal(h.Append(NewPawnMove(s)), player)
		if !ok {
			d = UnreachableDistance
		}
		if d < bestDist {
			best, bestDist, found = s, d, true
		}
	}
	return best, found
}

// Render draws the board as text, top row first. Pawns are drawn as their
// player number, vertical walls as '|' between cells and horizontal walls
// as '-' below the cells they cover. The last line holds the column letters.
func (r *Rules) Render(h History) []string {
	n := r.BoardSize
	walls := h.Walls()
	pawns := [2]Square{r.PawnSquare(0, h), r.PawnSquare(1, h)}

	rows := make([]string, 0, 2*n)
	for y := n - 1; y >= 0; y-- {
		var cells strings.Builder
		cells.WriteString(string(rune('1' + y)))
		cells.WriteByte(' ')

		for x := 0; x < n; x++ {
			sq := Square{X: x, Y: y}
			switch sq {
			case pawns[0]:
				cells.WriteByte('0')
			case pawns[1]:
				cells.WriteByte('1')
			default:
				cells.WriteByte('.')
			}

			if x < n-1 {
				if blocked(walls, sq, Square{X: x + 1, Y: y}) {
					cells.WriteByte('|')
				} else {
					cells.WriteByte(' ')
				}
			}
		}
		rows = append(rows, cells.String())

		if y == 0 {
			break
		}

		var edges strings.Builder
		edges.WriteString("  ")
		for x := 0; x < n; x++ {
			if blocked(walls, Square{X: x, Y: y}, Square{X: x, Y: y - 1}) {
				edges.WriteByte('-')
			} else {
				edges.WriteByte(' ')
			}
			if x < n-1 {
				edges.WriteByte(' ')
			}
		}
		rows = append(rows, strings.TrimRight(edges.String(), " "))
	}

	var letters strings.Builder
	letters.WriteString("  ")
	for x := 0; x < n; x++ {
		if x > 0 {
			letters.WriteByte(' ')
		}
		letters.WriteRune(rune('A' + x))
	}
	rows = append(rows, letters.String())

	return rows
}
