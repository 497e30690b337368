package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrIllegalMove is returned by Play for a well-formed move that is not legal
	ErrIllegalMove = errors.New("illegal move")
	// ErrIllegalHistory is returned by Replay when a stored history contains an illegal move
	ErrIllegalHistory = errors.New("illegal history")
)

// LegalMoves returns every legal move of the player to act, pawn moves first
func (r *Rules) LegalMoves(h History) []Move {
	pawns := r.LegalPawnMoves(h)
	walls := r.LegalWallMoves(h)

	moves := make([]Move, 0, len(pawns)+len(walls))
	for _, s := range pawns {
		moves = append(moves, NewPawnMove(s))
	}
	for _, w := range walls {
		moves = append(moves, NewWallMove(w))
	}
	return moves
}

// IsValidMove reports whether m is legal for the player to act after h.
// The winner is not considered; callers that end the game on a goal row
// stop accepting moves themselves.
func (r *Rules) IsValidMove(h History, m Move) bool {
	if m.IsWall() {
		w := m.Wall()
		for _, legal := range r.LegalWallMoves(h) {
			if legal == w {
				return true
			}
		}
		return false
	}

	for _, legal := range r.LegalPawnMoves(h) {
		if legal == m.Square {
			return true
		}
	}
	return false
}

// Play validates m and returns the extended history
func (r *Rules) Play(h History, m Move) (History, error) {
	if !r.IsValidMove(h, m) {
		return h, fmt.Errorf("%w: %s for player %d", ErrIllegalMove, m, h.NextPlayer())
	}
	return h.Append(m), nil
}

// Replay re-validates every move of h against the prefix before it
func (r *Rules) Replay(h History) error {
	for i, m := range h {
		if !r.IsValidMove(h[:i], m) {
			return fmt.Errorf("%w: move %d (%s) by player %d", ErrIllegalHistory, i+1, m, i%PlayerCount)
		}
	}
	return nil
}

// Winner returns the player whose pawn stands on their goal row. Player 0 is
// checked first; a legal game can never have both pawns home.
func (r *Rules) Winner(h History) (int, bool) {
	for player := 0; player < PlayerCount; player++ {
		if r.PawnSquare(player, h).Y == r.GoalRow(player) {
			return player, true
		}
	}
	return 0, false
}

// Derive builds the full state snapshot for h
func (r *Rules) Derive(h History) *GameState {
	state := &GameState{
		Rules:      r.Name,
		BoardSize:  r.BoardSize,
		History:    h.String(),
		MoveCount:  len(h),
		NextPlayer: h.NextPlayer(),
		HeadToHead: r.HeadToHead(h),
		Board:      r.Render(h),
	}

	for player := 0; player < PlayerCount; player++ {
		state.Pawns[player] = r.PawnSquare(player, h).String()
		state.WallsRemaining[player] = r.WallsRemaining(player, h)
		if d, ok := r.DistanceToGoal(h, player); ok {
			state.Distances[player] = d
		} else {
			state.Distances[player] = UnreachableDistance
		}
	}

	state.Walls = make([]string, 0)
	for _, w := range h.Walls() {
		state.Walls = append(state.Walls, w.String())
	}

	if winner, ok := r.Winner(h); ok {
		state.GameOver = true
		state.Winner = &winner
		state.LegalPawnMoves = []string{}
		state.LegalWallMoves = []string{}
		return state
	}

	state.LegalPawnMoves = squareLabels(r.LegalPawnMoves(h))
	state.LegalWallMoves = wallLabels(r.LegalWallMoves(h))

	return state
}

func squareLabels(squares []Square) []string {
	out := make([]string, len(squares))
	for i, s := range squares {
		out[i] = s.String()
	}
	return out
}

func wallLabels(walls []Wall) []string {
	out := make([]string, len(walls))
	for i, w := range walls {
		out[i] = w.String()
	}
	return out
}
