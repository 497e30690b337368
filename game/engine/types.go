package engine

import "strconv"

// Orientation is the axis a wall is laid along
type Orientation string

const (
	Horizontal Orientation = "h"
	Vertical   Orientation = "v"
)

// MoveKind tags a Move as a pawn step or a wall placement
type MoveKind uint8

const (
	PawnMove MoveKind = iota
	WallMove
)

const (
	// Label grammar limits: one column letter and one row digit
	MinBoardSize = 3
	MaxBoardSize = 9

	StandardBoardSize   = 9
	HistoryDelimiter    = ";"
	PlayerCount         = 2
	MaxBulkMoves        = 50
	UnreachableDistance = 999999
	WebSocketBufferSize = 256
)

// Square identifies one board cell. X is the column (A=0), Y the row (1=0).
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// String returns the square label, e.g. "E5"
func (s Square) String() string {
	return string(rune('A'+s.X)) + strconv.Itoa(s.Y+1)
}

// Wall is a two-cell barrier anchored at its lower-left cell. A horizontal
// wall lies between rows Y and Y+1 across columns X and X+1; a vertical wall
// lies between columns X and X+1 across rows Y and Y+1.
type Wall struct {
	Anchor      Square      `json:"anchor"`
	Orientation Orientation `json:"orientation"`
}

// String returns the wall label, e.g. "hD2"
func (w Wall) String() string {
	return string(w.Orientation) + w.Anchor.String()
}

// Move is a pawn move to Square or a wall placed at Square with Orientation.
// Orientation is empty for pawn moves.
type Move struct {
	Kind        MoveKind    `json:"kind"`
	Square      Square      `json:"square"`
	Orientation Orientation `json:"orientation,omitempty"`
}

// NewPawnMove returns a pawn move to s
func NewPawnMove(s Square) Move {
	return Move{Kind: PawnMove, Square: s}
}

// NewWallMove returns the move placing w
func NewWallMove(w Wall) Move {
	return Move{Kind: WallMove, Square: w.Anchor, Orientation: w.Orientation}
}

// IsWall reports whether the move places a wall
func (m Move) IsWall() bool {
	return m.Kind == WallMove
}

// Wall returns the placement of a wall move
func (m Move) Wall() Wall {
	return Wall{Anchor: m.Square, Orientation: m.Orientation}
}

// String returns the move label
func (m Move) String() string {
	if m.IsWall() {
		return m.Wall().String()
	}
	return m.Square.String()
}

// MoveHistoryEntry represents a single move in the game history
type MoveHistoryEntry struct {
	MoveNumber int    `json:"move_number"`
	Player     int    `json:"player"`
	Move       string `json:"move"`
	Wall       bool   `json:"wall"`
}

// GameState is a snapshot derived from a history. It is rebuilt on every
// request and never written back.
type GameState struct {
	Rules          string    `json:"rules"`
	BoardSize      int       `json:"board_size"`
	History        string    `json:"history"`
	MoveCount      int       `json:"move_count"`
	NextPlayer     int       `json:"next_player"`
	Pawns          [2]string `json:"pawns"`
	Walls          []string  `json:"walls"`
	WallsRemaining [2]int    `json:"walls_remaining"` // -1 when unlimited
	HeadToHead     bool      `json:"head_to_head"`
	LegalPawnMoves []string  `json:"legal_pawn_moves"`
	LegalWallMoves []string  `json:"legal_wall_moves"`
	Distances      [2]int    `json:"distances"`
	GameOver       bool      `json:"game_over"`
	Winner         *int      `json:"winner,omitempty"`
	Board          []string  `json:"board,omitempty"`
}
