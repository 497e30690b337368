package engine

import "strings"

// The functions below are the label-level API over the Standard rules:
// histories, squares and walls go in and come out as strings.

// ParseMove parses a pawn or wall label under the Standard rules
func ParseMove(label string) (Move, error) {
	return Standard.ParseMove(label)
}

// ParseHistory parses a ';'-joined history under the Standard rules
func ParseHistory(history string) (History, error) {
	return Standard.ParseHistory(history)
}

// ToSquareLabel returns the label of grid coordinate (x, y), e.g. (2, 2) is "C3"
func ToSquareLabel(x, y int) (string, error) {
	return Standard.FormatSquare(x, y)
}

// FromSquareLabel returns the grid coordinate of a square label
func FromSquareLabel(label string) (Square, error) {
	return Standard.ParseSquare(label)
}

// Neighbours returns the labels of the squares orthogonally adjacent to label
func Neighbours(label string) ([]string, error) {
	sq, err := Standard.ParseSquare(label)
	if err != nil {
		return nil, err
	}
	return squareLabels(Standard.Neighbours(sq)), nil
}

// IsCollidingWall reports whether two wall labels share an anchor
func IsCollidingWall(a, b string) (bool, error) {
	wa, err := parseWall(a)
	if err != nil {
		return false, err
	}
	wb, err := parseWall(b)
	if err != nil {
		return false, err
	}
	return wa.CollidesWith(wb), nil
}

func parseWall(label string) (Wall, error) {
	m, err := Standard.ParseMove(label)
	if err != nil {
		return Wall{}, err
	}
	if !m.IsWall() {
		return Wall{}, &ParseError{Label: label, Reason: "expected a wall label"}
	}
	return m.Wall(), nil
}

// LocateWalls returns the wall labels of a history in placement order
func LocateWalls(history string) ([]string, error) {
	h, err := Standard.ParseHistory(history)
	if err != nil {
		return nil, err
	}
	return wallLabels(h.Walls()), nil
}

// NextPlayer returns the player to act. Only the move count matters, so the
// labels themselves are not parsed.
func NextPlayer(history string) int {
	return len(splitHistory(history)) % PlayerCount
}

// GroupMovesByPlayer partitions the move labels of a history by player
func GroupMovesByPlayer(history string) [2][]string {
	groups := [2][]string{{}, {}}
	for i, label := range splitHistory(history) {
		groups[i%PlayerCount] = append(groups[i%PlayerCount], label)
	}
	return groups
}

// LocateNextPawn returns the square label of a player's pawn
func LocateNextPawn(player int, history string) (string, error) {
	h, err := Standard.ParseHistory(history)
	if err != nil {
		return "", err
	}
	return Standard.PawnSquare(player, h).String(), nil
}

// HeadToHead reports whether the two pawns stand on adjacent squares
func HeadToHead(history string) (bool, error) {
	h, err := Standard.ParseHistory(history)
	if err != nil {
		return false, err
	}
	return Standard.HeadToHead(h), nil
}

// GetLegalPawnMoves returns the labels of the squares the player to act may move to
func GetLegalPawnMoves(history string) ([]string, error) {
	h, err := Standard.ParseHistory(history)
	if err != nil {
		return nil, err
	}
	return squareLabels(Standard.LegalPawnMoves(h)), nil
}

// GetLegalWallMoves returns the labels of the walls the player to act may place
func GetLegalWallMoves(history string) ([]string, error) {
	h, err := Standard.ParseHistory(history)
	if err != nil {
		return nil, err
	}
	return wallLabels(Standard.LegalWallMoves(h)), nil
}

// IsValidMove reports whether move is legal after history. A malformed
// history or move is reported as invalid along with its ParseError.
func IsValidMove(history, move string) (bool, error) {
	h, err := Standard.ParseHistory(history)
	if err != nil {
		return false, err
	}
	m, err := Standard.ParseMove(move)
	if err != nil {
		return false, err
	}
	return Standard.IsValidMove(h, m), nil
}

// UpdateGameState appends move to history without checking legality
func UpdateGameState(history, move string) string {
	if history == "" {
		return move
	}
	var b strings.Builder
	b.Grow(len(history) + len(HistoryDelimiter) + len(move))
	b.WriteString(history)
	b.WriteString(HistoryDelimiter)
	b.WriteString(move)
	return b.String()
}
