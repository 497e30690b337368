package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidLabel is wrapped by every ParseError
var ErrInvalidLabel = errors.New("invalid label")

// ParseError reports a square, wall or history label that does not match
// the label grammar.
type ParseError struct {
	Label  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %s", e.Label, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return ErrInvalidLabel
}

// ParseSquare parses a column letter and row digit, e.g. "E5"
func (r *Rules) ParseSquare(label string) (Square, error) {
	return r.parseSquare(label, label)
}

func (r *Rules) parseSquare(label, full string) (Square, error) {
	if len(label) != 2 {
		return Square{}, &ParseError{Label: full, Reason: "expected a column letter followed by a row digit"}
	}

	x := int(label[0]) - 'A'
	y := int(label[1]) - '1'

	if x < 0 || x >= r.BoardSize {
		return Square{}, &ParseError{Label: full, Reason: fmt.Sprintf("column must be A-%c", 'A'+r.BoardSize-1)}
	}
	if y < 0 || y >= r.BoardSize {
		return Square{}, &ParseError{Label: full, Reason: fmt.Sprintf("row must be 1-%d", r.BoardSize)}
	}

	return Square{X: x, Y: y}, nil
}

// FormatSquare returns the label of (x, y)
func (r *Rules) FormatSquare(x, y int) (string, error) {
	s := Square{X: x, Y: y}
	if !r.OnBoard(s) {
		return "", fmt.Errorf("%w: (%d,%d) is off the %dx%d board", ErrInvalidLabel, x, y, r.BoardSize, r.BoardSize)
	}
	return s.String(), nil
}

// ParseMove parses a pawn label ("E5") or a wall label ("hD2", "vA1").
// A wall label only has to name an on-board anchor; whether the placement
// is legal is decided by LegalWallMoves.
func (r *Rules) ParseMove(label string) (Move, error) {
	if label == "" {
		return Move{}, &ParseError{Label: label, Reason: "empty move"}
	}

	if IsWallMove(label) {
		sq, err := r.parseSquare(label[1:], label)
		if err != nil {
			return Move{}, err
		}
		return Move{Kind: WallMove, Square: sq, Orientation: Orientation(label[:1])}, nil
	}

	sq, err := r.parseSquare(label, label)
	if err != nil {
		return Move{}, err
	}
	return NewPawnMove(sq), nil
}

// ParseHistory parses a ';'-joined history. The empty string is the empty history.
func (r *Rules) ParseHistory(s string) (History, error) {
	labels := splitHistory(s)
	h := make(History, 0, len(labels))
	for i, label := range labels {
		m, err := r.ParseMove(label)
		if err != nil {
			return nil, fmt.Errorf("history move %d: %w", i+1, err)
		}
		h = append(h, m)
	}
	return h, nil
}

// IsWallMove reports whether a label carries a wall orientation prefix
func IsWallMove(label string) bool {
	return strings.HasPrefix(label, string(Horizontal)) || strings.HasPrefix(label, string(Vertical))
}

func splitHistory(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, HistoryDelimiter)
}
