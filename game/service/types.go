package service

import (
	"time"

	"github.com/wricardo/corridor/game/engine"
)

// SessionInfo provides information about a game session
type SessionInfo struct {
	ID             string            `json:"id"`
	ConfigID       string            `json:"config_id"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state"`
	Rules          *engine.Rules     `json:"rules"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success   bool              `json:"success"`
	Move      string            `json:"move"`
	Player    int               `json:"player"`
	GameState *engine.GameState `json:"game_state"`
	Message   string            `json:"message"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// BulkMoveResult contains the result of multiple moves
type BulkMoveResult struct {
	MovesExecuted  int               `json:"moves_executed"`
	RequestedMoves int               `json:"requested_moves"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`   // Human-readable reason
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // illegal_move|invalid_label|game_over|victory
	StoppedOnMove  int               `json:"stopped_on_move,omitempty"`  // 1-based index of the move that caused stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	StartHistory string     `json:"start_history"`
	EndHistory   string     `json:"end_history"`
	Steps        []StepInfo `json:"steps,omitempty"`

	GameOver bool `json:"game_over"`
	Winner   *int `json:"winner,omitempty"`
}

// StepInfo is a compact record for each executed move in the bulk call
type StepInfo struct {
	Idx    int    `json:"idx"`
	Player int    `json:"player"`
	Move   string `json:"move"`
	Wall   bool   `json:"wall"`
	From   string `json:"from,omitempty"` // pawn square before a pawn move
}

// Event types
const (
	EventMove    = "move"
	EventWall    = "wall"
	EventVictory = "victory"
)

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"` // "move", "wall", "victory"
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	Player    int       `json:"player"`
	Move      string    `json:"move,omitempty"`
}

// ValidationResult reports whether a move would be accepted, without playing it
type ValidationResult struct {
	Move   string `json:"move"`
	Player int    `json:"player"`
	Valid  bool   `json:"valid"`
	Wall   bool   `json:"wall"`
	Reason string `json:"reason,omitempty"`
}

// LegalMovesResponse lists the moves available to the player to act
type LegalMovesResponse struct {
	Player     int      `json:"player"`
	From       string   `json:"from"`
	HeadToHead bool     `json:"head_to_head"`
	PawnMoves  []string `json:"pawn_moves"`
	WallMoves  []string `json:"wall_moves"`
	GameOver   bool     `json:"game_over"`
}

// EvaluateRequest asks for the state of an arbitrary history, optionally
// checking one more move against it. No session is touched.
type EvaluateRequest struct {
	Rules   string `json:"rules,omitempty"` // config ID, empty for the default
	History string `json:"history"`
	Move    string `json:"move,omitempty"`
}

// EvaluateResult is the answer to an EvaluateRequest
type EvaluateResult struct {
	Rules       string            `json:"rules"`
	History     string            `json:"history"`
	Move        string            `json:"move,omitempty"`
	Valid       *bool             `json:"valid,omitempty"`
	Reason      string            `json:"reason,omitempty"`
	NextHistory string            `json:"next_history,omitempty"`
	GameState   *engine.GameState `json:"game_state"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	History     string                    `json:"history"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a ruleset file
type ConfigInfo struct {
	Filename       string `json:"filename"`
	ConfigID       string `json:"config_id"` // The identifier to use for session creation
	Name           string `json:"name"`      // Display name
	Description    string `json:"description"`
	BoardSize      int    `json:"board_size"`
	WallsPerPlayer int    `json:"walls_per_player"`
}
