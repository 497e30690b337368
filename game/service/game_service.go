package service

import (
	"context"
	"errors"
	"time"

	"github.com/wricardo/corridor/game/engine"
)

var (
	// ErrSessionNotFound is returned for an unknown session ID
	ErrSessionNotFound = errors.New("session not found")
	// ErrConfigNotFound is returned for an unknown ruleset name
	ErrConfigNotFound = errors.New("configuration not found")
	// ErrGameOver is returned when a move is submitted after a player has won
	ErrGameOver = errors.New("game is over")
	// ErrNoMoves is returned by BulkMove for an empty request
	ErrNoMoves = errors.New("no moves given")
)

// GameService defines all game-related operations
type GameService interface {
	// Session Management
	CreateSession(ctx context.Context, configName string) (*SessionInfo, error)
	GetSession(ctx context.Context, sessionID string) (*SessionInfo, error)
	ListSessions(ctx context.Context) ([]*SessionInfo, error)
	DeleteSession(ctx context.Context, sessionID string) error

	// Game Operations
	Move(ctx context.Context, sessionID, move string) (*MoveResult, error)
	BulkMove(ctx context.Context, sessionID string, moves []string) (*BulkMoveResult, error)
	ValidateMove(ctx context.Context, sessionID, move string) (*ValidationResult, error)

	// Game State
	GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error)
	GetLegalMoves(ctx context.Context, sessionID string) (*LegalMovesResponse, error)
	GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error)
	Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResult, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
	LoadConfig(ctx context.Context, configName string) (*engine.Rules, error)
	SaveConfig(ctx context.Context, configName string, rules *engine.Rules) error
}

// SessionManager defines session storage operations
type SessionManager interface {
	Create(id, configID string, rules *engine.Rules) (*Session, error)
	Get(id string) (*Session, error)
	List() []*Session
	Delete(id string) error
	UpdateLastAccessed(id string) error
	Save(id string) error
}

// ConfigManager handles ruleset loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.Rules, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.Rules
	DefaultID() string
	SaveConfig(name string, rules *engine.Rules) error
}

// Session represents an active game session. History is the whole game;
// everything shown to clients is derived from it with Rules.
type Session struct {
	ID             string
	ConfigID       string
	Rules          *engine.Rules
	History        engine.History
	CreatedAt      time.Time
	LastAccessedAt time.Time
}

// State derives the current snapshot of the session
func (s *Session) State() *engine.GameState {
	return s.Rules.Derive(s.History)
}
