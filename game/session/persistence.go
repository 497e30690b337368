package session

import (
	"time"

	"github.com/wricardo/corridor/game/engine"
	"github.com/wricardo/corridor/game/service"
)

// SessionPersistence defines the interface for persisting sessions
type SessionPersistence interface {
	// Save persists a session to storage
	Save(session *service.Session) error

	// Load retrieves a session from storage by ID
	Load(id string) (*service.Session, error)

	// Delete removes a session from storage
	Delete(id string) error

	// ListAll returns all persisted session IDs
	ListAll() ([]string, error)

	// Exists checks if a session exists in storage
	Exists(id string) bool
}

// PersistedSessionData is the JSON layout of a session file. The history
// is authoritative and replays under Rules, the ruleset the session was
// created with, so later edits to that config leave the session intact.
// GameState is a snapshot for humans reading the file and is ignored on load.
type PersistedSessionData struct {
	ID             string            `json:"id"`
	ConfigID       string            `json:"config_id"`
	Rules          *engine.Rules     `json:"rules,omitempty"`
	History        string            `json:"history"`
	CreatedAt      time.Time         `json:"created_at"`
	LastAccessedAt time.Time         `json:"last_accessed_at"`
	GameState      *engine.GameState `json:"game_state,omitempty"`
}
