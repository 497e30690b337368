// Package session provides session management for the Corridor game server.
//
// The session package implements:
//   - Thread-safe session storage and retrieval
//   - Unique session ID generation
//   - File persistence of session histories
//   - Session cleanup and expiration
//
// Core Types:
//
// Manager is the main session manager that handles all session operations.
// FilePersistence stores one JSON file per session in a directory.
//
// Session Identifiers:
//
// Generated IDs are 4 hex characters from crypto/rand. Caller-supplied IDs
// may use lower-case letters, digits, '-' and '_'; lookups are
// case-insensitive.
//
// Persistence:
//
// A session file holds the ruleset ID and the move history. Loading a file
// replays the history under that ruleset, so a hand-edited file with an
// illegal move is refused instead of producing an impossible position.
//
// Usage:
//
//	persistence, _ := session.NewFilePersistence("sessions", configManager)
//	manager := session.NewManagerWithPersistence(persistence)
//	manager.LoadPersistedSessions()
//
//	sess, err := manager.Create("", "standard", engine.Standard)
//	if err != nil {
//		log.Fatal(err)
//	}
package session
