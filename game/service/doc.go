// Package service provides the business logic layer for the Corridor game server.
//
// The service package implements:
//   - Multi-session game management
//   - Ruleset selection per session
//   - Move validation and application
//   - Stateless evaluation of arbitrary histories
//   - Paginated move history
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game operations.
// SessionManager handles session creation, retrieval, and lifecycle.
// ConfigManager manages ruleset loading and validation.
//
// Architecture:
//
// The service layer sits between the transport layer (HTTP/WebSocket/MCP) and
// the rules engine. A session stores only its ruleset and move history; the
// game state handed to clients is derived from the history on every call.
// All writes to a history go through the service mutex.
//
// Usage:
//
//	sessionMgr := session.NewManager()
//	configMgr, _ := config.NewManager("configs")
//	gameService := service.NewGameService(sessionMgr, configMgr)
//
//	// Create a new session
//	sessionInfo, err := gameService.CreateSession(ctx, "standard")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Play a pawn move and a wall
//	result, err := gameService.Move(ctx, sessionInfo.ID, "E2")
//	result, err = gameService.Move(ctx, sessionInfo.ID, "hD7")
//
// Game Over:
//
// Once a pawn reaches its goal row the session refuses further moves with
// ErrGameOver. Validation and state queries keep working.
package service
