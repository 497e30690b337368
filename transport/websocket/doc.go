// Package websocket provides WebSocket transport for the Corridor game server.
//
// The websocket package implements:
//   - Session-aware WebSocket connections
//   - State broadcasting after every accepted move
//   - Connection lifecycle management
//
// Architecture:
//
// A central Hub owns all connections. Each client has a read goroutine that
// only watches for disconnects and a write goroutine that drains its send
// buffer. Broadcasts never block the caller: a full hub queue drops the
// message and a full client buffer drops the client.
//
// Message Protocol:
//
// Clients connect to /ws?session=<id> and receive JSON messages:
//
//	{"session_id": "ab12", "event": "state_update", "game_state": {...}}
//	{"session_id": "ab12", "event": "game_events", "data": [...]}
//
// The current state is sent once on connect. Moves are submitted over the
// REST API or MCP, never over the socket.
//
// Usage:
//
//	hub := websocket.NewHub()
//	go hub.Run(ctx)
//
//	hub.BroadcastToSession(sessionID, state)
package websocket
