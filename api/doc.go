// Package api provides HTTP REST API handlers for the Corridor game server.
//
// Endpoints:
//
// Session Management:
//   - POST /api/sessions - Create a session ({"config_id": "mini"}, empty for the default)
//   - GET /api/sessions - List sessions (sort=created|accessed, order, limit)
//   - GET /api/sessions/unified - Several sessions at once (sessionIds, configId)
//   - GET /api/sessions/{id} - Session with its derived state
//   - DELETE /api/sessions/{id} - Delete a session
//
// Game Operations:
//   - GET /api/sessions/{id}/state - Derived game state
//   - GET /api/sessions/{id}/legal-moves - Moves for the player to act
//   - POST /api/sessions/{id}/move - Play one move ({"move": "E2"} or {"move": "hD7"})
//   - POST /api/sessions/{id}/bulk-move - Play up to 50 moves ({"moves": [...]})
//   - POST /api/sessions/{id}/validate - Check a move without playing it
//   - GET /api/sessions/{id}/history - Paginated move history
//   - POST /api/evaluate - State of any history, no session needed
//
// Configuration:
//   - GET /api/configs - List rulesets
//   - GET /api/configs/{name} - One ruleset
//   - POST /api/configs - Save a ruleset
//
// Other:
//   - GET /ws?session={id} - WebSocket state updates
//   - GET /health
//
// Errors:
//
// Errors are returned as {"error": "message"}. Unknown sessions and
// rulesets are 404, malformed labels 400, moves after the game ended 409,
// and histories that do not replay 422. An illegal but well-formed move is
// not an error: the move endpoint answers 200 with "success": false.
package api
