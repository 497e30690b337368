// Package mcp provides a Model Context Protocol server for the Corridor game.
//
// The server is a thin proxy: every tool calls the REST API, so the MCP
// surface never bypasses the service layer. Output is plain text tuned for
// AI agents, with the board drawing and legal moves inlined.
//
// MCP Tools:
//   - create_session, list_sessions, get_session: session management
//   - game_state: board, pawns, walls, distances and legal pawn moves
//   - legal_moves: every pawn move and wall placement for the player to act
//   - move, bulk_move: play moves; both take an intent string
//   - validate_move: check a move without playing it
//   - move_history: paginated history
//   - list_configs: available rulesets
//   - game_instructions: rules and notation
//   - describe_square: walls and edges around one square
//
// Transport Modes:
//
// The server package of mcp-go serves the same tool set over stdio or from
// the /mcp HTTP endpoint mounted next to the REST API.
//
// Usage:
//
//	client := mcp.NewClient("http://localhost:8080")
//	server.ServeStdio(client.GetMCPServer())
package mcp
