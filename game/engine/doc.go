// Package engine provides the core rules for the Corridor game.
//
// The engine package implements the game mechanics including:
//   - Square and wall label parsing (E5, hD2, vA1)
//   - Grid adjacency and wall collision geometry
//   - History interpretation (whose turn, pawn squares, placed walls)
//   - Legal move generation including head-to-head jumps
//   - Move validation and history updates
//
// Core Types:
//
// History is the ordered, append-only list of moves and the only state the
// game has. Everything else (pawn squares, walls, legal moves, the winner) is
// derived from it on every call; nothing is cached. Rules carries the board
// size and start squares, and Standard is the 9x9 ruleset used by the
// package-level label functions.
//
// Usage:
//
//	moves, err := engine.GetLegalPawnMoves("E2;E8;E3;E7;E4;E6;E5")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ok, err := engine.IsValidMove("E2;E8", "hD2")
//	if err == nil && ok {
//		history = engine.UpdateGameState("E2;E8", "hD2")
//	}
//
// Game Rules:
//
// Two pawns race to the opposite side of a 9x9 board. On each turn a player
// either steps their pawn to an adjacent square or places a two-cell wall.
// A pawn facing the opponent jumps over it, or sideways around it when the
// straight jump is blocked. Walls may not share an anchor with a placed wall.
// Walls that seal a pawn's only route to its goal are not rejected.
package engine
