// Package config provides ruleset management for the Corridor game server.
//
// The config package handles:
//   - Loading rulesets from JSON files
//   - Ruleset validation
//   - Default ruleset selection
//   - Ruleset discovery and listing
//
// Configuration Format:
//
// Rulesets are stored as JSON files in the configs directory:
//
//	{
//	  "name": "standard",
//	  "description": "9x9 board, unlimited walls",
//	  "board_size": 9,
//	  "start_squares": ["E1", "E9"],
//	  "walls_per_player": 0
//	}
//
// Player 0 must start on row 1 and player 1 on the last row. A
// walls_per_player of 0 leaves wall placement unlimited.
//
// Default Ruleset:
//
// standard.json is the default. Without it the first valid file (by name)
// is used, and an empty directory falls back to the built-in engine.Standard.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	rules, err := manager.LoadConfig("tournament")
//	configs, err := manager.ListConfigs()
package config
