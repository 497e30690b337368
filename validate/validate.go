// Command validate checks the ruleset JSON files in a directory (../configs
// by default). For each file it checks:
//   - JSON structure, with unknown fields rejected
//   - The engine's own rules validation (board size, start squares, wall limit)
//   - That the file name matches the ruleset name, since sessions refer to the file name
//   - A smoke test: the start position and a full wall-free race that must
//     end with a winner
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/corridor/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...interface{}) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

func (r *ValidationResult) info(format string, args ...interface{}) {
	r.Errors = append(r.Errors, "✓ "+fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single ruleset file
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var rules engine.Rules
	if err := dec.Decode(&rules); err != nil {
		result.fail("Invalid JSON: %v", err)
		return result
	}

	if err := engine.ValidateRules(&rules); err != nil {
		result.fail("%v", err)
		return result
	}

	id := strings.TrimSuffix(result.File, ".json")
	if id != rules.Name {
		result.fail("File name %q does not match name %q; saved rulesets are written to <name>.json", id, rules.Name)
	}

	for _, msg := range smokeTest(&rules) {
		result.fail("%s", msg)
	}

	if result.Valid {
		walls := "unlimited"
		if rules.WallsPerPlayer > 0 {
			walls = fmt.Sprintf("%d", rules.WallsPerPlayer)
		}
		result.info("Name: %s", rules.Name)
		result.info("Board: %dx%d", rules.BoardSize, rules.BoardSize)
		result.info("Starts: %s / %s", rules.Starts[0], rules.Starts[1])
		result.info("Walls per player: %s", walls)
		result.info("Wall placements: %d", len(rules.AllWalls()))
		result.info("Smoke test: start position and race OK")
	}

	return result
}

// smokeTest plays a few positions under rules and returns what went wrong
func smokeTest(rules *engine.Rules) []string {
	var problems []string

	var empty engine.History
	state := rules.Derive(empty)
	for player := 0; player < engine.PlayerCount; player++ {
		if state.Pawns[player] != rules.Start(player).String() {
			problems = append(problems, fmt.Sprintf("player %d starts on %s, expected %s", player, state.Pawns[player], rules.Start(player)))
		}
		if want := rules.BoardSize - 1; state.Distances[player] != want {
			problems = append(problems, fmt.Sprintf("player %d starts %d rows from goal, expected %d", player, state.Distances[player], want))
		}
	}
	if len(state.LegalPawnMoves) == 0 {
		problems = append(problems, "player 0 has no pawn move at the start")
	}

	h := empty
	// Wall-free race until someone wins
	limit := 4 * rules.BoardSize * rules.BoardSize
	for len(h) < limit {
		if _, over := rules.Winner(h); over {
			break
		}
		s, ok := rules.GreedyPawnMove(h)
		if !ok {
			problems = append(problems, fmt.Sprintf("player %d has no pawn move after %s", h.NextPlayer(), h))
			return problems
		}
		h = h.Append(engine.NewPawnMove(s))
	}
	if _, over := rules.Winner(h); !over {
		problems = append(problems, fmt.Sprintf("race did not finish within %d moves", limit))
	}
	if err := rules.Replay(h); err != nil {
		problems = append(problems, fmt.Sprintf("race history does not replay: %v", err))
	}

	return problems
}

// validateDir validates every *.json file in dir, printing a concise report.
// It reports whether all files are valid.
func validateDir(w io.Writer, dir string) (bool, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return false, fmt.Errorf("finding config files: %w", err)
	}
	if len(files) == 0 {
		return false, fmt.Errorf("no config files in %s", dir)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Fprintf(w, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(w, "✅ VALID")
			for _, info := range result.Errors {
				fmt.Fprintln(w, "  "+info)
			}
		} else {
			fmt.Fprintln(w, "❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Fprintln(w, "  ❌ "+err)
				}
			}
		}
	}

	fmt.Fprintf(w, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(w, "✅ All configurations are valid!")
	} else {
		fmt.Fprintln(w, "❌ Some configurations have errors")
	}
	return allValid, nil
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate ruleset JSON files",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := "../configs"
			if cmd.Args().Present() {
				dir = cmd.Args().First()
			}

			ok, err := validateDir(out, dir)
			if err != nil {
				return err
			}
			if !ok {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// main validates the directory and exits with non-zero status if any file
// is invalid.
func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
