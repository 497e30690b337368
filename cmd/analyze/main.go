// Command analyze prints a human-readable report for a move history: the
// board, whose turn it is, pawns, walls, legal moves and each pawn's
// shortest route to its goal. An optional --move is checked against the
// position without being played.
//
//	analyze --rules mini "C2;C4;hB2"
//	analyze --move vD2 "E2;hD2"
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/corridor/game/config"
	"github.com/wricardo/corridor/game/engine"
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "analyze",
		Usage:     "Describe the position reached by a move history",
		ArgsUsage: "[history]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "rules", Value: config.DefaultConfigID, Usage: "Ruleset ID or path to a rules JSON file"},
			&cli.StringFlag{Name: "config-dir", Value: "configs", Usage: "Directory containing rulesets", Sources: cli.EnvVars("CONFIG_DIR")},
			&cli.StringFlag{Name: "move", Usage: "Check one more move against the position"},
			&cli.BoolFlag{Name: "json", Usage: "Print the derived state as JSON"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rules, err := config.Resolve(cmd.String("config-dir"), cmd.String("rules"))
			if err != nil {
				return fmt.Errorf("load rules %q: %w", cmd.String("rules"), err)
			}

			report, err := analyze(rules, cmd.Args().First(), cmd.String("move"))
			if err != nil {
				return err
			}

			if cmd.Bool("json") {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(out, report)
			return nil
		},
	}
}

// Report is everything analyze knows about one position
type Report struct {
	State      *engine.GameState `json:"game_state"`
	Move       string            `json:"move,omitempty"`
	MoveValid  *bool             `json:"move_valid,omitempty"`
	MoveReason string            `json:"move_reason,omitempty"`
}

// analyze replays history under rules and derives its state. The history
// must replay cleanly; an illegal move in it is an error.
func analyze(rules *engine.Rules, history, move string) (*Report, error) {
	h, err := rules.ParseHistory(history)
	if err != nil {
		return nil, err
	}
	if err := rules.Replay(h); err != nil {
		return nil, err
	}

	report := &Report{State: rules.Derive(h)}
	if move == "" {
		return report, nil
	}

	report.Move = move
	valid := false
	report.MoveValid = &valid

	m, err := rules.ParseMove(move)
	if err != nil {
		report.MoveReason = err.Error()
		return report, nil
	}
	if _, over := rules.Winner(h); over {
		report.MoveReason = "the game is already over"
		return report, nil
	}
	valid = rules.IsValidMove(h, m)
	if !valid {
		report.MoveReason = fmt.Sprintf("%s is not legal for player %d", m, h.NextPlayer())
	}
	return report, nil
}

func printReport(w io.Writer, report *Report) {
	state := report.State

	fmt.Fprintf(w, "Rules: %s (%dx%d)\n", state.Rules, state.BoardSize, state.BoardSize)
	if state.History == "" {
		fmt.Fprintf(w, "History: (empty)\n")
	} else {
		fmt.Fprintf(w, "History: %s\n", state.History)
	}
	fmt.Fprintf(w, "Moves played: %d\n\n", state.MoveCount)

	for _, row := range state.Board {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintln(w)

	for player := 0; player < engine.PlayerCount; player++ {
		walls := "unlimited"
		if state.WallsRemaining[player] >= 0 {
			walls = fmt.Sprintf("%d", state.WallsRemaining[player])
		}
		distance := "walled off"
		if state.Distances[player] < engine.UnreachableDistance {
			distance = fmt.Sprintf("%d", state.Distances[player])
		}
		fmt.Fprintf(w, "Player %d: pawn %s, walls left %s, distance to goal %s\n",
			player, state.Pawns[player], walls, distance)
	}

	if len(state.Walls) > 0 {
		fmt.Fprintf(w, "Walls: %s\n", strings.Join(state.Walls, " "))
	}

	if state.GameOver {
		fmt.Fprintf(w, "\n🏁 Player %d has won\n", *state.Winner)
	} else {
		fmt.Fprintf(w, "\nPlayer %d to act", state.NextPlayer)
		if state.HeadToHead {
			fmt.Fprint(w, " (head to head)")
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Pawn moves (%d): %s\n", len(state.LegalPawnMoves), strings.Join(state.LegalPawnMoves, " "))
		fmt.Fprintf(w, "Wall placements: %d\n", len(state.LegalWallMoves))
	}

	if report.MoveValid != nil {
		if *report.MoveValid {
			fmt.Fprintf(w, "\n✅ %s is legal\n", report.Move)
		} else {
			fmt.Fprintf(w, "\n❌ %s: %s\n", report.Move, report.MoveReason)
		}
	}
}
