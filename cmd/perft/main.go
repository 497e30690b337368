// Command perft counts the leaves of the legal move tree below a history,
// splitting the work across the first-level moves. With --divide it prints
// the count under each first move, which makes move generator differences
// easy to bisect.
//
//	perft --depth 3 "E2;E8"
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"
	"sort"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/corridor/game/config"
	"github.com/wricardo/corridor/game/engine"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := newCommand(os.Stdout).Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "perft",
		Usage:     "Count legal move sequences to a fixed depth",
		ArgsUsage: "[history]",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "depth", Aliases: []string{"d"}, Value: 2, Usage: "Plies to search"},
			&cli.IntFlag{Name: "workers", Value: runtime.NumCPU(), Usage: "Parallel workers"},
			&cli.BoolFlag{Name: "divide", Usage: "Print the count under each first move"},
			&cli.StringFlag{Name: "rules", Value: config.DefaultConfigID, Usage: "Ruleset ID or path to a rules JSON file"},
			&cli.StringFlag{Name: "config-dir", Value: "configs", Usage: "Directory containing rulesets", Sources: cli.EnvVars("CONFIG_DIR")},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			rules, err := config.Resolve(cmd.String("config-dir"), cmd.String("rules"))
			if err != nil {
				return fmt.Errorf("load rules %q: %w", cmd.String("rules"), err)
			}

			h, err := rules.ParseHistory(cmd.Args().First())
			if err != nil {
				return err
			}
			if err := rules.Replay(h); err != nil {
				return err
			}

			depth := int(cmd.Int("depth"))
			start := time.Now()
			result, err := perft(ctx, rules, h, depth, int(cmd.Int("workers")))
			if err != nil {
				return err
			}
			elapsed := time.Since(start)

			if cmd.Bool("divide") {
				for _, d := range result.Divide {
					fmt.Fprintf(out, "%s: %d\n", d.Move, d.Nodes)
				}
				fmt.Fprintln(out)
			}
			fmt.Fprintf(out, "depth %d: %d nodes in %s\n", depth, result.Nodes, elapsed.Round(time.Millisecond))
			return nil
		},
	}
}

// DivideEntry is the subtree size under one first-level move
type DivideEntry struct {
	Move  string
	Nodes int
}

// Result holds a perft total and its per-move breakdown, sorted by move label
type Result struct {
	Nodes  int
	Divide []DivideEntry
}

// perft runs (*engine.Rules).Perft one subtree per first-level move on at
// most workers goroutines. It returns ctx's error if cancelled.
func perft(ctx context.Context, rules *engine.Rules, h engine.History, depth, workers int) (*Result, error) {
	if depth <= 0 {
		return &Result{Nodes: 1}, nil
	}

	moves := rules.LegalMoves(h)
	counts := make([]int, len(moves))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, m := range moves {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			counts[i] = rules.Perft(h.Append(m), depth-1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	result := &Result{Divide: make([]DivideEntry, len(moves))}
	for i, m := range moves {
		result.Nodes += counts[i]
		result.Divide[i] = DivideEntry{Move: m.String(), Nodes: counts[i]}
	}
	sort.Slice(result.Divide, func(i, j int) bool {
		return result.Divide[i].Move < result.Divide[j].Move
	})

	return result, nil
}
