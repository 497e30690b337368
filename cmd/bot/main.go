// Command bot plays Corridor sessions against a running game server over
// its REST API. It can play both sides of a fresh session, or take one seat
// and wait for the other player's moves.
//
//	bot --rules mini --strategy blocking
//	bot --continue 3f2a... --player 1
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/corridor/game/engine"
	"golang.org/x/sync/errgroup"
)

const bothPlayers = -1

var errMoveLimit = errors.New("move limit reached")

// PlayOptions controls a single game
type PlayOptions struct {
	Strategy Strategy
	Seat     int // player the bot moves for, or bothPlayers
	MaxMoves int
	Delay    time.Duration // pause after each move
	Poll     time.Duration // wait between checks while the opponent is to act
	Verbose  bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "bot",
		Usage: "Play Corridor sessions through the REST API",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "Game server URL", Sources: cli.EnvVars("API_URL")},
			&cli.StringFlag{Name: "rules", Usage: "Ruleset ID for new sessions (server default when empty)"},
			&cli.StringFlag{Name: "continue", Usage: "Resume playing an existing session by ID"},
			&cli.StringFlag{Name: "session-file", Value: ".session", Usage: "File remembering the last session ID (empty disables)"},
			&cli.StringFlag{Name: "strategy", Value: "race", Usage: "Strategy: race or blocking"},
			&cli.IntFlag{Name: "player", Value: bothPlayers, Usage: "Seat to play (0 or 1), -1 plays both"},
			&cli.IntFlag{Name: "games", Value: 1, Usage: "Number of new sessions to play"},
			&cli.IntFlag{Name: "parallel", Value: 1, Usage: "Games played at the same time"},
			&cli.IntFlag{Name: "max-moves", Value: 500, Usage: "Maximum moves per game"},
			&cli.DurationFlag{Name: "delay", Usage: "Delay between moves"},
			&cli.DurationFlag{Name: "poll", Value: 500 * time.Millisecond, Usage: "Poll interval while waiting for the opponent"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "Log every move"},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	strategy, ok := strategyByName(cmd.String("strategy"))
	if !ok {
		return fmt.Errorf("unknown strategy %q", cmd.String("strategy"))
	}
	seat := int(cmd.Int("player"))
	if seat != bothPlayers && (seat < 0 || seat >= engine.PlayerCount) {
		return fmt.Errorf("player must be 0, 1 or %d, got %d", bothPlayers, seat)
	}

	opts := PlayOptions{
		Strategy: strategy,
		Seat:     seat,
		MaxMoves: int(cmd.Int("max-moves")),
		Delay:    cmd.Duration("delay"),
		Poll:     cmd.Duration("poll"),
		Verbose:  cmd.Bool("verbose"),
	}
	baseURL := cmd.String("url")
	log.Printf("Connecting to game server at %s", baseURL)

	sessionID := cmd.String("continue")
	sessionFile := cmd.String("session-file")
	if sessionID == "" && sessionFile != "" && cmd.Int("games") == 1 {
		if data, err := os.ReadFile(sessionFile); err == nil {
			sessionID = string(bytes.TrimSpace(data))
		}
	}

	if sessionID != "" {
		client := NewClient(baseURL)
		if _, err := client.Resume(ctx, sessionID); err == nil {
			log.Printf("🔄 Resuming session: %s", sessionID)
			state, err := play(ctx, client, opts)
			if err != nil {
				return err
			}
			logResult(client.SessionID(), state)
			return nil
		} else if cmd.String("continue") != "" {
			return err
		} else {
			log.Printf("⚠️  Failed to resume session %s (may be expired): %v", sessionID, err)
		}
	}

	tally, err := playGames(ctx, baseURL, cmd.String("rules"), int(cmd.Int("games")), int(cmd.Int("parallel")), opts, func(id string) {
		if sessionFile == "" || cmd.Int("games") != 1 {
			return
		}
		if err := os.WriteFile(sessionFile, []byte(id), 0644); err != nil {
			log.Printf("Warning: Failed to save session ID: %v", err)
		}
	})
	if err != nil {
		return err
	}

	log.Printf("Results over %d games (%s): player 0 won %d, player 1 won %d, unfinished %d",
		cmd.Int("games"), strategy.Name(), tally[0], tally[1], tally[2])
	return nil
}

// playGames plays n fresh sessions, at most parallel at a time, and returns
// wins for player 0, wins for player 1 and unfinished games
func playGames(ctx context.Context, baseURL, rules string, n, parallel int, opts PlayOptions, created func(id string)) ([3]int, error) {
	var (
		mu    sync.Mutex
		tally [3]int
	)

	g, ctx := errgroup.WithContext(ctx)
	if parallel < 1 {
		parallel = 1
	}
	g.SetLimit(parallel)

	for i := 0; i < n; i++ {
		game := i + 1
		g.Go(func() error {
			client := NewClient(baseURL)
			if _, err := client.CreateSession(ctx, rules); err != nil {
				return err
			}
			log.Printf("✨ Game %d/%d: session %s", game, n, client.SessionID())
			if created != nil {
				created(client.SessionID())
			}

			state, err := play(ctx, client, opts)
			if err != nil && !errors.Is(err, errMoveLimit) {
				return fmt.Errorf("game %d: %w", game, err)
			}
			logResult(client.SessionID(), state)

			mu.Lock()
			defer mu.Unlock()
			if state != nil && state.Winner != nil {
				tally[*state.Winner]++
			} else {
				tally[2]++
			}
			return nil
		})
	}

	err := g.Wait()
	return tally, err
}

// play moves for the bot's seat until the game ends. It returns the last
// state seen; errMoveLimit means the game was left unfinished.
func play(ctx context.Context, client *Client, opts PlayOptions) (*engine.GameState, error) {
	info, err := client.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	rules := info.Rules
	if rules == nil {
		return nil, fmt.Errorf("session %s has no rules", client.SessionID())
	}
	state := info.GameState

	moves := 0
	for !state.GameOver {
		if opts.Seat != bothPlayers && state.NextPlayer != opts.Seat {
			if err := sleep(ctx, opts.Poll); err != nil {
				return state, err
			}
			info, err := client.GetSession(ctx)
			if err != nil {
				return state, err
			}
			state = info.GameState
			continue
		}

		if opts.MaxMoves > 0 && moves >= opts.MaxMoves {
			return state, errMoveLimit
		}

		h, err := rules.ParseHistory(state.History)
		if err != nil {
			return state, err
		}
		m, ok := opts.Strategy.NextMove(rules, h)
		if !ok {
			return state, fmt.Errorf("player %d has no move after %q", state.NextPlayer, state.History)
		}

		result, err := client.Move(ctx, m.String())
		if err != nil {
			return state, err
		}
		if !result.Success {
			return result.GameState, fmt.Errorf("move %s rejected: %s", m, result.Message)
		}
		state = result.GameState
		moves++

		if opts.Verbose {
			log.Printf("[MOVE] session=%s player=%d move=%s distances=%d/%d",
				client.SessionID(), result.Player, m, state.Distances[0], state.Distances[1])
		}

		if opts.Delay > 0 {
			if err := sleep(ctx, opts.Delay); err != nil {
				return state, err
			}
		}
	}

	return state, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func logResult(sessionID string, state *engine.GameState) {
	if state == nil {
		return
	}
	if state.Winner != nil {
		log.Printf("🎉 Session %s: player %d won after %d moves", sessionID, *state.Winner, state.MoveCount)
		return
	}
	walls := strings.Join(state.Walls, " ")
	log.Printf("⏸  Session %s unfinished after %d moves (walls: %s)", sessionID, state.MoveCount, walls)
}
