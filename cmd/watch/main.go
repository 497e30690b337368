// Command watch follows a session live over the server's WebSocket feed and
// redraws the board in the terminal after every move.
//
//	watch --url http://localhost:8080 3f2a...
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gorilla/websocket"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/corridor/game/engine"
	wstransport "github.com/wricardo/corridor/transport/websocket"
)

var errNoSession = errors.New("session ID required")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand(os.Stdout).Run(ctx, os.Args); err != nil {
		log.Fatal(err)
	}
}

func newCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "watch",
		Usage:     "Follow a game session live",
		ArgsUsage: "<session-id>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Value: "http://localhost:8080", Usage: "Game server URL", Sources: cli.EnvVars("API_URL")},
			&cli.BoolFlag{Name: "follow", Usage: "Keep watching after the game ends"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			sessionID := cmd.Args().First()
			if sessionID == "" {
				return errNoSession
			}
			return watch(ctx, out, cmd.String("url"), sessionID, cmd.Bool("follow"))
		},
	}
}

// wsURL turns the server's HTTP address into its /ws endpoint for sessionID
func wsURL(baseURL, sessionID string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}

	switch u.Scheme {
	case "http", "":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	case "ws", "wss":
	default:
		return "", fmt.Errorf("unsupported scheme %q", u.Scheme)
	}

	u.Path = strings.TrimSuffix(u.Path, "/") + "/ws"
	q := u.Query()
	q.Set("session", sessionID)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// watch prints every state pushed for sessionID until the game ends, the
// connection drops or ctx is cancelled
func watch(ctx context.Context, out io.Writer, baseURL, sessionID string, follow bool) error {
	endpoint, err := wsURL(baseURL, sessionID)
	if err != nil {
		return err
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil {
			return fmt.Errorf("connect to %s: %s", endpoint, resp.Status)
		}
		return fmt.Errorf("connect to %s: %w", endpoint, err)
	}
	defer conn.Close()
	log.Printf("WebSocket connected for session %s", sessionID)

	// Unblock ReadMessage on cancellation
	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	var last *engine.GameState
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return nil
			}
			return fmt.Errorf("websocket read: %w", err)
		}

		var msg wstransport.Message
		if err := json.Unmarshal(data, &msg); err != nil {
			log.Printf("WebSocket JSON parse error: %v", err)
			continue
		}
		if msg.GameState == nil {
			continue
		}

		printState(out, last, msg.GameState)
		last = msg.GameState

		if last.GameOver && !follow {
			conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return nil
		}
	}
}

// printState draws state, naming the moves played since prev
func printState(w io.Writer, prev, state *engine.GameState) {
	if prev != nil && prev.MoveCount == state.MoveCount {
		return
	}

	fmt.Fprintf(w, "\n%s  %s  move %d\n", state.Rules, strings.Repeat("-", 2*state.BoardSize), state.MoveCount)
	if played := newMoves(prev, state); len(played) > 0 {
		fmt.Fprintf(w, "Played: %s\n", strings.Join(played, " "))
	}
	for _, row := range state.Board {
		fmt.Fprintln(w, row)
	}
	fmt.Fprintf(w, "Distances: %s / %s\n", formatDistance(state.Distances[0]), formatDistance(state.Distances[1]))

	if state.GameOver && state.Winner != nil {
		fmt.Fprintf(w, "🏁 Player %d has won\n", *state.Winner)
	} else {
		fmt.Fprintf(w, "Player %d to act\n", state.NextPlayer)
	}
}

func newMoves(prev, state *engine.GameState) []string {
	if state.History == "" {
		return nil
	}
	moves := strings.Split(state.History, engine.HistoryDelimiter)
	if prev == nil || prev.MoveCount > len(moves) {
		return moves[len(moves)-1:]
	}
	return moves[prev.MoveCount:]
}

func formatDistance(d int) string {
	if d >= engine.UnreachableDistance {
		return "unreachable"
	}
	return fmt.Sprintf("%d", d)
}
