package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/corridor/game/engine"
	"github.com/wricardo/corridor/game/service"
)

// Client is a thin MCP client that proxies to the REST API
type Client struct {
	baseURL    string
	httpClient *http.Client
	mcpServer  *server.MCPServer
}

// NewClient creates a new MCP client that calls the REST API
func NewClient(baseURL string) *Client {
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}

	c.initMCPServer()
	return c
}

// initMCPServer initializes the MCP server with all tools
func (c *Client) initMCPServer() {
	c.mcpServer = server.NewMCPServer(
		"Corridor",
		"1.0.0",
		server.WithToolCapabilities(true),
		server.WithInstructions(`Corridor - MCP Interface

This is a thin client that proxies all requests to the REST API server.

GAME OBJECTIVE:
Two pawns race across the board. Player 0 starts on E1 and must reach row 9,
player 1 starts on E9 and must reach row 1. On each turn the player to act
either moves their pawn or places a two-cell wall.

AVAILABLE TOOLS:
- create_session: Create new game session
- list_sessions: List all active sessions
- get_session: Get session details
- game_state: Board, pawns, walls and legal moves
- legal_moves: Moves available to the player to act
- move: Play one move (E2 or hD7) - requires intent explanation
- bulk_move: Play several moves at once - requires intent explanation
- validate_move: Check a move without playing it
- move_history: View past moves
- list_configs: List available rulesets
- game_instructions: Full rules and notation
- describe_square: Pawns, walls and edges around one square

NOTE: The 'intent' parameter on move/bulk_move tools serves as rubber duck debugging - explain your reasoning!`),
	)

	c.registerTools()
}

func sessionIDProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// registerTools registers all MCP tools
func (c *Client) registerTools() {
	// Session management
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "create_session",
		Description: "Create a new game session with optional ruleset selection",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"config_id": map[string]interface{}{
					"type":        "string",
					"description": "Ruleset to use, e.g. standard or mini (optional)",
				},
			},
		},
	}, c.handleCreateSession)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_sessions",
		Description: "List all active game sessions",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListSessions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "get_session",
		Description: "Get details of a specific session",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID to retrieve"),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGetSession)

	// Game operations
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, pawns, walls, distances and legal pawn moves",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID"),
			},
			Required: []string{"session_id"},
		},
	}, c.handleGameState)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_moves",
		Description: "List every pawn move and wall placement available to the player to act",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID"),
			},
			Required: []string{"session_id"},
		},
	}, c.handleLegalMoves)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Play one move for the player to act: a square (E2) or a wall (hD7, vD7)",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID"),
				"move": map[string]interface{}{
					"type":        "string",
					"description": "Move label, e.g. E2, hD7 or vC3",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Why you are making this move",
				},
			},
			Required: []string{"session_id", "move", "intent"},
		},
	}, c.handleMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: fmt.Sprintf("Play up to %d moves in order, alternating players. Stops at the first illegal move or when someone wins.", engine.MaxBulkMoves),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID"),
				"moves": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Move labels in play order",
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "What this sequence is meant to achieve",
				},
			},
			Required: []string{"session_id", "moves", "intent"},
		},
	}, c.handleBulkMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "validate_move",
		Description: "Check whether a move would be accepted, with the reason when it would not. Nothing is played.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID"),
				"move": map[string]interface{}{
					"type":        "string",
					"description": "Move label to check",
				},
			},
			Required: []string{"session_id", "move"},
		},
	}, c.handleValidateMove)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get the session's move history with pagination",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID"),
				"page": map[string]interface{}{
					"type":        "number",
					"description": "Page number (default 1)",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Moves per page (default 20)",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"description": "asc or desc (default desc)",
				},
			},
			Required: []string{"session_id"},
		},
	}, c.handleMoveHistory)

	// Configuration
	c.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available rulesets",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleListConfigs)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the full rules, move notation and board legend",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, c.handleGameInstructions)

	c.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_square",
		Description: "Describe one square: pawn on it, walls touching it, open neighbours and whether the player to act can move there",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"session_id": sessionIDProperty("Session ID"),
				"square": map[string]interface{}{
					"type":        "string",
					"description": "Square label, e.g. E5",
				},
			},
			Required: []string{"session_id", "square"},
		},
	}, c.handleDescribeSquare)
}

// GetMCPServer returns the underlying MCP server for serving
func (c *Client) GetMCPServer() *server.MCPServer {
	return c.mcpServer
}

// Helper methods for API calls

func (c *Client) apiCall(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reqBody = bytes.NewBuffer(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errResp map[string]string
		json.NewDecoder(resp.Body).Decode(&errResp)
		if msg, ok := errResp["error"]; ok {
			return fmt.Errorf("%s", msg)
		}
		return fmt.Errorf("API error: %d", resp.StatusCode)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}

func arguments(request mcp.CallToolRequest) map[string]interface{} {
	args, _ := request.Params.Arguments.(map[string]interface{})
	if args == nil {
		return map[string]interface{}{}
	}
	return args
}

func sessionPath(sessionID, suffix string) string {
	return "/api/sessions/" + url.PathEscape(sessionID) + suffix
}

// Tool handlers

func (c *Client) handleCreateSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	configID, _ := args["config_id"].(string)

	body := map[string]string{}
	if configID != "" {
		body["config_id"] = configID
	}

	var session service.SessionInfo
	if err := c.apiCall(ctx, "POST", "/api/sessions", body, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Created session: %s\nRuleset: %s\n\n%s",
		session.ID, session.ConfigID, formatGameState(session.GameState))
	return mcp.NewToolResultText(result), nil
}

func (c *Client) handleListSessions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var response struct {
		Count    int                   `json:"count"`
		Sessions []service.SessionInfo `json:"sessions"`
	}

	if err := c.apiCall(ctx, "GET", "/api/sessions", nil, &response); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Active Sessions (%d):\n\n", response.Count)
	for _, s := range response.Sessions {
		moves, status := 0, "in progress"
		if s.GameState != nil {
			moves = s.GameState.MoveCount
			if s.GameState.Winner != nil {
				status = fmt.Sprintf("won by player %d", *s.GameState.Winner)
			}
		}
		fmt.Fprintf(&b, "- %s (Ruleset: %s, Moves: %d, %s, Created: %s)\n",
			s.ID, s.ConfigID, moves, status, s.CreatedAt.Format("15:04:05"))
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (c *Client) handleGetSession(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatSessionInfo(&session)), nil
}

func (c *Client) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var state engine.GameState
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/state"), nil, &state); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(&state)), nil
}

func (c *Client) handleLegalMoves(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessionID, _ := arguments(request)["session_id"].(string)

	var legal service.LegalMovesResponse
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, "/legal-moves"), nil, &legal); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatLegalMoves(&legal)), nil
}

func (c *Client) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	move, _ := args["move"].(string)
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	body := map[string]interface{}{
		"move": move,
	}

	var result service.MoveResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/move"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(&result)), nil
}

func (c *Client) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	movesRaw, _ := args["moves"].([]interface{})
	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	moves := make([]string, 0, len(movesRaw))
	for _, m := range movesRaw {
		if move, ok := m.(string); ok {
			moves = append(moves, move)
		}
	}

	body := map[string]interface{}{
		"moves": moves,
	}

	var result service.BulkMoveResult
	if err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/bulk-move"), body, &result); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatBulkMoveResult(sessionID, &result)), nil
}

func (c *Client) handleValidateMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	move, _ := args["move"].(string)

	var result service.ValidationResult
	err := c.apiCall(ctx, "POST", sessionPath(sessionID, "/validate"), map[string]string{"move": move}, &result)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatValidation(&result)), nil
}

func (c *Client) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)

	params := url.Values{}
	if page, ok := args["page"].(float64); ok {
		params.Set("page", fmt.Sprintf("%d", int(page)))
	}
	if limit, ok := args["limit"].(float64); ok {
		params.Set("limit", fmt.Sprintf("%d", int(limit)))
	}
	if order, ok := args["order"].(string); ok && order != "" {
		params.Set("order", order)
	}

	path := sessionPath(sessionID, "/history")
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var history service.HistoryResponse
	if err := c.apiCall(ctx, "GET", path, nil, &history); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(&history)), nil
}

func (c *Client) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var configs []service.ConfigInfo
	if err := c.apiCall(ctx, "GET", "/api/configs", nil, &configs); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Rulesets:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&b, "• %s (%s)\n  %s\n  Board: %dx%d, Walls per player: %s\n\n",
			config.ConfigID, config.Name, config.Description,
			config.BoardSize, config.BoardSize, formatWallLimit(config.WallsPerPlayer))
	}

	return mcp.NewToolResultText(b.String()), nil
}

const gameInstructions = `Corridor - Complete Instructions

GAME OBJECTIVE:
Get your pawn to the far side of the board before your opponent does.
- Player 0 starts on E1 and wins on reaching row 9.
- Player 1 starts on E9 and wins on reaching row 1.
Players alternate, player 0 first. Smaller rulesets scale the same layout.

BOARD AND NOTATION:
- Columns are letters A-I (left to right), rows are digits 1-9 (bottom to top).
- A square is a column letter then a row digit: E1, A9, I5.
- A move is either a square (move your pawn there) or a wall:
  h<square> places a horizontal wall, v<square> a vertical wall.
- A history is the moves so far joined by ';', e.g. E2;E8;hD7.

WALLS:
- Every wall is two cells long and named by its lower-left anchor square.
- hD7 lies between rows 7 and 8 across columns D and E.
- vD7 lies between columns D and E across rows 7 and 8.
- Anchors run from A to the second-to-last column and row 1 to the
  second-to-last row (A1-H8 on the standard board).
- Two walls collide only when they share an anchor, whatever their
  orientation. hD7 and vD7 cannot both be placed; hD7 and hE7 can.
- Some rulesets limit walls per player. Walls that cut a pawn off from its
  goal are still legal.

PAWN MOVEMENT:
- Step one square up, down, left or right, unless a wall is in the way.
- You may never land on your opponent.
- Facing your opponent head to head, jump straight over them.
- If a wall or the board edge is behind your opponent, step diagonally
  to either side of them instead, unless a wall blocks that side.

BOARD LEGEND (game_state):
- 0 and 1 are the pawns, . is an empty square.
- | between squares is a vertical wall segment.
- - under a square is a horizontal wall segment below it.
- Row numbers run down the left, column letters along the bottom.

TOOLS AND WORKFLOW:
1. create_session (optionally with config_id) and note the session ID.
2. game_state to read the board and whose turn it is.
3. legal_moves or validate_move before committing to anything unusual.
4. move or bulk_move with your intent.
5. describe_square when unsure which walls touch a square.

STRATEGY HINTS:
- distances in game_state is each pawn's shortest wall-respecting route
  to its goal. Racing ahead of your opponent's distance wins games.
- Walls are most useful right in front of an opponent who is ahead.
- A jump over your opponent can save a whole turn.

VICTORY CONDITIONS:
The first pawn to reach its goal row wins. No moves are accepted after that.

Good luck in the corridor!`

func (c *Client) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(gameInstructions), nil
}

func (c *Client) handleDescribeSquare(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := arguments(request)
	sessionID, _ := args["session_id"].(string)
	label, _ := args["square"].(string)

	// The session carries both the ruleset and the history
	var session service.SessionInfo
	if err := c.apiCall(ctx, "GET", sessionPath(sessionID, ""), nil, &session); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if session.GameState == nil {
		return mcp.NewToolResultError(fmt.Sprintf("session %s has no game state", sessionID)), nil
	}

	rules := session.Rules
	if rules == nil {
		rules = engine.Standard
	}

	square, err := rules.ParseSquare(strings.ToUpper(strings.TrimSpace(label)))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	history, err := rules.ParseHistory(session.GameState.History)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(describeSquare(rules, history, square, session.GameState)), nil
}

// describeSquare reports everything about one square that the board drawing
// makes easy to misread.
func describeSquare(rules *engine.Rules, h engine.History, square engine.Square, state *engine.GameState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Square %s:\n━━━━━━━━━━━━━━━━━━━━━━━━\n", square)

	occupant := "empty"
	for player := 0; player < engine.PlayerCount; player++ {
		if rules.PawnSquare(player, h) == square {
			occupant = fmt.Sprintf("pawn of player %d", player)
		}
	}
	fmt.Fprintf(&b, "Occupant: %s\n", occupant)

	for player := 0; player < engine.PlayerCount; player++ {
		if rules.GoalRow(player) == square.Y {
			fmt.Fprintf(&b, "Goal row of player %d\n", player)
		}
	}

	walls := h.Walls()
	b.WriteString("Edges:\n")
	for _, next := range rules.Neighbours(square) {
		var blockers []string
		for _, w := range walls {
			if w.Blocks(square, next) {
				blockers = append(blockers, w.String())
			}
		}
		if len(blockers) > 0 {
			fmt.Fprintf(&b, "- %s to %s: blocked by %s\n", directionName(square, next), next, strings.Join(blockers, ","))
		} else {
			fmt.Fprintf(&b, "- %s to %s: open\n", directionName(square, next), next)
		}
	}

	if rules.ValidAnchor(square) {
		fmt.Fprintf(&b, "Wall anchor: h%s and v%s are on the board\n", square, square)
	} else {
		b.WriteString("Wall anchor: no wall can be anchored here\n")
	}

	reachable := "no"
	for _, m := range state.LegalPawnMoves {
		if m == square.String() {
			reachable = "yes"
			break
		}
	}
	fmt.Fprintf(&b, "Player %d can move here now: %s\n", state.NextPlayer, reachable)

	return b.String()
}

func directionName(from, to engine.Square) string {
	switch {
	case to.Y > from.Y:
		return "up"
	case to.Y < from.Y:
		return "down"
	case to.X < from.X:
		return "left"
	default:
		return "right"
	}
}

// Formatting helpers

func formatWallLimit(n int) string {
	if n <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d", n)
}

func formatWallsLeft(n int) string {
	if n < 0 {
		return "∞"
	}
	return fmt.Sprintf("%d", n)
}

func formatDistance(d int) string {
	if d >= engine.UnreachableDistance {
		return "unreachable"
	}
	return fmt.Sprintf("%d", d)
}

func formatSessionInfo(session *service.SessionInfo) string {
	return fmt.Sprintf("Session: %s\nRuleset: %s\nCreated: %s\n\n%s",
		session.ID, session.ConfigID,
		session.CreatedAt.Format("2006-01-02 15:04:05"),
		formatGameState(session.GameState))
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var b strings.Builder

	fmt.Fprintf(&b, "Ruleset: %s | Board: %dx%d | Moves: %d | Next: player %d\n",
		state.Rules, state.BoardSize, state.BoardSize, state.MoveCount, state.NextPlayer)
	fmt.Fprintf(&b, "Pawns: 0@%s 1@%s | Walls left: %s/%s | Distances: %s/%s\n",
		state.Pawns[0], state.Pawns[1],
		formatWallsLeft(state.WallsRemaining[0]), formatWallsLeft(state.WallsRemaining[1]),
		formatDistance(state.Distances[0]), formatDistance(state.Distances[1]))

	if state.History != "" {
		fmt.Fprintf(&b, "History: %s\n", state.History)
	}
	if len(state.Walls) > 0 {
		fmt.Fprintf(&b, "Walls: %s\n", strings.Join(state.Walls, ","))
	}
	if state.HeadToHead {
		b.WriteString("Pawns are head to head\n")
	}

	if len(state.Board) > 0 {
		b.WriteString("\n")
		for _, row := range state.Board {
			b.WriteString(row)
			b.WriteString("\n")
		}
	}

	if state.GameOver {
		if state.Winner != nil {
			fmt.Fprintf(&b, "\n🏁 GAME OVER - player %d wins", *state.Winner)
		} else {
			b.WriteString("\n🏁 GAME OVER")
		}
		return b.String()
	}

	fmt.Fprintf(&b, "\nPawn moves: %s\n", strings.Join(state.LegalPawnMoves, ","))
	fmt.Fprintf(&b, "Wall placements available: %d", len(state.LegalWallMoves))

	return b.String()
}

func formatLegalMoves(legal *service.LegalMovesResponse) string {
	var b strings.Builder

	if legal.GameOver {
		b.WriteString("Game over: no moves available\n")
		return b.String()
	}

	fmt.Fprintf(&b, "Player %d to act from %s\n", legal.Player, legal.From)
	if legal.HeadToHead {
		b.WriteString("Head to head with the opponent: jumps are possible\n")
	}
	fmt.Fprintf(&b, "Pawn moves (%d): %s\n", len(legal.PawnMoves), strings.Join(legal.PawnMoves, ","))
	fmt.Fprintf(&b, "Wall placements (%d): %s\n", len(legal.WallMoves), strings.Join(legal.WallMoves, ","))

	return b.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder
	if result.Success {
		fmt.Fprintf(&b, "✓ Move %s by player %d accepted\n", result.Move, result.Player)
	} else {
		fmt.Fprintf(&b, "✗ Move %s by player %d rejected\n", result.Move, result.Player)
	}

	if result.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", result.Message)
	}

	if len(result.Events) > 0 {
		b.WriteString("Events:\n")
		for _, event := range result.Events {
			fmt.Fprintf(&b, "- %s: %s\n", event.Type, event.Message)
		}
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatBulkMoveResult(sessionID string, result *service.BulkMoveResult) string {
	var b strings.Builder

	ruleset, size := "", 0
	if result.GameState != nil {
		ruleset, size = result.GameState.Rules, result.GameState.BoardSize
	}
	fmt.Fprintf(&b, "Session: %s • Ruleset: %s • Board: %dx%d\n", sessionID, ruleset, size, size)

	fmt.Fprintf(&b, "Executed %d/%d moves\n", result.MovesExecuted, result.RequestedMoves)
	if result.Truncated {
		fmt.Fprintf(&b, "Request truncated to %d moves\n", result.Limit)
	}
	if result.StoppedReason != "" {
		fmt.Fprintf(&b, "Stopped on move %d: %s\n", result.StoppedOnMove, result.StoppedReason)
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for _, s := range result.Steps {
			if s.Wall {
				fmt.Fprintf(&b, "%d. player %d wall %s\n", s.Idx, s.Player, s.Move)
			} else {
				fmt.Fprintf(&b, "%d. player %d %s→%s\n", s.Idx, s.Player, s.From, s.Move)
			}
		}
	}

	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			fmt.Fprintf(&b, "- %s: %s\n", event.Type, event.Message)
		}
	}

	fmt.Fprintf(&b, "\nHistory: %q → %q\n", result.StartHistory, result.EndHistory)

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatValidation(result *service.ValidationResult) string {
	kind := "pawn move"
	if result.Wall {
		kind = "wall"
	}
	if result.Valid {
		return fmt.Sprintf("✓ %s (%s) is legal for player %d", result.Move, kind, result.Player)
	}
	return fmt.Sprintf("✗ %s (%s) is not legal for player %d: %s", result.Move, kind, result.Player, result.Reason)
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Move History (Page %d/%d) • Total: %d\n\n",
		history.Page, history.TotalPages, history.TotalMoves)

	for _, move := range history.Moves {
		kind := "pawn"
		if move.Wall {
			kind = "wall"
		}
		fmt.Fprintf(&b, "%d. player %d %s %s\n", move.MoveNumber, move.Player, kind, move.Move)
	}

	if history.History != "" {
		fmt.Fprintf(&b, "\nFull history: %s\n", history.History)
	}

	return b.String()
}
