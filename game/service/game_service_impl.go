package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/wricardo/corridor/game/engine"
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	sessions SessionManager
	configs  ConfigManager
	mu       sync.RWMutex
}

// NewGameService creates a new game service instance
func NewGameService(sessions SessionManager, configs ConfigManager) GameService {
	return &gameServiceImpl{
		sessions: sessions,
		configs:  configs,
	}
}

// resolveRules loads a ruleset by config ID, or the default for an empty ID
func (s *gameServiceImpl) resolveRules(configName string) (*engine.Rules, string, error) {
	if configName == "" {
		return s.configs.GetDefault(), s.configs.DefaultID(), nil
	}

	rules, err := s.configs.LoadConfig(configName)
	if err != nil {
		// Provide helpful error message with available options
		if errors.Is(err, ErrConfigNotFound) {
			availableConfigs, listErr := s.configs.ListConfigs()
			if listErr == nil && len(availableConfigs) > 0 {
				var configIDs []string
				for _, cfg := range availableConfigs {
					configIDs = append(configIDs, cfg.ConfigID)
				}
				return nil, "", fmt.Errorf("%w: '%s'. Available configs: %v", ErrConfigNotFound, configName, configIDs)
			}
			return nil, "", fmt.Errorf("%w: '%s'. Use /api/configs to list available configurations", ErrConfigNotFound, configName)
		}
		return nil, "", fmt.Errorf("failed to load config %s: %w", configName, err)
	}

	return rules, configName, nil
}

// getSession stamps the access time, so callers must hold s.mu for writing
func (s *gameServiceImpl) getSession(sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, err)
	}
	s.sessions.UpdateLastAccessed(sessionID)
	return sess, nil
}

func sessionInfo(sess *Session) *SessionInfo {
	return &SessionInfo{
		ID:             sess.ID,
		ConfigID:       sess.ConfigID,
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GameState:      sess.State(),
		Rules:          sess.Rules,
	}
}

// CreateSession creates a new game session
func (s *gameServiceImpl) CreateSession(ctx context.Context, configName string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rules, configID, err := s.resolveRules(configName)
	if err != nil {
		return nil, err
	}

	// Let session manager generate a proper 4-character ID
	sess, err := s.sessions.Create("", configID, rules)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	log.Printf("[SESSION] created session=%s rules=%s", sess.ID, configID)
	return sessionInfo(sess), nil
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context, sessionID string) (*SessionInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sessionInfo(sess), nil
}

// ListSessions returns all active sessions
func (s *gameServiceImpl) ListSessions(ctx context.Context) ([]*SessionInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sessions := s.sessions.List()
	result := make([]*SessionInfo, 0, len(sessions))
	for _, sess := range sessions {
		result = append(result, sessionInfo(sess))
	}

	return result, nil
}

// DeleteSession removes a session
func (s *gameServiceImpl) DeleteSession(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.sessions.Delete(sessionID); err != nil {
		return fmt.Errorf("session %s: %w", sessionID, err)
	}
	return nil
}

// Move validates and plays a single move for the player to act. A
// malformed label is an error; an illegal move is reported in the result.
func (s *gameServiceImpl) Move(ctx context.Context, sessionID, move string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	if winner, over := sess.Rules.Winner(sess.History); over {
		return nil, fmt.Errorf("%w: player %d has won", ErrGameOver, winner)
	}

	m, err := sess.Rules.ParseMove(move)
	if err != nil {
		return nil, err
	}

	player := sess.History.NextPlayer()
	result := &MoveResult{
		Move:   m.String(),
		Player: player,
	}

	if !sess.Rules.IsValidMove(sess.History, m) {
		result.GameState = sess.State()
		result.Message = fmt.Sprintf("Illegal move %s for player %d: %s", m, player, illegalReason(sess.Rules, sess.History, m))
		return result, nil
	}

	from := sess.Rules.PawnSquare(player, sess.History)
	sess.History = sess.History.Append(m)
	state := sess.State()

	result.Success = true
	result.GameState = state
	result.Events = moveEvents(player, m, from, state)
	result.Message = result.Events[len(result.Events)-1].Message

	// Auto-save session after move
	if err := s.sessions.Save(sessionID); err != nil {
		log.Printf("Warning: Failed to persist session %s after move: %v", sessionID, err)
	}

	return result, nil
}

// BulkMove plays moves in order and stops at the first one that is
// malformed or illegal, or once a player wins.
func (s *gameServiceImpl) BulkMove(ctx context.Context, sessionID string, moves []string) (*BulkMoveResult, error) {
	if len(moves) == 0 {
		return nil, ErrNoMoves
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	result := &BulkMoveResult{
		RequestedMoves: len(moves),
		Events:         make([]GameEvent, 0),
		Success:        true,
		StartHistory:   sess.History.String(),
	}

	// Limit moves to prevent abuse
	if len(moves) > engine.MaxBulkMoves {
		result.Truncated = true
		result.Limit = engine.MaxBulkMoves
		moves = moves[:engine.MaxBulkMoves]
	}

	if winner, over := sess.Rules.Winner(sess.History); over {
		result.Success = false
		result.StoppedReason = fmt.Sprintf("game is over: player %d has won", winner)
		result.StopReasonCode = "game_over"
		result.StoppedOnMove = 1
		moves = nil
	}

	for i, label := range moves {
		m, err := sess.Rules.ParseMove(label)
		if err != nil {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d: %v", i+1, err)
			result.StopReasonCode = "invalid_label"
			result.StoppedOnMove = i + 1
			break
		}

		player := sess.History.NextPlayer()
		if !sess.Rules.IsValidMove(sess.History, m) {
			result.Success = false
			result.StoppedReason = fmt.Sprintf("move %d illegal for player %d: %s (%s)",
				i+1, player, m, illegalReason(sess.Rules, sess.History, m))
			result.StopReasonCode = "illegal_move"
			result.StoppedOnMove = i + 1
			break
		}

		from := sess.Rules.PawnSquare(player, sess.History)
		sess.History = sess.History.Append(m)
		result.MovesExecuted++

		step := StepInfo{Idx: i + 1, Player: player, Move: m.String(), Wall: m.IsWall()}
		if !m.IsWall() {
			step.From = from.String()
		}
		result.Steps = append(result.Steps, step)

		state := sess.State()
		result.Events = append(result.Events, moveEvents(player, m, from, state)...)

		if state.GameOver {
			result.StopReasonCode = "victory"
			result.StoppedReason = fmt.Sprintf("player %d won on move %d", player, i+1)
			if i < len(moves)-1 {
				result.StoppedOnMove = i + 1
			}
			break
		}
	}

	state := sess.State()
	result.GameState = state
	result.EndHistory = state.History
	result.GameOver = state.GameOver
	result.Winner = state.Winner

	if result.MovesExecuted > 0 {
		// Auto-save session after bulk moves
		if err := s.sessions.Save(sessionID); err != nil {
			log.Printf("Warning: Failed to persist session %s after bulk moves: %v", sessionID, err)
		}
	}

	return result, nil
}

// ValidateMove checks a move for the player to act without playing it
func (s *gameServiceImpl) ValidateMove(ctx context.Context, sessionID, move string) (*ValidationResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	return validate(sess.Rules, sess.History, move), nil
}

func validate(rules *engine.Rules, h engine.History, move string) *ValidationResult {
	result := &ValidationResult{
		Move:   move,
		Player: h.NextPlayer(),
	}

	m, err := rules.ParseMove(move)
	if err != nil {
		result.Reason = err.Error()
		return result
	}
	result.Move = m.String()
	result.Wall = m.IsWall()

	if winner, over := rules.Winner(h); over {
		result.Reason = fmt.Sprintf("game is over: player %d has won", winner)
		return result
	}

	result.Valid = rules.IsValidMove(h, m)
	if !result.Valid {
		result.Reason = illegalReason(rules, h, m)
	}
	return result
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context, sessionID string) (*engine.GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}
	return sess.State(), nil
}

// GetLegalMoves lists the moves available to the player to act
func (s *gameServiceImpl) GetLegalMoves(ctx context.Context, sessionID string) (*LegalMovesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	state := sess.State()
	return &LegalMovesResponse{
		Player:     state.NextPlayer,
		From:       state.Pawns[state.NextPlayer],
		HeadToHead: state.HeadToHead,
		PawnMoves:  state.LegalPawnMoves,
		WallMoves:  state.LegalWallMoves,
		GameOver:   state.GameOver,
	}, nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, sessionID string, opts HistoryOptions) (*HistoryResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.getSession(sessionID)
	if err != nil {
		return nil, err
	}

	history := sess.History.Entries()
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order == "" {
		opts.Order = "desc"
	}

	// Calculate pagination
	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	// Get the slice of moves
	var moves []engine.MoveHistoryEntry
	if opts.Order == "desc" {
		// Reverse order (most recent first)
		for i := total - 1 - start; i >= 0 && i >= total-end; i-- {
			moves = append(moves, history[i])
		}
	} else if start < total {
		moves = history[start:end]
	}

	// Ensure moves is not nil
	if moves == nil {
		moves = []engine.MoveHistoryEntry{}
	}

	return &HistoryResponse{
		Moves:       moves,
		History:     sess.History.String(),
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}, nil
}

// Evaluate derives the state of a history outside any session. The history
// must replay legally; the optional move is checked against it.
func (s *gameServiceImpl) Evaluate(ctx context.Context, req EvaluateRequest) (*EvaluateResult, error) {
	rules, configID, err := s.resolveRules(req.Rules)
	if err != nil {
		return nil, err
	}

	h, err := rules.ParseHistory(req.History)
	if err != nil {
		return nil, err
	}
	if err := rules.Replay(h); err != nil {
		return nil, err
	}

	result := &EvaluateResult{
		Rules:     configID,
		History:   h.String(),
		GameState: rules.Derive(h),
	}

	if req.Move == "" {
		return result, nil
	}

	check := validate(rules, h, req.Move)
	result.Move = check.Move
	result.Valid = &check.Valid
	result.Reason = check.Reason
	if check.Valid {
		result.NextHistory = engine.UpdateGameState(result.History, check.Move)
	}

	return result, nil
}

// ListConfigs returns available rulesets
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	return s.configs.ListConfigs()
}

// LoadConfig loads a specific ruleset
func (s *gameServiceImpl) LoadConfig(ctx context.Context, configName string) (*engine.Rules, error) {
	return s.configs.LoadConfig(configName)
}

// SaveConfig saves a ruleset to disk
func (s *gameServiceImpl) SaveConfig(ctx context.Context, configName string, rules *engine.Rules) error {
	return s.configs.SaveConfig(configName, rules)
}

// moveEvents generates events for a move that was just played
func moveEvents(player int, m engine.Move, from engine.Square, state *engine.GameState) []GameEvent {
	now := time.Now()
	event := GameEvent{
		ID:        uuid.NewString(),
		Type:      EventMove,
		Timestamp: now,
		Player:    player,
		Move:      m.String(),
	}

	if m.IsWall() {
		event.Type = EventWall
		event.Message = fmt.Sprintf("Player %d placed wall %s", player, m)
	} else {
		event.Message = fmt.Sprintf("Player %d moved %s -> %s", player, from, m)
	}

	events := []GameEvent{event}

	if state.GameOver && state.Winner != nil && *state.Winner == player {
		events = append(events, GameEvent{
			ID:        uuid.NewString(),
			Type:      EventVictory,
			Message:   fmt.Sprintf("Victory! Player %d reached the goal row", player),
			Timestamp: now,
			Player:    player,
		})
	}

	return events
}

// illegalReason explains why a well-formed move is not legal after h
func illegalReason(rules *engine.Rules, h engine.History, m engine.Move) string {
	player := h.NextPlayer()

	if m.IsWall() {
		w := m.Wall()
		if rules.WallsRemaining(player, h) == 0 {
			return fmt.Sprintf("player %d has no walls left", player)
		}
		if !rules.ValidAnchor(w.Anchor) {
			return fmt.Sprintf("wall %s would extend off the board", w)
		}
		for _, placed := range h.Walls() {
			if w.CollidesWith(placed) {
				return fmt.Sprintf("wall %s collides with %s", w, placed)
			}
		}
		return fmt.Sprintf("wall %s is not available", w)
	}

	if m.Square == rules.PawnSquare(1-player, h) {
		return fmt.Sprintf("%s is occupied by player %d", m.Square, 1-player)
	}
	return fmt.Sprintf("%s is not reachable from %s", m.Square, rules.PawnSquare(player, h))
}
