package session

import (
	"context"
	"sync"
	"testing"

	"github.com/wricardo/corridor/game/config"
	"github.com/wricardo/corridor/game/service"
)

// Readers stamp the access time on the shared session while a writer plays
// moves; run with -race.
func TestGameService_ConcurrentSessionAccess(t *testing.T) {
	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	svc := service.NewGameService(NewManager(), configManager)
	ctx := context.Background()

	info, err := svc.CreateSession(ctx, "mini")
	if err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	const (
		readers    = 8
		iterations = 50
	)

	var wg sync.WaitGroup
	errs := make(chan error, readers*iterations+iterations)

	for i := 0; i < readers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				if _, err := svc.GetSession(ctx, info.ID); err != nil {
					errs <- err
				}
				if _, err := svc.GetGameState(ctx, info.ID); err != nil {
					errs <- err
				}
				if _, err := svc.GetLegalMoves(ctx, info.ID); err != nil {
					errs <- err
				}
				if _, err := svc.ValidateMove(ctx, info.ID, "hA1"); err != nil {
					errs <- err
				}
				if _, err := svc.GetMoveHistory(ctx, info.ID, service.HistoryOptions{}); err != nil {
					errs <- err
				}
				if _, err := svc.ListSessions(ctx); err != nil {
					errs <- err
				}
			}
		}()
	}

	// Both pawns step forward and back, so the game never ends
	wg.Add(1)
	go func() {
		defer wg.Done()
		shuffle := []string{"C2", "C4", "C1", "C5"}
		for j := 0; j < iterations; j++ {
			result, err := svc.Move(ctx, info.ID, shuffle[j%len(shuffle)])
			if err != nil {
				errs <- err
				continue
			}
			if !result.Success {
				t.Errorf("Move %d rejected: %s", j, result.Message)
			}
		}
	}()

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("Unexpected error during concurrent access: %v", err)
	}

	state, err := svc.GetGameState(ctx, info.ID)
	if err != nil {
		t.Fatalf("GetGameState failed: %v", err)
	}
	if state.MoveCount != iterations {
		t.Errorf("Expected %d moves, got %d", iterations, state.MoveCount)
	}
}
