package session

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/wricardo/corridor/game/config"
	"github.com/wricardo/corridor/game/engine"
	"github.com/wricardo/corridor/game/service"
)

func newTestPersistence(t *testing.T) (*FilePersistence, *config.Manager, string) {
	t.Helper()
	tempDir := t.TempDir()

	configManager, err := config.NewManager("../../configs")
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}

	persistence, err := NewFilePersistence(tempDir, configManager)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	return persistence, configManager, tempDir
}

func TestFilePersistence(t *testing.T) {
	persistence, configManager, tempDir := newTestPersistence(t)

	rules, err := configManager.LoadConfig("mini")
	if err != nil {
		t.Fatalf("Failed to load mini rules: %v", err)
	}
	history, err := rules.ParseHistory("C2;C4;hA1")
	if err != nil {
		t.Fatalf("Failed to parse history: %v", err)
	}

	session := &service.Session{
		ID:             "test1",
		ConfigID:       "mini",
		Rules:          rules,
		History:        history,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}

	t.Run("Save and Load Session", func(t *testing.T) {
		if err := persistence.Save(session); err != nil {
			t.Fatalf("Failed to save session: %v", err)
		}

		if !persistence.Exists("test1") {
			t.Error("Session file should exist after save")
		}

		loaded, err := persistence.Load("test1")
		if err != nil {
			t.Fatalf("Failed to load session: %v", err)
		}

		if loaded.ID != session.ID {
			t.Errorf("Expected ID %s, got %s", session.ID, loaded.ID)
		}
		if loaded.ConfigID != "mini" || loaded.Rules.BoardSize != 5 {
			t.Errorf("Expected mini rules, got %s (%d)", loaded.ConfigID, loaded.Rules.BoardSize)
		}
		if loaded.History.String() != "C2;C4;hA1" {
			t.Errorf("Expected history C2;C4;hA1, got %s", loaded.History)
		}
		if loaded.State().WallsRemaining != [2]int{2, 3} {
			t.Errorf("Expected walls remaining [2 3], got %v", loaded.State().WallsRemaining)
		}
	})

	t.Run("File layout", func(t *testing.T) {
		raw, err := os.ReadFile(filepath.Join(tempDir, "test1.json"))
		if err != nil {
			t.Fatalf("Failed to read session file: %v", err)
		}

		var data PersistedSessionData
		if err := json.Unmarshal(raw, &data); err != nil {
			t.Fatalf("Session file is not valid JSON: %v", err)
		}
		if data.History != "C2;C4;hA1" || data.ConfigID != "mini" {
			t.Errorf("Unexpected persisted data: %+v", data)
		}
		if data.GameState == nil || data.GameState.Board != nil {
			t.Error("Expected a game state snapshot without the board rendering")
		}
		if _, err := os.Stat(filepath.Join(tempDir, "test1.json.tmp")); !os.IsNotExist(err) {
			t.Error("Temp file should not be left behind")
		}
	})

	t.Run("List All Sessions", func(t *testing.T) {
		session2 := &service.Session{
			ID:             "test2",
			ConfigID:       "standard",
			Rules:          engine.Standard,
			CreatedAt:      time.Now(),
			LastAccessedAt: time.Now(),
		}
		if err := persistence.Save(session2); err != nil {
			t.Fatalf("Failed to save second session: %v", err)
		}

		ids, err := persistence.ListAll()
		if err != nil {
			t.Fatalf("Failed to list sessions: %v", err)
		}
		if len(ids) != 2 {
			t.Errorf("Expected 2 sessions, got %d: %v", len(ids), ids)
		}
	})

	t.Run("Delete Session", func(t *testing.T) {
		if err := persistence.Delete("test2"); err != nil {
			t.Fatalf("Failed to delete session: %v", err)
		}
		if persistence.Exists("test2") {
			t.Error("Session should not exist after delete")
		}
		if err := persistence.Delete("test2"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("Load Non-existent Session", func(t *testing.T) {
		if _, err := persistence.Load("missing"); !errors.Is(err, ErrSessionNotFound) {
			t.Errorf("Expected ErrSessionNotFound, got %v", err)
		}
	})
}

func TestFilePersistence_CorruptFiles(t *testing.T) {
	persistence, _, tempDir := newTestPersistence(t)

	write := func(id, content string) {
		if err := os.WriteFile(filepath.Join(tempDir, id+".json"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", id, err)
		}
	}

	tests := []struct {
		name    string
		content string
		wantErr error
		wantMsg string
	}{
		{
			name:    "malformed json",
			content: `{"id": "x",`,
			wantMsg: "unmarshal",
		},
		{
			name:    "unknown ruleset",
			content: `{"id": "x", "config_id": "gone", "history": ""}`,
			wantErr: service.ErrConfigNotFound,
		},
		{
			name:    "invalid stored ruleset",
			content: `{"id": "x", "config_id": "standard", "rules": {"name": "bad", "board_size": 1}, "history": ""}`,
			wantMsg: "rules validation",
		},
		{
			name:    "malformed history",
			content: `{"id": "x", "config_id": "standard", "history": "E2;Z9"}`,
			wantErr: engine.ErrInvalidLabel,
		},
		{
			name:    "illegal history",
			content: `{"id": "x", "config_id": "standard", "history": "E2;E8;E5"}`,
			wantErr: engine.ErrIllegalHistory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := strings.ReplaceAll(tt.name, " ", "-")
			write(id, tt.content)

			_, err := persistence.Load(id)
			if err == nil {
				t.Fatal("Expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("Load() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantMsg != "" && !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantMsg)
			}
		})
	}
}

func TestFilePersistence_DefaultRuleset(t *testing.T) {
	persistence, _, tempDir := newTestPersistence(t)

	content := `{"id": "legacy", "history": "E2;E8"}`
	if err := os.WriteFile(filepath.Join(tempDir, "legacy.json"), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write session: %v", err)
	}

	loaded, err := persistence.Load("legacy")
	if err != nil {
		t.Fatalf("Failed to load session without config_id: %v", err)
	}
	if loaded.ConfigID != "standard" {
		t.Errorf("Expected default config 'standard', got %s", loaded.ConfigID)
	}
}

func TestFilePersistence_ConfigOverwritten(t *testing.T) {
	configManager, err := config.NewManager(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to create config manager: %v", err)
	}
	persistence, err := NewFilePersistence(t.TempDir(), configManager)
	if err != nil {
		t.Fatalf("Failed to create file persistence: %v", err)
	}

	rules, err := configManager.LoadConfig("standard")
	if err != nil {
		t.Fatalf("Failed to load standard rules: %v", err)
	}
	history, err := rules.ParseHistory("E2;E8;E3;E7;hD5;vF4")
	if err != nil {
		t.Fatalf("Failed to parse history: %v", err)
	}
	if err := persistence.Save(&service.Session{
		ID:             "kept",
		ConfigID:       "standard",
		Rules:          rules,
		History:        history,
		CreatedAt:      time.Now(),
		LastAccessedAt: time.Now(),
	}); err != nil {
		t.Fatalf("Failed to save session: %v", err)
	}

	// Reuse the ID for a board on which E8 does not exist
	small := &engine.Rules{
		Name:        "standard",
		Description: "Redefined on a small board",
		BoardSize:   5,
		Starts:      [2]string{"C1", "C5"},
	}
	if err := configManager.SaveConfig("standard", small); err != nil {
		t.Fatalf("Failed to overwrite config: %v", err)
	}

	loaded, err := persistence.Load("kept")
	if err != nil {
		t.Fatalf("Session should survive a config overwrite: %v", err)
	}
	if loaded.Rules.BoardSize != engine.StandardBoardSize {
		t.Errorf("Expected board size %d, got %d", engine.StandardBoardSize, loaded.Rules.BoardSize)
	}
	if loaded.History.String() != "E2;E8;E3;E7;hD5;vF4" {
		t.Errorf("Expected original history, got %s", loaded.History)
	}

	t.Run("files without a ruleset use the current config", func(t *testing.T) {
		content := `{"id": "old", "config_id": "standard", "history": "C2;C4"}`
		if err := os.WriteFile(filepath.Join(persistence.sessionsDir, "old.json"), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write session: %v", err)
		}

		loaded, err := persistence.Load("old")
		if err != nil {
			t.Fatalf("Failed to load session: %v", err)
		}
		if loaded.Rules.BoardSize != 5 {
			t.Errorf("Expected the overwritten 5x5 rules, got board size %d", loaded.Rules.BoardSize)
		}
	})
}
