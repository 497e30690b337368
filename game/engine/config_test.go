package engine

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func createValidRules() *Rules {
	return &Rules{
		Name:           "Test Rules",
		Description:    "A valid test ruleset",
		BoardSize:      7,
		Starts:         [2]string{"D1", "D7"},
		WallsPerPlayer: 5,
	}
}

func TestValidateRules_ValidRules(t *testing.T) {
	if err := ValidateRules(createValidRules()); err != nil {
		t.Errorf("Expected valid rules to pass validation, got: %v", err)
	}
	if err := ValidateRules(Standard); err != nil {
		t.Errorf("Standard rules failed validation: %v", err)
	}
}

func TestValidateRules_Nil(t *testing.T) {
	if err := ValidateRules(nil); err == nil {
		t.Error("Expected error for nil rules")
	}
}

func TestValidateRules_MissingName(t *testing.T) {
	rules := createValidRules()
	rules.Name = ""
	err := ValidateRules(rules)
	if err == nil {
		t.Fatal("Expected error for missing name")
	}
	if !strings.Contains(err.Error(), "name is required") {
		t.Errorf("Expected name validation error, got: %v", err)
	}
}

func TestValidateRules_MissingDescription(t *testing.T) {
	rules := createValidRules()
	rules.Description = ""
	err := ValidateRules(rules)
	if err == nil {
		t.Fatal("Expected error for missing description")
	}
	if !strings.Contains(err.Error(), "description is required") {
		t.Errorf("Expected description validation error, got: %v", err)
	}
}

func TestValidateRules_InvalidBoardSize(t *testing.T) {
	tests := []struct {
		name      string
		boardSize int
	}{
		{"too small", 2},
		{"too large", 10},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rules := createValidRules()
			rules.BoardSize = test.boardSize
			err := ValidateRules(rules)
			if err == nil {
				t.Fatalf("Expected error for board size %d", test.boardSize)
			}
			if !strings.Contains(err.Error(), "board_size must be between") {
				t.Errorf("Expected board size validation error, got: %v", err)
			}
		})
	}
}

func TestValidateRules_StartSquares(t *testing.T) {
	tests := []struct {
		name          string
		starts        [2]string
		expectedError string
	}{
		{"unparseable", [2]string{"D0", "D7"}, "start square for player 0"},
		{"off board", [2]string{"D1", "H7"}, "start square for player 1"},
		{"player 0 not on first row", [2]string{"D2", "D7"}, "player 0 must start on row 1"},
		{"player 1 not on last row", [2]string{"D1", "D6"}, "player 1 must start on row 7"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			rules := createValidRules()
			rules.Starts = test.starts
			err := ValidateRules(rules)
			if err == nil {
				t.Fatalf("Expected error for starts %v", test.starts)
			}
			if !strings.Contains(err.Error(), test.expectedError) {
				t.Errorf("Expected error containing '%s', got: %v", test.expectedError, err)
			}
		})
	}
}

func TestValidateRules_NegativeWalls(t *testing.T) {
	rules := createValidRules()
	rules.WallsPerPlayer = -1
	err := ValidateRules(rules)
	if err == nil || !strings.Contains(err.Error(), "walls_per_player") {
		t.Errorf("Expected walls_per_player error, got: %v", err)
	}
}

func TestLoadRules(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "mini.json")
	content := `{
  "name": "mini",
  "description": "5x5 board",
  "board_size": 5,
  "start_squares": ["C1", "C5"],
  "walls_per_player": 3
}`
	if err := os.WriteFile(valid, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}

	rules, err := LoadRules(valid)
	if err != nil {
		t.Fatalf("LoadRules failed: %v", err)
	}
	if rules.Name != "mini" || rules.BoardSize != 5 || rules.WallsPerPlayer != 3 {
		t.Errorf("Unexpected rules loaded: %+v", rules)
	}
	if rules.Start(1) != (Square{X: 2, Y: 4}) {
		t.Errorf("Start(1) = %v, want C5", rules.Start(1))
	}

	invalid := filepath.Join(dir, "broken.json")
	if err := os.WriteFile(invalid, []byte(`{"name": "broken"`), 0644); err != nil {
		t.Fatalf("Failed to write rules file: %v", err)
	}
	if _, err := LoadRules(invalid); err == nil {
		t.Error("Expected error for malformed JSON")
	}

	if _, err := LoadRules(filepath.Join(dir, "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got: %v", err)
	}
}

func TestGoalRow(t *testing.T) {
	if got := Standard.GoalRow(0); got != 8 {
		t.Errorf("GoalRow(0) = %d, want 8", got)
	}
	if got := Standard.GoalRow(1); got != 0 {
		t.Errorf("GoalRow(1) = %d, want 0", got)
	}
}

func TestStart_PanicsOnInvalidRules(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for invalid start square")
		}
	}()
	broken := &Rules{Name: "broken", BoardSize: 5, Starts: [2]string{"Z1", "C5"}}
	broken.Start(0)
}
