package engine

import (
	"encoding/json"
	"fmt"
	"os"
)

// Rules holds the board dimensions and starting position of a game variant.
// Label parsing, adjacency and move generation all read their bounds from here.
type Rules struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	BoardSize   int       `json:"board_size"`
	Starts      [2]string `json:"start_squares"`
	// WallsPerPlayer caps wall placements per player; 0 means unlimited.
	WallsPerPlayer int `json:"walls_per_player,omitempty"`
}

// Standard is the 9x9 ruleset: pawns start at E1 and E9, walls are unlimited.
var Standard = &Rules{
	Name:        "standard",
	Description: "9x9 board, pawns start at E1 and E9, unlimited walls",
	BoardSize:   StandardBoardSize,
	Starts:      [2]string{"E1", "E9"},
}

// ValidateRules validates a ruleset for correctness and playability
func ValidateRules(rules *Rules) error {
	if rules == nil {
		return fmt.Errorf("rules validation: rules are nil")
	}
	if rules.Name == "" {
		return fmt.Errorf("rules validation: name is required")
	}
	if rules.Description == "" {
		return fmt.Errorf("rules validation: description is required")
	}

	if rules.BoardSize < MinBoardSize || rules.BoardSize > MaxBoardSize {
		return fmt.Errorf("rules validation: board_size must be between %d and %d, got %d",
			MinBoardSize, MaxBoardSize, rules.BoardSize)
	}

	if rules.WallsPerPlayer < 0 {
		return fmt.Errorf("rules validation: walls_per_player must not be negative, got %d", rules.WallsPerPlayer)
	}

	var starts [2]Square
	for player, label := range rules.Starts {
		sq, err := rules.ParseSquare(label)
		if err != nil {
			return fmt.Errorf("rules validation: start square for player %d: %w", player, err)
		}
		starts[player] = sq
	}

	// Each player starts on the row opposite their goal
	if starts[0].Y != 0 {
		return fmt.Errorf("rules validation: player 0 must start on row 1, got %s", starts[0])
	}
	if starts[1].Y != rules.BoardSize-1 {
		return fmt.Errorf("rules validation: player 1 must start on row %d, got %s", rules.BoardSize, starts[1])
	}

	return nil
}

// LoadRules loads a ruleset from a JSON file
func LoadRules(filename string) (*Rules, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var rules Rules
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, err
	}

	if err := ValidateRules(&rules); err != nil {
		return nil, err
	}

	return &rules, nil
}

// Start returns the start square of a player. Rules that passed
// ValidateRules always have parseable start squares; anything else panics.
func (r *Rules) Start(player int) Square {
	sq, err := r.ParseSquare(r.Starts[player])
	if err != nil {
		panic(fmt.Sprintf("engine: rules %q have an invalid start square: %v", r.Name, err))
	}
	return sq
}

// GoalRow returns the row a player must reach
func (r *Rules) GoalRow(player int) int {
	if player == 0 {
		return r.BoardSize - 1
	}
	return 0
}

// OnBoard reports whether s lies inside the board
func (r *Rules) OnBoard(s Square) bool {
	return s.X >= 0 && s.X < r.BoardSize && s.Y >= 0 && s.Y < r.BoardSize
}
