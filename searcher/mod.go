package searcher

import (
	"fmt"
	"hive/experiments/metrics"
	"hive/game"
	"hive/meta"
)

// Mode selects the evaluation function used to score leaves.
type Mode int

const (
	Balanced Mode = iota
	Aggressive
	Defensive
)

var modeNames = [...]string{"balanced", "aggressive", "defensive"}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

func ParseMode(name string) (Mode, error) {
	for i, n := range modeNames {
		if n == name {
			return Mode(i), nil
		}
	}
	return Balanced, fmt.Errorf("unknown evaluation mode %q", name)
}

func (m Mode) evaluate() game.Evaluate {
	switch m {
	case Aggressive:
		return game.EvaluateAggressive
	case Defensive:
		return game.EvaluateDefensive
	default:
		return game.EvaluateBalanced
	}
}

type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

var difficultyNames = [...]string{"easy", "medium", "hard"}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
	return difficultyNames[d]
}

func ParseDifficulty(name string) (Difficulty, error) {
	for i, n := range difficultyNames {
		if n == name {
			return Difficulty(i), nil
		}
	}
	return Easy, fmt.Errorf("unknown difficulty %q", name)
}

// Depth is the number of plies searched at this difficulty.
func (d Difficulty) Depth() int {
	switch d {
	case Medium:
		return meta.MEDIUM_DEPTH
	case Hard:
		return meta.HARD_DEPTH
	default:
		return meta.EASY_DEPTH
	}
}

type Searcher interface {
	FindMove() (game.Action, metrics.SearchMetric, bool)
	Advance(action game.Action, board *game.Board) bool
}
