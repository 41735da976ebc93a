package engine

import (
	"errors"
	"hive/experiments/metrics"
)

// Errors returned when a player's command cannot be carried out.
var (
	ErrGameOver    = errors.New("game is over - no moves allowed")
	ErrNotYourTurn = errors.New("not your turn")
	ErrIllegalMove = errors.New("illegal move")
)

type Engine interface {
	// Run plays a game till there's a winner or the turn cap is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
