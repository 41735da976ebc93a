package engine

import (
	"hive/experiments/metrics"
	"hive/game"
	"hive/player"
	"hive/searcher"
	"testing"

	"github.com/stretchr/testify/require"
)

// scripted plays a fixed list of actions and records what it observes.
type scripted struct {
	actions  []game.Action
	next     int
	observed []game.Action
}

func (p *scripted) Name() string { return "scripted" }

func (p *scripted) Choose(*game.Board) (game.Action, metrics.SearchMetric, bool) {
	if p.next >= len(p.actions) {
		return game.Action{}, metrics.SearchMetric{}, false
	}
	p.next++
	return p.actions[p.next-1], metrics.SearchMetric{}, true
}

func (p *scripted) Observe(action game.Action, _ *game.Board) {
	p.observed = append(p.observed, action)
}

func c(x, y int) game.Coordinate {
	return game.Coordinate{X: x, Y: y}
}

func TestLocalEngineRun(t *testing.T) {
	t.Run("scripted game ends with the surround", func(t *testing.T) {
		white := &scripted{actions: []game.Action{
			game.PlaceAction(game.Queen, c(0, 0)),
			game.PlaceAction(game.Ant, c(1, 1)),
			game.PlaceAction(game.Ant, c(1, -1)),
			game.PlaceAction(game.Grasshopper, c(-2, 0)),
			game.MoveAction(c(-2, 0), c(4, 0)),
		}}
		black := &scripted{actions: []game.Action{
			game.PlaceAction(game.Queen, c(2, 0)),
			game.PlaceAction(game.Ant, c(3, 1)),
			game.PlaceAction(game.Ant, c(3, -1)),
			game.PlaceAction(game.Spider, c(5, 1)),
		}}
		e := NewLocalEngine(game.FreeRules(), white, black)

		winner, gameMetric, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.Equal(t, "White", winner)
		require.Equal(t, "White", gameMetric.Winner)
		require.Equal(t, 9, gameMetric.TotalMoves)
		require.Len(t, moveMetrics, 9)
		require.Equal(t, int(game.White), gameMetric.StartingPlayer)
		require.Equal(t, game.MoveAction(c(-2, 0), c(4, 0)).String(), moveMetrics[8].Action)
		require.Len(t, black.observed, 9, "both players see every action")
		require.Equal(t, white.observed, black.observed)
	})

	t.Run("illegal action ends the game with an error", func(t *testing.T) {
		white := &scripted{actions: []game.Action{game.PlaceAction(game.Queen, c(4, 4))}}
		black := &scripted{}
		e := NewLocalEngine(game.StandardRules(), white, black)

		_, _, _, err := e.Run()

		require.ErrorIs(t, err, ErrIllegalMove)
	})

	t.Run("turn cap stops endless games", func(t *testing.T) {
		e := NewLocalEngine(game.StandardRules(), player.NewRandom(1), player.NewRandom(2), WithMaxTurns(30))

		winner, gameMetric, _, err := e.Run()

		require.NoError(t, err)
		if winner == "" {
			require.Equal(t, 30, gameMetric.TotalMoves)
		}
		require.LessOrEqual(t, gameMetric.TotalMoves, 30)
		require.True(t, e.Board.IsHiveConnected())
	})

	t.Run("same seeds replay the same game", func(t *testing.T) {
		run := func() []metrics.MoveMetric {
			e := NewLocalEngine(game.StandardRules(), player.NewRandom(7), player.NewRandom(8), WithMaxTurns(40))
			_, _, moves, err := e.Run()
			require.NoError(t, err)
			return moves
		}
		require.Equal(t, run(), run())
	})

	t.Run("search player against random", func(t *testing.T) {
		search := player.NewSearch("easy", searcher.WithDifficulty(searcher.Easy), searcher.WithMetrics())
		e := NewLocalEngine(game.StandardRules(), search, player.NewRandom(3), WithMaxTurns(20))

		_, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, moveMetrics)
		require.Equal(t, 1, moveMetrics[0].Depth, "white's moves come from a depth one search")
		require.True(t, moveMetrics[0].IsTreeReset)
	})
}
