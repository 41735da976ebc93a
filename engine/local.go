package engine

import (
	"fmt"
	"hive/experiments/metrics"
	"hive/game"
	"hive/meta"
	"hive/player"
	"time"

	"github.com/rs/zerolog/log"
)

type Option func(e *LocalEngine)

func WithMaxTurns(turns int) Option {
	return func(e *LocalEngine) {
		if turns > 0 {
			e.maxTurns = turns
		}
	}
}

// LocalEngine runs a game between two players in process.
type LocalEngine struct {
	Board    *game.Board
	players  [game.NumTeams]player.Player
	maxTurns int
}

func NewLocalEngine(rules game.RuleSet, white, black player.Player, options ...Option) *LocalEngine {
	e := &LocalEngine{
		players:  [game.NumTeams]player.Player{white, black},
		maxTurns: meta.MAX_TURNS,
	}
	for _, option := range options {
		option(e)
	}
	e.Board = game.NewBoard(rules, func(winner game.Team) {
		log.Info().Msgf("%s surrounded the %s queen", winner, winner.Opponent())
	})
	return e
}

// Run plays until a team wins or the turn cap is reached. Players that
// return an action the board rejects end the game with ErrIllegalMove.
func (e *LocalEngine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: int(e.Board.ActiveTeam()),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Info().Msgf("%s (%s) vs %s (%s)", game.White, e.players[game.White].Name(), game.Black, e.players[game.Black].Name())

	for !e.Board.Status().Over() && e.Board.Turn() < e.maxTurns {
		team := e.Board.ActiveTeam()
		current := e.players[team]

		action, searchMetric, ok := current.Choose(e.Board.Clone())
		if !ok {
			if !e.Board.Pass() {
				panic(fmt.Sprintf("%s found no action but passing is not allowed", current.Name()))
			}
			log.Debug().Msgf("turn %d: %s passes", e.Board.Turn()-1, team)
			e.broadcast(game.Action{})
			continue
		}

		if !e.Board.Apply(action) {
			return "", gameMetric, moveMetrics, fmt.Errorf("%w: %s played %s on turn %d", ErrIllegalMove, current.Name(), action, e.Board.Turn())
		}
		log.Debug().Msgf("turn %d: %s plays %s", e.Board.Turn()-1, team, action)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.Board.Turn(),
			Player:       int(team),
			Action:       action.String(),
			SearchMetric: searchMetric,
		})
		e.broadcast(action)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.Board.Turn()

	winner, ok := e.Board.Winner()
	if !ok {
		log.Info().Msgf("stopped after %d turns (no winner yet)", e.Board.Turn())
		return "", gameMetric, moveMetrics, nil
	}
	gameMetric.Winner = winner.String()
	return winner.String(), gameMetric, moveMetrics, nil
}

// broadcast tells both players about the action just played. A zero action
// stands for a pass.
func (e *LocalEngine) broadcast(action game.Action) {
	for _, p := range e.players {
		p.Observe(action, e.Board.Clone())
	}
}
