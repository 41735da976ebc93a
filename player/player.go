package player

import (
	"hive/experiments/metrics"
	"hive/game"
	"hive/searcher"

	"golang.org/x/exp/rand"
)

// Player chooses actions for one team. Every action played on the board, by
// either team, is reported through Observe.
type Player interface {
	Name() string
	// Choose returns false when the side to act has nothing to play.
	Choose(board *game.Board) (game.Action, metrics.SearchMetric, bool)
	Observe(action game.Action, board *game.Board)
}

// Random picks uniformly among the legal actions. A fixed seed replays the
// same game.
type Random struct {
	rng *rand.Rand
}

func NewRandom(seed uint64) *Random {
	return &Random{rng: rand.New(rand.NewSource(seed))}
}

func (p *Random) Name() string {
	return "random"
}

func (p *Random) Choose(board *game.Board) (game.Action, metrics.SearchMetric, bool) {
	actions := board.LegalActions()
	if len(actions) == 0 {
		return game.Action{}, metrics.SearchMetric{}, false
	}
	return actions[p.rng.Intn(len(actions))], metrics.SearchMetric{}, true
}

func (p *Random) Observe(game.Action, *game.Board) {}

// Search plays the best action of a minimax tree that follows the game.
type Search struct {
	options []searcher.Option
	tree    *searcher.Tree
	name    string
}

func NewSearch(name string, options ...searcher.Option) *Search {
	return &Search{
		options: options,
		name:    name,
	}
}

func (p *Search) Name() string {
	return p.name
}

func (p *Search) Choose(board *game.Board) (game.Action, metrics.SearchMetric, bool) {
	if p.tree == nil {
		p.tree = searcher.NewTree(board, p.options...)
	}
	return p.tree.FindMove()
}

func (p *Search) Observe(action game.Action, board *game.Board) {
	if p.tree == nil {
		return
	}
	p.tree.Advance(action, board)
}
