package searcher

import (
	"hive/experiments/metrics"
	"hive/game"
	"hive/meta"
	"hive/utils"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var _ Searcher = (*Tree)(nil)

type Option func(t *Tree)

func WithDepth(depth int) Option {
	return func(t *Tree) {
		if depth > 0 {
			t.target = depth
		}
	}
}

func WithDifficulty(d Difficulty) Option {
	return func(t *Tree) {
		t.target = d.Depth()
	}
}

func WithMode(mode Mode) Option {
	return func(t *Tree) {
		t.mode = mode
	}
}

// WithWorkers expands the root's subtrees on up to n goroutines.
func WithWorkers(n int) Option {
	return func(t *Tree) {
		if n > 0 {
			t.workers = n
		}
	}
}

func WithMetrics() Option {
	return func(t *Tree) {
		t.metrics = metrics.NewCollector()
	}
}

// Tree is a fixed-depth minimax tree that is kept across turns: after an
// action is played the matching subtree becomes the root and is deepened by
// one level instead of being rebuilt.
type Tree struct {
	board   *game.Board // position at the root
	root    *Node
	depth   int // current depth below the root
	target  int
	mode    Mode
	workers int
	leaves  atomic.Int64
	metrics metrics.Collector
}

func NewTree(board *game.Board, options ...Option) *Tree {
	t := &Tree{ // Default values
		board:   board.Clone(),
		target:  meta.EASY_DEPTH,
		mode:    Balanced,
		workers: 1,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(t)
	}
	return t
}

func (t *Tree) Root() *Node {
	return t.root
}

func (t *Tree) Depth() int {
	return t.depth
}

func (t *Tree) Mode() Mode {
	return t.mode
}

// Leaves counts every node created since the tree was made.
func (t *Tree) Leaves() int64 {
	return t.leaves.Load()
}

// BuildTree discards the current tree and builds one of the given depth
// from the root position.
func (t *Tree) BuildTree(depth int) {
	defer t.timed(time.Now())

	t.root = newNode(game.Action{}, t.board.Clone())
	t.depth = depth
	if depth <= 0 {
		return
	}
	t.each(t.root, func(child *Node) {
		t.grow(child, depth-1)
	})
	log.Debug().Int("depth", depth).Int64("leaves", t.Leaves()).Msg("built tree")
}

// AddLevel expands every leaf of the tree by one ply.
func (t *Tree) AddLevel() {
	defer t.timed(time.Now())

	if t.root == nil {
		t.root = newNode(game.Action{}, t.board.Clone())
		t.depth = 0
	}
	t.deepen(t.root)
	t.depth++
}

// BestMove picks the root child with the best minimax score. Ties go to the
// first child in action order. It returns nil when the root has no children.
func (t *Tree) BestMove(mode Mode, maximizing bool) (*Node, int) {
	defer t.timed(time.Now())

	if t.root == nil || t.root.IsLeaf() {
		return nil, 0
	}

	var best *Node
	bestScore := 0
	for _, child := range t.root.children {
		score := child.minimax(mode, !maximizing)
		if best == nil || (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			best, bestScore = child, score
		}
	}
	return best, bestScore
}

// FindMove builds the tree if needed and returns the best action for the
// side to act at the root.
func (t *Tree) FindMove() (game.Action, metrics.SearchMetric, bool) {
	if t.root == nil {
		t.metrics.SetTreeReset(true)
		t.BuildTree(t.target)
	}
	for t.depth < t.target {
		t.AddLevel()
	}

	node, score := t.BestMove(t.mode, t.root.team == game.White)
	metric := t.metrics.Complete(t.depth, t.mode.String(), t.workers)
	if node == nil {
		return game.Action{}, metric, false
	}
	metric.Score = score
	log.Debug().Str("action", node.action.String()).Int("score", score).Int("depth", t.depth).Msg("found move")
	return node.action, metric, true
}

// Advance moves the root to the position reached by action. When the tree
// already holds that position its subtree is kept and deepened by one level;
// otherwise the tree is rebuilt from board. It reports whether the subtree
// was reused.
func (t *Tree) Advance(action game.Action, board *game.Board) bool {
	t.board = board.Clone()

	child := t.findChild(action, board.Hash())
	if child == nil {
		t.metrics.SetTreeReset(true)
		t.BuildTree(t.target)
		return false
	}

	t.root = child
	t.depth--
	t.metrics.SetTreeReset(false)
	for t.depth < t.target {
		t.AddLevel()
	}
	return true
}

func (t *Tree) findChild(action game.Action, hash game.StateHash) *Node {
	if t.root == nil {
		return nil
	}

	actions := make([]game.Action, len(t.root.children))
	for i, child := range t.root.children {
		actions[i] = child.action
	}
	i := utils.FindIndex(actions, action)
	if i < 0 { // Root has not expanded this action
		return nil
	}

	child := t.root.children[i]
	if child.hash != hash {
		log.Warn().Msgf("node's state hash %d does not match board's state hash %d", child.hash, hash)
		return nil
	}
	return child
}

// grow expands n until it is depth plies deep.
func (t *Tree) grow(n *Node, depth int) {
	if depth <= 0 {
		return
	}
	t.expand(n)
	for _, child := range n.children {
		t.grow(child, depth-1)
	}
}

func (t *Tree) deepen(n *Node) {
	if !n.expanded {
		t.expand(n)
		return
	}
	if n == t.root {
		t.each(n, t.deepen)
		return
	}
	for _, child := range n.children {
		t.deepen(child)
	}
}

func (t *Tree) expand(n *Node) bool {
	if !n.expand() {
		return false
	}
	for range n.children {
		t.leaves.Add(1)
		t.metrics.AddLeaf()
	}
	return true
}

// each expands n if needed, then runs fn on every child, spreading the
// children over the tree's workers.
func (t *Tree) each(n *Node, fn func(child *Node)) {
	t.expand(n)
	if t.workers <= 1 {
		for _, child := range n.children {
			fn(child)
		}
		return
	}

	var g errgroup.Group
	g.SetLimit(t.workers)
	for _, child := range n.children {
		child := child
		g.Go(func() error {
			fn(child)
			return nil
		})
	}
	g.Wait()
}

func (t *Tree) timed(start time.Time) {
	t.metrics.AddDuration(time.Since(start))
}
