package searcher

import (
	"hive/game"
)

// Node is one position in the search tree. Interior nodes drop their board
// once expanded; only leaves keep one for scoring.
type Node struct {
	action   game.Action // action that produced this position, zero at the root
	board    *game.Board
	hash     game.StateHash
	team     game.Team // side to act
	children []*Node
	expanded bool
	stuck    bool // in progress but no legal action

	scored     bool
	scoredMode Mode
	score      int
}

func newNode(action game.Action, board *game.Board) *Node {
	return &Node{
		action: action,
		board:  board,
		hash:   board.Hash(),
		team:   board.ActiveTeam(),
	}
}

func (n *Node) Action() game.Action {
	return n.action
}

func (n *Node) Hash() game.StateHash {
	return n.hash
}

func (n *Node) Children() []*Node {
	return n.children
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// terminal nodes never get children.
func (n *Node) terminal() bool {
	return n.stuck || (n.board != nil && n.board.Status().Over())
}

// expand adds one child per legal action. It reports whether children were
// added; a position without actions is marked stuck instead.
func (n *Node) expand() bool {
	if n.expanded || n.terminal() {
		return false
	}

	actions := n.board.LegalActions()
	if len(actions) == 0 {
		n.stuck = true
		return false
	}

	n.children = make([]*Node, 0, len(actions))
	for _, action := range actions {
		child := n.board.Clone()
		if !child.Apply(action) {
			panic("listed action was rejected: " + action.String())
		}
		n.children = append(n.children, newNode(action, child))
	}
	n.expanded = true
	n.board = nil
	return true
}

// evaluate scores a leaf from White's perspective. A side with nothing to
// play is scored as losing.
func (n *Node) evaluate(mode Mode) int {
	if n.scored && n.scoredMode == mode {
		return n.score
	}

	var score int
	switch {
	case n.stuck && n.team == game.White:
		score = -game.StalemateScore
	case n.stuck:
		score = game.StalemateScore
	default:
		score = mode.evaluate()(n.board)
	}

	n.scored, n.scoredMode, n.score = true, mode, score
	return score
}

// minimax returns the best reachable leaf score. Players alternate between
// maximizing and minimizing each ply.
func (n *Node) minimax(mode Mode, maximizing bool) int {
	if n.IsLeaf() {
		return n.evaluate(mode)
	}

	best := n.children[0].minimax(mode, !maximizing)
	for _, child := range n.children[1:] {
		score := child.minimax(mode, !maximizing)
		if (maximizing && score > best) || (!maximizing && score < best) {
			best = score
		}
	}
	return best
}
