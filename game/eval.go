package game

// Evaluates the board to an integer score from White's perspective: positive
// favours White. Scores must be deterministic for a given position.
type Evaluate func(*Board) int

const (
	WinScore = 100000
	// StalemateScore is charged to a side that cannot act at a search leaf.
	// It is below WinScore so a real win is always preferred.
	StalemateScore = WinScore / 2
)

// Weights tune the heuristic terms.
type Weights struct {
	Pressure int // per occupied neighbour of the opposing Queen
	Danger   int // per occupied neighbour of the own Queen
	Mobility int // per piece that has at least one destination
	Tempo    int // bonus for the side to act
}

var (
	BalancedWeights   = Weights{Pressure: 30, Danger: 30, Mobility: 5, Tempo: 3}
	AggressiveWeights = Weights{Pressure: 50, Danger: 20, Mobility: 4, Tempo: 3}
	DefensiveWeights  = Weights{Pressure: 20, Danger: 50, Mobility: 6, Tempo: 3}
)

// EvaluateBalanced weighs attacking and defending the Queens equally.
func EvaluateBalanced(b *Board) int {
	return b.evaluate(BalancedWeights)
}

// EvaluateAggressive favours closing in on the opposing Queen.
func EvaluateAggressive(b *Board) int {
	return b.evaluate(AggressiveWeights)
}

// EvaluateDefensive favours keeping the own Queen free.
func EvaluateDefensive(b *Board) int {
	return b.evaluate(DefensiveWeights)
}

// WithWeights builds an evaluator from custom weights.
func WithWeights(w Weights) Evaluate {
	return func(b *Board) int {
		return b.evaluate(w)
	}
}

func (b *Board) evaluate(w Weights) int {
	switch b.status {
	case WhiteWon:
		return WinScore
	case BlackWon:
		return -WinScore
	}

	score := b.sideScore(White, w) - b.sideScore(Black, w)
	if b.ActiveTeam() == White {
		score += w.Tempo
	} else {
		score -= w.Tempo
	}
	return score
}

func (b *Board) sideScore(t Team, w Weights) int {
	return w.Pressure*b.queenNeighbors(t.Opponent()) -
		w.Danger*b.queenNeighbors(t) +
		w.Mobility*b.mobilePieces(t)
}

// queenNeighbors counts occupied cells around the team's Queen.
func (b *Board) queenNeighbors(t Team) int {
	if !b.queenPlaced[t] {
		return 0
	}
	count := 0
	for _, n := range b.queenAt[t].Neighbors() {
		if b.IsOccupied(n) {
			count++
		}
	}
	return count
}

// mobilePieces counts the team's visible pieces with at least one destination.
func (b *Board) mobilePieces(t Team) int {
	count := 0
	for c := range b.cells {
		top, _ := b.Top(c)
		if top.Team == t && len(b.LegalDestinations(top)) > 0 {
			count++
		}
	}
	return count
}
