package game

import (
	"encoding/binary"
	"hash/fnv"

	"golang.org/x/exp/slices"
)

// Board is the authoritative game state: stacks of pieces per cell (last =
// top), both reserves and the turn counter. It is not safe for concurrent
// use; speculative search works on clones.
type Board struct {
	rules       RuleSet
	cells       map[Coordinate][]Piece // never holds empty stacks
	reserves    [NumTeams]Reserve
	initial     Reserve
	turn        int
	status      Status
	queenPlaced [NumTeams]bool
	queenAt     [NumTeams]Coordinate
	lastAction  *Action
	onWin       WinCallback
}

// NewBoard initializes an empty board with both teams holding the rules' hand.
// onWin may be nil.
func NewBoard(rules RuleSet, onWin WinCallback) *Board {
	initial := rules.InitialReserve()
	return &Board{
		rules:    rules,
		cells:    make(map[Coordinate][]Piece),
		reserves: [NumTeams]Reserve{initial, initial},
		initial:  initial,
		status:   Setup,
		onWin:    onWin,
	}
}

// Clone returns an independent deep copy. The copy has no win callback so
// speculative play never reaches the presentation layer.
func (b *Board) Clone() *Board {
	cells := make(map[Coordinate][]Piece, len(b.cells))
	for c, stack := range b.cells {
		cells[c] = append(make([]Piece, 0, len(stack)+1), stack...)
	}
	var last *Action
	if b.lastAction != nil {
		a := *b.lastAction
		last = &a
	}
	return &Board{
		rules:       b.rules, // treated as immutable
		cells:       cells,
		reserves:    b.reserves,
		initial:     b.initial,
		turn:        b.turn,
		status:      b.status,
		queenPlaced: b.queenPlaced,
		queenAt:     b.queenAt,
		lastAction:  last,
	}
}

func (b *Board) Rules() RuleSet { return b.rules }

func (b *Board) Turn() int { return b.turn }

func (b *Board) Status() Status { return b.status }

// ActiveTeam returns the team to act: turn parity.
func (b *Board) ActiveTeam() Team {
	return Team(b.turn % NumTeams)
}

// Winner returns the winning team once the game is over.
func (b *Board) Winner() (Team, bool) {
	switch b.status {
	case WhiteWon:
		return White, true
	case BlackWon:
		return Black, true
	default:
		return 0, false
	}
}

// LastAction returns the most recent placement or move.
func (b *Board) LastAction() (Action, bool) {
	if b.lastAction == nil {
		return Action{}, false
	}
	return *b.lastAction, true
}

func (b *Board) ReserveOf(t Team) Reserve { return b.reserves[t] }

func (b *Board) InitialReserve() Reserve { return b.initial }

// PlacedCount returns how many pieces of kind the team has put on the board.
func (b *Board) PlacedCount(t Team, k Kind) int {
	return b.initial[k] - b.reserves[t][k]
}

// QueenLocation returns where the team's Queen sits, if placed.
func (b *Board) QueenLocation(t Team) (Coordinate, bool) {
	return b.queenAt[t], b.queenPlaced[t]
}

func (b *Board) IsOccupied(c Coordinate) bool {
	return len(b.cells[c]) > 0
}

// Top returns the visible piece at c.
func (b *Board) Top(c Coordinate) (Piece, bool) {
	stack := b.cells[c]
	if len(stack) == 0 {
		return Piece{}, false
	}
	return stack[len(stack)-1], true
}

// StackAt returns a copy of the pieces at c, bottom first.
func (b *Board) StackAt(c Coordinate) []Piece {
	return append([]Piece(nil), b.cells[c]...)
}

// Occupied returns every occupied cell in a stable order.
func (b *Board) Occupied() []Coordinate {
	cells := make([]Coordinate, 0, len(b.cells))
	for c := range b.cells {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, compareCoordinates)
	return cells
}

// Pieces returns every placed piece of team, buried ones included.
func (b *Board) Pieces(t Team) []Piece {
	var pieces []Piece
	for _, c := range b.Occupied() {
		for _, p := range b.cells[c] {
			if p.Team == t {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// LegalDestinations returns where p may move, sorted. Buried pieces, pieces
// whose removal would split the hive, and pieces of a team still waiting to
// place its Queen (when the rules demand it) have none.
func (b *Board) LegalDestinations(p Piece) []Coordinate {
	if b.status.Over() {
		return nil
	}
	top, ok := b.Top(p.Location)
	if !ok || top != p {
		return nil
	}
	if b.rules.QueenBeforeMovement && !b.queenPlaced[p.Team] {
		return nil
	}
	if b.isPinned(p.Location) {
		return nil
	}
	poss := destinations(b, p)
	slices.SortFunc(poss, compareCoordinates)
	return slices.Compact(poss)
}

// DeployableLocations returns the empty cells where team may place a piece now.
func (b *Board) DeployableLocations(t Team) []Coordinate {
	if len(b.cells) == 0 {
		return []Coordinate{Origin}
	}
	seen := map[Coordinate]bool{}
	var locs []Coordinate
	for c := range b.cells {
		for _, n := range c.Neighbors() {
			if seen[n] {
				continue
			}
			seen[n] = true
			if b.isDeployable(t, n) {
				locs = append(locs, n)
			}
		}
	}
	slices.SortFunc(locs, compareCoordinates)
	return locs
}

func (b *Board) isDeployable(t Team, loc Coordinate) bool {
	if b.IsOccupied(loc) {
		return false
	}
	if len(b.cells) == 0 {
		return loc == Origin
	}
	touchesOwn, touchesOpponent := false, false
	for _, n := range loc.Neighbors() {
		if top, ok := b.Top(n); ok {
			if top.Team == t {
				touchesOwn = true
			} else {
				touchesOpponent = true
			}
		}
	}
	if b.PlacedTotal(t) == 0 {
		return touchesOwn || touchesOpponent
	}
	if !touchesOwn {
		return false
	}
	return !b.rules.IsolatedPlacement || !touchesOpponent
}

// PlacedTotal returns how many pieces the team has put on the board.
func (b *Board) PlacedTotal(t Team) int {
	return b.initial.Total() - b.reserves[t].Total()
}

// mustPlaceQueen reports whether the team's current turn is its last chance
// to place the Queen.
func (b *Board) mustPlaceQueen(t Team) bool {
	if b.rules.QueenDeadline <= 0 || b.queenPlaced[t] {
		return false
	}
	return b.turn/NumTeams+1 >= b.rules.QueenDeadline
}

// Place puts p onto p.Location from its team's reserve. It reports false and
// leaves the board untouched when the placement is illegal.
func (b *Board) Place(p Piece) bool {
	if b.status.Over() || p.Team != b.ActiveTeam() {
		return false
	}
	if b.reserves[p.Team][p.Kind] <= 0 {
		return false
	}
	if b.mustPlaceQueen(p.Team) && p.Kind != Queen {
		return false
	}
	if !b.isDeployable(p.Team, p.Location) {
		return false
	}
	if !isConnected(b.occupiedAfter(nil, p.Location)) {
		return false
	}

	b.cells[p.Location] = append(b.cells[p.Location], p)
	b.reserves[p.Team][p.Kind]--
	if p.Kind == Queen {
		b.queenPlaced[p.Team] = true
		b.queenAt[p.Team] = p.Location
	}
	b.advance(PlaceAction(p.Kind, p.Location), p.Team)
	return true
}

// Move moves the top piece at from onto to. It reports false and leaves the
// board untouched when the move is illegal.
func (b *Board) Move(from, to Coordinate) bool {
	if b.status.Over() {
		return false
	}
	p, ok := b.Top(from)
	if !ok || p.Team != b.ActiveTeam() {
		return false
	}
	if !slices.Contains(b.LegalDestinations(p), to) {
		return false
	}
	if !isConnected(b.occupiedAfter(&from, to)) {
		return false
	}

	stack := b.cells[from]
	if len(stack) == 1 {
		delete(b.cells, from)
	} else {
		b.cells[from] = stack[:len(stack)-1]
	}
	p.Location = to
	b.cells[to] = append(b.cells[to], p)
	if p.Kind == Queen {
		b.queenAt[p.Team] = to
	}
	b.advance(MoveAction(from, to), p.Team)
	return true
}

// Pass skips the active team's turn. Only allowed when it has no legal action.
func (b *Board) Pass() bool {
	if b.status.Over() || len(b.LegalActions()) > 0 {
		return false
	}
	b.turn++
	if b.status == Setup {
		b.status = InProgress
	}
	return true
}

// Apply plays a placement or move for the active team.
func (b *Board) Apply(a Action) bool {
	if a.Place {
		return b.Place(Piece{Kind: a.Kind, Team: b.ActiveTeam(), Location: a.To})
	}
	return b.Move(a.From, a.To)
}

// LegalActions returns every placement and move open to the active team, in
// a deterministic order.
func (b *Board) LegalActions() []Action {
	if b.status.Over() {
		return nil
	}
	t := b.ActiveTeam()
	var actions []Action

	locs := b.DeployableLocations(t)
	for _, k := range Kinds {
		if b.reserves[t][k] <= 0 {
			continue
		}
		if k != Queen && b.mustPlaceQueen(t) {
			continue
		}
		for _, loc := range locs {
			actions = append(actions, PlaceAction(k, loc))
		}
	}

	for _, c := range b.Occupied() {
		top, _ := b.Top(c)
		if top.Team != t {
			continue
		}
		for _, to := range b.LegalDestinations(top) {
			actions = append(actions, MoveAction(c, to))
		}
	}

	slices.SortFunc(actions, compareActions)
	return actions
}

// IsSurrounded reports whether the team's Queen has all six neighbours occupied.
func (b *Board) IsSurrounded(t Team) bool {
	if !b.queenPlaced[t] {
		return false
	}
	for _, n := range b.queenAt[t].Neighbors() {
		if !b.IsOccupied(n) {
			return false
		}
	}
	return true
}

func (b *Board) advance(a Action, mover Team) {
	b.turn++
	b.lastAction = &a
	if b.status == Setup {
		b.status = InProgress
	}

	// Surrounding the opponent wins even if the mover's own Queen closes too
	if b.IsSurrounded(mover.Opponent()) {
		b.declareWinner(mover)
	} else if b.IsSurrounded(mover) {
		b.declareWinner(mover.Opponent())
	}
}

func (b *Board) declareWinner(t Team) {
	b.status = wonBy(t)
	if b.onWin != nil {
		b.onWin(t)
	}
}

// Hash fingerprints the position: turn, stacks and reserves.
func (b *Board) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(b.turn))

	for _, c := range b.Occupied() {
		binary.Write(hasher, binary.LittleEndian, int64(c.X))
		binary.Write(hasher, binary.LittleEndian, int64(c.Y))
		for _, p := range b.cells[c] {
			binary.Write(hasher, binary.LittleEndian, int64(p.Team))
			binary.Write(hasher, binary.LittleEndian, int64(p.Kind))
		}
		// Stack separator
		binary.Write(hasher, binary.LittleEndian, int64(-1))
	}

	for _, reserve := range b.reserves {
		for _, n := range reserve {
			binary.Write(hasher, binary.LittleEndian, int64(n))
		}
	}

	return StateHash(hasher.Sum64())
}
