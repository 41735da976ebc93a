package game

import "fmt"

// Team identifies one of the two sides. White always opens.
type Team int

const (
	White Team = iota
	Black
)

const NumTeams = 2

// Opponent returns the other team.
func (t Team) Opponent() Team {
	return 1 - t
}

func (t Team) String() string {
	switch t {
	case White:
		return "White"
	case Black:
		return "Black"
	default:
		return fmt.Sprintf("Team(%d)", int(t))
	}
}

// Kind selects the movement rule of a piece. The set is closed.
type Kind int

const (
	Queen Kind = iota
	Ant
	Beetle
	Grasshopper
	Spider
)

const NumKinds = 5

// Kinds lists every kind in placement order.
var Kinds = [NumKinds]Kind{Queen, Ant, Beetle, Grasshopper, Spider}

func (k Kind) String() string {
	switch k {
	case Queen:
		return "Queen"
	case Ant:
		return "Ant"
	case Beetle:
		return "Beetle"
	case Grasshopper:
		return "Grasshopper"
	case Spider:
		return "Spider"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Piece is a placed (or about to be placed) insect. Location is where it sits,
// or where it should go when passed to Board.Place.
type Piece struct {
	Kind     Kind
	Team     Team
	Location Coordinate
}

func (p Piece) String() string {
	return fmt.Sprintf("%s %s at %s", p.Team, p.Kind, p.Location)
}

// Status is the lifecycle of a game. Won states are absorbing.
type Status int

const (
	Setup Status = iota
	InProgress
	WhiteWon
	BlackWon
)

func (s Status) String() string {
	switch s {
	case Setup:
		return "Setup"
	case InProgress:
		return "InProgress"
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Over reports whether the status is terminal.
func (s Status) Over() bool {
	return s == WhiteWon || s == BlackWon
}

func wonBy(t Team) Status {
	if t == White {
		return WhiteWon
	}
	return BlackWon
}

// WinCallback is invoked once, with the winning team, when a Queen is surrounded.
type WinCallback func(winner Team)

type StateHash uint64
