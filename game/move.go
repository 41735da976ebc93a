package game

import "fmt"

// Action is one turn: either a placement of Kind from the reserve onto To, or
// a move of the top piece at From onto To. Kind is ignored for moves so two
// actions compare equal exactly when they describe the same turn.
type Action struct {
	Place bool
	Kind  Kind
	From  Coordinate
	To    Coordinate
}

// PlaceAction returns a placement of kind onto to.
func PlaceAction(kind Kind, to Coordinate) Action {
	return Action{Place: true, Kind: kind, To: to}
}

// MoveAction returns a move of the top piece at from onto to.
func MoveAction(from, to Coordinate) Action {
	return Action{From: from, To: to}
}

func (a Action) String() string {
	if a.Place {
		return fmt.Sprintf("place %s at %s", a.Kind, a.To)
	}
	return fmt.Sprintf("move %s -> %s", a.From, a.To)
}

// compareActions orders placements before moves, then by kind, source and target.
func compareActions(a, b Action) int {
	if a.Place != b.Place {
		if a.Place {
			return -1
		}
		return 1
	}
	if a.Place && a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	if c := compareCoordinates(a.From, b.From); c != 0 {
		return c
	}
	return compareCoordinates(a.To, b.To)
}
