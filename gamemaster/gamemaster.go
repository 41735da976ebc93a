package gamemaster

import (
	"hive/game"
)

// Update is one action applied to the live board.
type Update struct {
	Team   game.Team
	Action game.Action
	Pass   bool
	Hash   game.StateHash
}

// UpdateGetter returns the oldest update not yet consumed. It returns false
// when there is none.
type UpdateGetter func() (Update, bool)

// GameMaster is what a presentation layer needs to run a human against the
// machine.
type GameMaster interface {
	Start() (UpdateGetter, error)

	// Commands
	Place(kind game.Kind, to game.Coordinate) error
	Move(from, to game.Coordinate) error
	Pass() error

	// Queries
	LegalDestinations(from game.Coordinate) []game.Coordinate
	DeployableLocations() []game.Coordinate
	StackAt(c game.Coordinate) []game.Piece
	Status() game.Status
}
