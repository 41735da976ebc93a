package game

import "fmt"

// Coordinate is a cell of the doubled-offset hex lattice: neighbours differ by
// (±1, ±1) or (±2, 0), so every reachable cell has x+y even.
type Coordinate struct {
	X int
	Y int
}

// Origin is where the opening piece is deployed.
var Origin = Coordinate{0, 0}

const NumNeighbors = 6

// Directions lists the six neighbour offsets in cyclic order (E, NE, NW, W,
// SW, SE): directions i and i±1 are themselves adjacent, which is what the
// gate check depends on.
var Directions = [NumNeighbors]Coordinate{
	{2, 0},
	{1, 1},
	{-1, 1},
	{-2, 0},
	{-1, -1},
	{1, -1},
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add offsets c by d.
func (c Coordinate) Add(d Coordinate) Coordinate {
	return Coordinate{c.X + d.X, c.Y + d.Y}
}

// Neighbor returns the adjacent cell in the given direction index.
func (c Coordinate) Neighbor(direction int) Coordinate {
	return c.Add(Directions[((direction%NumNeighbors)+NumNeighbors)%NumNeighbors])
}

// Neighbors returns the six adjacent cells in Directions order.
func (c Coordinate) Neighbors() [NumNeighbors]Coordinate {
	var out [NumNeighbors]Coordinate
	for i, d := range Directions {
		out[i] = c.Add(d)
	}
	return out
}

// IsAdjacent checks if two cells share an edge.
func (c Coordinate) IsAdjacent(other Coordinate) bool {
	for _, n := range c.Neighbors() {
		if n == other {
			return true
		}
	}
	return false
}

// compareCoordinates orders by Y then X so results are stable between runs.
func compareCoordinates(a, b Coordinate) int {
	if a.Y != b.Y {
		return a.Y - b.Y
	}
	return a.X - b.X
}
