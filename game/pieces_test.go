package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// setup writes pieces straight onto a board, bypassing placement rules, so
// movement can be tested on arbitrary hives.
func setup(t *testing.T, rules RuleSet, active Team, pieces ...Piece) *Board {
	t.Helper()
	b := NewBoard(rules, nil)
	for _, p := range pieces {
		b.cells[p.Location] = append(b.cells[p.Location], p)
		b.reserves[p.Team][p.Kind]--
		require.GreaterOrEqual(t, b.reserves[p.Team][p.Kind], 0, "setup uses more pieces than the hand holds")
		if p.Kind == Queen {
			b.queenPlaced[p.Team] = true
			b.queenAt[p.Team] = p.Location
		}
	}
	b.turn = 10 + int(active)
	b.status = InProgress
	require.True(t, b.IsHiveConnected(), "setup must be a single hive")
	return b
}

func at(x, y int) Coordinate {
	return Coordinate{x, y}
}

// gated surrounds the empty cell (2,0) on five sides; the sixth side is the
// origin, which holds `mover`.
func gated(t *testing.T, mover Kind) *Board {
	return setup(t, FreeRules(), White,
		Piece{mover, White, Origin},
		Piece{Ant, White, at(1, 1)},
		Piece{Beetle, White, at(3, 1)},
		Piece{Queen, Black, at(4, 0)},
		Piece{Beetle, Black, at(3, -1)},
		Piece{Spider, Black, at(1, -1)},
	)
}

func TestCoordinates(t *testing.T) {
	t.Run("origin neighbours are the six offsets", func(t *testing.T) {
		require.ElementsMatch(t,
			[]Coordinate{{1, 1}, {-1, 1}, {1, -1}, {-1, -1}, {2, 0}, {-2, 0}},
			Origin.Neighbors())
	})

	t.Run("consecutive directions are adjacent to each other", func(t *testing.T) {
		for i := 0; i < NumNeighbors; i++ {
			require.True(t, Origin.Neighbor(i).IsAdjacent(Origin.Neighbor(i+1)),
				"direction %d and %d should flank each other", i, i+1)
		}
	})

	t.Run("adjacency is symmetric", func(t *testing.T) {
		c := at(3, 5)
		for _, n := range c.Neighbors() {
			require.True(t, n.IsAdjacent(c))
		}
		require.False(t, c.IsAdjacent(c))
		require.False(t, c.IsAdjacent(at(3, 7)))
	})

	t.Run("coordinates are usable as map keys", func(t *testing.T) {
		m := map[Coordinate]int{at(1, 1): 1}
		m[Coordinate{X: 1, Y: 1}]++
		require.Equal(t, 2, m[at(1, 1)])
	})
}

func TestQueenMoves(t *testing.T) {
	t.Run("sliding into a gate is not allowed", func(t *testing.T) {
		b := gated(t, Queen)
		queen, _ := b.Top(Origin)

		got := b.LegalDestinations(queen)

		require.Equal(t, []Coordinate{{-1, -1}, {-1, 1}}, got,
			"Queen should only slide along the hive, never into the gated cell")
	})

	t.Run("single neighbour allows two slides around it", func(t *testing.T) {
		b := setup(t, FreeRules(), Black,
			Piece{Queen, White, Origin},
			Piece{Queen, Black, at(2, 0)},
		)
		queen, _ := b.Top(at(2, 0))

		require.Equal(t, []Coordinate{{1, -1}, {1, 1}}, b.LegalDestinations(queen))
	})
}

func TestAntMoves(t *testing.T) {
	t.Run("walks the whole perimeter of a single piece", func(t *testing.T) {
		b := setup(t, FreeRules(), Black,
			Piece{Queen, White, Origin},
			Piece{Ant, Black, at(2, 0)},
		)
		ant, _ := b.Top(at(2, 0))

		require.ElementsMatch(t,
			[]Coordinate{{1, 1}, {-1, 1}, {-2, 0}, {-1, -1}, {1, -1}},
			b.LegalDestinations(ant))
	})

	t.Run("cannot enter a gated hole", func(t *testing.T) {
		b := gated(t, Ant)
		ant, _ := b.Top(Origin)

		got := b.LegalDestinations(ant)

		require.NotContains(t, got, at(2, 0), "the hole is only reachable through a gate")
		require.NotContains(t, got, at(-2, 0), "the ant would lose touch with the hive")
		require.Contains(t, got, at(-1, 1))
		require.Contains(t, got, at(5, 1))
		for _, c := range got {
			require.False(t, b.IsOccupied(c), "destination %s should be empty", c)
		}
	})

	t.Run("scenario: ant beside two queens reaches the far side", func(t *testing.T) {
		b := NewBoard(FreeRules(), nil)
		require.True(t, b.Place(Piece{Queen, White, Origin}))
		require.True(t, b.Place(Piece{Queen, Black, at(1, 1)}))
		require.True(t, b.Place(Piece{Ant, White, at(2, 0)}))
		ant, _ := b.Top(at(2, 0))

		got := b.LegalDestinations(ant)

		require.Contains(t, got, at(2, 2), "Ant should slide round to (2,2)")
		require.ElementsMatch(t,
			[]Coordinate{{-1, 1}, {1, -1}, {-1, -1}, {-2, 0}, {2, 2}, {0, 2}, {3, 1}},
			got)
		for _, c := range got {
			require.False(t, b.IsOccupied(c))
		}
	})
}

func TestSpiderMoves(t *testing.T) {
	t.Run("exactly three steps around a single piece", func(t *testing.T) {
		b := setup(t, FreeRules(), Black,
			Piece{Queen, White, Origin},
			Piece{Spider, Black, at(2, 0)},
		)
		spider, _ := b.Top(at(2, 0))

		got := b.LegalDestinations(spider)

		require.Equal(t, []Coordinate{{-2, 0}}, got,
			"one and two step cells must not count, only the three step one")
	})

	t.Run("never lands on its own cell or an occupied one", func(t *testing.T) {
		b := setup(t, FreeRules(), White,
			Piece{Spider, White, Origin},
			Piece{Queen, White, at(1, 1)},
			Piece{Queen, Black, at(3, 1)},
			Piece{Ant, Black, at(5, 1)},
		)
		spider, _ := b.Top(Origin)

		got := b.LegalDestinations(spider)

		require.NotEmpty(t, got)
		for _, c := range got {
			require.NotEqual(t, Origin, c)
			require.False(t, b.IsOccupied(c))
		}
	})
}

func TestGrasshopperMoves(t *testing.T) {
	for i, d := range Directions {
		d := d
		t.Run("jumps a run of three in direction "+Origin.Neighbor(i).String(), func(t *testing.T) {
			step := func(n int) Coordinate { return Coordinate{d.X * n, d.Y * n} }
			b := setup(t, FreeRules(), White,
				Piece{Grasshopper, White, Origin},
				Piece{Queen, White, step(1)},
				Piece{Queen, Black, step(2)},
				Piece{Ant, Black, step(3)},
			)
			hopper, _ := b.Top(Origin)

			require.Equal(t, []Coordinate{step(4)}, b.LegalDestinations(hopper),
				"Grasshopper should land on the first empty cell past the run")
		})
	}

	t.Run("directions with an empty neighbour yield nothing", func(t *testing.T) {
		b := setup(t, FreeRules(), White,
			Piece{Grasshopper, White, Origin},
			Piece{Queen, White, at(2, 0)},
		)
		hopper, _ := b.Top(Origin)

		require.Equal(t, []Coordinate{{4, 0}}, b.LegalDestinations(hopper))
	})
}

func TestBeetleMoves(t *testing.T) {
	b := setup(t, FreeRules(), Black,
		Piece{Queen, White, Origin},
		Piece{Beetle, Black, at(2, 0)},
	)
	beetle, _ := b.Top(at(2, 0))

	t.Run("climbs or slides from the ground", func(t *testing.T) {
		require.Equal(t, []Coordinate{{1, -1}, {0, 0}, {1, 1}}, b.LegalDestinations(beetle))
	})

	t.Run("climbing buries the piece underneath", func(t *testing.T) {
		require.True(t, b.Move(at(2, 0), Origin))

		stack := b.StackAt(Origin)
		require.Len(t, stack, 2)
		require.Equal(t, Queen, stack[0].Kind)
		require.Equal(t, Beetle, stack[1].Kind)
		require.Nil(t, b.LegalDestinations(stack[0]), "buried pieces cannot move")
	})

	t.Run("from the top it may step to any neighbour", func(t *testing.T) {
		top, _ := b.Top(Origin)
		require.ElementsMatch(t, Origin.Neighbors(), b.LegalDestinations(top))
	})
}

func TestPinnedPieces(t *testing.T) {
	b := setup(t, FreeRules(), White,
		Piece{Ant, White, at(-2, 0)},
		Piece{Queen, White, Origin},
		Piece{Queen, Black, at(2, 0)},
	)
	queen, _ := b.Top(Origin)
	ant, _ := b.Top(at(-2, 0))

	require.Nil(t, b.LegalDestinations(queen), "moving the middle piece would split the hive")
	require.NotEmpty(t, b.LegalDestinations(ant))
	require.False(t, b.Move(Origin, at(-1, 1)))
}

func TestLegalDestinationsIdempotent(t *testing.T) {
	b := gated(t, Ant)
	for _, c := range b.Occupied() {
		top, _ := b.Top(c)
		first := b.LegalDestinations(top)
		second := b.LegalDestinations(top)
		require.Equal(t, first, second, "querying twice should not change the answer for %s", top)
	}
}
