package game

// lifted is the board as seen by a piece that has been picked up from `from`:
// the origin only counts as occupied if something remains underneath.
type lifted struct {
	b    *Board
	from Coordinate
}

func (v lifted) occupied(c Coordinate) bool {
	h := len(v.b.cells[c])
	if c == v.from {
		h--
	}
	return h > 0
}

// slides returns the empty neighbours of src reachable by a single slide:
// the two cells flanking the step must not both be occupied (a gate) and
// must not both be empty (the piece would lose touch with the hive).
func (v lifted) slides(src Coordinate, visited map[Coordinate]bool) []Coordinate {
	poss := make([]Coordinate, 0, NumNeighbors)
	for i := 0; i < NumNeighbors; i++ {
		tgt := src.Neighbor(i)
		if visited[tgt] || v.occupied(tgt) {
			continue
		}
		left := v.occupied(src.Neighbor(i + 1))
		right := v.occupied(src.Neighbor(i - 1))
		if left && right {
			continue
		}
		if !left && !right {
			continue
		}
		poss = append(poss, tgt)
	}
	return poss
}

// destinations dispatches to the movement rule of p.Kind. It does not apply
// the one-hive check; Board.LegalDestinations does.
func destinations(b *Board, p Piece) []Coordinate {
	v := lifted{b: b, from: p.Location}
	switch p.Kind {
	case Queen:
		return queenMoves(v)
	case Ant:
		return antMoves(v)
	case Beetle:
		return beetleMoves(v)
	case Grasshopper:
		return grasshopperMoves(v)
	case Spider:
		return spiderMoves(v)
	default:
		panic("unknown piece kind " + p.Kind.String())
	}
}

func queenMoves(v lifted) []Coordinate {
	return v.slides(v.from, map[Coordinate]bool{v.from: true})
}

// antMoves walks the outer boundary breadth-first; every step is a legal slide.
func antMoves(v lifted) []Coordinate {
	visited := map[Coordinate]bool{v.from: true}
	frontier := []Coordinate{v.from}
	var poss []Coordinate
	for len(frontier) > 0 {
		var next []Coordinate
		for _, pos := range frontier {
			for _, tgt := range v.slides(pos, visited) {
				visited[tgt] = true
				next = append(next, tgt)
				poss = append(poss, tgt)
			}
		}
		frontier = next
	}
	return poss
}

func spiderMoves(v lifted) []Coordinate {
	end := map[Coordinate]bool{}
	path := map[Coordinate]bool{v.from: true}
	spiderDFS(v, v.from, 3, path, end)
	poss := make([]Coordinate, 0, len(end))
	for pos := range end {
		poss = append(poss, pos)
	}
	return poss
}

// spiderDFS collects cells reachable in exactly `steps` slides without
// revisiting any cell of the current path.
func spiderDFS(v lifted, src Coordinate, steps int, path, end map[Coordinate]bool) {
	for _, tgt := range v.slides(src, path) {
		if steps == 1 {
			end[tgt] = true
			continue
		}
		path[tgt] = true
		spiderDFS(v, tgt, steps-1, path, end)
		delete(path, tgt)
	}
}

// grasshopperMoves jumps in a straight line over a contiguous run of occupied
// cells and lands on the first empty one. Directions with an empty
// neighbour yield nothing.
func grasshopperMoves(v lifted) []Coordinate {
	var poss []Coordinate
	for i := 0; i < NumNeighbors; i++ {
		tgt := v.from.Neighbor(i)
		if !v.occupied(tgt) {
			continue
		}
		for v.occupied(tgt) {
			tgt = tgt.Neighbor(i)
		}
		poss = append(poss, tgt)
	}
	return poss
}

// beetleMoves steps onto any adjacent piece. From the top of a stack it may
// also step down anywhere; on the ground it slides like the Queen.
func beetleMoves(v lifted) []Coordinate {
	elevated := len(v.b.cells[v.from]) > 1
	var poss []Coordinate
	for _, tgt := range v.from.Neighbors() {
		if elevated || v.occupied(tgt) {
			poss = append(poss, tgt)
		}
	}
	if !elevated {
		poss = append(poss, v.slides(v.from, map[Coordinate]bool{v.from: true})...)
	}
	return poss
}
