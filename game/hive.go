package game

// isConnected checks that cells form a single component under hex adjacency.
// Just BFS.
func isConnected(cells map[Coordinate]bool) bool {
	if len(cells) <= 1 {
		return true
	}
	var start Coordinate
	for c := range cells {
		start = c
		break
	}

	visited := map[Coordinate]bool{start: true}
	queue := []Coordinate{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, n := range current.Neighbors() {
			if cells[n] && !visited[n] {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited) == len(cells)
}

// occupiedAfter returns the occupied cells once the top piece at from (if
// any) has left and a piece has arrived at to.
func (b *Board) occupiedAfter(from *Coordinate, to Coordinate) map[Coordinate]bool {
	cells := make(map[Coordinate]bool, len(b.cells)+1)
	for c, stack := range b.cells {
		if from != nil && c == *from && len(stack) == 1 {
			continue
		}
		cells[c] = true
	}
	cells[to] = true
	return cells
}

// isPinned reports whether lifting the piece at c would split the hive.
func (b *Board) isPinned(c Coordinate) bool {
	if len(b.cells[c]) != 1 {
		return false
	}
	cells := make(map[Coordinate]bool, len(b.cells))
	for cell := range b.cells {
		if cell != c {
			cells[cell] = true
		}
	}
	return !isConnected(cells)
}

// IsHiveConnected reports whether all occupied cells form one component.
func (b *Board) IsHiveConnected() bool {
	cells := make(map[Coordinate]bool, len(b.cells))
	for c := range b.cells {
		cells[c] = true
	}
	return isConnected(cells)
}
