package lifegrid

// NextState applies Conway's rule to a single cell: a live cell survives with
// two or three live neighbors, a dead cell is born with exactly three.
// Any other combination leaves a dead cell dead and kills a live one.
func NextState(alive bool, neighbors int) bool {
	switch {
	case alive && neighbors < 2:
		return false
	case alive && (neighbors == 2 || neighbors == 3):
		return true
	case alive && neighbors > 3:
		return false
	case !alive && neighbors == 3:
		return true
	default:
		return alive
	}
}
