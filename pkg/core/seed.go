package core

// CellSeeder yields the liveness of the next cell in row-major order.
type CellSeeder func() bool

// WordSeeder yields the next packed 32-cell word.
type WordSeeder func() uint32

// RandomCells seeds each cell alive with the given density. A density of 0.5
// uses a fair coin so the sequence matches Bool.
func RandomCells(r *RNG, density float64) CellSeeder {
	if density == 0.5 {
		return r.Bool
	}
	return func() bool { return r.Chance(density) }
}

// RandomWords seeds whole words from the RNG, giving each cell an even chance.
func RandomWords(r *RNG) WordSeeder {
	return r.Uint32
}
