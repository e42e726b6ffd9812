package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim defines the contract hosts (GUI, headless runner) drive a bit-packed
// automaton through.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64) error
	Step()
	// Words exposes the packed state; see lifegrid.Grid.Words for the
	// lifetime rules.
	Words() []uint32
	Generation() uint64
	Population() int
	Toggle(x, y int) error
}
