package core

import "iter"

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Cell addresses a single grid cell by row and column.
type Cell struct {
	Row int
	Col int
}

// Frame is the settled generation handed to a renderer once per tick.
type Frame struct {
	Rows       int
	Cols       int
	Generation int
	// Cells yields the alive cells in row-major order. It may be ranged over
	// more than once.
	Cells iter.Seq[Cell]
}

// Sim defines the minimal contract a cellular automaton must implement.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Generation() int
	LivingCells() iter.Seq[Cell]
}

// FrameOf captures the current generation of sim as a Frame.
func FrameOf(sim Sim) Frame {
	s := sim.Size()
	return Frame{Rows: s.H, Cols: s.W, Generation: sim.Generation(), Cells: sim.LivingCells()}
}
