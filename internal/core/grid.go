package core

// BoolGrid stores a 2D grid of boolean cells in row-major order.
type BoolGrid struct {
	W, H int
	data []bool
}

// NewBoolGrid allocates a grid with the given dimensions. Non-positive
// dimensions are clamped to 1.
func NewBoolGrid(w, h int) *BoolGrid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &BoolGrid{W: w, H: h, data: make([]bool, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *BoolGrid) Cells() []bool { return g.data }

// At reports whether the cell at (row, col) is alive.
func (g *BoolGrid) At(row, col int) bool { return g.data[row*g.W+col] }

// Set stores the state of the cell at (row, col).
func (g *BoolGrid) Set(row, col int, alive bool) { g.data[row*g.W+col] = alive }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *BoolGrid) Wrap(row, col int) (int, int) {
	row = (row%g.H + g.H) % g.H
	col = (col%g.W + g.W) % g.W
	return row, col
}

// DoubleBuffer owns an active grid and a scratch grid of identical size.
// Swap exchanges their roles without copying cell data.
type DoubleBuffer struct {
	front, back *BoolGrid
	flipped     bool
}

// NewDoubleBuffer allocates both grids with the given dimensions.
func NewDoubleBuffer(w, h int) *DoubleBuffer {
	return &DoubleBuffer{front: NewBoolGrid(w, h), back: NewBoolGrid(w, h)}
}

// Active returns the grid holding the current generation.
func (d *DoubleBuffer) Active() *BoolGrid {
	if d.flipped {
		return d.back
	}
	return d.front
}

// Scratch returns the grid the next generation is written into.
func (d *DoubleBuffer) Scratch() *BoolGrid {
	if d.flipped {
		return d.front
	}
	return d.back
}

// Swap promotes the scratch grid to active.
func (d *DoubleBuffer) Swap() { d.flipped = !d.flipped }

// Size returns the shared dimensions of both grids.
func (d *DoubleBuffer) Size() Size { return Size{W: d.front.W, H: d.front.H} }
