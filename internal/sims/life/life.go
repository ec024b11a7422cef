package life

import (
	"iter"

	"golang.org/x/sync/errgroup"

	"life-gl/internal/core"
)

// Life implements Conway's Game of Life (B3/S23) with toroidal wrapping.
type Life struct {
	w, h    int
	buf     *core.DoubleBuffer
	workers int
	seed    int64
	gen     int
}

// New returns an empty Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a Life simulation configured from cfg. The grid starts
// empty; call Reset to seed a random population.
func NewWithConfig(cfg Config) *Life {
	buf := core.NewDoubleBuffer(cfg.Width, cfg.Height)
	size := buf.Size()
	workers := cfg.Workers
	if workers < 1 {
		workers = 1
	}
	return &Life{w: size.W, h: size.H, buf: buf, workers: workers, seed: cfg.Seed}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.w, H: l.h} }

// Dimensions returns the grid height and width.
func (l *Life) Dimensions() (int, int) { return l.h, l.w }

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Seed returns the seed used by the last Reset.
func (l *Life) Seed() int64 { return l.seed }

// Reset randomizes the board using the provided seed. Each cell is alive with
// probability LiveProbability.
func (l *Life) Reset(seed int64) {
	l.seed = seed
	l.gen = 0
	rng := core.NewRNG(seed).Source()
	core.FillBernoulli(rng, l.buf.Active().Cells(), LiveProbability)
}

// Alive reports whether the cell at (row, col) is alive in the current generation.
func (l *Life) Alive(row, col int) bool { return l.buf.Active().At(row, col) }

// Set stores the state of a cell in the current generation.
func (l *Life) Set(row, col int, alive bool) { l.buf.Active().Set(row, col, alive) }

// NeighborCount sums the eight toroidally wrapped neighbors of (row, col).
func (l *Life) NeighborCount(row, col int) int {
	return neighborCount(l.buf.Active(), row, col)
}

func neighborCount(g *core.BoolGrid, row, col int) int {
	w := g.W
	cells := g.Cells()
	up, left := g.Wrap(row-1, col-1)
	down, right := g.Wrap(row+1, col+1)

	n := 0
	for _, idx := range [8]int{
		up*w + left, up*w + col, up*w + right,
		row*w + left, row*w + right,
		down*w + left, down*w + col, down*w + right,
	} {
		if cells[idx] {
			n++
		}
	}
	return n
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	cur, nxt := l.buf.Active(), l.buf.Scratch()
	if l.workers < 2 || l.h < 2 {
		stepRows(cur, nxt, 0, l.h)
	} else {
		l.stepParallel(cur, nxt)
	}
	l.buf.Swap()
	l.gen++
}

// stepParallel splits rows into contiguous ranges. Each goroutine reads only
// cur and writes only its own rows of nxt.
func (l *Life) stepParallel(cur, nxt *core.BoolGrid) {
	var (
		eg            errgroup.Group
		workers       = min(l.workers, l.h)
		rowsPerWorker = (l.h + workers - 1) / workers
	)
	for i := range workers {
		startRow := i * rowsPerWorker
		if startRow >= l.h {
			break
		}
		endRow := min(startRow+rowsPerWorker, l.h)
		eg.Go(func() error {
			stepRows(cur, nxt, startRow, endRow)
			return nil
		})
	}
	_ = eg.Wait()
}

func stepRows(cur, nxt *core.BoolGrid, startRow, endRow int) {
	src, dst := cur.Cells(), nxt.Cells()
	w := cur.W
	for row := startRow; row < endRow; row++ {
		for col := 0; col < w; col++ {
			idx := row*w + col
			dst[idx] = nextState(src[idx], neighborCount(cur, row, col))
		}
	}
}

func nextState(alive bool, n int) bool {
	return (alive && (n == 2 || n == 3)) || n == 3
}

// LivingCells yields the alive cells in row-major order. The sequence reads
// the generation that is current when iteration begins, so it may be ranged
// over once per frame without being rebuilt.
func (l *Life) LivingCells() iter.Seq[core.Cell] {
	return func(yield func(core.Cell) bool) {
		g := l.buf.Active()
		cells := g.Cells()
		for row := 0; row < g.H; row++ {
			base := row * g.W
			for col := 0; col < g.W; col++ {
				if cells[base+col] && !yield(core.Cell{Row: row, Col: col}) {
					return
				}
			}
		}
	}
}

// Population counts the alive cells in the current generation.
func (l *Life) Population() int {
	n := 0
	for _, alive := range l.buf.Active().Cells() {
		if alive {
			n++
		}
	}
	return n
}

// Parameters reports the values shown on the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("width", "Width", l.w),
				core.IntParam("height", "Height", l.h),
				core.IntParam("workers", "Workers", l.workers),
			},
		},
		{
			Name: "State",
			Params: []core.Parameter{
				core.IntParam("generation", "Generation", l.gen),
				core.IntParam("population", "Population", l.Population()),
			},
		},
	}}
}
