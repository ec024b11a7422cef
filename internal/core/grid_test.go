package core

import "testing"

func TestWrap(t *testing.T) {
	g := NewBoolGrid(4, 3)
	cases := []struct {
		row, col         int
		wantRow, wantCol int
	}{
		{0, 0, 0, 0},
		{-1, 0, 2, 0},
		{3, 0, 0, 0},
		{0, -1, 0, 3},
		{0, 4, 0, 0},
		{-1, -1, 2, 3},
		{-4, 9, 2, 1},
	}
	for _, c := range cases {
		r, col := g.Wrap(c.row, c.col)
		if r != c.wantRow || col != c.wantCol {
			t.Fatalf("Wrap(%d,%d) = (%d,%d), expected (%d,%d)", c.row, c.col, r, col, c.wantRow, c.wantCol)
		}
	}
}

func TestNewBoolGridClampsDimensions(t *testing.T) {
	g := NewBoolGrid(0, -3)
	if g.W != 1 || g.H != 1 || len(g.Cells()) != 1 {
		t.Fatalf("expected 1x1 grid, got %dx%d with %d cells", g.W, g.H, len(g.Cells()))
	}
}

func TestDoubleBufferSwap(t *testing.T) {
	d := NewDoubleBuffer(5, 2)
	front, back := d.Active(), d.Scratch()
	if front == back {
		t.Fatal("active and scratch must be distinct grids")
	}
	front.Set(1, 4, true)

	d.Swap()
	if d.Active() != back || d.Scratch() != front {
		t.Fatal("Swap must exchange roles")
	}
	if !d.Scratch().At(1, 4) {
		t.Fatal("Swap must not copy or clear cell data")
	}
	if s := d.Size(); s.W != 5 || s.H != 2 {
		t.Fatalf("unexpected size %+v", s)
	}

	d.Swap()
	if d.Active() != front {
		t.Fatal("second Swap must restore the original roles")
	}
}
