package render

import (
	"image/color"
	"math"
	"slices"
	"testing"

	"life-gl/internal/core"
)

func frameOf(rows, cols int, cells ...core.Cell) core.Frame {
	return core.Frame{Rows: rows, Cols: cols, Cells: slices.Values(cells)}
}

func close32(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }

func TestBuildEmitsSixVerticesPerCell(t *testing.T) {
	var m Mesh
	b := NewQuadBuilder()
	b.Build(&m, frameOf(10, 10, core.Cell{Row: 0, Col: 0}, core.Cell{Row: 3, Col: 7}, core.Cell{Row: 9, Col: 9}), 200, 100)
	if len(m.Vertices) != 3*VerticesPerCell {
		t.Fatalf("expected %d vertices, got %d", 3*VerticesPerCell, len(m.Vertices))
	}
	if m.Triangles() != 6 {
		t.Fatalf("expected 6 triangles, got %d", m.Triangles())
	}

	b.Build(&m, frameOf(10, 10, core.Cell{Row: 1, Col: 1}), 200, 100)
	if len(m.Vertices) != VerticesPerCell {
		t.Fatalf("rebuild must not keep stale vertices, got %d", len(m.Vertices))
	}

	b.Build(&m, frameOf(10, 10), 200, 100)
	if len(m.Vertices) != 0 {
		t.Fatalf("empty frame must give empty mesh, got %d", len(m.Vertices))
	}
}

func TestBuildMapsToNDC(t *testing.T) {
	var m Mesh
	b := NewQuadBuilder()
	// 4 columns across 400px and 2 rows across 100px: cells are 100x50.
	b.Build(&m, frameOf(2, 4, core.Cell{Row: 1, Col: 2}), 400, 100)

	// Pixel corners (200,50) and (300,100).
	x0, y0 := float32(200*2.0/400-1), float32(50*2.0/100-1)
	x1, y1 := float32(300*2.0/400-1), float32(100*2.0/100-1)
	want := []Vertex{{x0, y0}, {x1, y0}, {x0, y1}, {x1, y0}, {x0, y1}, {x1, y1}}
	for i, v := range m.Vertices {
		if !close32(v.X, want[i].X) || !close32(v.Y, want[i].Y) {
			t.Fatalf("vertex %d = %+v, expected %+v", i, v, want[i])
		}
	}
}

func TestBuildFullGridCoversViewport(t *testing.T) {
	var m Mesh
	b := NewQuadBuilder()
	b.Build(&m, frameOf(1, 1, core.Cell{}), 64, 32)
	for _, v := range m.Vertices {
		if !(close32(v.X, -1) || close32(v.X, 1)) || !(close32(v.Y, -1) || close32(v.Y, 1)) {
			t.Fatalf("single cell should span the viewport, got vertex %+v", v)
		}
	}
}

func TestBuildIgnoresDegenerateViewport(t *testing.T) {
	var m Mesh
	b := NewQuadBuilder()
	b.Build(&m, frameOf(2, 2, core.Cell{}), 0, 10)
	if len(m.Vertices) != 0 {
		t.Fatal("zero-width viewport must produce no vertices")
	}
}

func TestToScreenRoundTrip(t *testing.T) {
	x, y := toScreen(Vertex{X: -1, Y: 1}, 320, 240)
	if !close32(x, 0) || !close32(y, 240) {
		t.Fatalf("toScreen = (%v,%v)", x, y)
	}
	x, y = toScreen(Vertex{X: 0, Y: 0}, 320, 240)
	if !close32(x, 160) || !close32(y, 120) {
		t.Fatalf("toScreen center = (%v,%v)", x, y)
	}
}

func TestColorScale(t *testing.T) {
	r, g, b, a := colorScale(color.RGBA{R: 255, G: 0, B: 255, A: 255})
	if r != 1 || g != 0 || b != 1 || a != 1 {
		t.Fatalf("colorScale = %v %v %v %v", r, g, b, a)
	}
}

func TestQuadIndices(t *testing.T) {
	idx := quadIndices(make([]uint16, 3), 6)
	if !slices.Equal(idx, []uint16{0, 1, 2, 3, 4, 5}) {
		t.Fatalf("unexpected indices %v", idx)
	}
}
