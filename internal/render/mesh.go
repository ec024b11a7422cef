package render

import (
	"life-gl/internal/core"
	"life-gl/internal/render/transform"
)

// VerticesPerCell is the number of vertices emitted for one alive cell: two
// triangles sharing an edge.
const VerticesPerCell = 6

// Vertex is a point in normalized device coordinates.
type Vertex struct {
	X, Y float32
}

// Mesh is a growable triangle list. Only Vertices[:len] is meaningful.
type Mesh struct {
	Vertices []Vertex
}

// Reset truncates the mesh, keeping its capacity.
func (m *Mesh) Reset() { m.Vertices = m.Vertices[:0] }

// Triangles returns the number of triangles in the mesh.
func (m *Mesh) Triangles() int { return len(m.Vertices) / 3 }

// QuadBuilder turns a frame's alive cells into a triangle mesh covering a
// viewport of W x H pixels.
type QuadBuilder struct {
	stack *transform.Stack
}

// NewQuadBuilder returns a builder with an identity transform.
func NewQuadBuilder() *QuadBuilder {
	return &QuadBuilder{stack: transform.NewStack()}
}

// Build replaces the contents of m with one quad per alive cell in f. Column
// maps to x and row maps to y; pixel (x, y) maps to (x*2/W - 1, y*2/H - 1).
func (b *QuadBuilder) Build(m *Mesh, f core.Frame, w, h int) {
	m.Reset()
	if w <= 0 || h <= 0 || f.Rows <= 0 || f.Cols <= 0 || f.Cells == nil {
		return
	}

	b.stack.Push()
	b.stack.Translate(-1, -1, 0)
	b.stack.Scale(2/float64(w), 2/float64(h), 1)
	toNDC := b.stack.Affine2D()
	if err := b.stack.Pop(); err != nil {
		panic(err)
	}

	dx := float64(w) / float64(f.Cols)
	dy := float64(h) / float64(f.Rows)
	for c := range f.Cells {
		x0, y0 := toNDC.Apply(float64(c.Col)*dx, float64(c.Row)*dy)
		x1, y1 := toNDC.Apply(float64(c.Col+1)*dx, float64(c.Row+1)*dy)
		m.Vertices = appendQuad(m.Vertices, float32(x0), float32(y0), float32(x1), float32(y1))
	}
}

func appendQuad(vs []Vertex, x0, y0, x1, y1 float32) []Vertex {
	return append(vs,
		Vertex{x0, y0}, Vertex{x1, y0}, Vertex{x0, y1},
		Vertex{x1, y0}, Vertex{x0, y1}, Vertex{x1, y1},
	)
}
