//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"life-gl/internal/core"
)

// maxBatchVertices is the largest multiple of VerticesPerCell addressable by
// uint16 indices.
const maxBatchVertices = (1 << 16) / VerticesPerCell * VerticesPerCell

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

// TrianglePainter captures a frame as a triangle mesh and draws it with a
// single DrawTriangles call.
type TrianglePainter struct {
	w, h    int
	on      color.Color
	off     color.Color
	builder *QuadBuilder
	mesh    Mesh

	vertices []ebiten.Vertex
	indices  []uint16
}

// NewTrianglePainter allocates a painter for a w x h pixel viewport.
func NewTrianglePainter(w, h int, on, off color.Color) *TrianglePainter {
	return &TrianglePainter{w: w, h: h, on: on, off: off, builder: NewQuadBuilder()}
}

// Resize updates the viewport used by the next Present.
func (p *TrianglePainter) Resize(w, h int) {
	p.w, p.h = w, h
}

// Present builds the mesh for f. It is called before the sim steps, so the
// mesh always reflects a settled generation.
func (p *TrianglePainter) Present(f core.Frame) {
	p.builder.Build(&p.mesh, f, p.w, p.h)
}

// Draw clears dst and submits the captured mesh.
func (p *TrianglePainter) Draw(dst *ebiten.Image) {
	dst.Fill(p.off)
	n := len(p.mesh.Vertices)
	if n == 0 {
		return
	}

	r, g, b, a := colorScale(p.on)
	p.vertices = p.vertices[:0]
	for _, v := range p.mesh.Vertices {
		x, y := toScreen(v, p.w, p.h)
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX: x, DstY: y,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		})
	}

	op := &ebiten.DrawTrianglesOptions{}
	for start := 0; start < n; start += maxBatchVertices {
		end := min(start+maxBatchVertices, n)
		p.indices = quadIndices(p.indices, end-start)
		dst.DrawTriangles(p.vertices[start:end], p.indices, whiteSubImage, op)
	}
}

// Triangles returns the number of triangles captured by the last Present.
func (p *TrianglePainter) Triangles() int { return p.mesh.Triangles() }
