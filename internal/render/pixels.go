package render

import "image/color"

// toScreen maps an NDC vertex back into pixel space of a w x h target.
func toScreen(v Vertex, w, h int) (float32, float32) {
	return (v.X + 1) * float32(w) / 2, (v.Y + 1) * float32(h) / 2
}

// colorScale converts c into premultiplied [0,1] components for vertex colors.
func colorScale(c color.Color) (r, g, b, a float32) {
	cr, cg, cb, ca := c.RGBA()
	return float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff
}

// quadIndices fills idx with sequential indices for n vertices. Vertices are
// already laid out as a triangle list, so indices are the identity.
func quadIndices(idx []uint16, n int) []uint16 {
	idx = idx[:0]
	for i := 0; i < n; i++ {
		idx = append(idx, uint16(i))
	}
	return idx
}
