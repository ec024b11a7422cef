// Package transform provides a model-view matrix stack on 4x4 homogeneous
// matrices.
package transform

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// ErrUnderflow is returned by Pop when no matrix has been pushed.
var ErrUnderflow = errors.New("transform: pop on empty matrix stack")

// Stack holds a current matrix plus the matrices saved by Push.
type Stack struct {
	cur   *mat.Dense
	saved []*mat.Dense
}

// NewStack returns a stack whose current matrix is the identity.
func NewStack() *Stack {
	return &Stack{cur: identity()}
}

func identity() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// LoadIdentity replaces the current matrix with the identity.
func (s *Stack) LoadIdentity() { s.cur = identity() }

// Push saves a copy of the current matrix.
func (s *Stack) Push() {
	var c mat.Dense
	c.CloneFrom(s.cur)
	s.saved = append(s.saved, &c)
}

// Pop restores the most recently pushed matrix.
func (s *Stack) Pop() error {
	if len(s.saved) == 0 {
		return errors.WithStack(ErrUnderflow)
	}
	last := len(s.saved) - 1
	s.cur = s.saved[last]
	s.saved[last] = nil
	s.saved = s.saved[:last]
	return nil
}

// Depth returns the number of saved matrices.
func (s *Stack) Depth() int { return len(s.saved) }

// Translate post-multiplies the current matrix by a translation.
func (s *Stack) Translate(x, y, z float64) {
	t := identity()
	t.Set(0, 3, x)
	t.Set(1, 3, y)
	t.Set(2, 3, z)
	s.mul(t)
}

// Scale post-multiplies the current matrix by a scale.
func (s *Stack) Scale(x, y, z float64) {
	t := mat.NewDiagDense(4, []float64{x, y, z, 1})
	s.mul(t)
}

func (s *Stack) mul(t mat.Matrix) {
	var r mat.Dense
	r.Mul(s.cur, t)
	s.cur = &r
}

// Apply transforms the point (x, y, 0).
func (s *Stack) Apply(x, y float64) (float64, float64) {
	var out mat.VecDense
	out.MulVec(s.cur, mat.NewVecDense(4, []float64{x, y, 0, 1}))
	return out.AtVec(0), out.AtVec(1)
}

// Affine2D is the xy part of a matrix that has no rotation or shear.
type Affine2D struct {
	SX, TX float64
	SY, TY float64
}

// Apply maps (x, y).
func (a Affine2D) Apply(x, y float64) (float64, float64) {
	return a.SX*x + a.TX, a.SY*y + a.TY
}

// Affine2D extracts the 2D scale and translation of the current matrix.
func (s *Stack) Affine2D() Affine2D {
	return Affine2D{
		SX: s.cur.At(0, 0), TX: s.cur.At(0, 3),
		SY: s.cur.At(1, 1), TY: s.cur.At(1, 3),
	}
}
