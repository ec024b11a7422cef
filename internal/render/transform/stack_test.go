package transform

import (
	"math"
	"testing"

	"github.com/pkg/errors"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestPopUnderflow(t *testing.T) {
	s := NewStack()
	err := s.Pop()
	if err == nil {
		t.Fatal("expected underflow error")
	}
	if !errors.Is(err, ErrUnderflow) {
		t.Fatalf("expected ErrUnderflow, got %v", err)
	}
}

func TestPushPopRestores(t *testing.T) {
	s := NewStack()
	s.Translate(3, 4, 0)
	s.Push()
	s.Scale(10, 10, 1)
	if x, y := s.Apply(1, 1); !near(x, 13) || !near(y, 14) {
		t.Fatalf("Apply(1,1) = (%v,%v), expected (13,14)", x, y)
	}
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", s.Depth())
	}
	if err := s.Pop(); err != nil {
		t.Fatal(err)
	}
	if x, y := s.Apply(1, 1); !near(x, 4) || !near(y, 5) {
		t.Fatalf("after Pop Apply(1,1) = (%v,%v), expected (4,5)", x, y)
	}
	if err := s.Pop(); !errors.Is(err, ErrUnderflow) {
		t.Fatalf("second Pop should underflow, got %v", err)
	}
}

func TestAffineMatchesApply(t *testing.T) {
	s := NewStack()
	s.Translate(-1, -1, 0)
	s.Scale(2.0/640, 2.0/480, 1)
	a := s.Affine2D()
	for _, p := range [][2]float64{{0, 0}, {640, 480}, {320, 240}, {17, 401}} {
		wx, wy := s.Apply(p[0], p[1])
		gx, gy := a.Apply(p[0], p[1])
		if !near(wx, gx) || !near(wy, gy) {
			t.Fatalf("Affine2D(%v) = (%v,%v), Apply = (%v,%v)", p, gx, gy, wx, wy)
		}
	}
	if x, y := a.Apply(0, 0); !near(x, -1) || !near(y, -1) {
		t.Fatalf("origin maps to (%v,%v)", x, y)
	}
	if x, y := a.Apply(640, 480); !near(x, 1) || !near(y, 1) {
		t.Fatalf("far corner maps to (%v,%v)", x, y)
	}
	s.LoadIdentity()
	if x, y := s.Apply(5, 6); !near(x, 5) || !near(y, 6) {
		t.Fatalf("identity Apply = (%v,%v)", x, y)
	}
}
