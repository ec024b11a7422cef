//go:build !ebiten

package app

import (
	"github.com/pkg/errors"

	"life-gl/internal/sims/life"
)

// CheckEnvironment always fails: this binary was built without the GUI.
func CheckEnvironment() error {
	return errors.Wrap(ErrUnsupported, "built without the 'ebiten' tag")
}

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New panics to indicate that the ebiten build tag is required for GUI support.
func New(*life.Life, int) *Game {
	panic("app.New requires building with the 'ebiten' tag")
}

// Reset is a no-op placeholder.
func (g *Game) Reset(int64) {}

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return CheckEnvironment() }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
