//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"life-gl/internal/core"
)

// Overlay draws optional cell-boundary lines on top of the simulation.
type Overlay struct {
	size     core.Size
	scale    int
	showGrid bool
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(size core.Size, scale int) *Overlay {
	if scale <= 0 {
		scale = 1
	}
	return &Overlay{size: size, scale: scale}
}

// Update toggles the grid lines with G.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		o.showGrid = !o.showGrid
	}
}

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	// Lines closer than 3px would swamp the cells.
	if !o.showGrid || o.scale < 3 {
		return
	}
	col := color.RGBA{R: 60, G: 60, B: 70, A: 255}
	w := float32(o.size.W * o.scale)
	h := float32(o.size.H * o.scale)
	for x := 1; x < o.size.W; x++ {
		fx := float32(x * o.scale)
		vector.StrokeLine(screen, fx, 0, fx, h, 1, col, false)
	}
	for y := 1; y < o.size.H; y++ {
		fy := float32(y * o.scale)
		vector.StrokeLine(screen, 0, fy, w, fy, 1, col, false)
	}
}
