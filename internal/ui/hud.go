//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"life-gl/internal/core"
)

const (
	hudPadding    = 4
	hudLineHeight = 14
	hudCharWidth  = 7
)

// HUD draws the sim's parameters and the reported fps in the top-left corner.
// It doubles as the loop's fps sink.
type HUD struct {
	sim    core.ParameterProvider
	fps    float64
	paused bool
	lines  []string
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.ParameterProvider) *HUD {
	return &HUD{sim: sim}
}

// ReportFPS stores the running average reported by the loop.
func (h *HUD) ReportFPS(fps float64) { h.fps = fps }

// SetPaused toggles the paused marker.
func (h *HUD) SetPaused(paused bool) { h.paused = paused }

// Draw paints the HUD over the simulation view.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.lines = statusLines(h.sim.Parameters(), h.fps, h.paused)

	widest := 0
	for _, line := range h.lines {
		widest = max(widest, len(line))
	}
	w := float32(widest*hudCharWidth + 2*hudPadding)
	ht := float32(len(h.lines)*hudLineHeight + 2*hudPadding)
	vector.DrawFilledRect(screen, 0, 0, w, ht, color.RGBA{R: 16, G: 16, B: 20, A: 200}, false)

	face := basicfont.Face7x13
	for i, line := range h.lines {
		y := hudPadding + (i+1)*hudLineHeight - 3
		text.Draw(screen, line, face, hudPadding, y, color.White)
	}
}
