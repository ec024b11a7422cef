//go:build ebiten

package app

import (
	"image/color"
	"os"
	"runtime"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"life-gl/internal/core"
	"life-gl/internal/loop"
	"life-gl/internal/render"
	"life-gl/internal/sims/life"
	"life-gl/internal/ui"
)

// CheckEnvironment reports ErrUnsupported when no display is available.
func CheckEnvironment() error {
	return checkDisplay(runtime.GOOS, os.Getenv)
}

// Game adapts the Life loop to the ebiten.Game interface. ebiten calls
// Update once per tick; each Update runs one loop tick, which captures the
// settled generation into the painter before stepping.
type Game struct {
	sim     *life.Life
	loop    *loop.Loop
	painter *render.TrianglePainter
	hud     *ui.HUD
	overlay *ui.Overlay

	scale    int
	paused   bool
	tickOnce bool
	seed     int64
}

// New constructs a Game for the provided simulation.
func New(sim *life.Life, scale int) *Game {
	if scale <= 0 {
		scale = 1
	}
	size := sim.Size()
	painter := render.NewTrianglePainter(size.W*scale, size.H*scale, color.RGBA{R: 255, G: 230, B: 255, A: 255}, color.Black)
	hud := ui.NewHUD(sim)
	g := &Game{
		sim:     sim,
		painter: painter,
		hud:     hud,
		overlay: ui.NewOverlay(size, scale),
		scale:   scale,
		seed:    sim.Seed(),
	}
	g.loop = loop.New(painter, hud)
	g.loop.Start(sim)
	return g
}

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sim.Reset(seed)
	g.tickOnce = false
	g.loop.Start(g.sim)
	g.painter.Present(core.FrameOf(g.sim))
}

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		g.paused = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(g.seed)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.Reset(time.Now().UnixNano())
	}

	g.overlay.Update()
	g.hud.SetPaused(g.paused)

	if !g.paused || g.tickOnce {
		g.loop.Tick()
		g.tickOnce = false
	}
	return nil
}

// Draw renders the mesh captured by the last tick.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sim.Size()
	return s.W * g.scale, s.H * g.scale
}
