// Package loop drives a simulation one tick per display refresh: present the
// settled generation, step, then report throughput.
package loop

import (
	"context"
	"time"

	"life-gl/internal/core"
)

// Renderer consumes one settled generation per tick. Implementations must
// copy whatever they need before returning.
type Renderer interface {
	Present(f core.Frame)
}

// Sink receives the running average frames per second once per tick.
type Sink interface {
	ReportFPS(fps float64)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(core.Frame)

// Present calls f.
func (fn RendererFunc) Present(f core.Frame) { fn(f) }

// SinkFunc adapts a function to Sink.
type SinkFunc func(float64)

// ReportFPS calls fn.
func (fn SinkFunc) ReportFPS(fps float64) { fn(fps) }

type discard struct{}

func (discard) Present(core.Frame) {}
func (discard) ReportFPS(float64)  {}

// Discard is a Renderer and Sink that drops everything.
var Discard interface {
	Renderer
	Sink
} = discard{}

// Option configures a Loop.
type Option func(*Loop)

// WithClock makes the loop read time from now.
func WithClock(now func() time.Time) Option {
	return func(l *Loop) { l.clock = core.NewClock(now) }
}

// Loop owns the tick sequence for one sim.
type Loop struct {
	sim      core.Sim
	renderer Renderer
	sink     Sink
	clock    *core.Clock
}

// New constructs a Loop. Nil collaborators are replaced by Discard.
func New(renderer Renderer, sink Sink, opts ...Option) *Loop {
	if renderer == nil {
		renderer = Discard
	}
	if sink == nil {
		sink = Discard
	}
	l := &Loop{renderer: renderer, sink: sink}
	for _, opt := range opts {
		opt(l)
	}
	if l.clock == nil {
		l.clock = core.NewClock(nil)
	}
	return l
}

// Start retains sim, records the start time and resets the frame counter.
func (l *Loop) Start(sim core.Sim) {
	l.sim = sim
	l.clock.Start()
}

// Sim returns the sim passed to Start.
func (l *Loop) Sim() core.Sim { return l.sim }

// Tick presents the current generation, steps once, and reports the updated
// average fps, which it also returns.
func (l *Loop) Tick() float64 {
	if l.sim == nil {
		panic("loop: Tick called before Start")
	}
	l.renderer.Present(core.FrameOf(l.sim))
	l.sim.Step()
	fps := l.clock.Advance()
	l.sink.ReportFPS(fps)
	return fps
}

// Run ticks once per value received on frames until ctx is cancelled or
// frames is closed. Cancellation is only observed between ticks.
func (l *Loop) Run(ctx context.Context, frames <-chan time.Time) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-frames:
			if !ok {
				return nil
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			l.Tick()
		}
	}
}

// Frames returns the number of completed ticks since Start.
func (l *Loop) Frames() int { return l.clock.Frames() }

// FPS returns the last reported average.
func (l *Loop) FPS() float64 { return l.clock.FPS() }

// Elapsed returns the wall-clock time covered by the completed ticks.
func (l *Loop) Elapsed() time.Duration { return l.clock.Elapsed() }
