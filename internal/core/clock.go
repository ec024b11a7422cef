package core

import "time"

// Clock tracks frames and wall-clock time for throughput reporting.
type Clock struct {
	now     func() time.Time
	start   time.Time
	current time.Time
	frames  int
	fps     float64
}

// NewClock constructs a Clock reading time from now. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Start records the start timestamp and resets the frame counter.
func (c *Clock) Start() {
	c.start = c.now()
	c.current = c.start
	c.frames = 0
	c.fps = 0
}

// Advance counts one completed frame and returns the average frames per
// second since Start. When no time has elapsed the previous value is kept.
func (c *Clock) Advance() float64 {
	c.frames++
	c.current = c.now()
	elapsed := c.current.Sub(c.start).Seconds()
	if elapsed <= 0 {
		return c.fps
	}
	c.fps = float64(c.frames) / elapsed
	return c.fps
}

// Frames returns the number of frames counted since Start.
func (c *Clock) Frames() int { return c.frames }

// FPS returns the last computed average.
func (c *Clock) FPS() float64 { return c.fps }

// Elapsed returns the time between Start and the most recent Advance.
func (c *Clock) Elapsed() time.Duration { return c.current.Sub(c.start) }
