package core

import (
	"testing"
	"time"
)

type fakeTime struct{ t time.Time }

func (f *fakeTime) now() time.Time { return f.t }

func TestClockZeroElapsed(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	c := NewClock(ft.now)
	c.Start()

	for i := 0; i < 3; i++ {
		if fps := c.Advance(); fps != 0 {
			t.Fatalf("expected 0 fps with no elapsed time, got %v", fps)
		}
	}
	if c.Frames() != 3 {
		t.Fatalf("expected 3 frames, got %d", c.Frames())
	}
}

func TestClockAverage(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	c := NewClock(ft.now)
	c.Start()

	for i := 0; i < 30; i++ {
		ft.t = ft.t.Add(time.Second / 60)
		c.Advance()
	}
	// A frame with no new elapsed time still counts toward the average.
	before := c.FPS()
	if got := c.Advance(); got <= before {
		t.Fatalf("extra frame in the same instant should raise the average, got %v then %v", before, got)
	}
	if c.Elapsed() != 30*(time.Second/60) {
		t.Fatalf("unexpected elapsed %v", c.Elapsed())
	}

	c.Start()
	if c.Frames() != 0 || c.FPS() != 0 {
		t.Fatal("Start must reset frames and fps")
	}
}

func TestClockNeverNegative(t *testing.T) {
	ft := &fakeTime{t: time.Unix(100, 0)}
	c := NewClock(ft.now)
	c.Start()
	ft.t = ft.t.Add(-time.Second)
	if fps := c.Advance(); fps < 0 {
		t.Fatalf("fps must not be negative, got %v", fps)
	}
}
