// Package term renders Life frames to a terminal with tcell.
package term

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"life-gl/internal/core"
)

// ErrUnsupported reports that the terminal cannot be driven by tcell.
var ErrUnsupported = errors.New("terminal unsupported")

const cellWidth = 2

// Screen draws each alive cell as a two-column block and keeps a status line
// on the bottom row. It implements loop.Renderer and loop.Sink.
type Screen struct {
	screen tcell.Screen
	alive  tcell.Style
	status tcell.Style

	frame core.Frame
	pop   int
}

// Open initializes the controlling terminal.
func Open() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}
	return New(s)
}

// New takes ownership of s and initializes it.
func New(s tcell.Screen) (*Screen, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(ErrUnsupported, err.Error())
	}
	s.HideCursor()
	return &Screen{
		screen: s,
		alive:  tcell.StyleDefault.Foreground(tcell.ColorWhite),
		status: tcell.StyleDefault.Reverse(true),
	}, nil
}

// Close restores the terminal.
func (s *Screen) Close() { s.screen.Fini() }

// Present draws the alive cells of f, clipped to the terminal size.
func (s *Screen) Present(f core.Frame) {
	s.screen.Clear()
	tw, th := s.screen.Size()
	rows := th - 1
	s.frame = f
	s.pop = 0
	if f.Cells == nil {
		return
	}
	for c := range f.Cells {
		s.pop++
		if c.Row >= rows {
			continue
		}
		x := c.Col * cellWidth
		for dx := 0; dx < cellWidth && x+dx < tw; dx++ {
			s.screen.SetContent(x+dx, c.Row, '█', nil, s.alive)
		}
	}
}

// ReportFPS writes the status line and flushes the screen.
func (s *Screen) ReportFPS(fps float64) {
	tw, th := s.screen.Size()
	line := fmt.Sprintf(" gen %d  alive %d  grid %dx%d  %.1f fps  (q to quit)",
		s.frame.Generation, s.pop, s.frame.Rows, s.frame.Cols, fps)
	y := th - 1
	x := 0
	for _, r := range line {
		if x >= tw {
			break
		}
		s.screen.SetContent(x, y, r, nil, s.status)
		x++
	}
	for ; x < tw; x++ {
		s.screen.SetContent(x, y, ' ', nil, s.status)
	}
	s.screen.Show()
}

// Watch polls input until ctx is done, calling cancel on q, Esc or Ctrl-C.
// It also re-syncs the screen on resize.
func (s *Screen) Watch(ctx context.Context, cancel context.CancelFunc) {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go s.screen.ChannelEvents(events, quit)
	defer close(quit)

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if isQuit(ev) {
					cancel()
					return
				}
			case *tcell.EventResize:
				s.screen.Sync()
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
