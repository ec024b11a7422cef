package app

import "github.com/pkg/errors"

// ErrUnsupported reports that the GUI cannot run in this environment.
var ErrUnsupported = errors.New("graphical environment unsupported")

// checkDisplay reports whether an X11 or Wayland display is reachable on
// platforms where ebiten needs one.
func checkDisplay(goos string, getenv func(string) string) error {
	switch goos {
	case "linux", "freebsd", "netbsd", "openbsd", "dragonfly":
		if getenv("DISPLAY") == "" && getenv("WAYLAND_DISPLAY") == "" {
			return errors.Wrap(ErrUnsupported, "neither DISPLAY nor WAYLAND_DISPLAY is set")
		}
	}
	return nil
}
