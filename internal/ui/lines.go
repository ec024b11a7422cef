package ui

import (
	"fmt"
	"strings"

	"life-gl/internal/core"
)

// statusLines formats the HUD text: one line per parameter group followed by
// the throughput line.
func statusLines(snap core.ParameterSnapshot, fps float64, paused bool) []string {
	lines := make([]string, 0, len(snap.Groups)+1)
	for _, group := range snap.Groups {
		parts := make([]string, 0, len(group.Params))
		for _, p := range group.Params {
			parts = append(parts, p.Label+" "+p.Value)
		}
		lines = append(lines, group.Name+": "+strings.Join(parts, "  "))
	}
	status := fmt.Sprintf("FPS %.1f", fps)
	if paused {
		status += "  [paused]"
	}
	return append(lines, status)
}
