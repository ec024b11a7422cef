//go:build !ebiten

package ui

import "life-gl/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterProvider) *HUD { return nil }

// ReportFPS is a no-op in the headless build.
func (h *HUD) ReportFPS(float64) {}

// SetPaused is a no-op in the headless build.
func (h *HUD) SetPaused(bool) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any) {}
