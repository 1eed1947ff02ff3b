//go:build !ebiten

package ui

import (
	"strata/internal/config"
	"strata/internal/gen"
	"strata/internal/world"
)

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(*config.Config, int) {}

// TakeDirty always reports false in the headless build.
func (h *HUD) TakeDirty() bool { return false }

// SetSummary is a no-op in the headless build.
func (h *HUD) SetSummary(*gen.Report, string, *world.Tile) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, config.Config, int, int) {}
