//go:build !ebiten

package app

import (
	"errors"
	"log/slog"

	"strata/internal/config"
)

// ErrHeadless is returned by every Game method in builds without ebiten.
var ErrHeadless = errors.New("app: viewer requires building with the 'ebiten' tag")

// Game is a placeholder that satisfies the API expected by the GUI build.
type Game struct{}

// New always fails in the headless build.
func New(config.Config, float64, int, *slog.Logger) (*Game, error) {
	return nil, ErrHeadless
}

// Regenerate always fails in the headless build.
func (g *Game) Regenerate() error { return ErrHeadless }

// Update always reports that the GUI build tag is missing.
func (g *Game) Update() error { return ErrHeadless }

// Draw is a no-op placeholder to satisfy the interface shape.
func (g *Game) Draw(any) {}

// Layout returns zeros in the headless build.
func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
