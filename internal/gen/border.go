package gen

import (
	"strata/internal/config"
	"strata/internal/world"
)

// BorderWallPlacer seals the top and bottom rows with impassable walls.
// Water cells keep their category.
type BorderWallPlacer struct {
	env
}

// NewBorderWallPlacer returns the wall stage configured by cfg.
func NewBorderWallPlacer(cfg config.Config, opts ...Option) *BorderWallPlacer {
	return &BorderWallPlacer{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (b *BorderWallPlacer) Name() string { return "border" }

// Process walls off rows 0 and H-1 unless the stage is disabled.
func (b *BorderWallPlacer) Process(w *world.World, _ uint32, _ int32) error {
	log := b.logger(b.Name())
	if !b.cfg.Border.Enabled {
		log.Info("skipped")
		return nil
	}
	g := w.Grid()
	walls := 0
	for _, y := range []int{0, g.H - 1} {
		for x := 0; x < g.W; x++ {
			i := g.Index(x, y)
			if w.Water(i) || w.Categories[i] == world.BorderWall {
				continue
			}
			w.Categories[i] = world.BorderWall
			w.Heights[i] = 1
			w.Slopes[i] = 1
			w.Aspects[i] = world.AspectSteepPeak
			walls++
		}
	}
	log.Info("border walls placed", "cells", walls)
	return nil
}
