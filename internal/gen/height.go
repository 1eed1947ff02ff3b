package gen

import (
	"github.com/chewxy/math32"

	"strata/internal/config"
	"strata/internal/noise"
	"strata/internal/world"
	"strata/pkg/core"
)

// HeightSynthesizer fills the heightfield from cylindrical fractal noise,
// reshapes it with a power curve and carves shallow basins into lowlands.
type HeightSynthesizer struct {
	env
}

// NewHeightSynthesizer returns the base heightfield stage.
func NewHeightSynthesizer(cfg config.Config, opts ...Option) *HeightSynthesizer {
	return &HeightSynthesizer{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (s *HeightSynthesizer) Name() string { return "height" }

// Process overwrites every height with fresh noise rescaled into the
// configured band.
func (s *HeightSynthesizer) Process(w *world.World, baseSeed uint32, offset int32) error {
	p := s.cfg.Base
	seed := core.StageSeed(baseSeed, offset)
	log := s.logger(s.Name())

	base := noise.NewFBm(seed, noise.Octaves{
		Frequency:  p.Frequency,
		Count:      p.Octaves,
		Lacunarity: p.Lacunarity,
		Gain:       p.Persistence,
	})
	detail := noise.NewFBm(seed+1, noise.Octaves{
		Frequency:  p.Frequency * p.DetailFreqMul,
		Count:      p.DetailOctaves,
		Lacunarity: p.Lacunarity,
		Gain:       p.Persistence,
	})
	basin := noise.NewPerlin(seed+2, p.Frequency*p.BasinFreqMul, int32(p.BasinOctaves))
	cyl := noise.NewCylinder(w.Width())
	g := w.Grid()
	hs := w.Heights

	bands := make([]minMax, g.H)
	err := rows(s.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			mm := minMax{lo: math32.MaxFloat32, hi: -math32.MaxFloat32}
			for x := 0; x < g.W; x++ {
				v := cyl.Sample(base, x, y) + cyl.Sample(detail, x, y)*p.DetailWeight
				hs[g.Index(x, y)] = v
				mm.lo = math32.Min(mm.lo, v)
				mm.hi = math32.Max(mm.hi, v)
			}
			bands[y] = mm
		}
		return nil
	})
	if err != nil {
		return err
	}
	lo, hi := bands[0].lo, bands[0].hi
	for _, b := range bands[1:] {
		lo = math32.Min(lo, b.lo)
		hi = math32.Max(hi, b.hi)
	}
	span := hi - lo
	if span < 1e-4 {
		span = 1
	}
	log.Debug("raw range", "min", lo, "max", hi)

	band := p.BasinTriggerMax - p.BasinTriggerMin
	carved := make([]int, g.H)
	err = rows(s.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				v := math32.Pow((hs[i]-lo)/span, p.PowerCurve)
				if v < p.BasinThreshold {
					t := cyl.SampleUnit(basin, x, y)
					if t > p.BasinTriggerMin && t < p.BasinTriggerMax {
						v -= p.BasinStrength * clamp01((t-p.BasinTriggerMin)/band)
						carved[y]++
					}
				}
				v = clamp01(v)
				hs[i] = clamp01(p.MinHeight + v*(p.MaxHeight-p.MinHeight))
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	n := 0
	for _, c := range carved {
		n += c
	}
	log.Info("heightfield synthesized", "cells", g.Len(), "basin_cells", n)
	return nil
}
