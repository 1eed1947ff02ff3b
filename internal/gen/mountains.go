package gen

import (
	"github.com/chewxy/math32"

	"strata/internal/config"
	"strata/internal/noise"
	"strata/internal/world"
	"strata/pkg/core"
)

// MountainMassifGenerator raises one ridged mountain massif onto the eroded
// base. It never lowers terrain.
type MountainMassifGenerator struct {
	env
}

// NewMountainMassifGenerator returns the massif overlay stage.
func NewMountainMassifGenerator(cfg config.Config, opts ...Option) *MountainMassifGenerator {
	return &MountainMassifGenerator{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (m *MountainMassifGenerator) Name() string { return "mountains" }

// massif is the radial envelope of the mountain region.
type massif struct {
	cx, cy  float32
	radius  float32
	falloff float32
	width   float32
}

// strength is (1 - d^2/r^2)^falloff inside the radius, 0 outside. The X
// distance takes the short way around the cylinder.
func (ms massif) strength(x, y int) float32 {
	if ms.radius <= 0.001 {
		return 0
	}
	dx := float32(x) - ms.cx
	if math32.Abs(dx) > ms.width/2 {
		if dx > 0 {
			dx -= ms.width
		} else {
			dx += ms.width
		}
	}
	dy := float32(y) - ms.cy
	r2 := ms.radius * ms.radius
	d2 := dx*dx + dy*dy
	if d2 >= r2 {
		return 0
	}
	return clamp01(math32.Pow(1-d2/r2, ms.falloff))
}

// Process places one seeded massif and raises land cells under it.
func (m *MountainMassifGenerator) Process(w *world.World, baseSeed uint32, offset int32) error {
	p := m.cfg.Mountains
	log := m.logger(m.Name())
	if !p.Enabled {
		log.Info("skipped")
		return nil
	}
	seed := core.StageSeed(baseSeed, offset)
	base := m.cfg.Base.Frequency
	ranges := noise.NewRidged(seed, noise.Octaves{
		Frequency:  base * p.RangeFreqMul,
		Count:      p.RangeOctaves,
		Lacunarity: p.RangeLacunarity,
		Gain:       p.RangeGain,
	})
	detail := noise.NewFBm(seed+1, noise.Octaves{
		Frequency:  base * p.DetailFreqMul,
		Count:      p.DetailOctaves,
		Lacunarity: m.cfg.Base.Lacunarity,
		Gain:       m.cfg.Base.Persistence,
	})

	g := w.Grid()
	rng := core.NewRNG(seed + 2)
	fw, fh := float32(g.W), float32(g.H)
	ms := massif{
		cx:      0.2*fw + rng.Float32()*0.6*fw,
		cy:      0.2*fh + rng.Float32()*0.6*fh,
		radius:  float32(min(g.W, g.H)) * p.RadiusFactor,
		falloff: p.Falloff,
		width:   fw,
	}
	log.Info("massif placed", "x", ms.cx, "y", ms.cy, "radius", ms.radius)

	cyl := noise.NewCylinder(g.W)
	raised := make([]int, g.H)
	err := rows(m.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				if w.Water(i) {
					continue
				}
				mass := ms.strength(x, y)
				if mass < p.MinInfluence {
					continue
				}
				rangeEffect := cyl.SampleUnit(ranges, x, y)
				if rangeEffect <= p.RangeThreshold {
					continue
				}
				ridge := clamp01((rangeEffect - p.RangeThreshold) / (1 - p.RangeThreshold))
				ridge = math32.Pow(ridge, p.RidgePower)
				eff := clamp01(ridge * mass)

				target := p.BaseHeight + math32.Pow(eff, p.HeightPower)*(p.PeakHeight-p.BaseHeight)
				target += cyl.Sample(detail, x, y) * p.DetailStrength * eff
				target = clamp(target, 0, p.PeakHeight)

				cur := w.Heights[i]
				next := cur
				if target > cur {
					blend := clamp01(eff * p.BlendGain)
					next = max(cur*(1-blend)+target*blend, cur)
				} else {
					next = max(cur+(target-cur)*eff*p.NudgeFactor, cur)
				}
				if next > cur {
					raised[y]++
				}
				w.Heights[i] = clamp01(next)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	n := 0
	for _, r := range raised {
		n += r
	}
	log.Info("mountains raised", "cells", n)
	return nil
}
