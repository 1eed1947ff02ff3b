package gen

import (
	"strata/internal/config"
	"strata/internal/world"
	"strata/pkg/core"
)

// RiverNetworkSimulator traces steepest-descent rivers from random highland
// sources, carving a channel as each river gains volume.
type RiverNetworkSimulator struct {
	env
}

// NewRiverNetworkSimulator returns the river tracing stage.
func NewRiverNetworkSimulator(cfg config.Config, opts ...Option) *RiverNetworkSimulator {
	return &RiverNetworkSimulator{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (r *RiverNetworkSimulator) Name() string { return "rivers" }

// Process picks seeded sources and traces a river downhill from each.
func (r *RiverNetworkSimulator) Process(w *world.World, baseSeed uint32, offset int32) error {
	p := r.cfg.Rivers
	log := r.logger(r.Name())
	if !p.Enabled || p.Sources <= 0 {
		log.Info("skipped", "sources", p.Sources)
		return nil
	}
	g := w.Grid()
	rng := core.NewRNG(core.StageSeed(baseSeed, offset))
	maxAttempts := p.Sources * max(p.MinAttemptsEach, g.W/5)

	made, attempts, cells := 0, 0, 0
	for made < p.Sources && attempts < maxAttempts {
		attempts++
		x, y := rng.IntN(g.W), rng.IntN(g.H)
		if !r.validSource(w, g.Index(x, y)) {
			continue
		}
		cells += len(r.trace(w, x, y))
		made++
	}
	if made < p.Sources {
		log.Warn("source budget exhausted", "rivers", made, "wanted", p.Sources, "attempts", attempts)
	}
	log.Info("rivers traced", "rivers", made, "attempts", attempts, "path_cells", cells)
	return nil
}

func (r *RiverNetworkSimulator) validSource(w *world.World, i int) bool {
	p := r.cfg.Rivers
	h := w.Heights[i]
	return h >= p.StartMin && h <= p.StartMax && w.Slopes[i] > p.StartMinSlope && !w.Water(i)
}

// trace walks one river from (x, y) and returns the centerline cells in
// order. Each cell appears at most once.
func (r *RiverNetworkSimulator) trace(w *world.World, x, y int) []int {
	p := r.cfg.Rivers
	g := w.Grid()
	hs := w.Heights
	visited := make(map[int]struct{})
	var path []int
	volume := p.InitialVolume
	stagnation := 0
	half := p.WidthTiles / 2

	for step := 0; step < p.MaxLength; step++ {
		i := g.Index(x, y)
		if _, seen := visited[i]; seen {
			break
		}
		visited[i] = struct{}{}
		if w.Lake[i] {
			break
		}
		path = append(path, i)

		carve := p.CarveBase + volume*p.CarveScaling
		for dx := -half; dx <= half; dx++ {
			j := g.Index(g.WrapX(x+dx), y)
			w.River[j] = true
			c := carve * p.EdgeFactor
			if dx == 0 {
				c = carve * p.CenterFactor
			}
			hs[j] = max(hs[j]-min(c, p.MaxCarve), 0)
		}

		h := hs[i]
		best, bx, by := -1, 0, 0
		lowest := h
		for k := 0; k < 8; k++ {
			j, ok := g.Neighbor(x, y, dx8[k], dy8[k])
			if !ok || hs[j] >= lowest {
				continue
			}
			if _, seen := visited[j]; seen && hs[j] >= h-5*p.MinGradient {
				continue
			}
			lowest, best = hs[j], j
			bx, by = g.WrapX(x+dx8[k]), y+dy8[k]
		}
		if best < 0 {
			break
		}
		if lowest >= h-p.MinGradient {
			stagnation++
			if stagnation >= p.MaxStagnation {
				break
			}
		} else {
			stagnation = 0
		}
		x, y = bx, by
		if hs[best] < p.BedHeight+0.001 && !w.Lake[best] {
			w.River[best] = true
			path = append(path, best)
			break
		}
		volume = min(volume+p.VolumeStep, p.MaxVolume)
	}
	return path
}
