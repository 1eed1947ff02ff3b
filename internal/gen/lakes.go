package gen

import (
	"github.com/chewxy/math32"

	"strata/internal/config"
	"strata/internal/world"
)

// LakeFormer fills closed depressions below the lake ceiling up to their
// spill height.
type LakeFormer struct {
	env
}

// NewLakeFormer returns the basin filling stage.
func NewLakeFormer(cfg config.Config, opts ...Option) *LakeFormer {
	return &LakeFormer{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (l *LakeFormer) Name() string { return "lakes" }

// basin is the state of one flood fill.
type basin struct {
	cells  []int
	lowest float32
	rim    float32
}

// Process fills every closed basin below the lake ceiling and marks large
// bodies wave eligible.
func (l *LakeFormer) Process(w *world.World, _ uint32, _ int32) error {
	p := l.cfg.Lakes
	log := l.logger(l.Name())
	if !p.Enabled {
		log.Info("skipped")
		return nil
	}
	g := w.Grid()
	visited := make([]bool, g.Len())
	queue := make([]int, 0, 1024)
	lakes, filled := 0, 0

	for start := 0; start < g.Len(); start++ {
		if visited[start] || !l.fillable(w, start) {
			continue
		}
		b := basin{lowest: math32.Inf(1), rim: math32.Inf(1)}
		visited[start] = true
		queue = append(queue[:0], start)
		for head := 0; head < len(queue); head++ {
			i := queue[head]
			b.cells = append(b.cells, i)
			b.lowest = min(b.lowest, w.Heights[i])
			x, y := g.Coord(i)
			for k := 0; k < 8; k++ {
				j, ok := g.Neighbor(x, y, dx8[k], dy8[k])
				if !ok {
					b.rim = min(b.rim, 0)
					continue
				}
				if visited[j] {
					continue
				}
				if l.fillable(w, j) {
					visited[j] = true
					queue = append(queue, j)
				} else {
					b.rim = min(b.rim, w.Heights[j])
				}
			}
		}

		if !(b.rim > b.lowest) {
			continue
		}
		surface := min(b.rim, p.Ceiling)
		if surface-b.lowest <= p.MinDepth {
			continue
		}
		n := 0
		for _, i := range b.cells {
			if w.Heights[i] < surface {
				w.Heights[i] = surface
				w.Lake[i] = true
				n++
			}
		}
		if n > 0 {
			lakes++
			filled += n
			log.Debug("lake formed", "cells", n, "surface", surface, "depth", surface-b.lowest)
		}
	}

	bodies, wavy := markWaveEligible(w, p.WaveMinSize)
	log.Info("lakes formed", "lakes", lakes, "cells", filled, "bodies", bodies, "wave_bodies", wavy)
	return nil
}

func (l *LakeFormer) fillable(w *world.World, i int) bool {
	return w.Heights[i] < l.cfg.Lakes.Ceiling && !w.Lake[i]
}

// markWaveEligible groups 8-connected lake cells into bodies and flags every
// cell of bodies with at least minSize cells.
func markWaveEligible(w *world.World, minSize int) (bodies, eligible int) {
	g := w.Grid()
	seen := make([]bool, g.Len())
	var body []int
	for start := range w.Lake {
		if !w.Lake[start] || seen[start] {
			continue
		}
		seen[start] = true
		body = append(body[:0], start)
		for head := 0; head < len(body); head++ {
			x, y := g.Coord(body[head])
			for k := 0; k < 8; k++ {
				j, ok := g.Neighbor(x, y, dx8[k], dy8[k])
				if ok && w.Lake[j] && !seen[j] {
					seen[j] = true
					body = append(body, j)
				}
			}
		}
		bodies++
		big := len(body) >= minSize
		if big {
			eligible++
		}
		for _, i := range body {
			w.WaveEligible[i] = big
		}
	}
	return bodies, eligible
}
