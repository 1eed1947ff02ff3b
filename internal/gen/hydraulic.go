package gen

import (
	"strata/internal/config"
	"strata/internal/core"
	"strata/internal/world"
)

// HydraulicEroder runs a shallow-water model: rain, outflow along the four
// cardinal directions, sediment advection, erosion/deposition against a
// carrying capacity, then evaporation.
type HydraulicEroder struct {
	env
}

// NewHydraulicEroder returns the water erosion stage.
func NewHydraulicEroder(cfg config.Config, opts ...Option) *HydraulicEroder {
	return &HydraulicEroder{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (h *HydraulicEroder) Name() string { return "hydraulic" }

// opposite[d] is the direction that points back at the sender of flux d.
var opposite = [4]int{2, 3, 0, 1}

type waterState struct {
	water, sediment []float32
	nextW, nextS    []float32
	flux            []float32 // 4 per cell, N E S W
	delta, slope    []float32
}

func newWaterState(n int) *waterState {
	return &waterState{
		water:    make([]float32, n),
		sediment: make([]float32, n),
		nextW:    make([]float32, n),
		nextS:    make([]float32, n),
		flux:     make([]float32, 4*n),
		delta:    make([]float32, n),
		slope:    make([]float32, n),
	}
}

// Process runs the configured number of rain, flow and erosion iterations.
func (h *HydraulicEroder) Process(w *world.World, _ uint32, _ int32) error {
	p := h.cfg.Hydraulic
	log := h.logger(h.Name())
	if p.Iterations <= 0 {
		log.Info("skipped", "iterations", p.Iterations)
		return nil
	}
	g := w.Grid()
	st := newWaterState(g.Len())
	for it := 0; it < p.Iterations; it++ {
		if err := h.iterate(w, g, st); err != nil {
			return err
		}
		log.Debug("iteration done", "iteration", it+1, "of", p.Iterations)
	}
	var water, sed float64
	for i := range st.water {
		water += float64(st.water[i])
		sed += float64(st.sediment[i])
	}
	log.Info("hydraulic erosion applied", "iterations", p.Iterations, "residual_water", water, "suspended_sediment", sed)
	return nil
}

func (h *HydraulicEroder) iterate(w *world.World, g core.Grid, st *waterState) error {
	p := h.cfg.Hydraulic
	hs := w.Heights

	// Slope and rain only touch the cell itself.
	err := rows(h.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				st.slope[i] = cardinalSlope(g, hs, x, y)
				if w.Lake[i] {
					st.water[i] += p.LakeRain
				} else {
					st.water[i] += p.Rain
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = rows(h.workers, g.H, func(y0, y1 int) error {
		var dh [4]float32
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				head := hs[i] + st.water[i]
				var total float32
				for d := 0; d < 4; d++ {
					j, ok := g.Neighbor(x, y, core.DX4[d], core.DY4[d])
					if ok {
						dh[d] = head - (hs[j] + st.water[j])
					} else {
						dh[d] = head
					}
					if dh[d] > 0 {
						total += dh[d]
					}
				}
				for d := 0; d < 4; d++ {
					f := float32(0)
					if dh[d] > 0 && total > 1e-6 {
						f = max(0, min(st.water[i], dh[d])*(dh[d]/total))
					}
					st.flux[4*i+d] = f
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	err = rows(h.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				out := st.flux[4*i] + st.flux[4*i+1] + st.flux[4*i+2] + st.flux[4*i+3]
				var in, sedIn float32
				for d := 0; d < 4; d++ {
					j, ok := g.Neighbor(x, y, core.DX4[d], core.DY4[d])
					if !ok {
						continue
					}
					f := st.flux[4*j+opposite[d]]
					in += f
					sedIn += st.sediment[j] * (f / max(1e-6, st.water[j]))
				}
				st.nextW[i] = st.water[i] - out + in
				sedOut := st.sediment[i] * (out / max(1e-6, st.water[i]))
				st.nextS[i] = max(0, st.sediment[i]-sedOut+sedIn)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	st.water, st.nextW = st.nextW, st.water
	st.sediment, st.nextS = st.nextS, st.sediment

	return rows(h.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				st.delta[i] = 0
				if !w.Lake[i] {
					s, wat, sed := st.slope[i], st.water[i], st.sediment[i]
					capacity := max(0, p.Ks*s*wat)
					if sed < capacity {
						e := min(p.Kr*s*wat, capacity-sed, hs[i]*p.MaxErosionFraction)
						st.delta[i] -= e
						st.sediment[i] += e
					} else {
						dep := min(p.Kd*(sed-capacity), sed)
						st.delta[i] += dep
						st.sediment[i] -= dep
					}
				}
				hs[i] = clamp01(hs[i] + st.delta[i])
				st.water[i] *= 1 - p.Ke
				st.sediment[i] = max(0, st.sediment[i]*(1-0.1*p.Ke))
			}
		}
		return nil
	})
}
