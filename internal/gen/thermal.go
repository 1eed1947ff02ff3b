package gen

import (
	"strata/internal/config"
	"strata/internal/world"
)

// ThermalEroder sheds material from cells whose drop to a neighbor exceeds
// the talus threshold.
type ThermalEroder struct {
	env
}

// NewThermalEroder returns the talus erosion stage.
func NewThermalEroder(cfg config.Config, opts ...Option) *ThermalEroder {
	return &ThermalEroder{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (t *ThermalEroder) Name() string { return "thermal" }

// talusMove is the material that slides across a drop of d.
func talusMove(d, talus, strength float32) float32 {
	excess := d - talus
	if excess <= 0 {
		return 0
	}
	return max(0, min(strength*excess, excess/2.1))
}

// Process runs the configured iterations. Every cell computes both what it
// loses and what it gathers from higher neighbors against the same snapshot,
// so each output cell has exactly one writer.
func (t *ThermalEroder) Process(w *world.World, _ uint32, _ int32) error {
	p := t.cfg.Thermal
	log := t.logger(t.Name())
	if p.Iterations <= 0 {
		log.Info("skipped", "iterations", p.Iterations)
		return nil
	}
	g := w.Grid()
	snap := make([]float32, g.Len())
	out := w.Heights

	for it := 0; it < p.Iterations; it++ {
		copy(snap, out)
		err := rows(t.workers, g.H, func(y0, y1 int) error {
			for y := y0; y < y1; y++ {
				for x := 0; x < g.W; x++ {
					i := g.Index(x, y)
					if w.Water(i) {
						out[i] = snap[i]
						continue
					}
					h := snap[i]
					var loss, gain float32
					for k := 0; k < 8; k++ {
						j, ok := g.Neighbor(x, y, dx8[k], dy8[k])
						if !ok {
							continue
						}
						nh := snap[j]
						if h > nh {
							loss += talusMove(h-nh, p.Talus, p.Strength)
						} else if nh > h && !w.Water(j) {
							gain += talusMove(nh-h, p.Talus, p.Strength)
						}
					}
					out[i] = clamp01(h - loss + gain)
				}
			}
			return nil
		})
		if err != nil {
			return err
		}
		log.Debug("iteration done", "iteration", it+1, "of", p.Iterations)
	}
	log.Info("thermal erosion applied", "iterations", p.Iterations)
	return nil
}
