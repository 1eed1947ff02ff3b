package gen

import (
	"github.com/chewxy/math32"

	"strata/internal/config"
	"strata/internal/core"
	"strata/internal/world"
)

// SlopeAspectCalculator derives slope magnitude and facing from heights.
type SlopeAspectCalculator struct {
	env
}

// NewSlopeAspectCalculator returns the slope and aspect stage.
func NewSlopeAspectCalculator(cfg config.Config, opts ...Option) *SlopeAspectCalculator {
	return &SlopeAspectCalculator{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (s *SlopeAspectCalculator) Name() string { return "slope" }

// Process recomputes Slopes and Aspects from the current heights.
func (s *SlopeAspectCalculator) Process(w *world.World, _ uint32, _ int32) error {
	g := w.Grid()
	peakSlope := s.cfg.Slope.VerySteep * 1.1
	peakHeight := s.cfg.Terrain.MountainMid
	flat := 0
	counts := make([]int, g.H)
	err := rows(s.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				sl := cardinalSlope(g, w.Heights, x, y)
				w.Slopes[i] = sl
				a := aspectAt(g, w.Heights, x, y, sl)
				if a != world.AspectFlat && sl > peakSlope && w.Heights[i] > peakHeight {
					a = world.AspectSteepPeak
				}
				w.Aspects[i] = a
				if a == world.AspectFlat {
					counts[y]++
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, c := range counts {
		flat += c
	}
	s.logger(s.Name()).Info("slope and aspect computed", "flat_cells", flat)
	return nil
}

// cardinalSlope is the largest absolute height step to the four cardinal
// neighbors, X wrapped and Y clamped.
func cardinalSlope(g core.Grid, hs []float32, x, y int) float32 {
	h := hs[g.Index(x, y)]
	var m float32
	for k := 0; k < 4; k++ {
		m = math32.Max(m, math32.Abs(h-hs[g.ClampedNeighbor(x, y, core.DX4[k], core.DY4[k])]))
	}
	return m
}

// sobel returns the 3x3 Sobel gradient scaled by 1/8.
func sobel(g core.Grid, hs []float32, x, y int) (dzdx, dzdy float32) {
	at := func(dx, dy int) float32 { return hs[g.ClampedNeighbor(x, y, dx, dy)] }
	nw, n, ne := at(-1, -1), at(0, -1), at(1, -1)
	wv, e := at(-1, 0), at(1, 0)
	sw, s, se := at(-1, 1), at(0, 1), at(1, 1)
	dzdx = ((ne + 2*e + se) - (nw + 2*wv + sw)) / 8
	dzdy = ((sw + 2*s + se) - (nw + 2*n + ne)) / 8
	return dzdx, dzdy
}

// aspectAt maps the gradient onto one of eight 45 degree sectors centered on
// north, or flat for degenerate gradients.
func aspectAt(g core.Grid, hs []float32, x, y int, slope float32) world.Aspect {
	dzdx, dzdy := sobel(g, hs, x, y)
	if (math32.Abs(dzdx) < 1e-7 && math32.Abs(dzdy) < 1e-7) || slope < 1e-4 {
		return world.AspectFlat
	}
	return aspectFromAngle(90 - math32.Atan2(dzdy, dzdx)*180/math32.Pi)
}

func aspectFromAngle(deg float32) world.Aspect {
	for deg < 0 {
		deg += 360
	}
	for deg >= 360 {
		deg -= 360
	}
	sector := int((deg + 22.5) / 45)
	return world.AspectN + world.Aspect(sector%8)
}
