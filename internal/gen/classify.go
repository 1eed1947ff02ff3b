package gen

import (
	"strata/internal/config"
	"strata/internal/noise"
	"strata/internal/world"
	"strata/pkg/core"
)

// TileClassifier turns the continuous fields into terrain categories. Water
// masks win over every elevation rule.
type TileClassifier struct {
	env
}

// NewTileClassifier returns the final classification pass.
func NewTileClassifier(cfg config.Config, opts ...Option) *TileClassifier {
	return &TileClassifier{env: newEnv(cfg, opts)}
}

// Name returns the stage identifier.
func (c *TileClassifier) Name() string { return "classify" }

// thresholds is the resolved rule table for one run.
type thresholds struct {
	marshMax, marshSlope     float32
	snow, upper, mid, lower  float32
	plateauMin, plateauSlope float32
	cliffSlope, cliffMin     float32
	moorMin, moorMax         float32
	moorSlopeMin, moorSlope  float32
	steepMin, rockySlope     float32
	hillsMin, plainsMin      float32
	dryThreshold, dryMax     float32
}

func newThresholds(cfg config.Config) thresholds {
	t, s, k := cfg.Terrain, cfg.Slope, cfg.Classify
	return thresholds{
		marshMax:     k.MarshMax,
		marshSlope:   s.Gentle * k.MarshSlopeMul,
		snow:         k.SnowLine,
		upper:        t.MountainHigh,
		mid:          t.MountainMid,
		lower:        t.MountainBase,
		plateauMin:   t.UplandsLow,
		plateauSlope: k.PlateauMaxSlope,
		cliffSlope:   s.Steep * k.CliffSlopeMul,
		cliffMin:     t.HillsLow,
		moorMin:      t.HillsHigh,
		moorMax:      t.UplandsHigh,
		moorSlopeMin: k.MoorMinSlope,
		moorSlope:    s.Moderate,
		steepMin:     t.SteepSlopes,
		rockySlope:   k.RockySlope,
		hillsMin:     t.HillsLow,
		plainsMin:    t.PlainsLow,
		dryThreshold: k.DryThreshold,
		dryMax:       t.PlainsHigh * k.DryMaxFactor,
	}
}

// landCategory classifies a dry cell from height h, slope s and the dry
// patch noise value dry in [0,1].
func (t thresholds) landCategory(h, s, dry float32) world.Category {
	switch {
	case h < t.marshMax && s < t.marshSlope:
		return world.Marsh
	case h >= t.snow:
		return world.SnowPeak
	case h >= t.upper:
		return world.MountainUpper
	case h >= t.mid:
		return world.MountainMid
	case h >= t.lower:
		return world.MountainLower
	case h >= t.plateauMin && s <= t.plateauSlope:
		return world.Plateau
	case s >= t.cliffSlope && h > t.cliffMin:
		return world.Cliff
	case h >= t.moorMin && h <= t.moorMax && s <= t.moorSlope && s > t.moorSlopeMin:
		return world.Moor
	case h >= t.steepMin:
		if s > t.rockySlope {
			return world.RockySlope
		}
		return world.SteepSlope
	case h >= t.hillsMin:
		return world.Hills
	case h >= t.plainsMin:
		if dry > t.dryThreshold && h < t.dryMax {
			return world.DryPlains
		}
		return world.Plains
	}
	return world.Meadow
}

// Process refreshes slopes, assigns every cell a category, settles water
// heights and fills the shoreline distance fields.
func (c *TileClassifier) Process(w *world.World, baseSeed uint32, offset int32) error {
	// Mountains and rivers reshaped the terrain after the slope pass.
	if err := (&SlopeAspectCalculator{env: c.env}).Process(w, baseSeed, offset); err != nil {
		return err
	}
	k := c.cfg.Classify
	seed := core.StageSeed(baseSeed, offset)
	dry := noise.NewPerlin(seed+uint32(k.DrySeedOffset), k.DryFrequency, 1)
	cyl := noise.NewCylinder(w.Width())
	t := newThresholds(c.cfg)
	g := w.Grid()

	err := rows(c.workers, g.H, func(y0, y1 int) error {
		for y := y0; y < y1; y++ {
			for x := 0; x < g.W; x++ {
				i := g.Index(x, y)
				switch {
				case w.River[i]:
					w.Categories[i] = world.RiverWater
				case w.Lake[i]:
					w.Categories[i] = world.LakeWater
				default:
					h, s := w.Heights[i], w.Slopes[i]
					var d float32
					if h >= t.plainsMin && h < t.hillsMin {
						d = cyl.SampleUnit(dry, x, y)
					}
					w.Categories[i] = t.landCategory(h, s, d)
				}
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	c.settleWater(w, core.NewRNG(seed))
	toWater, toLand := computeShoreline(w, c.cfg.Shoreline.MaxDistance, c.cfg.Lakes.WaveMaxDistance)

	counts := make(map[world.Category]int)
	mountain := 0
	for _, cat := range w.Categories {
		counts[cat]++
		if cat.Mountain() {
			mountain++
		}
	}
	c.logger(c.Name()).Info("tiles classified",
		"river", counts[world.RiverWater],
		"lake", counts[world.LakeWater],
		"pond", counts[world.PondWater],
		"marsh", counts[world.Marsh],
		"mountain", mountain,
		"shore_cells", toWater,
		"wave_cells", toLand)
	return nil
}

// settleWater lowers river beds, splits lakes into lakes and ponds and
// scatters standing water over marshes. It runs serially in index order so
// the RNG stream is reproducible.
func (c *TileClassifier) settleWater(w *world.World, rng *core.RNG) {
	r, l, k := c.cfg.Rivers, c.cfg.Lakes, c.cfg.Classify
	riverTop := r.BedHeight + 0.01
	for i, cat := range w.Categories {
		switch cat {
		case world.RiverWater:
			w.Heights[i] = min(w.Heights[i], riverTop+rng.Float32()/200)
		case world.LakeWater:
			h := w.Heights[i]
			if h < l.PondMaxSurface && h < l.Ceiling*0.6 {
				w.Categories[i] = world.PondWater
				w.Heights[i] = min(h, l.PondMaxSurface-0.001)
			} else {
				w.Heights[i] = min(h, l.Ceiling-0.005)
			}
		case world.Marsh:
			w.MarshWater[i] = rng.Chance(k.MarshWaterRate)
		}
	}
}
