// Package config holds every tunable of the terrain pipeline.
package config

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full generation configuration.
type Config struct {
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	Seed    uint32 `yaml:"seed"`
	Workers int    `yaml:"workers"`

	// SeedStride separates the seeds handed to consecutive stages.
	SeedStride int32 `yaml:"seed_stride"`

	Terrain   Terrain   `yaml:"terrain"`
	Slope     Slope     `yaml:"slope"`
	Base      Base      `yaml:"base"`
	Thermal   Thermal   `yaml:"thermal"`
	Hydraulic Hydraulic `yaml:"hydraulic"`
	Mountains Mountains `yaml:"mountains"`
	Rivers    Rivers    `yaml:"rivers"`
	Lakes     Lakes     `yaml:"lakes"`
	Classify  Classify  `yaml:"classify"`
	Border    Border    `yaml:"border"`
	Shoreline Shoreline `yaml:"shoreline"`
}

// Terrain lists the reference elevation bands shared by several stages.
type Terrain struct {
	VeryLowLand  float32 `yaml:"very_low_land"`
	PlainsLow    float32 `yaml:"plains_low"`
	PlainsHigh   float32 `yaml:"plains_high"`
	HillsLow     float32 `yaml:"hills_low"`
	HillsHigh    float32 `yaml:"hills_high"`
	UplandsLow   float32 `yaml:"uplands_low"`
	UplandsHigh  float32 `yaml:"uplands_high"`
	SteepSlopes  float32 `yaml:"steep_slopes"`
	MountainBase float32 `yaml:"mountain_base"`
	MountainMid  float32 `yaml:"mountain_mid"`
	MountainHigh float32 `yaml:"mountain_high"`
	PeakZone     float32 `yaml:"peak_zone"`
}

// Slope lists the slope magnitude thresholds.
type Slope struct {
	Gentle    float32 `yaml:"gentle"`
	Moderate  float32 `yaml:"moderate"`
	Steep     float32 `yaml:"steep"`
	VerySteep float32 `yaml:"very_steep"`
}

// Base configures the initial heightfield.
type Base struct {
	Frequency       float32 `yaml:"frequency"`
	Octaves         int     `yaml:"octaves"`
	Lacunarity      float32 `yaml:"lacunarity"`
	Persistence     float32 `yaml:"persistence"`
	DetailFreqMul   float32 `yaml:"detail_freq_mul"`
	DetailOctaves   int     `yaml:"detail_octaves"`
	DetailWeight    float32 `yaml:"detail_weight"`
	PowerCurve      float32 `yaml:"power_curve"`
	MinHeight       float32 `yaml:"min_height"`
	MaxHeight       float32 `yaml:"max_height"`
	BasinFreqMul    float32 `yaml:"basin_freq_mul"`
	BasinOctaves    int     `yaml:"basin_octaves"`
	BasinStrength   float32 `yaml:"basin_strength"`
	BasinThreshold  float32 `yaml:"basin_threshold"`
	BasinTriggerMin float32 `yaml:"basin_trigger_min"`
	BasinTriggerMax float32 `yaml:"basin_trigger_max"`
}

// Thermal configures talus-driven material shedding.
type Thermal struct {
	Iterations int     `yaml:"iterations"`
	Talus      float32 `yaml:"talus"`
	Strength   float32 `yaml:"strength"`
}

// Hydraulic configures the shallow-water erosion model.
type Hydraulic struct {
	Iterations         int     `yaml:"iterations"`
	Rain               float32 `yaml:"rain"`
	LakeRain           float32 `yaml:"lake_rain"`
	Kr                 float32 `yaml:"kr"`
	Ks                 float32 `yaml:"ks"`
	Ke                 float32 `yaml:"ke"`
	Kd                 float32 `yaml:"kd"`
	MaxErosionFraction float32 `yaml:"max_erosion_fraction"`
}

// Mountains configures the single massif overlay.
type Mountains struct {
	Enabled         bool    `yaml:"enabled"`
	RadiusFactor    float32 `yaml:"radius_factor"`
	Falloff         float32 `yaml:"falloff"`
	RangeFreqMul    float32 `yaml:"range_freq_mul"`
	RangeOctaves    int     `yaml:"range_octaves"`
	RangeLacunarity float32 `yaml:"range_lacunarity"`
	RangeGain       float32 `yaml:"range_gain"`
	RangeThreshold  float32 `yaml:"range_threshold"`
	RidgePower      float32 `yaml:"ridge_power"`
	HeightPower     float32 `yaml:"height_power"`
	BaseHeight      float32 `yaml:"base_height"`
	PeakHeight      float32 `yaml:"peak_height"`
	DetailFreqMul   float32 `yaml:"detail_freq_mul"`
	DetailOctaves   int     `yaml:"detail_octaves"`
	DetailStrength  float32 `yaml:"detail_strength"`
	BlendGain       float32 `yaml:"blend_gain"`
	NudgeFactor     float32 `yaml:"nudge_factor"`
	MinInfluence    float32 `yaml:"min_influence"`
}

// Rivers configures downhill river tracing.
type Rivers struct {
	Enabled         bool    `yaml:"enabled"`
	Sources         int     `yaml:"sources"`
	MaxLength       int     `yaml:"max_length"`
	MaxStagnation   int     `yaml:"max_stagnation"`
	MinGradient     float32 `yaml:"min_gradient"`
	InitialVolume   float32 `yaml:"initial_volume"`
	VolumeStep      float32 `yaml:"volume_step"`
	MaxVolume       float32 `yaml:"max_volume"`
	CarveBase       float32 `yaml:"carve_base"`
	CarveScaling    float32 `yaml:"carve_scaling"`
	CenterFactor    float32 `yaml:"center_factor"`
	EdgeFactor      float32 `yaml:"edge_factor"`
	MaxCarve        float32 `yaml:"max_carve"`
	StartMin        float32 `yaml:"start_min"`
	StartMax        float32 `yaml:"start_max"`
	StartMinSlope   float32 `yaml:"start_min_slope"`
	WidthTiles      int     `yaml:"width_tiles"`
	BedHeight       float32 `yaml:"bed_height"`
	MinAttemptsEach int     `yaml:"min_attempts_each"`
}

// Lakes configures basin filling.
type Lakes struct {
	Enabled         bool    `yaml:"enabled"`
	Ceiling         float32 `yaml:"ceiling"`
	MinDepth        float32 `yaml:"min_depth"`
	WaveMinSize     int     `yaml:"wave_min_size"`
	PondMaxSurface  float32 `yaml:"pond_max_surface"`
	WaveMaxDistance int     `yaml:"wave_max_distance"`
}

// Classify configures the final tile assignment.
type Classify struct {
	MarshMax        float32 `yaml:"marsh_max"`
	MarshSlopeMul   float32 `yaml:"marsh_slope_mul"`
	MarshWaterRate  float64 `yaml:"marsh_water_rate"`
	SnowLine        float32 `yaml:"snow_line"`
	PlateauMaxSlope float32 `yaml:"plateau_max_slope"`
	CliffSlopeMul   float32 `yaml:"cliff_slope_mul"`
	MoorMinSlope    float32 `yaml:"moor_min_slope"`
	RockySlope      float32 `yaml:"rocky_slope"`
	DryFrequency    float32 `yaml:"dry_frequency"`
	DryThreshold    float32 `yaml:"dry_threshold"`
	DryMaxFactor    float32 `yaml:"dry_max_factor"`
	DrySeedOffset   int32   `yaml:"dry_seed_offset"`
}

// Border configures the impassable top and bottom rows.
type Border struct {
	Enabled bool `yaml:"enabled"`
}

// Shoreline configures the distance-to-water field.
type Shoreline struct {
	MaxDistance int `yaml:"max_distance"`
}

// Default returns the tuned configuration for a 5000x5000 world.
func Default() Config {
	c := Config{
		Width:      5000,
		Height:     5000,
		Seed:       1337,
		SeedStride: 1000,
		Terrain: Terrain{
			VeryLowLand:  0.03,
			PlainsLow:    0.06,
			PlainsHigh:   0.25,
			HillsLow:     0.26,
			HillsHigh:    0.45,
			UplandsLow:   0.46,
			UplandsHigh:  0.60,
			SteepSlopes:  0.61,
			MountainBase: 0.65,
			MountainMid:  0.80,
			MountainHigh: 0.90,
			PeakZone:     0.95,
		},
		Slope: Slope{Gentle: 0.005, Moderate: 0.015, Steep: 0.04, VerySteep: 0.08},
		Base: Base{
			Frequency:       0.0007,
			Octaves:         6,
			Lacunarity:      2,
			Persistence:     0.5,
			DetailFreqMul:   5,
			DetailOctaves:   3,
			DetailWeight:    0.12,
			PowerCurve:      0.9,
			MinHeight:       0.03,
			MaxHeight:       0.60,
			BasinFreqMul:    3.5,
			BasinOctaves:    3,
			BasinStrength:   0.06,
			BasinThreshold:  0.28,
			BasinTriggerMin: 0.2,
			BasinTriggerMax: 0.8,
		},
		Thermal: Thermal{Iterations: 3, Talus: 0.02, Strength: 0.015},
		Hydraulic: Hydraulic{
			Iterations:         3,
			Rain:               0.01,
			LakeRain:           0.001,
			Kr:                 0.01,
			Ks:                 0.05,
			Ke:                 0.3,
			Kd:                 0.01,
			MaxErosionFraction: 0.01,
		},
		Mountains: Mountains{
			Enabled:         true,
			RadiusFactor:    0.75,
			Falloff:         2.5,
			RangeFreqMul:    2.8,
			RangeOctaves:    5,
			RangeLacunarity: 2.1,
			RangeGain:       0.45,
			RangeThreshold:  0.45,
			RidgePower:      1.75,
			HeightPower:     0.6,
			BaseHeight:      0.45,
			PeakHeight:      0.995,
			DetailFreqMul:   20,
			DetailOctaves:   4,
			DetailStrength:  0.07,
			BlendGain:       2,
			NudgeFactor:     0.1,
			MinInfluence:    0.01,
		},
		Rivers: Rivers{
			Enabled:         true,
			MaxStagnation:   10,
			MinGradient:     5e-7,
			InitialVolume:   1,
			VolumeStep:      0.05,
			MaxVolume:       300,
			CarveBase:       0.0003,
			CarveScaling:    0.0007,
			CenterFactor:    1.5,
			EdgeFactor:      0.7,
			MaxCarve:        0.05,
			StartMin:        0.26,
			StartMax:        0.80,
			StartMinSlope:   0.001,
			WidthTiles:      3,
			BedHeight:       0.05,
			MinAttemptsEach: 200,
		},
		Lakes: Lakes{
			Enabled:         true,
			Ceiling:         0.26,
			MinDepth:        0.01,
			WaveMinSize:     800,
			PondMaxSurface:  0.08,
			WaveMaxDistance: 25,
		},
		Classify: Classify{
			MarshMax:        0.05,
			MarshSlopeMul:   1.3,
			MarshWaterRate:  0.3,
			SnowLine:        0.855,
			PlateauMaxSlope: 0.0075,
			CliffSlopeMul:   1.1,
			MoorMinSlope:    0.004,
			RockySlope:      0.018,
			DryFrequency:    0.03,
			DryThreshold:    0.65,
			DryMaxFactor:    0.7,
			DrySeedOffset:   50,
		},
		Border:    Border{Enabled: true},
		Shoreline: Shoreline{MaxDistance: 6},
	}
	return c.ForSize(c.Width, c.Height)
}

// ForSize returns a copy resized to w x h with size-derived values
// recomputed: one river source per 80 columns and a walk budget of w+h.
func (c Config) ForSize(w, h int) Config {
	c.Width, c.Height = w, h
	c.Rivers.Sources = w / 80
	c.Rivers.MaxLength = w + h
	return c
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var err error
	check := func(ok bool, field string, v any) {
		if !ok {
			err = multierr.Append(err, fmt.Errorf("%w: %s=%v", ErrInvalid, field, v))
		}
	}
	check(c.Width > 0, "width", c.Width)
	check(c.Height > 0, "height", c.Height)
	check(c.Workers >= 0, "workers", c.Workers)
	check(c.Base.Octaves > 0, "base.octaves", c.Base.Octaves)
	check(c.Base.Frequency > 0, "base.frequency", c.Base.Frequency)
	check(c.Base.MinHeight >= 0 && c.Base.MinHeight < c.Base.MaxHeight && c.Base.MaxHeight <= 1,
		"base.min_height/max_height", [2]float32{c.Base.MinHeight, c.Base.MaxHeight})
	check(c.Base.BasinTriggerMin < c.Base.BasinTriggerMax, "base.basin_trigger_min/max",
		[2]float32{c.Base.BasinTriggerMin, c.Base.BasinTriggerMax})
	check(c.Thermal.Iterations >= 0, "thermal.iterations", c.Thermal.Iterations)
	check(c.Thermal.Talus >= 0, "thermal.talus", c.Thermal.Talus)
	check(c.Hydraulic.Iterations >= 0, "hydraulic.iterations", c.Hydraulic.Iterations)
	check(c.Hydraulic.Ke >= 0 && c.Hydraulic.Ke <= 1, "hydraulic.ke", c.Hydraulic.Ke)
	check(c.Mountains.PeakHeight > 0 && c.Mountains.PeakHeight <= 1, "mountains.peak_height", c.Mountains.PeakHeight)
	check(c.Mountains.RangeThreshold < 1, "mountains.range_threshold", c.Mountains.RangeThreshold)
	check(c.Rivers.Sources >= 0, "rivers.sources", c.Rivers.Sources)
	check(c.Rivers.WidthTiles > 0, "rivers.width_tiles", c.Rivers.WidthTiles)
	check(c.Rivers.StartMin <= c.Rivers.StartMax, "rivers.start_min/max",
		[2]float32{c.Rivers.StartMin, c.Rivers.StartMax})
	check(c.Lakes.Ceiling > 0 && c.Lakes.Ceiling <= 1, "lakes.ceiling", c.Lakes.Ceiling)
	check(c.Lakes.MinDepth >= 0, "lakes.min_depth", c.Lakes.MinDepth)
	check(c.Shoreline.MaxDistance >= 0 && c.Shoreline.MaxDistance < 1<<15, "shoreline.max_distance", c.Shoreline.MaxDistance)
	check(c.Lakes.WaveMaxDistance >= 0 && c.Lakes.WaveMaxDistance < 1<<15, "lakes.wave_max_distance", c.Lakes.WaveMaxDistance)
	return err
}
