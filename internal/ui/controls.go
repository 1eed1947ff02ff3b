// Package ui holds the interactive viewer's panels and overlays.
package ui

import (
	"math"
	"strconv"

	"strata/internal/config"
	"strata/internal/core"
)

// Control describes one adjustable parameter shown in the HUD.
type Control struct {
	Key   string
	Label string
	Step  float64
	Min   float64
	Max   float64
}

// DefaultControls lists the tunables most worth adjusting interactively.
func DefaultControls() []Control {
	return []Control{
		{Key: "base.frequency", Label: "Base freq", Step: 0.0002, Min: 0.0001, Max: 0.05},
		{Key: "base.power_curve", Label: "Power curve", Step: 0.05, Min: 0.5, Max: 3},
		{Key: "thermal.iterations", Label: "Thermal iters", Step: 1, Min: 0, Max: 50},
		{Key: "hydraulic.iterations", Label: "Hydraulic iters", Step: 5, Min: 0, Max: 200},
		{Key: "mountains.radius_factor", Label: "Massif radius", Step: 0.02, Min: 0.02, Max: 1},
		{Key: "rivers.sources", Label: "River sources", Step: 1, Min: 0, Max: 500},
		{Key: "lakes.ceiling", Label: "Lake ceiling", Step: 0.01, Min: 0, Max: 1},
		{Key: "classify.snow_line", Label: "Snow line", Step: 0.01, Min: 0, Max: 1},
	}
}

// Adjust moves ctrl one step in direction and writes the result into cfg.
// It reports whether the value changed.
func Adjust(cfg *config.Config, ctrl Control, direction int) (bool, error) {
	p, ok := cfg.Parameters().Find(ctrl.Key)
	if !ok || direction == 0 {
		return false, nil
	}
	cur, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return false, nil
	}
	step := ctrl.Step
	if step <= 0 {
		step = 1
	}
	target := math.Min(math.Max(cur+float64(direction)*step, ctrl.Min), ctrl.Max)
	if p.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	if math.Abs(target-cur) < 1e-9 {
		return false, nil
	}
	if err := cfg.Set(ctrl.Key, format(p.Type, target, step)); err != nil {
		return false, err
	}
	return true, nil
}

// Value renders ctrl's current value from cfg, or "--" when unknown.
func Value(cfg config.Config, ctrl Control) string {
	p, ok := cfg.Parameters().Find(ctrl.Key)
	if !ok {
		return "--"
	}
	v, err := strconv.ParseFloat(p.Value, 64)
	if err != nil {
		return p.Value
	}
	return format(p.Type, v, ctrl.Step)
}

func format(t core.ParamType, v, step float64) string {
	if t == core.ParamTypeInt {
		return strconv.FormatInt(int64(math.Round(v)), 10)
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}
