package world

import (
	"fmt"
	"math"
)

// Verify checks the numeric invariants every stage must preserve: heights
// finite and within [0,1], slopes finite and non-negative.
func (w *World) Verify() error {
	for i, h := range w.Heights {
		f := float64(h)
		if math.IsNaN(f) || math.IsInf(f, 0) || h < 0 || h > 1 {
			x, y := w.grid.Coord(i)
			return fmt.Errorf("%w: height %v at (%d,%d)", ErrStageFailure, h, x, y)
		}
	}
	for i, s := range w.Slopes {
		f := float64(s)
		if math.IsNaN(f) || math.IsInf(f, 0) || s < 0 {
			x, y := w.grid.Coord(i)
			return fmt.Errorf("%w: slope %v at (%d,%d)", ErrStageFailure, s, x, y)
		}
	}
	return nil
}
