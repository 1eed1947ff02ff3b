package gen

import (
	"testing"

	"strata/internal/world"
)

func TestSlopeOnEastwardRamp(t *testing.T) {
	w := newTestWorld(t, 16, 8)
	// Rises toward the east except across the wrap seam.
	fill(w, func(x, y int) float32 { return 0.1 + 0.01*float32(x) })
	if err := NewSlopeAspectCalculator(testConfig(16, 8)).Process(w, 0, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	g := w.Grid()
	i := g.Index(5, 4)
	if !approx(w.Slopes[i], 0.01) {
		t.Fatalf("slope = %v, want 0.01", w.Slopes[i])
	}
	if w.Aspects[i] != world.AspectE {
		t.Fatalf("aspect = %v, want e", w.Aspects[i])
	}
	seam := g.Index(0, 4)
	if !approx(w.Slopes[seam], 0.15) {
		t.Fatalf("seam slope = %v, want 0.15", w.Slopes[seam])
	}
}

func TestSlopeFlatField(t *testing.T) {
	w := newTestWorld(t, 6, 6)
	fill(w, func(x, y int) float32 { return 0.3 })
	if err := NewSlopeAspectCalculator(testConfig(6, 6)).Process(w, 0, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	for i := range w.Slopes {
		if w.Slopes[i] != 0 || w.Aspects[i] != world.AspectFlat {
			t.Fatalf("cell %d slope=%v aspect=%v", i, w.Slopes[i], w.Aspects[i])
		}
	}
}

func TestSlopeSteepPeak(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	fill(w, func(x, y int) float32 { return 0.3 + 0.1*float32(y) })
	if err := NewSlopeAspectCalculator(testConfig(8, 8)).Process(w, 0, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	g := w.Grid()
	if a := w.Aspects[g.Index(3, 6)]; a != world.AspectSteepPeak {
		t.Fatalf("high steep cell aspect = %v", a)
	}
	if a := w.Aspects[g.Index(3, 1)]; a != world.AspectN {
		t.Fatalf("low cell aspect = %v, want n", a)
	}
}

func TestAspectSectors(t *testing.T) {
	cases := []struct {
		deg  float32
		want world.Aspect
	}{
		{0, world.AspectN}, {22.4, world.AspectN}, {22.5, world.AspectNE}, {90, world.AspectE},
		{180, world.AspectS}, {270, world.AspectW}, {337.5, world.AspectN}, {-45, world.AspectNW},
		{359.9, world.AspectN}, {300, world.AspectNW},
	}
	for _, c := range cases {
		if got := aspectFromAngle(c.deg); got != c.want {
			t.Fatalf("angle %v: got %v want %v", c.deg, got, c.want)
		}
	}
}
