package gen

import (
	"math"
	"slices"
	"testing"
)

func TestHeightSynthesizerRangeAndDeterminism(t *testing.T) {
	cfg := testConfig(64, 48)
	run := func() []float32 {
		w := newTestWorld(t, 64, 48)
		if err := NewHeightSynthesizer(cfg).Process(w, 42, 0); err != nil {
			t.Fatalf("process: %v", err)
		}
		return slices.Clone(w.Heights)
	}
	a, b := run(), run()
	if !slices.Equal(a, b) {
		t.Fatalf("same seed produced different heights")
	}
	lo, hi := float32(1), float32(0)
	for _, h := range a {
		lo, hi = min(lo, h), max(hi, h)
	}
	if lo < cfg.Base.MinHeight-1e-6 || hi > cfg.Base.MaxHeight+1e-6 {
		t.Fatalf("heights span [%v,%v], want within [%v,%v]", lo, hi, cfg.Base.MinHeight, cfg.Base.MaxHeight)
	}
	if hi-lo < 0.1 {
		t.Fatalf("heightfield is nearly flat: [%v,%v]", lo, hi)
	}

	w := newTestWorld(t, 64, 48)
	if err := NewHeightSynthesizer(cfg).Process(w, 43, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	if slices.Equal(a, w.Heights) {
		t.Fatalf("different seeds produced identical heights")
	}
}

func TestHeightSynthesizerSeamIsContinuous(t *testing.T) {
	cfg := testConfig(128, 32)
	w := newTestWorld(t, 128, 32)
	if err := NewHeightSynthesizer(cfg).Process(w, 9, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	g := w.Grid()
	var seam, inner float64
	for y := 0; y < g.H; y++ {
		seam += math.Abs(float64(w.Heights[g.Index(g.W-1, y)] - w.Heights[g.Index(0, y)]))
		inner += math.Abs(float64(w.Heights[g.Index(63, y)] - w.Heights[g.Index(64, y)]))
	}
	if seam > 4*inner+0.05 {
		t.Fatalf("seam step %v much larger than interior step %v", seam, inner)
	}
}

func TestHydraulicKeepsHeightsValid(t *testing.T) {
	w := newTestWorld(t, 24, 16)
	fill(w, func(x, y int) float32 { return 0.2 + 0.03*float32(y) + 0.01*float32(x%5) })
	g := w.Grid()
	lake := g.Index(4, 4)
	w.Lake[lake] = true
	before := w.Heights[lake]

	cfg := testConfig(24, 16)
	cfg.Hydraulic.Iterations = 4
	if err := NewHydraulicEroder(cfg).Process(w, 0, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	if err := w.Verify(); err != nil {
		t.Fatalf("verify: %v", err)
	}
	if w.Heights[lake] != before {
		t.Fatalf("lake cell eroded: %v -> %v", before, w.Heights[lake])
	}
}

func TestHydraulicFlatFieldUnchanged(t *testing.T) {
	w := newTestWorld(t, 8, 8)
	fill(w, func(x, y int) float32 { return 0.4 })
	cfg := testConfig(8, 8)
	if err := NewHydraulicEroder(cfg).Process(w, 0, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	for i, h := range w.Heights {
		if h != 0.4 {
			t.Fatalf("flat cell %d changed to %v", i, h)
		}
	}
}

func TestHydraulicErodesSlopes(t *testing.T) {
	w := newTestWorld(t, 16, 16)
	fill(w, func(x, y int) float32 { return 0.1 + 0.04*float32(y) })
	orig := slices.Clone(w.Heights)
	cfg := testConfig(16, 16)
	cfg.Hydraulic.Iterations = 3
	if err := NewHydraulicEroder(cfg).Process(w, 0, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	if slices.Equal(orig, w.Heights) {
		t.Fatalf("sloped terrain was not eroded")
	}
}

func TestMountainsNeverLower(t *testing.T) {
	cfg := testConfig(96, 96)
	w := newTestWorld(t, 96, 96)
	if err := NewHeightSynthesizer(cfg).Process(w, 5, 0); err != nil {
		t.Fatalf("height: %v", err)
	}
	before := slices.Clone(w.Heights)
	if err := NewMountainMassifGenerator(cfg).Process(w, 5, 4000); err != nil {
		t.Fatalf("mountains: %v", err)
	}
	raised := 0
	for i := range before {
		if w.Heights[i] < before[i] {
			t.Fatalf("cell %d lowered %v -> %v", i, before[i], w.Heights[i])
		}
		if w.Heights[i] > cfg.Mountains.PeakHeight && w.Heights[i] > before[i] {
			t.Fatalf("cell %d raised above peak: %v", i, w.Heights[i])
		}
		if w.Heights[i] > before[i] {
			raised++
		}
	}
	if raised == 0 {
		t.Fatalf("massif raised nothing")
	}
}

func TestMountainsSkipWater(t *testing.T) {
	cfg := testConfig(32, 32)
	cfg.Mountains.RangeThreshold = -1
	w := newTestWorld(t, 32, 32)
	fill(w, func(x, y int) float32 { return 0.1 })
	for i := range w.Lake {
		w.Lake[i] = true
	}
	if err := NewMountainMassifGenerator(cfg).Process(w, 5, 0); err != nil {
		t.Fatalf("mountains: %v", err)
	}
	for i, h := range w.Heights {
		if h != 0.1 {
			t.Fatalf("water cell %d raised to %v", i, h)
		}
	}
}

func TestMassifStrengthWrapsX(t *testing.T) {
	ms := massif{cx: 1, cy: 10, radius: 8, falloff: 2.5, width: 64}
	if a, b := ms.strength(63, 10), ms.strength(3, 10); !approx(a, b) {
		t.Fatalf("strength across seam %v != %v", a, b)
	}
	if ms.strength(1, 10) != 1 {
		t.Fatalf("center strength = %v", ms.strength(1, 10))
	}
	if ms.strength(30, 10) != 0 {
		t.Fatalf("outside strength = %v", ms.strength(30, 10))
	}
}
