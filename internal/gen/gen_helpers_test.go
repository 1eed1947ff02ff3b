package gen

import (
	"testing"

	"strata/internal/config"
	"strata/internal/world"
)

func newTestWorld(t *testing.T, w, h int) *world.World {
	t.Helper()
	wd, err := world.New(w, h)
	if err != nil {
		t.Fatalf("world.New: %v", err)
	}
	return wd
}

func testConfig(w, h int) config.Config {
	cfg := config.Default().ForSize(w, h)
	cfg.Base.Frequency = 0.02
	cfg.Workers = 3
	return cfg
}

func fill(w *world.World, f func(x, y int) float32) {
	g := w.Grid()
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			w.Heights[g.Index(x, y)] = f(x, y)
		}
	}
}

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-6
}
