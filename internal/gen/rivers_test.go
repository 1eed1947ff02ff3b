package gen

import "testing"

func rampWorld(t *testing.T, w, h int) *RiverNetworkSimulator {
	t.Helper()
	cfg := testConfig(w, h)
	cfg.Rivers.Sources = 1
	return NewRiverNetworkSimulator(cfg)
}

func TestRiverFollowsRampWithoutLoops(t *testing.T) {
	const W, H = 16, 40
	w := newTestWorld(t, W, H)
	fill(w, func(x, y int) float32 { return 0.79 - 0.005*float32(y) })
	r := rampWorld(t, W, H)

	path := r.trace(w, 5, 0)
	if len(path) == 0 {
		t.Fatalf("empty path")
	}
	g := w.Grid()
	seen := map[int]bool{}
	for k, i := range path {
		if seen[i] {
			t.Fatalf("cell %d visited twice", i)
		}
		seen[i] = true
		if !w.River[i] {
			t.Fatalf("path cell %d not marked river", i)
		}
		if k == 0 {
			continue
		}
		ax, ay := g.Coord(path[k-1])
		bx, by := g.Coord(i)
		dx := bx - ax
		if dx > W/2 {
			dx -= W
		} else if dx < -W/2 {
			dx += W
		}
		if dx < -1 || dx > 1 || by-ay != 1 {
			t.Fatalf("step %d from (%d,%d) to (%d,%d) is not one row downhill", k, ax, ay, bx, by)
		}
	}
	_, lastY := g.Coord(path[len(path)-1])
	if lastY != H-1 && len(path) != r.cfg.Rivers.MaxLength {
		t.Fatalf("path ended at row %d after %d steps", lastY, len(path))
	}
}

func TestRiverStopsAtMaxLength(t *testing.T) {
	const W, H = 16, 40
	w := newTestWorld(t, W, H)
	fill(w, func(x, y int) float32 { return 0.79 - 0.005*float32(y) })
	r := rampWorld(t, W, H)
	r.cfg.Rivers.MaxLength = 7
	if got := len(r.trace(w, 3, 0)); got != 7 {
		t.Fatalf("path length %d, want 7", got)
	}
}

func TestRiverStopsAtLake(t *testing.T) {
	const W, H = 8, 20
	w := newTestWorld(t, W, H)
	fill(w, func(x, y int) float32 { return 0.79 - 0.01*float32(y) })
	g := w.Grid()
	for x := 0; x < W; x++ {
		w.Lake[g.Index(x, 6)] = true
	}
	r := rampWorld(t, W, H)
	for _, i := range r.trace(w, 2, 0) {
		if _, y := g.Coord(i); y >= 6 {
			t.Fatalf("river entered or passed the lake row: %d", y)
		}
	}
}

func TestRiverProcessPicksValidSources(t *testing.T) {
	const W, H = 32, 32
	w := newTestWorld(t, W, H)
	fill(w, func(x, y int) float32 { return 0.1 })
	cfg := testConfig(W, H)
	cfg.Rivers.Sources = 3
	if err := NewRiverNetworkSimulator(cfg).Process(w, 1, 0); err != nil {
		t.Fatalf("process: %v", err)
	}
	for i, r := range w.River {
		if r {
			t.Fatalf("river at %d on terrain with no valid source", i)
		}
	}
}
