package gen

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// rows fans fn out over contiguous row bands and waits for all of them.
// fn receives the half-open row range [y0, y1). Bands never overlap, so fn
// may write cells of its own rows without synchronization.
func rows(workers, height int, fn func(y0, y1 int) error) error {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > height {
		workers = height
	}
	if workers <= 1 {
		return fn(0, height)
	}
	band := (height + workers*4 - 1) / (workers * 4)
	if band < 1 {
		band = 1
	}
	var g errgroup.Group
	g.SetLimit(workers)
	for y0 := 0; y0 < height; y0 += band {
		y0, y1 := y0, min(y0+band, height)
		g.Go(func() error { return fn(y0, y1) })
	}
	return g.Wait()
}

// minMax is a per-band reduction slot.
type minMax struct {
	lo, hi float32
}
