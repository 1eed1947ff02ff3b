package world

import (
	"fmt"

	"strata/internal/core"
)

// World owns every per-cell buffer of a generated terrain. Buffers are
// allocated once and mutated in place by pipeline stages.
type World struct {
	grid core.Grid

	Heights      []float32
	Slopes       []float32
	Aspects      []Aspect
	River        []bool
	Lake         []bool
	WaveEligible []bool

	Categories      []Category
	MarshWater      []bool
	DistanceToLand  []int16
	DistanceToWater []int16

	finalized bool
}

// New allocates a world of the given size.
func New(width, height int) (*World, error) {
	size := core.Size{W: width, H: height}
	if !size.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	n := size.Cells()
	w := &World{
		grid:            size.Grid(),
		Heights:         make([]float32, n),
		Slopes:          make([]float32, n),
		Aspects:         make([]Aspect, n),
		River:           make([]bool, n),
		Lake:            make([]bool, n),
		WaveEligible:    make([]bool, n),
		Categories:      make([]Category, n),
		MarshWater:      make([]bool, n),
		DistanceToLand:  make([]int16, n),
		DistanceToWater: make([]int16, n),
	}
	for i := range w.DistanceToLand {
		w.DistanceToLand[i] = -1
		w.DistanceToWater[i] = -1
	}
	return w, nil
}

// Width returns the number of columns.
func (w *World) Width() int { return w.grid.W }

// Height returns the number of rows.
func (w *World) Height() int { return w.grid.H }

// Grid returns the cylinder geometry shared by every buffer.
func (w *World) Grid() core.Grid { return w.grid }

// Len returns the number of cells.
func (w *World) Len() int { return w.grid.Len() }

// Water reports whether cell i is masked as river or lake.
func (w *World) Water(i int) bool { return w.River[i] || w.Lake[i] }

// Finalize marks the world read-only for pipeline stages.
func (w *World) Finalize() { w.finalized = true }

// Finalized reports whether Finalize has been called.
func (w *World) Finalized() bool { return w.finalized }

// Tile returns the cell at (x, y). x wraps around the cylinder; y outside
// [0, height) yields ErrCoordinateOutOfRange.
func (w *World) Tile(x, y int) (Tile, error) {
	if !w.grid.InRows(y) {
		return Tile{}, fmt.Errorf("%w: y=%d height=%d", ErrCoordinateOutOfRange, y, w.grid.H)
	}
	x = w.grid.WrapX(x)
	i := w.grid.Index(x, y)
	c := w.Categories[i]
	return Tile{
		X:               x,
		Y:               y,
		Category:        c,
		Height:          w.Heights[i],
		Slope:           w.Slopes[i],
		Aspect:          w.Aspects[i],
		River:           w.River[i],
		Lake:            w.Lake[i],
		WaveEligible:    w.WaveEligible[i],
		MarshWater:      w.MarshWater[i],
		DistanceToLand:  w.DistanceToLand[i],
		DistanceToWater: w.DistanceToWater[i],
		Passable:        c.Passable(),
	}, nil
}
