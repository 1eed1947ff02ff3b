package core

// Grid describes a row-major cell layout that wraps horizontally and is
// bounded vertically, i.e. the surface of a cylinder.
type Grid struct {
	W, H int
}

// NewGrid returns a Grid with the given dimensions. Callers validate sizes.
func NewGrid(w, h int) Grid { return Grid{W: w, H: h} }

// Len returns the number of cells.
func (g Grid) Len() int { return g.W * g.H }

// Index returns the linear slice index for coordinates (x, y). x must already
// be wrapped and y in range.
func (g Grid) Index(x, y int) int { return y*g.W + x }

// Coord converts a linear index back to coordinates.
func (g Grid) Coord(i int) (int, int) { return i % g.W, i / g.W }

// WrapX folds any column into [0, W).
func (g Grid) WrapX(x int) int {
	x %= g.W
	if x < 0 {
		x += g.W
	}
	return x
}

// ClampY pins a row to [0, H).
func (g Grid) ClampY(y int) int {
	if y < 0 {
		return 0
	}
	if y >= g.H {
		return g.H - 1
	}
	return y
}

// InRows reports whether y is a valid row.
func (g Grid) InRows(y int) bool { return y >= 0 && y < g.H }

// Neighbor returns the index of (x+dx, y+dy) with X wrapped. ok is false when
// the row falls off the grid.
func (g Grid) Neighbor(x, y, dx, dy int) (int, bool) {
	ny := y + dy
	if ny < 0 || ny >= g.H {
		return 0, false
	}
	return g.Index(g.WrapX(x+dx), ny), true
}

// ClampedNeighbor is like Neighbor but clamps the row instead of rejecting it.
func (g Grid) ClampedNeighbor(x, y, dx, dy int) int {
	return g.Index(g.WrapX(x+dx), g.ClampY(y+dy))
}

// DX4 and DY4 enumerate the cardinal directions N, E, S, W.
var (
	DX4 = [4]int{0, 1, 0, -1}
	DY4 = [4]int{-1, 0, 1, 0}
)
