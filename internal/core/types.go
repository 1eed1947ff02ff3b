package core

// Size describes the dimensions of a terrain grid.
type Size struct {
	W int
	H int
}

// Valid reports whether both dimensions are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// Cells returns W*H.
func (s Size) Cells() int { return s.W * s.H }

// Grid returns the cylinder geometry for this size.
func (s Size) Grid() Grid { return NewGrid(s.W, s.H) }
