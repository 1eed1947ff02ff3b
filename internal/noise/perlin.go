package noise

import (
	perlin "github.com/aquilax/go-perlin"
)

// Perlin adapts go-perlin to Field. alpha and beta follow go-perlin's
// weighting of successive octaves.
type Perlin struct {
	p    *perlin.Perlin
	freq float32
}

// NewPerlin builds a classic Perlin field with the given octave count.
func NewPerlin(seed uint32, frequency float32, octaves int32) *Perlin {
	return &Perlin{
		p:    perlin.NewPerlin(2, 2, octaves, int64(seed)),
		freq: frequency,
	}
}

// At evaluates the field, clamped into [-1, 1].
func (p *Perlin) At(x, y, z float32) float32 {
	v := float32(p.p.Noise3D(float64(x*p.freq), float64(y*p.freq), float64(z*p.freq)))
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
