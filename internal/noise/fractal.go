// Package noise provides fractal noise fields and a cylindrical sampler that
// makes them seamless across the horizontal wrap of the map.
package noise

import (
	"github.com/chewxy/math32"
	"github.com/ojrac/opensimplex-go"
)

// Field is a continuous 3D scalar field with values roughly in [-1, 1].
type Field interface {
	At(x, y, z float32) float32
}

// Octaves configures a fractal sum.
type Octaves struct {
	Frequency  float32
	Count      int
	Lacunarity float32
	Gain       float32
}

// Fractal sums opensimplex octaves. Output is normalized by the total
// amplitude so it stays within [-1, 1].
type Fractal struct {
	src    opensimplex.Noise32
	oct    Octaves
	ridged bool
	bound  float32
}

// NewFBm returns a fractional Brownian motion field.
func NewFBm(seed uint32, oct Octaves) *Fractal {
	return newFractal(seed, oct, false)
}

// NewRidged returns a ridged multifractal field: each octave contributes
// 1-2|n| so creases of the base noise become crests.
func NewRidged(seed uint32, oct Octaves) *Fractal {
	return newFractal(seed, oct, true)
}

func newFractal(seed uint32, oct Octaves, ridged bool) *Fractal {
	if oct.Count < 1 {
		oct.Count = 1
	}
	if oct.Lacunarity == 0 {
		oct.Lacunarity = 2
	}
	if oct.Gain == 0 {
		oct.Gain = 0.5
	}
	amp, sum := float32(1), float32(0)
	for i := 0; i < oct.Count; i++ {
		sum += amp
		amp *= oct.Gain
	}
	return &Fractal{
		src:    opensimplex.New32(int64(seed)),
		oct:    oct,
		ridged: ridged,
		bound:  1 / sum,
	}
}

// At evaluates the field at a point in sample space; frequency is applied here.
func (f *Fractal) At(x, y, z float32) float32 {
	freq := f.oct.Frequency
	amp := float32(1)
	var sum float32
	for i := 0; i < f.oct.Count; i++ {
		n := f.src.Eval3(x*freq, y*freq, z*freq)
		if f.ridged {
			n = 1 - 2*math32.Abs(n)
		}
		sum += n * amp
		freq *= f.oct.Lacunarity
		amp *= f.oct.Gain
	}
	return sum * f.bound
}

// Cylinder maps grid columns onto a circle so that column 0 and column W are
// the same sample point.
type Cylinder struct {
	width  float32
	radius float32
	cos    []float32
	sin    []float32
}

// NewCylinder precomputes the circle for a grid of the given width.
func NewCylinder(width int) *Cylinder {
	w := float32(width)
	c := &Cylinder{
		width:  w,
		radius: w / (2 * math32.Pi),
		cos:    make([]float32, width),
		sin:    make([]float32, width),
	}
	for x := 0; x < width; x++ {
		angle := float32(x) / w * 2 * math32.Pi
		c.cos[x] = math32.Cos(angle)
		c.sin[x] = math32.Sin(angle)
	}
	return c
}

// Sample evaluates f at integer column x (wrapped) and row y.
func (c *Cylinder) Sample(f Field, x, y int) float32 {
	n := len(c.cos)
	x %= n
	if x < 0 {
		x += n
	}
	return f.At(c.radius*c.cos[x], float32(y), c.radius*c.sin[x])
}

// SampleUnit evaluates f and maps the result from [-1,1] into [0,1].
func (c *Cylinder) SampleUnit(f Field, x, y int) float32 {
	return (c.Sample(f, x, y) + 1) / 2
}
