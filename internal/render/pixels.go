// Package render converts world layers into RGBA pixel buffers.
package render

import (
	"image/color"
	"math"

	"strata/internal/world"
)

// Layer selects which world field is painted as the base image.
type Layer uint8

const (
	LayerCategory Layer = iota
	LayerElevation
	LayerSlope
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerCategory:
		return "category"
	case LayerElevation:
		return "elevation"
	case LayerSlope:
		return "slope"
	}
	return "unknown"
}

// Next cycles through the base layers.
func (l Layer) Next() Layer { return (l + 1) % layerCount }

var categoryPalette = map[world.Category]color.RGBA{
	world.Void:          {A: 255},
	world.Meadow:        {R: 118, G: 170, B: 72, A: 255},
	world.Plains:        {R: 150, G: 182, B: 92, A: 255},
	world.DryPlains:     {R: 190, G: 180, B: 110, A: 255},
	world.Hills:         {R: 112, G: 140, B: 70, A: 255},
	world.Moor:          {R: 120, G: 110, B: 90, A: 255},
	world.Plateau:       {R: 160, G: 140, B: 100, A: 255},
	world.SteepSlope:    {R: 130, G: 115, B: 95, A: 255},
	world.RockySlope:    {R: 125, G: 120, B: 115, A: 255},
	world.Cliff:         {R: 90, G: 80, B: 75, A: 255},
	world.MountainLower: {R: 140, G: 130, B: 120, A: 255},
	world.MountainMid:   {R: 165, G: 160, B: 155, A: 255},
	world.MountainUpper: {R: 195, G: 192, B: 190, A: 255},
	world.SnowPeak:      {R: 245, G: 248, B: 252, A: 255},
	world.Marsh:         {R: 80, G: 110, B: 85, A: 255},
	world.RiverWater:    {R: 60, G: 120, B: 200, A: 255},
	world.LakeWater:     {R: 40, G: 80, B: 160, A: 255},
	world.PondWater:     {R: 70, G: 130, B: 170, A: 255},
	world.BorderWall:    {R: 30, G: 30, B: 30, A: 255},
}

// CategoryPalette returns a palette indexed by world.Category.
func CategoryPalette() []color.RGBA {
	cats := world.Categories()
	out := make([]color.RGBA, len(cats))
	for _, c := range cats {
		out[c] = categoryPalette[c]
	}
	return out
}

// Fill paints layer l of w into buf, which must hold 4*w.Len() bytes.
func Fill(buf []byte, w *world.World, l Layer, palette []color.RGBA) {
	switch l {
	case LayerElevation:
		fillElevation(buf, w.Heights)
	case LayerSlope:
		fillSlope(buf, w.Slopes)
	default:
		fillPaletteRGBA(buf, w.Categories, palette)
	}
}

// fillPaletteRGBA converts categories into RGBA pixels using a palette. When
// the palette is empty the buffer is cleared to transparent black.
func fillPaletteRGBA(buf []byte, cells []world.Category, palette []color.RGBA) {
	if len(palette) == 0 {
		clear(buf[:4*len(cells)])
		return
	}
	last := len(palette) - 1
	for i, c := range cells {
		idx := int(c)
		if idx > last {
			idx = last
		}
		put(buf, i, palette[idx])
	}
}

func fillElevation(buf []byte, heights []float32) {
	for i, h := range heights {
		put(buf, i, elevationColor(float64(h)))
	}
}

// fillSlope shades slopes relative to the steepest cell.
func fillSlope(buf []byte, slopes []float32) {
	var peak float32
	for _, s := range slopes {
		peak = max(peak, s)
	}
	if peak <= 0 {
		peak = 1
	}
	for i, s := range slopes {
		v := uint8(math.Round(255 * math.Sqrt(clamp01(float64(s/peak)))))
		put(buf, i, color.RGBA{R: v, G: v, B: v, A: 255})
	}
}

// FillMask paints set cells with tint and clears the rest to transparent.
func FillMask(buf []byte, mask []bool, tint color.RGBA) {
	for i, on := range mask {
		if on {
			put(buf, i, tint)
			continue
		}
		put(buf, i, color.RGBA{})
	}
}

func put(buf []byte, i int, c color.RGBA) {
	base := i * 4
	buf[base+0] = c.R
	buf[base+1] = c.G
	buf[base+2] = c.B
	buf[base+3] = c.A
}

func elevationColor(t float64) color.RGBA {
	t = clamp01(t)
	stops := []struct {
		t   float64
		col color.RGBA
	}{
		{0.0, color.RGBA{R: 20, G: 40, B: 110, A: 255}},
		{0.25, color.RGBA{R: 70, G: 105, B: 160, A: 255}},
		{0.4, color.RGBA{R: 90, G: 150, B: 100, A: 255}},
		{0.7, color.RGBA{R: 190, G: 160, B: 80, A: 255}},
		{1.0, color.RGBA{R: 240, G: 235, B: 215, A: 255}},
	}
	for i := 1; i < len(stops); i++ {
		curr := stops[i]
		if t <= curr.t {
			prev := stops[i-1]
			span := curr.t - prev.t
			var local float64
			if span > 0 {
				local = (t - prev.t) / span
			}
			return lerpRGBA(prev.col, curr.col, clamp01(local))
		}
	}
	return stops[len(stops)-1].col
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	return color.RGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
