//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"strata/internal/world"
)

// Painter keeps one RGBA image in sync with a world layer.
type Painter struct {
	w, h    int
	img     *ebiten.Image
	buf     []byte
	palette []color.RGBA
}

// NewPainter allocates a painter for a grid of size w*h.
func NewPainter(w, h int) *Painter {
	return &Painter{
		w:       w,
		h:       h,
		img:     ebiten.NewImage(w, h),
		buf:     make([]byte, 4*w*h),
		palette: CategoryPalette(),
	}
}

// Update repaints the cached image from the given layer.
func (p *Painter) Update(w *world.World, l Layer) {
	if w.Len() != p.w*p.h {
		return
	}
	Fill(p.buf, w, l, p.palette)
	p.img.WritePixels(p.buf)
}

// Draw blits the cached image at the given scale.
func (p *Painter) Draw(dst *ebiten.Image, scale float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	dst.DrawImage(p.img, op)
}

// Size returns the dimensions of the underlying image.
func (p *Painter) Size() (int, int) { return p.w, p.h }
