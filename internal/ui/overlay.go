//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"strata/internal/render"
	"strata/internal/world"
)

// Overlay draws optional water masks on top of the base layer.
type Overlay struct {
	scale     float64
	showWater bool
	showWaves bool
	showMarsh bool

	img *ebiten.Image
	buf []byte
	tmp []bool
}

// NewOverlay constructs an overlay drawn at the given scale.
func NewOverlay(scale float64) *Overlay {
	return &Overlay{scale: scale}
}

// Update toggles masks with the digit keys.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showWater = !o.showWater
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showWaves = !o.showWaves
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit3) {
		o.showMarsh = !o.showMarsh
	}
}

// Draw renders every enabled mask of w onto screen.
func (o *Overlay) Draw(screen *ebiten.Image, w *world.World) {
	if w == nil {
		return
	}
	n := w.Len()
	if o.img == nil || o.img.Bounds().Dx() != w.Width() || o.img.Bounds().Dy() != w.Height() {
		o.img = ebiten.NewImage(w.Width(), w.Height())
		o.buf = make([]byte, 4*n)
		o.tmp = make([]bool, n)
	}
	if o.showWater {
		for i := range o.tmp {
			o.tmp[i] = w.Water(i)
		}
		o.drawMask(screen, o.tmp, color.RGBA{R: 64, G: 164, B: 223, A: 160})
	}
	if o.showWaves {
		o.drawMask(screen, w.WaveEligible, color.RGBA{R: 230, G: 240, B: 255, A: 140})
	}
	if o.showMarsh {
		o.drawMask(screen, w.MarshWater, color.RGBA{R: 90, G: 200, B: 120, A: 160})
	}
}

func (o *Overlay) drawMask(screen *ebiten.Image, mask []bool, tint color.RGBA) {
	render.FillMask(o.buf, mask, tint)
	o.img.WritePixels(o.buf)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(o.scale, o.scale)
	screen.DrawImage(o.img, op)
}
