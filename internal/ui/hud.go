//go:build ebiten

package ui

import (
	"fmt"
	"image"
	"image/color"

	"github.com/dustin/go-humanize"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"strata/internal/config"
	"strata/internal/gen"
	"strata/internal/world"
)

// HUD renders the parameter panel and run summary to the right of the map.
type HUD struct {
	width    int
	panel    *ebiten.Image
	pixel    *ebiten.Image
	controls []hudControlState
	offsetX  int

	lines []string
	dirty bool
}

type hudControlState struct {
	control   Control
	top       int
	minusRect image.Rectangle
	plusRect  image.Rectangle
}

// NewHUD constructs a HUD with the default control set.
func NewHUD(width int) *HUD {
	h := &HUD{width: max(width, 0)}
	h.pixel = ebiten.NewImage(1, 1)
	h.pixel.Fill(color.White)
	for _, c := range DefaultControls() {
		h.controls = append(h.controls, hudControlState{control: c})
	}
	h.layoutControls()
	return h
}

// Update handles clicks on the +/- buttons, editing cfg in place.
func (h *HUD) Update(cfg *config.Config, offsetX int) {
	h.offsetX = offsetX
	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	mx, my := ebiten.CursorPosition()
	px := mx - offsetX
	if px < 0 {
		return
	}
	for i := range h.controls {
		s := &h.controls[i]
		dir := 0
		switch {
		case pointInRect(px, my, s.minusRect):
			dir = -1
		case pointInRect(px, my, s.plusRect):
			dir = 1
		}
		if dir == 0 {
			continue
		}
		if changed, err := Adjust(cfg, s.control, dir); err == nil && changed {
			h.dirty = true
		}
		return
	}
}

// TakeDirty reports and clears whether a parameter changed since the last call.
func (h *HUD) TakeDirty() bool {
	d := h.dirty
	h.dirty = false
	return d
}

// SetSummary refreshes the run summary lines from the latest report and the
// tile under the cursor.
func (h *HUD) SetSummary(r *gen.Report, layer string, hover *world.Tile) {
	h.lines = h.lines[:0]
	if r != nil {
		h.lines = append(h.lines,
			fmt.Sprintf("seed %d  %dx%d", r.Seed, r.Width, r.Height),
			fmt.Sprintf("layer %s  %s", layer, r.Total.Round(1e6)),
			fmt.Sprintf("rivers %s  lakes %s", humanize.Comma(int64(r.RiverCells)), humanize.Comma(int64(r.LakeCells))),
		)
	}
	if hover != nil {
		h.lines = append(h.lines,
			fmt.Sprintf("(%d,%d) %s", hover.X, hover.Y, hover.Category),
			fmt.Sprintf("h=%.3f s=%.4f %s", hover.Height, hover.Slope, hover.Aspect),
		)
	}
}

// Draw paints the panel at the given x offset.
func (h *HUD) Draw(screen *ebiten.Image, cfg config.Config, offsetX, height int) {
	if h.width <= 0 || height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dy() != height {
		h.panel = ebiten.NewImage(h.width, height)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	face := basicfont.Face7x13
	text.Draw(h.panel, "Terrain Controls", face, panelPadding, panelPadding+headerBaseline, color.RGBA{R: 200, G: 200, B: 210, A: 255})

	fg := color.RGBA{R: 220, G: 220, B: 230, A: 255}
	for i := range h.controls {
		s := &h.controls[i]
		y := s.top + labelBaseline
		text.Draw(h.panel, s.control.Label, face, panelPadding, y, fg)
		v := Value(cfg, s.control)
		vx := s.minusRect.Min.X - buttonGap - text.BoundString(face, v).Dx()
		text.Draw(h.panel, v, face, vx, y, fg)
		h.drawButton(s.minusRect, "-")
		h.drawButton(s.plusRect, "+")
	}

	y := controlsTop + len(h.controls)*lineHeight + infoSpacing
	for _, line := range h.lines {
		text.Draw(h.panel, line, face, panelPadding, y, color.RGBA{R: 160, G: 160, B: 170, A: 255})
		y += 16
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

func (h *HUD) drawButton(rect image.Rectangle, label string) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(rect.Dx()), float64(rect.Dy()))
	op.GeoM.Translate(float64(rect.Min.X), float64(rect.Min.Y))
	op.ColorScale.Scale(54.0/255, 56.0/255, 64.0/255, 1)
	h.panel.DrawImage(h.pixel, op)

	face := basicfont.Face7x13
	b := text.BoundString(face, label)
	x := rect.Min.X + (rect.Dx()-b.Dx())/2
	y := rect.Min.Y + (rect.Dy()-b.Dy())/2 + b.Dy()
	text.Draw(h.panel, label, face, x, y, color.RGBA{R: 230, G: 230, B: 240, A: 255})
}

func (h *HUD) layoutControls() {
	for i := range h.controls {
		top := controlsTop + i*lineHeight
		by := top + (lineHeight-buttonSize)/2
		plus := image.Rect(h.width-panelPadding-buttonSize, by, h.width-panelPadding, by+buttonSize)
		minus := image.Rect(plus.Min.X-buttonGap-buttonSize, by, plus.Min.X-buttonGap, by+buttonSize)
		h.controls[i].top = top
		h.controls[i].minusRect = minus
		h.controls[i].plusRect = plus
	}
}

func pointInRect(x, y int, rect image.Rectangle) bool {
	return x >= rect.Min.X && x < rect.Max.X && y >= rect.Min.Y && y < rect.Max.Y
}

const (
	panelPadding   = 12
	lineHeight     = 36
	buttonSize     = 24
	buttonGap      = 6
	headerBaseline = 18
	labelBaseline  = 24
	infoSpacing    = 24
	controlsTop    = panelPadding + headerBaseline + 14
)
