//go:build ebiten

package app

import (
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"strata/internal/config"
	"strata/internal/gen"
	"strata/internal/render"
	"strata/internal/ui"
	"strata/internal/world"
)

// Game adapts the terrain pipeline to the ebiten.Game interface.
type Game struct {
	cfg     config.Config
	log     *slog.Logger
	world   *world.World
	report  *gen.Report
	painter *render.Painter
	overlay *ui.Overlay
	hud     *ui.HUD

	layer     render.Layer
	scale     float64
	hudWidth  int
	repaint   bool
	hoverX    int
	hoverY    int
	hoverTile *world.Tile
}

// New generates the first world from cfg and returns a viewer for it.
func New(cfg config.Config, scale float64, hudWidth int, log *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		log:      log,
		scale:    scale,
		hudWidth: hudWidth,
		overlay:  ui.NewOverlay(scale),
		hud:      ui.NewHUD(hudWidth),
		hoverX:   -1,
	}
	if err := g.Regenerate(); err != nil {
		return nil, err
	}
	return g, nil
}

// Regenerate runs the pipeline again with the current configuration.
func (g *Game) Regenerate() error {
	w, rep, err := gen.Generate(g.cfg, gen.WithLogger(g.log))
	if err != nil {
		return err
	}
	g.world, g.report = w, rep
	if g.painter == nil {
		g.painter = render.NewPainter(w.Width(), w.Height())
	}
	g.repaint = true
	g.hoverX = -1
	g.log.Info("world regenerated", "seed", rep.Seed, "total", rep.Total)
	return nil
}

// Update handles per-frame input.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	regen := false
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		regen = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.cfg.Seed = uint32(time.Now().UnixNano())
		regen = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.cfg.Seed++
		regen = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.layer = g.layer.Next()
		g.repaint = true
	}
	g.overlay.Update()
	g.hud.Update(&g.cfg, g.mapWidth())
	if g.hud.TakeDirty() {
		regen = true
	}
	if regen {
		if err := g.Regenerate(); err != nil {
			g.log.Error("regenerate failed", "err", err)
		}
	}
	g.updateHover()
	return nil
}

func (g *Game) updateHover() {
	mx, my := ebiten.CursorPosition()
	x, y := int(float64(mx)/g.scale), int(float64(my)/g.scale)
	if x == g.hoverX && y == g.hoverY {
		return
	}
	g.hoverX, g.hoverY = x, y
	g.hoverTile = nil
	if x >= 0 && x < g.world.Width() {
		if t, err := g.world.Tile(x, y); err == nil {
			g.hoverTile = &t
		}
	}
	g.hud.SetSummary(g.report, g.layer.String(), g.hoverTile)
}

// Draw renders the map, overlays and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.repaint {
		g.painter.Update(g.world, g.layer)
		g.hud.SetSummary(g.report, g.layer.String(), g.hoverTile)
		g.repaint = false
	}
	g.painter.Draw(screen, g.scale)
	g.overlay.Draw(screen, g.world)
	_, h := g.Layout(0, 0)
	g.hud.Draw(screen, g.cfg, g.mapWidth(), h)
}

func (g *Game) mapWidth() int { return int(float64(g.cfg.Width) * g.scale) }

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.mapWidth() + g.hudWidth, int(float64(g.cfg.Height) * g.scale)
}
