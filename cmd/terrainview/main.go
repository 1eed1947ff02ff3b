//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"strata/internal/app"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	scale := flag.Float64("scale", 1, "pixel scale multiplier")
	hud := flag.Int("hud", 260, "HUD panel width in pixels")
	tps := flag.Int("tps", 30, "ticks per second")
	flag.Parse()

	// The full-size world does not fit a window; default to something viewable.
	if flags.Width == 0 && flags.Height == 0 && flags.ConfigPath == "" {
		flags.Width, flags.Height = 640, 400
	}
	cfg, err := flags.Resolve(nil)
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	game, err := app.New(cfg, *scale, *hud, logger)
	if err != nil {
		log.Fatal(err)
	}
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("strata")
	ebiten.SetTPS(*tps)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
