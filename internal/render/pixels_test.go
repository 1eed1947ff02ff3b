package render

import (
	"image/color"
	"testing"

	"strata/internal/world"
)

func TestCategoryPaletteCoversEveryCategory(t *testing.T) {
	p := CategoryPalette()
	if len(p) != len(world.Categories()) {
		t.Fatalf("palette has %d entries, want %d", len(p), len(world.Categories()))
	}
	for _, c := range world.Categories() {
		if p[c].A != 255 {
			t.Fatalf("category %s has no opaque colour", c)
		}
	}
}

func TestFillCategoryUsesPalette(t *testing.T) {
	w, err := world.New(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	w.Categories[0] = world.LakeWater
	w.Categories[1] = world.SnowPeak
	w.Categories[2] = world.Category(200)
	palette := CategoryPalette()
	buf := make([]byte, 12)
	Fill(buf, w, LayerCategory, palette)

	lake := palette[world.LakeWater]
	if buf[0] != lake.R || buf[1] != lake.G || buf[2] != lake.B {
		t.Fatalf("lake pixel = %v", buf[0:4])
	}
	last := palette[len(palette)-1]
	if buf[8] != last.R || buf[11] != last.A {
		t.Fatalf("out-of-range category should clamp to last entry, got %v", buf[8:12])
	}
}

func TestFillPaletteEmptyClears(t *testing.T) {
	buf := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	fillPaletteRGBA(buf, []world.Category{world.Meadow, world.Hills}, nil)
	for i, b := range buf {
		if b != 0 {
			t.Fatalf("byte %d = %d, want 0", i, b)
		}
	}
}

func TestElevationColorEndpoints(t *testing.T) {
	lo := elevationColor(-1)
	hi := elevationColor(2)
	if lo != (color.RGBA{R: 20, G: 40, B: 110, A: 255}) {
		t.Fatalf("low clamp = %v", lo)
	}
	if hi != (color.RGBA{R: 240, G: 235, B: 215, A: 255}) {
		t.Fatalf("high clamp = %v", hi)
	}
	mid := elevationColor(0.325)
	if mid.G <= 105 || mid.G >= 150 {
		t.Fatalf("mid green %d should interpolate between stops", mid.G)
	}
}

func TestFillSlopeScalesToPeak(t *testing.T) {
	buf := make([]byte, 8)
	fillSlope(buf, []float32{0, 0.2})
	if buf[0] != 0 || buf[4] != 255 {
		t.Fatalf("slope shades = %d,%d", buf[0], buf[4])
	}
	fillSlope(buf, []float32{0, 0})
	if buf[4] != 0 {
		t.Fatalf("flat field should be black, got %d", buf[4])
	}
}

func TestFillMaskTransparentOff(t *testing.T) {
	tint := color.RGBA{R: 10, G: 20, B: 30, A: 128}
	buf := []byte{9, 9, 9, 9, 9, 9, 9, 9}
	FillMask(buf, []bool{true, false}, tint)
	if buf[0] != 10 || buf[3] != 128 {
		t.Fatalf("on pixel = %v", buf[0:4])
	}
	if buf[4] != 0 || buf[7] != 0 {
		t.Fatalf("off pixel = %v", buf[4:8])
	}
}

func TestLayerNextCycles(t *testing.T) {
	l := LayerCategory
	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		seen[l.String()] = true
		l = l.Next()
	}
	if l != LayerCategory || len(seen) != 3 {
		t.Fatalf("cycle ended at %s after %v", l, seen)
	}
}
