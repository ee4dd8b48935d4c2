package core

import "testing"

func TestWallPaletteEndpoints(t *testing.T) {
	pal := WallPalette(20)
	if len(pal) != 20 {
		t.Fatalf("expected 20 bands, got %d", len(pal))
	}
	if pal[0] != 232 {
		t.Errorf("darkest wall band should be gray 232, got %d", pal[0])
	}
	if pal[19] != 255 {
		t.Errorf("brightest wall band should be gray 255, got %d", pal[19])
	}
}

func TestWallPaletteMonotone(t *testing.T) {
	for _, bands := range []int{2, 5, 20, 24} {
		pal := WallPalette(bands)
		for i := 1; i < len(pal); i++ {
			if pal[i] < pal[i-1] {
				t.Errorf("bands=%d: palette should not get darker, %d < %d at index %d",
					bands, pal[i], pal[i-1], i)
			}
		}
	}
}

func TestFloorPaletteEndpoints(t *testing.T) {
	pal := FloorPalette(20)
	if len(pal) != 20 {
		t.Fatalf("expected 20 bands, got %d", len(pal))
	}
	if pal[0] != 22 {
		t.Errorf("darkest floor band should be green 22, got %d", pal[0])
	}
	if pal[19] != 46 {
		t.Errorf("brightest floor band should be green 46, got %d", pal[19])
	}
}

func TestFloorPaletteUsesGreenAxis(t *testing.T) {
	// Every entry must land on the color cube's green axis:
	// 22, 28, 34, 40, 46.
	valid := map[Color]bool{22: true, 28: true, 34: true, 40: true, 46: true}
	pal := FloorPalette(20)
	for i, c := range pal {
		if !valid[c] {
			t.Errorf("index %d: color %d is not on the green axis", i, c)
		}
	}
}

func TestPaletteDegenerateBands(t *testing.T) {
	if WallPalette(0) != nil {
		t.Error("zero bands should yield no wall palette")
	}
	if FloorPalette(-1) != nil {
		t.Error("negative bands should yield no floor palette")
	}

	wall := WallPalette(1)
	if len(wall) != 1 || wall[0] != 255 {
		t.Errorf("single wall band should be brightest gray, got %v", wall)
	}
	floor := FloorPalette(1)
	if len(floor) != 1 || floor[0] != 46 {
		t.Errorf("single floor band should be brightest green, got %v", floor)
	}
}
