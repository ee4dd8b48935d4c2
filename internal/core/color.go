package core

// Color is an ANSI 256-color code for a screen cell's foreground.
// The zero value means "terminal default" (unstyled).
type Color uint8

// ColorDefault leaves a cell unstyled.
const ColorDefault Color = 0

// ANSI 256-color ramps used to build shading palettes. The grayscale ramp
// occupies codes 232 (near black) through 255 (near white); the color cube
// green axis gives codes 22, 28, 34, 40, 46 from dark to bright.
const (
	grayRampStart = 232
	grayRampLen   = 24

	greenRampStart = 22
	greenRampStep  = 6
	greenRampLen   = 5
)

// WallPalette builds the wall shading palette for the given number of
// bands. Index 0 is the darkest band (far walls and saturated rays),
// index bands-1 the brightest (nearest walls).
func WallPalette(bands int) []Color {
	if bands < 1 {
		return nil
	}
	pal := make([]Color, bands)
	if bands == 1 {
		pal[0] = grayRampStart + grayRampLen - 1
		return pal
	}
	for i := range pal {
		pal[i] = Color(grayRampStart + i*(grayRampLen-1)/(bands-1))
	}
	return pal
}

// FloorPalette builds the floor shading palette for the given number of
// bands. Index 0 is the darkest band (the horizon), index bands-1 the
// brightest (nearest floor, bottom of the screen).
func FloorPalette(bands int) []Color {
	if bands < 1 {
		return nil
	}
	pal := make([]Color, bands)
	if bands == 1 {
		pal[0] = greenRampStart + greenRampStep*(greenRampLen-1)
		return pal
	}
	for i := range pal {
		step := i * (greenRampLen - 1) / (bands - 1)
		pal[i] = Color(greenRampStart + greenRampStep*step)
	}
	return pal
}
