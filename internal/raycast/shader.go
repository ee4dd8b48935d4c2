package raycast

// Shader quantizes continuous depth values into discrete shading bands.
// Band 0 is the darkest, band Bands-1 the brightest; the platform's palette
// table maps band indices to actual colors.
type Shader struct {
	Bands    int     // number of shading levels
	MaxDepth float64 // distance at which walls fade to the darkest band
}

// NewShader returns a shader with the given band count and depth cap.
func NewShader(bands int, maxDepth float64) Shader {
	return Shader{Bands: bands, MaxDepth: maxDepth}
}

// WallBand maps a hit distance to a band index. Thresholds are reciprocal
// (MaxDepth/i), giving near walls more visual resolution than a uniform
// split would. Distances at or beyond MaxDepth map to the darkest band.
func (s Shader) WallBand(distance float64) int {
	for i := s.Bands; i >= 1; i-- {
		if distance < s.MaxDepth/float64(i) {
			return i - 1
		}
	}
	return 0
}

// FloorBand maps a screen row below the horizon to a band index. The depth
// proxy is the row's normalized offset from the horizon: rows at the bottom
// of the screen are nearest and brightest, rows at the horizon darkest.
// Rows above the horizon are not floor and clamp to the darkest band.
func (s Shader) FloorBand(row, viewportHeight int) int {
	half := float64(viewportHeight) / 2
	if half <= 0 {
		return 0
	}
	b := (float64(row) - half) / half
	band := int(b * float64(s.Bands-1))
	if band < 0 {
		return 0
	}
	if band > s.Bands-1 {
		return s.Bands - 1
	}
	return band
}
