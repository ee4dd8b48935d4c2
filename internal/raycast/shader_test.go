package raycast

import "testing"

func TestWallBandMonotone(t *testing.T) {
	s := NewShader(20, 25.0)

	// Bands must never get brighter as distance grows.
	prev := s.Bands
	for d := 0.1; d < s.MaxDepth; d += 0.1 {
		band := s.WallBand(d)
		if band > prev {
			t.Fatalf("band increased from %d to %d at distance %v", prev, band, d)
		}
		if band < 0 || band >= s.Bands {
			t.Fatalf("band %d at distance %v outside [0, %d)", band, d, s.Bands)
		}
		prev = band
	}
}

func TestWallBandEndpoints(t *testing.T) {
	s := NewShader(20, 25.0)

	if got := s.WallBand(0.01); got != s.Bands-1 {
		t.Errorf("near wall should be brightest band %d, got %d", s.Bands-1, got)
	}
	if got := s.WallBand(s.MaxDepth); got != 0 {
		t.Errorf("saturated distance should be darkest band 0, got %d", got)
	}
	if got := s.WallBand(s.MaxDepth * 2); got != 0 {
		t.Errorf("beyond MaxDepth should be darkest band 0, got %d", got)
	}
}

func TestWallBandThresholds(t *testing.T) {
	// Thresholds are MaxDepth/i: with 4 bands over depth 8, a distance
	// just under 8/4=2 reads as band 3, just under 8/3 as band 2, etc.
	s := NewShader(4, 8.0)

	cases := []struct {
		dist float64
		want int
	}{
		{1.9, 3},
		{2.5, 2},
		{3.0, 1},
		{5.0, 0},
		{8.0, 0},
	}
	for _, tc := range cases {
		if got := s.WallBand(tc.dist); got != tc.want {
			t.Errorf("WallBand(%v) = %d, want %d", tc.dist, got, tc.want)
		}
	}
}

func TestFloorBandOrdering(t *testing.T) {
	s := NewShader(20, 25.0)
	rows := 24

	// Rows further below the horizon are nearer and must not get darker.
	prev := -1
	for row := rows / 2; row < rows; row++ {
		band := s.FloorBand(row, rows)
		if band < prev {
			t.Fatalf("band decreased from %d to %d at row %d", prev, band, row)
		}
		if band < 0 || band >= s.Bands {
			t.Fatalf("band %d at row %d outside [0, %d)", band, row, s.Bands)
		}
		prev = band
	}
}

func TestFloorBandAboveHorizonClamps(t *testing.T) {
	s := NewShader(20, 25.0)

	if got := s.FloorBand(0, 24); got != 0 {
		t.Errorf("row above horizon should clamp to band 0, got %d", got)
	}
	if got := s.FloorBand(5, 0); got != 0 {
		t.Errorf("degenerate viewport should return band 0, got %d", got)
	}
}
