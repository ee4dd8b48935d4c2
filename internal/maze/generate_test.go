package maze

import (
	"math/rand"
	"testing"
)

func TestGenerateRejectsBadDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	cases := []struct {
		name string
		w, h int
	}{
		{"too narrow", 3, 9},
		{"too short", 9, 3},
		{"even width", 10, 9},
		{"even height", 9, 10},
		{"zero", 0, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Generate(tc.w, tc.h, rng); err == nil {
				t.Errorf("Generate(%d, %d) should fail", tc.w, tc.h)
			}
		})
	}
}

func TestBorderWalls(t *testing.T) {
	m, err := Generate(23, 17, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g := m.Grid

	for x := 0; x < g.Width(); x++ {
		for _, y := range []int{0, g.Height() - 1} {
			c := Cell{X: x, Y: y}
			if c == m.Entry || c == m.Exit {
				continue
			}
			if !g.Wall(x, y) {
				t.Errorf("border cell (%d,%d) should be wall", x, y)
			}
		}
	}
	for y := 0; y < g.Height(); y++ {
		for _, x := range []int{0, g.Width() - 1} {
			if !g.Wall(x, y) {
				t.Errorf("border cell (%d,%d) should be wall", x, y)
			}
		}
	}
}

func TestEntryAndExitOpen(t *testing.T) {
	m, err := Generate(15, 15, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !m.Grid.Open(m.Entry.X, m.Entry.Y) {
		t.Errorf("entry (%d,%d) should be open", m.Entry.X, m.Entry.Y)
	}
	if !m.Grid.Open(m.Exit.X, m.Exit.Y) {
		t.Errorf("exit (%d,%d) should be open", m.Exit.X, m.Exit.Y)
	}
	if m.Entry != (Cell{X: 1, Y: 0}) {
		t.Errorf("entry should be (1,0), got (%d,%d)", m.Entry.X, m.Entry.Y)
	}
	if m.Exit != (Cell{X: 13, Y: 14}) {
		t.Errorf("exit should be (13,14), got (%d,%d)", m.Exit.X, m.Exit.Y)
	}
}

func TestSpawnInsideEntrance(t *testing.T) {
	m, err := Generate(9, 9, rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if int(m.SpawnX) != m.Entry.X || int(m.SpawnY) != m.Entry.Y {
		t.Errorf("spawn (%.1f,%.1f) should be inside entry cell (%d,%d)",
			m.SpawnX, m.SpawnY, m.Entry.X, m.Entry.Y)
	}
}

// bfsFrom returns the number of open cells reachable from start by
// orthogonal steps.
func bfsFrom(g *Grid, start Cell) int {
	visited := map[Cell]bool{start: true}
	queue := []Cell{start}
	dirs := []Cell{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		for _, d := range dirs {
			n := Cell{X: c.X + d.X, Y: c.Y + d.Y}
			if !visited[n] && g.Open(n.X, n.Y) {
				visited[n] = true
				queue = append(queue, n)
			}
		}
	}
	return len(visited)
}

func TestAllOpenCellsReachableFromEntry(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		m, err := Generate(23, 23, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}

		open := len(m.Grid.OpenCells())
		reached := bfsFrom(m.Grid, m.Entry)
		if reached != open {
			t.Errorf("seed %d: reached %d of %d open cells from entry", seed, reached, open)
		}
	}
}

func TestOddInteriorCellsOpen(t *testing.T) {
	m, err := Generate(21, 13, rand.New(rand.NewSource(11)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	g := m.Grid

	for y := 1; y < g.Height(); y += 2 {
		for x := 1; x < g.Width(); x += 2 {
			if !g.Open(x, y) {
				t.Errorf("odd interior cell (%d,%d) should be open", x, y)
			}
		}
	}
}

func TestCorridorsNearlyAcyclic(t *testing.T) {
	// The carving only joins wall pairs, so the open subgraph is a tree up
	// to the seed tunnel, which may close at most one loop.
	for seed := int64(0); seed < 25; seed++ {
		m, err := Generate(17, 17, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("seed %d: Generate failed: %v", seed, err)
		}
		g := m.Grid

		vertices := len(g.OpenCells())
		edges := 0
		for _, c := range g.OpenCells() {
			// Count right and down neighbors once per pair.
			if g.Open(c.X+1, c.Y) {
				edges++
			}
			if g.Open(c.X, c.Y+1) {
				edges++
			}
		}

		cycles := edges - vertices + 1
		if cycles < 0 || cycles > 1 {
			t.Errorf("seed %d: expected 0 or 1 cycles, got %d (V=%d, E=%d)",
				seed, cycles, vertices, edges)
		}
	}
}

func TestDeterministicLayout(t *testing.T) {
	m1, err := Generate(23, 23, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	m2, err := Generate(23, 23, rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if m1.Grid.String() != m2.Grid.String() {
		t.Error("same seed should produce identical layouts")
	}

	m3, err := Generate(23, 23, rand.New(rand.NewSource(43)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if m1.Grid.String() == m3.Grid.String() {
		t.Error("different seeds should produce different layouts")
	}
}

func TestParseRoundTrip(t *testing.T) {
	m, err := Generate(11, 9, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	parsed, err := Parse(m.Grid.String())
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if parsed.String() != m.Grid.String() {
		t.Error("Parse(String()) should reproduce the layout")
	}
}

func TestParseRejectsUnknownRunes(t *testing.T) {
	if _, err := Parse("###\n#x#\n###"); err == nil {
		t.Error("Parse should reject unknown runes")
	}
}

func TestWallOutOfBounds(t *testing.T) {
	g, err := Parse("###\n# #\n###")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if !g.Wall(-1, 0) || !g.Wall(0, -1) || !g.Wall(3, 0) || !g.Wall(0, 3) {
		t.Error("out-of-bounds coordinates should count as walls")
	}
	if g.Open(-1, 0) || g.Open(3, 3) {
		t.Error("out-of-bounds coordinates should not be open")
	}
}
