package maze

import (
	"fmt"
	"math/rand"
)

// MinSize is the smallest generatable maze dimension. Below this the seed
// tunnel would write outside the grid.
const MinSize = 5

// Maze is the output of the generator: an immutable occupancy grid plus
// the entrance/exit punctures and the player spawn point.
type Maze struct {
	Grid  *Grid
	Entry Cell // open border cell on the top wall
	Exit  Cell // open border cell near the far corner
	// Spawn is the continuous spawn position, just inside the entrance.
	SpawnX, SpawnY float64
}

// carveDirs are the four cardinal carving directions, cycled in order
// when a step is blocked.
var carveDirs = [4]Cell{
	{X: 1, Y: 0},  // east
	{X: 0, Y: 1},  // south
	{X: -1, Y: 0}, // west
	{X: 0, Y: -1}, // north
}

// carver is the carving state machine: a cursor cell, a current direction
// and the number of consecutive blocked attempts. It walks the grid opening
// two-cell corridors until all four directions fail from the cursor.
type carver struct {
	grid     *Grid
	rng      *rand.Rand
	x, y     int
	dir      int
	attempts int
}

// run drives the walk to exhaustion and returns how many cells it opened.
func (c *carver) run() int {
	opened := 0
	for c.attempts < 4 {
		if c.step() {
			opened += 2
		}
	}
	return opened
}

// step tries one carve in the current direction. The corridor cell and the
// landing cell must both still be walls, which is what keeps already-carved
// passages from merging (and the open subgraph a tree). On success the
// cursor moves two cells and picks a fresh random direction; on failure the
// direction cycles and the attempt counter grows.
func (c *carver) step() bool {
	d := carveDirs[c.dir]
	x1, y1 := c.x+d.X, c.y+d.Y
	x2, y2 := x1+d.X, y1+d.Y

	if x2 > 0 && x2 < c.grid.width && y2 > 0 && y2 < c.grid.height &&
		c.grid.Wall(x1, y1) && c.grid.Wall(x2, y2) {
		c.grid.setOpen(x1, y1)
		c.grid.setOpen(x2, y2)
		c.x, c.y = x2, y2
		c.dir = c.rng.Intn(4)
		c.attempts = 0
		return true
	}

	c.dir = (c.dir + 1) % 4
	c.attempts++
	return false
}

// Generate builds a maze of the given dimensions using the supplied RNG.
// Width and height must be odd and at least MinSize so the two-cell carving
// stride lines up with the border walls.
//
// The grid starts solid, a two-cell seed tunnel is opened below the
// entrance, and then carving walks are launched from open odd-aligned cells
// until a full scan opens nothing. Launching only from open cells keeps
// every corridor connected to the seed tunnel; the scan repeats because a
// walk may unblock cells behind earlier scan positions.
func Generate(width, height int, rng *rand.Rand) (*Maze, error) {
	if width < MinSize || height < MinSize {
		return nil, fmt.Errorf("maze: dimensions %dx%d below minimum %dx%d", width, height, MinSize, MinSize)
	}
	if width%2 == 0 || height%2 == 0 {
		return nil, fmt.Errorf("maze: dimensions %dx%d must be odd", width, height)
	}

	g := newGrid(width, height)

	// Seed tunnel below the entrance.
	g.setOpen(1, 1)
	g.setOpen(1, 2)

	for {
		opened := 0
		for y := 1; y < height; y += 2 {
			for x := 1; x < width; x += 2 {
				if !g.Open(x, y) {
					continue
				}
				c := &carver{grid: g, rng: rng, x: x, y: y, dir: rng.Intn(4)}
				opened += c.run()
			}
		}
		if opened == 0 {
			break
		}
	}

	// Puncture the entrance on the top wall and the exit near the far corner.
	entry := Cell{X: 1, Y: 0}
	exit := Cell{X: width - 2, Y: height - 1}
	g.setOpen(entry.X, entry.Y)
	g.setOpen(exit.X, exit.Y)

	return &Maze{
		Grid:   g,
		Entry:  entry,
		Exit:   exit,
		SpawnX: 1.5,
		SpawnY: 0.5,
	}, nil
}
