// Package maze provides the occupancy grid and the randomized depth-first
// maze generator. Grids are built once by Generate and are read-only
// afterwards; nothing outside this package can mutate cells.
package maze

import (
	"fmt"
	"strings"
)

// Cell is a grid coordinate. X is the column, Y the row.
type Cell struct {
	X, Y int
}

// Grid is a dense 2D occupancy field. true marks a wall, false an open
// cell. Cells are stored row-major: index = y*width + x.
type Grid struct {
	width  int
	height int
	cells  []bool
}

// newGrid allocates a grid with every cell set to wall.
func newGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		cells:  make([]bool, width*height),
	}
	for i := range g.cells {
		g.cells[i] = true
	}
	return g
}

// Width returns the grid width in cells.
func (g *Grid) Width() int {
	return g.width
}

// Height returns the grid height in cells.
func (g *Grid) Height() int {
	return g.height
}

// InBounds reports whether (x, y) is a valid cell coordinate.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Wall reports whether the cell at (x, y) is a wall.
// Out-of-bounds coordinates count as walls.
func (g *Grid) Wall(x, y int) bool {
	if !g.InBounds(x, y) {
		return true
	}
	return g.cells[y*g.width+x]
}

// Open reports whether the cell at (x, y) is open (in bounds and not a wall).
func (g *Grid) Open(x, y int) bool {
	return g.InBounds(x, y) && !g.cells[y*g.width+x]
}

// setOpen carves the cell at (x, y). Generation-time only.
func (g *Grid) setOpen(x, y int) {
	g.cells[y*g.width+x] = false
}

// Parse builds a grid from newline-separated rows of '#' (wall) and ' '
// (open), the inverse of String. Rows shorter than the widest row are
// padded with walls.
func Parse(s string) (*Grid, error) {
	rows := strings.Split(s, "\n")
	height := len(rows)
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("maze: empty layout")
	}

	g := newGrid(width, height)
	for y, row := range rows {
		for x, ch := range row {
			switch ch {
			case '#':
				// already wall
			case ' ':
				g.setOpen(x, y)
			default:
				return nil, fmt.Errorf("maze: unexpected rune %q at (%d,%d)", ch, x, y)
			}
		}
	}
	return g, nil
}

// OpenCells returns every open cell in row-major order.
func (g *Grid) OpenCells() []Cell {
	var open []Cell
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.cells[y*g.width+x] {
				open = append(open, Cell{X: x, Y: y})
			}
		}
	}
	return open
}

// String renders the grid as rows of '#' (wall) and ' ' (open),
// joined with newlines. Useful for debugging and determinism checks.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
