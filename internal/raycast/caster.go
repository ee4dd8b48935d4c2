// Package raycast computes per-column wall distances and shading bands for
// the first-person projection. It knows nothing about screens or colors;
// the frame renderer turns its outputs into cell writes.
package raycast

import (
	"math"

	"github.com/vovakirdan/raymaze/internal/maze"
)

// Caster marches rays across an occupancy grid in fixed increments.
// Step controls the accuracy/performance trade-off: the whole-frame cost is
// O(columns × MaxDepth/Step), the dominant per-frame cost of the renderer.
type Caster struct {
	MaxDepth float64 // how far a ray may travel before saturating
	Step     float64 // march increment in grid units
}

// NewCaster returns a caster with the given depth cap and march increment.
func NewCaster(maxDepth, step float64) Caster {
	return Caster{MaxDepth: maxDepth, Step: step}
}

// ColumnAngle returns the ray heading for screen column col out of cols,
// fanning the field of view linearly with column 0 at the leftmost ray.
func (c Caster) ColumnAngle(heading, fov float64, col, cols int) float64 {
	return heading - fov/2 + (float64(col)/float64(cols))*fov
}

// CastColumn marches a ray from (px, py) along angle and returns the
// distance to the first wall cell. Rays that leave the grid or travel
// MaxDepth without hitting anything return exactly MaxDepth; neither is an
// error, both shade as the darkest band.
func (c Caster) CastColumn(px, py, angle float64, g *maze.Grid) float64 {
	ux := math.Cos(angle)
	uy := math.Sin(angle)

	for dist := c.Step; dist < c.MaxDepth; dist += c.Step {
		tx := int(math.Floor(px + ux*dist))
		ty := int(math.Floor(py + uy*dist))

		if !g.InBounds(tx, ty) {
			// Ray escaped the map; clamp so shading needs no special case.
			return c.MaxDepth
		}
		if g.Wall(tx, ty) {
			return dist
		}
	}
	return c.MaxDepth
}
