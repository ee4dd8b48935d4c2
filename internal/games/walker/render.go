package walker

import (
	"fmt"

	"github.com/vovakirdan/raymaze/internal/core"
)

// Glyphs for the projection. Shading comes from cell colors, not from the
// glyph itself, so walls and floor each use a single dense rune.
const (
	wallRune  = '█'
	floorRune = '▒'
)

// Render draws the game to the screen: the raycast viewport with a one-line
// status bar under it, plus the optional map inset and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.cfgErr != nil {
		g.renderOverlay(dst, "Configuration error", g.cfgErr.Error())
		return
	}
	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}
	if g.maze == nil {
		return
	}

	g.renderViewport(dst)
	if g.showMap {
		g.renderMapInset(dst)
	}
	g.renderStatus(dst)

	switch {
	case g.completed:
		g.renderOverlay(dst, "Exit reached!", fmt.Sprintf("%d moves - press R to restart", g.moves))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderViewport casts one ray per column and paints the resulting wall
// slice and floor. The ceiling stays blank. Viewport height excludes the
// status line.
func (g *Game) renderViewport(dst *core.Screen) {
	cols := dst.Width()
	rows := dst.Height() - 1

	for col := 0; col < cols; col++ {
		angle := g.caster.ColumnAngle(g.player.Heading, g.player.FOV, col, cols)
		dist := g.caster.CastColumn(g.player.X, g.player.Y, angle, g.maze.Grid)

		// Projection: nearer walls produce taller slices. The ceiling row
		// count shrinks as the wall grows, clamped at the top of the screen.
		ceiling := rows/2 - int(float64(rows)/dist)
		if ceiling < 0 {
			ceiling = 0
		}
		floor := rows - ceiling

		wallColor := g.wallColors[g.shader.WallBand(dist)]
		for y := ceiling; y < floor; y++ {
			dst.SetCell(col, y, wallRune, wallColor)
		}
		for y := floor; y < rows; y++ {
			dst.SetCell(col, y, floorRune, g.floorColors[g.shader.FloorBand(y, rows)])
		}
	}
}

// renderMapInset draws a top-down view in the top-right corner: walls,
// the exit and the player's current cell.
func (g *Game) renderMapInset(dst *core.Screen) {
	grid := g.maze.Grid
	offX := dst.Width() - grid.Width() - 1
	if offX < 0 {
		offX = 0
	}

	for y := 0; y < grid.Height(); y++ {
		for x := 0; x < grid.Width(); x++ {
			r := ' '
			if grid.Wall(x, y) {
				r = '#'
			}
			dst.Set(offX+x, y, r)
		}
	}
	dst.Set(offX+g.maze.Exit.X, g.maze.Exit.Y, 'E')

	p := g.player.Cell()
	if grid.InBounds(p.X, p.Y) {
		dst.Set(offX+p.X, p.Y, '@')
	}
}

// renderStatus draws the bottom status line.
func (g *Game) renderStatus(dst *core.Screen) {
	var status string
	if g.mode == ModeExplore {
		status = fmt.Sprintf(" pos %.1f,%.1f  dir %.2f  fov %.2f  moves %d  cleared %d  [%dx%d]",
			g.player.X, g.player.Y,
			core.NormalizeAngle(g.player.Heading), g.player.FOV,
			g.moves, g.mazesCleared,
			g.maze.Grid.Width(), g.maze.Grid.Height())
	} else {
		status = fmt.Sprintf(" pos %.1f,%.1f  dir %.2f  fov %.2f  moves %d  [%dx%d]",
			g.player.X, g.player.Y,
			core.NormalizeAngle(g.player.Heading), g.player.FOV,
			g.moves,
			g.maze.Grid.Width(), g.maze.Grid.Height())
	}
	dst.DrawText(0, dst.Height()-1, status)
}

// renderOverlay draws a centered boxed message over the viewport.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	box := core.Rect{
		X: (dst.Width() - boxW) / 2,
		Y: (dst.Height() - boxH) / 2,
		W: boxW,
		H: boxH,
	}

	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
