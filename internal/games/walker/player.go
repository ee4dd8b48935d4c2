package walker

import (
	"math"

	"github.com/vovakirdan/raymaze/internal/core"
	"github.com/vovakirdan/raymaze/internal/maze"
)

// Player holds the continuous first-person state: position in grid units,
// heading in radians and the current field of view.
type Player struct {
	X, Y    float64
	Heading float64
	FOV     float64
}

// Tuning holds the per-action deltas and the FOV clamp range.
type Tuning struct {
	MoveStep float64
	TurnStep float64
	FOVMin   float64
	FOVMax   float64
}

// Apply processes one input frame against the grid. Rotations and FOV
// changes always succeed; at most one translation is attempted per frame
// and it is rejected whole if the destination cell is a wall or outside
// the grid. Returns true if a translation was accepted.
func (p *Player) Apply(in core.InputFrame, t Tuning, g *maze.Grid) bool {
	if in.Has(core.ActionTurnLeft) {
		p.Heading -= t.TurnStep
	}
	if in.Has(core.ActionTurnRight) {
		p.Heading += t.TurnStep
	}
	if in.Has(core.ActionWidenFOV) {
		p.FOV = core.ClampF(p.FOV+t.TurnStep, t.FOVMin, t.FOVMax)
	}
	if in.Has(core.ActionNarrowFOV) {
		p.FOV = core.ClampF(p.FOV-t.TurnStep, t.FOVMin, t.FOVMax)
	}

	dx, dy, moving := 0.0, 0.0, false
	switch {
	case in.Has(core.ActionForward):
		dx, dy, moving = math.Cos(p.Heading), math.Sin(p.Heading), true
	case in.Has(core.ActionBackward):
		dx, dy, moving = -math.Cos(p.Heading), -math.Sin(p.Heading), true
	case in.Has(core.ActionStrafeLeft):
		dx, dy, moving = math.Sin(p.Heading), -math.Cos(p.Heading), true
	case in.Has(core.ActionStrafeRight):
		dx, dy, moving = -math.Sin(p.Heading), math.Cos(p.Heading), true
	}
	if !moving {
		return false
	}

	nx := p.X + dx*t.MoveStep
	ny := p.Y + dy*t.MoveStep
	if g.Wall(int(math.Floor(nx)), int(math.Floor(ny))) {
		return false
	}
	p.X, p.Y = nx, ny
	return true
}

// Cell returns the grid cell the player currently occupies.
func (p *Player) Cell() maze.Cell {
	return maze.Cell{X: int(math.Floor(p.X)), Y: int(math.Floor(p.Y))}
}
