package walker

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick         uint64
	Mode         string
	X            float64
	Y            float64
	Heading      float64
	FOV          float64
	MapW         int
	MapH         int
	Moves        int
	MazesCleared int
	Completed    bool
	Paused       bool
	Layout       string // maze rows as '#'/' ', newline-joined
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:         g.tick,
		Mode:         string(g.mode),
		X:            g.player.X,
		Y:            g.player.Y,
		Heading:      g.player.Heading,
		FOV:          g.player.FOV,
		Moves:        g.moves,
		MazesCleared: g.mazesCleared,
		Completed:    g.completed,
		Paused:       g.paused,
	}
	if g.maze != nil {
		s.MapW = g.maze.Grid.Width()
		s.MapH = g.maze.Grid.Height()
		s.Layout = g.maze.Grid.String()
	}
	return s
}
