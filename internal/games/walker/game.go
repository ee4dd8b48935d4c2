// Package walker implements the first-person maze walker: a procedurally
// generated maze explored through a raycast pseudo-3D projection.
//
// Two modes share the same simulation. Explore regenerates a fresh maze
// every time the exit is reached; race ends at the first exit so the run
// can be recorded.
package walker

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/raymaze/internal/config"
	"github.com/vovakirdan/raymaze/internal/core"
	"github.com/vovakirdan/raymaze/internal/maze"
	"github.com/vovakirdan/raymaze/internal/raycast"
	"github.com/vovakirdan/raymaze/internal/registry"
)

// Mode represents the game mode.
type Mode string

const (
	ModeExplore Mode = "explore"
	ModeRace    Mode = "race"
)

// Game implements the maze walker.
type Game struct {
	mode Mode
	rng  *rand.Rand
	tick uint64

	cfg    config.WalkerConfig
	cfgErr error

	// World state
	maze   *maze.Maze
	caster raycast.Caster
	shader raycast.Shader
	player Player
	tuning Tuning

	// Palettes, rebuilt on Reset from the band count
	wallColors  []core.Color
	floorColors []core.Color

	// Progress
	moves        int // accepted translations
	mazesCleared int // explore mode: exits reached so far
	completed    bool

	// Screen dimensions
	screenW int
	screenH int

	// Flags
	paused   bool
	showMap  bool
	tooSmall bool
}

// Package-level variables for config and CLI overrides (like snake pattern)
var (
	configPath  string
	mapWidthOv  int
	mapHeightOv int
	maxDepthOv  float64
	rayStepOv   float64
	bandsOv     int
)

// SetConfigPath sets the config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetMapSize overrides the configured maze dimensions. Zero keeps the
// configured value.
func SetMapSize(width, height int) {
	mapWidthOv = width
	mapHeightOv = height
}

// SetRenderParams overrides the configured ray-marching parameters.
// Zero keeps the configured value.
func SetRenderParams(maxDepth, step float64, bands int) {
	maxDepthOv = maxDepth
	rayStepOv = step
	bandsOv = bands
}

// New creates a new explore mode game.
func New() *Game {
	return &Game{
		mode: ModeExplore,
	}
}

// NewRace creates a new race mode game.
func NewRace() *Game {
	return &Game{
		mode: ModeRace,
	}
}

func init() {
	registry.Register("explore", func() registry.Game {
		return New()
	})
	registry.Register("race", func() registry.Game {
		return NewRace()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeRace {
		return "Maze Race"
	}
	return "Maze Explorer"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.moves = 0
	g.mazesCleared = 0
	g.completed = false
	g.paused = false
	g.showMap = false
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.cfg, g.cfgErr = config.LoadWalker(configPath)
	if g.cfgErr != nil {
		return
	}
	if mapWidthOv > 0 {
		g.cfg.Map.Width = mapWidthOv
	}
	if mapHeightOv > 0 {
		g.cfg.Map.Height = mapHeightOv
	}
	if maxDepthOv > 0 {
		g.cfg.Render.MaxDepth = maxDepthOv
	}
	if rayStepOv > 0 {
		g.cfg.Render.Step = rayStepOv
	}
	if bandsOv > 0 {
		g.cfg.Render.Bands = bandsOv
	}
	if g.cfgErr = g.cfg.Validate(); g.cfgErr != nil {
		return
	}

	g.caster = raycast.NewCaster(g.cfg.Render.MaxDepth, g.cfg.Render.Step)
	g.shader = raycast.NewShader(g.cfg.Render.Bands, g.cfg.Render.MaxDepth)
	g.wallColors = core.WallPalette(g.cfg.Render.Bands)
	g.floorColors = core.FloorPalette(g.cfg.Render.Bands)
	g.tuning = Tuning{
		MoveStep: g.cfg.Player.MoveStep,
		TurnStep: g.cfg.Player.TurnStep,
		FOVMin:   g.cfg.Player.FOVMin,
		FOVMax:   g.cfg.Player.FOVMax,
	}

	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH

	g.newMaze()
}

// Minimum screen for a viewport plus the status line.
const (
	minScreenW = 20
	minScreenH = 6
)

// newMaze generates a fresh maze and respawns the player at its entrance,
// facing into the maze.
func (g *Game) newMaze() {
	m, err := maze.Generate(g.cfg.Map.Width, g.cfg.Map.Height, g.rng)
	if err != nil {
		g.cfgErr = err
		return
	}
	g.maze = m
	g.player = Player{
		X:       m.SpawnX,
		Y:       m.SpawnY,
		Heading: math.Pi / 2,
		FOV:     g.cfg.Player.FOV,
	}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if g.cfgErr != nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if input.Has(core.ActionRestart) && g.completed {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if input.Has(core.ActionToggleMap) {
		g.showMap = !g.showMap
	}

	if g.completed || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.player.Apply(input, g.tuning, g.maze.Grid) {
		g.moves++
		g.checkExit()
	}

	return core.StepResult{State: g.State()}
}

// checkExit handles the player stepping onto the exit cell.
func (g *Game) checkExit() {
	if g.player.Cell() != g.maze.Exit {
		return
	}
	g.mazesCleared++
	if g.mode == ModeRace {
		g.completed = true
		return
	}
	g.newMaze()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	mapW, mapH := 0, 0
	if g.maze != nil {
		mapW = g.maze.Grid.Width()
		mapH = g.maze.Grid.Height()
	}
	return core.GameState{
		Moves:     g.moves,
		Ticks:     int(g.tick),
		MapW:      mapW,
		MapH:      mapH,
		Completed: g.completed,
		GameOver:  g.completed,
		Paused:    g.paused,
	}
}

// ConfigError returns the configuration error from the last Reset, if any.
// The platform surfaces it before entering the session loop.
func (g *Game) ConfigError() error {
	return g.cfgErr
}
