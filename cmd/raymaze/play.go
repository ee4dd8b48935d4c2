package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/raymaze/internal/config"
	"github.com/vovakirdan/raymaze/internal/core"
	"github.com/vovakirdan/raymaze/internal/games/walker"
	"github.com/vovakirdan/raymaze/internal/platform/tui"
	"github.com/vovakirdan/raymaze/internal/registry"
	"github.com/vovakirdan/raymaze/internal/storage"
)

var (
	flagConfig string
	flagWidth  int
	flagHeight int
	flagDepth  float64
	flagStep   float64
	flagBands  int
)

var playCmd = &cobra.Command{
	Use:   "play <mode>",
	Short: "Walk a maze",
	Long: `Start walking a maze in the specified mode.

Controls:
  W/Up       - Step forward
  S/Down     - Step backward
  A / D      - Strafe left / right
  Left/Right - Turn
  + / -      - Widen / narrow field of view
  M          - Toggle map inset
  P/Esc      - Pause
  R          - Restart (after finishing a race)
  Q/Ctrl+C   - Quit

Modes:
  explore - Endless: a fresh maze is generated every time you find the exit
  race    - One maze; your run is recorded when you reach the exit

Examples:
  raymaze play explore
  raymaze play race
  raymaze play race --width 31 --height 31
  raymaze play explore --config ./my-walker.yaml
  raymaze play race --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom walker config YAML")
	playCmd.Flags().IntVar(&flagWidth, "width", 0, "Maze width in cells (odd, >= 5; 0 = from config)")
	playCmd.Flags().IntVar(&flagHeight, "height", 0, "Maze height in cells (odd, >= 5; 0 = from config)")
	playCmd.Flags().Float64Var(&flagDepth, "depth", 0, "Ray saturation distance in grid units (0 = from config)")
	playCmd.Flags().Float64Var(&flagStep, "step", 0, "Ray march increment in grid units (0 = from config)")
	playCmd.Flags().IntVar(&flagBands, "bands", 0, "Shading levels per palette (0 = from config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	modeID := args[0]

	// Check if mode exists
	if !registry.Exists(modeID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", modeID)
		fmt.Fprintln(os.Stderr, "Run 'raymaze list' to see available modes.")
		os.Exit(1)
	}

	// The projection needs a real terminal; fail fast if stdout is a pipe.
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Set config path and overrides before creation
	walker.SetConfigPath(flagConfig)
	walker.SetMapSize(flagWidth, flagHeight)
	walker.SetRenderParams(flagDepth, flagStep, flagBands)

	// Surface configuration errors before entering the session loop.
	cfg, err := loadPlayConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runtimeCfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Create game instance
	game, err := registry.Create(modeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open run storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, runtimeCfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// loadPlayConfig loads the walker config with CLI overrides applied,
// the same way Reset does inside the game.
func loadPlayConfig() (config.WalkerConfig, error) {
	cfg, err := config.LoadWalker(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagWidth > 0 {
		cfg.Map.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Map.Height = flagHeight
	}
	if flagDepth > 0 {
		cfg.Render.MaxDepth = flagDepth
	}
	if flagStep > 0 {
		cfg.Render.Step = flagStep
	}
	if flagBands > 0 {
		cfg.Render.Bands = flagBands
	}
	return cfg, nil
}
