// raymaze is a terminal maze crawler rendered with a raycast pseudo-3D
// projection.
//
// Usage:
//
//	raymaze list              - List available modes
//	raymaze play <mode>       - Walk a maze
//	raymaze menu              - Start menu to pick modes interactively
//	raymaze carve             - Print a generated maze to stdout
//	raymaze serve             - Start SSH server for remote play
//	raymaze runs <mode>       - Show best runs for a mode
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible mazes
//	--db <path>     - Set database path (default: ~/.raymaze/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import modes to register them
	_ "github.com/vovakirdan/raymaze/internal/games/walker"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raymaze",
	Short: "Raymaze - First-person maze crawling in your terminal",
	Long: `Raymaze renders randomly generated mazes with a raycast pseudo-3D
projection, right in your terminal.

Available commands:
  list     - Show all available modes
  play     - Walk a maze in a specific mode
  menu     - Interactive mode picker menu
  carve    - Print a generated maze layout to stdout
  serve    - Start SSH server for remote play
  runs     - View best runs

Examples:
  raymaze list
  raymaze play explore
  raymaze play race --width 31 --height 31
  raymaze menu
  raymaze serve --ssh :2222
  raymaze runs race`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.raymaze/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(carveCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
}
