// invaders is a terminal Alien Invasion shooter: steer a ship along the
// bottom of the screen and shoot down a descending fleet.
//
// Usage:
//
//	invaders play            - Play a round straight away
//	invaders menu            - Pick a difficulty and browse high scores
//	invaders scores          - Print the high score table
//	invaders presets         - List difficulty presets or dump the default config
//	invaders serve           - Start an SSH server for remote play
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.invaders/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/games/invaders"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
	Prefix:          "invaders",
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "invaders",
	Short: "Alien Invasion - shoot down the fleet in your terminal",
	Long: `Alien Invasion is a fixed-screen shooter for the terminal.

Steer the ship with the arrow keys, fire with Space and clear each wave
before the fleet reaches the bottom. Every cleared wave speeds the game up.

Available commands:
  play     - Play a round straight away
  menu     - Pick a difficulty and browse high scores
  scores   - Print the high score table
  presets  - List difficulty presets
  serve    - Start SSH server for remote play

Examples:
  invaders play
  invaders play --difficulty hard
  invaders menu
  invaders serve --ssh :2222
  invaders scores --difficulty easy`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.invaders/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// runtimeConfig builds the runtime config from the global flags and the
// current terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

// gameID is the game every command runs.
const gameID = invaders.GameID
