package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/platform/tui"
	"github.com/vovakirdan/tui-invaders/internal/registry"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Start the game. Press Enter or click the Play button to begin a round.

Controls:
  Left/Right, A/D  - Steer the ship
  Space            - Fire
  Enter / click    - Start a round
  P                - Pause
  Esc/B            - Leave (between rounds or while paused)
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - 5 ships, slower fleet, gentle speedup
  normal - the config as loaded
  hard   - 2 ships, faster fleet, steep speedup

Examples:
  invaders play
  invaders play --difficulty hard
  invaders play --config ./my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, _ []string) {
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		logger.Error("invalid difficulty", "error", err)
		os.Exit(1)
	}
	if flagConfig != "" {
		if _, err := config.LoadInvaders(flagConfig); err != nil {
			logger.Error("invalid game config", "path", flagConfig, "error", err)
			os.Exit(1)
		}
	}

	cfg := runtimeConfig()
	cfg.ConfigPath = flagConfig
	cfg.Difficulty = flagDifficulty

	game, err := registry.Create(gameID)
	if err != nil {
		logger.Error("could not create game", "error", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game failed", "error", runErr)
		os.Exit(1)
	}
}
