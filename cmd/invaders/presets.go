package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

var flagDumpConfig bool

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List difficulty presets",
	Long: `Shows the difficulty presets and the settings they produce.

With --dump, prints the embedded default config instead. Save it to
~/.invaders/configs/invaders.yaml or pass it with --config to tune the game.

Examples:
  invaders presets
  invaders presets --dump > my-invaders.yaml`,
	Args: cobra.NoArgs,
	Run:  runPresets,
}

func init() {
	presetsCmd.Flags().BoolVar(&flagDumpConfig, "dump", false, "Print the default config YAML")
	presetsCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPresets(_ *cobra.Command, _ []string) {
	if flagDumpConfig {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	fmt.Println("Difficulty presets:")
	fmt.Println()
	fmt.Printf("  %-6s  %-5s  %-11s  %-7s  %s\n", "Name", "Ships", "Alien speed", "Speedup", "Description")
	fmt.Printf("  %-6s  %-5s  %-11s  %-7s  %s\n", "----", "-----", "-----------", "-------", "-----------")

	for _, p := range config.Presets() {
		cfg, err := config.LoadInvadersWithPreset(flagConfig, string(p))
		if err != nil {
			logger.Error("could not load config", "error", err)
			os.Exit(1)
		}
		fmt.Printf("  %-6s  %-5d  %-11.3f  %-7.2f  %s\n",
			p, cfg.Gameplay.Lives, cfg.Alien.Speed, cfg.Gameplay.SpeedupScale, p.Description())
	}

	fmt.Println()
	fmt.Println("Run 'invaders play --difficulty <name>' to play a preset.")
}
