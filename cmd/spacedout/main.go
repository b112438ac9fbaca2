// spacedout is an arcade shooter: hold the trigger, aim with the mouse and
// keep the enemies closing in from every side away from your turret.
//
// Usage:
//
//	spacedout list               - List available variants
//	spacedout play [variant]     - Play in the terminal
//	spacedout menu               - Pick a variant interactively
//	spacedout window [variant]   - Play in a 1280x720 window
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load tuning from a YAML file
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacedout/internal/config"
	"github.com/vovakirdan/spacedout/internal/core"
	"github.com/vovakirdan/spacedout/internal/games/spacedout"
	"github.com/vovakirdan/spacedout/internal/registry"
)

const defaultVariant = "spacedout"

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "spacedout",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("Error", "err", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spacedout",
	Short: "Spaced Out - shoot the enemies closing in on your turret",
	Long: `Spaced Out is an arcade shooter. Your turret sits in the middle of the
arena and fires towards the mouse while enemies close in from every side.
Kills earn score, money and charge; a full charge lets you space out and
freeze every enemy for a few seconds.

Available commands:
  list     - Show all variants
  play     - Play in the terminal
  menu     - Interactive variant picker
  window   - Play in a desktop window

Examples:
  spacedout list
  spacedout play spacedout_spiral
  spacedout menu --difficulty hard
  spacedout window --seed 42`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(windowCmd)
}

// setup validates global flags and hands config settings to the game package.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger.SetLevel(level)

	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", flagDifficulty)
	}

	// An explicit config that cannot be loaded is fatal; games would
	// otherwise fall back to defaults silently.
	if flagConfig != "" {
		if _, err := config.LoadSpacedOut(flagConfig); err != nil {
			return err
		}
		logger.Debug("config loaded", "path", flagConfig)
	}

	spacedout.SetConfigPath(flagConfig)
	spacedout.SetDifficultyPreset(flagDifficulty)
	return nil
}

// runtimeConfig builds the runtime settings from global flags.
func runtimeConfig(width, height int) core.RuntimeConfig {
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}

// variantArg returns the requested variant id, or the default one.
func variantArg(args []string) (string, error) {
	id := defaultVariant
	if len(args) > 0 {
		id = args[0]
	}
	if !registry.Exists(id) {
		return "", fmt.Errorf("unknown variant %q, run 'spacedout list' to see available variants", id)
	}
	return id, nil
}
