package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacedout/internal/platform/tui"
	"github.com/vovakirdan/spacedout/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant from a menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a variant.
After a session ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select variant
  Q/Esc        - Quit

Examples:
  spacedout menu
  spacedout menu --fps 30`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	width, height := terminalSize()
	cfg := runtimeConfig(width, height)

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config

		game, err := registry.Create(result.GameID)
		if err != nil {
			return err
		}
		if err := tui.Run(game, cfg, logger); err != nil {
			return err
		}
		// A new seed for every session unless one was pinned.
		cfg = runtimeConfig(cfg.ScreenW, cfg.ScreenH)
	}
}
