package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spacedout/internal/games/spacedout"
	"github.com/vovakirdan/spacedout/internal/platform/window"
	"github.com/vovakirdan/spacedout/internal/registry"
)

var windowCmd = &cobra.Command{
	Use:   "window [variant]",
	Short: "Play in a desktop window",
	Long: `Open a 1280x720 window and play with the mouse.

Controls:
  Mouse       - Aim (hold the left button to fire)
  Space       - Space out (needs a full charge)
  P           - Pause
  R           - Restart
  Esc         - Quit

Examples:
  spacedout window
  spacedout window spacedout_spiral --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWindow,
}

func runWindow(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	rg, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	game, ok := rg.(*spacedout.Game)
	if !ok {
		return fmt.Errorf("variant %q cannot run in a window", gameID)
	}

	// The window draws the arena at full size; screen cells are unused.
	game.Reset(runtimeConfig(0, 0))
	return window.Run(game.World(), logger)
}
