package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/spacedout/internal/platform/tui"
	"github.com/vovakirdan/spacedout/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in the terminal",
	Long: `Start playing in the terminal. Without an argument the base variant starts.

Controls:
  Mouse       - Aim (hold the left button to fire)
  F           - Toggle the trigger
  Space       - Space out (needs a full charge)
  P/Esc       - Pause
  F5 / F9     - Save checkpoint / rewind to it
  R           - Restart
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  spacedout play
  spacedout play spacedout_rush --difficulty easy
  spacedout play --config ./my-tuning.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID, err := variantArg(args)
	if err != nil {
		return err
	}

	width, height := terminalSize()
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	return tui.Run(game, runtimeConfig(width, height), logger)
}

// terminalSize returns the current terminal size, or 80x24.
func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}
