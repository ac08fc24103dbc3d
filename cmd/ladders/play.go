package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match against the computer",
	Long: `Start a match. You move first; the computer replies after a short pause.

Actions:
  1  - Move exactly 1 step            (cost -3)
  2  - Move 1 to 3 steps at random    (cost -1)
  3  - Move 4 to 7 steps at random    (cost -2)

Landing exactly on the goal earns +10. Moving past it costs one extra point
per cell of overshoot and sends you back to the start.

Controls:
  1/2/3      - Choose action
  R          - Start a new match
  Tab        - Match history
  Ctrl+S     - Save a screenshot
  Q/Ctrl+C   - Quit

Examples:
  ladders play
  ladders play --seed 42
  ladders play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:       width,
		ScreenH:       height,
		Seed:          flagSeed,
		ComputerDelay: cfg.ComputerDelay(),
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open match database, history disabled", "err", err)
		// Continue without storage - game still works
		store = nil
	}

	// The UI owns the terminal; send logs to a file instead.
	uiLogger, closer := fileLogger()
	defer closer.Close()

	runErr := tui.Run(runtime, tui.Options{
		Board:   cfg.EngineBoard(),
		Store:   store,
		Logger:  uiLogger,
		Session: sessionOptions(),
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}
