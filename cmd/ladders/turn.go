package main

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

var turnCmd = &cobra.Command{
	Use:   "turn <position> <action>",
	Short: "Resolve a single turn",
	Long: `Play one action from a resting position on the configured board and print
the reward, the next position and whether the goal was reached.

Examples:
  ladders turn 29 1
  ladders turn 28 3 --seed 1`,
	Args: cobra.ExactArgs(2),
	RunE: runTurn,
}

func runTurn(_ *cobra.Command, args []string) error {
	board := cfg.EngineBoard()
	pos, err := parsePosition(args[0], board)
	if err != nil {
		return err
	}
	action, err := engine.ParseAction(args[1])
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.New(rand.NewSource(seed))

	res, err := engine.PlayTurn(src, pos, action, board)
	if err != nil {
		return err
	}

	fmt.Printf("reward=%d next=%d done=%t\n", res.Reward, res.Next, res.Done)
	return nil
}

// parsePosition reads a resting position typed by the user. The engine
// trusts its input, so anything off the board is rejected here.
func parsePosition(arg string, board engine.Board) (engine.Position, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid position %q: %w", arg, err)
	}
	if n < int(engine.StartPosition) || n > int(board.Size) {
		return 0, fmt.Errorf("position %d is off the board (1-%d)", n, board.Size)
	}
	return engine.Position(n), nil
}
