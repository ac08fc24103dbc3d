package main

import (
	"fmt"
	"time"

	"github.com/gosuri/uilive"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/game"
)

var (
	flagSimGames    int
	flagSimMaxTurns int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play many computer games and summarize them",
	Long: `Run a batch of single-piece games where the computer's table picks every
move, and report how many turns and how much reward a game takes.

The same --seed reproduces the same batch.

Examples:
  ladders simulate
  ladders simulate --games 100000 --seed 7`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 1000, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagSimMaxTurns, "max-turns", game.DefaultMaxTurns, "Turn cap per game")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	writer := uilive.New()
	writer.Start()

	step := flagSimGames / 100
	if step < 1 {
		step = 1
	}
	start := time.Now()
	res, err := game.Simulate(cfg.EngineBoard(), game.SimOptions{
		Games:    flagSimGames,
		Seed:     seed,
		MaxTurns: flagSimMaxTurns,
		Progress: func(done int) {
			if done%step == 0 || done == flagSimGames {
				fmt.Fprintf(writer, "Simulating... %d/%d games\n", done, flagSimGames)
			}
		},
	})
	writer.Stop()
	if err != nil {
		return err
	}

	logger.Debug("simulation finished", "games", res.Games, "elapsed", time.Since(start))

	fmt.Printf("Games:     %d (seed %d)\n", res.Games, seed)
	fmt.Printf("Finished:  %d\n", res.Finished)
	fmt.Printf("Turns:     mean %.2f  std %.2f  min %d  max %d\n",
		res.MeanTurns, res.StdTurns, res.MinTurns, res.MaxTurns)
	fmt.Printf("Reward:    mean %.2f  std %.2f\n", res.MeanRew, res.StdRew)
	return nil
}
