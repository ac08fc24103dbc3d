package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-ladders/internal/platform/tui"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryBest  bool
	flagHistoryTUI   bool
	flagHistoryClear bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show past matches",
	Long: `Display recent matches and overall statistics.

Examples:
  ladders history
  ladders history --best
  ladders history --limit 50
  ladders history --tui
  ladders history --clear`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of matches to show")
	historyCmd.Flags().BoolVar(&flagHistoryBest, "best", false, "Show your best winning rewards instead of recent matches")
	historyCmd.Flags().BoolVar(&flagHistoryTUI, "tui", false, "Browse history interactively")
	historyCmd.Flags().BoolVar(&flagHistoryClear, "clear", false, "Delete all stored matches")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening match database: %w", err)
	}
	defer store.Close()

	if flagHistoryClear {
		if err := store.ClearMatches(); err != nil {
			return err
		}
		fmt.Println("Match history cleared.")
		return nil
	}

	if flagHistoryTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunHistory(store, width, height)
	}

	var matches []storage.Match
	title := "Recent Matches"
	if flagHistoryBest {
		title = "Best Wins"
		matches, err = store.TopRewards(flagHistoryLimit)
	} else {
		matches, err = store.RecentMatches(flagHistoryLimit)
	}
	if err != nil {
		return err
	}

	stats, err := store.Stats()
	if err != nil {
		return err
	}

	fmt.Println(title)
	fmt.Println()

	if len(matches) == 0 {
		fmt.Println("No matches recorded yet.")
		fmt.Println()
		fmt.Println("Play 'ladders play' to start your history!")
		return nil
	}

	fmt.Printf("  %-4s  %-9s  %6s  %6s  %5s  %s\n", "#", "Winner", "You", "CPU", "Turns", "Date")
	fmt.Printf("  %-4s  %-9s  %6s  %6s  %5s  %s\n", "-", "------", "---", "---", "-----", "----")
	for i, m := range matches {
		fmt.Printf("  %-4d  %-9s  %6d  %6d  %5d  %s\n",
			i+1, m.Winner, m.PlayerReward, m.ComputerReward, m.Turns,
			m.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	fmt.Printf("Games: %d  Wins: %d  Losses: %d  Win rate: %.0f%%  Avg turns: %.1f\n",
		stats.Games, stats.Wins, stats.Losses, stats.WinRate()*100, stats.AvgTurns)
	if stats.Wins > 0 {
		fmt.Printf("Best winning reward: %d\n", stats.BestReward)
	}
	return nil
}
