package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/policy"
)

var (
	flagPolicySolve    bool
	flagPolicyDiscount float64
	flagPolicyPosition int
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the computer's action table",
	Long: `Print the fixed action table the computer plays by. Positions that are
not listed fall back to action 1.

With --solve, value iteration is run on the configured board and its greedy
table is printed next to the fixed one, with the expected return of each
position. Rows where the two disagree are marked with '*'. The solved table
is only reported; the computer always plays the fixed table.

Examples:
  ladders policy
  ladders policy --position 26
  ladders policy --solve
  ladders policy --solve --discount 0.95`,
	Args: cobra.NoArgs,
	RunE: runPolicy,
}

func init() {
	policyCmd.Flags().BoolVar(&flagPolicySolve, "solve", false, "Compare against a value-iteration solution for the configured board")
	policyCmd.Flags().Float64Var(&flagPolicyDiscount, "discount", 1.0, "Discount factor for --solve, in (0, 1]")
	policyCmd.Flags().IntVar(&flagPolicyPosition, "position", 0, "Print the action for a single position")
}

func runPolicy(_ *cobra.Command, _ []string) error {
	if flagPolicyPosition != 0 {
		a := policy.Optimal(engine.Position(flagPolicyPosition))
		fmt.Println(a.Describe())
		return nil
	}

	fixed := policy.Fixed()
	if !flagPolicySolve {
		fmt.Println("Computer action table")
		fmt.Println()
		fmt.Printf("  %-8s  %s\n", "Position", "Action")
		fmt.Printf("  %-8s  %s\n", "--------", "------")
		for _, e := range fixed.Entries() {
			fmt.Printf("  %-8d  %d\n", e.Position, e.Action)
		}
		fmt.Println()
		fmt.Printf("Any other position: %d\n", policy.DefaultAction)
		return nil
	}

	board := cfg.EngineBoard()
	opts := policy.DefaultSolveOptions()
	opts.Discount = flagPolicyDiscount

	sol, err := policy.Solve(board, opts)
	if errors.Is(err, policy.ErrNotConverged) {
		logger.Warn("showing unconverged solution", "iterations", sol.Iterations)
	} else if err != nil {
		return err
	}

	fmt.Printf("Value iteration: %d iterations, discount %.2f\n", sol.Iterations, opts.Discount)
	fmt.Println()
	fmt.Printf("  %-8s  %-5s  %-6s  %s\n", "Position", "Fixed", "Solved", "Value")
	fmt.Printf("  %-8s  %-5s  %-6s  %s\n", "--------", "-----", "------", "-----")

	diff := map[engine.Position]bool{}
	for _, d := range policy.Compare(fixed, sol.Table, board.Terminal) {
		diff[d.Position] = true
	}
	for p := engine.Position(1); p < board.Terminal; p++ {
		mark := ""
		if diff[p] {
			mark = " *"
		}
		fmt.Printf("  %-8d  %-5d  %-6d  %8.3f%s\n", p, fixed.Lookup(p), sol.Table.Lookup(p), sol.Value(p), mark)
	}

	fmt.Println()
	fmt.Printf("%d of %d positions differ.\n", len(diff), int(board.Terminal)-1)
	return nil
}
