package policy

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/vovakirdan/tui-ladders/internal/engine"
)

// SolveOptions tunes value iteration.
type SolveOptions struct {
	Discount      float64 // 1.0 = undiscounted
	Tolerance     float64 // stop once the max-norm change drops below this
	MaxIterations int
}

// DefaultSolveOptions returns undiscounted iteration with a tight tolerance.
func DefaultSolveOptions() SolveOptions {
	return SolveOptions{
		Discount:      1.0,
		Tolerance:     1e-9,
		MaxIterations: 10000,
	}
}

// Solution is the result of value iteration over a board.
type Solution struct {
	// Values[p] is the expected total reward from resting position p.
	// Index 0 is unused.
	Values     []float64
	Table      Table
	Iterations int
	Converged  bool
}

// Value returns the expected return from position p.
func (s Solution) Value(p engine.Position) float64 {
	if int(p) <= 0 || int(p) >= len(s.Values) {
		return math.NaN()
	}
	return s.Values[p]
}

// ErrNotConverged is returned when the iteration cap is hit first.
var ErrNotConverged = errors.New("policy: value iteration did not converge")

// Solve runs value iteration on the transition model engine.Resolve
// defines, with each action's distance drawn uniformly from Action.Moves.
// The greedy table covers every non-terminal position, shortcut sources included.
func Solve(board engine.Board, opts SolveOptions) (Solution, error) {
	if err := board.Validate(); err != nil {
		return Solution{}, err
	}
	if opts.MaxIterations <= 0 {
		opts.MaxIterations = DefaultSolveOptions().MaxIterations
	}
	if opts.Discount <= 0 || opts.Discount > 1 {
		return Solution{}, fmt.Errorf("policy: discount %v must be in (0, 1]", opts.Discount)
	}

	n := int(board.Size) + 1
	values := make([]float64, n)
	next := make([]float64, n)
	q := make([]float64, len(engine.Actions))

	sol := Solution{Values: values}
	for sol.Iterations < opts.MaxIterations {
		sol.Iterations++
		for p := engine.Position(1); p <= board.Size; p++ {
			if p == board.Terminal {
				next[p] = 0
				continue
			}
			qValues(board, p, values, opts.Discount, q)
			next[p] = floats.Max(q)
		}
		delta := floats.Distance(next[1:], values[1:], math.Inf(1))
		copy(values, next)
		if delta < opts.Tolerance {
			sol.Converged = true
			break
		}
	}

	sol.Table = make(Table, n)
	for p := engine.Position(1); p <= board.Size; p++ {
		if p == board.Terminal {
			continue
		}
		qValues(board, p, values, opts.Discount, q)
		sol.Table[p] = engine.Actions[floats.MaxIdx(q)]
	}

	if !sol.Converged {
		return sol, fmt.Errorf("%w after %d iterations", ErrNotConverged, sol.Iterations)
	}
	return sol, nil
}

// qValues fills q with the expected one-step return of every action from p.
func qValues(board engine.Board, p engine.Position, values []float64, discount float64, q []float64) {
	for i, a := range engine.Actions {
		moves := a.Moves()
		outcomes := make([]float64, len(moves))
		for j, m := range moves {
			res := engine.Resolve(p, a, m, board)
			outcomes[j] = float64(res.Reward)
			if !res.Done {
				outcomes[j] += discount * values[res.Next]
			}
		}
		q[i] = floats.Sum(outcomes) / float64(len(moves))
	}
}
