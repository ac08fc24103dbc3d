package game

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/stat"

	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/policy"
)

// DefaultMaxTurns caps a simulated game that never reaches the terminal cell.
const DefaultMaxTurns = 1000

// SimOptions controls a batch of simulated games.
type SimOptions struct {
	Games    int
	Seed     int64
	MaxTurns int // per game; DefaultMaxTurns when <= 0

	// Policy picks the action for each position. policy.Optimal when nil.
	Policy func(engine.Position) engine.Action

	// Progress, when set, is called after every finished game with the
	// number of games played so far.
	Progress func(done int)
}

// SimResult summarizes a batch of single-piece games.
type SimResult struct {
	Games     int
	Finished  int // games that reached the terminal cell within MaxTurns
	Turns     []float64
	Rewards   []float64
	MeanTurns float64
	StdTurns  float64
	MeanRew   float64
	StdRew    float64
	MinTurns  int
	MaxTurns  int
}

// ErrNoGames is returned when a simulation is asked to play nothing.
var ErrNoGames = errors.New("game: simulation needs at least one game")

// Simulate plays opts.Games games of a single piece following the policy
// from the start cell to the terminal cell and summarizes how long they took
// and what they earned. The same seed reproduces the same result.
func Simulate(board engine.Board, opts SimOptions) (SimResult, error) {
	if opts.Games < 1 {
		return SimResult{}, ErrNoGames
	}
	if err := board.Validate(); err != nil {
		return SimResult{}, err
	}
	if opts.MaxTurns <= 0 {
		opts.MaxTurns = DefaultMaxTurns
	}
	choose := opts.Policy
	if choose == nil {
		choose = policy.Optimal
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	res := SimResult{
		Games:   opts.Games,
		Turns:   make([]float64, 0, opts.Games),
		Rewards: make([]float64, 0, opts.Games),
	}

	for i := range opts.Games {
		turns, reward, done, err := playSolo(rng, board, choose, opts.MaxTurns)
		if err != nil {
			return SimResult{}, fmt.Errorf("game %d: %w", i+1, err)
		}
		if done {
			res.Finished++
		}
		if res.MinTurns == 0 || turns < res.MinTurns {
			res.MinTurns = turns
		}
		if turns > res.MaxTurns {
			res.MaxTurns = turns
		}
		res.Turns = append(res.Turns, float64(turns))
		res.Rewards = append(res.Rewards, float64(reward))

		if opts.Progress != nil {
			opts.Progress(i + 1)
		}
	}

	res.MeanTurns, res.StdTurns = stat.MeanStdDev(res.Turns, nil)
	res.MeanRew, res.StdRew = stat.MeanStdDev(res.Rewards, nil)
	// The sample deviation of a single game is undefined.
	if len(res.Turns) < 2 {
		res.StdTurns, res.StdRew = 0, 0
	}
	return res, nil
}

func playSolo(src engine.Source, board engine.Board, choose func(engine.Position) engine.Action, maxTurns int) (turns, reward int, done bool, err error) {
	pos := engine.StartPosition
	for turns < maxTurns {
		res, err := engine.PlayTurn(src, pos, choose(pos), board)
		if err != nil {
			return turns, reward, false, err
		}
		turns++
		reward += res.Reward
		pos = res.Next
		if res.Done {
			return turns, reward, true, nil
		}
	}
	return turns, reward, false, nil
}
