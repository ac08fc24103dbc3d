// Package engine implements the turn transition rules of the snakes and
// ladders game. It holds no state: every call takes the position, the chosen
// action, the board and a random source, and returns a fresh TurnResult.
package engine

// Reward adjustments applied on top of an action's cost.
const (
	ExactLandingBonus = 10
	StartPosition     = Position(1)
)

// Source supplies the uniform draws for actions with a random distance.
// *math/rand.Rand satisfies it. Implementations shared between goroutines
// must be safe for concurrent use.
type Source interface {
	// Intn returns a non-negative int in [0, n).
	Intn(n int) int
}

// TurnResult is the outcome of a single turn.
type TurnResult struct {
	Reward int
	Next   Position
	Done   bool
}

// PlayTurn moves a piece resting on position by the given action.
//
// A piece already on the terminal cell stays there with zero reward, whatever
// the action. A move past the last cell sends the piece back to the start and
// costs one extra point per cell of overshoot; landing exactly on the last
// cell earns ExactLandingBonus. A shortcut is applied once, to the cell the
// move resolved to.
func PlayTurn(src Source, position Position, action Action, board Board) (TurnResult, error) {
	if position == board.Terminal {
		return TurnResult{Reward: 0, Next: position, Done: true}, nil
	}

	move, err := Draw(src, action)
	if err != nil {
		return TurnResult{}, err
	}
	return Resolve(position, action, move, board), nil
}

// Draw samples the distance for action from src.
func Draw(src Source, action Action) (int, error) {
	moves := action.Moves()
	if moves == nil {
		return 0, &InvalidActionError{Action: action}
	}
	if len(moves) == 1 {
		return moves[0], nil
	}
	return moves[src.Intn(len(moves))], nil
}

// Resolve applies an already drawn move. It is the deterministic half of
// PlayTurn and assumes action is valid and position is not terminal.
func Resolve(position Position, action Action, move int, board Board) TurnResult {
	cost := action.Cost()
	temp := position + Position(move)

	var res TurnResult
	switch {
	case temp > board.Size:
		extra := int(temp - board.Size)
		res.Reward = cost - extra
		res.Next = StartPosition
	case temp == board.Size:
		res.Reward = cost + ExactLandingBonus
		res.Next = temp
	default:
		res.Reward = cost
		res.Next = temp
	}

	if dst, ok := board.Shortcuts[res.Next]; ok {
		res.Next = dst
	}
	res.Done = res.Next == board.Terminal
	return res
}
