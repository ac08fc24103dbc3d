package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// Action is a move choice offered to either side on its turn.
type Action int

const (
	ActionStep  Action = 1 // exactly one cell
	ActionShort Action = 2 // 1-3 cells
	ActionLong  Action = 3 // 4-7 cells
)

// Actions lists every valid action in ascending order.
var Actions = []Action{ActionStep, ActionShort, ActionLong}

var (
	stepMoves  = []int{1}
	shortMoves = []int{1, 2, 3}
	longMoves  = []int{4, 5, 6, 7}
)

// Valid reports whether a is one of the three playable actions.
func (a Action) Valid() bool {
	return a == ActionStep || a == ActionShort || a == ActionLong
}

// Cost returns the fixed (negative) reward charged for taking the action.
// Invalid actions cost nothing.
func (a Action) Cost() int {
	switch a {
	case ActionStep:
		return -3
	case ActionShort:
		return -1
	case ActionLong:
		return -2
	default:
		return 0
	}
}

// Moves returns the set of distances the action draws from uniformly.
// The returned slice must not be modified.
func (a Action) Moves() []int {
	switch a {
	case ActionStep:
		return stepMoves
	case ActionShort:
		return shortMoves
	case ActionLong:
		return longMoves
	default:
		return nil
	}
}

// String returns the short label used in messages ("Action 2").
func (a Action) String() string {
	return "Action " + strconv.Itoa(int(a))
}

// Describe returns the long label shown next to the action picker.
func (a Action) Describe() string {
	switch a {
	case ActionStep:
		return "Action 1: Move exactly 1 step (Cost: -3)"
	case ActionShort:
		return "Action 2: Move between 1 and 3 steps (Cost: -1)"
	case ActionLong:
		return "Action 3: Move between 4 and 7 steps (Cost: -2)"
	default:
		return fmt.Sprintf("Action %d: invalid", int(a))
	}
}

// ParseAction converts user input such as "2" or " 3 " into an Action.
func ParseAction(s string) (Action, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("engine: cannot parse action %q: %w", s, err)
	}
	a := Action(n)
	if !a.Valid() {
		return 0, &InvalidActionError{Action: a}
	}
	return a, nil
}
