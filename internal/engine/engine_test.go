package engine

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// fixedSource always returns the same index, clamped to the range asked for.
type fixedSource int

func (f fixedSource) Intn(n int) int {
	if int(f) >= n {
		return n - 1
	}
	return int(f)
}

func emptyBoard(size Position) Board {
	return Board{Size: size, Terminal: size, Shortcuts: ShortcutMap{}}
}

func TestPlayTurnTerminalIsNoop(t *testing.T) {
	board := DefaultBoard()
	for _, a := range []Action{0, ActionStep, ActionShort, ActionLong, 4, -1} {
		res, err := PlayTurn(nil, board.Terminal, a, board)
		require.NoError(t, err, "action %d", a)
		require.Equal(t, TurnResult{Reward: 0, Next: board.Terminal, Done: true}, res)
	}
}

func TestPlayTurnInvalidAction(t *testing.T) {
	board := emptyBoard(30)
	for _, a := range []Action{0, 4, 5, -2, 99} {
		for _, p := range []Position{1, 15, 29} {
			res, err := PlayTurn(fixedSource(0), p, a, board)
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidAction))

			var iae *InvalidActionError
			require.True(t, errors.As(err, &iae))
			require.Equal(t, a, iae.Action)
			require.Equal(t, TurnResult{}, res)
		}
	}
}

func TestPlayTurnExactLanding(t *testing.T) {
	res, err := PlayTurn(fixedSource(0), 29, ActionStep, emptyBoard(30))
	require.NoError(t, err)
	require.Equal(t, TurnResult{Reward: 7, Next: 30, Done: true}, res)
}

func TestPlayTurnOvershoot(t *testing.T) {
	tests := []struct {
		name     string
		pos      Position
		action   Action
		draw     fixedSource
		expected TurnResult
	}{
		{"long move of 4 from 28", 28, ActionLong, 0, TurnResult{Reward: -4, Next: 1}},
		{"long move of 7 from 28", 28, ActionLong, 3, TurnResult{Reward: -7, Next: 1}},
		{"short move of 3 from 29", 29, ActionShort, 2, TurnResult{Reward: -3, Next: 1}},
		{"short move of 2 from 29", 29, ActionShort, 1, TurnResult{Reward: -2, Next: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			res, err := PlayTurn(tc.draw, tc.pos, tc.action, emptyBoard(30))
			require.NoError(t, err)
			require.Equal(t, tc.expected, res)
		})
	}
}

func TestResolveOvershootSmallBoard(t *testing.T) {
	// Terminal sits before the last cell so a single step can overshoot.
	board := Board{Size: 5, Terminal: 4, Shortcuts: ShortcutMap{}}
	res := Resolve(5, ActionStep, 1, board)
	require.Equal(t, TurnResult{Reward: -4, Next: 1, Done: false}, res)
}

func TestPlayTurnNormalMove(t *testing.T) {
	res, err := PlayTurn(fixedSource(1), 10, ActionShort, emptyBoard(30))
	require.NoError(t, err)
	require.Equal(t, TurnResult{Reward: -1, Next: 12, Done: false}, res)

	res, err = PlayTurn(nil, 10, ActionStep, emptyBoard(30))
	require.NoError(t, err)
	require.Equal(t, TurnResult{Reward: -3, Next: 11, Done: false}, res)
}

func TestPlayTurnShortcut(t *testing.T) {
	board := Board{Size: 30, Terminal: 30, Shortcuts: ShortcutMap{5: 7}}
	res, err := PlayTurn(nil, 4, ActionStep, board)
	require.NoError(t, err)
	require.Equal(t, Position(7), res.Next)
	require.Equal(t, -3, res.Reward)
	require.False(t, res.Done)
}

func TestPlayTurnShortcutIsNotChained(t *testing.T) {
	board := Board{Size: 30, Terminal: 30, Shortcuts: ShortcutMap{5: 7, 7: 20}}
	res, err := PlayTurn(nil, 4, ActionStep, board)
	require.NoError(t, err)
	require.Equal(t, Position(7), res.Next)
}

func TestPlayTurnLadderToTerminal(t *testing.T) {
	board := Board{Size: 30, Terminal: 30, Shortcuts: ShortcutMap{12: 30}}
	res, err := PlayTurn(nil, 11, ActionStep, board)
	require.NoError(t, err)
	require.Equal(t, TurnResult{Reward: -3, Next: 30, Done: true}, res)
}

func TestPlayTurnOvershootThenShortcutOnStart(t *testing.T) {
	board := Board{Size: 10, Terminal: 10, Shortcuts: ShortcutMap{1: 3}}
	res, err := PlayTurn(fixedSource(3), 9, ActionLong, board)
	require.NoError(t, err)
	require.Equal(t, TurnResult{Reward: -2 - 6, Next: 3, Done: false}, res)
}

func TestPlayTurnDefaultBoardSnakes(t *testing.T) {
	board := DefaultBoard()
	res, err := PlayTurn(fixedSource(1), 22, ActionShort, board)
	require.NoError(t, err)
	require.Equal(t, Position(16), res.Next, "24 is a snake down to 16")
}

func TestPlayTurnShortDistribution(t *testing.T) {
	src := rand.New(rand.NewSource(7))
	board := emptyBoard(100)
	counts := make(map[int]int)

	for i := 0; i < 3000; i++ {
		res, err := PlayTurn(src, 1, ActionShort, board)
		require.NoError(t, err)
		counts[int(res.Next-1)]++
	}

	require.Len(t, counts, 3)
	for move := 1; move <= 3; move++ {
		require.Greater(t, counts[move], 0, "move %d never drawn", move)
	}
}

func TestPlayTurnLongDistribution(t *testing.T) {
	src := rand.New(rand.NewSource(11))
	board := emptyBoard(100)
	seen := make(map[int]bool)

	for i := 0; i < 2000; i++ {
		res, err := PlayTurn(src, 50, ActionLong, board)
		require.NoError(t, err)
		move := int(res.Next - 50)
		require.GreaterOrEqual(t, move, 4)
		require.LessOrEqual(t, move, 7)
		seen[move] = true
	}
	require.Len(t, seen, 4)
}

func TestBoardValidate(t *testing.T) {
	require.NoError(t, DefaultBoard().Validate())

	bad := []Board{
		{Size: 1, Terminal: 1},
		{Size: 30, Terminal: 31},
		{Size: 30, Terminal: 30, Shortcuts: ShortcutMap{30: 5}},
		{Size: 30, Terminal: 30, Shortcuts: ShortcutMap{10: 40}},
		{Size: 30, Terminal: 30, Shortcuts: ShortcutMap{10: 10}},
	}
	for _, b := range bad {
		err := b.Validate()
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidBoard)
	}
}

func TestShortcutKind(t *testing.T) {
	m := DefaultBoard().Shortcuts
	require.Equal(t, ShortcutLadder, m.Kind(9))
	require.Equal(t, ShortcutSnake, m.Kind(17))
	require.Equal(t, ShortcutNone, m.Kind(8))
	require.Equal(t, []Position{5, 9, 11, 17, 20, 24}, m.Sources())
}

func TestParseAction(t *testing.T) {
	a, err := ParseAction(" 2 ")
	require.NoError(t, err)
	require.Equal(t, ActionShort, a)

	_, err = ParseAction("4")
	require.ErrorIs(t, err, ErrInvalidAction)

	_, err = ParseAction("two")
	require.Error(t, err)
}
