package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/game"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1}
}

// send feeds msg through Update and returns the model and its command.
func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	require.True(t, ok)
	return nm, cmd
}

func TestPlayerMoveSchedulesComputer(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	m, cmd := send(t, m, keyMsg("1"))
	require.NotNil(t, cmd)
	require.True(t, m.thinking)
	require.Equal(t, engine.Position(2), m.State().Player)
	require.Equal(t, game.SideComputer, m.State().Turn)

	// Keys are ignored while the computer is thinking.
	m, _ = send(t, m, keyMsg("1"))
	require.Equal(t, engine.Position(2), m.State().Player)

	msg := cmd()
	require.IsType(t, computerTurnMsg{}, msg)
	m, _ = send(t, m, msg)
	require.False(t, m.thinking)
	require.Equal(t, game.SidePlayer, m.State().Turn)
	require.Equal(t, 2, m.State().Turns)
}

func TestResetDropsStaleComputerTurn(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	m, cmd := send(t, m, keyMsg("1"))
	require.NotNil(t, cmd)
	stale := cmd()

	m, _ = send(t, m, keyMsg("r"))
	require.False(t, m.thinking)
	require.Equal(t, engine.StartPosition, m.State().Player)

	m, _ = send(t, m, stale)
	require.Zero(t, m.State().Turns)
	require.Equal(t, game.SidePlayer, m.State().Turn)
}

func TestResetWithSeedIsReproducible(t *testing.T) {
	play := func() (Model, []engine.Position) {
		m := NewModel(testConfig(), Options{})
		m, _ = send(t, m, keyMsg("r"))
		m, _ = send(t, m, keyMsg("r"))

		var seen []engine.Position
		for range 5 {
			var cmd tea.Cmd
			m, cmd = send(t, m, keyMsg("2"))
			seen = append(seen, m.State().Player)
			if m.State().GameOver {
				break
			}
			require.NotNil(t, cmd)
			m, _ = send(t, m, cmd())
			seen = append(seen, m.State().Computer)
			if m.State().GameOver {
				break
			}
		}
		return m, seen
	}

	a, first := play()
	b, second := play()
	require.Equal(t, int64(3), a.seed)
	require.Equal(t, a.seed, b.seed)
	require.Equal(t, first, second)
}

func TestFinishedMatchIsSavedOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	defer store.Close()

	board := engine.Board{Size: 2, Terminal: 2, Shortcuts: engine.ShortcutMap{}}
	m := NewModel(testConfig(), Options{Board: board, Store: store})

	m, cmd := send(t, m, keyMsg("1"))
	require.Nil(t, cmd)
	require.True(t, m.State().GameOver)
	require.Equal(t, game.SidePlayer, m.State().Winner)

	// Further moves are ignored.
	m, _ = send(t, m, keyMsg("2"))

	matches, err := store.RecentMatches(10)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	require.Equal(t, storage.WinnerPlayer, matches[0].Winner)
	require.Equal(t, 7, matches[0].PlayerReward)
	require.Equal(t, int64(1), matches[0].Seed)
	require.Equal(t, 2, matches[0].PlayerFinal)

	require.Contains(t, m.View(), "GAME OVER")
}

func TestHistoryToggle(t *testing.T) {
	m := NewModel(testConfig(), Options{})

	m, _ = send(t, m, keyMsg("tab"))
	require.NotNil(t, m.history)
	require.Contains(t, m.View(), "RECENT MATCHES")
	require.Contains(t, m.View(), "No database is open")

	// Action keys go to the history screen, not the game.
	m, _ = send(t, m, keyMsg("1"))
	require.Zero(t, m.State().Turns)

	m, _ = send(t, m, keyMsg("esc"))
	require.Nil(t, m.history)
	require.Contains(t, m.View(), "SNAKES & LADDERS")
}

func TestQuit(t *testing.T) {
	m := NewModel(testConfig(), Options{})
	m, cmd := send(t, m, keyMsg("q"))
	require.NotNil(t, cmd)
	require.True(t, m.quitting)
	require.Empty(t, m.View())
}

func TestResize(t *testing.T) {
	m := NewModel(testConfig(), Options{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 30, Height: 10})
	require.Contains(t, m.View(), "Window too small")

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
	require.False(t, strings.Contains(m.View(), "Window too small"))
}

func TestMatchRecord(t *testing.T) {
	st := game.State{
		Player:         12,
		Computer:       30,
		Winner:         game.SideComputer,
		PlayerReward:   -9,
		ComputerReward: -4,
		Turns:          11,
	}
	rec := MatchRecord(st, 99)
	require.Equal(t, storage.Match{
		Winner:         storage.WinnerComputer,
		PlayerReward:   -9,
		ComputerReward: -4,
		Turns:          11,
		PlayerFinal:    12,
		ComputerFinal:  30,
		Seed:           99,
	}, rec)
}

func TestRenderScreenKeepsText(t *testing.T) {
	scr := core.NewScreen(10, 2)
	scr.DrawTextColor(0, 0, "P", core.ColorPlayer)
	scr.DrawText(2, 0, "ok")

	out := RenderScreen(scr)
	require.Contains(t, out, "P")
	require.Contains(t, out, "ok")
	require.Equal(t, 2, strings.Count(out, "\n")+1)
}

func TestActionFor(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		key  string
		want engine.Action
		ok   bool
	}{
		{"1", engine.ActionStep, true},
		{"2", engine.ActionShort, true},
		{"3", engine.ActionLong, true},
		{"4", 0, false},
		{"r", 0, false},
	}
	for _, tc := range tests {
		got, ok := keys.ActionFor(keyMsg(tc.key))
		require.Equal(t, tc.ok, ok, tc.key)
		require.Equal(t, tc.want, got, tc.key)
	}
}
