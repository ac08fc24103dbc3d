package tui

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-ladders/internal/core"
	"github.com/vovakirdan/tui-ladders/internal/engine"
	"github.com/vovakirdan/tui-ladders/internal/game"
	"github.com/vovakirdan/tui-ladders/internal/storage"
)

// Options configures a Model beyond the runtime config.
type Options struct {
	Board   engine.Board
	Store   *storage.Store // nil disables history
	Logger  *log.Logger
	Session []game.Option // passed to every new session
}

// Model is the Bubble Tea model for a single match against the computer.
type Model struct {
	session  *game.Session
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	board    engine.Board
	opts     []game.Option
	keys     KeyMap
	seed     int64
	gen      int // bumped on reset, see computerTurnMsg
	thinking bool
	saved    bool // Whether the finished match has been stored
	history  *HistoryModel
	quitting bool
}

// NewModel creates a new Bubble Tea model and starts the first match.
func NewModel(cfg core.RuntimeConfig, o Options) Model {
	logger := o.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	board := o.Board
	if board.Size == 0 {
		board = engine.DefaultBoard()
	}

	m := Model{
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  o.Store,
		logger: logger,
		config: cfg,
		board:  board,
		opts:   append([]game.Option{game.WithLogger(logger)}, o.Session...),
		keys:   DefaultKeyMap(),
	}
	m.newMatch(cfg.SeedOrNow())
	return m
}

// newMatch replaces the session with a fresh one drawing from seed.
func (m *Model) newMatch(seed int64) {
	m.seed = seed
	m.session = game.NewSession(m.board, rand.New(rand.NewSource(seed)), m.opts...)
	m.gen++
	m.thinking = false
	m.saved = false
	m.logger.Info("new match", "seed", seed)
}

// resetSeed picks the seed for the next match. A configured seed keeps every
// following match reproducible.
func (m Model) resetSeed() int64 {
	if m.config.Seed != 0 {
		return m.config.Seed + int64(m.gen)
	}
	return time.Now().UnixNano()
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
		m.screen.Resize(wsm.Width, wsm.Height)
	}

	if m.history != nil {
		if _, ok := msg.(computerTurnMsg); !ok {
			return m.updateHistory(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case computerTurnMsg:
		return m.handleComputerTurn(msg)
	}

	return m, nil
}

// updateHistory forwards messages to the open history screen.
func (m Model) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.history.Update(msg)
	h, ok := next.(HistoryModel)
	if !ok {
		return m, cmd
	}

	switch {
	case h.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case h.IsGoingBack():
		m.history = nil
		return m, cmd
	}

	m.history = &h
	return m, cmd
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.History):
		h := NewHistoryModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.history = &h
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.newMatch(m.resetSeed())
		return m, nil
	}

	action, ok := m.keys.ActionFor(msg)
	if !ok || m.thinking {
		return m, nil
	}
	st := m.session.State()
	if st.GameOver || st.Turn != game.SidePlayer {
		return m, nil
	}

	if _, err := m.session.PlayerMove(context.Background(), action); err != nil {
		m.logger.Warn("player move rejected", "action", int(action), "err", err)
		return m, nil
	}
	return m.afterMove()
}

// handleComputerTurn plays the scheduled computer move.
func (m Model) handleComputerTurn(msg computerTurnMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen {
		return m, nil
	}
	m.thinking = false

	if _, err := m.session.ComputerMove(context.Background()); err != nil {
		m.logger.Warn("computer move rejected", "err", err)
		return m, nil
	}
	return m.afterMove()
}

// afterMove stores a finished match or schedules the computer's reply.
func (m Model) afterMove() (tea.Model, tea.Cmd) {
	st := m.session.State()
	if st.GameOver {
		m.saveMatch(st)
		return m, nil
	}
	if st.Turn == game.SideComputer {
		m.thinking = true
		return m, computerTurnCmd(m.gen, m.config.ComputerDelay)
	}
	return m, nil
}

// saveMatch records the finished match once.
func (m *Model) saveMatch(st game.State) {
	if m.saved {
		return
	}
	m.saved = true
	m.logger.Info("match over", "winner", st.Winner, "turns", st.Turns,
		"player_reward", st.PlayerReward, "computer_reward", st.ComputerReward)

	if m.store == nil {
		return
	}
	id, err := m.store.SaveMatch(MatchRecord(st, m.seed))
	if err != nil {
		m.logger.Error("could not save match", "err", err)
		return
	}
	m.logger.Debug("match saved", "id", id)
}

// MatchRecord converts a finished match state into a storage row.
func MatchRecord(st game.State, seed int64) storage.Match {
	winner := storage.WinnerComputer
	if st.Winner == game.SidePlayer {
		winner = storage.WinnerPlayer
	}
	return storage.Match{
		Winner:         winner,
		PlayerReward:   st.PlayerReward,
		ComputerReward: st.ComputerReward,
		Turns:          st.Turns,
		PlayerFinal:    int(st.Player),
		ComputerFinal:  int(st.Computer),
		Seed:           seed,
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.session.Render(m.screen, m.status())

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "err", err)
		return
	}
	dir := filepath.Join(home, ".ladders", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", game.ID, timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

func (m Model) status() game.Status {
	if m.thinking {
		return game.StatusThinking
	}
	return game.StatusWaiting
}

// State returns the current match state.
func (m Model) State() game.State {
	return m.session.State()
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.history != nil {
		return m.history.View()
	}

	m.session.Render(m.screen, m.status())
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg core.RuntimeConfig, o Options) error {
	p := tea.NewProgram(
		NewModel(cfg, o),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
