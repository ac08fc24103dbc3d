package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-ladders/internal/storage"
)

// History layout constants
const (
	minWidthForSidebar = 90  // Minimum width to show the stats sidebar
	sidebarWidth       = 22  // Width of stats sidebar
	maxMatches         = 100 // Max matches to load
)

// historyView selects which list the table shows.
type historyView int

const (
	viewRecent historyView = iota
	viewBest
)

func (v historyView) title() string {
	if v == viewBest {
		return "BEST WINS"
	}
	return "RECENT MATCHES"
}

// HistoryKeyMap defines the key bindings for the history screen.
type HistoryKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextView key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k HistoryKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextView, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k HistoryKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextView},
		{k.Back, k.Quit},
	}
}

// DefaultHistoryKeyMap returns default key bindings.
func DefaultHistoryKeyMap() HistoryKeyMap {
	return HistoryKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextView: key.NewBinding(
			key.WithKeys("left", "right", "shift+tab"),
			key.WithHelp("left/right", "recent/best"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b", "tab"),
			key.WithHelp("esc/tab", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// HistoryModel is the Bubble Tea model for the match history screen.
type HistoryModel struct {
	store       *storage.Store
	view        historyView
	matches     []storage.Match
	stats       storage.Stats
	loadErr     error
	table       table.Model
	help        help.Model
	keys        HistoryKeyMap
	width       int
	height      int
	standalone  bool // Quit the program on back/quit instead of returning to the game
	quitting    bool
	goingBack   bool
	showSidebar bool
}

// NewHistoryModel creates a new history model and loads the recent matches.
func NewHistoryModel(store *storage.Store, width, height int) HistoryModel {
	h := help.New()
	h.ShowAll = false

	m := HistoryModel{
		store:       store,
		keys:        DefaultHistoryKeyMap(),
		help:        h,
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}
	m.table = m.createTable()
	m.load()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *HistoryModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Winner", Width: 9},
		{Title: "You", Width: 6},
		{Title: "CPU", Width: 6},
		{Title: "Turns", Width: 6},
		{Title: "Date", Width: 14},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// load refreshes matches and stats for the current view.
func (m *HistoryModel) load() {
	m.matches, m.loadErr = nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	var err error
	switch m.view {
	case viewBest:
		m.matches, err = m.store.TopRewards(maxMatches)
	default:
		m.matches, err = m.store.RecentMatches(maxMatches)
	}
	if err != nil {
		m.loadErr = err
	}
	if st, err := m.store.Stats(); err == nil {
		m.stats = st
	} else if m.loadErr == nil {
		m.loadErr = err
	}
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded matches.
func (m *HistoryModel) updateTableRows() {
	rows := make([]table.Row, len(m.matches))
	for i, mt := range m.matches {
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			mt.Winner,
			fmt.Sprintf("%d", mt.PlayerReward),
			fmt.Sprintf("%d", mt.ComputerReward),
			fmt.Sprintf("%d", mt.Turns),
			mt.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the history model.
func (m HistoryModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the history screen.
func (m HistoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, m.exitCmd()

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, m.exitCmd()

		case key.Matches(msg, m.keys.NextView):
			m.view = 1 - m.view
			m.load()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m HistoryModel) exitCmd() tea.Cmd {
	if m.standalone {
		return tea.Quit
	}
	return nil
}

// View renders the history screen.
func (m HistoryModel) View() string {
	if m.standalone && (m.quitting || m.goingBack) {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	b.WriteString(titleStyle.Render(centerText(m.view.title(), m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showSidebar {
		sidebarStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(sidebarWidth).
			Padding(0, 1)
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top,
			sidebarStyle.Render(m.renderStats()), "  ", tableRendered))
	} else {
		b.WriteString(centerText(m.renderSummary(), m.width))
		b.WriteString("\n\n")
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the sidebar with aggregate statistics.
func (m HistoryModel) renderStats() string {
	var sb strings.Builder
	sb.WriteString("Stats\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Games:   %d\n", m.stats.Games)
	fmt.Fprintf(&sb, "Wins:    %d\n", m.stats.Wins)
	fmt.Fprintf(&sb, "Losses:  %d\n", m.stats.Losses)
	fmt.Fprintf(&sb, "Win %%:   %.0f\n", m.stats.WinRate()*100)
	fmt.Fprintf(&sb, "Avg turns: %.1f\n", m.stats.AvgTurns)
	if m.stats.Wins > 0 {
		fmt.Fprintf(&sb, "Best:    %d\n", m.stats.BestReward)
	}
	return sb.String()
}

// renderSummary is the one-line stats shown on narrow terminals.
func (m HistoryModel) renderSummary() string {
	return fmt.Sprintf("%d games, %d wins, %.1f avg turns",
		m.stats.Games, m.stats.Wins, m.stats.AvgTurns)
}

// renderTableContent renders the table or empty message.
func (m HistoryModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	switch {
	case m.loadErr != nil:
		return emptyStyle.Render("Could not load history:\n" + m.loadErr.Error())
	case m.store == nil:
		return emptyStyle.Render("History is not available.\nNo database is open.")
	case len(m.matches) == 0 && m.view == viewBest:
		return emptyStyle.Render("No wins recorded yet.\nBeat the computer to get on the board!")
	case len(m.matches) == 0:
		return emptyStyle.Render("No matches recorded yet.\nFinish a game to start your history!")
	}

	return m.table.View()
}

// IsGoingBack returns true if the user wants to return to the game.
func (m HistoryModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if the user wants to quit entirely.
func (m HistoryModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunHistory runs the history screen on its own.
func RunHistory(store *storage.Store, width, height int) error {
	model := NewHistoryModel(store, width, height)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
