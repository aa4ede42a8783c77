package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-runner/internal/storage"
)

// Scoreboard layout constants
const (
	minWidthForStats = 90  // Minimum width to show the stats panel
	statsWidth       = 24  // Width of the stats panel
	maxRuns          = 100 // Max runs to load
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Mine    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Mine, k.Refresh, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Mine, k.Refresh, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Mine: key.NewBinding(
			key.WithKeys("tab", "m"),
			key.WithHelp("tab", "all/mine"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel is the Bubble Tea model for the run history screen.
type ScoreboardModel struct {
	store     *storage.Store
	player    string // Filter target for the "mine" view
	onlyMine  bool
	runs      []storage.Run
	stats     *storage.Stats
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	showStats bool
}

// NewScoreboardModel creates a new scoreboard model.
func NewScoreboardModel(store *storage.Store, player string, width, height int) ScoreboardModel {
	h := help.New()
	h.ShowAll = false

	m := ScoreboardModel{
		store:     store,
		player:    player,
		keys:      DefaultScoreboardKeyMap(),
		help:      h,
		width:     width,
		height:    height,
		showStats: width >= minWidthForStats,
	}

	m.table = m.createTable()
	m.loadRuns()

	return m
}

// createTable creates a new table sized for the current window.
func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Player", Width: 12},
		{Title: "Score", Width: 8},
		{Title: "Finds", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Date", Width: 13},
	}

	// Give spare width to the player column
	tableWidth := m.width - 4
	if m.showStats {
		tableWidth -= statsWidth + 3
	}
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if extra := tableWidth - used; extra > 0 {
		columns[1].Width += min(extra, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
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

// loadRuns reloads runs and aggregate stats from the store.
func (m *ScoreboardModel) loadRuns() {
	m.runs, m.stats, m.loadErr = nil, nil, nil
	if m.store == nil {
		m.updateTableRows()
		return
	}

	if m.onlyMine {
		m.runs, m.loadErr = m.store.PlayerRuns(m.player, maxRuns)
	} else {
		m.runs, m.loadErr = m.store.TopRuns(maxRuns)
	}
	if m.loadErr == nil {
		m.stats, m.loadErr = m.store.Stats()
	}
	m.updateTableRows()
}

// updateTableRows updates the table with current runs.
func (m *ScoreboardModel) updateTableRows() {
	m.table.SetRows(runRows(m.runs))
	m.table.GotoTop()
}

// runRows formats runs as table rows in rank order.
func runRows(runs []storage.Run) []table.Row {
	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			r.Player,
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Discoveries),
			formatDuration(r.Duration),
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	return rows
}

// formatDuration renders a run length as m:ss.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Mine):
			m.onlyMine = !m.onlyMine
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Refresh):
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showStats = m.width >= minWidthForStats
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)

	title := "HIGH SCORES"
	if m.onlyMine {
		title = fmt.Sprintf("HIGH SCORES - %s", m.player)
	}

	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	tableRendered := tableStyle.Render(m.renderTableContent())

	if m.showStats {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tableRendered, "  ", m.renderStats()))
	} else {
		b.WriteString(tableRendered)
	}

	b.WriteString("\n")
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderStats renders the aggregate stats panel.
func (m ScoreboardModel) renderStats() string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(statsWidth).
		Padding(0, 1)

	var sb strings.Builder
	sb.WriteString("Totals\n")
	sb.WriteString(strings.Repeat("-", statsWidth-4))
	sb.WriteString("\n")

	if m.stats == nil {
		sb.WriteString("no data")
		return panelStyle.Render(sb.String())
	}

	fmt.Fprintf(&sb, "Runs:   %d\n", m.stats.Runs)
	fmt.Fprintf(&sb, "Best:   %d\n", m.stats.HighScore)
	fmt.Fprintf(&sb, "Avg:    %.1f\n", m.stats.AvgScore)
	fmt.Fprintf(&sb, "Finds:  %d\n", m.stats.TotalDiscoveries)
	if !m.stats.LastPlayed.IsZero() {
		fmt.Fprintf(&sb, "Last:   %s", m.stats.LastPlayed.Format("Jan 02"))
	}

	return panelStyle.Render(sb.String())
}

// renderTableContent renders the table or an empty message.
func (m ScoreboardModel) renderTableContent() string {
	emptyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4)

	if m.loadErr != nil {
		return emptyStyle.Render(fmt.Sprintf("Could not load runs:\n%v", m.loadErr))
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nPlay a game to set a high score!")
	}

	return m.table.View()
}

// IsQuitting returns true if the user closed the scoreboard.
func (m ScoreboardModel) IsQuitting() bool {
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

// RunScoreboard runs the scoreboard screen until the user quits.
func RunScoreboard(store *storage.Store, player string, width, height int) error {
	p := tea.NewProgram(
		NewScoreboardModel(store, player, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
