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

	"github.com/vovakirdan/jigsaw-drop/internal/puzzle"
	"github.com/vovakirdan/jigsaw-drop/internal/registry"
	"github.com/vovakirdan/jigsaw-drop/internal/storage"
)

const (
	minWidthForSidebar = 80
	sidebarWidth       = 20
	maxScores          = 100
	maxRuns            = 50
)

// boardView selects what the table lists.
type boardView int

const (
	viewBest boardView = iota // top scores
	viewRuns                  // most recent finished games
)

func (v boardView) title() string {
	if v == viewRuns {
		return "RECENT RUNS"
	}
	return "HIGH SCORES"
}

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Next   key.Binding
	Prev   key.Binding
	Toggle key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Back, k.Quit}
}

func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Prev, k.Next, k.Toggle},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns the scoreboard bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("up/k", "scroll up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("down/j", "scroll down")),
		Next:   key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("right/tab", "next puzzle")),
		Prev:   key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("left", "prev puzzle")),
		Toggle: key.NewBinding(key.WithKeys("v", "r"), key.WithHelp("v", "scores/runs")),
		Back:   key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best scores and recent runs per puzzle size.
type ScoreboardModel struct {
	games     []registry.GameInfo
	current   int
	view      boardView
	store     *storage.Store
	scores    []storage.ScoreEntry
	runs      []storage.Run
	stats     *storage.GameStats
	style     MenuTheme
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard for every registered puzzle.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
		style:  MenuThemeFor(puzzle.ThemeClassic),
	}
	if store != nil {
		m.style = MenuThemeFor(store.CurrentTheme())
	}
	m.table = m.newTable()
	if len(m.games) > 0 {
		m.load(m.games[0].ID)
	}
	return m
}

func (m ScoreboardModel) sidebar() bool {
	return m.width >= minWidthForSidebar
}

// columns returns the table columns for the current view, widening the
// last one into whatever space is left.
func (m ScoreboardModel) columns() []table.Column {
	var cols []table.Column
	if m.view == viewRuns {
		cols = []table.Column{
			{Title: "Result", Width: 8},
			{Title: "Score", Width: 7},
			{Title: "Pieces", Width: 7},
			{Title: "Lvl", Width: 4},
			{Title: "Time", Width: 7},
			{Title: "Date", Width: 12},
		}
	} else {
		cols = []table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Date", Width: 12},
		}
	}

	avail := m.width - 8
	if m.sidebar() {
		avail -= sidebarWidth + 3
	}
	used := 0
	for _, c := range cols {
		used += c.Width + 2
	}
	if extra := avail - used; extra > 0 {
		cols[len(cols)-1].Width += min(extra, 8)
	}
	return cols
}

func (m ScoreboardModel) newTable() table.Model {
	t := table.New(
		table.WithColumns(m.columns()),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-10)),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(m.style.Border).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(m.style.Highlight).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches scores, runs and stats for a puzzle.
func (m *ScoreboardModel) load(gameID string) {
	m.scores, m.runs, m.stats = nil, nil, nil
	if m.store != nil {
		if scores, err := m.store.TopScores(gameID, maxScores); err == nil {
			m.scores = scores
		}
		if runs, err := m.store.RecentRuns(gameID, maxRuns); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(gameID); err == nil {
			m.stats = stats
		}
	}
	m.fillTable()
}

// rows converts the loaded data for the current view.
func (m ScoreboardModel) rows() []table.Row {
	if m.view == viewRuns {
		rows := make([]table.Row, len(m.runs))
		for i, r := range m.runs {
			result := "aborted"
			if r.Success {
				result = "solved"
			}
			rows[i] = table.Row{
				result,
				fmt.Sprint(r.Score),
				fmt.Sprintf("%d/%d", r.PiecesLocked, r.PiecesTotal),
				fmt.Sprint(r.Level),
				formatDuration(r.Duration),
				r.CreatedAt.Format("Jan 02 15:04"),
			}
		}
		return rows
	}
	rows := make([]table.Row, len(m.scores))
	for i, s := range m.scores {
		rows[i] = table.Row{fmt.Sprintf("#%d", i+1), fmt.Sprint(s.Score), s.CreatedAt.Format("Jan 02 15:04")}
	}
	return rows
}

func (m *ScoreboardModel) fillTable() {
	// Columns first: SetRows with a row wider than the columns panics.
	m.table.SetRows(nil)
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows())
	m.table.GotoTop()
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}

func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.shift(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.shift(-1)
			return m, nil
		case key.Matches(msg, m.keys.Toggle):
			m.view = 1 - m.view
			m.fillTable()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = m.newTable()
		m.fillTable()
		m.help.Width = msg.Width
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m *ScoreboardModel) shift(step int) {
	if len(m.games) == 0 {
		return
	}
	m.current = (m.current + step + len(m.games)) % len(m.games)
	m.load(m.games[m.current].ID)
}

func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := m.view.title()
	if len(m.games) > 0 {
		title += " - " + m.games[m.current].Title
	}

	var b strings.Builder
	b.WriteString(m.style.Title.MarginBottom(1).Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.style.Border).
		Padding(0, 1)
	body := box.Render(m.tableOrEmpty())

	if m.sidebar() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), "  ", body))
	} else {
		b.WriteString(centerText(m.renderSwitcher(), m.width))
		b.WriteString("\n\n")
		b.WriteString(body)
	}
	b.WriteString("\n")

	if line := m.statsLine(); line != "" {
		b.WriteString("\n")
		b.WriteString(m.style.Description.Render(centerText(line, m.width)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.help.View(m.keys)))
	return b.String()
}

// statsLine summarizes the selected puzzle's score history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	solved := 0
	for _, r := range m.runs {
		if r.Success {
			solved++
		}
	}
	return fmt.Sprintf("Games: %d  |  Solved: %d  |  Best: %d  |  Average: %.0f  |  Last: %s",
		m.stats.GamesCount, solved, m.stats.HighScore, m.stats.AvgScore, m.stats.LastPlayed.Format("Jan 02 15:04"))
}

func (m ScoreboardModel) renderSidebar() string {
	var sb strings.Builder
	sb.WriteString("Puzzles\n")
	sb.WriteString(strings.Repeat("-", sidebarWidth-4))
	sb.WriteString("\n")
	for i, g := range m.games {
		line := "  " + truncate(g.Title, sidebarWidth-6)
		if i == m.current {
			line = m.style.ItemActive.Render("> " + truncate(g.Title, sidebarWidth-6))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.style.Border).
		Width(sidebarWidth).
		Padding(0, 1).
		Render(sb.String())
}

// renderSwitcher replaces the sidebar on narrow terminals.
func (m ScoreboardModel) renderSwitcher() string {
	if len(m.games) == 0 {
		return ""
	}
	return m.style.ItemActive.Render(fmt.Sprintf("< %s >", m.games[m.current].Title))
}

func (m ScoreboardModel) tableOrEmpty() string {
	empty := len(m.scores) == 0
	if m.view == viewRuns {
		empty = len(m.runs) == 0
	}
	if !empty {
		return m.table.View()
	}
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Italic(true).
		Padding(2, 4).
		Render("Nothing recorded yet.\nDrop some pieces first!")
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "."
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}
