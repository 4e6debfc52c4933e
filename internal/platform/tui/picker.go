package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// Picker layout constants
const (
	minWidthForPreview = 80 // Minimum width to show the level preview
	previewMaxWidth    = 30
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	emptyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
)

// PickerModel is the Bubble Tea model for the level picker.
type PickerModel struct {
	levels  []levels.Level
	best    map[string]int // Fewest recorded moves per solved level
	store   *storage.Store
	logger  *log.Logger
	table   table.Model
	help    help.Model
	keys    PickerKeyMap
	width   int
	height  int
	preview bool // Whether to show the level preview

	quitting bool
	selected *levels.Level
}

// NewPickerModel creates a new level picker.
func NewPickerModel(lvls []levels.Level, store *storage.Store, width, height int, logger *log.Logger) PickerModel {
	if logger == nil {
		logger = log.Default()
	}
	h := help.New()
	h.Width = width

	m := PickerModel{
		levels:  lvls,
		store:   store,
		logger:  logger,
		keys:    DefaultPickerKeyMap(),
		help:    h,
		width:   width,
		height:  height,
		preview: width >= minWidthForPreview,
	}
	m.loadSolved()
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// loadSolved reads the best solution per level from the store.
func (m *PickerModel) loadSolved() {
	m.best = make(map[string]int)
	if m.store == nil {
		return
	}
	summary, err := m.store.SolvedLevels()
	if err != nil {
		m.logger.Warn("could not load solved levels", "error", err)
		return
	}
	for _, s := range summary {
		m.best[s.LevelID] = s.BestMoves
	}
}

// createTable creates a new table with appropriate columns.
func (m *PickerModel) createTable() table.Model {
	tableWidth := m.width - 6 // Border and padding
	if m.preview {
		tableWidth -= previewMaxWidth + 6
	}

	nameWidth := tableWidth - 4 - 14 - 8 - 6 - 8 // Column widths and cell padding
	if nameWidth < 10 {
		nameWidth = 10
	}

	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Level", Width: 14},
		{Title: "Name", Width: nameWidth},
		{Title: "Size", Width: 8},
		{Title: "Best", Width: 6},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(3, m.height-8)), // Header, help and margins
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

// updateTableRows fills the table from the level list.
func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.levels))
	for i, lvl := range m.levels {
		size := "?"
		if grid, err := lvl.Parse(); err == nil {
			size = fmt.Sprintf("%dx%d", grid.Width, grid.Height)
		}
		best := "-"
		if n, ok := m.best[lvl.ID]; ok {
			best = fmt.Sprintf("%d", n)
		}
		rows[i] = table.Row{fmt.Sprintf("%d", i+1), lvl.ID, lvl.Name, size, best}
	}
	cursor := m.table.Cursor()
	m.table.SetRows(rows)
	if cursor < len(rows) {
		m.table.SetCursor(cursor)
	}
}

// Init initializes the picker.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if i := m.table.Cursor(); i >= 0 && i < len(m.levels) {
				lvl := m.levels[i]
				m.selected = &lvl
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview = m.width >= minWidthForPreview
		m.help.Width = msg.Width
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(cursor)
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(centerText("S O K O B A N", m.width)))
	b.WriteString("\n\n")

	var body string
	if len(m.levels) == 0 {
		body = emptyStyle.Render("No levels found.\nAdd .txt, .sok or .yaml files to the levels directory.")
	} else {
		body = panelStyle.Render(m.table.View())
		if m.preview {
			body = lipgloss.JoinHorizontal(lipgloss.Top, body, "  ", panelStyle.Render(m.renderPreview()))
		}
	}
	b.WriteString(body)

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPreview draws the selected level as text.
func (m PickerModel) renderPreview() string {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.levels) {
		return ""
	}
	lvl := m.levels[i]
	grid, err := lvl.Parse()
	if err != nil {
		return err.Error()
	}

	lines := strings.Split(core.RenderASCII(grid), "\n")
	for j, line := range lines {
		if len(line) > previewMaxWidth {
			lines[j] = line[:previewMaxWidth]
		}
	}
	return titleStyle.Render(lvl.Name) + "\n\n" + strings.Join(lines, "\n")
}

// Selected returns the chosen level, or nil if none was chosen.
func (m PickerModel) Selected() *levels.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m PickerModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
