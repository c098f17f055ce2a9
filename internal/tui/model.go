// Package tui renders the sprint board: the ranked backlog next to each
// open sprint, with key-driven sprint lifecycle and issue movement.
package tui

import (
	"github.com/akyairhashvil/sprintline/internal/database"
	"github.com/akyairhashvil/sprintline/internal/engine"
	"github.com/akyairhashvil/sprintline/internal/models"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// column is one rendered board column: the backlog (sprint == nil) or a
// sprint with its member issues in rank order.
type column struct {
	title  string
	sprint *models.Sprint
	issues []models.Issue
}

// Model is the root bubbletea model for the sprint board.
type Model struct {
	eng       *engine.Engine
	store     database.Store
	projectID int64
	theme     Theme

	width  int
	height int

	columns    []column
	metrics    map[int64]models.SprintMetrics
	focusedCol int
	focusedRow int

	creatingSprint bool
	input          textinput.Model
	progress       progress.Model

	statusMessage string
	statusIsError bool
	err           error
}

func NewModel(eng *engine.Engine, store database.Store, projectID int64) Model {
	ti := textinput.New()
	ti.Placeholder = "Sprint name"
	ti.CharLimit = 120
	ti.Width = 40

	return Model{
		eng:       eng,
		store:     store,
		projectID: projectID,
		theme:     CurrentTheme,
		metrics:   map[int64]models.SprintMetrics{},
		input:     ti,
		progress:  progress.New(progress.WithDefaultGradient()),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.loadBoard())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case boardLoadedMsg:
		m.columns = msg.columns
		m.metrics = msg.metrics
		m.clampFocus()
		return m, nil

	case opDoneMsg:
		m.statusMessage = msg.status
		m.statusIsError = false
		return m, m.loadBoard()

	case errMsg:
		m.statusMessage = msg.err.Error()
		m.statusIsError = true
		return m, nil

	case tea.KeyMsg:
		if m.creatingSprint {
			return m.updateCreating(msg)
		}
		return m.updateBoard(msg)
	}

	return m, nil
}

func (m Model) updateCreating(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.creatingSprint = false
		m.input.Reset()
		return m, nil
	case tea.KeyEnter:
		name := m.input.Value()
		m.creatingSprint = false
		m.input.Reset()
		return m, m.createSprint(name)
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		if m.focusedCol > 0 {
			m.focusedCol--
			m.focusedRow = 0
		}
		return m, nil
	case "right", "l":
		if m.focusedCol < len(m.columns)-1 {
			m.focusedCol++
			m.focusedRow = 0
		}
		return m, nil
	case "up", "k":
		if m.focusedRow > 0 {
			m.focusedRow--
		}
		return m, nil
	case "down", "j":
		if col, ok := m.focusedColumn(); ok && m.focusedRow < len(col.issues)-1 {
			m.focusedRow++
		}
		return m, nil

	case "n":
		m.creatingSprint = true
		m.statusMessage = ""
		m.input.Focus()
		return m, textinput.Blink

	case "r":
		return m, m.loadBoard()

	case "s":
		if col, ok := m.focusedColumn(); ok && col.sprint != nil {
			return m, m.transitionSprint(col.sprint.ID, models.SprintActive)
		}
		return m, nil

	case "C":
		if col, ok := m.focusedColumn(); ok && col.sprint != nil {
			return m, m.completeSprint(col.sprint.ID)
		}
		return m, nil

	case "a":
		return m, m.assignFocusedIssue()

	case "x":
		if col, ok := m.focusedColumn(); ok && col.sprint != nil {
			if issue, ok := m.focusedIssue(); ok {
				return m, m.removeIssue(col.sprint.ID, issue.ID)
			}
		}
		return m, nil

	case "K":
		return m.moveFocusedIssue(-1)
	case "J":
		return m.moveFocusedIssue(1)
	}

	return m, nil
}

// moveFocusedIssue shifts the selected issue one slot within its column,
// through the backlog reposition or sprint reorder operation.
func (m Model) moveFocusedIssue(delta int) (tea.Model, tea.Cmd) {
	col, ok := m.focusedColumn()
	if !ok {
		return m, nil
	}
	issue, ok := m.focusedIssue()
	if !ok {
		return m, nil
	}
	target := m.focusedRow + delta
	if target < 0 || target >= len(col.issues) {
		return m, nil
	}
	m.focusedRow = target

	if col.sprint == nil {
		return m, m.repositionBacklogIssue(issue.ID, target)
	}

	orders := make(map[int64]int, len(col.issues))
	for i, is := range col.issues {
		orders[is.ID] = i
	}
	orders[issue.ID] = target
	orders[col.issues[target].ID] = m.focusedRow - delta
	return m, m.reorderSprint(col.sprint.ID, orders)
}

func (m Model) focusedColumn() (column, bool) {
	if m.focusedCol >= len(m.columns) {
		return column{}, false
	}
	return m.columns[m.focusedCol], true
}

func (m Model) focusedIssue() (models.Issue, bool) {
	col, ok := m.focusedColumn()
	if !ok || m.focusedRow >= len(col.issues) {
		return models.Issue{}, false
	}
	return col.issues[m.focusedRow], true
}

// activeSprint finds the board's active sprint column, if any.
func (m Model) activeSprint() (*models.Sprint, int) {
	for _, col := range m.columns {
		if col.sprint != nil && col.sprint.Status == models.SprintActive {
			return col.sprint, len(col.issues)
		}
	}
	return nil, 0
}

func (m *Model) clampFocus() {
	if m.focusedCol >= len(m.columns) {
		m.focusedCol = len(m.columns) - 1
	}
	if m.focusedCol < 0 {
		m.focusedCol = 0
	}
	if col, ok := m.focusedColumn(); ok {
		if m.focusedRow >= len(col.issues) {
			m.focusedRow = len(col.issues) - 1
		}
	}
	if m.focusedRow < 0 {
		m.focusedRow = 0
	}
}
