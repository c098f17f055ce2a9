package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/sprintline/internal/config"
	"github.com/akyairhashvil/sprintline/internal/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("Error: %v\nPress Ctrl+C to quit.", m.err)
	}
	if m.width == 0 {
		return "loading..."
	}

	header := m.renderHeader()
	footer := m.renderFooter()
	boardHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	board := m.renderBoard(boardHeight)

	return lipgloss.JoinVertical(lipgloss.Left, header, board, footer)
}

func (m Model) renderHeader() string {
	var content string
	var style lipgloss.Style

	if sprint, _ := m.activeSprint(); sprint != nil {
		met := m.metrics[sprint.ID]
		bar := ""
		if met.TotalPoints > 0 {
			bar = "  " + m.progress.ViewAs(met.CompletionPct/100)
		}
		content = fmt.Sprintf("ACTIVE: %s  |  %d/%d pts%s", sprint.Name, met.CompletedPoints, met.TotalPoints, bar)
		style = m.theme.Focused
	} else {
		content = fmt.Sprintf("%s  |  no active sprint  |  [s] to start one", config.AppName)
		style = m.theme.Dim
	}

	frame := lipgloss.NewStyle().
		Align(lipgloss.Center).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	width := m.width - lipgloss.Width(frame.Render(""))
	if width < 1 {
		width = 1
	}
	return frame.Width(width).Render(style.Render(content))
}

func (m Model) renderBoard(height int) string {
	if height <= 0 || len(m.columns) == 0 {
		return ""
	}

	colFrame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Dim.GetForeground()).
		Padding(0, 1)
	focusedFrame := colFrame.
		BorderForeground(m.theme.Border).
		BorderStyle(lipgloss.ThickBorder())

	colExtra := lipgloss.Width(colFrame.Render(""))
	contentWidth := m.width/len(m.columns) - colExtra
	if contentWidth < 1 {
		contentWidth = 1
	}
	contentHeight := height - lipgloss.Height(colFrame.Render(""))
	if contentHeight < 0 {
		contentHeight = 0
	}

	var rendered []string
	for colIdx, col := range m.columns {
		frame := colFrame
		if colIdx == m.focusedCol {
			frame = focusedFrame
		}

		title := col.title
		if col.sprint != nil {
			switch col.sprint.Status {
			case models.SprintActive:
				title = "▶ " + title
			case models.SprintPlanned:
				title = "· " + title
			}
		}
		header := m.theme.Header.Width(contentWidth).Render(title)

		var lines []string
		if len(col.issues) == 0 {
			lines = []string{m.theme.Dim.Render("  (empty)")}
		} else {
			for rowIdx, issue := range col.issues {
				lines = append(lines, m.renderIssueLine(issue, contentWidth,
					colIdx == m.focusedCol && rowIdx == m.focusedRow))
			}
		}
		visible := contentHeight - lipgloss.Height(header)
		if visible > 0 && len(lines) > visible {
			lines = lines[:visible]
			lines[len(lines)-1] = m.theme.Dim.Render("  ...")
		}

		body := lipgloss.JoinVertical(lipgloss.Left, header, strings.Join(lines, "\n"))
		rendered = append(rendered, frame.
			Width(contentWidth).
			Height(contentHeight).
			MaxHeight(contentHeight).
			Render(body))
	}

	board := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	board = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, board)
	return lipgloss.NewStyle().Height(height).MaxHeight(height).Render(board)
}

func (m Model) renderIssueLine(issue models.Issue, width int, focused bool) string {
	points := ""
	if issue.StoryPoints != nil {
		points = fmt.Sprintf(" (%dp)", *issue.StoryPoints)
	}
	raw := fmt.Sprintf("• %s%s #%d", issue.Title, points, issue.ID)

	base := m.priorityStyle(issue.Priority)
	if issue.Status == models.IssueDone {
		base = m.theme.DoneIssue
	}
	lead := "  "
	if focused {
		base = m.theme.Focused
		lead = "> "
	}

	line := lead + base.Render(raw)
	return ansi.Truncate(line, width, "…")
}

func (m Model) priorityStyle(p models.Priority) lipgloss.Style {
	switch p {
	case models.PriorityCritical:
		return m.theme.PriorityCritical
	case models.PriorityHigh:
		return m.theme.PriorityHigh
	case models.PriorityLow:
		return m.theme.PriorityLow
	default:
		return m.theme.PriorityMedium
	}
}

func (m Model) renderFooter() string {
	var content string
	switch {
	case m.creatingSprint:
		content = m.theme.Input.Render(m.input.View())
	case m.statusMessage != "":
		style := m.theme.Focused
		if m.statusIsError {
			style = m.theme.PriorityCritical
		}
		content = style.Render(m.statusMessage)
	default:
		content = m.theme.Dim.Render(
			"[n]New Sprint | [s]Start | [C]Complete | [a]Assign | [x]Remove | [J/K]Move | [r]Refresh | [q]Quit")
	}

	boxed := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Border).
		Padding(0, 1)
	innerWidth := m.width - lipgloss.Width(boxed.Render(""))
	if innerWidth < 1 {
		innerWidth = 1
	}
	if !m.creatingSprint {
		content = lipgloss.PlaceHorizontal(innerWidth, lipgloss.Center, content)
	}
	return boxed.Width(innerWidth).Render(content)
}
