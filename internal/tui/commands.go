package tui

import (
	"context"
	"fmt"

	"github.com/akyairhashvil/sprintline/internal/config"
	"github.com/akyairhashvil/sprintline/internal/engine"
	"github.com/akyairhashvil/sprintline/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

type boardLoadedMsg struct {
	columns []column
	metrics map[int64]models.SprintMetrics
}

type opDoneMsg struct {
	status string
}

type errMsg struct {
	err error
}

// loadBoard fetches the backlog and every open sprint with its members.
func (m Model) loadBoard() tea.Cmd {
	eng, store, projectID := m.eng, m.store, m.projectID
	return func() tea.Msg {
		ctx := context.Background()

		page, err := eng.Backlog.List(ctx, engine.ListRequest{
			ProjectID: projectID,
			Limit:     config.MaxPageSize,
		})
		if err != nil {
			return errMsg{err}
		}
		columns := []column{{title: "Backlog", issues: page.Issues}}

		sprints, err := eng.Lifecycle.ListByProject(ctx, projectID)
		if err != nil {
			return errMsg{err}
		}
		metrics := make(map[int64]models.SprintMetrics, len(sprints))
		for i := range sprints {
			sprint := sprints[i]
			if sprint.Status == models.SprintCompleted {
				continue
			}
			members, err := eng.Memberships.ListMembers(ctx, sprint.ID)
			if err != nil {
				return errMsg{err}
			}
			ids := make([]int64, len(members))
			for j, mem := range members {
				ids[j] = mem.IssueID
			}
			issues, err := store.IssuesByIDs(ctx, ids)
			if err != nil {
				return errMsg{err}
			}
			sprintMetrics, _, err := eng.Completion.Burndown(ctx, sprint.ID)
			if err != nil {
				return errMsg{err}
			}
			metrics[sprint.ID] = sprintMetrics
			columns = append(columns, column{
				title:  sprint.Name,
				sprint: &sprints[i],
				issues: issues,
			})
		}

		return boardLoadedMsg{columns: columns, metrics: metrics}
	}
}

func (m Model) createSprint(name string) tea.Cmd {
	eng, projectID := m.eng, m.projectID
	return func() tea.Msg {
		sprint, err := eng.Lifecycle.Create(context.Background(), engine.SprintDraft{
			ProjectID: projectID,
			Name:      name,
		})
		if err != nil {
			return errMsg{err}
		}
		return opDoneMsg{status: fmt.Sprintf("created sprint %q", sprint.Name)}
	}
}

func (m Model) transitionSprint(sprintID int64, to models.SprintStatus) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		sprint, err := eng.Lifecycle.Transition(context.Background(), sprintID, to)
		if err != nil {
			return errMsg{err}
		}
		return opDoneMsg{status: fmt.Sprintf("sprint %q is now %s", sprint.Name, sprint.Status)}
	}
}

func (m Model) completeSprint(sprintID int64) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		result, err := eng.Completion.Complete(context.Background(), sprintID, true)
		if err != nil {
			return errMsg{err}
		}
		return opDoneMsg{status: fmt.Sprintf(
			"sprint completed: %d/%d points, %d issues back to backlog",
			result.Metrics.CompletedPoints, result.Metrics.TotalPoints, result.IncompleteIssuesMoved)}
	}
}

// assignFocusedIssue moves the selected backlog issue into the active
// sprint, appended at the end of its rank order.
func (m Model) assignFocusedIssue() tea.Cmd {
	col, ok := m.focusedColumn()
	if !ok || col.sprint != nil {
		return nil
	}
	issue, ok := m.focusedIssue()
	if !ok {
		return nil
	}
	sprint, memberCount := m.activeSprint()
	if sprint == nil {
		return func() tea.Msg {
			return errMsg{fmt.Errorf("no active sprint to assign to")}
		}
	}

	eng := m.eng
	sprintID, issueID, order := sprint.ID, issue.ID, memberCount
	return func() tea.Msg {
		if err := eng.Memberships.AddIssue(context.Background(), sprintID, issueID, order); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{status: fmt.Sprintf("issue #%d assigned", issueID)}
	}
}

func (m Model) removeIssue(sprintID, issueID int64) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		if err := eng.Memberships.RemoveIssue(context.Background(), sprintID, issueID); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{status: fmt.Sprintf("issue #%d removed", issueID)}
	}
}

func (m Model) reorderSprint(sprintID int64, orders map[int64]int) tea.Cmd {
	eng := m.eng
	return func() tea.Msg {
		if err := eng.Memberships.Reorder(context.Background(), sprintID, orders); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{status: "sprint reordered"}
	}
}

func (m Model) repositionBacklogIssue(issueID int64, index int) tea.Cmd {
	eng, projectID := m.eng, m.projectID
	return func() tea.Msg {
		if err := eng.Backlog.Reposition(context.Background(), projectID, issueID, index); err != nil {
			return errMsg{err}
		}
		return opDoneMsg{status: "backlog reordered"}
	}
}
