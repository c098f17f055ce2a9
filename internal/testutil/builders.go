package testutil

import (
	"time"

	"github.com/akyairhashvil/sprintline/internal/models"
	"github.com/akyairhashvil/sprintline/internal/util"
)

// SprintBuilder provides a fluent API for creating test sprints.
type SprintBuilder struct {
	sprint models.Sprint
}

func NewSprint() *SprintBuilder {
	return &SprintBuilder{
		sprint: models.Sprint{
			ProjectID: 1,
			Name:      "Test Sprint",
			Status:    models.SprintPlanned,
			CreatedAt: time.Now(),
		},
	}
}

func (b *SprintBuilder) WithProject(id int64) *SprintBuilder {
	b.sprint.ProjectID = id
	return b
}

func (b *SprintBuilder) WithName(name string) *SprintBuilder {
	b.sprint.Name = name
	return b
}

func (b *SprintBuilder) WithGoal(goal string) *SprintBuilder {
	b.sprint.Goal = &goal
	return b
}

func (b *SprintBuilder) WithStatus(s models.SprintStatus) *SprintBuilder {
	b.sprint.Status = s
	return b
}

func (b *SprintBuilder) WithDates(start, end time.Time) *SprintBuilder {
	b.sprint.StartDate = &start
	b.sprint.EndDate = &end
	return b
}

func (b *SprintBuilder) Build() models.Sprint {
	return b.sprint
}

// IssueBuilder provides a fluent API for creating test issues.
type IssueBuilder struct {
	issue models.Issue
}

func NewIssue() *IssueBuilder {
	return &IssueBuilder{
		issue: models.Issue{
			ProjectID: 1,
			Title:     "Test Issue",
			Status:    models.IssueTodo,
			Priority:  models.PriorityMedium,
			Type:      "task",
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func (b *IssueBuilder) WithProject(id int64) *IssueBuilder {
	b.issue.ProjectID = id
	return b
}

func (b *IssueBuilder) WithTitle(title string) *IssueBuilder {
	b.issue.Title = title
	return b
}

func (b *IssueBuilder) WithStatus(s models.IssueStatus) *IssueBuilder {
	b.issue.Status = s
	return b
}

func (b *IssueBuilder) WithPriority(p models.Priority) *IssueBuilder {
	b.issue.Priority = p
	return b
}

func (b *IssueBuilder) WithType(t string) *IssueBuilder {
	b.issue.Type = t
	return b
}

func (b *IssueBuilder) WithPoints(points int) *IssueBuilder {
	b.issue.StoryPoints = util.Ptr(points)
	return b
}

func (b *IssueBuilder) WithBacklogOrder(order int) *IssueBuilder {
	b.issue.BacklogOrder = util.Ptr(order)
	return b
}

func (b *IssueBuilder) WithAssignee(id int64) *IssueBuilder {
	b.issue.AssigneeID = util.Ptr(id)
	return b
}

func (b *IssueBuilder) Build() models.Issue {
	return b.issue
}
