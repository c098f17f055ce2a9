package engine

import (
	"context"

	"github.com/akyairhashvil/sprintline/internal/database"
	"github.com/akyairhashvil/sprintline/internal/models"
)

// Completion performs the terminal sprint transition: it snapshots the
// sprint's metrics, marks it completed, and optionally releases unfinished
// issues back to the backlog.
type Completion struct {
	sprints database.SprintStore
	members database.MembershipStore
	issues  database.IssueStore
	calc    Calculator
}

func NewCompletion(sprints database.SprintStore, members database.MembershipStore, issues database.IssueStore) *Completion {
	return &Completion{sprints: sprints, members: members, issues: issues}
}

// Complete finishes a sprint. When moveIncompleteToBacklog is set, every
// member issue not yet done loses its membership and returns to the
// backlog unranked. The membership removals and the status transition
// commit together; a failure leaves the sprint untouched.
func (c *Completion) Complete(ctx context.Context, sprintID int64, moveIncompleteToBacklog bool) (models.CompletionResult, error) {
	sprint, err := c.sprints.GetSprint(ctx, sprintID)
	if err != nil {
		return models.CompletionResult{}, storeErr(err)
	}
	if !allowedTransition(sprint.Status, models.SprintCompleted) {
		return models.CompletionResult{}, validationf("cannot complete sprint in status %s", sprint.Status)
	}

	members, err := c.members.ListMembers(ctx, sprintID)
	if err != nil {
		return models.CompletionResult{}, storeErr(err)
	}
	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.IssueID
	}
	issues, err := c.issues.IssuesByIDs(ctx, ids)
	if err != nil {
		return models.CompletionResult{}, storeErr(err)
	}

	result := models.CompletionResult{
		SprintID: sprintID,
		Metrics:  c.calc.Aggregate(issues),
	}

	var release []int64
	if moveIncompleteToBacklog {
		for _, is := range issues {
			if is.Status != models.IssueDone {
				release = append(release, is.ID)
			}
		}
	}
	if err := c.members.CompleteAndRelease(ctx, sprintID, release); err != nil {
		return models.CompletionResult{}, storeErr(err)
	}
	result.IncompleteIssuesMoved = len(release)
	return result, nil
}

// Burndown fetches a sprint's members and produces the aggregate metrics
// plus the daily series.
func (c *Completion) Burndown(ctx context.Context, sprintID int64) (models.SprintMetrics, []models.BurndownPoint, error) {
	sprint, err := c.sprints.GetSprint(ctx, sprintID)
	if err != nil {
		return models.SprintMetrics{}, nil, storeErr(err)
	}
	members, err := c.members.ListMembers(ctx, sprintID)
	if err != nil {
		return models.SprintMetrics{}, nil, storeErr(err)
	}
	ids := make([]int64, len(members))
	for i, m := range members {
		ids[i] = m.IssueID
	}
	issues, err := c.issues.IssuesByIDs(ctx, ids)
	if err != nil {
		return models.SprintMetrics{}, nil, storeErr(err)
	}
	doneAt, err := c.issues.DoneTimes(ctx, ids)
	if err != nil {
		return models.SprintMetrics{}, nil, storeErr(err)
	}
	return c.calc.Aggregate(issues), c.calc.Series(sprint, issues, doneAt), nil
}
