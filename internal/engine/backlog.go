package engine

import (
	"context"

	"github.com/akyairhashvil/sprintline/internal/config"
	"github.com/akyairhashvil/sprintline/internal/database"
	"github.com/akyairhashvil/sprintline/internal/models"
	"github.com/akyairhashvil/sprintline/internal/util"
)

// Backlog owns the ranked ordering of a project's unassigned issues. It
// writes backlog_order only for issues with no sprint membership.
type Backlog struct {
	issues  database.IssueStore
	members database.MembershipStore
}

func NewBacklog(issues database.IssueStore, members database.MembershipStore) *Backlog {
	return &Backlog{issues: issues, members: members}
}

// ListRequest parameterizes a backlog page. Zero Page and Limit select the
// first page at the default size.
type ListRequest struct {
	ProjectID int64
	Page      int
	Limit     int
	Filter    models.BacklogFilter
	Sort      models.BacklogSort
}

// List returns one page of the backlog: every non-deleted issue of the
// project with no sprint membership, under the requested filters and sort.
func (b *Backlog) List(ctx context.Context, req ListRequest) (models.BacklogPage, error) {
	page := req.Page
	if page == 0 {
		page = 1
	}
	limit := req.Limit
	if limit == 0 {
		limit = config.DefaultPageSize
	}
	if page < 1 {
		return models.BacklogPage{}, validationf("page must be at least 1")
	}
	if limit < 1 {
		return models.BacklogPage{}, validationf("limit must be at least 1")
	}
	if limit > config.MaxPageSize {
		limit = config.MaxPageSize
	}

	total, err := b.issues.CountBacklog(ctx, req.ProjectID, req.Filter)
	if err != nil {
		return models.BacklogPage{}, storeErr(err)
	}

	result := models.BacklogPage{
		Total: total,
		Pages: util.CeilDiv(total, limit),
		Page:  page,
		Limit: limit,
	}
	if total == 0 {
		return result, nil
	}

	offset := (page - 1) * limit
	issues, err := b.issues.ListBacklog(ctx, req.ProjectID, req.Filter, req.Sort, limit, offset)
	if err != nil {
		return models.BacklogPage{}, storeErr(err)
	}
	result.Issues = issues
	return result, nil
}

// Prioritize assigns sequential ranks 0..N-1 to the given issues in order,
// in one transaction. Issues not named keep their rank.
func (b *Backlog) Prioritize(ctx context.Context, projectID int64, orderedIssueIDs []int64) error {
	if len(orderedIssueIDs) == 0 {
		return validationf("no issues to prioritize")
	}
	orders := make(map[int64]int, len(orderedIssueIDs))
	for i, id := range orderedIssueIDs {
		if _, dup := orders[id]; dup {
			return validationf("issue %d listed twice", id)
		}
		orders[id] = i
	}
	return storeErr(b.issues.AssignBacklogOrders(ctx, orders))
}

// Reposition moves one backlog issue to a new index and renumbers the whole
// sequence 0..len-1 in one transaction. The index is clamped to the valid
// range. Issues assigned to a sprint cannot be repositioned.
func (b *Backlog) Reposition(ctx context.Context, projectID, issueID int64, newIndex int) error {
	if _, assigned, err := b.members.SprintForIssue(ctx, issueID); err != nil {
		return storeErr(err)
	} else if assigned {
		return conflictf("issue %d is assigned to a sprint and cannot be repositioned in the backlog", issueID)
	}

	ids, err := b.issues.BacklogIssueIDs(ctx, projectID)
	if err != nil {
		return storeErr(err)
	}

	at := -1
	for i, id := range ids {
		if id == issueID {
			at = i
			break
		}
	}
	if at < 0 {
		return notFoundf("issue %d is not in the backlog of project %d", issueID, projectID)
	}

	remaining := append(append([]int64{}, ids[:at]...), ids[at+1:]...)
	idx := util.Clamp(newIndex, 0, len(remaining))
	sequence := append(append(append([]int64{}, remaining[:idx]...), issueID), remaining[idx:]...)

	orders := make(map[int64]int, len(sequence))
	for i, id := range sequence {
		orders[id] = i
	}
	return storeErr(b.issues.AssignBacklogOrders(ctx, orders))
}
