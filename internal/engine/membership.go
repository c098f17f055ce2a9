package engine

import (
	"context"

	"github.com/akyairhashvil/sprintline/internal/database"
	"github.com/akyairhashvil/sprintline/internal/models"
)

// Memberships owns the sprint-issue association and the invariant that an
// issue belongs to at most one active sprint at a time.
type Memberships struct {
	sprints database.SprintStore
	members database.MembershipStore
}

func NewMemberships(sprints database.SprintStore, members database.MembershipStore) *Memberships {
	return &Memberships{sprints: sprints, members: members}
}

// AddIssue assigns an issue to a sprint at the given rank. Adding an issue
// that is already in this sprint updates its rank. Adding an issue that
// belongs to a different active sprint fails with a conflict and leaves
// both sprints untouched.
func (m *Memberships) AddIssue(ctx context.Context, sprintID, issueID int64, order int) error {
	if order < 0 {
		return validationf("order must be non-negative")
	}
	if _, err := m.sprints.GetSprint(ctx, sprintID); err != nil {
		return storeErr(err)
	}
	if err := m.members.UpsertMembership(ctx, sprintID, issueID, order); err != nil {
		if KindOf(storeErr(err)) == KindConflict {
			return conflictf("issue %d already belongs to an active sprint", issueID)
		}
		return storeErr(err)
	}
	return nil
}

// RemoveIssue takes an issue out of a sprint.
func (m *Memberships) RemoveIssue(ctx context.Context, sprintID, issueID int64) error {
	if err := m.members.DeleteMembership(ctx, sprintID, issueID); err != nil {
		if KindOf(storeErr(err)) == KindNotFound {
			return notFoundf("issue %d is not in sprint %d", issueID, sprintID)
		}
		return storeErr(err)
	}
	return nil
}

// Reorder overwrites the rank of every named member, all-or-nothing.
func (m *Memberships) Reorder(ctx context.Context, sprintID int64, orders map[int64]int) error {
	if len(orders) == 0 {
		return validationf("no issue orders given")
	}
	for issueID, order := range orders {
		if order < 0 {
			return validationf("negative order for issue %d", issueID)
		}
	}
	if _, err := m.sprints.GetSprint(ctx, sprintID); err != nil {
		return storeErr(err)
	}
	return storeErr(m.members.ReorderMemberships(ctx, sprintID, orders))
}

// ListMembers returns a sprint's memberships by rank ascending.
func (m *Memberships) ListMembers(ctx context.Context, sprintID int64) ([]models.Membership, error) {
	if _, err := m.sprints.GetSprint(ctx, sprintID); err != nil {
		return nil, storeErr(err)
	}
	members, err := m.members.ListMembers(ctx, sprintID)
	if err != nil {
		return nil, storeErr(err)
	}
	return members, nil
}
