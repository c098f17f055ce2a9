package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/sprintline/internal/models"
)

// SprintStore defines sprint persistence operations.
type SprintStore interface {
	CreateSprint(ctx context.Context, s models.Sprint) (int64, error)
	GetSprint(ctx context.Context, id int64) (models.Sprint, error)
	UpdateSprintDates(ctx context.Context, id int64, start, end *time.Time) error
	UpdateSprintStatus(ctx context.Context, id int64, status models.SprintStatus) error
	SoftDeleteSprint(ctx context.Context, id int64) error
	SprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error)
	FindOverlappingSprints(ctx context.Context, projectID int64, start, end time.Time, excludeID int64) ([]models.Sprint, error)
	GetActiveSprint(ctx context.Context, projectID int64) (models.Sprint, error)
}

// MembershipStore defines sprint-membership persistence operations. The
// multi-row operations are atomic: callers never observe partial writes.
type MembershipStore interface {
	UpsertMembership(ctx context.Context, sprintID, issueID int64, order int) error
	DeleteMembership(ctx context.Context, sprintID, issueID int64) error
	ReorderMemberships(ctx context.Context, sprintID int64, orders map[int64]int) error
	ListMembers(ctx context.Context, sprintID int64) ([]models.Membership, error)
	SprintForIssue(ctx context.Context, issueID int64) (int64, bool, error)
	CompleteAndRelease(ctx context.Context, sprintID int64, issueIDs []int64) error
}

// IssueStore defines the issue fields this engine reads and writes.
type IssueStore interface {
	IssuesByIDs(ctx context.Context, ids []int64) ([]models.Issue, error)
	StoryPointsAndStatus(ctx context.Context, issueID int64) (int, models.IssueStatus, error)
	ListBacklog(ctx context.Context, projectID int64, filter models.BacklogFilter, sort models.BacklogSort, limit, offset int) ([]models.Issue, error)
	CountBacklog(ctx context.Context, projectID int64, filter models.BacklogFilter) (int, error)
	BacklogIssueIDs(ctx context.Context, projectID int64) ([]int64, error)
	AssignBacklogOrders(ctx context.Context, orders map[int64]int) error
	ClearBacklogOrder(ctx context.Context, issueID int64) error
	DoneTimes(ctx context.Context, issueIDs []int64) (map[int64]time.Time, error)
}

// Store combines all store interfaces.
//
//go:generate mockgen -destination=../engine/mock_stores_test.go -package=engine github.com/akyairhashvil/sprintline/internal/database SprintStore,MembershipStore,IssueStore
type Store interface {
	SprintStore
	MembershipStore
	IssueStore
}

var _ Store = (*Database)(nil)
