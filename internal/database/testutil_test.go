package database

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/akyairhashvil/sprintline/internal/models"
)

type TestDataBuilder struct {
	t         *testing.T
	ctx       context.Context
	db        *Database
	projectID int64
	sprintIDs []int64
	issueIDs  []int64
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	return &TestDataBuilder{t: t, ctx: ctx, db: db, projectID: 1}
}

func (b *TestDataBuilder) WithProject(projectID int64) *TestDataBuilder {
	b.projectID = projectID
	return b
}

func (b *TestDataBuilder) WithSprint(name string, status models.SprintStatus) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.CreateSprint(b.ctx, models.Sprint{
		ProjectID: b.projectID,
		Name:      name,
		Status:    status,
	})
	if err != nil {
		b.t.Fatalf("CreateSprint failed: %v", err)
	}
	b.sprintIDs = append(b.sprintIDs, id)
	return b
}

func (b *TestDataBuilder) WithDatedSprint(name string, status models.SprintStatus, start, end time.Time) *TestDataBuilder {
	b.t.Helper()
	id, err := b.db.CreateSprint(b.ctx, models.Sprint{
		ProjectID: b.projectID,
		Name:      name,
		Status:    status,
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		b.t.Fatalf("CreateSprint failed: %v", err)
	}
	b.sprintIDs = append(b.sprintIDs, id)
	return b
}

func (b *TestDataBuilder) WithIssues(count int) *TestDataBuilder {
	b.t.Helper()
	for i := 0; i < count; i++ {
		id, err := b.db.CreateIssue(b.ctx, models.Issue{
			ProjectID: b.projectID,
			Title:     fmt.Sprintf("Issue %d", len(b.issueIDs)+1),
		})
		if err != nil {
			b.t.Fatalf("CreateIssue failed: %v", err)
		}
		b.issueIDs = append(b.issueIDs, id)
	}
	return b
}

func (b *TestDataBuilder) WithIssue(is models.Issue) *TestDataBuilder {
	b.t.Helper()
	if is.ProjectID == 0 {
		is.ProjectID = b.projectID
	}
	id, err := b.db.CreateIssue(b.ctx, is)
	if err != nil {
		b.t.Fatalf("CreateIssue failed: %v", err)
	}
	b.issueIDs = append(b.issueIDs, id)
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) SprintID(i int) int64 {
	b.t.Helper()
	if i >= len(b.sprintIDs) {
		b.t.Fatalf("sprint %d not built, have %d", i, len(b.sprintIDs))
	}
	return b.sprintIDs[i]
}

func (b *TestDataBuilder) IssueID(i int) int64 {
	b.t.Helper()
	if i >= len(b.issueIDs) {
		b.t.Fatalf("issue %d not built, have %d", i, len(b.issueIDs))
	}
	return b.issueIDs[i]
}
