package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/sprintline/internal/models"
)

type IssueQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
	offset  int
}

func NewIssueQuery() *IssueQuery {
	return &IssueQuery{columns: issueColumns}
}

func (q *IssueQuery) Where(filter string, args ...interface{}) *IssueQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *IssueQuery) WhereProject(projectID int64) *IssueQuery {
	return q.Where("project_id = ?", projectID)
}

// WhereBacklog restricts to live issues with no membership in any sprint.
func (q *IssueQuery) WhereBacklog() *IssueQuery {
	return q.Where("deleted_at IS NULL").
		Where("id NOT IN (SELECT issue_id FROM sprint_memberships)")
}

func (q *IssueQuery) WhereFilter(f models.BacklogFilter) *IssueQuery {
	if f.Type != "" {
		q.Where("issue_type = ?", f.Type)
	}
	if f.AssigneeID != nil {
		q.Where("assignee_id = ?", *f.AssigneeID)
	}
	if f.Priority != "" {
		q.Where("priority = ?", string(f.Priority))
	}
	return q
}

func (q *IssueQuery) OrderBySort(sort models.BacklogSort) *IssueQuery {
	q.orderBy = orderClause(sort)
	return q
}

func (q *IssueQuery) Limit(limit int) *IssueQuery {
	q.limit = limit
	return q
}

func (q *IssueQuery) Offset(offset int) *IssueQuery {
	q.offset = offset
	return q
}

func (q *IssueQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM issues", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
		if q.offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", q.offset)
		}
	}
	return query, q.args
}

func (q *IssueQuery) BuildCount() (string, []interface{}) {
	query := "SELECT COUNT(1) FROM issues"
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	return query, q.args
}

// orderClause maps a sort strategy to its ORDER BY expression, including
// the tie-break each variant specifies.
func orderClause(sort models.BacklogSort) string {
	switch sort {
	case models.SortCreatedAt:
		return "created_at DESC"
	case models.SortUpdatedAt:
		return "updated_at DESC"
	case models.SortPriority:
		return priorityRankExpr + " ASC, created_at ASC"
	default:
		return "backlog_order IS NULL, backlog_order ASC, created_at ASC"
	}
}

const priorityRankExpr = `CASE priority
	WHEN 'critical' THEN 0
	WHEN 'high' THEN 1
	WHEN 'medium' THEN 2
	WHEN 'low' THEN 3
	ELSE 4 END`
