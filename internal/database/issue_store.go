package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/sprintline/internal/models"
)

const issueColumns = "id, project_id, title, status, priority, issue_type, assignee_id, story_points, backlog_order, created_at, updated_at, deleted_at"

func scanIssue(row interface{ Scan(...interface{}) error }) (models.Issue, error) {
	var is models.Issue
	var status, priority string
	err := row.Scan(
		&is.ID,
		&is.ProjectID,
		&is.Title,
		&status,
		&priority,
		&is.Type,
		&is.AssigneeID,
		&is.StoryPoints,
		&is.BacklogOrder,
		&is.CreatedAt,
		&is.UpdatedAt,
		&is.DeletedAt,
	)
	is.Status = models.IssueStatus(status)
	is.Priority = models.Priority(priority)
	return is, err
}

// CreateIssue inserts an issue row. This engine is not the system of record
// for issues; the method exists to seed and serve the surfaces and tests.
func (d *Database) CreateIssue(ctx context.Context, is models.Issue) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	status := is.Status
	if status == "" {
		status = models.IssueTodo
	}
	priority := is.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}
	issueType := is.Type
	if issueType == "" {
		issueType = "task"
	}

	res, err := d.DB.ExecContext(ctx, `
		INSERT INTO issues (project_id, title, status, priority, issue_type, assignee_id, story_points, backlog_order)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		is.ProjectID, is.Title, string(status), string(priority), issueType,
		toNullableArg(is.AssigneeID), toNullableArg(is.StoryPoints), toNullableArg(is.BacklogOrder))
	if err != nil {
		return 0, wrapIssueErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapIssueErr("create", 0, err)
	}
	return id, nil
}

// IssuesByIDs fetches the given issues. Missing IDs are silently absent
// from the result; callers that care compare lengths.
func (d *Database) IssuesByIDs(ctx context.Context, ids []int64) ([]models.Issue, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+issueColumns+" FROM issues WHERE id IN ("+inPlaceholders(len(ids))+")", args...)
	if err != nil {
		return nil, wrapIssueErr("get by ids", 0, err)
	}
	defer rows.Close()

	byID := make(map[int64]models.Issue, len(ids))
	for rows.Next() {
		is, err := scanIssue(rows)
		if err != nil {
			return nil, wrapIssueErr("get by ids", 0, err)
		}
		byID[is.ID] = is
	}
	if err := rows.Err(); err != nil {
		return nil, wrapIssueErr("get by ids", 0, err)
	}

	// Preserve the caller's ordering.
	issues := make([]models.Issue, 0, len(byID))
	for _, id := range ids {
		if is, ok := byID[id]; ok {
			issues = append(issues, is)
		}
	}
	return issues, nil
}

// UpdateIssueStatus changes an issue's workflow status, stamping
// updated_at and appending a status event in the same transaction.
// A no-change update writes nothing.
func (d *Database) UpdateIssueStatus(ctx context.Context, issueID int64, status models.IssueStatus) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var current string
		err := tx.QueryRow("SELECT status FROM issues WHERE id = ? AND deleted_at IS NULL", issueID).Scan(&current)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if current == string(status) {
			return nil
		}
		if _, err := tx.Exec(
			"UPDATE issues SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
			string(status), issueID); err != nil {
			return err
		}
		_, err = tx.Exec(
			"INSERT INTO status_events (issue_id, from_status, to_status) VALUES (?, ?, ?)",
			issueID, current, string(status))
		return err
	})
	return wrapIssueErr("update status", issueID, err)
}

// StoryPointsAndStatus reads the two burndown inputs of a single issue.
// Null story points read as zero.
func (d *Database) StoryPointsAndStatus(ctx context.Context, issueID int64) (int, models.IssueStatus, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var points sql.NullInt64
	var status string
	err := d.DB.QueryRowContext(ctx,
		"SELECT story_points, status FROM issues WHERE id = ? AND deleted_at IS NULL", issueID).
		Scan(&points, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, "", wrapIssueErr("points and status", issueID, ErrNotFound)
	}
	if err != nil {
		return 0, "", wrapIssueErr("points and status", issueID, err)
	}
	return int(points.Int64), models.IssueStatus(status), nil
}

// ListBacklog returns one page of a project's backlog under the given
// filters and sort.
func (d *Database) ListBacklog(ctx context.Context, projectID int64, filter models.BacklogFilter, sort models.BacklogSort, limit, offset int) ([]models.Issue, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	query, args := NewIssueQuery().
		WhereProject(projectID).
		WhereBacklog().
		WhereFilter(filter).
		OrderBySort(sort).
		Limit(limit).
		Offset(offset).
		Build()

	rows, err := d.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapIssueErr("list backlog", 0, err)
	}
	defer rows.Close()

	var issues []models.Issue
	for rows.Next() {
		is, err := scanIssue(rows)
		if err != nil {
			return nil, wrapIssueErr("list backlog", 0, err)
		}
		issues = append(issues, is)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapIssueErr("list backlog", 0, err)
	}
	return issues, nil
}

// CountBacklog counts a project's backlog under the given filters.
func (d *Database) CountBacklog(ctx context.Context, projectID int64, filter models.BacklogFilter) (int, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	query, args := NewIssueQuery().
		WhereProject(projectID).
		WhereBacklog().
		WhereFilter(filter).
		BuildCount()

	var count int
	if err := d.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, wrapIssueErr("count backlog", 0, err)
	}
	return count, nil
}

// BacklogIssueIDs returns the full backlog sequence of a project in the
// default ranking.
func (d *Database) BacklogIssueIDs(ctx context.Context, projectID int64) ([]int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT id FROM issues
		WHERE project_id = ? AND deleted_at IS NULL
		AND id NOT IN (SELECT issue_id FROM sprint_memberships)
		ORDER BY backlog_order IS NULL, backlog_order ASC, created_at ASC`, projectID)
	if err != nil {
		return nil, wrapIssueErr("backlog ids", 0, err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, wrapIssueErr("backlog ids", 0, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapIssueErr("backlog ids", 0, err)
	}
	return ids, nil
}

// AssignBacklogOrders overwrites backlog_order for every issue in the map,
// all-or-nothing. Issues not named keep their rank.
func (d *Database) AssignBacklogOrders(ctx context.Context, orders map[int64]int) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("UPDATE issues SET backlog_order = ? WHERE id = ?")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for issueID, order := range orders {
			res, err := stmt.Exec(order, issueID)
			if err != nil {
				return err
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
	return wrapIssueErr("assign backlog orders", 0, err)
}

// ClearBacklogOrder unsets the backlog rank of an issue so it sorts last
// until re-prioritized.
func (d *Database) ClearBacklogOrder(ctx context.Context, issueID int64) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		_, err := d.DB.ExecContext(ctx, "UPDATE issues SET backlog_order = NULL WHERE id = ?", issueID)
		return wrapIssueErr("clear backlog order", issueID, err)
	})
}

// DoneTimes reports, per issue, when it last transitioned into done
// according to the status event log. Issues with no recorded transition
// are absent; burndown falls back to updated_at for those.
func (d *Database) DoneTimes(ctx context.Context, issueIDs []int64) (map[int64]time.Time, error) {
	if len(issueIDs) == 0 {
		return map[int64]time.Time{}, nil
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	args := make([]interface{}, len(issueIDs))
	for i, id := range issueIDs {
		args[i] = id
	}
	rows, err := d.DB.QueryContext(ctx, `
		SELECT issue_id, MAX(occurred_at) FROM status_events
		WHERE to_status = 'done' AND issue_id IN (`+inPlaceholders(len(issueIDs))+`)
		GROUP BY issue_id`, args...)
	if err != nil {
		return nil, wrapIssueErr("done times", 0, err)
	}
	defer rows.Close()

	times := make(map[int64]time.Time)
	for rows.Next() {
		var id int64
		var at time.Time
		if err := rows.Scan(&id, &at); err != nil {
			return nil, wrapIssueErr("done times", 0, err)
		}
		times[id] = at
	}
	if err := rows.Err(); err != nil {
		return nil, wrapIssueErr("done times", 0, err)
	}
	return times, nil
}
