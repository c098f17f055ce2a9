package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/sprintline/internal/models"
)

const sprintColumns = "id, project_id, name, goal, start_date, end_date, status, created_at, deleted_at"

func scanSprint(row interface{ Scan(...interface{}) error }) (models.Sprint, error) {
	var s models.Sprint
	var status string
	err := row.Scan(
		&s.ID,
		&s.ProjectID,
		&s.Name,
		&s.Goal,
		&s.StartDate,
		&s.EndDate,
		&status,
		&s.CreatedAt,
		&s.DeletedAt,
	)
	s.Status = models.SprintStatus(status)
	return s, err
}

// CreateSprint inserts a new sprint and returns its ID.
func (d *Database) CreateSprint(ctx context.Context, s models.Sprint) (int64, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	res, err := d.DB.ExecContext(ctx,
		`INSERT INTO sprints (project_id, name, goal, start_date, end_date, status) VALUES (?, ?, ?, ?, ?, ?)`,
		s.ProjectID, s.Name, toNullableArg(s.Goal), toNullableArg(s.StartDate), toNullableArg(s.EndDate), string(s.Status))
	if err != nil {
		return 0, wrapSprintErr("create", 0, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, wrapSprintErr("create", 0, err)
	}
	return id, nil
}

// GetSprint retrieves a non-deleted sprint by ID.
func (d *Database) GetSprint(ctx context.Context, id int64) (models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx,
		"SELECT "+sprintColumns+" FROM sprints WHERE id = ? AND deleted_at IS NULL", id)
	s, err := scanSprint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return s, wrapSprintErr("get", id, ErrNotFound)
	}
	if err != nil {
		return s, wrapSprintErr("get", id, err)
	}
	return s, nil
}

// UpdateSprintDates overwrites the start and end dates of a sprint.
func (d *Database) UpdateSprintDates(ctx context.Context, id int64, start, end *time.Time) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx,
			"UPDATE sprints SET start_date = ?, end_date = ? WHERE id = ? AND deleted_at IS NULL",
			toNullableArg(start), toNullableArg(end), id)
		if err != nil {
			return wrapSprintErr("update dates", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapSprintErr("update dates", id, ErrNotFound)
		}
		return nil
	})
}

// UpdateSprintStatus overwrites the lifecycle status of a sprint.
func (d *Database) UpdateSprintStatus(ctx context.Context, id int64, status models.SprintStatus) error {
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx,
			"UPDATE sprints SET status = ? WHERE id = ? AND deleted_at IS NULL", string(status), id)
		if err != nil {
			return wrapSprintErr("update status", id, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return wrapSprintErr("update status", id, ErrNotFound)
		}
		return nil
	})
}

// SoftDeleteSprint marks a sprint deleted. A sprint that still has
// membership rows cannot be deleted.
func (d *Database) SoftDeleteSprint(ctx context.Context, id int64) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var count int
		if err := tx.QueryRow("SELECT COUNT(1) FROM sprint_memberships WHERE sprint_id = ?", id).Scan(&count); err != nil {
			return err
		}
		if count > 0 {
			return ErrSprintHasMembers
		}
		res, err := tx.Exec("UPDATE sprints SET deleted_at = CURRENT_TIMESTAMP WHERE id = ? AND deleted_at IS NULL", id)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
	return wrapSprintErr("delete", id, err)
}

// SprintsByProject lists the non-deleted sprints of a project, oldest first.
func (d *Database) SprintsByProject(ctx context.Context, projectID int64) ([]models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+sprintColumns+" FROM sprints WHERE project_id = ? AND deleted_at IS NULL ORDER BY created_at ASC, id ASC", projectID)
	if err != nil {
		return nil, wrapSprintErr("list", 0, err)
	}
	defer rows.Close()

	var sprints []models.Sprint
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, wrapSprintErr("list", 0, err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSprintErr("list", 0, err)
	}
	return sprints, nil
}

// FindOverlappingSprints returns sprints of the project whose date range
// intersects [start, end). Sprints without both dates never overlap.
// excludeID skips one sprint, typically the one being edited.
func (d *Database) FindOverlappingSprints(ctx context.Context, projectID int64, start, end time.Time, excludeID int64) ([]models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx,
		"SELECT "+sprintColumns+` FROM sprints
		WHERE project_id = ? AND id != ? AND deleted_at IS NULL
		AND start_date IS NOT NULL AND end_date IS NOT NULL
		AND start_date < ? AND end_date > ?
		ORDER BY start_date ASC`,
		projectID, excludeID, end, start)
	if err != nil {
		return nil, wrapSprintErr("find overlapping", 0, err)
	}
	defer rows.Close()

	var sprints []models.Sprint
	for rows.Next() {
		s, err := scanSprint(rows)
		if err != nil {
			return nil, wrapSprintErr("find overlapping", 0, err)
		}
		sprints = append(sprints, s)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapSprintErr("find overlapping", 0, err)
	}
	return sprints, nil
}

// GetActiveSprint returns the most recently activated active sprint of a
// project, or ErrNotFound when none is active.
func (d *Database) GetActiveSprint(ctx context.Context, projectID int64) (models.Sprint, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	row := d.DB.QueryRowContext(ctx,
		"SELECT "+sprintColumns+" FROM sprints WHERE project_id = ? AND status = 'active' AND deleted_at IS NULL ORDER BY id DESC LIMIT 1",
		projectID)
	s, err := scanSprint(row)
	if errors.Is(err, sql.ErrNoRows) {
		return s, wrapSprintErr("get active", 0, ErrNotFound)
	}
	if err != nil {
		return s, wrapSprintErr("get active", 0, err)
	}
	return s, nil
}
