package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/sprintline/internal/models"
)

// UpsertMembership assigns an issue to a sprint at the given order. If the
// issue already belongs to a different active sprint the call fails with
// ErrActiveSprintConflict and nothing is written. The existence check and
// the write share one transaction; see Open for the locking discipline.
func (d *Database) UpsertMembership(ctx context.Context, sprintID, issueID int64, order int) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		var other int64
		err := tx.QueryRow(`
			SELECT m.sprint_id FROM sprint_memberships m
			JOIN sprints s ON s.id = m.sprint_id
			WHERE m.issue_id = ? AND m.sprint_id != ? AND s.status = 'active' AND s.deleted_at IS NULL
			LIMIT 1`, issueID, sprintID).Scan(&other)
		if err == nil {
			return ErrActiveSprintConflict
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO sprint_memberships (sprint_id, issue_id, item_order) VALUES (?, ?, ?)
			ON CONFLICT(sprint_id, issue_id) DO UPDATE SET item_order = excluded.item_order`,
			sprintID, issueID, order)
		return err
	})
	return wrapMembershipErr("add", sprintID, err)
}

// DeleteMembership removes an issue from a sprint.
func (d *Database) DeleteMembership(ctx context.Context, sprintID, issueID int64) error {
	err := d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx,
			"DELETE FROM sprint_memberships WHERE sprint_id = ? AND issue_id = ?", sprintID, issueID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
	return wrapMembershipErr("remove", sprintID, err)
}

// ReorderMemberships overwrites the order of every named membership row of
// a sprint. All rows must exist; the update is all-or-nothing.
func (d *Database) ReorderMemberships(ctx context.Context, sprintID int64, orders map[int64]int) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare("UPDATE sprint_memberships SET item_order = ? WHERE sprint_id = ? AND issue_id = ?")
		if err != nil {
			return err
		}
		defer stmt.Close()

		for issueID, order := range orders {
			res, err := stmt.Exec(order, sprintID, issueID)
			if err != nil {
				return err
			}
			if n, _ := res.RowsAffected(); n == 0 {
				return ErrNotFound
			}
		}
		return nil
	})
	return wrapMembershipErr("reorder", sprintID, err)
}

// ListMembers returns the memberships of a sprint ordered by rank.
func (d *Database) ListMembers(ctx context.Context, sprintID int64) ([]models.Membership, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	rows, err := d.DB.QueryContext(ctx, `
		SELECT sprint_id, issue_id, item_order FROM sprint_memberships
		WHERE sprint_id = ?
		ORDER BY item_order ASC, issue_id ASC`, sprintID)
	if err != nil {
		return nil, wrapMembershipErr("list", sprintID, err)
	}
	defer rows.Close()

	var members []models.Membership
	for rows.Next() {
		var m models.Membership
		if err := rows.Scan(&m.SprintID, &m.IssueID, &m.Order); err != nil {
			return nil, wrapMembershipErr("list", sprintID, err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapMembershipErr("list", sprintID, err)
	}
	return members, nil
}

// SprintForIssue reports the sprint an issue belongs to, if any. Membership
// in any sprint counts, active or not.
func (d *Database) SprintForIssue(ctx context.Context, issueID int64) (int64, bool, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	var sprintID int64
	err := d.DB.QueryRowContext(ctx,
		"SELECT sprint_id FROM sprint_memberships WHERE issue_id = ? LIMIT 1", issueID).Scan(&sprintID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, wrapMembershipErr("lookup", 0, err)
	}
	return sprintID, true, nil
}

// CompleteAndRelease transitions a sprint to completed and removes the
// memberships of the given issues, all in one transaction. Released issues
// return to the backlog unranked: their backlog_order is cleared so they
// sort last until re-prioritized. A partially completed sprint is never
// observable.
func (d *Database) CompleteAndRelease(ctx context.Context, sprintID int64, issueIDs []int64) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if len(issueIDs) > 0 {
			stmt, err := tx.Prepare("DELETE FROM sprint_memberships WHERE sprint_id = ? AND issue_id = ?")
			if err != nil {
				return err
			}
			defer stmt.Close()
			clear, err := tx.Prepare("UPDATE issues SET backlog_order = NULL WHERE id = ?")
			if err != nil {
				return err
			}
			defer clear.Close()
			for _, issueID := range issueIDs {
				if _, err := stmt.Exec(sprintID, issueID); err != nil {
					return err
				}
				if _, err := clear.Exec(issueID); err != nil {
					return err
				}
			}
		}
		res, err := tx.Exec("UPDATE sprints SET status = 'completed' WHERE id = ? AND deleted_at IS NULL", sprintID)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return ErrNotFound
		}
		return nil
	})
	return wrapSprintErr("complete", sprintID, err)
}
