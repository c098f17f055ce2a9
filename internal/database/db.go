package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/akyairhashvil/sprintline/internal/util"
	_ "github.com/mattn/go-sqlite3"
)

const defaultDBTimeout = 5 * time.Second

// Database wraps the sqlite connection and owns the schema.
type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (or creates) the database at path and applies the schema.
// Write transactions take the database lock at BEGIN, so check-then-write
// sequences inside WithTx stay serialized against concurrent writers.
func Open(ctx context.Context, path string) (*Database, error) {
	dsn := fmt.Sprintf("file:%s?_busy_timeout=5000&_txlock=immediate&_foreign_keys=on", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	d := &Database{DB: db, dbFile: path}
	if err := d.createTables(ctx); err != nil {
		db.Close()
		return nil, err
	}
	d.migrate(ctx)
	return d, nil
}

// Close closes the underlying connection.
func (d *Database) Close() error {
	return d.DB.Close()
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS sprints (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			name TEXT NOT NULL,
			goal TEXT,
			start_date DATETIME,
			end_date DATETIME,
			status TEXT NOT NULL DEFAULT 'planned',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS issues (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			project_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			status TEXT NOT NULL DEFAULT 'todo',
			priority TEXT NOT NULL DEFAULT 'medium',
			issue_type TEXT NOT NULL DEFAULT 'task',
			assignee_id INTEGER,
			story_points INTEGER,
			backlog_order INTEGER,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			deleted_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS sprint_memberships (
			sprint_id INTEGER NOT NULL,
			issue_id INTEGER NOT NULL,
			item_order INTEGER NOT NULL DEFAULT 0,
			PRIMARY KEY (sprint_id, issue_id),
			FOREIGN KEY (sprint_id) REFERENCES sprints(id),
			FOREIGN KEY (issue_id) REFERENCES issues(id)
		);`,
		`CREATE TABLE IF NOT EXISTS status_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			issue_id INTEGER NOT NULL,
			from_status TEXT NOT NULL,
			to_status TEXT NOT NULL,
			occurred_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (issue_id) REFERENCES issues(id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_memberships_issue ON sprint_memberships(issue_id);`,
		`CREATE INDEX IF NOT EXISTS idx_issues_project ON issues(project_id);`,
		`CREATE INDEX IF NOT EXISTS idx_status_events_issue ON status_events(issue_id);`,
	}

	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("create table: %w: %s", err, query)
		}
	}
	return nil
}

// migrate applies additive column migrations for databases created by
// earlier schema versions. Failures are ignored: the column already exists.
func (d *Database) migrate(ctx context.Context) {
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE issues ADD COLUMN backlog_order INTEGER")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE issues ADD COLUMN story_points INTEGER")
	_, _ = d.DB.ExecContext(ctx, "ALTER TABLE sprints ADD COLUMN deleted_at DATETIME")
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, timeout)
}

// withDBContext runs fn under the default database timeout.
func (d *Database) withDBContext(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()

	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

// rollbackWithLog rolls back tx and returns the original error. A failed
// rollback is logged, not returned: the caller's error matters more.
func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil {
		util.LogError("tx rollback", rbErr)
	}
	return err
}
