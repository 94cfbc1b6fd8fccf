package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema (version 1).
//
// transactions is the append-only movement log: rows are inserted by the
// issue and return workflows and never updated or deleted. AUTOINCREMENT
// keeps ids monotonic and never reused, so insertion order is recoverable
// from the key even when dates collide.
//
// active_jobs is the current-state ledger, keyed by job id. job_items holds
// each job's issue-time items snapshot; the cascade delete removes the
// snapshot together with the job on full return.
const schema = `
CREATE TABLE IF NOT EXISTS transactions (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    job_id      TEXT NOT NULL,
    person_name TEXT NOT NULL,
    item_name   TEXT NOT NULL,
    quantity    INTEGER NOT NULL CHECK (quantity > 0),
    action      TEXT NOT NULL CHECK (action IN ('issue', 'return')),
    task        TEXT,
    date        DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_transactions_job_id ON transactions(job_id);
CREATE INDEX IF NOT EXISTS idx_transactions_date ON transactions(date);

CREATE TABLE IF NOT EXISTS active_jobs (
    job_id      TEXT PRIMARY KEY,
    person_name TEXT NOT NULL,
    task        TEXT,
    date        DATETIME NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_active_jobs_date ON active_jobs(date);

CREATE TABLE IF NOT EXISTS job_items (
    job_id    TEXT NOT NULL REFERENCES active_jobs(job_id) ON DELETE CASCADE,
    position  INTEGER NOT NULL,
    item_name TEXT NOT NULL,
    quantity  INTEGER NOT NULL CHECK (quantity > 0),
    unit      TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (job_id, position)
);
`

// EnsureSchema creates all tables and indexes if they don't already exist.
// Safe to run on every open: existing collections are never re-created or
// truncated.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
