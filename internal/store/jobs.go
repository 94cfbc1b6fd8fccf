package store

import (
	"context"
	"database/sql"
	"fmt"

	"warehouse/internal/model"
)

// AddActiveJob inserts a job and its items snapshot into the ledger as one
// transaction. Returns ErrDuplicateJob if the job id is already present.
func AddActiveJob(ctx context.Context, db *sql.DB, job model.ActiveJob) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := insertActiveJob(ctx, tx, job); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing job insert: %w", err)
	}
	return nil
}

// insertActiveJob writes the ledger row and its items snapshot using the
// given transaction. Shared with the issue workflow so the ledger write can
// join a larger atomic unit.
func insertActiveJob(ctx context.Context, tx *sql.Tx, job model.ActiveJob) error {
	var exists bool
	err := tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM active_jobs WHERE job_id = ?)`, job.JobID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("checking for existing job: %w", err)
	}
	if exists {
		return fmt.Errorf("job %q: %w", job.JobID, ErrDuplicateJob)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO active_jobs (job_id, person_name, task, date) VALUES (?, ?, ?, ?)`,
		job.JobID, job.PersonName, job.Task, job.Date,
	)
	if err != nil {
		return fmt.Errorf("inserting job: %w", err)
	}

	for i, item := range job.Items {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO job_items (job_id, position, item_name, quantity, unit)
			 VALUES (?, ?, ?, ?, ?)`,
			job.JobID, i, item.ItemName, item.Quantity, item.Unit,
		)
		if err != nil {
			return fmt.Errorf("inserting job item %q: %w", item.ItemName, err)
		}
	}

	return nil
}

// GetJobDetails returns the ledger entry for a job, with its items snapshot
// in issue order. Absent is a valid outcome and returns (nil, nil).
func GetJobDetails(ctx context.Context, db *sql.DB, jobID string) (*model.ActiveJob, error) {
	job := &model.ActiveJob{}
	var task sql.NullString
	err := db.QueryRowContext(ctx,
		`SELECT job_id, person_name, task, date FROM active_jobs WHERE job_id = ?`, jobID,
	).Scan(&job.JobID, &job.PersonName, &task, &job.Date)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("getting job: %w", err)
	}
	job.Task = task.String

	rows, err := db.QueryContext(ctx,
		`SELECT item_name, quantity, unit FROM job_items WHERE job_id = ? ORDER BY position`,
		jobID,
	)
	if err != nil {
		return nil, fmt.Errorf("getting job items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item model.JobItem
		if err := rows.Scan(&item.ItemName, &item.Quantity, &item.Unit); err != nil {
			return nil, fmt.Errorf("scanning job item: %w", err)
		}
		job.Items = append(job.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return job, nil
}

// ListActiveJobs returns every ledger entry with its items snapshot.
func ListActiveJobs(ctx context.Context, db *sql.DB) ([]model.ActiveJob, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT job_id, person_name, task, date FROM active_jobs ORDER BY job_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing jobs: %w", err)
	}
	defer rows.Close()

	var jobs []model.ActiveJob
	index := make(map[string]int)
	for rows.Next() {
		var job model.ActiveJob
		var task sql.NullString
		if err := rows.Scan(&job.JobID, &job.PersonName, &task, &job.Date); err != nil {
			return nil, fmt.Errorf("scanning job: %w", err)
		}
		job.Task = task.String
		index[job.JobID] = len(jobs)
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	itemRows, err := db.QueryContext(ctx,
		`SELECT job_id, item_name, quantity, unit FROM job_items ORDER BY job_id, position`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing job items: %w", err)
	}
	defer itemRows.Close()

	for itemRows.Next() {
		var jobID string
		var item model.JobItem
		if err := itemRows.Scan(&jobID, &item.ItemName, &item.Quantity, &item.Unit); err != nil {
			return nil, fmt.Errorf("scanning job item: %w", err)
		}
		if i, ok := index[jobID]; ok {
			jobs[i].Items = append(jobs[i].Items, item)
		}
	}
	return jobs, itemRows.Err()
}

// RemoveActiveJob deletes a job and its items snapshot from the ledger.
// Removing an absent job is a no-op, matching keyed-store delete semantics.
func RemoveActiveJob(ctx context.Context, db *sql.DB, jobID string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if err := deleteActiveJob(ctx, tx, jobID); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing job removal: %w", err)
	}
	return nil
}

// deleteActiveJob removes the ledger row and its items snapshot using the
// given transaction. Shared with the return workflow.
func deleteActiveJob(ctx context.Context, tx *sql.Tx, jobID string) error {
	// Delete the snapshot explicitly rather than relying on the cascade:
	// the foreign_keys pragma is per-connection and the pool may hand this
	// transaction a connection that never saw it.
	if _, err := tx.ExecContext(ctx, `DELETE FROM job_items WHERE job_id = ?`, jobID); err != nil {
		return fmt.Errorf("deleting job items: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM active_jobs WHERE job_id = ?`, jobID); err != nil {
		return fmt.Errorf("deleting job: %w", err)
	}
	return nil
}

// CountActiveJobs returns the number of jobs currently in the ledger.
func CountActiveJobs(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM active_jobs`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting jobs: %w", err)
	}
	return count, nil
}

// TotalOutstandingQuantity sums item quantities across every active job's
// snapshot. Recomputed on each call, never cached.
func TotalOutstandingQuantity(ctx context.Context, db *sql.DB) (int, error) {
	var total int
	err := db.QueryRowContext(ctx,
		`SELECT COALESCE(SUM(quantity), 0) FROM job_items`,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("summing outstanding quantity: %w", err)
	}
	return total, nil
}
