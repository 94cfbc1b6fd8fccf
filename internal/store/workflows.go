package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"warehouse/internal/model"
)

// IssueItems records an issue: one log record per item plus one ledger entry
// holding the items snapshot, committed as a single unit. If any write fails
// nothing is applied and one error is returned. A zero date means now.
//
// The caller is responsible for rejecting an empty items list; given one,
// the workflow writes a ledger entry with an empty snapshot.
func IssueItems(ctx context.Context, db *sql.DB, jobID, personName string, items []model.JobItem, task string, date time.Time) error {
	if date.IsZero() {
		date = time.Now()
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning issue transaction: %w", err)
	}
	defer tx.Rollback()

	for _, item := range items {
		err := insertTransaction(ctx, tx, model.Transaction{
			JobID:      jobID,
			PersonName: personName,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			Action:     model.ActionIssue,
			Task:       task,
			Date:       date,
		})
		if err != nil {
			return fmt.Errorf("issuing %q: %w", item.ItemName, err)
		}
	}

	err = insertActiveJob(ctx, tx, model.ActiveJob{
		JobID:      jobID,
		PersonName: personName,
		Items:      items,
		Task:       task,
		Date:       date,
	})
	if err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing issue: %w", err)
	}
	return nil
}

// ReturnItems records a return against an active job: one log record per
// line, plus removal of the ledger entry when every line is returned in
// full, committed as a single unit. Returns ErrJobNotFound if the job is
// not in the ledger.
//
// Partial returns leave the ledger entry untouched: the items snapshot is
// never shrunk, so outstanding totals keep counting the original issued
// quantities until the job is fully returned. This mirrors the tracker's
// observed behavior; see DESIGN.md.
func ReturnItems(ctx context.Context, db *sql.DB, jobID string, lines []model.ReturnLine) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning return transaction: %w", err)
	}
	defer tx.Rollback()

	var personName string
	var task sql.NullString
	err = tx.QueryRowContext(ctx,
		`SELECT person_name, task FROM active_jobs WHERE job_id = ?`, jobID,
	).Scan(&personName, &task)
	if err == sql.ErrNoRows {
		return fmt.Errorf("job %q: %w", jobID, ErrJobNotFound)
	}
	if err != nil {
		return fmt.Errorf("looking up job: %w", err)
	}

	now := time.Now()
	fullReturn := true
	for _, line := range lines {
		err := insertTransaction(ctx, tx, model.Transaction{
			JobID:      jobID,
			PersonName: personName,
			ItemName:   line.ItemName,
			Quantity:   line.ReturnedQty,
			Action:     model.ActionReturn,
			Task:       task.String,
			Date:       now,
		})
		if err != nil {
			return fmt.Errorf("returning %q: %w", line.ItemName, err)
		}
		if line.ReturnedQty != line.OriginalQty {
			fullReturn = false
		}
	}

	if fullReturn {
		if err := deleteActiveJob(ctx, tx, jobID); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing return: %w", err)
	}
	return nil
}
