package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"warehouse/internal/model"
)

// DefaultRecentLimit is the number of log records RecentActivity returns
// when the caller does not ask for a specific limit.
const DefaultRecentLimit = 10

// AppendTransaction inserts one immutable record into the transaction log
// and returns its assigned id. The log is append-only: there is no update
// or delete counterpart.
func AppendTransaction(ctx context.Context, db *sql.DB, t model.Transaction) (int64, error) {
	result, err := db.ExecContext(ctx,
		`INSERT INTO transactions (job_id, person_name, item_name, quantity, action, task, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.JobID, t.PersonName, t.ItemName, t.Quantity, t.Action, t.Task, t.Date,
	)
	if err != nil {
		return 0, fmt.Errorf("appending transaction: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading transaction id: %w", err)
	}
	return id, nil
}

// insertTransaction writes one log record using the given transaction, so
// the workflows can batch log appends with a ledger mutation.
func insertTransaction(ctx context.Context, tx *sql.Tx, t model.Transaction) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO transactions (job_id, person_name, item_name, quantity, action, task, date)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		t.JobID, t.PersonName, t.ItemName, t.Quantity, t.Action, t.Task, t.Date,
	)
	if err != nil {
		return fmt.Errorf("appending transaction: %w", err)
	}
	return nil
}

// RecentActivity returns up to limit log records, most recent first. Ties
// in date are broken by id descending, so same-instant records come back in
// reverse insertion order. A non-positive limit means DefaultRecentLimit.
func RecentActivity(ctx context.Context, db *sql.DB, limit int) ([]model.Transaction, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}

	rows, err := db.QueryContext(ctx,
		`SELECT id, job_id, person_name, item_name, quantity, action, task, date
		 FROM transactions
		 ORDER BY date DESC, id DESC
		 LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("listing recent activity: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

// CountTransactions returns the total number of log records.
func CountTransactions(ctx context.Context, db *sql.DB) (int, error) {
	var count int
	err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting transactions: %w", err)
	}
	return count, nil
}

// TransactionsBetween returns log records with start <= date < end, scanning
// the date index. Results come back in ascending date order with ties in
// insertion order.
func TransactionsBetween(ctx context.Context, db *sql.DB, start, end time.Time) ([]model.Transaction, error) {
	rows, err := db.QueryContext(ctx,
		`SELECT id, job_id, person_name, item_name, quantity, action, task, date
		 FROM transactions
		 WHERE date >= ? AND date < ?
		 ORDER BY date, id`,
		start, end,
	)
	if err != nil {
		return nil, fmt.Errorf("querying transactions by date range: %w", err)
	}
	defer rows.Close()

	return scanTransactions(rows)
}

func scanTransactions(rows *sql.Rows) ([]model.Transaction, error) {
	var transactions []model.Transaction
	for rows.Next() {
		var t model.Transaction
		var task sql.NullString
		if err := rows.Scan(&t.ID, &t.JobID, &t.PersonName, &t.ItemName,
			&t.Quantity, &t.Action, &task, &t.Date); err != nil {
			return nil, fmt.Errorf("scanning transaction: %w", err)
		}
		t.Task = task.String
		transactions = append(transactions, t)
	}
	return transactions, rows.Err()
}
