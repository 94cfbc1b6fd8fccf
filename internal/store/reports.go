package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"warehouse/internal/model"
)

// ReportSummary totals one calendar month of log activity. NetChange is
// relative to the month window only: negative means more items went out
// than came back within the month.
type ReportSummary struct {
	TotalIssued   int `json:"total_issued"`
	TotalReturned int `json:"total_returned"`
	NetChange     int `json:"net_change"`
}

// Report is the monthly report: the summary plus every matching log record
// for the detail table.
type Report struct {
	Summary      ReportSummary       `json:"summary"`
	Transactions []model.Transaction `json:"transactions"`
}

// MonthlyReport range-queries the log for one calendar month and folds the
// results into issued/returned/net totals. month is "YYYY-MM"; the window
// runs from the first instant of day 1 up to (not including) the first
// instant of the next month, so variable month lengths fall out of the
// calendar arithmetic.
func MonthlyReport(ctx context.Context, db *sql.DB, month string) (*Report, error) {
	start, err := time.ParseInLocation("2006-01", month, time.Local)
	if err != nil {
		return nil, fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
	}
	end := start.AddDate(0, 1, 0)

	transactions, err := TransactionsBetween(ctx, db, start, end)
	if err != nil {
		return nil, err
	}

	report := &Report{Transactions: transactions}
	for _, t := range transactions {
		if t.Action == model.ActionIssue {
			report.Summary.TotalIssued += t.Quantity
			report.Summary.NetChange -= t.Quantity
		} else {
			report.Summary.TotalReturned += t.Quantity
			report.Summary.NetChange += t.Quantity
		}
	}

	return report, nil
}
