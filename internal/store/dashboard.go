package store

import (
	"context"
	"database/sql"

	"warehouse/internal/model"
)

// Snapshot is the dashboard view: current ledger stats plus the most recent
// log activity.
type Snapshot struct {
	ActiveJobCount      int                 `json:"active_job_count"`
	TotalOutstanding    int                 `json:"total_outstanding"`
	RecentActivityCount int                 `json:"recent_activity_count"`
	RecentActivity      []model.Transaction `json:"recent_activity"`
}

// DashboardSnapshot composes four independent reads into one view. The reads
// are not grouped transactionally: the dashboard tolerates momentarily stale
// data, and nothing here writes.
func DashboardSnapshot(ctx context.Context, db *sql.DB) (*Snapshot, error) {
	activeCount, err := CountActiveJobs(ctx, db)
	if err != nil {
		return nil, err
	}

	outstanding, err := TotalOutstandingQuantity(ctx, db)
	if err != nil {
		return nil, err
	}

	activityCount, err := CountTransactions(ctx, db)
	if err != nil {
		return nil, err
	}

	recent, err := RecentActivity(ctx, db, DefaultRecentLimit)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		ActiveJobCount:      activeCount,
		TotalOutstanding:    outstanding,
		RecentActivityCount: activityCount,
		RecentActivity:      recent,
	}, nil
}
