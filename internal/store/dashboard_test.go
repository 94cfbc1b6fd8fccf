package store

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/db"
	"warehouse/internal/model"
)

func TestDashboardSnapshot(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	IssueItems(ctx, database, "J1", "Alice", []model.JobItem{
		{ItemName: "Bolt", Quantity: 10, Unit: "pcs"},
		{ItemName: "Nut", Quantity: 10, Unit: "pcs"},
	}, "Assembly", time.Now())
	IssueItems(ctx, database, "J2", "Bob", []model.JobItem{
		{ItemName: "Cable", Quantity: 5, Unit: "m"},
	}, "Wiring", time.Now())

	snapshot, err := DashboardSnapshot(ctx, database)
	if err != nil {
		t.Fatalf("DashboardSnapshot: %v", err)
	}

	if snapshot.ActiveJobCount != 2 {
		t.Errorf("ActiveJobCount = %d, want 2", snapshot.ActiveJobCount)
	}
	if snapshot.TotalOutstanding != 25 {
		t.Errorf("TotalOutstanding = %d, want 25", snapshot.TotalOutstanding)
	}
	if snapshot.RecentActivityCount != 3 {
		t.Errorf("RecentActivityCount = %d, want 3", snapshot.RecentActivityCount)
	}
	if len(snapshot.RecentActivity) != 3 {
		t.Errorf("expected 3 recent records, got %d", len(snapshot.RecentActivity))
	}
}

func TestDashboardSnapshotEmpty(t *testing.T) {
	database := db.NewTestDB(t)

	snapshot, err := DashboardSnapshot(context.Background(), database)
	if err != nil {
		t.Fatalf("DashboardSnapshot: %v", err)
	}
	if snapshot.ActiveJobCount != 0 || snapshot.TotalOutstanding != 0 ||
		snapshot.RecentActivityCount != 0 || len(snapshot.RecentActivity) != 0 {
		t.Errorf("expected empty snapshot, got %+v", snapshot)
	}
}
