package store

import (
	"context"
	"testing"
	"time"

	"warehouse/internal/db"
	"warehouse/internal/model"
)

func issueRecord(jobID, itemName string, quantity int, date time.Time) model.Transaction {
	return model.Transaction{
		JobID:      jobID,
		PersonName: "Alice",
		ItemName:   itemName,
		Quantity:   quantity,
		Action:     model.ActionIssue,
		Task:       "Assembly",
		Date:       date,
	}
}

func TestAppendTransactionAssignsIncreasingIDs(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 5, 8, 0, 0, 0, time.Local)
	first, err := AppendTransaction(ctx, database, issueRecord("J1", "Bolt", 10, base))
	if err != nil {
		t.Fatalf("AppendTransaction: %v", err)
	}
	second, err := AppendTransaction(ctx, database, issueRecord("J1", "Nut", 10, base))
	if err != nil {
		t.Fatalf("AppendTransaction: %v", err)
	}
	if second <= first {
		t.Errorf("expected increasing ids, got %d then %d", first, second)
	}
}

func TestRecentActivityOrdering(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.Local)
	for i := 0; i < 3; i++ {
		AppendTransaction(ctx, database, issueRecord("J1", "Bolt", 1, base.Add(time.Duration(i)*time.Hour)))
	}
	// Two records at the same instant: newer insertion must come back first.
	tied := base.Add(48 * time.Hour)
	AppendTransaction(ctx, database, issueRecord("J2", "Older", 1, tied))
	AppendTransaction(ctx, database, issueRecord("J2", "Newer", 1, tied))

	recent, err := RecentActivity(ctx, database, 5)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(recent) != 5 {
		t.Fatalf("expected 5 records, got %d", len(recent))
	}
	if recent[0].ItemName != "Newer" || recent[1].ItemName != "Older" {
		t.Errorf("expected tie broken by insertion order, got %q then %q",
			recent[0].ItemName, recent[1].ItemName)
	}
	for i := 1; i < len(recent); i++ {
		if recent[i].Date.After(recent[i-1].Date) {
			t.Errorf("records not in descending date order at index %d", i)
		}
	}
}

func TestRecentActivityDefaultLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	for i := 0; i < 12; i++ {
		AppendTransaction(ctx, database, issueRecord("J1", "Bolt", 1, base.Add(time.Duration(i)*time.Minute)))
	}

	recent, err := RecentActivity(ctx, database, 0)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(recent) != DefaultRecentLimit {
		t.Errorf("expected default limit %d, got %d", DefaultRecentLimit, len(recent))
	}
}

func TestRecentActivityFewerThanLimit(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	AppendTransaction(ctx, database, issueRecord("J1", "Bolt", 1, time.Now()))

	recent, err := RecentActivity(ctx, database, 10)
	if err != nil {
		t.Fatalf("RecentActivity: %v", err)
	}
	if len(recent) != 1 {
		t.Errorf("expected 1 record, got %d", len(recent))
	}
}

func TestCountTransactions(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	count, err := CountTransactions(ctx, database)
	if err != nil {
		t.Fatalf("CountTransactions: %v", err)
	}
	if count != 0 {
		t.Errorf("expected 0 on empty log, got %d", count)
	}

	AppendTransaction(ctx, database, issueRecord("J1", "Bolt", 1, time.Now()))
	AppendTransaction(ctx, database, issueRecord("J1", "Nut", 1, time.Now()))

	count, err = CountTransactions(ctx, database)
	if err != nil {
		t.Fatalf("CountTransactions: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
}

func TestTransactionsBetweenBounds(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	AppendTransaction(ctx, database, issueRecord("J1", "BeforeWindow", 1, start.Add(-time.Second)))
	AppendTransaction(ctx, database, issueRecord("J1", "AtStart", 1, start))
	AppendTransaction(ctx, database, issueRecord("J1", "LastDay", 1, end.Add(-time.Second)))
	AppendTransaction(ctx, database, issueRecord("J1", "AtEnd", 1, end))

	matched, err := TransactionsBetween(ctx, database, start, end)
	if err != nil {
		t.Fatalf("TransactionsBetween: %v", err)
	}
	if len(matched) != 2 {
		t.Fatalf("expected 2 records in window, got %d", len(matched))
	}
	if matched[0].ItemName != "AtStart" || matched[1].ItemName != "LastDay" {
		t.Errorf("unexpected window contents: %q, %q", matched[0].ItemName, matched[1].ItemName)
	}
}
