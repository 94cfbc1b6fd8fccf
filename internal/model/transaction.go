package model

import "time"

// Transaction represents one item-quantity movement (issue or return) for a job.
// Records are immutable once written: the log supports only insert and read.
type Transaction struct {
	ID         int64     `json:"id"`
	JobID      string    `json:"job_id"`
	PersonName string    `json:"person_name"`
	ItemName   string    `json:"item_name"`
	Quantity   int       `json:"quantity"`
	Action     string    `json:"action"`
	Task       string    `json:"task,omitempty"`
	Date       time.Time `json:"date"`
}

// Transaction actions.
const (
	ActionIssue  = "issue"
	ActionReturn = "return"
)
