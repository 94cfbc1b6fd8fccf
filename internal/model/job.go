package model

import "time"

// JobItem is one line item in a job's outstanding-items snapshot.
type JobItem struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Unit     string `json:"unit,omitempty"`
}

// ActiveJob represents a job currently holding outstanding items. Items is
// the snapshot taken at issue time, not re-derived from the transaction log.
type ActiveJob struct {
	JobID      string    `json:"job_id"`
	PersonName string    `json:"person_name"`
	Items      []JobItem `json:"items"`
	Task       string    `json:"task,omitempty"`
	Date       time.Time `json:"date"`
}

// ReturnLine is one line of a return submission: how much of an originally
// issued item is being handed back.
type ReturnLine struct {
	ItemName    string `json:"item_name"`
	ReturnedQty int    `json:"returned_qty"`
	OriginalQty int    `json:"original_qty"`
}
