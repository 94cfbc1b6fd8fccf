package store

import "errors"

// Sentinel errors surfaced by the ledger and the workflows. The store wraps
// them with context; callers compare with errors.Is.
var (
	// ErrDuplicateJob is returned when issuing against a job id that is
	// already present in the active-job ledger.
	ErrDuplicateJob = errors.New("job already active")

	// ErrJobNotFound is returned when returning against a job id that is
	// not present in the active-job ledger.
	ErrJobNotFound = errors.New("job not found")
)
