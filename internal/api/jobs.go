package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"warehouse/internal/model"
	"warehouse/internal/store"
)

// JobsHandler handles active-job endpoints, including the issue and return
// workflows.
type JobsHandler struct {
	DB *sql.DB
}

type issueRequest struct {
	JobID      string          `json:"job_id"`
	PersonName string          `json:"person_name"`
	Items      []model.JobItem `json:"items"`
	Task       string          `json:"task"`
	Date       string          `json:"date"`
}

type returnRequest struct {
	Lines []model.ReturnLine `json:"lines"`
}

// List handles GET /api/jobs.
func (h *JobsHandler) List(w http.ResponseWriter, r *http.Request) {
	jobs, err := store.ListActiveJobs(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list jobs")
		return
	}
	if jobs == nil {
		jobs = []model.ActiveJob{}
	}
	jsonResponse(w, http.StatusOK, jobs)
}

// Get handles GET /api/jobs/{id}.
func (h *JobsHandler) Get(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")

	job, err := store.GetJobDetails(r.Context(), h.DB, jobID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get job")
		return
	}
	if job == nil {
		jsonError(w, http.StatusNotFound, "job not found")
		return
	}
	jsonResponse(w, http.StatusOK, job)
}

// Issue handles POST /api/jobs. The date field is optional; empty means now.
func (h *JobsHandler) Issue(w http.ResponseWriter, r *http.Request) {
	var req issueRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.JobID == "" || req.PersonName == "" {
		jsonError(w, http.StatusBadRequest, "job_id and person_name are required")
		return
	}
	if len(req.Items) == 0 {
		jsonError(w, http.StatusBadRequest, "at least one item is required")
		return
	}
	for _, item := range req.Items {
		if item.ItemName == "" || item.Quantity <= 0 {
			jsonError(w, http.StatusBadRequest, "every item needs a name and a positive quantity")
			return
		}
	}

	date, err := parseDate(req.Date)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid date")
		return
	}

	err = store.IssueItems(r.Context(), h.DB, req.JobID, req.PersonName, req.Items, req.Task, date)
	if errors.Is(err, store.ErrDuplicateJob) {
		jsonError(w, http.StatusConflict, err.Error())
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to issue items")
		return
	}

	slog.Info("items issued", "job", req.JobID, "person", req.PersonName, "items", len(req.Items))
	jsonResponse(w, http.StatusCreated, map[string]string{"job_id": req.JobID})
}

// Return handles POST /api/jobs/{id}/return.
func (h *JobsHandler) Return(w http.ResponseWriter, r *http.Request) {
	jobID := r.PathValue("id")

	var req returnRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Lines) == 0 {
		jsonError(w, http.StatusBadRequest, "at least one return line is required")
		return
	}
	for _, line := range req.Lines {
		if line.ItemName == "" || line.ReturnedQty <= 0 {
			jsonError(w, http.StatusBadRequest, "every line needs a name and a positive returned quantity")
			return
		}
	}

	err := store.ReturnItems(r.Context(), h.DB, jobID, req.Lines)
	if errors.Is(err, store.ErrJobNotFound) {
		jsonError(w, http.StatusNotFound, err.Error())
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to return items")
		return
	}

	slog.Info("items returned", "job", jobID, "lines", len(req.Lines))
	jsonResponse(w, http.StatusOK, map[string]string{"job_id": jobID})
}

// parseDate accepts an empty string (meaning now, resolved by the workflow),
// a date-only value as submitted by the issue form, or a full timestamp.
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if date, err := time.ParseInLocation("2006-01-02", value, time.Local); err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, value)
}
