package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"warehouse/internal/model"
	"warehouse/internal/store"
)

// ActivityHandler handles transaction-log read endpoints.
type ActivityHandler struct {
	DB *sql.DB
}

// List handles GET /api/activity. The optional limit query parameter caps
// the number of records; unset or zero means the default of 10.
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	var limit int
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			jsonError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = n
	}

	activity, err := store.RecentActivity(r.Context(), h.DB, limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list activity")
		return
	}
	if activity == nil {
		activity = []model.Transaction{}
	}
	jsonResponse(w, http.StatusOK, activity)
}
