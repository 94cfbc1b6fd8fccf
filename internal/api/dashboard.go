package api

import (
	"database/sql"
	"net/http"

	"warehouse/internal/store"
)

// DashboardHandler handles the dashboard endpoint.
type DashboardHandler struct {
	DB *sql.DB
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	snapshot, err := store.DashboardSnapshot(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	jsonResponse(w, http.StatusOK, snapshot)
}
