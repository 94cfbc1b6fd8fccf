package api

import (
	"database/sql"
	"net/http"

	"warehouse/internal/model"
	"warehouse/internal/store"
)

// ReportsHandler handles monthly report endpoints.
type ReportsHandler struct {
	DB *sql.DB
}

// Get handles GET /api/reports/{month}, where month is YYYY-MM.
func (h *ReportsHandler) Get(w http.ResponseWriter, r *http.Request) {
	month := r.PathValue("month")

	report, err := store.MonthlyReport(r.Context(), h.DB, month)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	if report.Transactions == nil {
		report.Transactions = []model.Transaction{}
	}
	jsonResponse(w, http.StatusOK, report)
}
