package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered. This is
// the surface the presentation layer consumes; every endpoint maps onto one
// core operation.
func NewRouter(db *sql.DB) http.Handler {
	mux := http.NewServeMux()

	dashboardHandler := &DashboardHandler{DB: db}
	activityHandler := &ActivityHandler{DB: db}
	reportsHandler := &ReportsHandler{DB: db}
	jobsHandler := &JobsHandler{DB: db}

	mux.HandleFunc("GET /api/dashboard", dashboardHandler.Get)

	mux.HandleFunc("GET /api/activity", activityHandler.List)

	mux.HandleFunc("GET /api/reports/{month}", reportsHandler.Get)

	mux.HandleFunc("GET /api/jobs", jobsHandler.List)
	mux.HandleFunc("POST /api/jobs", jobsHandler.Issue)
	mux.HandleFunc("GET /api/jobs/{id}", jobsHandler.Get)
	mux.HandleFunc("POST /api/jobs/{id}/return", jobsHandler.Return)

	return mux
}
