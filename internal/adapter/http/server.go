// Package adapthttp implements the HTTP adapter for the application.
package adapthttp

import (
	"net/http"
	"strings"

	"weightloss/internal/app"

	"github.com/gorilla/mux"
)

// Server is the driving HTTP adapter that routes requests to application
// services.
type Server struct {
	entries  *app.EntryStore
	goals    *app.GoalTracker
	charts   *app.ChartsService
	settings *app.SettingsService
	webDir   string
}

// New creates a Server wired to the given application services.
func New(es *app.EntryStore, gt *app.GoalTracker, cs *app.ChartsService, ss *app.SettingsService, webDir string) *Server {
	return &Server{entries: es, goals: gt, charts: cs, settings: ss, webDir: webDir}
}

// Handler returns the root http.Handler for the application.
func (s *Server) Handler() http.Handler {
	root := mux.NewRouter()

	api := root.PathPrefix("/api").Subrouter()
	api.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "method not allowed"})
	})
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	}).Methods(http.MethodGet)

	api.HandleFunc("/entries", s.handleEntriesList).Methods(http.MethodGet)
	api.HandleFunc("/entries", s.handleEntriesAdd).Methods(http.MethodPost)
	api.HandleFunc("/entries/{id:[0-9]+}", s.handleEntriesEdit).Methods(http.MethodPut)
	api.HandleFunc("/entries/{id:[0-9]+}", s.handleEntriesDelete).Methods(http.MethodDelete)

	api.HandleFunc("/goal", s.handleGoalGet).Methods(http.MethodGet)
	api.HandleFunc("/goal", s.handleGoalPut).Methods(http.MethodPut)
	api.HandleFunc("/goal", s.handleGoalDelete).Methods(http.MethodDelete)

	api.HandleFunc("/starting-weight", s.handleStartingWeightGet).Methods(http.MethodGet)
	api.HandleFunc("/starting-weight", s.handleStartingWeightPut).Methods(http.MethodPut)
	api.HandleFunc("/starting-weight", s.handleStartingWeightDelete).Methods(http.MethodDelete)

	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/charts/series", s.handleChartsSeries).Methods(http.MethodGet)

	api.HandleFunc("/settings/unit", s.handleSettingsUnitGet).Methods(http.MethodGet)
	api.HandleFunc("/settings/unit", s.handleSettingsUnitPut).Methods(http.MethodPut)

	root.NotFoundHandler = apiNotFound(spaFromDisk(s.webDir))

	return s.loggingMiddleware(withNoCache(root))
}

// apiNotFound answers unmatched /api paths with a JSON 404 and hands
// everything else to next.
func apiNotFound(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api" || strings.HasPrefix(r.URL.Path, "/api/") {
			writeJSON(w, http.StatusNotFound, map[string]any{"error": "not found"})
			return
		}
		next.ServeHTTP(w, r)
	})
}
