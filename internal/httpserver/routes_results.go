// internal/httpserver/routes_results.go
//
// Read-only views over graded rounds.
//   - GET /results/mine   → the calling learner's recent results
//   - GET /results/daily  → best daily results for ?date= (default today)

package httpserver

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/wordmatch/internal/daily"
	"github.com/robalobadob/wordmatch/internal/results"
)

const resultsLimit = 20

// mountResults registers all /results routes.
func (s *Server) mountResults(r chi.Router) {
	r.Route("/results", func(r chi.Router) {
		r.Use(chimw.Timeout(requestTimeout))
		r.Get("/mine", s.handleMyResults)
		r.Get("/daily", s.handleDailyBest)
	})
}

// resultsRes is returned by both /results endpoints.
type resultsRes struct {
	Date    string           `json:"date,omitempty"`
	Results []results.Result `json:"results"`
}

func limitParam(r *http.Request) int {
	n, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || n <= 0 || n > 100 {
		return resultsLimit
	}
	return n
}

func (s *Server) handleMyResults(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	learner := s.learnerID(r)
	if learner == "" {
		writeJSON(w, http.StatusOK, resultsRes{Results: []results.Result{}})
		return
	}
	rows, err := s.results.Recent(r.Context(), learner, limitParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, resultsRes{Results: rows})
}

func (s *Server) handleDailyBest(w http.ResponseWriter, r *http.Request) {
	if s.results == nil {
		writeError(w, http.StatusServiceUnavailable, "results_disabled")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(s.now().UTC())
	}
	rows, err := s.results.DailyBest(r.Context(), date, limitParam(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, resultsRes{Date: date, Results: rows})
}
