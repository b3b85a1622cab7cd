package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/session"
	"github.com/jonathan/career-compass/internal/types"
)

// ---------------------------------------------------------------------
// Analysis and Career Selection Handlers
// ---------------------------------------------------------------------

// handleRunAnalysis runs the recommendation engine for the session. Like
// ingestion, the simulated analysis delay runs outside the session lock
// behind the busy flag.
func (s *Server) handleRunAnalysis(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var profile *types.Profile
	var prefs *types.Preferences
	err := s.store.With(id, func(sess *session.Session) error {
		var err error
		profile, prefs, err = sess.AnalysisInputs()
		if err != nil {
			return err
		}
		if !sess.TryBeginProcessing() {
			return &session.ErrProcessing{}
		}
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	recs, analyzeErr := s.engine.Analyze(r.Context(), profile, prefs)

	err = s.store.With(id, func(sess *session.Session) error {
		sess.EndProcessing()
		if analyzeErr != nil {
			return nil
		}
		return sess.SetRecommendations(recs)
	})
	if analyzeErr != nil {
		s.domainError(w, analyzeErr)
		return
	}
	if err != nil {
		s.domainError(w, err)
		return
	}

	if s.printer != nil {
		s.printer.PrintRecommendations(recs)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func (s *Server) handleGetRecommendations(w http.ResponseWriter, r *http.Request) {
	var recs []types.Recommendation
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		recs = sess.Recommendations()
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"recommendations": recs})
}

func (s *Server) handleSelectCareer(w http.ResponseWriter, r *http.Request) {
	var req types.SelectCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	var summary sessionSummary
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		if err := sess.SelectCareer(req.Title); err != nil {
			return err
		}
		summary = summarize(sess)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

func (s *Server) handleGetDashboard(w http.ResponseWriter, r *http.Request) {
	var snapshot *types.DashboardSnapshot
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		var err error
		snapshot, err = sess.Dashboard()
		return err
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, snapshot)
}
