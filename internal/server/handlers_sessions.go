package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/session"
	"github.com/jonathan/career-compass/internal/types"
)

// ---------------------------------------------------------------------
// Session Lifecycle Handlers
// ---------------------------------------------------------------------

// sessionSummary is the compact session view returned by lifecycle endpoints
type sessionSummary struct {
	ID             string                `json:"id"`
	State          session.State         `json:"state"`
	HasProfile     bool                  `json:"has_profile"`
	HasPreferences bool                  `json:"has_preferences"`
	SelectedCareer *types.Recommendation `json:"selected_career,omitempty"`
}

func summarize(sess *session.Session) sessionSummary {
	return sessionSummary{
		ID:             sess.ID(),
		State:          sess.State(),
		HasProfile:     sess.Profile() != nil,
		HasPreferences: sess.Preferences() != nil,
		SelectedCareer: sess.SelectedCareer(),
	}
}

func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()
	s.jsonResponse(w, http.StatusCreated, summarize(sess))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	var summary sessionSummary
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		summary = summarize(sess)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.PathValue("id")); err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleStart(w http.ResponseWriter, r *http.Request) {
	var summary sessionSummary
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		if err := sess.Begin(); err != nil {
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

func (s *Server) handleNavigate(w http.ResponseWriter, r *http.Request) {
	var req types.NavigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	target, err := session.ParseState(req.To)
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	var summary sessionSummary
	err = s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		if err := sess.NavigateTo(target); err != nil {
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
