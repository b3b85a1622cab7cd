package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/session"
	"github.com/jonathan/career-compass/internal/types"
)

// ---------------------------------------------------------------------
// Study Schedule Handlers
// ---------------------------------------------------------------------

// handleGenerateSchedule builds the sample study schedule. Regenerating
// replaces the existing schedule wholesale.
func (s *Server) handleGenerateSchedule(w http.ResponseWriter, r *http.Request) {
	schedule := roadmap.GenerateSchedule(time.Now())

	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		return sess.SetSchedule(schedule)
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, schedule)
}

func (s *Server) handleGetSchedule(w http.ResponseWriter, r *http.Request) {
	var schedule *roadmap.Schedule
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		var err error
		schedule, err = sess.Schedule()
		return err
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, schedule)
}

func (s *Server) handleAddStudySession(w http.ResponseWriter, r *http.Request) {
	var req types.AddStudySessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	var created types.StudySession
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		var err error
		created, err = sess.AddStudySession(req)
		return err
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

func (s *Server) handleToggleStudySession(w http.ResponseWriter, r *http.Request) {
	studyID := r.PathValue("study_id")

	var schedule *roadmap.Schedule
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		if err := sess.ToggleStudySession(studyID); err != nil {
			return err
		}
		var err error
		schedule, err = sess.Schedule()
		return err
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, schedule)
}

func (s *Server) handleDeleteStudySession(w http.ResponseWriter, r *http.Request) {
	studyID := r.PathValue("study_id")

	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		return sess.DeleteStudySession(studyID)
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}
