package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/session"
	"github.com/jonathan/career-compass/internal/types"
)

// ---------------------------------------------------------------------
// Profile Ingestion Handlers
// ---------------------------------------------------------------------

// profileResponse returns the ingested profile alongside the new state
type profileResponse struct {
	State   session.State  `json:"state"`
	Profile *types.Profile `json:"profile"`
}

// ingestProfile runs one ingestion path for a session. The session is
// marked busy before the simulated processing starts and released after,
// so a second submission during processing gets a conflict instead of
// queueing behind the first.
func (s *Server) ingestProfile(w http.ResponseWriter, r *http.Request, ingest func(ctx context.Context) (*types.Profile, error)) {
	id := r.PathValue("id")

	// Reserve the session before consuming any delay
	err := s.store.With(id, func(sess *session.Session) error {
		if sess.State() != session.StateUpload {
			return &session.ErrInvalidTransition{From: sess.State(), To: session.StateAlignment}
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

	// The delay runs outside the session lock; reads stay responsive
	profile, ingestErr := ingest(r.Context())

	var resp profileResponse
	err = s.store.With(id, func(sess *session.Session) error {
		sess.EndProcessing()
		if ingestErr != nil {
			return nil
		}
		if err := sess.SetProfile(profile); err != nil {
			return err
		}
		resp = profileResponse{State: sess.State(), Profile: profile}
		return nil
	})
	if ingestErr != nil {
		s.domainError(w, ingestErr)
		return
	}
	if err != nil {
		s.domainError(w, err)
		return
	}

	if s.printer != nil {
		s.printer.PrintProfile(profile)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleProfileFile(w http.ResponseWriter, r *http.Request) {
	var req types.UploadFileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	s.ingestProfile(w, r, func(ctx context.Context) (*types.Profile, error) {
		return s.ingestor.FromFile(ctx, req)
	})
}

func (s *Server) handleProfileLinkedIn(w http.ResponseWriter, r *http.Request) {
	var req types.LinkedInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	s.ingestProfile(w, r, func(ctx context.Context) (*types.Profile, error) {
		return s.ingestor.FromLinkedIn(ctx, req.URL)
	})
}

func (s *Server) handleProfileText(w http.ResponseWriter, r *http.Request) {
	var req types.RawTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	s.ingestProfile(w, r, func(ctx context.Context) (*types.Profile, error) {
		return s.ingestor.FromText(ctx, req.Text)
	})
}
