package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/session"
	"github.com/jonathan/career-compass/internal/types"
)

// ---------------------------------------------------------------------
// Alignment Wizard Handlers
// ---------------------------------------------------------------------

// wizardResponse reflects the wizard after each mutation so clients never
// need a follow-up read.
type wizardResponse struct {
	Step        int               `json:"step"`
	StepCount   int               `json:"step_count"`
	CanProceed  bool              `json:"can_proceed"`
	Preferences types.Preferences `json:"preferences"`
}

func wizardView(sess *session.Session) (wizardResponse, error) {
	step, canProceed, err := sess.WizardStep()
	if err != nil {
		return wizardResponse{}, err
	}
	prefs, err := sess.WizardPreferences()
	if err != nil {
		return wizardResponse{}, err
	}
	return wizardResponse{
		Step:        step,
		StepCount:   session.WizardStepCount,
		CanProceed:  canProceed,
		Preferences: prefs,
	}, nil
}

// withWizard runs a wizard mutation and responds with the updated view
func (s *Server) withWizard(w http.ResponseWriter, r *http.Request, fn func(*session.Session) error) {
	var resp wizardResponse
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		if err := fn(sess); err != nil {
			return err
		}
		view, err := wizardView(sess)
		if err != nil {
			return err
		}
		resp = view
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleGetWizard(w http.ResponseWriter, r *http.Request) {
	s.withWizard(w, r, func(*session.Session) error { return nil })
}

func (s *Server) handleToggleCareer(w http.ResponseWriter, r *http.Request) {
	var req types.ToggleCareerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	s.withWizard(w, r, func(sess *session.Session) error {
		return sess.ToggleCareer(req.Career)
	})
}

// decodeOption reads a ChooseOptionRequest and reports whether it was valid
func (s *Server) decodeOption(w http.ResponseWriter, r *http.Request) (types.ChooseOptionRequest, bool) {
	var req types.ChooseOptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return req, false
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return req, false
	}
	return req, true
}

func (s *Server) handleSetEnvironment(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOption(w, r)
	if !ok {
		return
	}
	s.withWizard(w, r, func(sess *session.Session) error {
		return sess.SetEnvironment(req.OptionID)
	})
}

func (s *Server) handleSetRoleFlavor(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOption(w, r)
	if !ok {
		return
	}
	s.withWizard(w, r, func(sess *session.Session) error {
		return sess.SetRoleFlavor(req.OptionID)
	})
}

func (s *Server) handleSetLocation(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeOption(w, r)
	if !ok {
		return
	}
	s.withWizard(w, r, func(sess *session.Session) error {
		return sess.SetLocation(req.OptionID)
	})
}

func (s *Server) handleSetHours(w http.ResponseWriter, r *http.Request) {
	var req types.SetHoursRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	s.withWizard(w, r, func(sess *session.Session) error {
		return sess.SetHours(req.Hours)
	})
}

// handleWizardNext advances the wizard. Completing the last step finalizes
// the preferences and moves the session to the analysis screen, so the
// response carries the session summary instead of the (now gone) wizard.
func (s *Server) handleWizardNext(w http.ResponseWriter, r *http.Request) {
	var done bool
	var wizard wizardResponse
	var summary sessionSummary

	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		var err error
		done, err = sess.WizardNext()
		if err != nil {
			return err
		}
		if done {
			summary = summarize(sess)
			return nil
		}
		wizard, err = wizardView(sess)
		return err
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	if done {
		s.jsonResponse(w, http.StatusOK, map[string]any{"done": true, "session": summary})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"done": false, "wizard": wizard})
}

func (s *Server) handleWizardBack(w http.ResponseWriter, r *http.Request) {
	s.withWizard(w, r, func(sess *session.Session) error {
		return sess.WizardBack()
	})
}
