package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/career-compass/internal/session"
	"github.com/jonathan/career-compass/internal/types"
)

// ---------------------------------------------------------------------
// Interview Simulator Handlers
// ---------------------------------------------------------------------

// interviewState is the live view of an interview run
type interviewState struct {
	Career         string                  `json:"career"`
	Completed      bool                    `json:"completed"`
	Question       types.InterviewQuestion `json:"question"`
	Index          int                     `json:"index"`
	QuestionCount  int                     `json:"question_count"`
	ElapsedSeconds int                     `json:"elapsed_seconds"`
}

// handleStartInterview begins a fresh run. Starting while a run exists
// restarts it; the old run's timer is stopped before it is dropped.
func (s *Server) handleStartInterview(w http.ResponseWriter, r *http.Request) {
	var state interviewState
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		iv, err := sess.StartInterview()
		if err != nil {
			return err
		}
		question, index, elapsed := iv.Current()
		state = interviewState{
			Career:         iv.Career(),
			Question:       question,
			Index:          index,
			QuestionCount:  len(iv.Questions()),
			ElapsedSeconds: elapsed,
		}
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

func (s *Server) handleGetInterview(w http.ResponseWriter, r *http.Request) {
	var state interviewState
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		iv, err := sess.Interview()
		if err != nil {
			return err
		}
		state = interviewState{
			Career:        iv.Career(),
			Completed:     iv.Completed(),
			QuestionCount: len(iv.Questions()),
		}
		if !state.Completed {
			state.Question, state.Index, state.ElapsedSeconds = iv.Current()
		}
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, state)
}

func (s *Server) handleSubmitAnswer(w http.ResponseWriter, r *http.Request) {
	var req types.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Validation failed: "+err.Error())
		return
	}

	var done bool
	var feedback *types.InterviewFeedback
	var state interviewState
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		iv, err := sess.Interview()
		if err != nil {
			return err
		}
		done, err = iv.Submit(req.Answer)
		if err != nil {
			return err
		}
		if done {
			feedback, err = iv.Feedback()
			return err
		}
		state = interviewState{
			Career:        iv.Career(),
			QuestionCount: len(iv.Questions()),
		}
		state.Question, state.Index, state.ElapsedSeconds = iv.Current()
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	if done {
		if s.printer != nil {
			s.printer.PrintInterviewFeedback(feedback)
		}
		s.jsonResponse(w, http.StatusOK, map[string]any{"done": true, "feedback": feedback})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"done": false, "interview": state})
}

// handlePreviousQuestion steps back one question and returns the answer
// previously stored for it so the client can restore its input buffer.
func (s *Server) handlePreviousQuestion(w http.ResponseWriter, r *http.Request) {
	var stored string
	var state interviewState
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		iv, err := sess.Interview()
		if err != nil {
			return err
		}
		stored, err = iv.Previous()
		if err != nil {
			return err
		}
		state = interviewState{
			Career:        iv.Career(),
			QuestionCount: len(iv.Questions()),
		}
		state.Question, state.Index, state.ElapsedSeconds = iv.Current()
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"stored_answer": stored, "interview": state})
}

func (s *Server) handleGetFeedback(w http.ResponseWriter, r *http.Request) {
	var feedback *types.InterviewFeedback
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		iv, err := sess.Interview()
		if err != nil {
			return err
		}
		feedback, err = iv.Feedback()
		return err
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, feedback)
}
