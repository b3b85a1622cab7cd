package server

import (
	"net/http"
	"time"

	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/session"
)

// ---------------------------------------------------------------------
// Learning Roadmap Handlers
// ---------------------------------------------------------------------

// roadmapResponse carries the plan plus derived progress numbers
type roadmapResponse struct {
	Plan      *roadmap.Plan `json:"plan"`
	Progress  float64       `json:"progress"`
	Completed int           `json:"completed_tasks"`
	Total     int           `json:"total_tasks"`
}

func roadmapView(plan *roadmap.Plan) roadmapResponse {
	completed, total := plan.Totals()
	return roadmapResponse{
		Plan:      plan,
		Progress:  plan.Progress(),
		Completed: completed,
		Total:     total,
	}
}

// handleGenerateRoadmap builds a fresh plan. Regenerating replaces the
// existing plan wholesale; prior completion state is gone.
func (s *Server) handleGenerateRoadmap(w http.ResponseWriter, r *http.Request) {
	plan := roadmap.Generate(s.newRoadmapRand(), time.Now())

	var resp roadmapResponse
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		if err := sess.SetRoadmap(plan); err != nil {
			return err
		}
		resp = roadmapView(plan)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}

	if s.printer != nil {
		s.printer.PrintPlanSummary(plan.Days)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleGetRoadmap(w http.ResponseWriter, r *http.Request) {
	var resp roadmapResponse
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		plan, err := sess.Roadmap()
		if err != nil {
			return err
		}
		resp = roadmapView(plan)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}

func (s *Server) handleToggleRoadmapTask(w http.ResponseWriter, r *http.Request) {
	taskID := r.PathValue("task_id")

	var resp roadmapResponse
	err := s.store.With(r.PathValue("id"), func(sess *session.Session) error {
		if err := sess.ToggleRoadmapTask(taskID); err != nil {
			return err
		}
		plan, err := sess.Roadmap()
		if err != nil {
			return err
		}
		resp = roadmapView(plan)
		return nil
	})
	if err != nil {
		s.domainError(w, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
