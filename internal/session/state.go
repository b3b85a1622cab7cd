// Package session implements the per-user session state machine that
// governs how inputs flow through the guidance pipeline: which screen is
// active, which prerequisites exist, and which transitions are legal.
package session

import "fmt"

// State names one screen of the application flow
type State string

// The full screen set. landing is the initial state and is only reachable
// via initial load; there is no restart transition.
const (
	StateLanding   State = "landing"
	StateUpload    State = "upload"
	StateAlignment State = "alignment"
	StateAnalysis  State = "analysis"
	StateDashboard State = "dashboard"
	StateRoadmap   State = "roadmap"
	StateSchedule  State = "schedule"
	StateInterview State = "interview"
)

// ParseState converts a string into a known State
func ParseState(s string) (State, error) {
	switch State(s) {
	case StateLanding, StateUpload, StateAlignment, StateAnalysis,
		StateDashboard, StateRoadmap, StateSchedule, StateInterview:
		return State(s), nil
	default:
		return "", fmt.Errorf("unknown state: %q", s)
	}
}
