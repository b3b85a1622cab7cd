package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/interview"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/types"
)

// Session is one user's journey through the guidance flow. All state is
// in-memory and scoped to the session; it is discarded when the session is
// dropped from the store.
//
// Methods are not safe for concurrent use. The HTTP layer serializes access
// per session via the store.
type Session struct {
	id        string
	createdAt time.Time
	state     State
	busy      bool

	profile         *types.Profile
	wizard          *Wizard
	prefs           *types.Preferences
	recommendations []types.Recommendation
	selectedCareer  *types.Recommendation

	plan      *roadmap.Plan
	schedule  *roadmap.Schedule
	interview *interview.Session
}

// New creates a session at the landing screen
func New() *Session {
	return &Session{
		id:        uuid.NewString(),
		createdAt: time.Now(),
		state:     StateLanding,
	}
}

// ID returns the session's UUID
func (s *Session) ID() string {
	return s.id
}

// CreatedAt returns the session's creation time
func (s *Session) CreatedAt() time.Time {
	return s.createdAt
}

// State returns the active screen
func (s *Session) State() State {
	return s.state
}

// Profile returns the ingested profile, or nil before upload
func (s *Session) Profile() *types.Profile {
	return s.profile
}

// Preferences returns the finalized preferences, or nil before the wizard
// completes.
func (s *Session) Preferences() *types.Preferences {
	return s.prefs
}

// Recommendations returns the most recent recommendation set
func (s *Session) Recommendations() []types.Recommendation {
	out := make([]types.Recommendation, len(s.recommendations))
	copy(out, s.recommendations)
	return out
}

// SelectedCareer returns the chosen career, or nil before selection
func (s *Session) SelectedCareer() *types.Recommendation {
	return s.selectedCareer
}

// TryBeginProcessing marks the session busy for a long-running call
// (ingestion or analysis). It reports false if another call is already
// pending; the caller then rejects the request instead of queueing it.
func (s *Session) TryBeginProcessing() bool {
	if s.busy {
		return false
	}
	s.busy = true
	return true
}

// EndProcessing clears the busy flag set by TryBeginProcessing
func (s *Session) EndProcessing() {
	s.busy = false
}

// Begin moves from the landing screen to the upload screen
func (s *Session) Begin() error {
	if s.state != StateLanding {
		return &ErrInvalidTransition{From: s.state, To: StateUpload}
	}
	s.state = StateUpload
	return nil
}

// SetProfile records the ingested profile and opens the alignment wizard.
// Only valid on the upload screen.
func (s *Session) SetProfile(profile *types.Profile) error {
	if s.state != StateUpload {
		return &ErrInvalidTransition{From: s.state, To: StateAlignment}
	}
	s.profile = profile
	s.wizard = NewWizard()
	s.state = StateAlignment
	return nil
}

// ensureWizard guards the wizard operations to the alignment screen
func (s *Session) ensureWizard() (*Wizard, error) {
	if s.state != StateAlignment || s.wizard == nil {
		return nil, &ErrMissingPrerequisite{Screen: StateAlignment, Missing: "an active alignment wizard"}
	}
	return s.wizard, nil
}

// WizardStep returns the wizard's current step and whether it can proceed
func (s *Session) WizardStep() (step int, canProceed bool, err error) {
	w, err := s.ensureWizard()
	if err != nil {
		return 0, false, err
	}
	return w.Step(), w.CanProceed(), nil
}

// WizardPreferences returns the answers collected so far
func (s *Session) WizardPreferences() (types.Preferences, error) {
	w, err := s.ensureWizard()
	if err != nil {
		return types.Preferences{}, err
	}
	return w.Preferences(), nil
}

// ToggleCareer flips a career's membership in the interest list
func (s *Session) ToggleCareer(career string) error {
	w, err := s.ensureWizard()
	if err != nil {
		return err
	}
	return w.ToggleCareer(career)
}

// SetEnvironment records the work environment wizard choice
func (s *Session) SetEnvironment(id string) error {
	w, err := s.ensureWizard()
	if err != nil {
		return err
	}
	return w.SetEnvironment(id)
}

// SetRoleFlavor records the role style wizard choice
func (s *Session) SetRoleFlavor(id string) error {
	w, err := s.ensureWizard()
	if err != nil {
		return err
	}
	return w.SetRoleFlavor(id)
}

// SetLocation records the location preference wizard choice
func (s *Session) SetLocation(id string) error {
	w, err := s.ensureWizard()
	if err != nil {
		return err
	}
	return w.SetLocation(id)
}

// SetHours records the weekly commitment wizard choice
func (s *Session) SetHours(hours int) error {
	w, err := s.ensureWizard()
	if err != nil {
		return err
	}
	return w.SetHours(hours)
}

// WizardNext advances the wizard. Completing the final step finalizes the
// preferences and moves the session to the analysis screen; the finalized
// preferences never change afterward.
func (s *Session) WizardNext() (done bool, err error) {
	w, err := s.ensureWizard()
	if err != nil {
		return false, err
	}
	done, err = w.Next()
	if err != nil || !done {
		return done, err
	}

	prefs := w.Preferences()
	s.prefs = &prefs
	s.wizard = nil
	s.state = StateAnalysis
	return true, nil
}

// WizardBack moves the wizard one step back
func (s *Session) WizardBack() error {
	w, err := s.ensureWizard()
	if err != nil {
		return err
	}
	w.Back()
	return nil
}

// AnalysisInputs returns the profile and preferences an analysis run needs,
// verifying the session is on the analysis screen with both present.
func (s *Session) AnalysisInputs() (*types.Profile, *types.Preferences, error) {
	if s.state != StateAnalysis {
		return nil, nil, &ErrMissingPrerequisite{Screen: StateAnalysis, Missing: "navigation to the analysis screen"}
	}
	if err := s.ensureAnalysisInputs(); err != nil {
		return nil, nil, err
	}
	return s.profile, s.prefs, nil
}

// SetRecommendations stores a freshly computed recommendation set. Any
// earlier career selection belongs to a discarded set and is cleared.
func (s *Session) SetRecommendations(recs []types.Recommendation) error {
	if s.state != StateAnalysis {
		return &ErrMissingPrerequisite{Screen: StateAnalysis, Missing: "an active analysis run"}
	}
	if err := s.ensureAnalysisInputs(); err != nil {
		return err
	}
	s.recommendations = recs
	s.selectedCareer = nil
	return nil
}

// SelectCareer chooses one of the current recommendations and moves to the
// dashboard. Titles outside the most recent set are rejected.
func (s *Session) SelectCareer(title string) error {
	if s.state != StateAnalysis {
		return &ErrInvalidTransition{From: s.state, To: StateDashboard}
	}
	for i := range s.recommendations {
		if s.recommendations[i].Title == title {
			rec := s.recommendations[i]
			s.selectedCareer = &rec
			s.state = StateDashboard
			return nil
		}
	}
	return &ErrNotRecommended{Title: title}
}

// NavigateTo moves between the post-selection screens and back to analysis.
// Returning to analysis discards the recommendation set and the selection
// so the next run starts clean.
func (s *Session) NavigateTo(to State) error {
	if !transitionAllowed(s.state, to) {
		return &ErrInvalidTransition{From: s.state, To: to}
	}
	if err := s.checkGuards(to); err != nil {
		return err
	}

	if to == StateAnalysis {
		s.recommendations = nil
		s.selectedCareer = nil
	}
	if s.state == StateInterview && to != StateInterview && s.interview != nil {
		s.interview.Stop()
	}
	s.state = to
	return nil
}

// transitionAllowed encodes the navigation graph for screens reached after
// a career has been selected. The earlier screens only move forward through
// their dedicated operations.
func transitionAllowed(from, to State) bool {
	switch from {
	case StateDashboard:
		return to == StateRoadmap || to == StateSchedule || to == StateInterview || to == StateAnalysis
	case StateRoadmap, StateSchedule, StateInterview:
		return to == StateDashboard
	default:
		return false
	}
}

// ensureAnalysisInputs verifies the analysis prerequisites
func (s *Session) ensureAnalysisInputs() error {
	if s.profile == nil {
		return &ErrMissingPrerequisite{Screen: StateAnalysis, Missing: "an ingested profile"}
	}
	if s.prefs == nil {
		return &ErrMissingPrerequisite{Screen: StateAnalysis, Missing: "completed preferences"}
	}
	return nil
}

// checkGuards verifies the prerequisites of the target screen
func (s *Session) checkGuards(to State) error {
	switch to {
	case StateAnalysis:
		return s.ensureAnalysisInputs()
	case StateDashboard, StateRoadmap, StateSchedule, StateInterview:
		if err := s.ensureAnalysisInputs(); err != nil {
			return &ErrMissingPrerequisite{Screen: to, Missing: "an ingested profile and completed preferences"}
		}
		if s.selectedCareer == nil {
			return &ErrMissingPrerequisite{Screen: to, Missing: "a selected career"}
		}
	}
	return nil
}

// SetRoadmap installs a freshly generated plan, discarding any prior plan
// and all of its completion state.
func (s *Session) SetRoadmap(plan *roadmap.Plan) error {
	if err := s.ensureScreen(StateRoadmap); err != nil {
		return err
	}
	s.plan = plan
	return nil
}

// Roadmap returns the current plan
func (s *Session) Roadmap() (*roadmap.Plan, error) {
	if err := s.ensureScreen(StateRoadmap); err != nil {
		return nil, err
	}
	if s.plan == nil {
		return nil, &ErrMissingPrerequisite{Screen: StateRoadmap, Missing: "a generated learning plan"}
	}
	return s.plan, nil
}

// ToggleRoadmapTask flips a plan task's completion state
func (s *Session) ToggleRoadmapTask(taskID string) error {
	plan, err := s.Roadmap()
	if err != nil {
		return err
	}
	return plan.ToggleTask(taskID)
}

// SetSchedule installs a freshly generated study schedule, discarding any
// prior schedule.
func (s *Session) SetSchedule(schedule *roadmap.Schedule) error {
	if err := s.ensureScreen(StateSchedule); err != nil {
		return err
	}
	s.schedule = schedule
	return nil
}

// Schedule returns the current study schedule
func (s *Session) Schedule() (*roadmap.Schedule, error) {
	if err := s.ensureScreen(StateSchedule); err != nil {
		return nil, err
	}
	if s.schedule == nil {
		return nil, &ErrMissingPrerequisite{Screen: StateSchedule, Missing: "a generated study schedule"}
	}
	return s.schedule, nil
}

// AddStudySession appends a study session to the schedule
func (s *Session) AddStudySession(req types.AddStudySessionRequest) (types.StudySession, error) {
	schedule, err := s.Schedule()
	if err != nil {
		return types.StudySession{}, err
	}
	return schedule.Add(req)
}

// ToggleStudySession flips a study session's completion state
func (s *Session) ToggleStudySession(sessionID string) error {
	schedule, err := s.Schedule()
	if err != nil {
		return err
	}
	return schedule.Toggle(sessionID)
}

// DeleteStudySession removes a study session from the schedule
func (s *Session) DeleteStudySession(sessionID string) error {
	schedule, err := s.Schedule()
	if err != nil {
		return err
	}
	return schedule.Delete(sessionID)
}

// StartInterview begins a fresh interview run for the selected career. A
// prior run's timer is stopped before it is replaced.
func (s *Session) StartInterview() (*interview.Session, error) {
	if err := s.ensureScreen(StateInterview); err != nil {
		return nil, err
	}
	if s.interview != nil {
		s.interview.Stop()
	}
	s.interview = interview.Start(s.selectedCareer.Title)
	return s.interview, nil
}

// Interview returns the active interview run
func (s *Session) Interview() (*interview.Session, error) {
	if err := s.ensureScreen(StateInterview); err != nil {
		return nil, err
	}
	if s.interview == nil {
		return nil, &ErrMissingPrerequisite{Screen: StateInterview, Missing: "a started interview"}
	}
	return s.interview, nil
}

// Close releases session resources. Safe to call on any state.
func (s *Session) Close() {
	if s.interview != nil {
		s.interview.Stop()
	}
}

// ensureScreen rejects operations issued against the wrong screen
func (s *Session) ensureScreen(want State) error {
	if s.state != want {
		return &ErrMissingPrerequisite{Screen: want, Missing: "navigation to the " + string(want) + " screen"}
	}
	return nil
}
