package session

import (
	"github.com/jonathan/career-compass/internal/catalog"
	"github.com/jonathan/career-compass/internal/types"
)

// WizardStepCount is the number of alignment wizard steps
const WizardStepCount = 5

// Wizard step indexes
const (
	StepCareers = iota
	StepEnvironment
	StepRoleFlavor
	StepLocation
	StepHours
)

// defaultWeeklyCommitment is the slider's initial position
const defaultWeeklyCommitment = 10

// Wizard builds the user's Preferences across five linear steps.
// Completing the final step finalizes the preferences; the wizard is not
// usable afterward.
type Wizard struct {
	step      int
	prefs     types.Preferences
	completed bool
}

// NewWizard creates a wizard positioned at the first step
func NewWizard() *Wizard {
	return &Wizard{
		prefs: types.Preferences{
			InterestedCareers: []string{},
			WeeklyCommitment:  defaultWeeklyCommitment,
		},
	}
}

// Step returns the current zero-based step index
func (w *Wizard) Step() int {
	return w.step
}

// Completed reports whether the final step has been confirmed
func (w *Wizard) Completed() bool {
	return w.completed
}

// Preferences returns a copy of the answers collected so far
func (w *Wizard) Preferences() types.Preferences {
	prefs := w.prefs
	prefs.InterestedCareers = make([]string, len(w.prefs.InterestedCareers))
	copy(prefs.InterestedCareers, w.prefs.InterestedCareers)
	return prefs
}

// ToggleCareer adds or removes a career from the interest list. Selecting
// a fourth career while three are present is a no-op, not an error.
func (w *Wizard) ToggleCareer(career string) error {
	if !catalog.ValidCareerOption(career) {
		return &ErrUnknownOption{Field: "career", Value: career}
	}

	for i, c := range w.prefs.InterestedCareers {
		if c == career {
			w.prefs.InterestedCareers = append(
				w.prefs.InterestedCareers[:i],
				w.prefs.InterestedCareers[i+1:]...,
			)
			return nil
		}
	}

	if len(w.prefs.InterestedCareers) >= types.MaxInterestedCareers {
		return nil
	}
	w.prefs.InterestedCareers = append(w.prefs.InterestedCareers, career)
	return nil
}

// SetEnvironment records the work environment choice for step 2
func (w *Wizard) SetEnvironment(id string) error {
	if !catalog.ValidOption(catalog.EnvironmentOptions, id) {
		return &ErrUnknownOption{Field: "work environment", Value: id}
	}
	w.prefs.WorkEnvironment = id
	return nil
}

// SetRoleFlavor records the role style choice for step 3
func (w *Wizard) SetRoleFlavor(id string) error {
	if !catalog.ValidOption(catalog.RoleFlavorOptions, id) {
		return &ErrUnknownOption{Field: "role flavor", Value: id}
	}
	w.prefs.RoleFlavor = id
	return nil
}

// SetLocation records the location preference choice for step 4
func (w *Wizard) SetLocation(id string) error {
	if !catalog.ValidOption(catalog.LocationOptions, id) {
		return &ErrUnknownOption{Field: "location preference", Value: id}
	}
	w.prefs.LocationPreference = id
	return nil
}

// SetHours records the weekly learning commitment for step 5
func (w *Wizard) SetHours(hours int) error {
	if hours < 1 || hours > 40 {
		return &ErrOutOfRange{Field: "weekly commitment", Value: hours, Min: 1, Max: 40}
	}
	w.prefs.WeeklyCommitment = hours
	return nil
}

// CanProceed reports whether the current step's requirement is satisfied.
// The hours step always allows proceeding (the slider has a default).
func (w *Wizard) CanProceed() bool {
	switch w.step {
	case StepCareers:
		return len(w.prefs.InterestedCareers) > 0
	case StepEnvironment:
		return w.prefs.WorkEnvironment != ""
	case StepRoleFlavor:
		return w.prefs.RoleFlavor != ""
	case StepLocation:
		return w.prefs.LocationPreference != ""
	case StepHours:
		return true
	default:
		return false
	}
}

// Next advances the wizard. On the final step it marks the wizard complete
// and returns true; the caller then finalizes the preferences.
func (w *Wizard) Next() (bool, error) {
	if !w.CanProceed() {
		return false, &ErrCannotProceed{Step: w.step}
	}
	if w.step < WizardStepCount-1 {
		w.step++
		return false, nil
	}
	w.completed = true
	return true, nil
}

// Back moves to the previous step, clamping at the first
func (w *Wizard) Back() {
	if w.step > 0 {
		w.step--
	}
}
