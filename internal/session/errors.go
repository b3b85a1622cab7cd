package session

import "fmt"

// ErrInvalidTransition indicates a transition the state machine does not allow
type ErrInvalidTransition struct {
	From State
	To   State
}

func (e *ErrInvalidTransition) Error() string {
	return fmt.Sprintf("invalid transition: %s -> %s", e.From, e.To)
}

// ErrMissingPrerequisite indicates a screen's guard failed.
//
// The original behavior was to render nothing; the state machine reports
// the failure explicitly instead so clients can redirect to the missing
// step.
type ErrMissingPrerequisite struct {
	Screen  State
	Missing string
}

func (e *ErrMissingPrerequisite) Error() string {
	return fmt.Sprintf("screen %s requires %s", e.Screen, e.Missing)
}

// ErrCannotProceed indicates the current wizard step is incomplete
type ErrCannotProceed struct {
	Step int
}

func (e *ErrCannotProceed) Error() string {
	return fmt.Sprintf("wizard step %d is incomplete", e.Step+1)
}

// ErrUnknownOption indicates a wizard choice outside the option list
type ErrUnknownOption struct {
	Field string
	Value string
}

func (e *ErrUnknownOption) Error() string {
	return fmt.Sprintf("unknown %s option: %q", e.Field, e.Value)
}

// ErrNotRecommended indicates a career selection outside the most recent
// recommendation set
type ErrNotRecommended struct {
	Title string
}

func (e *ErrNotRecommended) Error() string {
	return fmt.Sprintf("career %q is not in the current recommendations", e.Title)
}

// ErrProcessing indicates an operation was submitted while another
// ingestion or analysis call is still pending on this session
type ErrProcessing struct{}

func (e *ErrProcessing) Error() string {
	return "another operation is already in progress for this session"
}

// ErrOutOfRange indicates a numeric preference outside its domain
type ErrOutOfRange struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *ErrOutOfRange) Error() string {
	return fmt.Sprintf("%s must be between %d and %d, got %d", e.Field, e.Min, e.Max, e.Value)
}
