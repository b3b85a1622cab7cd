package roadmap

import "fmt"

// ErrTaskNotFound indicates a roadmap task ID does not exist in the plan
type ErrTaskNotFound struct {
	ID string
}

func (e *ErrTaskNotFound) Error() string {
	return fmt.Sprintf("roadmap task not found: %s", e.ID)
}

// ErrStudySessionNotFound indicates a study session ID does not exist
type ErrStudySessionNotFound struct {
	ID string
}

func (e *ErrStudySessionNotFound) Error() string {
	return fmt.Sprintf("study session not found: %s", e.ID)
}

// ErrInvalidTimeRange indicates a study session's times could not be parsed
// or the end does not come after the start
type ErrInvalidTimeRange struct {
	Start string
	End   string
}

func (e *ErrInvalidTimeRange) Error() string {
	return fmt.Sprintf("invalid time range: %s - %s", e.Start, e.End)
}
