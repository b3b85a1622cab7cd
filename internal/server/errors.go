// Package server provides the HTTP REST API for the career guidance service.
package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/career-compass/internal/ingestion"
	"github.com/jonathan/career-compass/internal/interview"
	"github.com/jonathan/career-compass/internal/roadmap"
	"github.com/jonathan/career-compass/internal/session"
)

// ErrSessionNotFound indicates the session ID is not in the store
type ErrSessionNotFound struct {
	ID string
}

func (e *ErrSessionNotFound) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrSessionNotFound,
		*roadmap.ErrTaskNotFound,
		*roadmap.ErrStudySessionNotFound:
		return http.StatusNotFound
	case *session.ErrInvalidTransition,
		*session.ErrMissingPrerequisite,
		*session.ErrCannotProceed,
		*session.ErrNotRecommended,
		*session.ErrProcessing,
		*interview.ErrSessionCompleted,
		*interview.ErrSessionNotCompleted,
		*interview.ErrNoPreviousQuestion:
		return http.StatusConflict
	case *ingestion.ErrFileTooLarge:
		return http.StatusRequestEntityTooLarge
	case *session.ErrUnknownOption,
		*session.ErrOutOfRange,
		*ingestion.ErrInvalidFileType,
		*ingestion.ErrEmptyInput,
		*interview.ErrEmptyAnswer,
		*roadmap.ErrInvalidTimeRange:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
