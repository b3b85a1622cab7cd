package interview

// ErrEmptyAnswer indicates a submitted answer was empty after trimming
type ErrEmptyAnswer struct{}

func (e *ErrEmptyAnswer) Error() string {
	return "answer must not be empty"
}

// ErrSessionCompleted indicates the session has already been finalized
type ErrSessionCompleted struct{}

func (e *ErrSessionCompleted) Error() string {
	return "interview session is already completed"
}

// ErrSessionNotCompleted indicates feedback was requested before completion
type ErrSessionNotCompleted struct{}

func (e *ErrSessionNotCompleted) Error() string {
	return "interview session is not completed yet"
}

// ErrNoPreviousQuestion indicates backward navigation from the first question
type ErrNoPreviousQuestion struct{}

func (e *ErrNoPreviousQuestion) Error() string {
	return "already at the first question"
}
