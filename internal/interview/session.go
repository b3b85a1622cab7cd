package interview

import (
	"strings"
	"sync"
	"time"

	"github.com/jonathan/career-compass/internal/types"
)

// Session is one run through the generated interview questions.
//
// The per-question timer counts up at one-second granularity on a goroutine
// owned by the session. The goroutine is stopped when the session completes,
// is replaced, or is explicitly stopped; it never outlives the session.
type Session struct {
	mu        sync.Mutex
	career    string
	questions []types.InterviewQuestion
	answers   []types.InterviewAnswer
	index     int
	elapsed   int // seconds spent on the current question
	startedAt time.Time
	completed bool
	feedback  *types.InterviewFeedback
	stop      chan struct{}
	stopOnce  sync.Once
}

// Start generates questions for the selected career and begins a session
// with the timer running.
func Start(careerTitle string) *Session {
	return start(careerTitle, time.Second)
}

// start exists so tests can run the ticker at a faster interval
func start(careerTitle string, tickEvery time.Duration) *Session {
	s := &Session{
		career:    careerTitle,
		questions: GenerateQuestions(careerTitle),
		answers:   make([]types.InterviewAnswer, 0, QuestionCount),
		startedAt: time.Now(),
		stop:      make(chan struct{}),
	}
	go s.run(tickEvery)
	return s
}

// run drives the count-up timer until the session is stopped
func (s *Session) run(tickEvery time.Duration) {
	ticker := time.NewTicker(tickEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.tick()
		case <-s.stop:
			return
		}
	}
}

// tick advances the current question's elapsed time by one second.
// Completed sessions do not accumulate time.
func (s *Session) tick() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.completed {
		s.elapsed++
	}
}

// Stop cancels the timer goroutine. Safe to call multiple times; must be
// called when a session is replaced or the owning session ends.
func (s *Session) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

// Career returns the career title this session was generated for
func (s *Session) Career() string {
	return s.career
}

// Questions returns the generated questions in order
func (s *Session) Questions() []types.InterviewQuestion {
	out := make([]types.InterviewQuestion, len(s.questions))
	copy(out, s.questions)
	return out
}

// Current returns the active question, its zero-based index, and the seconds
// spent on it so far.
func (s *Session) Current() (types.InterviewQuestion, int, int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions[s.index], s.index, s.elapsed
}

// Completed reports whether the session has been finalized
func (s *Session) Completed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.completed
}

// Submit records the answer for the active question and advances the
// session. Submitting on the last question finalizes the session, computes
// feedback, and stops the timer. An answer that is empty after trimming is
// rejected.
//
// After backward navigation, submitting overwrites the stored answer for
// that question in place; the answer's position never changes.
func (s *Session) Submit(answer string) (bool, error) {
	if strings.TrimSpace(answer) == "" {
		return false, &ErrEmptyAnswer{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return false, &ErrSessionCompleted{}
	}

	entry := types.InterviewAnswer{
		QuestionID:       s.questions[s.index].ID,
		Answer:           answer,
		TimeSpentSeconds: s.elapsed,
	}
	if s.index < len(s.answers) {
		// Re-submission after going back: keep position, replace content.
		// Preserve the originally recorded time; the revisit clock would
		// otherwise punish editing.
		entry.TimeSpentSeconds = s.answers[s.index].TimeSpentSeconds
		s.answers[s.index] = entry
	} else {
		s.answers = append(s.answers, entry)
	}

	if s.index < len(s.questions)-1 {
		s.index++
		s.elapsed = 0
		return false, nil
	}

	s.completed = true
	s.feedback = Score(s.answers, s.questions, s.career)
	s.stopOnce.Do(func() { close(s.stop) })
	return true, nil
}

// Previous moves back one question and returns the answer previously stored
// for it, so the caller can restore the input buffer.
func (s *Session) Previous() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.completed {
		return "", &ErrSessionCompleted{}
	}
	if s.index == 0 {
		return "", &ErrNoPreviousQuestion{}
	}

	s.index--
	s.elapsed = 0
	if s.index < len(s.answers) {
		return s.answers[s.index].Answer, nil
	}
	return "", nil
}

// Answers returns the answers recorded so far, in question order
func (s *Session) Answers() []types.InterviewAnswer {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]types.InterviewAnswer, len(s.answers))
	copy(out, s.answers)
	return out
}

// Feedback returns the computed feedback for a completed session
func (s *Session) Feedback() (*types.InterviewFeedback, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.completed || s.feedback == nil {
		return nil, &ErrSessionNotCompleted{}
	}
	return s.feedback, nil
}
