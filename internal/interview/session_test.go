package interview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fastSession runs the timer at millisecond granularity for tests
func fastSession() *Session {
	return start("Frontend Developer", time.Millisecond)
}

func TestStart_InitialState(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	question, index, _ := s.Current()
	assert.Equal(t, 1, question.ID)
	assert.Equal(t, 0, index)
	assert.False(t, s.Completed())
	assert.Len(t, s.Questions(), QuestionCount)
}

func TestTimer_CountsUp(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	assert.Eventually(t, func() bool {
		_, _, elapsed := s.Current()
		return elapsed > 0
	}, time.Second, time.Millisecond, "timer should tick")
}

func TestTimer_StopsAfterStop(t *testing.T) {
	s := fastSession()
	s.Stop()

	// Give any in-flight tick time to land, then verify stability
	time.Sleep(10 * time.Millisecond)
	_, _, before := s.Current()
	time.Sleep(20 * time.Millisecond)
	_, _, after := s.Current()
	assert.Equal(t, before, after, "timer must not tick after Stop")
}

func TestStop_Idempotent(t *testing.T) {
	s := fastSession()
	s.Stop()
	s.Stop()
	s.Stop()
}

func TestSubmit_EmptyAnswerRejected(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	_, err := s.Submit("   \n ")
	var emptyErr *ErrEmptyAnswer
	require.ErrorAs(t, err, &emptyErr)

	assert.Empty(t, s.Answers())
}

func TestSubmit_AdvancesThroughQuestions(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	for i := 0; i < QuestionCount-1; i++ {
		done, err := s.Submit("a reasonable answer")
		require.NoError(t, err)
		assert.False(t, done)

		_, index, elapsed := s.Current()
		assert.Equal(t, i+1, index)
		assert.Equal(t, 0, elapsed, "elapsed resets on advance")
	}

	done, err := s.Submit("final answer")
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, s.Completed())

	feedback, err := s.Feedback()
	require.NoError(t, err)
	assert.Len(t, feedback.Scores, QuestionCount)
}

func TestSubmit_AfterCompletionRejected(t *testing.T) {
	s := completedSession(t)

	_, err := s.Submit("too late")
	var completedErr *ErrSessionCompleted
	assert.ErrorAs(t, err, &completedErr)
}

func TestPrevious_RestoresStoredAnswer(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	_, err := s.Submit("my first answer")
	require.NoError(t, err)

	stored, err := s.Previous()
	require.NoError(t, err)
	assert.Equal(t, "my first answer", stored)

	_, index, elapsed := s.Current()
	assert.Equal(t, 0, index)
	assert.Equal(t, 0, elapsed)
}

func TestPrevious_AtFirstQuestionRejected(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	_, err := s.Previous()
	var noPrevErr *ErrNoPreviousQuestion
	assert.ErrorAs(t, err, &noPrevErr)
}

func TestResubmit_OverwritesInPlace(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	_, err := s.Submit("original answer")
	require.NoError(t, err)
	originalTime := s.Answers()[0].TimeSpentSeconds

	_, err = s.Previous()
	require.NoError(t, err)

	done, err := s.Submit("revised answer")
	require.NoError(t, err)
	assert.False(t, done)

	answers := s.Answers()
	require.Len(t, answers, 1, "resubmission must not append")
	assert.Equal(t, "revised answer", answers[0].Answer)
	assert.Equal(t, 1, answers[0].QuestionID)
	assert.Equal(t, originalTime, answers[0].TimeSpentSeconds, "recorded time survives the rewrite")

	_, index, _ := s.Current()
	assert.Equal(t, 1, index, "resubmission advances again")
}

func TestFeedback_BeforeCompletionRejected(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	_, err := s.Feedback()
	var notDoneErr *ErrSessionNotCompleted
	assert.ErrorAs(t, err, &notDoneErr)
}

func TestCompletion_StopsTimer(t *testing.T) {
	s := completedSession(t)

	time.Sleep(10 * time.Millisecond)
	_, _, before := s.Current()
	time.Sleep(20 * time.Millisecond)
	_, _, after := s.Current()
	assert.Equal(t, before, after, "completed session must not accumulate time")
}

func TestLongAnswer_ScoresFullLength(t *testing.T) {
	s := fastSession()
	defer s.Stop()

	long := strings.Repeat("detail ", 40) // well past 200 chars
	for i := 0; i < QuestionCount; i++ {
		_, err := s.Submit(long)
		require.NoError(t, err)
	}

	feedback, err := s.Feedback()
	require.NoError(t, err)
	// Instant answers within the limit with full-length text score 100
	assert.Equal(t, 100, feedback.OverallScore)
}

// completedSession submits through all five questions
func completedSession(t *testing.T) *Session {
	t.Helper()
	s := fastSession()
	for i := 0; i < QuestionCount; i++ {
		_, err := s.Submit("an answer")
		require.NoError(t, err)
	}
	return s
}
