package interview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func TestGenerateQuestions_AlwaysFive(t *testing.T) {
	for _, career := range []string{
		"Frontend Developer",
		"Full Stack Developer",
		"Backend Developer",
		"Data Scientist", // no pool: falls back to frontend set
		"",
	} {
		questions := GenerateQuestions(career)
		assert.Len(t, questions, QuestionCount, "career %q", career)
	}
}

func TestGenerateQuestions_UniversalFirst(t *testing.T) {
	questions := GenerateQuestions("Backend Developer")

	require.Len(t, questions, 5)
	assert.Equal(t, 1, questions[0].ID)
	assert.Equal(t, types.QuestionBehavioral, questions[0].Type)
	assert.Contains(t, questions[0].Question, "Backend Developer")

	assert.Equal(t, 2, questions[1].ID)
	assert.Equal(t, types.QuestionSituational, questions[1].Type)
}

func TestGenerateQuestions_CareerSpecificIDs(t *testing.T) {
	questions := GenerateQuestions("Frontend Developer")

	for i, q := range questions[2:] {
		assert.Equal(t, i+3, q.ID)
	}
	assert.Contains(t, questions[2].Question, "React hooks")
}

func TestGenerateQuestions_EmptyTitleFallback(t *testing.T) {
	questions := GenerateQuestions("")
	assert.Contains(t, questions[0].Question, "Software Developer")
}

func TestGenerateQuestions_UnknownCareerUsesDefaultPool(t *testing.T) {
	unknown := GenerateQuestions("Zookeeper")
	frontend := GenerateQuestions("Frontend Developer")

	// Same role questions, different motivation question
	assert.Equal(t, frontend[2].Question, unknown[2].Question)
	assert.Contains(t, unknown[0].Question, "Zookeeper")
}

func TestGenerateQuestions_TimeLimitsSet(t *testing.T) {
	for _, q := range GenerateQuestions("Full Stack Developer") {
		assert.Greater(t, q.TimeLimitSeconds, 0)
		assert.NotEmpty(t, q.Tips)
		assert.NotEmpty(t, q.ExpectedAnswer)
	}
}
