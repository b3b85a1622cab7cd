package interview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/career-compass/internal/types"
)

func question(limit int) types.InterviewQuestion {
	return types.InterviewQuestion{ID: 1, TimeLimitSeconds: limit}
}

func TestScoreAnswer_WithinLimitFullTimeScore(t *testing.T) {
	answer := types.InterviewAnswer{Answer: strings.Repeat("x", 200), TimeSpentSeconds: 100}
	score := ScoreAnswer(answer, question(120))
	assert.Equal(t, 100.0, score)
}

func TestScoreAnswer_OverrunPenalty(t *testing.T) {
	// 20s over: timeScore 80, full length: (80+100)/2 = 90
	answer := types.InterviewAnswer{Answer: strings.Repeat("x", 400), TimeSpentSeconds: 140}
	score := ScoreAnswer(answer, question(120))
	assert.Equal(t, 90.0, score)
}

func TestScoreAnswer_OverrunFloorAtFifty(t *testing.T) {
	// 500s over: timeScore clamps at 50
	answer := types.InterviewAnswer{Answer: strings.Repeat("x", 200), TimeSpentSeconds: 620}
	score := ScoreAnswer(answer, question(120))
	assert.Equal(t, 75.0, score)
}

func TestScoreAnswer_LengthProportional(t *testing.T) {
	// 100 chars: lengthScore 50, within limit: (100+50)/2 = 75
	answer := types.InterviewAnswer{Answer: strings.Repeat("x", 100), TimeSpentSeconds: 10}
	score := ScoreAnswer(answer, question(120))
	assert.Equal(t, 75.0, score)
}

func TestScoreAnswer_Bounded(t *testing.T) {
	empty := ScoreAnswer(types.InterviewAnswer{TimeSpentSeconds: 9999}, question(60))
	assert.GreaterOrEqual(t, empty, 0.0)
	assert.LessOrEqual(t, empty, 100.0)
	assert.Equal(t, 25.0, empty) // timeScore 50, lengthScore 0

	perfect := ScoreAnswer(types.InterviewAnswer{Answer: strings.Repeat("x", 1000)}, question(60))
	assert.Equal(t, 100.0, perfect)
}

func TestScore_AggregatesAnswers(t *testing.T) {
	questions := []types.InterviewQuestion{question(120), question(120)}
	answers := []types.InterviewAnswer{
		{QuestionID: 1, Answer: strings.Repeat("x", 200), TimeSpentSeconds: 60},  // 100
		{QuestionID: 2, Answer: strings.Repeat("x", 100), TimeSpentSeconds: 120}, // 75
	}

	feedback := Score(answers, questions, "Frontend Developer")

	assert.Equal(t, 88, feedback.OverallScore) // round(87.5)
	assert.Equal(t, 180, feedback.TotalTime)
	assert.Equal(t, 90, feedback.AvgTimePerQuestion)
	assert.Equal(t, []float64{100, 75}, feedback.Scores)
}

func TestScore_EmptyAnswers(t *testing.T) {
	feedback := Score(nil, nil, "Frontend Developer")
	assert.Equal(t, 0, feedback.OverallScore)
	assert.Empty(t, feedback.Scores)
}

func TestRecommendations_HighScoreFastAnswers(t *testing.T) {
	questions := []types.InterviewQuestion{question(120)}
	answers := []types.InterviewAnswer{
		{QuestionID: 1, Answer: strings.Repeat("x", 300), TimeSpentSeconds: 30},
	}

	feedback := Score(answers, questions, "Data Scientist")
	require.Len(t, feedback.Recommendations, 4)
	assert.Equal(t, "Good job on answer completeness!", feedback.Recommendations[0])
	assert.Equal(t, "Great time management!", feedback.Recommendations[1])
	assert.Contains(t, feedback.Recommendations[3], "Data Scientist")
}

func TestRecommendations_LowScoreSlowAnswers(t *testing.T) {
	questions := []types.InterviewQuestion{question(60)}
	answers := []types.InterviewAnswer{
		{QuestionID: 1, Answer: "short", TimeSpentSeconds: 300},
	}

	feedback := Score(answers, questions, "Frontend Developer")
	require.Len(t, feedback.Recommendations, 4)
	assert.Equal(t, "Practice answering questions more concisely", feedback.Recommendations[0])
	assert.Equal(t, "Work on answering questions more quickly", feedback.Recommendations[1])
}
