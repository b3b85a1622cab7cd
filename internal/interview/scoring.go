package interview

import (
	"fmt"
	"math"

	"github.com/jonathan/career-compass/internal/types"
)

// targetAnswerChars is the answer length that earns a full length score.
// Length is a crude proxy for completeness; there is no content evaluation.
const targetAnswerChars = 200

// ScoreAnswer computes the score for a single answer against its question.
// The result is bounded in [0, 100].
//
//	timeScore   = 100 if within the limit, else max(50, 100 - overrun seconds)
//	lengthScore = min(100, chars/200 * 100)
//	score       = (timeScore + lengthScore) / 2
func ScoreAnswer(answer types.InterviewAnswer, question types.InterviewQuestion) float64 {
	timeScore := 100.0
	if answer.TimeSpentSeconds > question.TimeLimitSeconds {
		overrun := float64(answer.TimeSpentSeconds - question.TimeLimitSeconds)
		timeScore = math.Max(50, 100-overrun)
	}

	lengthScore := math.Min(100, float64(len(answer.Answer))/targetAnswerChars*100)

	return (timeScore + lengthScore) / 2
}

// Score computes the feedback for a completed session. Answers are paired
// with questions by position. The overall score is the arithmetic mean of
// the per-question scores.
func Score(answers []types.InterviewAnswer, questions []types.InterviewQuestion, careerTitle string) *types.InterviewFeedback {
	if len(answers) == 0 {
		return &types.InterviewFeedback{}
	}

	totalTime := 0
	scores := make([]float64, len(answers))
	for i, answer := range answers {
		totalTime += answer.TimeSpentSeconds
		scores[i] = ScoreAnswer(answer, questions[i])
	}

	sum := 0.0
	for _, score := range scores {
		sum += score
	}
	overall := sum / float64(len(scores))
	avgTime := float64(totalTime) / float64(len(answers))

	return &types.InterviewFeedback{
		OverallScore:       int(math.Round(overall)),
		TotalTime:          totalTime,
		AvgTimePerQuestion: int(math.Round(avgTime)),
		Scores:             scores,
		Recommendations:    buildRecommendations(overall, avgTime, careerTitle),
	}
}

func buildRecommendations(overall, avgTime float64, careerTitle string) []string {
	recs := make([]string, 0, 4)

	if overall < 60 {
		recs = append(recs, "Practice answering questions more concisely")
	} else {
		recs = append(recs, "Good job on answer completeness!")
	}
	if avgTime > 180 {
		recs = append(recs, "Work on answering questions more quickly")
	} else {
		recs = append(recs, "Great time management!")
	}
	recs = append(recs, "Consider practicing the STAR method for behavioral questions")
	recs = append(recs, fmt.Sprintf("Focus on %s specific skills and technologies", careerTitle))
	return recs
}
