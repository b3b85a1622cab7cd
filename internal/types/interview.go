package types

// QuestionType categorizes an interview question
type QuestionType string

// Question types
const (
	QuestionTechnical      QuestionType = "technical"
	QuestionBehavioral     QuestionType = "behavioral"
	QuestionSituational    QuestionType = "situational"
	QuestionCareerSpecific QuestionType = "career-specific"
)

// InterviewQuestion is a single prompt in a mock interview session.
// Questions are generated when the session starts and are immutable for its duration.
type InterviewQuestion struct {
	ID               int          `json:"id"`
	Type             QuestionType `json:"type"`
	Question         string       `json:"question"`
	Difficulty       string       `json:"difficulty"` // easy, medium, hard
	ExpectedAnswer   string       `json:"expected_answer"`
	Tips             []string     `json:"tips"`
	TimeLimitSeconds int          `json:"time_limit_seconds"`
}

// InterviewAnswer records the user's response to one question
type InterviewAnswer struct {
	QuestionID       int    `json:"question_id"`
	Answer           string `json:"answer"`
	TimeSpentSeconds int    `json:"time_spent_seconds"`
}

// InterviewFeedback summarizes a completed interview session
type InterviewFeedback struct {
	OverallScore       int       `json:"overall_score"`
	TotalTime          int       `json:"total_time"`
	AvgTimePerQuestion int       `json:"avg_time_per_question"`
	Scores             []float64 `json:"scores"`
	Recommendations    []string  `json:"recommendations"`
}
