// Package interview implements the mock interview simulator: question
// generation, a timed question-by-question session, and toy answer scoring.
package interview

import (
	"fmt"

	"github.com/jonathan/career-compass/internal/types"
)

// QuestionCount is the fixed number of questions per interview session
const QuestionCount = 5

// careerQuestions maps a career title to its pool of role-specific questions.
// Careers without an entry fall back to the Frontend Developer pool.
var careerQuestions = map[string][]types.InterviewQuestion{
	"Frontend Developer": {
		{
			Type:             types.QuestionTechnical,
			Question:         "Explain the difference between React hooks and class components. When would you use each?",
			Difficulty:       "medium",
			ExpectedAnswer:   "Should mention state management, lifecycle methods, modern patterns, and performance considerations.",
			Tips:             []string{"Focus on practical differences", "Mention specific use cases", "Discuss performance implications"},
			TimeLimitSeconds: 180,
		},
		{
			Type:             types.QuestionTechnical,
			Question:         "How would you optimize a React application for better performance?",
			Difficulty:       "hard",
			ExpectedAnswer:   "Should cover memoization, code splitting, lazy loading, bundle optimization, and profiling.",
			Tips:             []string{"Mention specific techniques", "Discuss measurement tools", "Consider user experience impact"},
			TimeLimitSeconds: 240,
		},
		{
			Type:             types.QuestionBehavioral,
			Question:         "Tell me about a time when you had to learn a new frontend framework or library quickly. How did you approach it?",
			Difficulty:       "medium",
			ExpectedAnswer:   "Should demonstrate learning agility, resourcefulness, and practical application.",
			Tips:             []string{"Use STAR method", "Show learning process", "Highlight results achieved"},
			TimeLimitSeconds: 180,
		},
	},
	"Full Stack Developer": {
		{
			Type:             types.QuestionTechnical,
			Question:         "Design a RESTful API for a task management application. What endpoints would you create?",
			Difficulty:       "medium",
			ExpectedAnswer:   "Should include CRUD operations, proper HTTP methods, status codes, and resource naming.",
			Tips:             []string{"Think about resource relationships", "Consider authentication", "Mention error handling"},
			TimeLimitSeconds: 300,
		},
		{
			Type:             types.QuestionTechnical,
			Question:         "How would you handle database transactions in a distributed system?",
			Difficulty:       "hard",
			ExpectedAnswer:   "Should discuss ACID properties, distributed transactions, eventual consistency, and error handling.",
			Tips:             []string{"Mention specific patterns like 2PC or Saga", "Discuss trade-offs", "Consider failure scenarios"},
			TimeLimitSeconds: 240,
		},
		{
			Type:             types.QuestionBehavioral,
			Question:         "Tell me about a project where you owned both the frontend and the backend. What trade-offs did you make?",
			Difficulty:       "medium",
			ExpectedAnswer:   "Should demonstrate end-to-end ownership, prioritization, and awareness of cross-stack trade-offs.",
			Tips:             []string{"Use STAR method", "Name concrete technologies", "Explain why you drew the line where you did"},
			TimeLimitSeconds: 180,
		},
	},
	"Backend Developer": {
		{
			Type:             types.QuestionTechnical,
			Question:         "Explain how you would design a caching strategy for a high-traffic application.",
			Difficulty:       "hard",
			ExpectedAnswer:   "Should cover different caching levels, cache invalidation, consistency, and performance metrics.",
			Tips:             []string{"Discuss multiple caching layers", "Mention specific technologies", "Consider cache invalidation strategies"},
			TimeLimitSeconds: 300,
		},
		{
			Type:             types.QuestionTechnical,
			Question:         "How do you design an API to stay backwards compatible as requirements change?",
			Difficulty:       "medium",
			ExpectedAnswer:   "Should cover versioning, additive changes, deprecation policy, and contract testing.",
			Tips:             []string{"Mention versioning strategies", "Discuss deprecation timelines", "Consider consumer impact"},
			TimeLimitSeconds: 240,
		},
		{
			Type:             types.QuestionBehavioral,
			Question:         "Describe a production incident you debugged. How did you find the root cause?",
			Difficulty:       "medium",
			ExpectedAnswer:   "Should show a systematic debugging approach, use of observability tooling, and follow-up prevention.",
			Tips:             []string{"Walk through your process step by step", "Mention the tools you used", "End with what changed afterwards"},
			TimeLimitSeconds: 180,
		},
	},
}

// defaultCareer is the fallback question pool key
const defaultCareer = "Frontend Developer"

// GenerateQuestions builds the question list for one interview session:
// two universal questions first, then role-specific ones, capped at
// QuestionCount. IDs are assigned sequentially with universal questions
// always taking 1 and 2.
func GenerateQuestions(careerTitle string) []types.InterviewQuestion {
	if careerTitle == "" {
		careerTitle = "Software Developer"
	}

	universal := []types.InterviewQuestion{
		{
			ID:               1,
			Type:             types.QuestionBehavioral,
			Question:         fmt.Sprintf("Why are you interested in transitioning to %s?", careerTitle),
			Difficulty:       "easy",
			ExpectedAnswer:   "Should show genuine interest, research about the role, and connection to personal goals.",
			Tips:             []string{"Be authentic about your motivation", "Connect to your background", "Show you've researched the role"},
			TimeLimitSeconds: 120,
		},
		{
			ID:               2,
			Type:             types.QuestionSituational,
			Question:         "How would you approach learning the skills you're currently missing for this role?",
			Difficulty:       "medium",
			ExpectedAnswer:   "Should demonstrate structured learning approach, timeline, and practical application.",
			Tips:             []string{"Mention specific resources", "Show a realistic timeline", "Include hands-on practice"},
			TimeLimitSeconds: 150,
		},
	}

	pool, ok := careerQuestions[careerTitle]
	if !ok {
		pool = careerQuestions[defaultCareer]
	}

	questions := make([]types.InterviewQuestion, 0, len(universal)+len(pool))
	questions = append(questions, universal...)
	for i, q := range pool {
		q.ID = i + 3
		questions = append(questions, q)
	}

	if len(questions) > QuestionCount {
		questions = questions[:QuestionCount]
	}
	return questions
}
