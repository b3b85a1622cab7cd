// Package roadmap generates the mock 7-day learning plan and the study
// schedule. Plans are demo data: task completion is randomly pre-seeded at
// generation time and regenerating a plan discards all prior state.
package roadmap

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/types"
)

// PlanDays is the length of a generated learning plan
const PlanDays = 7

// completionBias is the random pre-seeding threshold: a task starts
// completed when rng.Float64() exceeds it (~30% of tasks).
const completionBias = 0.7

var baseTasks = []types.RoadmapTask{
	{
		Title:       "React Fundamentals Deep Dive",
		Description: "Master component lifecycle, hooks, and state management",
		Duration:    90,
		Type:        "video",
		Resource:    types.Resource{Title: "React Official Tutorial", URL: "https://react.dev/learn", Provider: "React.dev", Free: true},
		Priority:    "high",
		Skills:      []string{"React", "JavaScript", "Components"},
	},
	{
		Title:       "Build Todo App with Hooks",
		Description: "Practice useState, useEffect, and custom hooks",
		Duration:    120,
		Type:        "project",
		Resource:    types.Resource{Title: "React Hooks Guide", URL: "https://react.dev/reference/react", Provider: "React.dev", Free: true},
		Priority:    "high",
		Skills:      []string{"React Hooks", "State Management"},
	},
	{
		Title:       "CSS Grid and Flexbox Mastery",
		Description: "Modern layout techniques for responsive design",
		Duration:    75,
		Type:        "video",
		Resource:    types.Resource{Title: "CSS Grid Complete Guide", URL: "https://css-tricks.com/snippets/css/complete-guide-grid/", Provider: "CSS-Tricks", Free: true},
		Priority:    "medium",
		Skills:      []string{"CSS", "Layout", "Responsive Design"},
	},
	{
		Title:       "JavaScript ES6+ Features",
		Description: "Arrow functions, destructuring, async/await, modules",
		Duration:    60,
		Type:        "reading",
		Resource:    types.Resource{Title: "Modern JavaScript Tutorial", URL: "https://javascript.info/", Provider: "JavaScript.info", Free: true},
		Priority:    "high",
		Skills:      []string{"JavaScript", "ES6+", "Async Programming"},
	},
	{
		Title:       "Git Version Control",
		Description: "Branching, merging, collaboration workflows",
		Duration:    45,
		Type:        "practice",
		Resource:    types.Resource{Title: "Learn Git Branching", URL: "https://learngitbranching.js.org/", Provider: "Interactive Tutorial", Free: true},
		Priority:    "medium",
		Skills:      []string{"Git", "Version Control", "Collaboration"},
	},
	{
		Title:       "Build Portfolio Website",
		Description: "Showcase your skills with a personal portfolio",
		Duration:    180,
		Type:        "project",
		Resource:    types.Resource{Title: "Portfolio Best Practices", URL: "https://www.freecodecamp.org/news/how-to-build-a-developer-portfolio-website/", Provider: "freeCodeCamp", Free: true},
		Priority:    "high",
		Skills:      []string{"Portfolio", "HTML/CSS", "JavaScript"},
	},
	{
		Title:       "API Integration with Fetch",
		Description: "Consuming REST APIs and handling async data",
		Duration:    90,
		Type:        "practice",
		Resource:    types.Resource{Title: "Fetch API Tutorial", URL: "https://developer.mozilla.org/en-US/docs/Web/API/Fetch_API/Using_Fetch", Provider: "MDN", Free: true},
		Priority:    "high",
		Skills:      []string{"APIs", "Fetch", "Async/Await"},
	},
}

var themes = []string{
	"Foundation Building",
	"React Mastery",
	"Styling & Layout",
	"API Integration",
	"Project Development",
	"Advanced Patterns",
	"Portfolio & Deployment",
}

// Plan is a generated 7-day learning plan. Concurrency control is the
// caller's responsibility; the owning session serializes access.
type Plan struct {
	Days []types.DayPlan `json:"days"`
}

// Generate builds a fresh plan. Day N takes a two-task window starting at
// base task N-1, so consecutive days overlap by one task and the final day
// gets a single task.
func Generate(rng *rand.Rand, now time.Time) *Plan {
	days := make([]types.DayPlan, 0, PlanDays)
	for i := 0; i < PlanDays; i++ {
		end := i + 2
		if end > len(baseTasks) {
			end = len(baseTasks)
		}

		tasks := make([]types.RoadmapTask, 0, 2)
		for _, base := range baseTasks[i:end] {
			task := base
			task.ID = uuid.NewString()
			task.Completed = rng.Float64() > completionBias
			tasks = append(tasks, task)
		}

		totalMinutes := 0
		completed := 0
		for _, task := range tasks {
			totalMinutes += task.Duration
			if task.Completed {
				completed++
			}
		}

		days = append(days, types.DayPlan{
			Day:            i + 1,
			Date:           now.AddDate(0, 0, i+1).Format("Mon, Jan 2"),
			Theme:          themes[i],
			Tasks:          tasks,
			TotalMinutes:   totalMinutes,
			CompletedTasks: completed,
		})
	}
	return &Plan{Days: days}
}

// ToggleTask flips a task's completion state and updates the day's counter
func (p *Plan) ToggleTask(taskID string) error {
	for d := range p.Days {
		for t := range p.Days[d].Tasks {
			if p.Days[d].Tasks[t].ID != taskID {
				continue
			}
			p.Days[d].Tasks[t].Completed = !p.Days[d].Tasks[t].Completed
			completed := 0
			for _, task := range p.Days[d].Tasks {
				if task.Completed {
					completed++
				}
			}
			p.Days[d].CompletedTasks = completed
			return nil
		}
	}
	return &ErrTaskNotFound{ID: taskID}
}

// Progress returns overall completion as the mean of per-day ratios, in percent
func (p *Plan) Progress() float64 {
	if len(p.Days) == 0 {
		return 0
	}
	sum := 0.0
	for _, day := range p.Days {
		if len(day.Tasks) > 0 {
			sum += float64(day.CompletedTasks) / float64(len(day.Tasks)) * 100
		}
	}
	return sum / float64(len(p.Days))
}

// Totals returns the completed and total task counts across all days
func (p *Plan) Totals() (completed, total int) {
	for _, day := range p.Days {
		completed += day.CompletedTasks
		total += len(day.Tasks)
	}
	return completed, total
}
