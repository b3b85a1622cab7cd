package types

// Resource links a roadmap task to external learning material
type Resource struct {
	Title    string `json:"title"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
	Free     bool   `json:"free"`
}

// RoadmapTask is a single learning-plan item within a day plan
type RoadmapTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Duration    int      `json:"duration"` // minutes
	Type        string   `json:"type"`     // video, reading, practice, project
	Resource    Resource `json:"resource"`
	Completed   bool     `json:"completed"`
	Priority    string   `json:"priority"` // high, medium, low
	Skills      []string `json:"skills"`
}

// DayPlan groups the roadmap tasks for a single day
type DayPlan struct {
	Day            int           `json:"day"`
	Date           string        `json:"date"`
	Theme          string        `json:"theme"`
	Tasks          []RoadmapTask `json:"tasks"`
	TotalMinutes   int           `json:"total_minutes"`
	CompletedTasks int           `json:"completed_tasks"`
}

// StudySession is a scheduled block of study time
type StudySession struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Date        string   `json:"date"` // YYYY-MM-DD
	StartTime   string   `json:"start_time"`
	EndTime     string   `json:"end_time"`
	Duration    int      `json:"duration"` // minutes
	Type        string   `json:"type"`     // focused, practice, review, project
	Priority    string   `json:"priority"` // high, medium, low
	Recurring   string   `json:"recurring"` // none, daily, weekly, weekdays
	Completed   bool     `json:"completed"`
	Skills      []string `json:"skills"`
	Reminders   bool     `json:"reminders"`
}
