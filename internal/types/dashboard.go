package types

// WeeklyTask is a dashboard line item for the current week
type WeeklyTask struct {
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Duration  string `json:"duration"`
}

// Achievement is a dashboard milestone entry
type Achievement struct {
	Title string `json:"title"`
	Date  string `json:"date"`
	Type  string `json:"type"` // milestone, goal, progress
}

// DashboardSnapshot is the display payload for the dashboard screen.
// Scores and task lists are demo data until a real progress tracker exists.
type DashboardSnapshot struct {
	SelectedCareer  Recommendation `json:"selected_career"`
	ReadinessScore  int            `json:"readiness_score"`
	RoadmapProgress int            `json:"roadmap_progress"`
	MissingSkills   []string       `json:"missing_skills"`
	WeeklyTasks     []WeeklyTask   `json:"weekly_tasks"`
	Achievements    []Achievement  `json:"achievements"`
	WeeklyGoalHours int            `json:"weekly_goal_hours"`
	CompletedHours  int            `json:"completed_hours"`
}
