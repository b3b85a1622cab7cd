package session

import "github.com/jonathan/career-compass/internal/types"

// Dashboard demo values. Readiness and progress are fixed until a real
// progress tracker replaces them.
const (
	readinessScore     = 78
	roadmapProgressPct = 65
	completedHours     = 7
)

var missingSkills = []string{
	"Advanced React Patterns",
	"System Design",
	"GraphQL",
	"Testing Frameworks",
	"Performance Optimization",
}

var weeklyTasks = []types.WeeklyTask{
	{Title: "Complete React Hooks tutorial", Completed: true, Duration: "2 hours"},
	{Title: "Build portfolio project", Completed: false, Duration: "4 hours"},
	{Title: "Practice coding interview", Completed: false, Duration: "1 hour"},
	{Title: "Read system design article", Completed: false, Duration: "30 mins"},
}

var achievements = []types.Achievement{
	{Title: "Completed Profile Analysis", Date: "Today", Type: "milestone"},
	{Title: "Selected Career Path", Date: "Today", Type: "goal"},
	{Title: "Started Learning Plan", Date: "Today", Type: "progress"},
}

// Dashboard assembles the display payload for the dashboard screen. Only
// valid after a career has been selected.
func (s *Session) Dashboard() (*types.DashboardSnapshot, error) {
	if err := s.ensureScreen(StateDashboard); err != nil {
		return nil, err
	}

	snapshot := &types.DashboardSnapshot{
		SelectedCareer:  *s.selectedCareer,
		ReadinessScore:  readinessScore,
		RoadmapProgress: roadmapProgressPct,
		MissingSkills:   append([]string(nil), missingSkills...),
		WeeklyTasks:     append([]types.WeeklyTask(nil), weeklyTasks...),
		Achievements:    append([]types.Achievement(nil), achievements...),
		WeeklyGoalHours: s.prefs.WeeklyCommitment,
		CompletedHours:  completedHours,
	}
	return snapshot, nil
}
