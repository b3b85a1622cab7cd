package roadmap

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/career-compass/internal/types"
)

// Schedule holds the user's planned study sessions. Like Plan, access is
// serialized by the owning session.
type Schedule struct {
	Sessions []types.StudySession `json:"sessions"`
}

// GenerateSchedule builds the sample schedule for the next seven days: a
// morning focus block every day and a practice session every other day, with
// the earliest entries pre-marked completed.
func GenerateSchedule(now time.Time) *Schedule {
	sessions := make([]types.StudySession, 0, PlanDays+PlanDays/2)

	for i := 0; i < PlanDays; i++ {
		date := now.AddDate(0, 0, i).Format("2006-01-02")

		sessions = append(sessions, types.StudySession{
			ID:          uuid.NewString(),
			Title:       "Morning Focus Block",
			Description: "Deep work on React components and hooks",
			Date:        date,
			StartTime:   "09:00",
			EndTime:     "10:30",
			Duration:    90,
			Type:        "focused",
			Priority:    "high",
			Recurring:   "weekdays",
			Completed:   i < 2,
			Skills:      []string{"React", "JavaScript", "Problem Solving"},
			Reminders:   true,
		})

		if i%2 == 0 {
			sessions = append(sessions, types.StudySession{
				ID:          uuid.NewString(),
				Title:       "Practice & Review",
				Description: "Code challenges and reviewing completed tasks",
				Date:        date,
				StartTime:   "19:00",
				EndTime:     "20:00",
				Duration:    60,
				Type:        "practice",
				Priority:    "medium",
				Recurring:   "none",
				Completed:   i < 1,
				Skills:      []string{"Algorithms", "Data Structures"},
				Reminders:   true,
			})
		}
	}

	return &Schedule{Sessions: sessions}
}

// CalculateDuration computes minutes between two HH:MM times
func CalculateDuration(start, end string) (int, error) {
	startAt, err := time.Parse("15:04", start)
	if err != nil {
		return 0, &ErrInvalidTimeRange{Start: start, End: end}
	}
	endAt, err := time.Parse("15:04", end)
	if err != nil {
		return 0, &ErrInvalidTimeRange{Start: start, End: end}
	}

	minutes := int(endAt.Sub(startAt).Minutes())
	if minutes <= 0 {
		return 0, &ErrInvalidTimeRange{Start: start, End: end}
	}
	return minutes, nil
}

// Add appends a new study session built from the request, filling defaults
// for optional fields.
func (s *Schedule) Add(req types.AddStudySessionRequest) (types.StudySession, error) {
	duration, err := CalculateDuration(req.StartTime, req.EndTime)
	if err != nil {
		return types.StudySession{}, err
	}

	session := types.StudySession{
		ID:          uuid.NewString(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Duration:    duration,
		Type:        req.Type,
		Priority:    req.Priority,
		Recurring:   req.Recurring,
		Skills:      req.Skills,
		Reminders:   req.Reminders,
	}
	if session.Type == "" {
		session.Type = "focused"
	}
	if session.Priority == "" {
		session.Priority = "medium"
	}
	if session.Recurring == "" {
		session.Recurring = "none"
	}

	s.Sessions = append(s.Sessions, session)
	return session, nil
}

// Toggle flips a study session's completion state
func (s *Schedule) Toggle(sessionID string) error {
	for i := range s.Sessions {
		if s.Sessions[i].ID == sessionID {
			s.Sessions[i].Completed = !s.Sessions[i].Completed
			return nil
		}
	}
	return &ErrStudySessionNotFound{ID: sessionID}
}

// Delete removes a study session
func (s *Schedule) Delete(sessionID string) error {
	for i := range s.Sessions {
		if s.Sessions[i].ID == sessionID {
			s.Sessions = append(s.Sessions[:i], s.Sessions[i+1:]...)
			return nil
		}
	}
	return &ErrStudySessionNotFound{ID: sessionID}
}
