package models

import "time"

type QuizQuestion struct {
	Question           string   `json:"question" validate:"required"`
	Options            []string `json:"options" validate:"min=2"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex" validate:"min=0"`
}

type Quiz struct {
	ID              string         `json:"id"`
	CourseID        string         `json:"courseId"`
	Title           string         `json:"title" validate:"required"`
	StartTime       Timestamp      `json:"startTime"`
	EndTime         Timestamp      `json:"endTime"`
	DurationMinutes int            `json:"durationMinutes" validate:"min=1"`
	Questions       []QuizQuestion `json:"questions" validate:"dive"`
}

// ActiveAt reports whether the quiz window is open at the given instant:
// start inclusive, end exclusive.
func (q *Quiz) ActiveAt(now time.Time) bool {
	return !now.Before(q.StartTime.Time) && now.Before(q.EndTime.Time)
}
