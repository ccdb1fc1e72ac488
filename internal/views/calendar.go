package views

import (
	"time"

	"github.com/edusphere/edusphere/internal/models"
)

// DayEvents unions what the calendar shows for one day: assignments due
// that day and quizzes whose window closes that day.
type DayEvents struct {
	Assignments []models.Assignment
	Quizzes     []models.Quiz
}

func (d DayEvents) Empty() bool {
	return len(d.Assignments) == 0 && len(d.Quizzes) == 0
}

// CalendarEventsForDay collects the events falling within the calendar day
// of date, evaluated in date's location.
func CalendarEventsForDay(date time.Time, assignments []models.Assignment, quizzes []models.Quiz) DayEvents {
	var out DayEvents
	for _, a := range assignments {
		if a.DueDate.SameDay(date) {
			out.Assignments = append(out.Assignments, a)
		}
	}
	for _, q := range quizzes {
		if q.EndTime.SameDay(date) {
			out.Quizzes = append(out.Quizzes, q)
		}
	}
	return out
}

// MonthGrid describes one month for a seven-column calendar: how many
// leading blank cells precede day 1 (weeks start on Sunday) and how many
// days the month has.
type MonthGrid struct {
	Year         int
	Month        time.Month
	LeadingBlank int
	Days         int
}

func NewMonthGrid(year int, month time.Month) MonthGrid {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)
	return MonthGrid{
		Year:         year,
		Month:        month,
		LeadingBlank: int(first.Weekday()),
		Days:         last.Day(),
	}
}
