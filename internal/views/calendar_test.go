package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/edusphere/internal/models"
)

func TestCalendarEventsForDay(t *testing.T) {
	assignments := seededAssignments() // due +7d and +3d
	quizzes := models.SeedQuizzes(viewsNow)

	t.Run("assignment due date", func(t *testing.T) {
		got := CalendarEventsForDay(viewsNow.AddDate(0, 0, 3), assignments, quizzes)
		require.Len(t, got.Assignments, 1)
		assert.Equal(t, "assign2", got.Assignments[0].ID)
		assert.Empty(t, got.Quizzes)
		assert.False(t, got.Empty())
	})

	t.Run("quiz end date", func(t *testing.T) {
		got := CalendarEventsForDay(viewsNow.AddDate(0, 0, 2), assignments, quizzes)
		require.Len(t, got.Quizzes, 1)
		assert.Equal(t, "quiz1", got.Quizzes[0].ID)
	})

	t.Run("quiet day", func(t *testing.T) {
		got := CalendarEventsForDay(viewsNow.AddDate(0, 0, 40), assignments, quizzes)
		assert.True(t, got.Empty())
	})

	t.Run("matches the calendar day, not a 24h window", func(t *testing.T) {
		lateSameDay := time.Date(2024, 5, 13, 23, 59, 0, 0, time.UTC)
		got := CalendarEventsForDay(lateSameDay, assignments, quizzes)
		require.Len(t, got.Assignments, 1)
		assert.Equal(t, "assign2", got.Assignments[0].ID)
	})
}

func TestNewMonthGrid(t *testing.T) {
	tests := []struct {
		name         string
		year         int
		month        time.Month
		leadingBlank int
		days         int
	}{
		{name: "May 2024 starts Wednesday", year: 2024, month: time.May, leadingBlank: 3, days: 31},
		{name: "September 2024 starts Sunday", year: 2024, month: time.September, leadingBlank: 0, days: 30},
		{name: "February leap year", year: 2024, month: time.February, leadingBlank: 4, days: 29},
		{name: "February non-leap", year: 2023, month: time.February, leadingBlank: 3, days: 28},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := NewMonthGrid(tt.year, tt.month)
			assert.Equal(t, tt.leadingBlank, grid.LeadingBlank)
			assert.Equal(t, tt.days, grid.Days)
			assert.Equal(t, tt.year, grid.Year)
			assert.Equal(t, tt.month, grid.Month)
		})
	}
}
