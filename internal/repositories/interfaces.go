// Package repositories defines the domain collection contracts. Each
// collection is a normalized table persisted whole under one store slot;
// mutations read the current value, compute the next one, and replace it.
package repositories

import (
	"context"

	"github.com/edusphere/edusphere/internal/models"
)

type UserRepository interface {
	All(ctx context.Context) []models.User
	ByID(ctx context.Context, id string) (models.User, bool)
	ByUsername(ctx context.Context, username string) (models.User, bool)
	// Replace swaps the whole collection and writes it through. Storage
	// failures are logged and absorbed; the in-memory value stays
	// authoritative for the session.
	Replace(ctx context.Context, users []models.User)
}

type CourseRepository interface {
	All(ctx context.Context) []models.Course
	ByID(ctx context.Context, id string) (models.Course, bool)
	Replace(ctx context.Context, courses []models.Course)
}

type AssignmentRepository interface {
	All(ctx context.Context) []models.Assignment
	ByID(ctx context.Context, id string) (models.Assignment, bool)
	Replace(ctx context.Context, assignments []models.Assignment)
}

type QuizRepository interface {
	All(ctx context.Context) []models.Quiz
	Replace(ctx context.Context, quizzes []models.Quiz)
}

type AnnouncementRepository interface {
	All(ctx context.Context) []models.Announcement
	Replace(ctx context.Context, announcements []models.Announcement)
}

type TemplateRepository interface {
	All(ctx context.Context) []models.AssignmentTemplate
	ByID(ctx context.Context, id string) (models.AssignmentTemplate, bool)
	Replace(ctx context.Context, templates []models.AssignmentTemplate)
}

type VideoRepository interface {
	All(ctx context.Context) []models.VideoUpload
	Replace(ctx context.Context, videos []models.VideoUpload)
}

// SettingsRepository persists configuration values that are not domain
// data; currently only the theme preference.
type SettingsRepository interface {
	Theme(ctx context.Context) models.Theme
	SetTheme(ctx context.Context, theme models.Theme)
}

// Repository aggregates the per-collection repositories over one store.
type Repository interface {
	Users() UserRepository
	Courses() CourseRepository
	Assignments() AssignmentRepository
	Quizzes() QuizRepository
	Announcements() AnnouncementRepository
	Templates() TemplateRepository
	Videos() VideoRepository
	Settings() SettingsRepository
	Close() error
}
