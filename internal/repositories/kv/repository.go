// Package kv implements the collection repositories over the byte-level
// store adapter. Collections load lazily, falling back to the bootstrap
// seed when a slot is absent or corrupt, and every Replace writes the
// whole collection through.
package kv

import (
	"context"
	"log/slog"
	"time"

	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/store"
)

// collection caches one persisted slice. Not safe for concurrent use; all
// mutations run on the single event-handling goroutine.
type collection[T any] struct {
	kv     store.KV
	logger *slog.Logger
	key    string
	seed   func() []T

	loaded bool
	items  []T
}

func (c *collection[T]) all(ctx context.Context) []T {
	if !c.loaded {
		c.items = store.Load(ctx, c.kv, c.logger, c.key, c.seed())
		c.loaded = true
	}
	out := make([]T, len(c.items))
	copy(out, c.items)
	return out
}

func (c *collection[T]) replace(ctx context.Context, items []T) {
	c.items = items
	c.loaded = true
	if err := store.Save(ctx, c.kv, c.key, items); err != nil {
		// In-memory value stays authoritative; a reload may see stale data.
		c.logger.Error("collection write-through failed", "key", c.key, "error", err)
	}
}

type repository struct {
	kv     store.KV
	logger *slog.Logger

	users         *userRepo
	courses       *courseRepo
	assignments   *assignmentRepo
	quizzes       *quizRepo
	announcements *announcementRepo
	templates     *templateRepo
	videos        *videoRepo
	settings      *settingsRepo
}

// New builds the repository aggregate over a KV backend. now fixes the
// reference instant for seed data with relative dates.
func New(kv store.KV, logger *slog.Logger, now time.Time) repositories.Repository {
	return &repository{
		kv:     kv,
		logger: logger,
		users: &userRepo{collection[models.User]{
			kv: kv, logger: logger, key: store.KeyUsers, seed: models.SeedUsers,
		}},
		courses: &courseRepo{collection[models.Course]{
			kv: kv, logger: logger, key: store.KeyCourses, seed: models.SeedCourses,
		}},
		assignments: &assignmentRepo{collection[models.Assignment]{
			kv: kv, logger: logger, key: store.KeyAssignments,
			seed: func() []models.Assignment { return models.SeedAssignments(now) },
		}},
		quizzes: &quizRepo{collection[models.Quiz]{
			kv: kv, logger: logger, key: store.KeyQuizzes,
			seed: func() []models.Quiz { return models.SeedQuizzes(now) },
		}},
		announcements: &announcementRepo{collection[models.Announcement]{
			kv: kv, logger: logger, key: store.KeyAnnouncements,
			seed: func() []models.Announcement { return models.SeedAnnouncements(now) },
		}},
		templates: &templateRepo{collection[models.AssignmentTemplate]{
			kv: kv, logger: logger, key: store.KeyTemplates, seed: models.SeedTemplates,
		}},
		videos: &videoRepo{collection[models.VideoUpload]{
			kv: kv, logger: logger, key: store.KeyVideos, seed: models.SeedVideos,
		}},
		settings: &settingsRepo{kv: kv, logger: logger},
	}
}

func (r *repository) Users() repositories.UserRepository                 { return r.users }
func (r *repository) Courses() repositories.CourseRepository             { return r.courses }
func (r *repository) Assignments() repositories.AssignmentRepository     { return r.assignments }
func (r *repository) Quizzes() repositories.QuizRepository               { return r.quizzes }
func (r *repository) Announcements() repositories.AnnouncementRepository { return r.announcements }
func (r *repository) Templates() repositories.TemplateRepository         { return r.templates }
func (r *repository) Videos() repositories.VideoRepository               { return r.videos }
func (r *repository) Settings() repositories.SettingsRepository          { return r.settings }

func (r *repository) Close() error {
	return r.kv.Close()
}
