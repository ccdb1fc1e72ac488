package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/validator"
)

type AnnouncementService interface {
	PostAnnouncement(ctx context.Context, sess *session.Session, req *AnnouncementRequest) (*models.Announcement, error)
}

type AnnouncementRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type announcementService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
	now       func() time.Time
}

func NewAnnouncementService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher, now func() time.Time) AnnouncementService {
	if now == nil {
		now = time.Now
	}
	return &announcementService{repo: repo, logger: logger, validator: v, publisher: publisher, now: now}
}

// PostAnnouncement prepends an announcement to the selected course's feed.
// A blank title or content is a silent no-op: nothing is stored, no event
// fires, and nil is returned. The author field is a name snapshot; a later
// rename does not rewrite old posts. Announcements are append-only, newest
// first.
func (s *announcementService) PostAnnouncement(ctx context.Context, sess *session.Session, req *AnnouncementRequest) (*models.Announcement, error) {
	if sess.RealRole() != models.RoleTeacher {
		return nil, NewPermissionError(sessionUserID(sess), "announcement", "post", "teacher only")
	}
	if sess.SelectedCourseID == "" {
		return nil, ErrNoCourseSelected
	}

	title := strings.TrimSpace(req.Title)
	content := strings.TrimSpace(req.Content)
	if title == "" || content == "" {
		s.logger.Debug("announcement skipped, empty title or content", "course_id", sess.SelectedCourseID)
		return nil, nil
	}

	announcement := models.Announcement{
		ID:        models.NewID("ann"),
		CourseID:  sess.SelectedCourseID,
		Title:     title,
		Content:   content,
		Author:    sess.User.Name,
		CreatedAt: models.NewTimestamp(s.now()),
	}

	existing := s.repo.Announcements().All(ctx)
	next := make([]models.Announcement, 0, len(existing)+1)
	next = append(next, announcement)
	next = append(next, existing...)
	s.repo.Announcements().Replace(ctx, next)
	notify(ctx, s.publisher, s.logger, events.CollectionAnnouncements, "post_announcement")

	s.logger.Info("announcement posted", "announcement_id", announcement.ID, "course_id", announcement.CourseID)
	return &announcement, nil
}
