package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/validator"
)

type VideoService interface {
	UploadVideo(ctx context.Context, sess *session.Session, title string, file io.Reader) (*models.VideoUpload, error)
}

type videoService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
	now       func() time.Time
}

func NewVideoService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher, now func() time.Time) VideoService {
	if now == nil {
		now = time.Now
	}
	return &videoService{repo: repo, logger: logger, validator: v, publisher: publisher, now: now}
}

// UploadVideo stores the raw payload inline with the upload record, newest
// first. A blank title or an empty payload is a silent no-op. The
// collection lives under its own slot, so a large video never disturbs the
// other collections.
func (s *videoService) UploadVideo(ctx context.Context, sess *session.Session, title string, file io.Reader) (*models.VideoUpload, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if sess.RealRole() != models.RoleStudent {
		return nil, NewPermissionError(sess.User.ID, "video", "upload", "student only")
	}

	title = strings.TrimSpace(title)
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read video: %w", err)
	}
	if title == "" || len(data) == 0 {
		s.logger.Debug("video upload skipped, missing title or data", "student_id", sess.User.ID)
		return nil, nil
	}

	upload := models.VideoUpload{
		ID:          models.NewID("video"),
		StudentID:   sess.User.ID,
		StudentName: sess.User.Name,
		Title:       title,
		VideoData:   data,
		UploadedAt:  models.NewTimestamp(s.now()),
	}

	existing := s.repo.Videos().All(ctx)
	next := make([]models.VideoUpload, 0, len(existing)+1)
	next = append(next, upload)
	next = append(next, existing...)
	s.repo.Videos().Replace(ctx, next)
	notify(ctx, s.publisher, s.logger, events.CollectionVideos, "upload_video")

	s.logger.Info("video uploaded", "video_id", upload.ID, "student_id", upload.StudentID, "bytes", len(data))
	return &upload, nil
}
