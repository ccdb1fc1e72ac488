package kv

import (
	"context"

	"github.com/edusphere/edusphere/internal/models"
)

type quizRepo struct {
	collection[models.Quiz]
}

func (r *quizRepo) All(ctx context.Context) []models.Quiz {
	return r.all(ctx)
}

func (r *quizRepo) Replace(ctx context.Context, quizzes []models.Quiz) {
	r.replace(ctx, quizzes)
}

type announcementRepo struct {
	collection[models.Announcement]
}

func (r *announcementRepo) All(ctx context.Context) []models.Announcement {
	return r.all(ctx)
}

func (r *announcementRepo) Replace(ctx context.Context, announcements []models.Announcement) {
	r.replace(ctx, announcements)
}

type templateRepo struct {
	collection[models.AssignmentTemplate]
}

func (r *templateRepo) All(ctx context.Context) []models.AssignmentTemplate {
	return r.all(ctx)
}

func (r *templateRepo) ByID(ctx context.Context, id string) (models.AssignmentTemplate, bool) {
	for _, t := range r.all(ctx) {
		if t.ID == id {
			return t, true
		}
	}
	return models.AssignmentTemplate{}, false
}

func (r *templateRepo) Replace(ctx context.Context, templates []models.AssignmentTemplate) {
	r.replace(ctx, templates)
}

type videoRepo struct {
	collection[models.VideoUpload]
}

func (r *videoRepo) All(ctx context.Context) []models.VideoUpload {
	return r.all(ctx)
}

func (r *videoRepo) Replace(ctx context.Context, videos []models.VideoUpload) {
	r.replace(ctx, videos)
}
