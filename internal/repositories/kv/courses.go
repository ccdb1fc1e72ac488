package kv

import (
	"context"

	"github.com/edusphere/edusphere/internal/models"
)

type courseRepo struct {
	collection[models.Course]
}

func (r *courseRepo) All(ctx context.Context) []models.Course {
	return r.all(ctx)
}

func (r *courseRepo) ByID(ctx context.Context, id string) (models.Course, bool) {
	for _, c := range r.all(ctx) {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

func (r *courseRepo) Replace(ctx context.Context, courses []models.Course) {
	r.replace(ctx, courses)
}
