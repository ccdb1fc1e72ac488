package kv

import (
	"context"

	"github.com/edusphere/edusphere/internal/models"
)

type assignmentRepo struct {
	collection[models.Assignment]
}

func (r *assignmentRepo) All(ctx context.Context) []models.Assignment {
	return r.all(ctx)
}

func (r *assignmentRepo) ByID(ctx context.Context, id string) (models.Assignment, bool) {
	for _, a := range r.all(ctx) {
		if a.ID == id {
			return a, true
		}
	}
	return models.Assignment{}, false
}

func (r *assignmentRepo) Replace(ctx context.Context, assignments []models.Assignment) {
	r.replace(ctx, assignments)
}
