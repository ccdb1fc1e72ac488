package kv

import (
	"context"

	"github.com/edusphere/edusphere/internal/models"
)

type userRepo struct {
	collection[models.User]
}

func (r *userRepo) All(ctx context.Context) []models.User {
	return r.all(ctx)
}

func (r *userRepo) ByID(ctx context.Context, id string) (models.User, bool) {
	for _, u := range r.all(ctx) {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *userRepo) ByUsername(ctx context.Context, username string) (models.User, bool) {
	for _, u := range r.all(ctx) {
		if u.Username == username {
			return u, true
		}
	}
	return models.User{}, false
}

func (r *userRepo) Replace(ctx context.Context, users []models.User) {
	r.replace(ctx, users)
}
