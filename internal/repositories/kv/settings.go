package kv

import (
	"context"
	"log/slog"

	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/store"
)

type settingsRepo struct {
	kv     store.KV
	logger *slog.Logger
}

func (r *settingsRepo) Theme(ctx context.Context) models.Theme {
	return store.Load(ctx, r.kv, r.logger, store.KeyTheme, models.ThemeLight)
}

func (r *settingsRepo) SetTheme(ctx context.Context, theme models.Theme) {
	if err := store.Save(ctx, r.kv, store.KeyTheme, theme); err != nil {
		r.logger.Error("theme write-through failed", "error", err)
	}
}
