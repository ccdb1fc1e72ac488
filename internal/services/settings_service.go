package services

import (
	"context"
	"log/slog"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
)

// SettingsService handles configuration that persists across logins for
// everyone on this installation; currently only the theme.
type SettingsService interface {
	Theme(ctx context.Context) models.Theme
	SetTheme(ctx context.Context, theme models.Theme)
	ToggleTheme(ctx context.Context) models.Theme
}

type settingsService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	publisher events.Publisher
}

func NewSettingsService(repo repositories.Repository, logger *slog.Logger, publisher events.Publisher) SettingsService {
	return &settingsService{repo: repo, logger: logger, publisher: publisher}
}

func (s *settingsService) Theme(ctx context.Context) models.Theme {
	return s.repo.Settings().Theme(ctx)
}

func (s *settingsService) SetTheme(ctx context.Context, theme models.Theme) {
	s.repo.Settings().SetTheme(ctx, theme)
	notify(ctx, s.publisher, s.logger, events.CollectionSettings, "set_theme")
}

// ToggleTheme flips between light and dark and persists immediately. The
// preference is installation-wide, not per user.
func (s *settingsService) ToggleTheme(ctx context.Context) models.Theme {
	next := s.repo.Settings().Theme(ctx).Toggled()
	s.SetTheme(ctx, next)
	s.logger.Info("theme toggled", "theme", next)
	return next
}
