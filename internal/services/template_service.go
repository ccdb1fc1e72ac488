package services

import (
	"context"
	"log/slog"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/validator"
)

// TemplateService manages reusable assignment templates. Templates belong
// to no course; applying one only pre-fills a creation request.
type TemplateService interface {
	SaveTemplate(ctx context.Context, sess *session.Session, req *TemplateRequest) (*models.AssignmentTemplate, error)
	DeleteTemplate(ctx context.Context, sess *session.Session, templateID string) error
	ApplyTemplate(ctx context.Context, templateID string) (*AssignmentRequest, error)
}

type TemplateRequest struct {
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type templateService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewTemplateService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) TemplateService {
	return &templateService{repo: repo, logger: logger, validator: v, publisher: publisher}
}

func (s *templateService) SaveTemplate(ctx context.Context, sess *session.Session, req *TemplateRequest) (*models.AssignmentTemplate, error) {
	if sess.RealRole() != models.RoleTeacher {
		return nil, NewPermissionError(sessionUserID(sess), "template", "save", "teacher only")
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	template := models.AssignmentTemplate{
		ID:          models.NewID("template"),
		Name:        req.Name,
		Title:       req.Title,
		Description: req.Description,
	}

	s.repo.Templates().Replace(ctx, append(s.repo.Templates().All(ctx), template))
	notify(ctx, s.publisher, s.logger, events.CollectionTemplates, "save_template")

	s.logger.Info("template saved", "template_id", template.ID, "name", template.Name)
	return &template, nil
}

func (s *templateService) DeleteTemplate(ctx context.Context, sess *session.Session, templateID string) error {
	if sess.RealRole() != models.RoleTeacher {
		return NewPermissionError(sessionUserID(sess), "template", "delete", "teacher only")
	}

	templates := s.repo.Templates().All(ctx)
	next := templates[:0:0]
	for _, tpl := range templates {
		if tpl.ID != templateID {
			next = append(next, tpl)
		}
	}
	if len(next) == len(templates) {
		return ErrTemplateNotFound
	}

	s.repo.Templates().Replace(ctx, next)
	notify(ctx, s.publisher, s.logger, events.CollectionTemplates, "delete_template")

	s.logger.Info("template deleted", "template_id", templateID)
	return nil
}

// ApplyTemplate expands a template into a pre-filled assignment request.
// The due date stays zero; the caller sets it before creating.
func (s *templateService) ApplyTemplate(ctx context.Context, templateID string) (*AssignmentRequest, error) {
	template, ok := s.repo.Templates().ByID(ctx, templateID)
	if !ok {
		return nil, ErrTemplateNotFound
	}
	return &AssignmentRequest{
		Title:       template.Title,
		Description: template.Description,
	}, nil
}
