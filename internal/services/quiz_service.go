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

type QuizService interface {
	CreateQuiz(ctx context.Context, sess *session.Session, req *QuizRequest) (*models.Quiz, error)
}

type QuizRequest struct {
	Title           string                `json:"title" validate:"required"`
	StartTime       models.Timestamp      `json:"startTime"`
	EndTime         models.Timestamp      `json:"endTime"`
	DurationMinutes int                   `json:"durationMinutes" validate:"min=1"`
	Questions       []models.QuizQuestion `json:"questions" validate:"min=1,dive"`
}

type quizService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewQuizService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) QuizService {
	return &quizService{repo: repo, logger: logger, validator: v, publisher: publisher}
}

// CreateQuiz schedules a quiz on the currently selected course. The window
// must be ordered; the window being in the past is allowed, it simply
// never activates.
func (s *quizService) CreateQuiz(ctx context.Context, sess *session.Session, req *QuizRequest) (*models.Quiz, error) {
	if sess.RealRole() != models.RoleTeacher {
		return nil, NewPermissionError(sessionUserID(sess), "quiz", "create", "teacher only")
	}
	if sess.SelectedCourseID == "" {
		return nil, ErrNoCourseSelected
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}
	if !req.StartTime.Before(req.EndTime.Time) {
		return nil, ValidationErrors{{Field: "endTime", Message: "endTime must be after startTime"}}
	}
	for qi := range req.Questions {
		q := &req.Questions[qi]
		if q.CorrectAnswerIndex >= len(q.Options) {
			return nil, ValidationErrors{{Field: "questions", Message: "correctAnswerIndex is out of range"}}
		}
	}

	quiz := models.Quiz{
		ID:              models.NewID("quiz"),
		CourseID:        sess.SelectedCourseID,
		Title:           req.Title,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
		DurationMinutes: req.DurationMinutes,
		Questions:       req.Questions,
	}

	s.repo.Quizzes().Replace(ctx, append(s.repo.Quizzes().All(ctx), quiz))
	notify(ctx, s.publisher, s.logger, events.CollectionQuizzes, "create_quiz")

	s.logger.Info("quiz created", "quiz_id", quiz.ID, "course_id", quiz.CourseID, "questions", len(quiz.Questions))
	return &quiz, nil
}
