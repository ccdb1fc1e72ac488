package services

import (
	"context"
	"log/slog"
	"strings"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/validator"
)

// CourseService manages the course catalog. Name and code are each
// case-insensitively unique across the collection, and the error names
// which field collided so a form can attach it to the right input.
type CourseService interface {
	CreateCourse(ctx context.Context, sess *session.Session, req *CourseRequest) (*models.Course, error)
	UpdateCourse(ctx context.Context, sess *session.Session, courseID string, req *CourseRequest) error
	RequestCourseDeletion(sess *session.Session, courseID string)
	CancelCourseDeletion(sess *session.Session)
	ConfirmCourseDeletion(ctx context.Context, sess *session.Session) error
}

type CourseRequest struct {
	Name string `json:"name" validate:"required"`
	Code string `json:"code" validate:"required"`
}

type courseService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewCourseService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) CourseService {
	return &courseService{repo: repo, logger: logger, validator: v, publisher: publisher}
}

func (s *courseService) CreateCourse(ctx context.Context, sess *session.Session, req *CourseRequest) (*models.Course, error) {
	if sess.RealRole() != models.RoleTeacher {
		return nil, NewPermissionError(sessionUserID(sess), "course", "create", "teacher only")
	}

	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if err := s.validator.Validate(&CourseRequest{Name: name, Code: code}); err != nil {
		return nil, err
	}

	courses := s.repo.Courses().All(ctx)
	if err := checkCourseUnique(courses, name, code, ""); err != nil {
		return nil, err
	}

	course := models.Course{
		ID:        models.NewID("course"),
		Name:      name,
		Code:      code,
		TeacherID: sess.User.ID,
	}
	s.repo.Courses().Replace(ctx, append(courses, course))

	// The owning teacher's enrollment list mirrors the catalog.
	users := s.repo.Users().All(ctx)
	for i := range users {
		if users[i].ID == sess.User.ID {
			users[i].CourseIDs = append(users[i].CourseIDs, course.ID)
			sess.SyncUser(users[i])
			break
		}
	}
	s.repo.Users().Replace(ctx, users)

	notify(ctx, s.publisher, s.logger, events.CollectionCourses, "create_course")
	notify(ctx, s.publisher, s.logger, events.CollectionUsers, "create_course")

	s.logger.Info("course created", "course_id", course.ID, "code", course.Code, "teacher_id", course.TeacherID)
	return &course, nil
}

func (s *courseService) UpdateCourse(ctx context.Context, sess *session.Session, courseID string, req *CourseRequest) error {
	if sess.RealRole() != models.RoleTeacher {
		return NewPermissionError(sessionUserID(sess), "course", "update", "teacher only")
	}

	name := strings.TrimSpace(req.Name)
	code := strings.TrimSpace(req.Code)
	if err := s.validator.Validate(&CourseRequest{Name: name, Code: code}); err != nil {
		return err
	}

	courses := s.repo.Courses().All(ctx)
	idx := -1
	for i := range courses {
		if courses[i].ID == courseID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrCourseNotFound
	}
	if err := checkCourseUnique(courses, name, code, courseID); err != nil {
		return err
	}

	courses[idx].Name = name
	courses[idx].Code = code
	s.repo.Courses().Replace(ctx, courses)
	notify(ctx, s.publisher, s.logger, events.CollectionCourses, "update_course")

	s.logger.Info("course updated", "course_id", courseID, "code", code)
	return nil
}

// RequestCourseDeletion stages a course for deletion; nothing is removed
// until the request is confirmed.
func (s *courseService) RequestCourseDeletion(sess *session.Session, courseID string) {
	sess.View.PendingCourseDeletion = courseID
}

func (s *courseService) CancelCourseDeletion(sess *session.Session) {
	sess.View.PendingCourseDeletion = ""
}

// ConfirmCourseDeletion removes the staged course and un-enrolls every
// user from it. Assignments, quizzes, and announcements that reference the
// course are left in place; they simply stop appearing in course-scoped
// views once the course is gone.
func (s *courseService) ConfirmCourseDeletion(ctx context.Context, sess *session.Session) error {
	if sess.RealRole() != models.RoleTeacher {
		return NewPermissionError(sessionUserID(sess), "course", "delete", "teacher only")
	}
	courseID := sess.View.PendingCourseDeletion
	if courseID == "" {
		return ErrNoCourseSelected
	}

	courses := s.repo.Courses().All(ctx)
	next := courses[:0:0]
	found := false
	for _, c := range courses {
		if c.ID == courseID {
			found = true
			continue
		}
		next = append(next, c)
	}
	if !found {
		sess.View.PendingCourseDeletion = ""
		return ErrCourseNotFound
	}
	s.repo.Courses().Replace(ctx, next)

	users := s.repo.Users().All(ctx)
	for i := range users {
		kept := users[i].CourseIDs[:0:0]
		for _, id := range users[i].CourseIDs {
			if id != courseID {
				kept = append(kept, id)
			}
		}
		users[i].CourseIDs = kept
		if sess.User != nil && users[i].ID == sess.User.ID {
			sess.SyncUser(users[i])
		}
	}
	s.repo.Users().Replace(ctx, users)

	if sess.SelectedCourseID == courseID {
		sess.SelectCourse("")
	}
	sess.View.PendingCourseDeletion = ""

	notify(ctx, s.publisher, s.logger, events.CollectionCourses, "delete_course")
	notify(ctx, s.publisher, s.logger, events.CollectionUsers, "delete_course")

	s.logger.Info("course deleted", "course_id", courseID)
	return nil
}

// checkCourseUnique compares name and code case-insensitively against
// every other course. Name wins when both collide, matching the order a
// form reports the failure.
func checkCourseUnique(courses []models.Course, name, code, excludeID string) error {
	for _, c := range courses {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.Name, name) {
			return ErrCourseNameTaken
		}
	}
	for _, c := range courses {
		if c.ID == excludeID {
			continue
		}
		if strings.EqualFold(c.Code, code) {
			return ErrCourseCodeTaken
		}
	}
	return nil
}
