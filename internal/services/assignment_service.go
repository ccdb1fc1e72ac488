package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/validator"
)

// AssignmentService covers assignment creation for the selected course,
// student submissions, and grading.
type AssignmentService interface {
	CreateAssignment(ctx context.Context, sess *session.Session, req *AssignmentRequest) (*models.Assignment, error)
	SubmitAssignment(ctx context.Context, sess *session.Session, assignmentID string) error
	GradeSubmission(ctx context.Context, sess *session.Session, assignmentID, studentID, grade, feedback string) error
}

type AssignmentRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description" validate:"required"`
	DueDate     models.Timestamp `json:"dueDate"`
}

type assignmentService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
	now       func() time.Time
}

func NewAssignmentService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher, now func() time.Time) AssignmentService {
	if now == nil {
		now = time.Now
	}
	return &assignmentService{repo: repo, logger: logger, validator: v, publisher: publisher, now: now}
}

// CreateAssignment adds an assignment to the currently selected course,
// newest first.
func (s *assignmentService) CreateAssignment(ctx context.Context, sess *session.Session, req *AssignmentRequest) (*models.Assignment, error) {
	if sess.RealRole() != models.RoleTeacher {
		return nil, NewPermissionError(sessionUserID(sess), "assignment", "create", "teacher only")
	}
	if sess.SelectedCourseID == "" {
		return nil, ErrNoCourseSelected
	}
	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	assignment := models.Assignment{
		ID:          models.NewID("assign"),
		CourseID:    sess.SelectedCourseID,
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		Submissions: []models.Submission{},
	}

	existing := s.repo.Assignments().All(ctx)
	next := make([]models.Assignment, 0, len(existing)+1)
	next = append(next, assignment)
	next = append(next, existing...)
	s.repo.Assignments().Replace(ctx, next)
	notify(ctx, s.publisher, s.logger, events.CollectionAssignments, "create_assignment")

	s.logger.Info("assignment created", "assignment_id", assignment.ID, "course_id", assignment.CourseID)
	return &assignment, nil
}

// SubmitAssignment records the logged-in student's submission. A
// resubmission refreshes SubmittedAt on the existing entry and keeps any
// grade already issued; there is never more than one submission per
// student.
func (s *assignmentService) SubmitAssignment(ctx context.Context, sess *session.Session, assignmentID string) error {
	if !sess.Authenticated() {
		return ErrNotAuthenticated
	}
	if sess.RealRole() != models.RoleStudent {
		return NewPermissionError(sess.User.ID, "assignment", "submit", "student only")
	}

	assignments := s.repo.Assignments().All(ctx)
	idx := -1
	for i := range assignments {
		if assignments[i].ID == assignmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAssignmentNotFound
	}

	submittedAt := models.NewTimestamp(s.now())
	a := &assignments[idx]
	if si := a.SubmissionFor(sess.User.ID); si >= 0 {
		a.Submissions[si].SubmittedAt = submittedAt
	} else {
		a.Submissions = append(a.Submissions, models.Submission{
			StudentID:   sess.User.ID,
			StudentName: sess.User.Name,
			SubmittedAt: submittedAt,
		})
	}

	s.repo.Assignments().Replace(ctx, assignments)
	notify(ctx, s.publisher, s.logger, events.CollectionAssignments, "submit_assignment")

	s.logger.Info("assignment submitted", "assignment_id", assignmentID, "student_id", sess.User.ID)
	return nil
}

// GradeSubmission sets grade and feedback on the student's submission in
// place. SubmittedAt is untouched; regrading overwrites the previous grade.
func (s *assignmentService) GradeSubmission(ctx context.Context, sess *session.Session, assignmentID, studentID, grade, feedback string) error {
	if sess.RealRole() != models.RoleTeacher {
		return NewPermissionError(sessionUserID(sess), "submission", "grade", "teacher only")
	}

	assignments := s.repo.Assignments().All(ctx)
	idx := -1
	for i := range assignments {
		if assignments[i].ID == assignmentID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrAssignmentNotFound
	}

	a := &assignments[idx]
	si := a.SubmissionFor(studentID)
	if si < 0 {
		return ErrNotFound
	}
	a.Submissions[si].Grade = &grade
	a.Submissions[si].Feedback = &feedback

	s.repo.Assignments().Replace(ctx, assignments)
	notify(ctx, s.publisher, s.logger, events.CollectionAssignments, "grade_submission")

	s.logger.Info("submission graded",
		"assignment_id", assignmentID,
		"student_id", studentID,
		"grade", grade)
	return nil
}
