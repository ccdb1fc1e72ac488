package services

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"strings"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/validator"
)

const (
	passwordLength   = 8
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// UserService covers registration, student role management, and profile
// picture updates.
type UserService interface {
	RegisterStudent(ctx context.Context, sess *session.Session, req *RegisterStudentRequest) (*models.Credentials, error)
	UpdateStudentRole(ctx context.Context, sess *session.Session, studentID string, role models.StudentRole) error
	ChangeProfilePicture(ctx context.Context, sess *session.Session, file io.Reader, mimeType string) error
}

type RegisterStudentRequest struct {
	FirstName     string   `json:"firstName" validate:"required"`
	Surname       string   `json:"surname" validate:"required"`
	Email         string   `json:"email" validate:"required,email"`
	StudentNumber string   `json:"studentNumber" validate:"required"`
	Phone         string   `json:"phone" validate:"required"`
	CourseIDs     []string `json:"courseIds"`
}

type userService struct {
	repo      repositories.Repository
	logger    *slog.Logger
	validator *validator.Validator
	publisher events.Publisher
}

func NewUserService(repo repositories.Repository, logger *slog.Logger, v *validator.Validator, publisher events.Publisher) UserService {
	return &userService{repo: repo, logger: logger, validator: v, publisher: publisher}
}

// RegisterStudent creates a student account with generated credentials:
// username is lowercase(firstName) + "." + first letter of the surname,
// password is 8 random characters. Registration is open to teachers and to
// students holding a governor office, checked against the real
// authenticated identity. Username collisions are not checked; two
// students with the same name pair end up sharing a username under
// distinct ids.
func (s *userService) RegisterStudent(ctx context.Context, sess *session.Session, req *RegisterStudentRequest) (*models.Credentials, error) {
	if !sess.Authenticated() {
		return nil, ErrNotAuthenticated
	}
	if !sess.User.CanRegisterStudents() {
		return nil, NewPermissionError(sess.User.ID, "student", "register", "requires teacher or governor office")
	}

	if err := s.validator.Validate(req); err != nil {
		return nil, err
	}

	username := strings.ToLower(req.FirstName) + "." + firstLetterLower(req.Surname)
	password, err := generatePassword()
	if err != nil {
		return nil, fmt.Errorf("generate password: %w", err)
	}

	regular := models.StudentRegular
	id := models.NewID("student")
	pictureURL := "https://i.pravatar.cc/150?u=" + id
	student := models.User{
		ID:                id,
		Name:              req.FirstName + " " + req.Surname,
		Role:              models.RoleStudent,
		StudentRole:       &regular,
		Email:             req.Email,
		StudentNumber:     req.StudentNumber,
		Phone:             req.Phone,
		Surname:           req.Surname,
		FirstName:         req.FirstName,
		ProfilePictureURL: &pictureURL,
		CourseIDs:         append([]string(nil), req.CourseIDs...),
		Username:          username,
		Password:          password,
	}

	users := append(s.repo.Users().All(ctx), student)
	s.repo.Users().Replace(ctx, users)
	notify(ctx, s.publisher, s.logger, events.CollectionUsers, "register_student")

	s.logger.Info("student registered", "student_id", student.ID, "username", username)

	creds := &models.Credentials{Name: student.Name, Username: username, Password: password}
	sess.View.IssuedCredentials = creds
	return creds, nil
}

// UpdateStudentRole sets the student office on the matching user.
// A missing student id is a silent no-op.
func (s *userService) UpdateStudentRole(ctx context.Context, sess *session.Session, studentID string, role models.StudentRole) error {
	if sess.RealRole() != models.RoleTeacher {
		return NewPermissionError(sessionUserID(sess), "student", "update_role", "teacher only")
	}

	users := s.repo.Users().All(ctx)
	updated := false
	for i := range users {
		if users[i].ID == studentID && users[i].Role == models.RoleStudent {
			r := role
			users[i].StudentRole = &r
			updated = true
			break
		}
	}
	if !updated {
		s.logger.Debug("student role update skipped, no such student", "student_id", studentID)
		return nil
	}

	s.repo.Users().Replace(ctx, users)
	notify(ctx, s.publisher, s.logger, events.CollectionUsers, "update_student_role")

	s.logger.Info("student role updated", "student_id", studentID, "role", role)
	return nil
}

// ChangeProfilePicture decodes the uploaded file into a displayable data
// URI and updates both the Users collection and the session cursor. Until
// the decode completes the prior picture stays in place; the collection
// write happens once, after decoding.
func (s *userService) ChangeProfilePicture(ctx context.Context, sess *session.Session, file io.Reader, mimeType string) error {
	if !sess.Authenticated() {
		return ErrNotAuthenticated
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("read picture: %w", err)
	}
	dataURI := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(data)

	users := s.repo.Users().All(ctx)
	for i := range users {
		if users[i].ID == sess.User.ID {
			users[i].ProfilePictureURL = &dataURI
			sess.SyncUser(users[i])
			break
		}
	}
	s.repo.Users().Replace(ctx, users)
	notify(ctx, s.publisher, s.logger, events.CollectionUsers, "change_profile_picture")

	s.logger.Info("profile picture updated", "user_id", sess.User.ID, "bytes", len(data))
	return nil
}

func firstLetterLower(surname string) string {
	for _, r := range strings.ToLower(surname) {
		return string(r)
	}
	return ""
}

func generatePassword() (string, error) {
	out := make([]byte, passwordLength)
	max := big.NewInt(int64(len(passwordAlphabet)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = passwordAlphabet[n.Int64()]
	}
	return string(out), nil
}

func sessionUserID(sess *session.Session) string {
	if sess.User == nil {
		return ""
	}
	return sess.User.ID
}
