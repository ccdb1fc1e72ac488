package services

import (
	"context"
	"log/slog"

	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
)

// AuthService owns the login/logout transitions of a session.
type AuthService interface {
	Login(ctx context.Context, sess *session.Session, username, password string) error
	Logout(sess *session.Session)
}

type authService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewAuthService(repo repositories.Repository, logger *slog.Logger) AuthService {
	return &authService{repo: repo, logger: logger}
}

// Login matches the credential pair exactly against the Users collection.
// On success the session cursors are set; on failure the error does not
// reveal whether the username or the password was wrong. There is no
// lockout or rate limit.
func (s *authService) Login(ctx context.Context, sess *session.Session, username, password string) error {
	for _, u := range s.repo.Users().All(ctx) {
		if u.Username == username && u.Password == password {
			sess.Begin(u)
			s.logger.Info("user logged in", "user_id", u.ID, "role", u.Role)
			return nil
		}
	}
	s.logger.Info("login rejected", "username", username)
	return ErrInvalidCredentials
}

// Logout clears every session cursor.
func (s *authService) Logout(sess *session.Session) {
	if sess.User != nil {
		s.logger.Info("user logged out", "user_id", sess.User.ID)
	}
	sess.Clear()
}
