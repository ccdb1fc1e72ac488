// Package session holds the ephemeral per-login cursors. Nothing here is
// ever persisted; a process restart always comes back logged out.
package session

import "github.com/edusphere/edusphere/internal/models"

// ViewState is the explicit dialog/overlay state a rendering layer keys
// off, instead of each view keeping its own hidden flags.
type ViewState struct {
	ManageCoursesOpen bool
	// PendingCourseDeletion names the course awaiting delete confirmation.
	PendingCourseDeletion string
	// IssuedCredentials are shown once after a registration, then cleared.
	IssuedCredentials *models.Credentials
}

// Session is the single mutable cursor bundle for the logged-in user.
// Single event loop only; not safe for concurrent use.
type Session struct {
	User             *models.User
	ActingRole       models.UserRole
	SelectedCourseID string
	View             ViewState
}

func New() *Session {
	return &Session{}
}

func (s *Session) Authenticated() bool {
	return s.User != nil
}

// Begin sets the cursors after a successful credential match. The session
// keeps its own copy of the user so profile updates must sync it
// explicitly.
func (s *Session) Begin(user models.User) {
	u := user
	s.User = &u
	s.ActingRole = user.Role
}

// Clear resets every cursor; called on logout.
func (s *Session) Clear() {
	*s = Session{}
}

// RealRole is the authenticated role, regardless of the acting toggle.
// Mutation preconditions check this, never ActingRole.
func (s *Session) RealRole() models.UserRole {
	if s.User == nil {
		return ""
	}
	return s.User.Role
}

// SetActingRole switches the display role. Only a real teacher can toggle;
// for anyone else the call is a no-op. The toggle changes which views are
// exposed, not what the identity may do.
func (s *Session) SetActingRole(role models.UserRole) {
	if s.RealRole() != models.RoleTeacher {
		return
	}
	s.ActingRole = role
}

func (s *Session) SelectCourse(courseID string) {
	s.SelectedCourseID = courseID
}

// SyncUser refreshes the session copy when the Users collection entry for
// this identity was mutated.
func (s *Session) SyncUser(user models.User) {
	if s.User == nil || s.User.ID != user.ID {
		return
	}
	u := user
	s.User = &u
}
