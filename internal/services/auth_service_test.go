package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/session"
)

func TestAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		username string
		password string
		wantErr  error
		wantID   string
	}{
		{
			name:     "teacher with correct credentials",
			username: "Adekunle",
			password: "Opemipo@1",
			wantID:   "teacher1",
		},
		{
			name:     "student with correct credentials",
			username: "alice.j",
			password: "password123",
			wantID:   "student1",
		},
		{
			name:     "unknown username",
			username: "nobody",
			password: "password123",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			username: "alice.j",
			password: "wrong",
			wantErr:  ErrInvalidCredentials,
		},
		{
			name:     "username is case sensitive",
			username: "adekunle",
			password: "Opemipo@1",
			wantErr:  ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			sess := session.New()

			err := env.manager.Auth().Login(context.Background(), sess, tt.username, tt.password)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.False(t, sess.Authenticated())
				return
			}
			require.NoError(t, err)
			require.True(t, sess.Authenticated())
			assert.Equal(t, tt.wantID, sess.User.ID)
			assert.Equal(t, sess.User.Role, sess.ActingRole)
		})
	}
}

func TestAuthService_LoginErrorIsSymmetric(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	unknownUser := env.manager.Auth().Login(ctx, session.New(), "ghost", "password123")
	wrongPassword := env.manager.Auth().Login(ctx, session.New(), "alice.j", "nope")

	require.Error(t, unknownUser)
	require.Error(t, wrongPassword)
	assert.Equal(t, unknownUser.Error(), wrongPassword.Error())
}

func TestAuthService_Logout(t *testing.T) {
	env := newTestEnv(t)
	sess := env.teacherSession(t)
	sess.SelectCourse("course1")
	sess.View.ManageCoursesOpen = true

	env.manager.Auth().Logout(sess)

	assert.False(t, sess.Authenticated())
	assert.Empty(t, sess.SelectedCourseID)
	assert.Equal(t, models.UserRole(""), sess.ActingRole)
	assert.False(t, sess.View.ManageCoursesOpen)
}
