package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/edusphere/internal/events"
)

func TestCourseService_CreateCourse(t *testing.T) {
	tests := []struct {
		name    string
		reqName string
		reqCode string
		wantErr error
	}{
		{
			name:    "new name and code",
			reqName: "Thermodynamics",
			reqCode: "MEE-301",
		},
		{
			name:    "whitespace is trimmed before checks",
			reqName: "  Thermodynamics  ",
			reqCode: " MEE-301 ",
		},
		{
			name:    "duplicate name differing only in case",
			reqName: "strength of materials",
			reqCode: "MEE-301",
			wantErr: ErrCourseNameTaken,
		},
		{
			name:    "duplicate code differing only in case",
			reqName: "Thermodynamics",
			reqCode: "cve-305",
			wantErr: ErrCourseCodeTaken,
		},
		{
			name:    "name conflict reported before code conflict",
			reqName: "Calculus I",
			reqCode: "BIO-101",
			wantErr: ErrCourseNameTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			sess := env.teacherSession(t)
			ctx := context.Background()

			course, err := env.manager.Courses().CreateCourse(ctx, sess, &CourseRequest{
				Name: tt.reqName,
				Code: tt.reqCode,
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, env.repo.Courses().All(ctx), 3)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Thermodynamics", course.Name)
			assert.Equal(t, "MEE-301", course.Code)
			assert.Equal(t, "teacher1", course.TeacherID)
			assert.Len(t, env.repo.Courses().All(ctx), 4)
			assert.True(t, env.recorder.Changed(events.CollectionCourses))
		})
	}
}

func TestCourseService_CreateCourse_EnrollsOwner(t *testing.T) {
	env := newTestEnv(t)
	sess := env.teacherSession(t)
	ctx := context.Background()

	course, err := env.manager.Courses().CreateCourse(ctx, sess, &CourseRequest{
		Name: "Fluid Mechanics",
		Code: "CVE-311",
	})
	require.NoError(t, err)

	teacher, ok := env.repo.Users().ByID(ctx, "teacher1")
	require.True(t, ok)
	assert.Contains(t, teacher.CourseIDs, course.ID)
	// The session copy follows the collection.
	assert.Contains(t, sess.User.CourseIDs, course.ID)
}

func TestCourseService_CreateCourse_StudentForbidden(t *testing.T) {
	env := newTestEnv(t)
	sess := env.studentSession(t)

	_, err := env.manager.Courses().CreateCourse(context.Background(), sess, &CourseRequest{
		Name: "Rogue Course",
		Code: "X-001",
	})

	assert.True(t, IsPermission(err))
}

func TestCourseService_UpdateCourse(t *testing.T) {
	t.Run("rename keeps own name valid", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.teacherSession(t)
		ctx := context.Background()

		// Re-saving the same name must not collide with itself.
		err := env.manager.Courses().UpdateCourse(ctx, sess, "course1", &CourseRequest{
			Name: "Strength of Materials",
			Code: "CVE-306",
		})
		require.NoError(t, err)

		course, ok := env.repo.Courses().ByID(ctx, "course1")
		require.True(t, ok)
		assert.Equal(t, "CVE-306", course.Code)
	})

	t.Run("rename onto another course's name fails", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.teacherSession(t)

		err := env.manager.Courses().UpdateCourse(context.Background(), sess, "course1", &CourseRequest{
			Name: "CALCULUS I",
			Code: "CVE-305",
		})
		assert.ErrorIs(t, err, ErrCourseNameTaken)
	})

	t.Run("unknown course", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.teacherSession(t)

		err := env.manager.Courses().UpdateCourse(context.Background(), sess, "course999", &CourseRequest{
			Name: "Anything",
			Code: "ANY-100",
		})
		assert.ErrorIs(t, err, ErrCourseNotFound)
	})
}

func TestCourseService_DeleteCourse(t *testing.T) {
	env := newTestEnv(t)
	sess := env.teacherSession(t)
	ctx := context.Background()
	svc := env.manager.Courses()

	sess.SelectCourse("course1")
	svc.RequestCourseDeletion(sess, "course1")
	require.NoError(t, svc.ConfirmCourseDeletion(ctx, sess))

	// Course is gone and every enrollment with it.
	_, ok := env.repo.Courses().ByID(ctx, "course1")
	assert.False(t, ok)
	for _, u := range env.repo.Users().All(ctx) {
		assert.NotContains(t, u.CourseIDs, "course1", "user %s still enrolled", u.ID)
	}

	// Assignments and announcements keep their rows; the course id now
	// dangles and course-scoped views just stop returning them.
	_, ok = env.repo.Assignments().ByID(ctx, "assign1")
	assert.True(t, ok)
	assert.Len(t, env.repo.Announcements().All(ctx), 2)

	assert.Empty(t, sess.SelectedCourseID)
	assert.Empty(t, sess.View.PendingCourseDeletion)
	assert.True(t, env.recorder.Changed(events.CollectionCourses))
	assert.True(t, env.recorder.Changed(events.CollectionUsers))
}

func TestCourseService_DeleteCourse_CancelKeepsEverything(t *testing.T) {
	env := newTestEnv(t)
	sess := env.teacherSession(t)
	ctx := context.Background()
	svc := env.manager.Courses()

	svc.RequestCourseDeletion(sess, "course1")
	svc.CancelCourseDeletion(sess)

	assert.Empty(t, sess.View.PendingCourseDeletion)
	assert.Len(t, env.repo.Courses().All(ctx), 3)
	assert.ErrorIs(t, svc.ConfirmCourseDeletion(ctx, sess), ErrNoCourseSelected)
}
