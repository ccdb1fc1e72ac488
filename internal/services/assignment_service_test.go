package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/models"
)

func TestAssignmentService_CreateAssignment(t *testing.T) {
	env := newTestEnv(t)
	sess := env.teacherSession(t)
	ctx := context.Background()
	sess.SelectCourse("course1")

	due := models.NewTimestamp(env.now.AddDate(0, 0, 14))
	assignment, err := env.manager.Assignments().CreateAssignment(ctx, sess, &AssignmentRequest{
		Title:       "Beam Deflection Report",
		Description: "Analyze the cantilever setup from lab 4.",
		DueDate:     due,
	})
	require.NoError(t, err)

	assert.Equal(t, "course1", assignment.CourseID)
	assert.Empty(t, assignment.Submissions)
	assert.Equal(t, due, assignment.DueDate)

	all := env.repo.Assignments().All(ctx)
	require.Len(t, all, 3)
	assert.Equal(t, assignment.ID, all[0].ID, "newest assignment comes first")
	assert.True(t, env.recorder.Changed(events.CollectionAssignments))
}

func TestAssignmentService_CreateAssignment_NeedsSelectedCourse(t *testing.T) {
	env := newTestEnv(t)
	sess := env.teacherSession(t)

	_, err := env.manager.Assignments().CreateAssignment(context.Background(), sess, &AssignmentRequest{
		Title:       "Orphan",
		Description: "No course selected.",
	})
	assert.ErrorIs(t, err, ErrNoCourseSelected)
}

func TestAssignmentService_SubmitAssignment(t *testing.T) {
	t.Run("first submission", func(t *testing.T) {
		env := newTestEnv(t)
		ctx := context.Background()

		// charlie.b has no submission on assign1 yet.
		sess := env.loginAs(t, "charlie.b", "password123")
		require.NoError(t, env.manager.Assignments().SubmitAssignment(ctx, sess, "assign1"))

		assignment, ok := env.repo.Assignments().ByID(ctx, "assign1")
		require.True(t, ok)
		idx := assignment.SubmissionFor("student3")
		require.GreaterOrEqual(t, idx, 0)
		sub := assignment.Submissions[idx]
		assert.Equal(t, "Charlie Brown", sub.StudentName)
		assert.Equal(t, models.NewTimestamp(env.now), sub.SubmittedAt)
		assert.False(t, sub.IsGraded())
	})

	t.Run("resubmission refreshes timestamp and keeps grade", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.studentSession(t) // bob.w already has a graded submission
		ctx := context.Background()

		require.NoError(t, env.manager.Assignments().SubmitAssignment(ctx, sess, "assign1"))

		assignment, _ := env.repo.Assignments().ByID(ctx, "assign1")
		require.Len(t, assignment.Submissions, 1)
		sub := assignment.Submissions[0]
		assert.Equal(t, models.NewTimestamp(env.now), sub.SubmittedAt)
		require.NotNil(t, sub.Grade)
		assert.Equal(t, "B+", *sub.Grade)
	})

	t.Run("unknown assignment", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.studentSession(t)

		err := env.manager.Assignments().SubmitAssignment(context.Background(), sess, "assign999")
		assert.ErrorIs(t, err, ErrAssignmentNotFound)
	})

	t.Run("teachers do not submit", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.teacherSession(t)

		err := env.manager.Assignments().SubmitAssignment(context.Background(), sess, "assign1")
		assert.True(t, IsPermission(err))
	})
}

func TestAssignmentService_GradeSubmission(t *testing.T) {
	t.Run("grades in place without touching SubmittedAt", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.teacherSession(t)
		ctx := context.Background()

		before, _ := env.repo.Assignments().ByID(ctx, "assign1")
		submittedAt := before.Submissions[0].SubmittedAt

		err := env.manager.Assignments().GradeSubmission(ctx, sess, "assign1", "student2", "A", "Much improved.")
		require.NoError(t, err)

		after, _ := env.repo.Assignments().ByID(ctx, "assign1")
		require.Len(t, after.Submissions, 1)
		sub := after.Submissions[0]
		require.NotNil(t, sub.Grade)
		assert.Equal(t, "A", *sub.Grade)
		assert.Equal(t, "Much improved.", *sub.Feedback)
		assert.Equal(t, submittedAt, sub.SubmittedAt)
		assert.True(t, env.recorder.Changed(events.CollectionAssignments))
	})

	t.Run("regrade overwrites the previous grade", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.teacherSession(t)
		ctx := context.Background()

		require.NoError(t, env.manager.Assignments().GradeSubmission(ctx, sess, "assign1", "student2", "A", "First pass."))
		require.NoError(t, env.manager.Assignments().GradeSubmission(ctx, sess, "assign1", "student2", "A+", "Second pass."))

		assignment, _ := env.repo.Assignments().ByID(ctx, "assign1")
		assert.Equal(t, "A+", *assignment.Submissions[0].Grade)
	})

	t.Run("no submission for the student", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.teacherSession(t)

		err := env.manager.Assignments().GradeSubmission(context.Background(), sess, "assign1", "student3", "C", "")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("students cannot grade", func(t *testing.T) {
		env := newTestEnv(t)
		sess := env.studentSession(t)

		err := env.manager.Assignments().GradeSubmission(context.Background(), sess, "assign1", "student2", "A", "")
		assert.True(t, IsPermission(err))
	})
}

func TestAssignmentService_SubmitUsesFrozenClock(t *testing.T) {
	env := newTestEnv(t)
	sess := env.loginAs(t, "charlie.b", "password123")
	ctx := context.Background()

	require.NoError(t, env.manager.Assignments().SubmitAssignment(ctx, sess, "assign1"))

	assignment, _ := env.repo.Assignments().ByID(ctx, "assign1")
	idx := assignment.SubmissionFor("student3")
	got := assignment.Submissions[idx].SubmittedAt.Time
	assert.True(t, got.Equal(env.now.Truncate(time.Millisecond)))
}
