// Package views computes read-only projections of the collections. Every
// function here is pure: given the same inputs it returns the same output
// and mutates nothing, so a rendering layer may call them freely on each
// change notification.
package views

import (
	"sort"
	"time"

	"github.com/edusphere/edusphere/internal/models"
)

// StudentsInCourse filters users to enrolled students of one course.
func StudentsInCourse(users []models.User, courseID string) []models.User {
	if courseID == "" {
		return nil
	}
	var out []models.User
	for _, u := range users {
		if u.Role == models.RoleStudent && u.EnrolledIn(courseID) {
			out = append(out, u)
		}
	}
	return out
}

func AssignmentsInCourse(assignments []models.Assignment, courseID string) []models.Assignment {
	if courseID == "" {
		return nil
	}
	var out []models.Assignment
	for _, a := range assignments {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}

func QuizzesInCourse(quizzes []models.Quiz, courseID string) []models.Quiz {
	if courseID == "" {
		return nil
	}
	var out []models.Quiz
	for _, q := range quizzes {
		if q.CourseID == courseID {
			out = append(out, q)
		}
	}
	return out
}

func AnnouncementsInCourse(announcements []models.Announcement, courseID string) []models.Announcement {
	if courseID == "" {
		return nil
	}
	var out []models.Announcement
	for _, a := range announcements {
		if a.CourseID == courseID {
			out = append(out, a)
		}
	}
	return out
}

// CoursesForUser is the course-picker list: only courses the user is
// enrolled in or teaches.
func CoursesForUser(courses []models.Course, user models.User) []models.Course {
	var out []models.Course
	for _, c := range courses {
		if user.EnrolledIn(c.ID) {
			out = append(out, c)
		}
	}
	return out
}

// CoursesOwnedBy lists the courses a teacher manages.
func CoursesOwnedBy(courses []models.Course, teacherID string) []models.Course {
	var out []models.Course
	for _, c := range courses {
		if c.TeacherID == teacherID {
			out = append(out, c)
		}
	}
	return out
}

// Dashboard stat card titles. Tests and consumers key off these.
const (
	StatPendingAssignments = "Pending Assignments"
	StatActiveQuizzes      = "Active Quizzes"
	StatTotalStudents      = "Total Students"
	StatTotalAssignments   = "Total Assignments"
	StatSubmissionsToGrade = "Submissions to Grade"
)

type DashboardStat struct {
	Title string
	Value int
}

// DashboardStats aggregates the stat cards for the acting role. The
// student view counts work outstanding for this user; the teacher view
// counts the course-scoped totals and the grading backlog.
func DashboardStats(actingRole models.UserRole, user models.User, students []models.User, assignments []models.Assignment, quizzes []models.Quiz, now time.Time) []DashboardStat {
	if actingRole == models.RoleStudent {
		pending := 0
		for _, a := range assignments {
			if a.SubmissionFor(user.ID) < 0 {
				pending++
			}
		}
		active := 0
		for _, q := range quizzes {
			if q.ActiveAt(now) {
				active++
			}
		}
		return []DashboardStat{
			{Title: StatPendingAssignments, Value: pending},
			{Title: StatActiveQuizzes, Value: active},
		}
	}

	ungraded := 0
	for _, a := range assignments {
		for i := range a.Submissions {
			if !a.Submissions[i].IsGraded() {
				ungraded++
			}
		}
	}
	return []DashboardStat{
		{Title: StatTotalStudents, Value: len(students)},
		{Title: StatTotalAssignments, Value: len(assignments)},
		{Title: StatSubmissionsToGrade, Value: ungraded},
	}
}

// UpcomingDeadlines returns assignments still due after now, soonest
// first, truncated to limit.
func UpcomingDeadlines(assignments []models.Assignment, now time.Time, limit int) []models.Assignment {
	var out []models.Assignment
	for _, a := range assignments {
		if a.DueDate.After(now) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DueDate.Time.Before(out[j].DueDate.Time)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
