package models

// Submission is one student's turned-in work for an assignment, keyed by
// StudentID: at most one entry per student, and grading updates the entry
// in place.
type Submission struct {
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"` // denormalized display snapshot
	SubmittedAt Timestamp `json:"submittedAt"`
	Grade       *string   `json:"grade,omitempty"`
	Feedback    *string   `json:"feedback,omitempty"`
}

func (s *Submission) IsGraded() bool {
	return s.Grade != nil && *s.Grade != ""
}

type Assignment struct {
	ID          string       `json:"id"`
	CourseID    string       `json:"courseId"`
	Title       string       `json:"title" validate:"required"`
	Description string       `json:"description" validate:"required"`
	DueDate     Timestamp    `json:"dueDate"`
	Submissions []Submission `json:"submissions"`
}

// SubmissionFor returns the submission index for a student, or -1.
func (a *Assignment) SubmissionFor(studentID string) int {
	for i := range a.Submissions {
		if a.Submissions[i].StudentID == studentID {
			return i
		}
	}
	return -1
}

// AssignmentTemplate is a reusable seed for assignment creation; it belongs
// to no course.
type AssignmentTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}
