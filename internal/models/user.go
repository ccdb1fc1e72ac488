package models

type UserRole string

const (
	RoleStudent UserRole = "Student"
	RoleTeacher UserRole = "Teacher"
)

type StudentRole string

const (
	StudentRegular           StudentRole = "Regular"
	StudentAssistantGovernor StudentRole = "Assistant Governor"
	StudentGovernor          StudentRole = "Governor"
)

// User is a teacher or a student. Credentials are a plaintext local-only
// pair; there is no authentication authority beyond this record.
type User struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"` // display form: FirstName + " " + Surname
	Role          UserRole `json:"role" validate:"required,user_role"`
	Email         string   `json:"email" validate:"required,email"`
	StudentNumber string   `json:"studentNumber"`
	Phone         string   `json:"phone"`
	Surname       string   `json:"surname" validate:"required"`
	FirstName     string   `json:"firstName" validate:"required"`
	OtherNames    *string  `json:"otherNames,omitempty"`

	ProfilePictureURL *string `json:"profilePictureUrl,omitempty"`
	Bio               *string `json:"bio,omitempty"`

	// CourseIDs is the set of courses the user is enrolled in (students)
	// or teaches (teachers).
	CourseIDs []string `json:"courseIds"`

	Username string `json:"username"`
	Password string `json:"password"`

	StudentRole *StudentRole `json:"studentRole,omitempty" validate:"omitempty,student_role"`
}

func (u *User) EnrolledIn(courseID string) bool {
	for _, id := range u.CourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

// CanRegisterStudents reports whether this identity may register new
// students: any teacher, or a student holding a governor office. The check
// always runs against the real authenticated role, never the acting role.
func (u *User) CanRegisterStudents() bool {
	if u.Role == RoleTeacher {
		return true
	}
	if u.StudentRole == nil {
		return false
	}
	return *u.StudentRole == StudentGovernor || *u.StudentRole == StudentAssistantGovernor
}

// Credentials is the issued username/password pair surfaced once after
// registration.
type Credentials struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`
}
