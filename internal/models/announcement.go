package models

// Announcement is posted by a teacher to one course. The collection is kept
// newest first; announcements are never edited or deleted.
type Announcement struct {
	ID        string    `json:"id"`
	CourseID  string    `json:"courseId"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	Author    string    `json:"author"` // name snapshot at posting time
	CreatedAt Timestamp `json:"createdAt"`
}
