package models

// Course is owned by a single teacher. Name and Code are each
// case-insensitively unique across the whole collection; the course service
// enforces this on create and update.
type Course struct {
	ID        string `json:"id"`
	Name      string `json:"name" validate:"required"`
	Code      string `json:"code" validate:"required"`
	TeacherID string `json:"teacherId"`
}
