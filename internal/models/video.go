package models

// VideoUpload carries the raw video payload inline; the dataset is
// classroom scale, so no blob store is involved.
type VideoUpload struct {
	ID          string    `json:"id"`
	StudentID   string    `json:"studentId"`
	StudentName string    `json:"studentName"`
	Title       string    `json:"title" validate:"required"`
	VideoData   []byte    `json:"videoData"`
	UploadedAt  Timestamp `json:"uploadedAt"`
}
