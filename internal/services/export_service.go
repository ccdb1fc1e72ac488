package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"

	"github.com/xuri/excelize/v2"

	"github.com/edusphere/edusphere/internal/models"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/session"
	"github.com/edusphere/edusphere/internal/views"
)

// ExportService renders course data to files a teacher can hand off: the
// gradebook as a spreadsheet and the roster as CSV.
type ExportService interface {
	ExportGradebook(ctx context.Context, sess *session.Session, courseID string) ([]byte, error)
	ExportRosterCSV(ctx context.Context, sess *session.Session, courseID string) ([]byte, error)
}

type exportService struct {
	repo   repositories.Repository
	logger *slog.Logger
}

func NewExportService(repo repositories.Repository, logger *slog.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

// ExportGradebook writes one XLSX sheet per gradebook: a row per
// submission across every assignment in the course, with grade and
// feedback where issued.
func (s *exportService) ExportGradebook(ctx context.Context, sess *session.Session, courseID string) ([]byte, error) {
	if sess.RealRole() != models.RoleTeacher {
		return nil, NewPermissionError(sessionUserID(sess), "gradebook", "export", "teacher only")
	}
	course, ok := s.repo.Courses().ByID(ctx, courseID)
	if !ok {
		return nil, ErrCourseNotFound
	}

	assignments := views.AssignmentsInCourse(s.repo.Assignments().All(ctx), courseID)

	f := excelize.NewFile()
	sheetName := "Gradebook"

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{
		"Assignment", "Due Date", "Student ID", "Student Name",
		"Submitted At", "Grade", "Feedback",
	}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
	}

	rowIndex := 0
	for _, a := range assignments {
		for _, sub := range a.Submissions {
			row := []interface{}{
				a.Title,
				a.DueDate.Format(models.TimeLayout),
				sub.StudentID,
				sub.StudentName,
				sub.SubmittedAt.Format(models.TimeLayout),
			}
			if sub.Grade != nil {
				row = append(row, *sub.Grade)
			} else {
				row = append(row, "")
			}
			if sub.Feedback != nil {
				row = append(row, *sub.Feedback)
			} else {
				row = append(row, "")
			}
			for colIndex, value := range row {
				cell := fmt.Sprintf("%c%d", 'A'+colIndex, rowIndex+2)
				f.SetCellValue(sheetName, cell, value)
			}
			rowIndex++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}

	s.logger.Info("gradebook exported", "course_id", courseID, "code", course.Code, "rows", rowIndex)
	return buf.Bytes(), nil
}

// ExportRosterCSV lists every student enrolled in the course.
func (s *exportService) ExportRosterCSV(ctx context.Context, sess *session.Session, courseID string) ([]byte, error) {
	if sess.RealRole() != models.RoleTeacher {
		return nil, NewPermissionError(sessionUserID(sess), "roster", "export", "teacher only")
	}
	if _, ok := s.repo.Courses().ByID(ctx, courseID); !ok {
		return nil, ErrCourseNotFound
	}

	students := views.StudentsInCourse(s.repo.Users().All(ctx), courseID)

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	headers := []string{"Student ID", "Student Number", "Name", "Email", "Phone", "Student Role"}
	if err := writer.Write(headers); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, student := range students {
		role := string(models.StudentRegular)
		if student.StudentRole != nil {
			role = string(*student.StudentRole)
		}
		row := []string{
			student.ID,
			student.StudentNumber,
			student.Name,
			student.Email,
			student.Phone,
			role,
		}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	s.logger.Info("roster exported", "course_id", courseID, "students", len(students))
	return buf.Bytes(), nil
}
