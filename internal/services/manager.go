package services

import (
	"log/slog"
	"time"

	"github.com/edusphere/edusphere/internal/events"
	"github.com/edusphere/edusphere/internal/repositories"
	"github.com/edusphere/edusphere/internal/validator"
)

// ServiceManager bundles every service over one repository, publisher, and
// clock. Construct it once at startup and hand it to whatever drives the
// application.
type ServiceManager interface {
	Auth() AuthService
	Users() UserService
	Courses() CourseService
	Assignments() AssignmentService
	Quizzes() QuizService
	Announcements() AnnouncementService
	Templates() TemplateService
	Videos() VideoService
	Settings() SettingsService
	Export() ExportService
}

type serviceManager struct {
	auth          AuthService
	users         UserService
	courses       CourseService
	assignments   AssignmentService
	quizzes       QuizService
	announcements AnnouncementService
	templates     TemplateService
	videos        VideoService
	settings      SettingsService
	export        ExportService
}

func NewServiceManager(
	repo repositories.Repository,
	logger *slog.Logger,
	v *validator.Validator,
	publisher events.Publisher,
	now func() time.Time,
) ServiceManager {
	return &serviceManager{
		auth:          NewAuthService(repo, logger),
		users:         NewUserService(repo, logger, v, publisher),
		courses:       NewCourseService(repo, logger, v, publisher),
		assignments:   NewAssignmentService(repo, logger, v, publisher, now),
		quizzes:       NewQuizService(repo, logger, v, publisher),
		announcements: NewAnnouncementService(repo, logger, v, publisher, now),
		templates:     NewTemplateService(repo, logger, v, publisher),
		videos:        NewVideoService(repo, logger, v, publisher, now),
		settings:      NewSettingsService(repo, logger, publisher),
		export:        NewExportService(repo, logger),
	}
}

func (m *serviceManager) Auth() AuthService                  { return m.auth }
func (m *serviceManager) Users() UserService                 { return m.users }
func (m *serviceManager) Courses() CourseService             { return m.courses }
func (m *serviceManager) Assignments() AssignmentService     { return m.assignments }
func (m *serviceManager) Quizzes() QuizService               { return m.quizzes }
func (m *serviceManager) Announcements() AnnouncementService { return m.announcements }
func (m *serviceManager) Templates() TemplateService         { return m.templates }
func (m *serviceManager) Videos() VideoService               { return m.videos }
func (m *serviceManager) Settings() SettingsService          { return m.settings }
func (m *serviceManager) Export() ExportService              { return m.export }
