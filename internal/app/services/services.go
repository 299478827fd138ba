package services

import (
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/app/repositories"
)

// Services holds all the service instances
type Services struct {
	ProfessorService    ProfessorService
	StudentService      StudentService
	ProjectService      ProjectService
	PublicationService  PublicationService
	DepartmentService   LookupService[dto.DepartmentResponse]
	JournalService      LookupService[dto.JournalResponse]
	ResearchAreaService LookupService[dto.ResearchAreaResponse]
	AssociationService  AssociationService
	AnalyticsService    AnalyticsService
}

// NewServices wires every service to its repositories
func NewServices(repos *repositories.Repositories) *Services {
	return &Services{
		ProfessorService:    NewProfessorService(repos.ProfessorRepository, repos.DepartmentRepository, repos.ResearchAreaRepository),
		StudentService:      NewStudentService(repos.StudentRepository, repos.ProfessorRepository, repos.DepartmentRepository, repos.ResearchAreaRepository),
		ProjectService:      NewProjectService(repos.ProjectRepository, repos.ProfessorRepository, repos.DepartmentRepository),
		PublicationService:  NewPublicationService(repos.PublicationRepository, repos.JournalRepository),
		DepartmentService:   NewDepartmentService(repos.DepartmentRepository),
		JournalService:      NewJournalService(repos.JournalRepository),
		ResearchAreaService: NewResearchAreaService(repos.ResearchAreaRepository),
		AssociationService:  NewAssociationService(repos.AssociationRepository, repos.ProjectRepository, repos.PublicationRepository, repos.ProfessorRepository, repos.StudentRepository),
		AnalyticsService:    NewAnalyticsService(repos.AnalyticsRepository),
	}
}
