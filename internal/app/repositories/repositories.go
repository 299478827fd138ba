package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/researchdesk/internal/app/models"
)

// Repositories holds all the repository instances
type Repositories struct {
	ProfessorRepository    *ProfessorRepository
	StudentRepository      *StudentRepository
	ProjectRepository      *ProjectRepository
	PublicationRepository  *PublicationRepository
	DepartmentRepository   *LookupRepository[models.Department]
	JournalRepository      *LookupRepository[models.Journal]
	ResearchAreaRepository *LookupRepository[models.ResearchArea]
	AssociationRepository  *AssociationRepository
	AnalyticsRepository    *AnalyticsRepository
}

// NewRepositories initializes all repositories over one pool
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		ProfessorRepository:    NewProfessorRepository(db),
		StudentRepository:      NewStudentRepository(db),
		ProjectRepository:      NewProjectRepository(db),
		PublicationRepository:  NewPublicationRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		JournalRepository:      NewJournalRepository(db),
		ResearchAreaRepository: NewResearchAreaRepository(db),
		AssociationRepository:  NewAssociationRepository(db),
		AnalyticsRepository:    NewAnalyticsRepository(db),
	}
}
