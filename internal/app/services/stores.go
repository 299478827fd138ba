package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// ProfessorStore is the persistence surface the professor service needs
type ProfessorStore interface {
	GetByID(ctx context.Context, id int64) (*models.Professor, error)
	List(ctx context.Context, page helpers.Page) ([]*models.Professor, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetIDByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, professor *models.Professor, researchAreaIDs []int64) (*models.Professor, error)
	Update(ctx context.Context, id int64, patch models.ProfessorPatch) (*models.Professor, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// StudentStore is the persistence surface the student service needs
type StudentStore interface {
	GetByID(ctx context.Context, id int64) (*models.GradStudent, error)
	List(ctx context.Context, page helpers.Page) ([]*models.GradStudent, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	GetIDByEmail(ctx context.Context, email string) (int64, error)
	Create(ctx context.Context, student *models.GradStudent, researchAreaIDs []int64) (*models.GradStudent, error)
	Update(ctx context.Context, id int64, patch models.StudentPatch) (*models.GradStudent, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// ProjectStore is the persistence surface the project service needs
type ProjectStore interface {
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	List(ctx context.Context, page helpers.Page) ([]*models.Project, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, project *models.Project) (*models.Project, error)
	Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// PublicationStore is the persistence surface the publication service needs
type PublicationStore interface {
	GetByID(ctx context.Context, id int64) (*models.Publication, error)
	List(ctx context.Context, page helpers.Page) ([]*models.Publication, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	Create(ctx context.Context, publication *models.Publication) (*models.Publication, error)
	Update(ctx context.Context, id int64, patch models.PublicationPatch) (*models.Publication, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// LookupStore is the persistence surface of a name-keyed lookup table
type LookupStore[T any] interface {
	Create(ctx context.Context, name string) (*T, error)
	GetByID(ctx context.Context, id int64) (*T, error)
	GetByName(ctx context.Context, name string) (*T, error)
	List(ctx context.Context, page helpers.Page) ([]*T, error)
	Exists(ctx context.Context, id int64) (bool, error)
	MissingIDs(ctx context.Context, ids []int64) ([]int64, error)
}

// AssociationStore manages project participation and authorship rows
type AssociationStore interface {
	AddProfessorToProject(ctx context.Context, m models.ProjectMember) error
	RemoveProfessorFromProject(ctx context.Context, projectID, professorID int64) (bool, error)
	AddStudentToProject(ctx context.Context, m models.ProjectMember) error
	RemoveStudentFromProject(ctx context.Context, projectID, studentID int64) (bool, error)
	AddProfessorAuthor(ctx context.Context, a models.Authorship) error
	RemoveProfessorAuthor(ctx context.Context, publicationID, professorID int64) (bool, error)
	AddStudentAuthor(ctx context.Context, a models.Authorship) error
	RemoveStudentAuthor(ctx context.Context, publicationID, studentID int64) (bool, error)
}

// AnalyticsStore runs the read-only aggregate queries
type AnalyticsStore interface {
	DepartmentAverageFunding(ctx context.Context) ([]models.DepartmentFunding, error)
	DepartmentsAboveAverageFunding(ctx context.Context) ([]models.DepartmentFunding, error)
	DepartmentTotalFunding(ctx context.Context) ([]models.DepartmentFunding, error)
	AveragePublicationsPerProfessor(ctx context.Context) (float64, error)
	SmallDepartments(ctx context.Context) ([]models.DepartmentProfessorCount, error)
	Directory(ctx context.Context) ([]models.DirectoryEntry, error)
	YearlyTrends(ctx context.Context) (models.YearlyTrends, error)
	DepartmentPublicationCounts(ctx context.Context) ([]models.DepartmentPublicationCount, error)
	SystemStats(ctx context.Context) (models.SystemStats, error)
	ProfessorPublicationCounts(ctx context.Context) ([]models.ProfessorPublicationCount, error)
	InactiveProfessors(ctx context.Context) ([]*models.Professor, error)
	ProfessorsWithoutPublications(ctx context.Context) ([]*models.Professor, error)
	UnassignedStudents(ctx context.Context) ([]*models.GradStudent, error)
	PublicationsByCitations(ctx context.Context, page helpers.Page) ([]*models.Publication, error)
}
