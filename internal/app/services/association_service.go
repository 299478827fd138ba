package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// AssociationService links professors and students to projects and publications
type AssociationService interface {
	// AddProfessorToProject upserts a professor's participation and returns the updated project
	AddProfessorToProject(ctx context.Context, projectID int64, req dto.AddProjectProfessorRequest) (*dto.ProjectResponse, error)

	// RemoveProfessorFromProject deletes a professor's participation
	RemoveProfessorFromProject(ctx context.Context, projectID, professorID int64) error

	// AddStudentToProject upserts a student's participation and returns the updated project
	AddStudentToProject(ctx context.Context, projectID int64, req dto.AddProjectStudentRequest) (*dto.ProjectResponse, error)

	// RemoveStudentFromProject deletes a student's participation
	RemoveStudentFromProject(ctx context.Context, projectID, studentID int64) error

	// AddAuthor credits a professor or a student and returns the updated publication
	AddAuthor(ctx context.Context, publicationID int64, req dto.AddAuthorRequest) (*dto.PublicationResponse, error)

	// RemoveProfessorAuthor removes a professor's authorship
	RemoveProfessorAuthor(ctx context.Context, publicationID, professorID int64) error

	// RemoveStudentAuthor removes a student's authorship
	RemoveStudentAuthor(ctx context.Context, publicationID, studentID int64) error
}

type associationServiceImpl struct {
	links        AssociationStore
	projects     ProjectStore
	publications PublicationStore
	professors   ProfessorStore
	students     StudentStore
}

// NewAssociationService creates a new association service
func NewAssociationService(links AssociationStore, projects ProjectStore, publications PublicationStore, professors ProfessorStore, students StudentStore) AssociationService {
	return &associationServiceImpl{
		links:        links,
		projects:     projects,
		publications: publications,
		professors:   professors,
		students:     students,
	}
}

func (s *associationServiceImpl) requireProject(ctx context.Context, id int64) error {
	exists, err := s.projects.ExistsByID(ctx, id)
	return requireExists("check project", exists, err, apperrors.ErrProjectNotFound)
}

func (s *associationServiceImpl) requirePublication(ctx context.Context, id int64) error {
	exists, err := s.publications.ExistsByID(ctx, id)
	return requireExists("check publication", exists, err, apperrors.ErrPublicationNotFound)
}

func (s *associationServiceImpl) requireProfessor(ctx context.Context, id int64) error {
	exists, err := s.professors.ExistsByID(ctx, id)
	return requireExists("check professor", exists, err, apperrors.ErrInvalidProfessorID)
}

func (s *associationServiceImpl) requireStudent(ctx context.Context, id int64) error {
	exists, err := s.students.ExistsByID(ctx, id)
	return requireExists("check student", exists, err, apperrors.ErrInvalidStudentID)
}

func (s *associationServiceImpl) project(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get project", err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *associationServiceImpl) publication(ctx context.Context, id int64) (*dto.PublicationResponse, error) {
	publication, err := s.publications.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get publication", err)
	}
	if publication == nil {
		return nil, apperrors.ErrPublicationNotFound
	}
	resp := dto.NewPublicationResponse(publication)
	return &resp, nil
}

// removed maps a delete outcome onto the association errors
func removed(op string, ok bool, err error) error {
	if err != nil {
		return storeError(op, err)
	}
	if !ok {
		return apperrors.ErrAssociationNotFound
	}
	return nil
}

func (s *associationServiceImpl) AddProfessorToProject(ctx context.Context, projectID int64, req dto.AddProjectProfessorRequest) (*dto.ProjectResponse, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.requireProfessor(ctx, req.ProfessorID); err != nil {
		return nil, err
	}

	member := models.ProjectMember{ProjectID: projectID, MemberID: req.ProfessorID, Role: req.Role}
	if err := s.links.AddProfessorToProject(ctx, member); err != nil {
		return nil, storeError("add professor to project", err)
	}

	logger.Info().Int64("project_id", projectID).Int64("professor_id", req.ProfessorID).Msg("Professor added to project")
	return s.project(ctx, projectID)
}

func (s *associationServiceImpl) RemoveProfessorFromProject(ctx context.Context, projectID, professorID int64) error {
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}
	ok, err := s.links.RemoveProfessorFromProject(ctx, projectID, professorID)
	return removed("remove professor from project", ok, err)
}

func (s *associationServiceImpl) AddStudentToProject(ctx context.Context, projectID int64, req dto.AddProjectStudentRequest) (*dto.ProjectResponse, error) {
	if err := s.requireProject(ctx, projectID); err != nil {
		return nil, err
	}
	if err := s.requireStudent(ctx, req.StudentID); err != nil {
		return nil, err
	}

	member := models.ProjectMember{ProjectID: projectID, MemberID: req.StudentID, Role: req.Role}
	if err := s.links.AddStudentToProject(ctx, member); err != nil {
		return nil, storeError("add student to project", err)
	}

	logger.Info().Int64("project_id", projectID).Int64("student_id", req.StudentID).Msg("Student added to project")
	return s.project(ctx, projectID)
}

func (s *associationServiceImpl) RemoveStudentFromProject(ctx context.Context, projectID, studentID int64) error {
	if err := s.requireProject(ctx, projectID); err != nil {
		return err
	}
	ok, err := s.links.RemoveStudentFromProject(ctx, projectID, studentID)
	return removed("remove student from project", ok, err)
}

func (s *associationServiceImpl) AddAuthor(ctx context.Context, publicationID int64, req dto.AddAuthorRequest) (*dto.PublicationResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.requirePublication(ctx, publicationID); err != nil {
		return nil, err
	}

	if req.ProfessorID != nil {
		if err := s.requireProfessor(ctx, *req.ProfessorID); err != nil {
			return nil, err
		}
		a := models.Authorship{PublicationID: publicationID, AuthorID: *req.ProfessorID, AuthorOrder: req.AuthorOrder}
		if err := s.links.AddProfessorAuthor(ctx, a); err != nil {
			return nil, storeError("add professor author", err)
		}
	} else {
		if err := s.requireStudent(ctx, *req.StudentID); err != nil {
			return nil, err
		}
		a := models.Authorship{PublicationID: publicationID, AuthorID: *req.StudentID, AuthorOrder: req.AuthorOrder}
		if err := s.links.AddStudentAuthor(ctx, a); err != nil {
			return nil, storeError("add student author", err)
		}
	}

	logger.Info().Int64("publication_id", publicationID).Int("author_order", req.AuthorOrder).Msg("Author added to publication")
	return s.publication(ctx, publicationID)
}

func (s *associationServiceImpl) RemoveProfessorAuthor(ctx context.Context, publicationID, professorID int64) error {
	if err := s.requirePublication(ctx, publicationID); err != nil {
		return err
	}
	ok, err := s.links.RemoveProfessorAuthor(ctx, publicationID, professorID)
	return removed("remove professor author", ok, err)
}

func (s *associationServiceImpl) RemoveStudentAuthor(ctx context.Context, publicationID, studentID int64) error {
	if err := s.requirePublication(ctx, publicationID); err != nil {
		return err
	}
	ok, err := s.links.RemoveStudentAuthor(ctx, publicationID, studentID)
	return removed("remove student author", ok, err)
}
