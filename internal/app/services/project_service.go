package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// ProjectService defines the interface for research project service
type ProjectService interface {
	CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error)
	GetProjectByID(ctx context.Context, id int64) (*dto.ProjectResponse, error)
	GetAllProjects(ctx context.Context, page helpers.Page) ([]dto.ProjectResponse, error)
	UpdateProject(ctx context.Context, id int64, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error)
	DeleteProject(ctx context.Context, id int64) error
}

type projectServiceImpl struct {
	projects   ProjectStore
	professors ProfessorStore
	refs       references
}

// NewProjectService creates a new project service
func NewProjectService(projects ProjectStore, professors ProfessorStore, departments LookupStore[models.Department]) ProjectService {
	return &projectServiceImpl{
		projects:   projects,
		professors: professors,
		refs:       references{departments: departments},
	}
}

// leadProfessor checks an optional lead professor reference
func (s *projectServiceImpl) leadProfessor(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	exists, err := s.professors.ExistsByID(ctx, *id)
	return requireExists("check lead professor", exists, err, apperrors.ErrInvalidLeadProfessorID)
}

func (s *projectServiceImpl) CreateProject(ctx context.Context, req dto.CreateProjectRequest) (*dto.ProjectResponse, error) {
	if err := s.leadProfessor(ctx, req.LeadProfessorID); err != nil {
		return nil, err
	}
	if err := s.refs.department(ctx, req.DepartmentID); err != nil {
		return nil, err
	}

	project, err := s.projects.Create(ctx, req.ToModel())
	if err != nil {
		return nil, storeError("create project", err)
	}

	logger.Info().Int64("project_id", project.ID).Msg("Project created")
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *projectServiceImpl) GetProjectByID(ctx context.Context, id int64) (*dto.ProjectResponse, error) {
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

func (s *projectServiceImpl) GetAllProjects(ctx context.Context, page helpers.Page) ([]dto.ProjectResponse, error) {
	projects, err := s.projects.List(ctx, page)
	if err != nil {
		return nil, storeError("list projects", err)
	}
	return dto.NewProjectResponses(projects), nil
}

func (s *projectServiceImpl) UpdateProject(ctx context.Context, id int64, req dto.UpdateProjectRequest) (*dto.ProjectResponse, error) {
	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	exists, err := s.projects.ExistsByID(ctx, id)
	if err := requireExists("check project", exists, err, apperrors.ErrProjectNotFound); err != nil {
		return nil, err
	}

	if patch.LeadProfessorID.Set {
		if err := s.leadProfessor(ctx, patch.LeadProfessorID.Value); err != nil {
			return nil, err
		}
	}
	if err := s.refs.departmentPatch(ctx, patch.DepartmentID); err != nil {
		return nil, err
	}

	project, err := s.projects.Update(ctx, id, patch)
	if err != nil {
		return nil, storeError("update project", err)
	}
	if project == nil {
		return nil, apperrors.ErrProjectNotFound
	}
	resp := dto.NewProjectResponse(project)
	return &resp, nil
}

func (s *projectServiceImpl) DeleteProject(ctx context.Context, id int64) error {
	deleted, err := s.projects.Delete(ctx, id)
	if err != nil {
		return storeError("delete project", err)
	}
	if !deleted {
		return apperrors.ErrProjectNotFound
	}
	logger.Info().Int64("project_id", id).Msg("Project deleted")
	return nil
}
