package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// ProfessorService defines the interface for professor service
type ProfessorService interface {
	// CreateProfessor creates a professor and links its research areas
	CreateProfessor(ctx context.Context, req dto.CreateProfessorRequest) (*dto.ProfessorResponse, error)

	// GetProfessorByID retrieves a professor by its ID
	GetProfessorByID(ctx context.Context, id int64) (*dto.ProfessorResponse, error)

	// GetAllProfessors lists professors in id order
	GetAllProfessors(ctx context.Context, page helpers.Page) ([]dto.ProfessorResponse, error)

	// UpdateProfessor applies a partial update
	UpdateProfessor(ctx context.Context, id int64, req dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error)

	// DeleteProfessor deletes a professor
	DeleteProfessor(ctx context.Context, id int64) error
}

// professorServiceImpl implements ProfessorService
type professorServiceImpl struct {
	professors ProfessorStore
	refs       references
}

// NewProfessorService creates a new professor service
func NewProfessorService(professors ProfessorStore, departments LookupStore[models.Department], researchAreas LookupStore[models.ResearchArea]) ProfessorService {
	return &professorServiceImpl{
		professors: professors,
		refs:       references{departments: departments, researchAreas: researchAreas},
	}
}

func (s *professorServiceImpl) CreateProfessor(ctx context.Context, req dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	if err := emailTaken(ctx, s.professors.GetIDByEmail, req.Email, 0); err != nil {
		return nil, err
	}
	if err := s.refs.department(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if err := s.refs.areas(ctx, req.ResearchAreas); err != nil {
		return nil, err
	}

	professor, err := s.professors.Create(ctx, req.ToModel(), req.ResearchAreas)
	if err != nil {
		return nil, storeError("create professor", err)
	}

	logger.Info().Int64("professor_id", professor.ID).Msg("Professor created")
	resp := dto.NewProfessorResponse(professor)
	return &resp, nil
}

func (s *professorServiceImpl) GetProfessorByID(ctx context.Context, id int64) (*dto.ProfessorResponse, error) {
	professor, err := s.professors.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get professor", err)
	}
	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}
	resp := dto.NewProfessorResponse(professor)
	return &resp, nil
}

func (s *professorServiceImpl) GetAllProfessors(ctx context.Context, page helpers.Page) ([]dto.ProfessorResponse, error) {
	professors, err := s.professors.List(ctx, page)
	if err != nil {
		return nil, storeError("list professors", err)
	}
	return dto.NewProfessorResponses(professors), nil
}

func (s *professorServiceImpl) UpdateProfessor(ctx context.Context, id int64, req dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error) {
	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	exists, err := s.professors.ExistsByID(ctx, id)
	if err := requireExists("check professor", exists, err, apperrors.ErrProfessorNotFound); err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if err := emailTaken(ctx, s.professors.GetIDByEmail, *patch.Email, id); err != nil {
			return nil, err
		}
	}
	if err := s.refs.departmentPatch(ctx, patch.DepartmentID); err != nil {
		return nil, err
	}
	if patch.ResearchAreaIDs != nil {
		if err := s.refs.areas(ctx, *patch.ResearchAreaIDs); err != nil {
			return nil, err
		}
	}

	professor, err := s.professors.Update(ctx, id, patch)
	if err != nil {
		return nil, storeError("update professor", err)
	}
	if professor == nil {
		return nil, apperrors.ErrProfessorNotFound
	}
	resp := dto.NewProfessorResponse(professor)
	return &resp, nil
}

func (s *professorServiceImpl) DeleteProfessor(ctx context.Context, id int64) error {
	deleted, err := s.professors.Delete(ctx, id)
	if err != nil {
		return storeError("delete professor", err)
	}
	if !deleted {
		return apperrors.ErrProfessorNotFound
	}
	logger.Info().Int64("professor_id", id).Msg("Professor deleted")
	return nil
}
