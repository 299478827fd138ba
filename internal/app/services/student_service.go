package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// StudentService defines the interface for graduate student service
type StudentService interface {
	CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error)
	GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error)
	GetAllStudents(ctx context.Context, page helpers.Page) ([]dto.StudentResponse, error)
	UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error)
	DeleteStudent(ctx context.Context, id int64) error
}

type studentServiceImpl struct {
	students   StudentStore
	professors ProfessorStore
	refs       references
}

// NewStudentService creates a new student service
func NewStudentService(students StudentStore, professors ProfessorStore, departments LookupStore[models.Department], researchAreas LookupStore[models.ResearchArea]) StudentService {
	return &studentServiceImpl{
		students:   students,
		professors: professors,
		refs:       references{departments: departments, researchAreas: researchAreas},
	}
}

// advisor checks an optional advisor reference
func (s *studentServiceImpl) advisor(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	exists, err := s.professors.ExistsByID(ctx, *id)
	return requireExists("check advisor", exists, err, apperrors.ErrInvalidAdvisorID)
}

func (s *studentServiceImpl) CreateStudent(ctx context.Context, req dto.CreateStudentRequest) (*dto.StudentResponse, error) {
	if err := emailTaken(ctx, s.students.GetIDByEmail, req.Email, 0); err != nil {
		return nil, err
	}
	if err := s.advisor(ctx, req.AdvisorID); err != nil {
		return nil, err
	}
	if err := s.refs.department(ctx, req.DepartmentID); err != nil {
		return nil, err
	}
	if err := s.refs.areas(ctx, req.ResearchAreas); err != nil {
		return nil, err
	}

	student, err := s.students.Create(ctx, req.ToModel(), req.ResearchAreas)
	if err != nil {
		return nil, storeError("create student", err)
	}

	logger.Info().Int64("student_id", student.ID).Msg("Student created")
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentServiceImpl) GetStudentByID(ctx context.Context, id int64) (*dto.StudentResponse, error) {
	student, err := s.students.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get student", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentServiceImpl) GetAllStudents(ctx context.Context, page helpers.Page) ([]dto.StudentResponse, error) {
	students, err := s.students.List(ctx, page)
	if err != nil {
		return nil, storeError("list students", err)
	}
	return dto.NewStudentResponses(students), nil
}

func (s *studentServiceImpl) UpdateStudent(ctx context.Context, id int64, req dto.UpdateStudentRequest) (*dto.StudentResponse, error) {
	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	exists, err := s.students.ExistsByID(ctx, id)
	if err := requireExists("check student", exists, err, apperrors.ErrStudentNotFound); err != nil {
		return nil, err
	}

	if patch.Email != nil {
		if err := emailTaken(ctx, s.students.GetIDByEmail, *patch.Email, id); err != nil {
			return nil, err
		}
	}
	if patch.AdvisorID.Set {
		if err := s.advisor(ctx, patch.AdvisorID.Value); err != nil {
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

	student, err := s.students.Update(ctx, id, patch)
	if err != nil {
		return nil, storeError("update student", err)
	}
	if student == nil {
		return nil, apperrors.ErrStudentNotFound
	}
	resp := dto.NewStudentResponse(student)
	return &resp, nil
}

func (s *studentServiceImpl) DeleteStudent(ctx context.Context, id int64) error {
	deleted, err := s.students.Delete(ctx, id)
	if err != nil {
		return storeError("delete student", err)
	}
	if !deleted {
		return apperrors.ErrStudentNotFound
	}
	logger.Info().Int64("student_id", id).Msg("Student deleted")
	return nil
}
