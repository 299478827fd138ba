package services

import (
	"context"
	"strings"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/dberrors"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// LookupService manages a name-keyed reference table such as departments or journals
type LookupService[R any] interface {
	// Create adds a new entry; names are unique
	Create(ctx context.Context, req dto.CreateLookupRequest) (*R, error)

	// GetByID retrieves an entry by its ID
	GetByID(ctx context.Context, id int64) (*R, error)

	// GetAll lists entries in id order
	GetAll(ctx context.Context, page helpers.Page) ([]R, error)
}

// lookupServiceImpl implements LookupService over a LookupStore
type lookupServiceImpl[T, R any] struct {
	store    LookupStore[T]
	convert  func(*T) R
	entity   string
	notFound error
}

// NewDepartmentService creates a new department service
func NewDepartmentService(store LookupStore[models.Department]) LookupService[dto.DepartmentResponse] {
	return &lookupServiceImpl[models.Department, dto.DepartmentResponse]{
		store:    store,
		convert:  dto.NewDepartmentResponse,
		entity:   "Department",
		notFound: apperrors.ErrDepartmentNotFound,
	}
}

// NewJournalService creates a new journal service
func NewJournalService(store LookupStore[models.Journal]) LookupService[dto.JournalResponse] {
	return &lookupServiceImpl[models.Journal, dto.JournalResponse]{
		store:    store,
		convert:  dto.NewJournalResponse,
		entity:   "Journal",
		notFound: apperrors.ErrJournalNotFound,
	}
}

// NewResearchAreaService creates a new research area service
func NewResearchAreaService(store LookupStore[models.ResearchArea]) LookupService[dto.ResearchAreaResponse] {
	return &lookupServiceImpl[models.ResearchArea, dto.ResearchAreaResponse]{
		store:    store,
		convert:  dto.NewResearchAreaResponse,
		entity:   "Research area",
		notFound: apperrors.ErrResearchAreaNotFound,
	}
}

func (s *lookupServiceImpl[T, R]) alreadyExists() error {
	return apperrors.NewValidationError(s.entity + " already exists")
}

func (s *lookupServiceImpl[T, R]) Create(ctx context.Context, req dto.CreateLookupRequest) (*R, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name must not be empty")
	}

	existing, err := s.store.GetByName(ctx, name)
	if err != nil {
		return nil, storeError("get "+strings.ToLower(s.entity)+" by name", err)
	}
	if existing != nil {
		return nil, s.alreadyExists()
	}

	created, err := s.store.Create(ctx, name)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "") {
			return nil, s.alreadyExists()
		}
		return nil, storeError("create "+strings.ToLower(s.entity), err)
	}

	logger.Info().Str("entity", s.entity).Str("name", name).Msg("Lookup entry created")
	resp := s.convert(created)
	return &resp, nil
}

func (s *lookupServiceImpl[T, R]) GetByID(ctx context.Context, id int64) (*R, error) {
	entry, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, storeError("get "+strings.ToLower(s.entity), err)
	}
	if entry == nil {
		return nil, s.notFound
	}
	resp := s.convert(entry)
	return &resp, nil
}

func (s *lookupServiceImpl[T, R]) GetAll(ctx context.Context, page helpers.Page) ([]R, error) {
	entries, err := s.store.List(ctx, page)
	if err != nil {
		return nil, storeError("list "+strings.ToLower(s.entity), err)
	}
	out := make([]R, 0, len(entries))
	for _, e := range entries {
		out = append(out, s.convert(e))
	}
	return out, nil
}
