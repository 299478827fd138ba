package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// PublicationService defines the interface for publication service
type PublicationService interface {
	CreatePublication(ctx context.Context, req dto.CreatePublicationRequest) (*dto.PublicationResponse, error)
	GetPublicationByID(ctx context.Context, id int64) (*dto.PublicationResponse, error)
	GetAllPublications(ctx context.Context, page helpers.Page) ([]dto.PublicationResponse, error)
	UpdatePublication(ctx context.Context, id int64, req dto.UpdatePublicationRequest) (*dto.PublicationResponse, error)
	DeletePublication(ctx context.Context, id int64) error
}

type publicationServiceImpl struct {
	publications PublicationStore
	journals     LookupStore[models.Journal]
}

// NewPublicationService creates a new publication service
func NewPublicationService(publications PublicationStore, journals LookupStore[models.Journal]) PublicationService {
	return &publicationServiceImpl{
		publications: publications,
		journals:     journals,
	}
}

// journal checks an optional journal reference
func (s *publicationServiceImpl) journal(ctx context.Context, id *int64) error {
	if id == nil {
		return nil
	}
	exists, err := s.journals.Exists(ctx, *id)
	return requireExists("check journal", exists, err, apperrors.ErrInvalidJournalID)
}

func (s *publicationServiceImpl) CreatePublication(ctx context.Context, req dto.CreatePublicationRequest) (*dto.PublicationResponse, error) {
	if err := s.journal(ctx, req.JournalID); err != nil {
		return nil, err
	}

	publication, err := s.publications.Create(ctx, req.ToModel())
	if err != nil {
		return nil, storeError("create publication", err)
	}

	logger.Info().Int64("publication_id", publication.ID).Msg("Publication created")
	resp := dto.NewPublicationResponse(publication)
	return &resp, nil
}

func (s *publicationServiceImpl) GetPublicationByID(ctx context.Context, id int64) (*dto.PublicationResponse, error) {
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

func (s *publicationServiceImpl) GetAllPublications(ctx context.Context, page helpers.Page) ([]dto.PublicationResponse, error) {
	publications, err := s.publications.List(ctx, page)
	if err != nil {
		return nil, storeError("list publications", err)
	}
	return dto.NewPublicationResponses(publications), nil
}

func (s *publicationServiceImpl) UpdatePublication(ctx context.Context, id int64, req dto.UpdatePublicationRequest) (*dto.PublicationResponse, error) {
	patch, err := req.ToPatch()
	if err != nil {
		return nil, err
	}

	exists, err := s.publications.ExistsByID(ctx, id)
	if err := requireExists("check publication", exists, err, apperrors.ErrPublicationNotFound); err != nil {
		return nil, err
	}

	if patch.JournalID.Set {
		if err := s.journal(ctx, patch.JournalID.Value); err != nil {
			return nil, err
		}
	}

	publication, err := s.publications.Update(ctx, id, patch)
	if err != nil {
		return nil, storeError("update publication", err)
	}
	if publication == nil {
		return nil, apperrors.ErrPublicationNotFound
	}
	resp := dto.NewPublicationResponse(publication)
	return &resp, nil
}

func (s *publicationServiceImpl) DeletePublication(ctx context.Context, id int64) error {
	deleted, err := s.publications.Delete(ctx, id)
	if err != nil {
		return storeError("delete publication", err)
	}
	if !deleted {
		return apperrors.ErrPublicationNotFound
	}
	logger.Info().Int64("publication_id", id).Msg("Publication deleted")
	return nil
}
