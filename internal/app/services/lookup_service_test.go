package services

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

func TestLookupCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("trims and stores the name", func(t *testing.T) {
		service := NewDepartmentService(newFakeDepartments())
		got, err := service.Create(ctx, dto.CreateLookupRequest{Name: "  CS "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Name != "CS" || got.DepartmentID != 1 {
			t.Errorf("unexpected department: %+v", got)
		}
	})

	tests := []struct {
		name    string
		store   *fakeLookup[models.Journal]
		req     string
		wantMsg string
	}{
		{"duplicate name", newFakeJournals("Nature"), "Nature", "Journal already exists"},
		{"blank name", newFakeJournals(), "   ", "name must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewJournalService(tt.store)
			_, err := service.Create(ctx, dto.CreateLookupRequest{Name: tt.req})
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Fatalf("want a validation error, got %v", err)
			}
			if msg := apperrors.Message(err); msg != tt.wantMsg {
				t.Errorf("want %q, got %q", tt.wantMsg, msg)
			}
		})
	}

	t.Run("unique violation from a concurrent insert", func(t *testing.T) {
		store := newFakeAreas()
		service := NewResearchAreaService(racingStore{store})
		_, err := service.Create(ctx, dto.CreateLookupRequest{Name: "AI"})
		if msg := apperrors.Message(err); msg != "Research area already exists" {
			t.Fatalf("want already exists, got %v", err)
		}
	})
}

// racingStore reports a unique violation on insert as if another writer won
type racingStore struct {
	*fakeLookup[models.ResearchArea]
}

func (racingStore) Create(context.Context, string) (*models.ResearchArea, error) {
	return nil, &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "researcharea_name_key"}
}

func TestLookupGet(t *testing.T) {
	ctx := context.Background()
	service := NewJournalService(newFakeJournals("Nature", "Science"))

	got, err := service.GetByID(ctx, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "Science" {
		t.Errorf("want Science, got %q", got.Name)
	}

	if _, err := service.GetByID(ctx, 3); !errors.Is(err, apperrors.ErrJournalNotFound) {
		t.Errorf("want journal not found, got %v", err)
	}

	all, err := service.GetAll(ctx, helpers.NewPage(0, 100))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 2 || all[0].Name != "Nature" {
		t.Errorf("unexpected listing: %+v", all)
	}
}

func TestLookupStoreFailure(t *testing.T) {
	store := newFakeDepartments()
	store.err = errors.New("connection reset")
	service := NewDepartmentService(store)

	_, err := service.GetAll(context.Background(), helpers.NewPage(0, 10))
	if !errors.Is(err, apperrors.ErrStore) {
		t.Fatalf("want a store error, got %v", err)
	}
	if msg := apperrors.Message(err); msg != "Internal server error" {
		t.Errorf("store details leaked into message %q", msg)
	}
}
