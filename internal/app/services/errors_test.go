package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
)

func TestStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{
			name: "professor email",
			err:  &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "professor_email_key"},
			want: apperrors.ErrEmailAlreadyRegistered,
		},
		{
			name: "student email behind a wrapper",
			err:  fmt.Errorf("insert: %w", &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "gradstudent_email_key"}),
			want: apperrors.ErrEmailAlreadyRegistered,
		},
		{
			name: "lead professor foreign key",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "project_lead_professor_id_fkey"},
			want: apperrors.ErrInvalidLeadProfessorID,
		},
		{
			name: "professor foreign key",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "professor_project_professor_id_fkey"},
			want: apperrors.ErrInvalidProfessorID,
		},
		{
			name: "journal foreign key",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation, ConstraintName: "publication_journal_id_fkey"},
			want: apperrors.ErrInvalidJournalID,
		},
		{
			name: "unnamed foreign key",
			err:  &pgconn.PgError{Code: pgerrcode.ForeignKeyViolation},
			want: apperrors.ErrInvalidReference,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := storeError("op", tt.err); !errors.Is(got, tt.want) {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("check violation is a validation error", func(t *testing.T) {
		got := storeError("op", &pgconn.PgError{Code: pgerrcode.CheckViolation})
		if !errors.Is(got, apperrors.ErrValidationFailed) {
			t.Fatalf("want a validation error, got %v", got)
		}
	})

	t.Run("anything else is a store error", func(t *testing.T) {
		cause := errors.New("connection refused")
		got := storeError("list professors", cause)
		if !errors.Is(got, apperrors.ErrStore) {
			t.Fatalf("want a store error, got %v", got)
		}
		if !errors.Is(got, cause) {
			t.Errorf("want the cause preserved, got %v", got)
		}
	})
}

func TestRequireExists(t *testing.T) {
	if err := requireExists("op", true, nil, apperrors.ErrInvalidJournalID); err != nil {
		t.Errorf("want nil, got %v", err)
	}
	if err := requireExists("op", false, nil, apperrors.ErrInvalidJournalID); !errors.Is(err, apperrors.ErrInvalidJournalID) {
		t.Errorf("want invalid journal, got %v", err)
	}
	if err := requireExists("op", false, errors.New("boom"), apperrors.ErrInvalidJournalID); !errors.Is(err, apperrors.ErrStore) {
		t.Errorf("want a store error, got %v", err)
	}
}
