package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/yigit/researchdesk/internal/pkg/apperrors"
)

func TestCustomErrorClassification(t *testing.T) {
	type Then struct {
		notFound   bool
		validation bool
		store      bool
		message    string
	}

	theory := func(err error, then Then) func(t *testing.T) {
		return func(t *testing.T) {
			if got := errors.Is(err, apperrors.ErrResourceNotFound); got != then.notFound {
				t.Errorf("not found: want %v, got %v", then.notFound, got)
			}
			if got := errors.Is(err, apperrors.ErrValidationFailed); got != then.validation {
				t.Errorf("validation: want %v, got %v", then.validation, got)
			}
			if got := errors.Is(err, apperrors.ErrStore); got != then.store {
				t.Errorf("store: want %v, got %v", then.store, got)
			}
			if got := apperrors.Message(err); got != then.message {
				t.Errorf("message: want %q, got %q", then.message, got)
			}
		}
	}

	t.Run("entity not found", theory(
		apperrors.ErrProfessorNotFound,
		Then{notFound: true, message: "Professor not found"},
	))

	t.Run("wrapped not found keeps its message", theory(
		fmt.Errorf("lookup: %w", apperrors.ErrPublicationNotFound),
		Then{notFound: true, message: "Publication not found"},
	))

	t.Run("validation", theory(
		apperrors.ErrInvalidDepartmentID,
		Then{validation: true, message: "Invalid department ID"},
	))

	t.Run("store error hides the cause", theory(
		apperrors.NewStoreError(errors.New("connection refused")),
		Then{store: true, message: "Internal server error"},
	))

	t.Run("plain error", theory(
		errors.New("boom"),
		Then{message: "boom"},
	))
}

func TestIs(t *testing.T) {
	err := apperrors.ErrEmailAlreadyRegistered
	if !apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrValidationFailed) {
		t.Fatal("expected match against the second target")
	}
	if apperrors.Is(err, apperrors.ErrResourceNotFound, apperrors.ErrStore) {
		t.Fatal("unexpected match")
	}
}

func TestStoreErrorKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := apperrors.NewStoreError(cause)
	if !errors.Is(err, cause) {
		t.Fatal("store error should unwrap to its cause")
	}
}
