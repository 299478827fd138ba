package services

import (
	"fmt"
	"strings"

	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/dberrors"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// foreignKeyErrors maps a referencing column to its validation error.
// lead_professor_id precedes professor_id so that the longer name matches first.
var foreignKeyErrors = []struct {
	column string
	err    error
}{
	{"lead_professor_id", apperrors.ErrInvalidLeadProfessorID},
	{"advisor_id", apperrors.ErrInvalidAdvisorID},
	{"department_id", apperrors.ErrInvalidDepartmentID},
	{"journal_id", apperrors.ErrInvalidJournalID},
	{"area_id", apperrors.ErrInvalidResearchAreaID},
	{"professor_id", apperrors.ErrInvalidProfessorID},
	{"student_id", apperrors.ErrInvalidStudentID},
}

// storeError classifies a repository failure. Constraint violations that slipped past
// the pre-checks become validation errors; anything else is a store error.
func storeError(op string, err error) error {
	switch {
	case dberrors.IsDuplicateConstraintError(err, "professor_email_key"),
		dberrors.IsDuplicateConstraintError(err, "gradstudent_email_key"):
		return apperrors.ErrEmailAlreadyRegistered
	case dberrors.IsDuplicateConstraintError(err, ""):
		return apperrors.NewValidationError("Record already exists")
	case dberrors.IsForeignKeyViolation(err):
		name := dberrors.ConstraintName(err)
		for _, fk := range foreignKeyErrors {
			if strings.Contains(name, fk.column) {
				return fk.err
			}
		}
		return apperrors.ErrInvalidReference
	case dberrors.IsCheckViolation(err):
		return apperrors.NewValidationError("Invalid value")
	}

	logger.Error().Err(err).Str("operation", op).Msg("Store operation failed")
	return apperrors.NewStoreError(fmt.Errorf("%s: %w", op, err))
}

// requireExists turns a missing reference into invalid, and a failed lookup into a store error
func requireExists(op string, exists bool, err error, invalid error) error {
	if err != nil {
		return storeError(op, err)
	}
	if !exists {
		return invalid
	}
	return nil
}
