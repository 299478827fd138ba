package dberrors

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil, false
	}
	return pgErr, true
}

// IsDuplicateConstraintError checks if the error is a PostgreSQL unique violation error
// for a specific constraint. An empty constraintName matches any unique violation.
func IsDuplicateConstraintError(err error, constraintName string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != pgerrcode.UniqueViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}

// IsForeignKeyViolation reports whether err is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == pgerrcode.ForeignKeyViolation
}

// IsCheckViolation reports whether err is a PostgreSQL check or not-null violation.
func IsCheckViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && (pgErr.Code == pgerrcode.CheckViolation || pgErr.Code == pgerrcode.NotNullViolation)
}

// IsConstraintViolation reports whether err is any integrity constraint violation
// (SQLSTATE class 23).
func IsConstraintViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgerrcode.IsIntegrityConstraintViolation(pgErr.Code)
}

// ConstraintName returns the name of the violated constraint, if any.
func ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}
