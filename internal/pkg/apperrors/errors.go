package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrResourceNotFound      = errors.New("resource not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")

	// Persistence errors
	ErrStore = errors.New("store error")
)

// Entity errors
var (
	ErrProfessorNotFound    = NewResourceNotFoundError("Professor not found")
	ErrStudentNotFound      = NewResourceNotFoundError("Student not found")
	ErrProjectNotFound      = NewResourceNotFoundError("Project not found")
	ErrPublicationNotFound  = NewResourceNotFoundError("Publication not found")
	ErrDepartmentNotFound   = NewResourceNotFoundError("Department not found")
	ErrJournalNotFound      = NewResourceNotFoundError("Journal not found")
	ErrResearchAreaNotFound = NewResourceNotFoundError("Research area not found")
	ErrAssociationNotFound  = NewResourceNotFoundError("Association not found")
)

// Reference and uniqueness errors surfaced as validation failures
var (
	ErrEmailAlreadyRegistered = NewValidationError("Email already registered")
	ErrInvalidDepartmentID    = NewValidationError("Invalid department ID")
	ErrInvalidAdvisorID       = NewValidationError("Invalid advisor ID")
	ErrInvalidLeadProfessorID = NewValidationError("Invalid lead professor ID")
	ErrInvalidJournalID       = NewValidationError("Invalid journal ID")
	ErrInvalidProfessorID     = NewValidationError("Invalid professor ID")
	ErrInvalidStudentID       = NewValidationError("Invalid student ID")
	ErrInvalidResearchAreaID  = NewValidationError("Invalid research area ID")
	ErrInvalidReference       = NewValidationError("Invalid reference")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewValidationError creates a new custom error for failed validation with a message
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// NewStoreError wraps a persistence failure so that it can be reported as a store error
func NewStoreError(cause error) error {
	return &CustomError{
		Err:     errors.Join(ErrStore, cause),
		Message: "Internal server error",
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// Message returns the user facing message carried by err, falling back to err.Error()
func Message(err error) string {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Error()
	}
	return err.Error()
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
	Details map[string]interface{}
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError with underlying error
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithDetails adds context details to the error
func (e *CustomError) WithDetails(details map[string]interface{}) *CustomError {
	e.Details = details
	return e
}
