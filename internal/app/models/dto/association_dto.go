package dto

import "github.com/yigit/researchdesk/internal/pkg/apperrors"

// AddProjectProfessorRequest attaches a professor to a project
type AddProjectProfessorRequest struct {
	ProfessorID int64   `json:"professor_id" binding:"required,gt=0" example:"1"`
	Role        *string `json:"role" binding:"omitempty,max=50" example:"Co-PI"`
}

// AddProjectStudentRequest attaches a student to a project
type AddProjectStudentRequest struct {
	StudentID int64   `json:"student_id" binding:"required,gt=0" example:"1"`
	Role      *string `json:"role" binding:"omitempty,max=50" example:"Research Assistant"`
}

// AddAuthorRequest credits a professor or a student on a publication
type AddAuthorRequest struct {
	ProfessorID *int64 `json:"professor_id" binding:"omitempty,gt=0"`
	StudentID   *int64 `json:"student_id" binding:"omitempty,gt=0"`
	AuthorOrder int    `json:"author_order" binding:"required,gt=0" example:"1"`
}

// Validate checks that exactly one author kind is given
func (r AddAuthorRequest) Validate() error {
	if (r.ProfessorID == nil) == (r.StudentID == nil) {
		return apperrors.NewValidationError("Exactly one of professor_id or student_id is required")
	}
	return nil
}
