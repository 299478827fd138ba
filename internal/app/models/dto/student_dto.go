package dto

import (
	"github.com/yigit/researchdesk/internal/app/models"
)

// CreateStudentRequest represents graduate student creation data
type CreateStudentRequest struct {
	FirstName      string  `json:"first_name" binding:"required,notblank,max=50" example:"Grace"`
	LastName       string  `json:"last_name" binding:"required,notblank,max=50" example:"Hopper"`
	Email          string  `json:"email" binding:"required,email,max=100" example:"grace@x.edu"`
	EnrollmentDate *Date   `json:"enrollment_date" binding:"required" swaggertype:"string" example:"2024-09-01"`
	Type           string  `json:"type" binding:"required,oneof=PhD Masters" example:"PhD"`
	ImageURL       *string `json:"image_url" binding:"omitempty,max=200"`
	AdvisorID      *int64  `json:"advisor_id" binding:"omitempty,gt=0"`
	DepartmentID   *int64  `json:"department_id" binding:"omitempty,gt=0"`
	ResearchAreas  []int64 `json:"research_areas" binding:"omitempty,dive,gt=0"`
}

// ToModel converts the request into a student to insert
func (r CreateStudentRequest) ToModel() *models.GradStudent {
	s := &models.GradStudent{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Type:         models.StudentType(r.Type),
		ImageURL:     r.ImageURL,
		AdvisorID:    r.AdvisorID,
		DepartmentID: r.DepartmentID,
	}
	if r.EnrollmentDate != nil {
		s.EnrollmentDate = r.EnrollmentDate.Time
	}
	return s
}

// UpdateStudentRequest is a partial update; omitted fields are left unchanged
type UpdateStudentRequest struct {
	FirstName      Optional[string]  `json:"first_name" swaggertype:"string"`
	LastName       Optional[string]  `json:"last_name" swaggertype:"string"`
	Email          Optional[string]  `json:"email" swaggertype:"string"`
	EnrollmentDate Optional[Date]    `json:"enrollment_date" swaggertype:"string"`
	Type           Optional[string]  `json:"type" swaggertype:"string"`
	ImageURL       Optional[string]  `json:"image_url" swaggertype:"string"`
	AdvisorID      Optional[int64]   `json:"advisor_id" swaggertype:"integer"`
	DepartmentID   Optional[int64]   `json:"department_id" swaggertype:"integer"`
	ResearchAreas  Optional[[]int64] `json:"research_areas" swaggertype:"array,integer"`
}

// ToPatch converts the request into a student patch
func (r UpdateStudentRequest) ToPatch() (models.StudentPatch, error) {
	var p patchErrors
	patch := models.StudentPatch{
		FirstName:       nonEmpty(&p, "first_name", r.FirstName),
		LastName:        nonEmpty(&p, "last_name", r.LastName),
		Email:           email(&p, r.Email),
		EnrollmentDate:  requiredDate(&p, "enrollment_date", r.EnrollmentDate),
		ImageURL:        nullable(r.ImageURL),
		AdvisorID:       reference(&p, "advisor_id", r.AdvisorID),
		DepartmentID:    reference(&p, "department_id", r.DepartmentID),
		ResearchAreaIDs: areaIDs(&p, r.ResearchAreas),
	}

	if t := required(&p, "type", r.Type); t != nil {
		switch st := models.StudentType(*t); st {
		case models.StudentTypePhD, models.StudentTypeMasters:
			patch.Type = &st
		default:
			p.fail("type must be one of PhD, Masters")
		}
	}

	return patch, p.err
}

// StudentResponse represents a graduate student with advisor, department and areas resolved
type StudentResponse struct {
	StudentID      int64    `json:"student_id" example:"1"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	EnrollmentDate Date     `json:"enrollment_date" swaggertype:"string" example:"2024-09-01"`
	Type           string   `json:"type" example:"PhD"`
	ImageURL       *string  `json:"image_url"`
	AdvisorID      *int64   `json:"advisor_id"`
	DepartmentID   *int64   `json:"department_id"`
	Advisor        *string  `json:"advisor" example:"Ada Lovelace"`
	Department     *string  `json:"department"`
	ResearchAreas  []string `json:"research_areas"`
}

// NewStudentResponse converts a loaded student to its response shape
func NewStudentResponse(s *models.GradStudent) StudentResponse {
	return StudentResponse{
		StudentID:      s.ID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		EnrollmentDate: NewDate(s.EnrollmentDate),
		Type:           string(s.Type),
		ImageURL:       s.ImageURL,
		AdvisorID:      s.AdvisorID,
		DepartmentID:   s.DepartmentID,
		Advisor:        professorName(s.Advisor),
		Department:     departmentName(s.Department),
		ResearchAreas:  models.ResearchAreaNames(s.ResearchAreas),
	}
}

// NewStudentResponses converts a list of students
func NewStudentResponses(students []*models.GradStudent) []StudentResponse {
	out := make([]StudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewStudentResponse(s))
	}
	return out
}

// UnassignedStudentResponse is the shape of students listed by the assignment analytics
type UnassignedStudentResponse struct {
	StudentID      int64    `json:"student_id"`
	FirstName      string   `json:"first_name"`
	LastName       string   `json:"last_name"`
	Email          string   `json:"email"`
	EnrollmentDate Date     `json:"enrollment_date" swaggertype:"string"`
	Type           string   `json:"type"`
	Department     *string  `json:"department"`
	ResearchAreas  []string `json:"research_areas"`
}

// NewUnassignedStudentResponse converts a loaded student to the analytics shape
func NewUnassignedStudentResponse(s *models.GradStudent) UnassignedStudentResponse {
	return UnassignedStudentResponse{
		StudentID:      s.ID,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Email:          s.Email,
		EnrollmentDate: NewDate(s.EnrollmentDate),
		Type:           string(s.Type),
		Department:     departmentName(s.Department),
		ResearchAreas:  models.ResearchAreaNames(s.ResearchAreas),
	}
}

// NewUnassignedStudentResponses converts a list of students to the analytics shape
func NewUnassignedStudentResponses(students []*models.GradStudent) []UnassignedStudentResponse {
	out := make([]UnassignedStudentResponse, 0, len(students))
	for _, s := range students {
		out = append(out, NewUnassignedStudentResponse(s))
	}
	return out
}
