package dto

import "github.com/yigit/researchdesk/internal/app/models"

// CreateProfessorRequest represents professor creation data
type CreateProfessorRequest struct {
	FirstName     string  `json:"first_name" binding:"required,notblank,max=50" example:"Ada"`
	LastName      string  `json:"last_name" binding:"required,notblank,max=50" example:"Lovelace"`
	Email         string  `json:"email" binding:"required,email,max=100" example:"ada@x.edu"`
	Phone         *string `json:"phone" binding:"omitempty,max=20"`
	Title         *string `json:"title" binding:"omitempty,max=50" example:"Professor"`
	Office        *string `json:"office" binding:"omitempty,max=50"`
	ImageURL      *string `json:"image_url" binding:"omitempty,max=200"`
	DepartmentID  *int64  `json:"department_id" binding:"omitempty,gt=0" example:"1"`
	ResearchAreas []int64 `json:"research_areas" binding:"omitempty,dive,gt=0"`
}

// ToModel converts the request into a professor to insert
func (r CreateProfessorRequest) ToModel() *models.Professor {
	return &models.Professor{
		FirstName:    r.FirstName,
		LastName:     r.LastName,
		Email:        r.Email,
		Phone:        r.Phone,
		Title:        r.Title,
		Office:       r.Office,
		ImageURL:     r.ImageURL,
		DepartmentID: r.DepartmentID,
	}
}

// UpdateProfessorRequest is a partial update; omitted fields are left unchanged
type UpdateProfessorRequest struct {
	FirstName     Optional[string]  `json:"first_name" swaggertype:"string"`
	LastName      Optional[string]  `json:"last_name" swaggertype:"string"`
	Email         Optional[string]  `json:"email" swaggertype:"string"`
	Phone         Optional[string]  `json:"phone" swaggertype:"string"`
	Title         Optional[string]  `json:"title" swaggertype:"string"`
	Office        Optional[string]  `json:"office" swaggertype:"string"`
	ImageURL      Optional[string]  `json:"image_url" swaggertype:"string"`
	DepartmentID  Optional[int64]   `json:"department_id" swaggertype:"integer"`
	ResearchAreas Optional[[]int64] `json:"research_areas" swaggertype:"array,integer"`
}

// ToPatch converts the request into a professor patch
func (r UpdateProfessorRequest) ToPatch() (models.ProfessorPatch, error) {
	var p patchErrors
	patch := models.ProfessorPatch{
		FirstName:       nonEmpty(&p, "first_name", r.FirstName),
		LastName:        nonEmpty(&p, "last_name", r.LastName),
		Email:           email(&p, r.Email),
		Phone:           nullable(r.Phone),
		Title:           nullable(r.Title),
		Office:          nullable(r.Office),
		ImageURL:        nullable(r.ImageURL),
		DepartmentID:    reference(&p, "department_id", r.DepartmentID),
		ResearchAreaIDs: areaIDs(&p, r.ResearchAreas),
	}
	return patch, p.err
}

// ProfessorResponse represents a professor with its department and research areas resolved
type ProfessorResponse struct {
	ProfessorID   int64    `json:"professor_id" example:"1"`
	FirstName     string   `json:"first_name" example:"Ada"`
	LastName      string   `json:"last_name" example:"Lovelace"`
	Email         string   `json:"email" example:"ada@x.edu"`
	Phone         *string  `json:"phone"`
	Title         *string  `json:"title"`
	Office        *string  `json:"office"`
	ImageURL      *string  `json:"image_url"`
	DepartmentID  *int64   `json:"department_id"`
	Department    *string  `json:"department" example:"CS"`
	ResearchAreas []string `json:"research_areas"`
}

// NewProfessorResponse converts a loaded professor to its response shape
func NewProfessorResponse(p *models.Professor) ProfessorResponse {
	return ProfessorResponse{
		ProfessorID:   p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Phone:         p.Phone,
		Title:         p.Title,
		Office:        p.Office,
		ImageURL:      p.ImageURL,
		DepartmentID:  p.DepartmentID,
		Department:    departmentName(p.Department),
		ResearchAreas: models.ResearchAreaNames(p.ResearchAreas),
	}
}

// NewProfessorResponses converts a list of professors
func NewProfessorResponses(professors []*models.Professor) []ProfessorResponse {
	out := make([]ProfessorResponse, 0, len(professors))
	for _, p := range professors {
		out = append(out, NewProfessorResponse(p))
	}
	return out
}

// InactiveProfessorResponse is the shape of professors listed by the activity analytics
type InactiveProfessorResponse struct {
	ProfessorID   int64    `json:"professor_id"`
	FirstName     string   `json:"first_name"`
	LastName      string   `json:"last_name"`
	Email         string   `json:"email"`
	Title         *string  `json:"title"`
	Department    *string  `json:"department"`
	ResearchAreas []string `json:"research_areas"`
}

// NewInactiveProfessorResponse converts a loaded professor to the analytics shape
func NewInactiveProfessorResponse(p *models.Professor) InactiveProfessorResponse {
	return InactiveProfessorResponse{
		ProfessorID:   p.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		Title:         p.Title,
		Department:    departmentName(p.Department),
		ResearchAreas: models.ResearchAreaNames(p.ResearchAreas),
	}
}

// NewInactiveProfessorResponses converts a list of professors to the analytics shape
func NewInactiveProfessorResponses(professors []*models.Professor) []InactiveProfessorResponse {
	out := make([]InactiveProfessorResponse, 0, len(professors))
	for _, p := range professors {
		out = append(out, NewInactiveProfessorResponse(p))
	}
	return out
}
