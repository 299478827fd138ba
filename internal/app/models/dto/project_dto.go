package dto

import "github.com/yigit/researchdesk/internal/app/models"

// CreateProjectRequest represents project creation data
type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required,notblank,max=200" example:"Analytical Engines"`
	StartDate       *Date    `json:"start_date" binding:"required" swaggertype:"string" example:"2024-01-15"`
	EndDate         *Date    `json:"end_date" swaggertype:"string"`
	Status          string   `json:"status" binding:"required,oneof=Active Completed" example:"Active"`
	FundingAmount   *float64 `json:"funding_amount" binding:"omitempty,gte=0" example:"125000.50"`
	FundingSource   string   `json:"funding_source" binding:"required,max=100" example:"NSF"`
	Description     *string  `json:"description"`
	LeadProfessorID *int64   `json:"lead_professor_id" binding:"required,gt=0" example:"1"`
	DepartmentID    *int64   `json:"department_id" binding:"required,gt=0" example:"1"`
}

// ToModel converts the request into a project to insert
func (r CreateProjectRequest) ToModel() *models.Project {
	p := &models.Project{
		Title:           r.Title,
		Status:          models.ProjectStatus(r.Status),
		FundingAmount:   r.FundingAmount,
		FundingSource:   r.FundingSource,
		Description:     r.Description,
		LeadProfessorID: r.LeadProfessorID,
		DepartmentID:    r.DepartmentID,
	}
	if r.StartDate != nil {
		p.StartDate = r.StartDate.Time
	}
	if r.EndDate != nil {
		end := r.EndDate.Time
		p.EndDate = &end
	}
	return p
}

// UpdateProjectRequest is a partial update; omitted fields are left unchanged
type UpdateProjectRequest struct {
	Title           Optional[string]  `json:"title" swaggertype:"string"`
	StartDate       Optional[Date]    `json:"start_date" swaggertype:"string"`
	EndDate         Optional[Date]    `json:"end_date" swaggertype:"string"`
	Status          Optional[string]  `json:"status" swaggertype:"string"`
	FundingAmount   Optional[float64] `json:"funding_amount" swaggertype:"number"`
	FundingSource   Optional[string]  `json:"funding_source" swaggertype:"string"`
	Description     Optional[string]  `json:"description" swaggertype:"string"`
	LeadProfessorID Optional[int64]   `json:"lead_professor_id" swaggertype:"integer"`
	DepartmentID    Optional[int64]   `json:"department_id" swaggertype:"integer"`
}

// ToPatch converts the request into a project patch
func (r UpdateProjectRequest) ToPatch() (models.ProjectPatch, error) {
	var p patchErrors
	patch := models.ProjectPatch{
		Title:           nonEmpty(&p, "title", r.Title),
		StartDate:       requiredDate(&p, "start_date", r.StartDate),
		EndDate:         nullableDate(r.EndDate),
		FundingAmount:   nullable(r.FundingAmount),
		FundingSource:   nonEmpty(&p, "funding_source", r.FundingSource),
		Description:     nullable(r.Description),
		LeadProfessorID: reference(&p, "lead_professor_id", r.LeadProfessorID),
		DepartmentID:    reference(&p, "department_id", r.DepartmentID),
	}

	if s := required(&p, "status", r.Status); s != nil {
		switch st := models.ProjectStatus(*s); st {
		case models.ProjectStatusActive, models.ProjectStatusCompleted:
			patch.Status = &st
		default:
			p.fail("status must be one of Active, Completed")
		}
	}

	if v := patch.FundingAmount.Value; v != nil && *v < 0 {
		p.fail("funding_amount must not be negative")
	}

	return patch, p.err
}

// ParticipantResponse is a professor or student working on a project
type ParticipantResponse struct {
	Name string  `json:"name" example:"Ada Lovelace"`
	Role *string `json:"role" example:"PI"`
}

// ProjectResponse represents a project with its lead, department and participants resolved
type ProjectResponse struct {
	ProjectID       int64                 `json:"project_id" example:"1"`
	Title           string                `json:"title"`
	StartDate       Date                  `json:"start_date" swaggertype:"string" example:"2024-01-15"`
	EndDate         *Date                 `json:"end_date" swaggertype:"string"`
	Status          string                `json:"status" example:"Active"`
	FundingAmount   *float64              `json:"funding_amount"`
	FundingSource   string                `json:"funding_source"`
	Description     *string               `json:"description"`
	LeadProfessorID *int64                `json:"lead_professor_id"`
	DepartmentID    *int64                `json:"department_id"`
	LeadProfessor   *string               `json:"lead_professor" example:"Ada Lovelace"`
	Department      *string               `json:"department"`
	Professors      []ParticipantResponse `json:"professors"`
	Students        []ParticipantResponse `json:"students"`
}

func participants(members []models.Participant) []ParticipantResponse {
	out := make([]ParticipantResponse, 0, len(members))
	for _, m := range members {
		out = append(out, ParticipantResponse{
			Name: m.FirstName + " " + m.LastName,
			Role: m.Role,
		})
	}
	return out
}

// NewProjectResponse converts a loaded project to its response shape
func NewProjectResponse(p *models.Project) ProjectResponse {
	return ProjectResponse{
		ProjectID:       p.ID,
		Title:           p.Title,
		StartDate:       NewDate(p.StartDate),
		EndDate:         NewDatePtr(p.EndDate),
		Status:          string(p.Status),
		FundingAmount:   p.FundingAmount,
		FundingSource:   p.FundingSource,
		Description:     p.Description,
		LeadProfessorID: p.LeadProfessorID,
		DepartmentID:    p.DepartmentID,
		LeadProfessor:   professorName(p.LeadProfessor),
		Department:      departmentName(p.Department),
		Professors:      participants(p.Professors),
		Students:        participants(p.Students),
	}
}

// NewProjectResponses converts a list of projects
func NewProjectResponses(projects []*models.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, NewProjectResponse(p))
	}
	return out
}
