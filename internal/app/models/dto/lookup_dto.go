package dto

import "github.com/yigit/researchdesk/internal/app/models"

// CreateLookupRequest creates a department, journal or research area
type CreateLookupRequest struct {
	Name string `json:"name" binding:"required,notblank,max=100" example:"CS"`
}

// DepartmentResponse represents a department
type DepartmentResponse struct {
	DepartmentID int64  `json:"department_id" example:"1"`
	Name         string `json:"name" example:"CS"`
}

// JournalResponse represents a journal
type JournalResponse struct {
	JournalID int64  `json:"journal_id" example:"1"`
	Name      string `json:"name" example:"Nature"`
}

// ResearchAreaResponse represents a research area
type ResearchAreaResponse struct {
	AreaID int64  `json:"area_id" example:"1"`
	Name   string `json:"name" example:"Machine Learning"`
}

// NewDepartmentResponse converts a department
func NewDepartmentResponse(d *models.Department) DepartmentResponse {
	return DepartmentResponse{DepartmentID: d.ID, Name: d.Name}
}

// NewJournalResponse converts a journal
func NewJournalResponse(j *models.Journal) JournalResponse {
	return JournalResponse{JournalID: j.ID, Name: j.Name}
}

// NewResearchAreaResponse converts a research area
func NewResearchAreaResponse(a *models.ResearchArea) ResearchAreaResponse {
	return ResearchAreaResponse{AreaID: a.ID, Name: a.Name}
}

// NewDepartmentResponses converts a list of departments
func NewDepartmentResponses(departments []*models.Department) []DepartmentResponse {
	out := make([]DepartmentResponse, 0, len(departments))
	for _, d := range departments {
		out = append(out, NewDepartmentResponse(d))
	}
	return out
}

// NewJournalResponses converts a list of journals
func NewJournalResponses(journals []*models.Journal) []JournalResponse {
	out := make([]JournalResponse, 0, len(journals))
	for _, j := range journals {
		out = append(out, NewJournalResponse(j))
	}
	return out
}

// NewResearchAreaResponses converts a list of research areas
func NewResearchAreaResponses(areas []*models.ResearchArea) []ResearchAreaResponse {
	out := make([]ResearchAreaResponse, 0, len(areas))
	for _, a := range areas {
		out = append(out, NewResearchAreaResponse(a))
	}
	return out
}
