package dto

import "github.com/yigit/researchdesk/internal/app/models"

// DepartmentFundingResponse is a department's average (or above-average total) funding
type DepartmentFundingResponse struct {
	Department string  `json:"department" example:"CS"`
	Funding    float64 `json:"funding" example:"15000.5"`
}

// DepartmentTotalFundingResponse is a department's total funding
type DepartmentTotalFundingResponse struct {
	Department   string  `json:"department" example:"CS"`
	TotalFunding float64 `json:"total_funding" example:"45000"`
}

// AveragePublicationsResponse is the mean number of publications per authoring professor
type AveragePublicationsResponse struct {
	Average float64 `json:"average" example:"2.5"`
}

// DepartmentCountResponse is the number of professors in a department
type DepartmentCountResponse struct {
	Department     string `json:"department" example:"Physics"`
	ProfessorCount int64  `json:"professor_count" example:"2"`
}

// EmailEntryResponse is one line of the email directory
type EmailEntryResponse struct {
	Name  string `json:"name" example:"Ada Lovelace (Professor)"`
	Email string `json:"email" example:"ada@x.edu"`
}

// YearlyTrendsResponse holds year to count maps for completed projects and publications
type YearlyTrendsResponse struct {
	Projects     map[int]int64 `json:"projects"`
	Publications map[int]int64 `json:"publications"`
}

// DepartmentPublicationsResponse is the number of professor-authored publications of a department
type DepartmentPublicationsResponse struct {
	Department       string `json:"department" example:"CS"`
	PublicationCount int64  `json:"publication_count" example:"7"`
}

// SystemStatsResponse holds department-wide totals
type SystemStatsResponse struct {
	TotalStudents       int64 `json:"total_students"`
	TotalProfessors     int64 `json:"total_professors"`
	TotalCitations      int64 `json:"total_citations"`
	TotalActiveProjects int64 `json:"total_active_projects"`
}

// ProfessorPublicationCountResponse is the number of publications a professor authored
type ProfessorPublicationCountResponse struct {
	ProfessorID      int64   `json:"professor_id"`
	FirstName        string  `json:"first_name"`
	LastName         string  `json:"last_name"`
	PublicationCount int64   `json:"publication_count"`
	Department       *string `json:"department"`
}

// NewDepartmentFundingResponses converts per-department averages
func NewDepartmentFundingResponses(rows []models.DepartmentFunding) []DepartmentFundingResponse {
	out := make([]DepartmentFundingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DepartmentFundingResponse{Department: r.Department, Funding: r.Funding})
	}
	return out
}

// NewDepartmentTotalFundingResponses converts per-department totals
func NewDepartmentTotalFundingResponses(rows []models.DepartmentFunding) []DepartmentTotalFundingResponse {
	out := make([]DepartmentTotalFundingResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DepartmentTotalFundingResponse{Department: r.Department, TotalFunding: r.Funding})
	}
	return out
}

// NewDepartmentCountResponses converts professor counts per department
func NewDepartmentCountResponses(rows []models.DepartmentProfessorCount) []DepartmentCountResponse {
	out := make([]DepartmentCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DepartmentCountResponse{Department: r.Department, ProfessorCount: r.ProfessorCount})
	}
	return out
}

// NewEmailEntryResponses converts directory entries
func NewEmailEntryResponses(rows []models.DirectoryEntry) []EmailEntryResponse {
	out := make([]EmailEntryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, EmailEntryResponse{Name: r.Name, Email: r.Email})
	}
	return out
}

// NewYearlyTrendsResponse converts yearly trends; missing maps become empty objects
func NewYearlyTrendsResponse(t models.YearlyTrends) YearlyTrendsResponse {
	resp := YearlyTrendsResponse{Projects: t.Projects, Publications: t.Publications}
	if resp.Projects == nil {
		resp.Projects = map[int]int64{}
	}
	if resp.Publications == nil {
		resp.Publications = map[int]int64{}
	}
	return resp
}

// NewDepartmentPublicationsResponses converts publication counts per department
func NewDepartmentPublicationsResponses(rows []models.DepartmentPublicationCount) []DepartmentPublicationsResponse {
	out := make([]DepartmentPublicationsResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, DepartmentPublicationsResponse{Department: r.Department, PublicationCount: r.PublicationCount})
	}
	return out
}

// NewSystemStatsResponse converts system totals
func NewSystemStatsResponse(s models.SystemStats) SystemStatsResponse {
	return SystemStatsResponse{
		TotalStudents:       s.TotalStudents,
		TotalProfessors:     s.TotalProfessors,
		TotalCitations:      s.TotalCitations,
		TotalActiveProjects: s.TotalActiveProjects,
	}
}

// NewProfessorPublicationCountResponses converts per-professor publication counts
func NewProfessorPublicationCountResponses(rows []models.ProfessorPublicationCount) []ProfessorPublicationCountResponse {
	out := make([]ProfessorPublicationCountResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, ProfessorPublicationCountResponse{
			ProfessorID:      r.ProfessorID,
			FirstName:        r.FirstName,
			LastName:         r.LastName,
			PublicationCount: r.PublicationCount,
			Department:       r.Department,
		})
	}
	return out
}
