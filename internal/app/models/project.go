package models

import "time"

// ProjectStatus is the lifecycle state of a project
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "Active"
	ProjectStatusCompleted ProjectStatus = "Completed"
)

// Project is a funded research project led by a professor
type Project struct {
	ID              int64
	Title           string
	StartDate       time.Time
	EndDate         *time.Time
	Status          ProjectStatus
	FundingAmount   *float64
	FundingSource   string
	Description     *string
	LeadProfessorID *int64
	DepartmentID    *int64

	// Loaded relationships
	LeadProfessor *Professor
	Department    *Department
	Professors    []Participant
	Students      []Participant
}

// Participant is a professor or student working on a project
type Participant struct {
	MemberID  int64
	FirstName string
	LastName  string
	Role      *string
}

// ProjectMember is a row of professor_project or student_project
type ProjectMember struct {
	ProjectID int64
	MemberID  int64
	Role      *string
}

// ProjectPatch holds the columns assigned by a partial update
type ProjectPatch struct {
	Title           *string
	StartDate       *time.Time
	EndDate         Nullable[time.Time]
	Status          *ProjectStatus
	FundingAmount   Nullable[float64]
	FundingSource   *string
	Description     Nullable[string]
	LeadProfessorID Nullable[int64]
	DepartmentID    Nullable[int64]
}

// IsEmpty reports whether the patch assigns nothing
func (p ProjectPatch) IsEmpty() bool {
	return p.Title == nil && p.StartDate == nil && !p.EndDate.Set && p.Status == nil &&
		!p.FundingAmount.Set && p.FundingSource == nil && !p.Description.Set &&
		!p.LeadProfessorID.Set && !p.DepartmentID.Set
}
