package models

import "time"

// StudentType is the degree a graduate student is enrolled in
type StudentType string

const (
	StudentTypePhD     StudentType = "PhD"
	StudentTypeMasters StudentType = "Masters"
)

// GradStudent is a graduate student, optionally advised by a professor
type GradStudent struct {
	ID             int64
	FirstName      string
	LastName       string
	Email          string
	EnrollmentDate time.Time
	Type           StudentType
	ImageURL       *string
	AdvisorID      *int64
	DepartmentID   *int64

	// Loaded relationships
	Advisor       *Professor
	Department    *Department
	ResearchAreas []ResearchArea
}

// StudentPatch holds the columns assigned by a partial update
type StudentPatch struct {
	FirstName      *string
	LastName       *string
	Email          *string
	EnrollmentDate *time.Time
	Type           *StudentType
	ImageURL       Nullable[string]
	AdvisorID      Nullable[int64]
	DepartmentID   Nullable[int64]

	// ResearchAreaIDs replaces the student's research areas when non-nil
	ResearchAreaIDs *[]int64
}

// IsEmpty reports whether the patch assigns nothing
func (p StudentPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		p.EnrollmentDate == nil && p.Type == nil && !p.ImageURL.Set &&
		!p.AdvisorID.Set && !p.DepartmentID.Set && p.ResearchAreaIDs == nil
}
