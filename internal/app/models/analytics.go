package models

// DepartmentFunding is a per-department funding figure (average or total)
type DepartmentFunding struct {
	Department string
	Funding    float64
}

// DepartmentProfessorCount is the number of professors in a department
type DepartmentProfessorCount struct {
	Department     string
	ProfessorCount int64
}

// DirectoryEntry is one line of the email directory
type DirectoryEntry struct {
	Name  string
	Email string
}

// YearlyTrends holds completed projects by end year and publications by year
type YearlyTrends struct {
	Projects     map[int]int64
	Publications map[int]int64
}

// DepartmentPublicationCount is the number of professor-authored publications of a department
type DepartmentPublicationCount struct {
	Department       string
	PublicationCount int64
}

// SystemStats holds department-wide totals
type SystemStats struct {
	TotalStudents       int64
	TotalProfessors     int64
	TotalCitations      int64
	TotalActiveProjects int64
}

// ProfessorPublicationCount is the number of publications a professor authored
type ProfessorPublicationCount struct {
	ProfessorID      int64
	FirstName        string
	LastName         string
	PublicationCount int64
	Department       *string
}
