package models

// Professor is a faculty member of a department
type Professor struct {
	ID           int64
	FirstName    string
	LastName     string
	Email        string
	Phone        *string
	Title        *string
	Office       *string
	ImageURL     *string
	DepartmentID *int64

	// Loaded relationships
	Department    *Department
	ResearchAreas []ResearchArea
}

// FullName formats the professor as "First Last"
func (p *Professor) FullName() string {
	return p.FirstName + " " + p.LastName
}

// ProfessorPatch holds the columns assigned by a partial update.
// Nil pointers and unset Nullables leave the column unchanged.
type ProfessorPatch struct {
	FirstName    *string
	LastName     *string
	Email        *string
	Phone        Nullable[string]
	Title        Nullable[string]
	Office       Nullable[string]
	ImageURL     Nullable[string]
	DepartmentID Nullable[int64]

	// ResearchAreaIDs replaces the professor's research areas when non-nil
	ResearchAreaIDs *[]int64
}

// IsEmpty reports whether the patch assigns nothing
func (p ProfessorPatch) IsEmpty() bool {
	return p.FirstName == nil && p.LastName == nil && p.Email == nil &&
		!p.Phone.Set && !p.Title.Set && !p.Office.Set && !p.ImageURL.Set &&
		!p.DepartmentID.Set && p.ResearchAreaIDs == nil
}
