package models

// Department is an academic department, referenced by name
type Department struct {
	ID   int64  `json:"department_id"`
	Name string `json:"name"`
}

// ResearchArea is a tag attached to professors and students
type ResearchArea struct {
	ID   int64  `json:"area_id"`
	Name string `json:"name"`
}

// Journal is a publication venue
type Journal struct {
	ID   int64  `json:"journal_id"`
	Name string `json:"name"`
}

// ResearchAreaNames returns the names of areas in order
func ResearchAreaNames(areas []ResearchArea) []string {
	names := make([]string, 0, len(areas))
	for _, a := range areas {
		names = append(names, a.Name)
	}
	return names
}
