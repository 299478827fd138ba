package models

// Publication is a paper published in a journal
type Publication struct {
	ID        int64
	Title     string
	JournalID *int64
	Year      int
	Volume    *string
	Issue     *string
	Pages     *string
	Citations int
	Abstract  *string

	// Loaded relationships
	Journal          *Journal
	ProfessorAuthors []Author
	StudentAuthors   []Author
}

// Author is a professor or student credited on a publication
type Author struct {
	AuthorID  int64
	FirstName string
	LastName  string
	Order     int
}

// Authorship is a row of professor_authors or student_authors
type Authorship struct {
	PublicationID int64
	AuthorID      int64
	AuthorOrder   int
}

// PublicationPatch holds the columns assigned by a partial update
type PublicationPatch struct {
	Title     *string
	JournalID Nullable[int64]
	Year      *int
	Volume    Nullable[string]
	Issue     Nullable[string]
	Pages     Nullable[string]
	Citations *int
	Abstract  Nullable[string]
}

// IsEmpty reports whether the patch assigns nothing
func (p PublicationPatch) IsEmpty() bool {
	return p.Title == nil && !p.JournalID.Set && p.Year == nil && !p.Volume.Set &&
		!p.Issue.Set && !p.Pages.Set && p.Citations == nil && !p.Abstract.Set
}
