package dto

import (
	"sort"

	"github.com/yigit/researchdesk/internal/app/models"
)

// Author type discriminators
const (
	AuthorTypeProfessor = "professor"
	AuthorTypeStudent   = "student"
)

// CreatePublicationRequest represents publication creation data
type CreatePublicationRequest struct {
	Title     string  `json:"title" binding:"required,notblank,max=200" example:"Notes on the Analytical Engine"`
	JournalID *int64  `json:"journal_id" binding:"required,gt=0" example:"1"`
	Year      int     `json:"year" binding:"required,gt=0" example:"1843"`
	Volume    *string `json:"volume" binding:"omitempty,max=20"`
	Issue     *string `json:"issue" binding:"omitempty,max=20"`
	Pages     *string `json:"pages" binding:"omitempty,max=20"`
	Citations *int    `json:"citations" binding:"omitempty,gte=0" example:"0"`
	Abstract  *string `json:"abstract"`
}

// ToModel converts the request into a publication to insert; citations default to 0
func (r CreatePublicationRequest) ToModel() *models.Publication {
	p := &models.Publication{
		Title:     r.Title,
		JournalID: r.JournalID,
		Year:      r.Year,
		Volume:    r.Volume,
		Issue:     r.Issue,
		Pages:     r.Pages,
		Abstract:  r.Abstract,
	}
	if r.Citations != nil {
		p.Citations = *r.Citations
	}
	return p
}

// UpdatePublicationRequest is a partial update; omitted fields are left unchanged
type UpdatePublicationRequest struct {
	Title     Optional[string] `json:"title" swaggertype:"string"`
	JournalID Optional[int64]  `json:"journal_id" swaggertype:"integer"`
	Year      Optional[int]    `json:"year" swaggertype:"integer"`
	Volume    Optional[string] `json:"volume" swaggertype:"string"`
	Issue     Optional[string] `json:"issue" swaggertype:"string"`
	Pages     Optional[string] `json:"pages" swaggertype:"string"`
	Citations Optional[int]    `json:"citations" swaggertype:"integer"`
	Abstract  Optional[string] `json:"abstract" swaggertype:"string"`
}

// ToPatch converts the request into a publication patch
func (r UpdatePublicationRequest) ToPatch() (models.PublicationPatch, error) {
	var p patchErrors
	patch := models.PublicationPatch{
		Title:     nonEmpty(&p, "title", r.Title),
		JournalID: reference(&p, "journal_id", r.JournalID),
		Year:      required(&p, "year", r.Year),
		Volume:    nullable(r.Volume),
		Issue:     nullable(r.Issue),
		Pages:     nullable(r.Pages),
		Citations: required(&p, "citations", r.Citations),
		Abstract:  nullable(r.Abstract),
	}

	if patch.Year != nil && *patch.Year <= 0 {
		p.fail("year must be a positive integer")
	}
	if patch.Citations != nil && *patch.Citations < 0 {
		p.fail("citations must not be negative")
	}

	return patch, p.err
}

// AuthorResponse is one entry of a publication's merged author list
type AuthorResponse struct {
	Name  string `json:"name" example:"Ada Lovelace"`
	Type  string `json:"type" example:"professor" enums:"professor,student"`
	Order int    `json:"order" example:"1"`
}

// PublicationResponse represents a publication with its journal and authors resolved
type PublicationResponse struct {
	PublicationID int64            `json:"publication_id" example:"1"`
	Title         string           `json:"title"`
	JournalID     *int64           `json:"journal_id"`
	Year          int              `json:"year" example:"2024"`
	Volume        *string          `json:"volume"`
	Issue         *string          `json:"issue"`
	Pages         *string          `json:"pages"`
	Citations     int              `json:"citations"`
	Abstract      *string          `json:"abstract"`
	Journal       *string          `json:"journal"`
	Authors       []AuthorResponse `json:"authors"`
}

// MergeAuthors combines professor and student authors into one list ordered by author order.
// Professors precede students that share the same order.
func MergeAuthors(professors, students []models.Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(professors)+len(students))
	for _, a := range professors {
		out = append(out, AuthorResponse{Name: a.FirstName + " " + a.LastName, Type: AuthorTypeProfessor, Order: a.Order})
	}
	for _, a := range students {
		out = append(out, AuthorResponse{Name: a.FirstName + " " + a.LastName, Type: AuthorTypeStudent, Order: a.Order})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// NewPublicationResponse converts a loaded publication to its response shape
func NewPublicationResponse(p *models.Publication) PublicationResponse {
	return PublicationResponse{
		PublicationID: p.ID,
		Title:         p.Title,
		JournalID:     p.JournalID,
		Year:          p.Year,
		Volume:        p.Volume,
		Issue:         p.Issue,
		Pages:         p.Pages,
		Citations:     p.Citations,
		Abstract:      p.Abstract,
		Journal:       journalName(p.Journal),
		Authors:       MergeAuthors(p.ProfessorAuthors, p.StudentAuthors),
	}
}

// NewPublicationResponses converts a list of publications
func NewPublicationResponses(publications []*models.Publication) []PublicationResponse {
	out := make([]PublicationResponse, 0, len(publications))
	for _, p := range publications {
		out = append(out, NewPublicationResponse(p))
	}
	return out
}
