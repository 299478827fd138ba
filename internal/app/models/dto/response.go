package dto

import "github.com/yigit/researchdesk/internal/app/models"

// MessageResponse is returned by deletes and association removals
type MessageResponse struct {
	Message string `json:"message" example:"Professor deleted successfully"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Detail string `json:"detail" example:"Professor not found"`
}

// NewMessageResponse creates a message response
func NewMessageResponse(message string) MessageResponse {
	return MessageResponse{Message: message}
}

// NewErrorResponse creates an error response
func NewErrorResponse(detail string) ErrorResponse {
	return ErrorResponse{Detail: detail}
}

func departmentName(d *models.Department) *string {
	if d == nil {
		return nil
	}
	name := d.Name
	return &name
}

func journalName(j *models.Journal) *string {
	if j == nil {
		return nil
	}
	name := j.Name
	return &name
}

func professorName(p *models.Professor) *string {
	if p == nil {
		return nil
	}
	name := p.FullName()
	return &name
}
