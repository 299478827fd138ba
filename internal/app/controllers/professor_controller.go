package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/app/services"
	"github.com/yigit/researchdesk/internal/middleware"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// ProfessorController handles professor-related operations
type ProfessorController struct {
	professorService services.ProfessorService
}

// NewProfessorController creates a new ProfessorController
func NewProfessorController(professorService services.ProfessorService) *ProfessorController {
	return &ProfessorController{
		professorService: professorService,
	}
}

// GetAllProfessors lists professors
// @Summary List professors
// @Description Lists professors in id order with their department and research areas
// @Tags professors
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} dto.ProfessorResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/ [get]
func (c *ProfessorController) GetAllProfessors(ctx *gin.Context) {
	page := helpers.ParsePaginationParams(ctx)

	professors, err := c.professorService.GetAllProfessors(ctx.Request.Context(), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professors)
}

// GetProfessorByID retrieves a professor by ID
// @Summary Get professor by ID
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.ProfessorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [get]
func (c *ProfessorController) GetProfessorByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	professor, err := c.professorService.GetProfessorByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// CreateProfessor handles professor creation
// @Summary Create a professor
// @Description Creates a professor; department and research areas must exist and the email must be unused
// @Tags professors
// @Accept json
// @Produce json
// @Param request body dto.CreateProfessorRequest true "Professor information"
// @Success 200 {object} dto.ProfessorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request, duplicate email or unknown reference"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/ [post]
func (c *ProfessorController) CreateProfessor(ctx *gin.Context) {
	var req dto.CreateProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	professor, err := c.professorService.CreateProfessor(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// UpdateProfessor applies a partial update
// @Summary Update a professor
// @Description Assigns only the fields present in the body; null clears a nullable field
// @Tags professors
// @Accept json
// @Produce json
// @Param id path int true "Professor ID"
// @Param request body dto.UpdateProfessorRequest true "Fields to change"
// @Success 200 {object} dto.ProfessorResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [put]
func (c *ProfessorController) UpdateProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	var req dto.UpdateProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	professor, err := c.professorService.UpdateProfessor(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, professor)
}

// DeleteProfessor deletes a professor
// @Summary Delete a professor
// @Tags professors
// @Produce json
// @Param id path int true "Professor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid professor ID"
// @Failure 404 {object} dto.ErrorResponse "Professor not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /professors/{id} [delete]
func (c *ProfessorController) DeleteProfessor(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "professor")
	if !ok {
		return
	}

	if err := c.professorService.DeleteProfessor(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Professor deleted successfully"))
}
