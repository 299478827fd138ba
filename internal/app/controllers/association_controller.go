package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/app/services"
	"github.com/yigit/researchdesk/internal/middleware"
)

// AssociationController manages project participants and publication authors
type AssociationController struct {
	associationService services.AssociationService
}

// NewAssociationController creates a new AssociationController
func NewAssociationController(associationService services.AssociationService) *AssociationController {
	return &AssociationController{
		associationService: associationService,
	}
}

// AddProfessorToProject attaches a professor to a project
// @Summary Add a professor to a project
// @Description Adds the professor with the given role, or updates the role if already present
// @Tags associations
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.AddProjectProfessorRequest true "Professor and role"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown professor"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id}/professors [post]
func (c *AssociationController) AddProfessorToProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}

	var req dto.AddProjectProfessorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	project, err := c.associationService.AddProfessorToProject(ctx.Request.Context(), projectID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// RemoveProfessorFromProject detaches a professor from a project
// @Summary Remove a professor from a project
// @Tags associations
// @Produce json
// @Param id path int true "Project ID"
// @Param professorId path int true "Professor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Project or association not found"
// @Router /projects/{id}/professors/{professorId} [delete]
func (c *AssociationController) RemoveProfessorFromProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}
	professorID, ok := parseIDParam(ctx, "professorId", "professor")
	if !ok {
		return
	}

	if err := c.associationService.RemoveProfessorFromProject(ctx.Request.Context(), projectID, professorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Professor removed from project"))
}

// AddStudentToProject attaches a student to a project
// @Summary Add a student to a project
// @Description Adds the student with the given role, or updates the role if already present
// @Tags associations
// @Accept json
// @Produce json
// @Param id path int true "Project ID"
// @Param request body dto.AddProjectStudentRequest true "Student and role"
// @Success 200 {object} dto.ProjectResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown student"
// @Failure 404 {object} dto.ErrorResponse "Project not found"
// @Router /projects/{id}/students [post]
func (c *AssociationController) AddStudentToProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}

	var req dto.AddProjectStudentRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	project, err := c.associationService.AddStudentToProject(ctx.Request.Context(), projectID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, project)
}

// RemoveStudentFromProject detaches a student from a project
// @Summary Remove a student from a project
// @Tags associations
// @Produce json
// @Param id path int true "Project ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Project or association not found"
// @Router /projects/{id}/students/{studentId} [delete]
func (c *AssociationController) RemoveStudentFromProject(ctx *gin.Context) {
	projectID, ok := parseIDParam(ctx, "id", "project")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", "student")
	if !ok {
		return
	}

	if err := c.associationService.RemoveStudentFromProject(ctx.Request.Context(), projectID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student removed from project"))
}

// AddAuthor credits a professor or a student on a publication
// @Summary Add an author to a publication
// @Description Exactly one of professor_id and student_id must be given
// @Tags associations
// @Accept json
// @Produce json
// @Param id path int true "Publication ID"
// @Param request body dto.AddAuthorRequest true "Author and order"
// @Success 200 {object} dto.PublicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown author"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Router /publications/{id}/authors [post]
func (c *AssociationController) AddAuthor(ctx *gin.Context) {
	publicationID, ok := parseIDParam(ctx, "id", "publication")
	if !ok {
		return
	}

	var req dto.AddAuthorRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	publication, err := c.associationService.AddAuthor(ctx.Request.Context(), publicationID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, publication)
}

// RemoveProfessorAuthor removes a professor's authorship
// @Summary Remove a professor author
// @Tags associations
// @Produce json
// @Param id path int true "Publication ID"
// @Param professorId path int true "Professor ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Publication or association not found"
// @Router /publications/{id}/authors/professors/{professorId} [delete]
func (c *AssociationController) RemoveProfessorAuthor(ctx *gin.Context) {
	publicationID, ok := parseIDParam(ctx, "id", "publication")
	if !ok {
		return
	}
	professorID, ok := parseIDParam(ctx, "professorId", "professor")
	if !ok {
		return
	}

	if err := c.associationService.RemoveProfessorAuthor(ctx.Request.Context(), publicationID, professorID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Author removed from publication"))
}

// RemoveStudentAuthor removes a student's authorship
// @Summary Remove a student author
// @Tags associations
// @Produce json
// @Param id path int true "Publication ID"
// @Param studentId path int true "Student ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 404 {object} dto.ErrorResponse "Publication or association not found"
// @Router /publications/{id}/authors/students/{studentId} [delete]
func (c *AssociationController) RemoveStudentAuthor(ctx *gin.Context) {
	publicationID, ok := parseIDParam(ctx, "id", "publication")
	if !ok {
		return
	}
	studentID, ok := parseIDParam(ctx, "studentId", "student")
	if !ok {
		return
	}

	if err := c.associationService.RemoveStudentAuthor(ctx.Request.Context(), publicationID, studentID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Author removed from publication"))
}
