package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/app/services"
	"github.com/yigit/researchdesk/internal/middleware"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// PublicationController handles publication-related operations
type PublicationController struct {
	publicationService services.PublicationService
}

// NewPublicationController creates a new PublicationController
func NewPublicationController(publicationService services.PublicationService) *PublicationController {
	return &PublicationController{
		publicationService: publicationService,
	}
}

// GetAllPublications lists publications
// @Summary List publications
// @Description Lists publications in id order with their journal and authors
// @Tags publications
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} dto.PublicationResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publications/ [get]
func (c *PublicationController) GetAllPublications(ctx *gin.Context) {
	page := helpers.ParsePaginationParams(ctx)

	publications, err := c.publicationService.GetAllPublications(ctx.Request.Context(), page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, publications)
}

// GetPublicationByID retrieves a publication by ID
// @Summary Get publication by ID
// @Tags publications
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} dto.PublicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid publication ID"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publications/{id} [get]
func (c *PublicationController) GetPublicationByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "publication")
	if !ok {
		return
	}

	publication, err := c.publicationService.GetPublicationByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, publication)
}

// CreatePublication handles publication creation
// @Summary Create a publication
// @Description Creates a publication; the journal must exist and citations default to 0
// @Tags publications
// @Accept json
// @Produce json
// @Param request body dto.CreatePublicationRequest true "Publication information"
// @Success 200 {object} dto.PublicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or unknown journal"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publications/ [post]
func (c *PublicationController) CreatePublication(ctx *gin.Context) {
	var req dto.CreatePublicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	publication, err := c.publicationService.CreatePublication(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, publication)
}

// UpdatePublication applies a partial update
// @Summary Update a publication
// @Description Assigns only the fields present in the body; null clears a nullable field
// @Tags publications
// @Accept json
// @Produce json
// @Param id path int true "Publication ID"
// @Param request body dto.UpdatePublicationRequest true "Fields to change"
// @Success 200 {object} dto.PublicationResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publications/{id} [put]
func (c *PublicationController) UpdatePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "publication")
	if !ok {
		return
	}

	var req dto.UpdatePublicationRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	publication, err := c.publicationService.UpdatePublication(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, publication)
}

// DeletePublication deletes a publication
// @Summary Delete a publication
// @Tags publications
// @Produce json
// @Param id path int true "Publication ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid publication ID"
// @Failure 404 {object} dto.ErrorResponse "Publication not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /publications/{id} [delete]
func (c *PublicationController) DeletePublication(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "publication")
	if !ok {
		return
	}

	if err := c.publicationService.DeletePublication(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Publication deleted successfully"))
}
