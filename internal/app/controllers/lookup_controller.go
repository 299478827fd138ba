package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/app/services"
	"github.com/yigit/researchdesk/internal/middleware"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// LookupController serves a name-keyed reference table (departments, journals, research areas)
type LookupController[R any] struct {
	service services.LookupService[R]
	entity  string
}

// NewDepartmentController creates the department controller
func NewDepartmentController(service services.LookupService[dto.DepartmentResponse]) *LookupController[dto.DepartmentResponse] {
	return &LookupController[dto.DepartmentResponse]{service: service, entity: "Department"}
}

// NewJournalController creates the journal controller
func NewJournalController(service services.LookupService[dto.JournalResponse]) *LookupController[dto.JournalResponse] {
	return &LookupController[dto.JournalResponse]{service: service, entity: "Journal"}
}

// NewResearchAreaController creates the research area controller
func NewResearchAreaController(service services.LookupService[dto.ResearchAreaResponse]) *LookupController[dto.ResearchAreaResponse] {
	return &LookupController[dto.ResearchAreaResponse]{service: service, entity: "Research area"}
}

// GetAll lists entries
// @Summary List departments, journals or research areas
// @Tags lookups
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} dto.DepartmentResponse
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /departments/ [get]
// @Router /journals/ [get]
// @Router /research-areas/ [get]
func (c *LookupController[R]) GetAll(ctx *gin.Context) {
	entries, err := c.service.GetAll(ctx.Request.Context(), helpers.ParsePaginationParams(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entries)
}

// GetByID retrieves one entry
// @Summary Get a department, journal or research area
// @Tags lookups
// @Produce json
// @Param id path int true "ID"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Not found"
// @Router /departments/{id} [get]
// @Router /journals/{id} [get]
// @Router /research-areas/{id} [get]
func (c *LookupController[R]) GetByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", strings.ToLower(c.entity))
	if !ok {
		return
	}

	entry, err := c.service.GetByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// Create adds an entry
// @Summary Create a department, journal or research area
// @Description Names are unique
// @Tags lookups
// @Accept json
// @Produce json
// @Param request body dto.CreateLookupRequest true "Name"
// @Success 200 {object} dto.DepartmentResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid request or duplicate name"
// @Router /departments/ [post]
// @Router /journals/ [post]
// @Router /research-areas/ [post]
func (c *LookupController[R]) Create(ctx *gin.Context) {
	var req dto.CreateLookupRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	entry, err := c.service.Create(ctx.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, entry)
}
