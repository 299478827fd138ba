package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/app/services"
	"github.com/yigit/researchdesk/internal/middleware"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// AnalyticsController serves the read-only reports
type AnalyticsController struct {
	analyticsService services.AnalyticsService
}

// NewAnalyticsController creates a new AnalyticsController
func NewAnalyticsController(analyticsService services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{
		analyticsService: analyticsService,
	}
}

// report writes the result of a report query as JSON
func report[T any](ctx *gin.Context, query func(context.Context) (T, error)) {
	result, err := query(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, result)
}

// DepartmentFunding godoc
// @Summary Average project funding per department
// @Description Departments without projects are not listed
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.DepartmentFundingResponse
// @Router /analytics/department-funding/ [get]
func (c *AnalyticsController) DepartmentFunding(ctx *gin.Context) {
	report(ctx, c.analyticsService.DepartmentAverageFunding)
}

// DepartmentsAboveAverage godoc
// @Summary Departments whose total funding exceeds the mean department total
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.DepartmentFundingResponse
// @Router /analytics/departments-above-average/ [get]
func (c *AnalyticsController) DepartmentsAboveAverage(ctx *gin.Context) {
	report(ctx, c.analyticsService.DepartmentsAboveAverageFunding)
}

// AveragePublications godoc
// @Summary Average number of publications per authoring professor
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.AveragePublicationsResponse
// @Router /analytics/average-publications/ [get]
func (c *AnalyticsController) AveragePublications(ctx *gin.Context) {
	report(ctx, c.analyticsService.AveragePublicationsPerProfessor)
}

// InactiveProfessors godoc
// @Summary Professors not leading any active project
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.InactiveProfessorResponse
// @Router /analytics/inactive-professors/ [get]
func (c *AnalyticsController) InactiveProfessors(ctx *gin.Context) {
	report(ctx, c.analyticsService.InactiveProfessors)
}

// SmallDepartments godoc
// @Summary Departments with fewer than three professors
// @Description Departments without professors are not listed
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.DepartmentCountResponse
// @Router /analytics/small-departments/ [get]
func (c *AnalyticsController) SmallDepartments(ctx *gin.Context) {
	report(ctx, c.analyticsService.SmallDepartments)
}

// EmailDirectory godoc
// @Summary Email directory of professors and students
// @Tags directory
// @Produce json
// @Success 200 {array} dto.EmailEntryResponse
// @Router /directory/emails/ [get]
func (c *AnalyticsController) EmailDirectory(ctx *gin.Context) {
	report(ctx, c.analyticsService.EmailDirectory)
}

// UnassignedStudents godoc
// @Summary Students with no project and no advisor
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.UnassignedStudentResponse
// @Router /analytics/unassigned-students/ [get]
func (c *AnalyticsController) UnassignedStudents(ctx *gin.Context) {
	report(ctx, c.analyticsService.UnassignedStudents)
}

// YearlyTrends godoc
// @Summary Completed projects and publications per year
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.YearlyTrendsResponse
// @Router /analytics/yearly-trends/ [get]
func (c *AnalyticsController) YearlyTrends(ctx *gin.Context) {
	report(ctx, c.analyticsService.YearlyTrends)
}

// DepartmentPublications godoc
// @Summary Professor-authored publications per department
// @Description Publications authored only by students are not counted
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.DepartmentPublicationsResponse
// @Router /analytics/department-publications/ [get]
func (c *AnalyticsController) DepartmentPublications(ctx *gin.Context) {
	report(ctx, c.analyticsService.DepartmentPublicationCounts)
}

// SystemStats godoc
// @Summary Department-wide totals
// @Tags analytics
// @Produce json
// @Success 200 {object} dto.SystemStatsResponse
// @Router /analytics/system-stats/ [get]
func (c *AnalyticsController) SystemStats(ctx *gin.Context) {
	report(ctx, c.analyticsService.SystemStats)
}

// DepartmentTotalFunding godoc
// @Summary Total project funding per department, highest first
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.DepartmentTotalFundingResponse
// @Router /analytics/department-total-funding/ [get]
func (c *AnalyticsController) DepartmentTotalFunding(ctx *gin.Context) {
	report(ctx, c.analyticsService.DepartmentTotalFunding)
}

// ProfessorsWithoutPublications godoc
// @Summary Professors who authored no publication
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.InactiveProfessorResponse
// @Router /analytics/professors-without-publications/ [get]
func (c *AnalyticsController) ProfessorsWithoutPublications(ctx *gin.Context) {
	report(ctx, c.analyticsService.ProfessorsWithoutPublications)
}

// ProfessorPublicationCounts godoc
// @Summary Publication count of every professor, highest first
// @Tags analytics
// @Produce json
// @Success 200 {array} dto.ProfessorPublicationCountResponse
// @Router /analytics/professor-publication-counts/ [get]
func (c *AnalyticsController) ProfessorPublicationCounts(ctx *gin.Context) {
	report(ctx, c.analyticsService.ProfessorPublicationCounts)
}

// PublicationsByCitations godoc
// @Summary Publications ordered by citation count, highest first
// @Tags analytics
// @Produce json
// @Param skip query int false "Rows to skip" default(0)
// @Param limit query int false "Maximum rows" default(100)
// @Success 200 {array} dto.PublicationResponse
// @Router /analytics/publications-by-citations/ [get]
func (c *AnalyticsController) PublicationsByCitations(ctx *gin.Context) {
	page := helpers.ParsePaginationParams(ctx)
	report(ctx, func(reqCtx context.Context) ([]dto.PublicationResponse, error) {
		return c.analyticsService.PublicationsByCitations(reqCtx, page)
	})
}
