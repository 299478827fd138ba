package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/controllers"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/validation"
)

// Controllers groups the handlers mounted by SetupRouter
type Controllers struct {
	Professor    *controllers.ProfessorController
	Student      *controllers.StudentController
	Project      *controllers.ProjectController
	Publication  *controllers.PublicationController
	Department   *controllers.LookupController[dto.DepartmentResponse]
	Journal      *controllers.LookupController[dto.JournalResponse]
	ResearchArea *controllers.LookupController[dto.ResearchAreaResponse]
	Association  *controllers.AssociationController
	Analytics    *controllers.AnalyticsController
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, c Controllers) {
	validation.Register()

	// --- Professor routes ---
	professors := router.Group("/professors")
	{
		professors.GET("/", c.Professor.GetAllProfessors)
		professors.POST("/", c.Professor.CreateProfessor)
		professors.GET("/:id", c.Professor.GetProfessorByID)
		professors.PUT("/:id", c.Professor.UpdateProfessor)
		professors.DELETE("/:id", c.Professor.DeleteProfessor)
	}

	// --- Graduate student routes ---
	students := router.Group("/students")
	{
		students.GET("/", c.Student.GetAllStudents)
		students.POST("/", c.Student.CreateStudent)
		students.GET("/:id", c.Student.GetStudentByID)
		students.PUT("/:id", c.Student.UpdateStudent)
		students.DELETE("/:id", c.Student.DeleteStudent)
	}

	// --- Project routes, including participants ---
	projects := router.Group("/projects")
	{
		projects.GET("/", c.Project.GetAllProjects)
		projects.POST("/", c.Project.CreateProject)
		projects.GET("/:id", c.Project.GetProjectByID)
		projects.PUT("/:id", c.Project.UpdateProject)
		projects.DELETE("/:id", c.Project.DeleteProject)

		projects.POST("/:id/professors", c.Association.AddProfessorToProject)
		projects.DELETE("/:id/professors/:professorId", c.Association.RemoveProfessorFromProject)
		projects.POST("/:id/students", c.Association.AddStudentToProject)
		projects.DELETE("/:id/students/:studentId", c.Association.RemoveStudentFromProject)
	}

	// --- Publication routes, including authors ---
	publications := router.Group("/publications")
	{
		publications.GET("/", c.Publication.GetAllPublications)
		publications.POST("/", c.Publication.CreatePublication)
		publications.GET("/:id", c.Publication.GetPublicationByID)
		publications.PUT("/:id", c.Publication.UpdatePublication)
		publications.DELETE("/:id", c.Publication.DeletePublication)

		publications.POST("/:id/authors", c.Association.AddAuthor)
		publications.DELETE("/:id/authors/professors/:professorId", c.Association.RemoveProfessorAuthor)
		publications.DELETE("/:id/authors/students/:studentId", c.Association.RemoveStudentAuthor)
	}

	// --- Lookup tables ---
	for path, lookup := range map[string]lookupRoutes{
		"/departments":    c.Department,
		"/journals":       c.Journal,
		"/research-areas": c.ResearchArea,
	} {
		group := router.Group(path)
		group.GET("/", lookup.GetAll)
		group.POST("/", lookup.Create)
		group.GET("/:id", lookup.GetByID)
	}

	// --- Analytics (read-only) ---
	analytics := router.Group("/analytics")
	{
		analytics.GET("/department-funding/", c.Analytics.DepartmentFunding)
		analytics.GET("/departments-above-average/", c.Analytics.DepartmentsAboveAverage)
		analytics.GET("/average-publications/", c.Analytics.AveragePublications)
		analytics.GET("/inactive-professors/", c.Analytics.InactiveProfessors)
		analytics.GET("/small-departments/", c.Analytics.SmallDepartments)
		analytics.GET("/unassigned-students/", c.Analytics.UnassignedStudents)
		analytics.GET("/yearly-trends/", c.Analytics.YearlyTrends)
		analytics.GET("/department-publications/", c.Analytics.DepartmentPublications)
		analytics.GET("/system-stats/", c.Analytics.SystemStats)
		analytics.GET("/department-total-funding/", c.Analytics.DepartmentTotalFunding)
		analytics.GET("/professors-without-publications/", c.Analytics.ProfessorsWithoutPublications)
		analytics.GET("/professor-publication-counts/", c.Analytics.ProfessorPublicationCounts)
		analytics.GET("/publications-by-citations/", c.Analytics.PublicationsByCitations)
	}

	router.GET("/directory/emails/", c.Analytics.EmailDirectory)

	// Health check endpoint
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// lookupRoutes is the handler set shared by the lookup controllers
type lookupRoutes interface {
	GetAll(ctx *gin.Context)
	Create(ctx *gin.Context)
	GetByID(ctx *gin.Context)
}
