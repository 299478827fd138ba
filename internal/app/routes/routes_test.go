package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/yigit/researchdesk/internal/app/controllers"
	"github.com/yigit/researchdesk/internal/app/routes"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	routes.SetupRouter(router, routes.Controllers{
		Professor:    controllers.NewProfessorController(nil),
		Student:      controllers.NewStudentController(nil),
		Project:      controllers.NewProjectController(nil),
		Publication:  controllers.NewPublicationController(nil),
		Department:   controllers.NewDepartmentController(nil),
		Journal:      controllers.NewJournalController(nil),
		ResearchArea: controllers.NewResearchAreaController(nil),
		Association:  controllers.NewAssociationController(nil),
		Analytics:    controllers.NewAnalyticsController(nil),
	})
	return router
}

func TestSetupRouterRegistersEndpoints(t *testing.T) {
	registered := map[string]bool{}
	for _, r := range newRouter().Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	want := []string{
		"GET /professors/", "POST /professors/", "GET /professors/:id", "PUT /professors/:id", "DELETE /professors/:id",
		"GET /students/", "POST /students/", "GET /students/:id", "PUT /students/:id", "DELETE /students/:id",
		"GET /projects/", "POST /projects/", "GET /projects/:id", "PUT /projects/:id", "DELETE /projects/:id",
		"GET /publications/", "POST /publications/", "GET /publications/:id", "PUT /publications/:id", "DELETE /publications/:id",
		"POST /projects/:id/professors", "DELETE /projects/:id/professors/:professorId",
		"POST /projects/:id/students", "DELETE /projects/:id/students/:studentId",
		"POST /publications/:id/authors",
		"DELETE /publications/:id/authors/professors/:professorId",
		"DELETE /publications/:id/authors/students/:studentId",
		"GET /departments/", "POST /departments/", "GET /departments/:id",
		"GET /journals/", "POST /journals/", "GET /journals/:id",
		"GET /research-areas/", "POST /research-areas/", "GET /research-areas/:id",
		"GET /analytics/department-funding/",
		"GET /analytics/departments-above-average/",
		"GET /analytics/average-publications/",
		"GET /analytics/inactive-professors/",
		"GET /analytics/small-departments/",
		"GET /analytics/unassigned-students/",
		"GET /analytics/yearly-trends/",
		"GET /analytics/department-publications/",
		"GET /analytics/system-stats/",
		"GET /analytics/department-total-funding/",
		"GET /analytics/professors-without-publications/",
		"GET /analytics/professor-publication-counts/",
		"GET /analytics/publications-by-citations/",
		"GET /directory/emails/",
		"GET /health",
	}

	for _, route := range want {
		if !registered[route] {
			t.Errorf("route %q is not registered", route)
		}
	}
	if len(registered) != len(want) {
		t.Errorf("registered %d routes, want %d", len(registered), len(want))
	}
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if got, want := rec.Body.String(), `{"status":"ok"}`; got != want {
		t.Errorf("body = %s, want %s", got, want)
	}
}
