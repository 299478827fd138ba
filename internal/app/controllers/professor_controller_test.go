package controllers_test

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/yigit/researchdesk/internal/app/controllers"
	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/app/services"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// stubProfessorService serves a single professor with id 1 and records requests
type stubProfessorService struct {
	services.ProfessorService
	created *dto.CreateProfessorRequest
	updated *dto.UpdateProfessorRequest
	page    helpers.Page
	err     error
}

func (s *stubProfessorService) ada() *dto.ProfessorResponse {
	resp := dto.NewProfessorResponse(&models.Professor{
		ID: 1, FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.edu",
		DepartmentID: func() *int64 { id := int64(1); return &id }(),
		Department:   &models.Department{ID: 1, Name: "CS"},
	})
	return &resp
}

func (s *stubProfessorService) CreateProfessor(_ context.Context, req dto.CreateProfessorRequest) (*dto.ProfessorResponse, error) {
	s.created = &req
	if s.err != nil {
		return nil, s.err
	}
	return s.ada(), nil
}

func (s *stubProfessorService) GetProfessorByID(_ context.Context, id int64) (*dto.ProfessorResponse, error) {
	if id != 1 {
		return nil, apperrors.ErrProfessorNotFound
	}
	return s.ada(), nil
}

func (s *stubProfessorService) GetAllProfessors(_ context.Context, page helpers.Page) ([]dto.ProfessorResponse, error) {
	s.page = page
	return []dto.ProfessorResponse{*s.ada()}, nil
}

func (s *stubProfessorService) UpdateProfessor(_ context.Context, id int64, req dto.UpdateProfessorRequest) (*dto.ProfessorResponse, error) {
	s.updated = &req
	if id != 1 {
		return nil, apperrors.ErrProfessorNotFound
	}
	return s.ada(), nil
}

func (s *stubProfessorService) DeleteProfessor(_ context.Context, id int64) error {
	if id != 1 {
		return apperrors.ErrProfessorNotFound
	}
	return nil
}

func newProfessorRouter(service services.ProfessorService) http.Handler {
	c := controllers.NewProfessorController(service)
	router := newEngine()
	router.GET("/professors/", c.GetAllProfessors)
	router.POST("/professors/", c.CreateProfessor)
	router.GET("/professors/:id", c.GetProfessorByID)
	router.PUT("/professors/:id", c.UpdateProfessor)
	router.DELETE("/professors/:id", c.DeleteProfessor)
	return router
}

func TestCreateProfessorHandler(t *testing.T) {
	t.Run("returns the professor with department name", func(t *testing.T) {
		service := &stubProfessorService{}
		rec := serve(t, newProfessorRouter(service), http.MethodPost, "/professors/",
			`{"first_name":"Ada","last_name":"Lovelace","email":"ada@x.edu","department_id":1}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
		}
		body := decode(t, rec)
		if body["department"] != "CS" || body["professor_id"] != float64(1) {
			t.Errorf("unexpected body %v", body)
		}
		if areas, ok := body["research_areas"].([]any); !ok || len(areas) != 0 {
			t.Errorf("research_areas = %v, want []", body["research_areas"])
		}
		if service.created == nil || service.created.Email != "ada@x.edu" {
			t.Errorf("service got %+v", service.created)
		}
	})

	tests := []struct {
		name   string
		body   string
		detail string
	}{
		{"missing body", "", "Request body is required"},
		{"malformed json", `{"first_name":`, ""},
		{"missing email", `{"first_name":"Ada","last_name":"Lovelace"}`, "email is required"},
		{"invalid email", `{"first_name":"Ada","last_name":"Lovelace","email":"nope"}`, "email must be a valid email address"},
		{"blank first name", `{"first_name":"  ","last_name":"Lovelace","email":"ada@x.edu"}`, "first_name cannot be empty"},
		{"wrong type", `{"first_name":"Ada","last_name":"Lovelace","email":"ada@x.edu","department_id":"CS"}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubProfessorService{}
			rec := serve(t, newProfessorRouter(service), http.MethodPost, "/professors/", tt.body)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400 (%s)", rec.Code, rec.Body.String())
			}
			detail, _ := decode(t, rec)["detail"].(string)
			if detail == "" {
				t.Fatal("want a detail message")
			}
			if tt.detail != "" && detail != tt.detail {
				t.Errorf("detail = %q, want %q", detail, tt.detail)
			}
			if service.created != nil {
				t.Error("service must not be called for an invalid body")
			}
		})
	}

	t.Run("service validation error is a 400", func(t *testing.T) {
		service := &stubProfessorService{err: apperrors.ErrEmailAlreadyRegistered}
		rec := serve(t, newProfessorRouter(service), http.MethodPost, "/professors/",
			`{"first_name":"Ada","last_name":"Lovelace","email":"ada@x.edu"}`)
		expectDetail(t, rec, http.StatusBadRequest, "Email already registered")
	})
}

func TestGetProfessorHandler(t *testing.T) {
	router := newProfessorRouter(&stubProfessorService{})

	tests := []struct {
		name   string
		path   string
		status int
		detail string
	}{
		{"unknown id", "/professors/999", http.StatusNotFound, "Professor not found"},
		{"non numeric id", "/professors/abc", http.StatusBadRequest, "Invalid professor ID"},
		{"zero id", "/professors/0", http.StatusBadRequest, "Invalid professor ID"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectDetail(t, serve(t, router, http.MethodGet, tt.path, ""), tt.status, tt.detail)
		})
	}

	t.Run("existing id", func(t *testing.T) {
		rec := serve(t, router, http.MethodGet, "/professors/1", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		if !strings.Contains(rec.Body.String(), `"email":"ada@x.edu"`) {
			t.Errorf("unexpected body %s", rec.Body.String())
		}
	})
}

func TestListProfessorsHandlerPagination(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  helpers.Page
	}{
		{"defaults", "", helpers.Page{Skip: 0, Limit: helpers.DefaultLimit}},
		{"capped limit", "?skip=10&limit=5000", helpers.Page{Skip: 10, Limit: helpers.MaxLimit}},
		{"zero limit uses the default", "?limit=0", helpers.Page{Skip: 0, Limit: helpers.DefaultLimit}},
		{"negative values", "?skip=-4&limit=-1", helpers.Page{Skip: 0, Limit: helpers.DefaultLimit}},
		{"not integers", "?skip=x&limit=y", helpers.Page{Skip: 0, Limit: helpers.DefaultLimit}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &stubProfessorService{}
			rec := serve(t, newProfessorRouter(service), http.MethodGet, "/professors/"+tt.query, "")
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", rec.Code)
			}
			if service.page != tt.want {
				t.Errorf("page = %+v, want %+v", service.page, tt.want)
			}
		})
	}
}

func TestUpdateProfessorHandler(t *testing.T) {
	t.Run("explicit null reaches the service as a present field", func(t *testing.T) {
		service := &stubProfessorService{}
		rec := serve(t, newProfessorRouter(service), http.MethodPut, "/professors/1", `{"title":null,"office":"B12"}`)
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 (%s)", rec.Code, rec.Body.String())
		}
		got := service.updated
		if got == nil || !got.Title.Set || got.Title.Value != nil {
			t.Fatalf("title = %+v, want present null", got)
		}
		if !got.Office.Set || *got.Office.Value != "B12" {
			t.Errorf("office = %+v, want B12", got.Office)
		}
		if got.Email.Set {
			t.Error("absent email must not be marked present")
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		rec := serve(t, newProfessorRouter(&stubProfessorService{}), http.MethodPut, "/professors/7", `{"title":"Dean"}`)
		expectDetail(t, rec, http.StatusNotFound, "Professor not found")
	})
}

func TestDeleteProfessorHandler(t *testing.T) {
	router := newProfessorRouter(&stubProfessorService{})

	rec := serve(t, router, http.MethodDelete, "/professors/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if msg := decode(t, rec)["message"]; msg != "Professor deleted successfully" {
		t.Errorf("message = %q", msg)
	}

	expectDetail(t, serve(t, router, http.MethodDelete, "/professors/2", ""), http.StatusNotFound, "Professor not found")
}
