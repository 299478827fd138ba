package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/apperrors"
)

func newStudentService() (StudentService, *fakeStudents, *fakeProfessors) {
	students := newFakeStudents()
	professors := newFakeProfessors()
	professors.add("Ada", "Lovelace", "ada@x.edu")
	return NewStudentService(students, professors, newFakeDepartments("CS"), newFakeAreas("AI")), students, professors
}

func graceRequest() dto.CreateStudentRequest {
	enrolled := dto.NewDate(time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC))
	return dto.CreateStudentRequest{
		FirstName:      "Grace",
		LastName:       "Hopper",
		Email:          "grace@x.edu",
		EnrollmentDate: &enrolled,
		Type:           "PhD",
		AdvisorID:      ptr(int64(1)),
		DepartmentID:   ptr(int64(1)),
		ResearchAreas:  []int64{1},
	}
}

func TestCreateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("created student is readable by id", func(t *testing.T) {
		service, _, _ := newStudentService()
		created, err := service.CreateStudent(ctx, graceRequest())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := service.GetStudentByID(ctx, created.StudentID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Email != "grace@x.edu" || got.Type != "PhD" {
			t.Errorf("unexpected student: %+v", got)
		}
		if got.EnrollmentDate.Format(dto.DateLayout) != "2024-09-01" {
			t.Errorf("unexpected enrollment date %v", got.EnrollmentDate)
		}
	})

	tests := []struct {
		name    string
		mutate  func(*dto.CreateStudentRequest)
		wantErr error
	}{
		{"unknown advisor", func(r *dto.CreateStudentRequest) { r.AdvisorID = ptr(int64(50)) }, apperrors.ErrInvalidAdvisorID},
		{"unknown department", func(r *dto.CreateStudentRequest) { r.DepartmentID = ptr(int64(50)) }, apperrors.ErrInvalidDepartmentID},
		{"unknown research area", func(r *dto.CreateStudentRequest) { r.ResearchAreas = []int64{50} }, apperrors.ErrInvalidResearchAreaID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, _ := newStudentService()
			req := graceRequest()
			tt.mutate(&req)
			if _, err := service.CreateStudent(ctx, req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}

	t.Run("duplicate email", func(t *testing.T) {
		service, students, _ := newStudentService()
		students.add("Other", "grace@x.edu")
		if _, err := service.CreateStudent(ctx, graceRequest()); !errors.Is(err, apperrors.ErrEmailAlreadyRegistered) {
			t.Fatalf("want email already registered, got %v", err)
		}
	})
}

func TestUpdateStudent(t *testing.T) {
	ctx := context.Background()

	t.Run("clearing the advisor", func(t *testing.T) {
		service, students, _ := newStudentService()
		s := students.add("Grace", "grace@x.edu")
		s.AdvisorID = ptr(int64(1))

		got, err := service.UpdateStudent(ctx, s.ID, dto.UpdateStudentRequest{AdvisorID: dto.Optional[int64]{Set: true}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.AdvisorID != nil {
			t.Errorf("want advisor cleared, got %v", *got.AdvisorID)
		}
	})

	tests := []struct {
		name    string
		id      int64
		req     dto.UpdateStudentRequest
		wantErr error
	}{
		{"missing student", 404, dto.UpdateStudentRequest{FirstName: dto.Some("X")}, apperrors.ErrStudentNotFound},
		{"unknown advisor", 1, dto.UpdateStudentRequest{AdvisorID: dto.Some(int64(9))}, apperrors.ErrInvalidAdvisorID},
		{"invalid type", 1, dto.UpdateStudentRequest{Type: dto.Some("Postdoc")}, apperrors.ErrValidationFailed},
		{"malformed email", 1, dto.UpdateStudentRequest{Email: dto.Some("not-an-email")}, apperrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, students, _ := newStudentService()
			students.add("Grace", "grace@x.edu")
			if _, err := service.UpdateStudent(ctx, tt.id, tt.req); !errors.Is(err, tt.wantErr) {
				t.Fatalf("want %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDeleteStudentTwice(t *testing.T) {
	ctx := context.Background()
	service, students, _ := newStudentService()
	s := students.add("Grace", "grace@x.edu")

	if err := service.DeleteStudent(ctx, s.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := service.DeleteStudent(ctx, s.ID); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Fatalf("second delete: want not found, got %v", err)
	}
}
