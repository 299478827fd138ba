package services

import (
	"context"

	"github.com/yigit/researchdesk/internal/app/models/dto"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// AnalyticsService exposes the read-only department reports
type AnalyticsService interface {
	DepartmentAverageFunding(ctx context.Context) ([]dto.DepartmentFundingResponse, error)
	DepartmentsAboveAverageFunding(ctx context.Context) ([]dto.DepartmentFundingResponse, error)
	DepartmentTotalFunding(ctx context.Context) ([]dto.DepartmentTotalFundingResponse, error)
	AveragePublicationsPerProfessor(ctx context.Context) (*dto.AveragePublicationsResponse, error)
	InactiveProfessors(ctx context.Context) ([]dto.InactiveProfessorResponse, error)
	SmallDepartments(ctx context.Context) ([]dto.DepartmentCountResponse, error)
	EmailDirectory(ctx context.Context) ([]dto.EmailEntryResponse, error)
	UnassignedStudents(ctx context.Context) ([]dto.UnassignedStudentResponse, error)
	YearlyTrends(ctx context.Context) (*dto.YearlyTrendsResponse, error)
	DepartmentPublicationCounts(ctx context.Context) ([]dto.DepartmentPublicationsResponse, error)
	SystemStats(ctx context.Context) (*dto.SystemStatsResponse, error)
	ProfessorsWithoutPublications(ctx context.Context) ([]dto.InactiveProfessorResponse, error)
	ProfessorPublicationCounts(ctx context.Context) ([]dto.ProfessorPublicationCountResponse, error)
	PublicationsByCitations(ctx context.Context, page helpers.Page) ([]dto.PublicationResponse, error)
}

type analyticsServiceImpl struct {
	store AnalyticsStore
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(store AnalyticsStore) AnalyticsService {
	return &analyticsServiceImpl{store: store}
}

func (s *analyticsServiceImpl) DepartmentAverageFunding(ctx context.Context) ([]dto.DepartmentFundingResponse, error) {
	rows, err := s.store.DepartmentAverageFunding(ctx)
	if err != nil {
		return nil, storeError("department average funding", err)
	}
	return dto.NewDepartmentFundingResponses(rows), nil
}

func (s *analyticsServiceImpl) DepartmentsAboveAverageFunding(ctx context.Context) ([]dto.DepartmentFundingResponse, error) {
	rows, err := s.store.DepartmentsAboveAverageFunding(ctx)
	if err != nil {
		return nil, storeError("departments above average funding", err)
	}
	return dto.NewDepartmentFundingResponses(rows), nil
}

func (s *analyticsServiceImpl) DepartmentTotalFunding(ctx context.Context) ([]dto.DepartmentTotalFundingResponse, error) {
	rows, err := s.store.DepartmentTotalFunding(ctx)
	if err != nil {
		return nil, storeError("department total funding", err)
	}
	return dto.NewDepartmentTotalFundingResponses(rows), nil
}

func (s *analyticsServiceImpl) AveragePublicationsPerProfessor(ctx context.Context) (*dto.AveragePublicationsResponse, error) {
	avg, err := s.store.AveragePublicationsPerProfessor(ctx)
	if err != nil {
		return nil, storeError("average publications", err)
	}
	return &dto.AveragePublicationsResponse{Average: avg}, nil
}

func (s *analyticsServiceImpl) InactiveProfessors(ctx context.Context) ([]dto.InactiveProfessorResponse, error) {
	professors, err := s.store.InactiveProfessors(ctx)
	if err != nil {
		return nil, storeError("inactive professors", err)
	}
	return dto.NewInactiveProfessorResponses(professors), nil
}

func (s *analyticsServiceImpl) SmallDepartments(ctx context.Context) ([]dto.DepartmentCountResponse, error) {
	rows, err := s.store.SmallDepartments(ctx)
	if err != nil {
		return nil, storeError("small departments", err)
	}
	return dto.NewDepartmentCountResponses(rows), nil
}

func (s *analyticsServiceImpl) EmailDirectory(ctx context.Context) ([]dto.EmailEntryResponse, error) {
	rows, err := s.store.Directory(ctx)
	if err != nil {
		return nil, storeError("email directory", err)
	}
	return dto.NewEmailEntryResponses(rows), nil
}

func (s *analyticsServiceImpl) UnassignedStudents(ctx context.Context) ([]dto.UnassignedStudentResponse, error) {
	students, err := s.store.UnassignedStudents(ctx)
	if err != nil {
		return nil, storeError("unassigned students", err)
	}
	return dto.NewUnassignedStudentResponses(students), nil
}

func (s *analyticsServiceImpl) YearlyTrends(ctx context.Context) (*dto.YearlyTrendsResponse, error) {
	trends, err := s.store.YearlyTrends(ctx)
	if err != nil {
		return nil, storeError("yearly trends", err)
	}
	resp := dto.NewYearlyTrendsResponse(trends)
	return &resp, nil
}

func (s *analyticsServiceImpl) DepartmentPublicationCounts(ctx context.Context) ([]dto.DepartmentPublicationsResponse, error) {
	rows, err := s.store.DepartmentPublicationCounts(ctx)
	if err != nil {
		return nil, storeError("department publications", err)
	}
	return dto.NewDepartmentPublicationsResponses(rows), nil
}

func (s *analyticsServiceImpl) SystemStats(ctx context.Context) (*dto.SystemStatsResponse, error) {
	stats, err := s.store.SystemStats(ctx)
	if err != nil {
		return nil, storeError("system stats", err)
	}
	resp := dto.NewSystemStatsResponse(stats)
	return &resp, nil
}

func (s *analyticsServiceImpl) ProfessorsWithoutPublications(ctx context.Context) ([]dto.InactiveProfessorResponse, error) {
	professors, err := s.store.ProfessorsWithoutPublications(ctx)
	if err != nil {
		return nil, storeError("professors without publications", err)
	}
	return dto.NewInactiveProfessorResponses(professors), nil
}

func (s *analyticsServiceImpl) ProfessorPublicationCounts(ctx context.Context) ([]dto.ProfessorPublicationCountResponse, error) {
	rows, err := s.store.ProfessorPublicationCounts(ctx)
	if err != nil {
		return nil, storeError("professor publication counts", err)
	}
	return dto.NewProfessorPublicationCountResponses(rows), nil
}

func (s *analyticsServiceImpl) PublicationsByCitations(ctx context.Context, page helpers.Page) ([]dto.PublicationResponse, error) {
	publications, err := s.store.PublicationsByCitations(ctx, page)
	if err != nil {
		return nil, storeError("publications by citations", err)
	}
	return dto.NewPublicationResponses(publications), nil
}
