package repositories

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
)

// mustProjectWith creates p, filling the required columns the caller left empty
func mustProjectWith(t *testing.T, repos *Repositories, p models.Project) *models.Project {
	t.Helper()
	if p.Title == "" {
		p.Title = "Project"
	}
	if p.StartDate.IsZero() {
		p.StartDate = time.Date(2022, time.January, 1, 0, 0, 0, 0, time.UTC)
	}
	if p.Status == "" {
		p.Status = models.ProjectStatusActive
	}
	if p.FundingSource == "" {
		p.FundingSource = "NSF"
	}
	created, err := repos.ProjectRepository.Create(context.Background(), &p)
	if err != nil {
		t.Fatalf("create project: %v", err)
	}
	return created
}

func mustStudent(t *testing.T, repos *Repositories, first, email string) *models.GradStudent {
	t.Helper()
	s, err := repos.StudentRepository.Create(context.Background(), &models.GradStudent{
		FirstName: first, LastName: "Doe", Email: email, Type: models.StudentTypePhD,
		EnrollmentDate: time.Date(2023, time.September, 1, 0, 0, 0, 0, time.UTC),
	}, nil)
	if err != nil {
		t.Fatalf("create student %s: %v", email, err)
	}
	return s
}

func mustPublication(t *testing.T, repos *Repositories, title string, year, citations int) *models.Publication {
	t.Helper()
	p, err := repos.PublicationRepository.Create(context.Background(), &models.Publication{
		Title: title, Year: year, Citations: citations,
	})
	if err != nil {
		t.Fatalf("create publication %s: %v", title, err)
	}
	return p
}

func mustProfessorAuthor(t *testing.T, repos *Repositories, publicationID, professorID int64, order int) {
	t.Helper()
	if err := repos.AssociationRepository.AddProfessorAuthor(context.Background(), models.Authorship{
		PublicationID: publicationID, AuthorID: professorID, AuthorOrder: order,
	}); err != nil {
		t.Fatalf("add professor author: %v", err)
	}
}

func mustStudentAuthor(t *testing.T, repos *Repositories, publicationID, studentID int64, order int) {
	t.Helper()
	if err := repos.AssociationRepository.AddStudentAuthor(context.Background(), models.Authorship{
		PublicationID: publicationID, AuthorID: studentID, AuthorOrder: order,
	}); err != nil {
		t.Fatalf("add student author: %v", err)
	}
}

func date(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func TestDepartmentsAboveAverageIgnoresUnassignedProjects(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	lead := mustProfessor(t, repos, "Lead", "lead@x.edu", nil)
	low := mustDepartment(t, repos, "Low")
	high := mustDepartment(t, repos, "High")
	mustProject(t, repos, lead.ID, low.ID, models.ProjectStatusActive, 10)
	mustProject(t, repos, lead.ID, high.ID, models.ProjectStatusActive, 20)
	// Counted as its own group this would lift the baseline to 40.
	mustProjectWith(t, repos, models.Project{FundingAmount: ptr(90.0), LeadProfessorID: &lead.ID})

	got, err := repos.AnalyticsRepository.DepartmentsAboveAverageFunding(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []models.DepartmentFunding{{Department: "High", Funding: 20}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestDepartmentAverageFundingRounds(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	cs := mustDepartment(t, repos, "CS")
	math := mustDepartment(t, repos, "Math")
	for _, amount := range []float64{10, 20, 20} {
		mustProjectWith(t, repos, models.Project{FundingAmount: ptr(amount), DepartmentID: &cs.ID})
	}
	mustProjectWith(t, repos, models.Project{FundingAmount: ptr(7.5), DepartmentID: &math.ID})

	got, err := repos.AnalyticsRepository.DepartmentAverageFunding(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []models.DepartmentFunding{
		{Department: "CS", Funding: 16.67},
		{Department: "Math", Funding: 7.5},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestDepartmentTotalFunding(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	low := mustDepartment(t, repos, "Low")
	high := mustDepartment(t, repos, "High")
	mustDepartment(t, repos, "Unfunded")
	mustProjectWith(t, repos, models.Project{FundingAmount: ptr(10.0), DepartmentID: &low.ID})
	mustProjectWith(t, repos, models.Project{FundingAmount: ptr(5.25), DepartmentID: &low.ID})
	mustProjectWith(t, repos, models.Project{FundingAmount: ptr(100.0), DepartmentID: &high.ID})
	mustProjectWith(t, repos, models.Project{FundingAmount: ptr(1000.0)})

	got, err := repos.AnalyticsRepository.DepartmentTotalFunding(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []models.DepartmentFunding{
		{Department: "High", Funding: 100},
		{Department: "Low", Funding: 15.25},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestAveragePublicationsPerProfessor(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	t.Run("no authors", func(t *testing.T) {
		got, err := repos.AnalyticsRepository.AveragePublicationsPerProfessor(ctx)
		if err != nil || got != 0 {
			t.Errorf("want 0, got %v (err %v)", got, err)
		}
	})

	t.Run("mean over authoring professors", func(t *testing.T) {
		a := mustProfessor(t, repos, "A", "a@x.edu", nil)
		b := mustProfessor(t, repos, "B", "b@x.edu", nil)
		c := mustProfessor(t, repos, "C", "c@x.edu", nil)
		mustProfessor(t, repos, "Quiet", "quiet@x.edu", nil)

		first := mustPublication(t, repos, "First", 2023, 0)
		second := mustPublication(t, repos, "Second", 2024, 0)
		mustProfessorAuthor(t, repos, first.ID, a.ID, 1)
		mustProfessorAuthor(t, repos, second.ID, a.ID, 1)
		mustProfessorAuthor(t, repos, first.ID, b.ID, 2)
		mustProfessorAuthor(t, repos, second.ID, c.ID, 2)

		got, err := repos.AnalyticsRepository.AveragePublicationsPerProfessor(ctx)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if got != 1.33 {
			t.Errorf("want 1.33, got %v", got)
		}
	})
}

func TestSmallDepartments(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	big := mustDepartment(t, repos, "Big")
	small := mustDepartment(t, repos, "Small")
	solo := mustDepartment(t, repos, "Solo")
	mustDepartment(t, repos, "Empty")
	for i, d := range []int64{big.ID, big.ID, big.ID, small.ID, small.ID, solo.ID} {
		mustProfessor(t, repos, "P", string(rune('a'+i))+"@x.edu", &d)
	}

	got, err := repos.AnalyticsRepository.SmallDepartments(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []models.DepartmentProfessorCount{
		{Department: "Small", ProfessorCount: 2},
		{Department: "Solo", ProfessorCount: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestDirectory(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	mustProfessor(t, repos, "Bob", "bob@x.edu", nil)
	mustProfessor(t, repos, "Ada", "ada@x.edu", nil)
	mustStudent(t, repos, "Cy", "cy@x.edu")

	got, err := repos.AnalyticsRepository.Directory(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []models.DirectoryEntry{
		{Name: "Ada Test (Professor)", Email: "ada@x.edu"},
		{Name: "Bob Test (Professor)", Email: "bob@x.edu"},
		{Name: "Cy Doe (Student)", Email: "cy@x.edu"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestYearlyTrends(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		got, err := repos.AnalyticsRepository.YearlyTrends(ctx)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		if got.Projects == nil || got.Publications == nil || len(got.Projects)+len(got.Publications) != 0 {
			t.Errorf("want two empty maps, got %+v", got)
		}
	})

	t.Run("groups by year", func(t *testing.T) {
		completed := models.ProjectStatusCompleted
		mustProjectWith(t, repos, models.Project{Status: completed, EndDate: date(2023, time.March, 1)})
		mustProjectWith(t, repos, models.Project{Status: completed, EndDate: date(2023, time.December, 31)})
		mustProjectWith(t, repos, models.Project{Status: completed, EndDate: date(2024, time.June, 30)})
		mustProjectWith(t, repos, models.Project{Status: completed})
		mustProjectWith(t, repos, models.Project{EndDate: date(2024, time.January, 1)})

		mustPublication(t, repos, "Old", 2022, 0)
		mustPublication(t, repos, "New", 2024, 0)
		mustPublication(t, repos, "Newer", 2024, 0)

		got, err := repos.AnalyticsRepository.YearlyTrends(ctx)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		want := models.YearlyTrends{
			Projects:     map[int]int64{2023: 2, 2024: 1},
			Publications: map[int]int64{2022: 1, 2024: 2},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("want %+v, got %+v", want, got)
		}
	})
}

func TestDepartmentPublicationCounts(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	cs := mustDepartment(t, repos, "CS")
	math := mustDepartment(t, repos, "Math")
	quiet := mustDepartment(t, repos, "Quiet")
	mustDepartment(t, repos, "Empty")

	a := mustProfessor(t, repos, "A", "a@x.edu", &cs.ID)
	b := mustProfessor(t, repos, "B", "b@x.edu", &cs.ID)
	c := mustProfessor(t, repos, "C", "c@x.edu", &math.ID)
	mustProfessor(t, repos, "D", "d@x.edu", &quiet.ID)
	student := mustStudent(t, repos, "S", "s@x.edu")

	shared := mustPublication(t, repos, "Shared", 2024, 0)
	mustProfessorAuthor(t, repos, shared.ID, a.ID, 1)
	mustProfessorAuthor(t, repos, shared.ID, b.ID, 2)
	solo := mustPublication(t, repos, "Solo", 2024, 0)
	mustProfessorAuthor(t, repos, solo.ID, a.ID, 1)
	mixed := mustPublication(t, repos, "Mixed", 2024, 0)
	mustProfessorAuthor(t, repos, mixed.ID, c.ID, 1)
	mustStudentAuthor(t, repos, mixed.ID, student.ID, 2)
	studentOnly := mustPublication(t, repos, "Student only", 2024, 0)
	mustStudentAuthor(t, repos, studentOnly.ID, student.ID, 1)

	got, err := repos.AnalyticsRepository.DepartmentPublicationCounts(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []models.DepartmentPublicationCount{
		{Department: "CS", PublicationCount: 2},
		{Department: "Math", PublicationCount: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestSystemStats(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		got, err := repos.AnalyticsRepository.SystemStats(ctx)
		if err != nil || got != (models.SystemStats{}) {
			t.Errorf("want zero stats, got %+v (err %v)", got, err)
		}
	})

	t.Run("totals", func(t *testing.T) {
		mustProfessor(t, repos, "P", "p@x.edu", nil)
		mustStudent(t, repos, "S", "s@x.edu")
		mustStudent(t, repos, "T", "t@x.edu")
		mustPublication(t, repos, "A", 2024, 5)
		mustPublication(t, repos, "B", 2024, 7)
		mustProjectWith(t, repos, models.Project{})
		mustProjectWith(t, repos, models.Project{Status: models.ProjectStatusCompleted})

		got, err := repos.AnalyticsRepository.SystemStats(ctx)
		if err != nil {
			t.Fatalf("query: %v", err)
		}
		want := models.SystemStats{TotalStudents: 2, TotalProfessors: 1, TotalCitations: 12, TotalActiveProjects: 1}
		if got != want {
			t.Errorf("want %+v, got %+v", want, got)
		}
	})
}

func TestProfessorsWithoutPublications(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	cs := mustDepartment(t, repos, "CS")
	author := mustProfessor(t, repos, "Author", "author@x.edu", &cs.ID)
	first := mustProfessor(t, repos, "First", "first@x.edu", &cs.ID)
	second := mustProfessor(t, repos, "Second", "second@x.edu", nil)
	pub := mustPublication(t, repos, "Paper", 2024, 0)
	mustProfessorAuthor(t, repos, pub.ID, author.ID, 1)

	got, err := repos.AnalyticsRepository.ProfessorsWithoutPublications(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) != 2 || got[0].ID != first.ID || got[1].ID != second.ID {
		t.Fatalf("want first and second, got %+v", got)
	}
	if got[0].Department == nil || got[0].Department.Name != "CS" || got[1].Department != nil {
		t.Errorf("departments: %+v, %+v", got[0].Department, got[1].Department)
	}
}

func TestProfessorPublicationCountsIncludesZero(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	cs := mustDepartment(t, repos, "CS")
	prolific := mustProfessor(t, repos, "Prolific", "prolific@x.edu", &cs.ID)
	idle := mustProfessor(t, repos, "Idle", "idle@x.edu", nil)
	occasional := mustProfessor(t, repos, "Occasional", "occasional@x.edu", &cs.ID)

	for i, title := range []string{"One", "Two"} {
		p := mustPublication(t, repos, title, 2024, 0)
		mustProfessorAuthor(t, repos, p.ID, prolific.ID, 1)
		if i == 0 {
			mustProfessorAuthor(t, repos, p.ID, occasional.ID, 2)
		}
	}

	got, err := repos.AnalyticsRepository.ProfessorPublicationCounts(ctx)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	want := []models.ProfessorPublicationCount{
		{ProfessorID: prolific.ID, FirstName: "Prolific", LastName: "Test", PublicationCount: 2, Department: ptr("CS")},
		{ProfessorID: occasional.ID, FirstName: "Occasional", LastName: "Test", PublicationCount: 1, Department: ptr("CS")},
		{ProfessorID: idle.ID, FirstName: "Idle", LastName: "Test", PublicationCount: 0},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("want %+v, got %+v", want, got)
	}
}

func TestPublicationsByCitations(t *testing.T) {
	repos := testRepositories(t)
	ctx := context.Background()

	low := mustPublication(t, repos, "Low", 2020, 5)
	top := mustPublication(t, repos, "Top", 2021, 50)
	tied := mustPublication(t, repos, "Tied", 2022, 5)
	none := mustPublication(t, repos, "None", 2023, 0)

	ids := func(pubs []*models.Publication) []int64 {
		out := make([]int64, 0, len(pubs))
		for _, p := range pubs {
			out = append(out, p.ID)
		}
		return out
	}

	theory := func(page helpers.Page, want []int64) func(t *testing.T) {
		return func(t *testing.T) {
			got, err := repos.AnalyticsRepository.PublicationsByCitations(ctx, page)
			if err != nil {
				t.Fatalf("query: %v", err)
			}
			if !reflect.DeepEqual(ids(got), want) {
				t.Errorf("want ids %v, got %v", want, ids(got))
			}
		}
	}

	t.Run("all", theory(helpers.NewPage(0, 10), []int64{top.ID, low.ID, tied.ID, none.ID}))
	t.Run("window", theory(helpers.NewPage(1, 2), []int64{low.ID, tied.ID}))
	t.Run("past the end", theory(helpers.NewPage(10, 2), []int64{}))
}
