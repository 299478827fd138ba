package repositories

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/yigit/researchdesk/internal/app/models"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateStatementKeepsColumnOrder(t *testing.T) {
	patch := models.ProfessorPatch{
		LastName:     ptr("Byron"),
		Phone:        models.Clear[string](),
		DepartmentID: models.Assign[int64](2),
	}

	sql, args, err := updateStatement("professor", "professor_id", 7, professorAssignments(patch))
	if err != nil {
		t.Fatalf("build: %v", err)
	}

	for _, want := range []string{
		"UPDATE professor SET ",
		"last_name = $1, phone = $2, department_id = $3",
		"WHERE professor_id = $4",
	} {
		if !strings.Contains(sql, want) {
			t.Errorf("%q missing from %q", want, sql)
		}
	}

	wantArgs := []any{"Byron", nil, int64(2), int64(7)}
	if !reflect.DeepEqual(args, wantArgs) {
		t.Errorf("want args %#v, got %#v", wantArgs, args)
	}
}

func TestAssignmentsSkipAbsentFields(t *testing.T) {
	theory := func(as []assignment, want []string) func(t *testing.T) {
		return func(t *testing.T) {
			got := make([]string, 0, len(as))
			for _, a := range as {
				got = append(got, a.column)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("want columns %v, got %v", want, got)
			}
		}
	}

	status := models.ProjectStatusCompleted
	end := time.Date(2024, time.June, 30, 0, 0, 0, 0, time.UTC)
	phd := models.StudentTypePhD

	t.Run("empty professor patch", theory(professorAssignments(models.ProfessorPatch{}), []string{}))
	t.Run("research areas are not columns", theory(
		professorAssignments(models.ProfessorPatch{ResearchAreaIDs: &[]int64{1}}), []string{}))
	t.Run("student", theory(
		studentAssignments(models.StudentPatch{Type: &phd, AdvisorID: models.Clear[int64]()}),
		[]string{"type", "advisor_id"}))
	t.Run("project", theory(
		projectAssignments(models.ProjectPatch{Status: &status, EndDate: models.Assign(end)}),
		[]string{"end_date", "status"}))
	t.Run("publication", theory(
		publicationAssignments(models.PublicationPatch{Citations: ptr(3), Abstract: models.Clear[string]()}),
		[]string{"citations", "abstract"}))
}

func TestStudentAssignmentsStoreTypeAsText(t *testing.T) {
	masters := models.StudentTypeMasters
	as := studentAssignments(models.StudentPatch{Type: &masters})
	if len(as) != 1 || as[0].value != "Masters" {
		t.Fatalf("got %#v", as)
	}
}

func TestInsertStatements(t *testing.T) {
	sql, args, err := professorInsert(&models.Professor{FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.edu", DepartmentID: ptr[int64](1)})
	if err != nil {
		t.Fatalf("professor insert: %v", err)
	}
	if !strings.HasPrefix(sql, "INSERT INTO professor") || !strings.HasSuffix(sql, "RETURNING professor_id") {
		t.Errorf("professor insert: %q", sql)
	}
	if len(args) != 8 || args[0] != "Ada" || args[2] != "ada@x.edu" {
		t.Errorf("professor args: %#v", args)
	}

	sql, args, err = projectInsert(&models.Project{Title: "Engines", Status: models.ProjectStatusActive, FundingSource: "NSF"})
	if err != nil {
		t.Fatalf("project insert: %v", err)
	}
	if !strings.HasSuffix(sql, "RETURNING project_id") || len(args) != 9 || args[3] != "Active" {
		t.Errorf("project insert: %q %#v", sql, args)
	}

	sql, args, err = publicationInsert(&models.Publication{Title: "Notes", Year: 1843})
	if err != nil {
		t.Fatalf("publication insert: %v", err)
	}
	if !strings.HasSuffix(sql, "RETURNING publication_id") || len(args) != 8 || args[6] != 0 {
		t.Errorf("publication insert: %q %#v", sql, args)
	}

	_, args, err = studentInsert(&models.GradStudent{FirstName: "Grace", Type: models.StudentTypePhD})
	if err != nil {
		t.Fatalf("student insert: %v", err)
	}
	if args[4] != "PhD" {
		t.Errorf("student type arg: %#v", args[4])
	}
}

func TestUpsertStatement(t *testing.T) {
	sql, args, err := upsertStatement("professor_authors", "publication_id", "professor_id", "author_order", 3, 9, 2)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if !strings.HasSuffix(sql, "ON CONFLICT (publication_id, professor_id) DO UPDATE SET author_order = EXCLUDED.author_order") {
		t.Errorf("conflict clause: %q", sql)
	}
	if want := []any{int64(3), int64(9), 2}; !reflect.DeepEqual(args, want) {
		t.Errorf("want %#v, got %#v", want, args)
	}
}

func TestSelectsJoinReferences(t *testing.T) {
	theory := func(sql string, wants ...string) func(t *testing.T) {
		return func(t *testing.T) {
			for _, want := range wants {
				if !strings.Contains(sql, want) {
					t.Errorf("%q missing from %q", want, sql)
				}
			}
		}
	}

	professors, _, _ := professorSelect().ToSql()
	students, _, _ := studentSelect().ToSql()
	projects, _, _ := projectSelect().ToSql()
	publications, _, _ := publicationSelect().ToSql()

	t.Run("professor", theory(professors, "LEFT JOIN department d ON d.department_id = p.department_id"))
	t.Run("student", theory(students,
		"LEFT JOIN professor a ON a.professor_id = s.advisor_id",
		"LEFT JOIN department d ON d.department_id = s.department_id"))
	t.Run("project", theory(projects,
		"pr.funding_amount::float8",
		"LEFT JOIN professor lp ON lp.professor_id = pr.lead_professor_id"))
	t.Run("publication", theory(publications, "LEFT JOIN journal j ON j.journal_id = pub.journal_id"))
}

func TestOwnerIDs(t *testing.T) {
	ps := []*models.Professor{{ID: 3}, {ID: 1}}
	got := ownerIDs(ps, func(p *models.Professor) int64 { return p.ID })
	if want := []int64{3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("want %v, got %v", want, got)
	}
}

func TestAnalyticsStatements(t *testing.T) {
	theory := func(sql string, wants ...string) func(t *testing.T) {
		return func(t *testing.T) {
			for _, want := range wants {
				if !strings.Contains(sql, want) {
					t.Errorf("%q missing from %q", want, sql)
				}
			}
		}
	}

	t.Run("above average skips projects without a department",
		theory(departmentsAboveAvgFundingSQL, "WHERE department_id IS NOT NULL"))
	t.Run("department publications count distinct papers",
		theory(departmentPublicationsSQL, "COUNT(DISTINCT pub.publication_id)", "JOIN professor_authors pa"))
	t.Run("small departments", theory(smallDepartmentsSQL, "HAVING COUNT(p.professor_id) < 3"))
	t.Run("directory is ordered", theory(directorySQL, "UNION", "ORDER BY name, email"))
	t.Run("professor counts keep zero", theory(professorPublicationCountsSQL,
		"LEFT JOIN (", "COALESCE(pc.pub_count, 0)", "ORDER BY publication_count DESC"))
	t.Run("average publications defaults to zero",
		theory(avgPublicationsPerProfessorSQL, "COALESCE(ROUND(AVG(pub_count), 2), 0)"))
}
