package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/db"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

const (
	// Departments without projects drop out of the inner join.
	departmentAvgFundingSQL = `
		SELECT d.name, COALESCE(ROUND(AVG(p.funding_amount), 2), 0)::float8 AS avg_funding
		FROM department d
		JOIN project p ON p.department_id = d.department_id
		GROUP BY d.department_id, d.name
		ORDER BY d.department_id`

	// Projects without a department are not part of the baseline average.
	departmentsAboveAvgFundingSQL = `
		WITH dept_funding AS (
			SELECT department_id, SUM(funding_amount) AS total_funding
			FROM project
			WHERE department_id IS NOT NULL
			GROUP BY department_id
		)
		SELECT d.name, df.total_funding::float8
		FROM department d
		JOIN dept_funding df ON df.department_id = d.department_id
		WHERE df.total_funding > (SELECT AVG(total_funding) FROM dept_funding)
		ORDER BY df.total_funding DESC, d.department_id`

	avgPublicationsPerProfessorSQL = `
		SELECT COALESCE(ROUND(AVG(pub_count), 2), 0)::float8
		FROM (
			SELECT professor_id, COUNT(*) AS pub_count
			FROM professor_authors
			GROUP BY professor_id
		) prof_pubs`

	smallDepartmentsSQL = `
		SELECT d.name, COUNT(p.professor_id) AS num_professors
		FROM department d
		JOIN professor p ON p.department_id = d.department_id
		GROUP BY d.department_id, d.name
		HAVING COUNT(p.professor_id) < 3
		ORDER BY d.department_id`

	directorySQL = `
		SELECT CONCAT(first_name, ' ', last_name, ' (Professor)') AS name, email FROM professor
		UNION
		SELECT CONCAT(first_name, ' ', last_name, ' (Student)') AS name, email FROM gradstudent
		ORDER BY name, email`

	completedProjectsByYearSQL = `
		SELECT EXTRACT(YEAR FROM end_date)::int AS year, COUNT(*)
		FROM project
		WHERE status = 'Completed' AND end_date IS NOT NULL
		GROUP BY 1
		ORDER BY 1`

	publicationsByYearSQL = `
		SELECT year, COUNT(*)
		FROM publication
		GROUP BY year
		ORDER BY year`

	// Only professor-authored publications count towards a department. A paper
	// co-authored by two professors of the same department counts once.
	departmentPublicationsSQL = `
		SELECT d.name, COUNT(DISTINCT pub.publication_id) AS pub_count
		FROM department d
		JOIN professor p ON p.department_id = d.department_id
		JOIN professor_authors pa ON pa.professor_id = p.professor_id
		JOIN publication pub ON pub.publication_id = pa.publication_id
		GROUP BY d.department_id, d.name
		ORDER BY d.department_id`

	systemStatsSQL = `
		SELECT
			(SELECT COUNT(*) FROM gradstudent),
			(SELECT COUNT(*) FROM professor),
			(SELECT COALESCE(SUM(citations), 0) FROM publication),
			(SELECT COUNT(*) FROM project WHERE status = 'Active')`

	departmentTotalFundingSQL = `
		SELECT d.name, COALESCE(ROUND(SUM(p.funding_amount), 2), 0)::float8 AS total_funding
		FROM department d
		JOIN project p ON p.department_id = d.department_id
		GROUP BY d.department_id, d.name
		ORDER BY total_funding DESC, d.department_id`

	professorPublicationCountsSQL = `
		SELECT p.professor_id, p.first_name, p.last_name,
			COALESCE(pc.pub_count, 0) AS publication_count, d.name
		FROM professor p
		LEFT JOIN (
			SELECT professor_id, COUNT(*) AS pub_count
			FROM professor_authors
			GROUP BY professor_id
		) pc ON pc.professor_id = p.professor_id
		LEFT JOIN department d ON d.department_id = p.department_id
		ORDER BY publication_count DESC, p.professor_id`

	// lead_professor_id is nullable; NOT IN over a NULL would match nothing.
	activeLeadsSubquery = `SELECT lead_professor_id FROM project WHERE status = 'Active' AND lead_professor_id IS NOT NULL`

	assignedStudentsSubquery = `SELECT student_id FROM student_project`

	publishingProfessorsSubquery = `SELECT professor_id FROM professor_authors`
)

// AnalyticsRepository runs the read-only aggregate queries
type AnalyticsRepository struct {
	db *pgxpool.Pool
}

// NewAnalyticsRepository creates a new AnalyticsRepository
func NewAnalyticsRepository(db *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{db: db}
}

// collect runs query and scans every row with scan
func collect[T any](ctx context.Context, q db.DBTX, name, query string, scan func(pgx.Rows) (T, error)) ([]T, error) {
	rows, err := q.Query(ctx, query)
	if err != nil {
		logger.Error().Err(err).Str("query", name).Msg("Error executing analytics query")
		return nil, fmt.Errorf("error executing %s query: %w", name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", name, err)
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", name, err)
	}
	return out, nil
}

func scanDepartmentFunding(rows pgx.Rows) (models.DepartmentFunding, error) {
	var f models.DepartmentFunding
	err := rows.Scan(&f.Department, &f.Funding)
	return f, err
}

// DepartmentAverageFunding averages project funding per department, rounded to 2 decimals
func (r *AnalyticsRepository) DepartmentAverageFunding(ctx context.Context) ([]models.DepartmentFunding, error) {
	return collect(ctx, r.db, "department average funding", departmentAvgFundingSQL, scanDepartmentFunding)
}

// DepartmentsAboveAverageFunding returns departments whose total funding strictly exceeds
// the mean of all per-department totals
func (r *AnalyticsRepository) DepartmentsAboveAverageFunding(ctx context.Context) ([]models.DepartmentFunding, error) {
	return collect(ctx, r.db, "departments above average", departmentsAboveAvgFundingSQL, scanDepartmentFunding)
}

// DepartmentTotalFunding sums project funding per department, largest first
func (r *AnalyticsRepository) DepartmentTotalFunding(ctx context.Context) ([]models.DepartmentFunding, error) {
	return collect(ctx, r.db, "department total funding", departmentTotalFundingSQL, scanDepartmentFunding)
}

// AveragePublicationsPerProfessor is the mean authorship count over authoring professors, 0 when none
func (r *AnalyticsRepository) AveragePublicationsPerProfessor(ctx context.Context) (float64, error) {
	var avg float64
	if err := r.db.QueryRow(ctx, avgPublicationsPerProfessorSQL).Scan(&avg); err != nil {
		logger.Error().Err(err).Msg("Error executing average publications query")
		return 0, fmt.Errorf("error computing average publications: %w", err)
	}
	return avg, nil
}

// SmallDepartments returns departments with between one and two professors
func (r *AnalyticsRepository) SmallDepartments(ctx context.Context) ([]models.DepartmentProfessorCount, error) {
	return collect(ctx, r.db, "small departments", smallDepartmentsSQL, func(rows pgx.Rows) (models.DepartmentProfessorCount, error) {
		var c models.DepartmentProfessorCount
		err := rows.Scan(&c.Department, &c.ProfessorCount)
		return c, err
	})
}

// Directory lists every professor and student email, labelled by kind
func (r *AnalyticsRepository) Directory(ctx context.Context) ([]models.DirectoryEntry, error) {
	return collect(ctx, r.db, "directory", directorySQL, func(rows pgx.Rows) (models.DirectoryEntry, error) {
		var e models.DirectoryEntry
		err := rows.Scan(&e.Name, &e.Email)
		return e, err
	})
}

// YearlyTrends counts completed projects by end year and publications by year.
// Both groupings are sent in one batch.
func (r *AnalyticsRepository) YearlyTrends(ctx context.Context) (models.YearlyTrends, error) {
	trends := models.YearlyTrends{
		Projects:     map[int]int64{},
		Publications: map[int]int64{},
	}

	batch := &pgx.Batch{}
	batch.Queue(completedProjectsByYearSQL)
	batch.Queue(publicationsByYearSQL)

	results := r.db.SendBatch(ctx, batch)
	defer results.Close()

	for _, target := range []map[int]int64{trends.Projects, trends.Publications} {
		rows, err := results.Query()
		if err != nil {
			logger.Error().Err(err).Msg("Error executing yearly trends query")
			return models.YearlyTrends{}, fmt.Errorf("error querying yearly trends: %w", err)
		}
		for rows.Next() {
			var year int
			var count int64
			if err := rows.Scan(&year, &count); err != nil {
				rows.Close()
				return models.YearlyTrends{}, fmt.Errorf("error scanning yearly trend row: %w", err)
			}
			target[year] = count
		}
		rows.Close()
		if err := rows.Err(); err != nil {
			return models.YearlyTrends{}, fmt.Errorf("error iterating yearly trend rows: %w", err)
		}
	}

	return trends, nil
}

// DepartmentPublicationCounts counts distinct professor-authored publications per department
func (r *AnalyticsRepository) DepartmentPublicationCounts(ctx context.Context) ([]models.DepartmentPublicationCount, error) {
	return collect(ctx, r.db, "department publications", departmentPublicationsSQL, func(rows pgx.Rows) (models.DepartmentPublicationCount, error) {
		var c models.DepartmentPublicationCount
		err := rows.Scan(&c.Department, &c.PublicationCount)
		return c, err
	})
}

// SystemStats returns the department-wide totals
func (r *AnalyticsRepository) SystemStats(ctx context.Context) (models.SystemStats, error) {
	var s models.SystemStats
	if err := r.db.QueryRow(ctx, systemStatsSQL).Scan(
		&s.TotalStudents, &s.TotalProfessors, &s.TotalCitations, &s.TotalActiveProjects,
	); err != nil {
		logger.Error().Err(err).Msg("Error executing system stats query")
		return models.SystemStats{}, fmt.Errorf("error computing system stats: %w", err)
	}
	return s, nil
}

// ProfessorPublicationCounts lists every professor with its authorship count, most published first
func (r *AnalyticsRepository) ProfessorPublicationCounts(ctx context.Context) ([]models.ProfessorPublicationCount, error) {
	return collect(ctx, r.db, "professor publication counts", professorPublicationCountsSQL, func(rows pgx.Rows) (models.ProfessorPublicationCount, error) {
		var c models.ProfessorPublicationCount
		err := rows.Scan(&c.ProfessorID, &c.FirstName, &c.LastName, &c.PublicationCount, &c.Department)
		return c, err
	})
}

// InactiveProfessors returns professors that lead no Active project
func (r *AnalyticsRepository) InactiveProfessors(ctx context.Context) ([]*models.Professor, error) {
	return queryProfessors(ctx, r.db, professorSelect().
		Where("p.professor_id NOT IN (" + activeLeadsSubquery + ")").
		OrderBy("p.professor_id"))
}

// ProfessorsWithoutPublications returns professors with no authorship row
func (r *AnalyticsRepository) ProfessorsWithoutPublications(ctx context.Context) ([]*models.Professor, error) {
	return queryProfessors(ctx, r.db, professorSelect().
		Where("p.professor_id NOT IN (" + publishingProfessorsSubquery + ")").
		OrderBy("p.professor_id"))
}

// UnassignedStudents returns students with no project and no advisor
func (r *AnalyticsRepository) UnassignedStudents(ctx context.Context) ([]*models.GradStudent, error) {
	return queryStudents(ctx, r.db, studentSelect().
		Where("s.student_id NOT IN (" + assignedStudentsSubquery + ")").
		Where(squirrel.Eq{"s.advisor_id": nil}).
		OrderBy("s.student_id"))
}

// PublicationsByCitations returns a page of publications, most cited first
func (r *AnalyticsRepository) PublicationsByCitations(ctx context.Context, page helpers.Page) ([]*models.Publication, error) {
	return queryPublications(ctx, r.db, publicationSelect().
		OrderBy("pub.citations DESC", "pub.publication_id").
		Offset(page.Offset()).
		Limit(page.Size()))
}
