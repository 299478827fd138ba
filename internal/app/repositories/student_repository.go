package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/db"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// StudentRepository handles graduate student database operations
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{db: db}
}

// studentSelect joins the advisor and the department
func studentSelect() squirrel.SelectBuilder {
	return psql.Select(
		"s.student_id", "s.first_name", "s.last_name", "s.email", "s.enrollment_date",
		"s.type", "s.image_url", "s.advisor_id", "s.department_id",
		"a.first_name", "a.last_name", "d.name",
	).
		From("gradstudent s").
		LeftJoin("professor a ON a.professor_id = s.advisor_id").
		LeftJoin("department d ON d.department_id = s.department_id")
}

func scanStudent(row pgx.Row) (*models.GradStudent, error) {
	s := &models.GradStudent{}
	var advisorFirst, advisorLast, departmentName *string
	if err := row.Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.EnrollmentDate,
		&s.Type, &s.ImageURL, &s.AdvisorID, &s.DepartmentID,
		&advisorFirst, &advisorLast, &departmentName,
	); err != nil {
		return nil, err
	}
	if s.AdvisorID != nil && advisorFirst != nil && advisorLast != nil {
		s.Advisor = &models.Professor{ID: *s.AdvisorID, FirstName: *advisorFirst, LastName: *advisorLast}
	}
	if s.DepartmentID != nil && departmentName != nil {
		s.Department = &models.Department{ID: *s.DepartmentID, Name: *departmentName}
	}
	return s, nil
}

// queryStudents runs a student select and loads research areas with one batched query
func queryStudents(ctx context.Context, q db.DBTX, sb squirrel.SelectBuilder) ([]*models.GradStudent, error) {
	sql, args, err := sb.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building student select SQL")
		return nil, fmt.Errorf("failed to build student query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing student query")
		return nil, fmt.Errorf("error querying students: %w", err)
	}
	defer rows.Close()

	students := []*models.GradStudent{}
	for rows.Next() {
		s, err := scanStudent(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning student row: %w", err)
		}
		students = append(students, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating student rows: %w", err)
	}
	rows.Close()

	ids := ownerIDs(students, func(s *models.GradStudent) int64 { return s.ID })
	areas, err := loadResearchAreas(ctx, q, "student_research_areas", "student_id", ids)
	if err != nil {
		return nil, err
	}
	for _, s := range students {
		s.ResearchAreas = areas[s.ID]
	}

	return students, nil
}

func getStudent(ctx context.Context, q db.DBTX, id int64) (*models.GradStudent, error) {
	students, err := queryStudents(ctx, q, studentSelect().Where(squirrel.Eq{"s.student_id": id}))
	if err != nil {
		return nil, err
	}
	if len(students) == 0 {
		return nil, nil
	}
	return students[0], nil
}

// GetByID retrieves a student with its relationships, or nil if absent
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.GradStudent, error) {
	return getStudent(ctx, r.db, id)
}

// List retrieves a page of students in id order
func (r *StudentRepository) List(ctx context.Context, page helpers.Page) ([]*models.GradStudent, error) {
	return queryStudents(ctx, r.db, studentSelect().
		OrderBy("s.student_id").
		Offset(page.Offset()).
		Limit(page.Size()))
}

// ExistsByID reports whether a student exists
func (r *StudentRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, "gradstudent", "student_id", id)
}

// GetIDByEmail returns the id of the student owning email, or 0 if none does
func (r *StudentRepository) GetIDByEmail(ctx context.Context, email string) (int64, error) {
	sql, args, err := psql.Select("student_id").From("gradstudent").Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build student email query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		logger.Error().Err(err).Msg("Error checking student email")
		return 0, fmt.Errorf("error checking student email: %w", err)
	}
	return id, nil
}

func studentInsert(s *models.GradStudent) (string, []any, error) {
	return psql.Insert("gradstudent").
		Columns("first_name", "last_name", "email", "enrollment_date", "type", "image_url", "advisor_id", "department_id").
		Values(s.FirstName, s.LastName, s.Email, s.EnrollmentDate, string(s.Type), s.ImageURL, s.AdvisorID, s.DepartmentID).
		Suffix("RETURNING student_id").
		ToSql()
}

// Create inserts a student and links its research areas in one transaction
func (r *StudentRepository) Create(ctx context.Context, student *models.GradStudent, researchAreaIDs []int64) (*models.GradStudent, error) {
	var created *models.GradStudent
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := studentInsert(student)
		if err != nil {
			return fmt.Errorf("failed to build create student query: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return fmt.Errorf("error creating student: %w", err)
		}

		if err := insertResearchAreas(ctx, tx, "student_research_areas", "student_id", id, researchAreaIDs); err != nil {
			return err
		}

		created, err = getStudent(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Str("email", student.Email).Msg("Error creating student")
		return nil, err
	}
	return created, nil
}

func studentAssignments(patch models.StudentPatch) []assignment {
	var as []assignment
	as = set(as, "first_name", patch.FirstName)
	as = set(as, "last_name", patch.LastName)
	as = set(as, "email", patch.Email)
	as = set(as, "enrollment_date", patch.EnrollmentDate)
	if patch.Type != nil {
		as = append(as, assignment{column: "type", value: string(*patch.Type)})
	}
	as = setNullable(as, "image_url", patch.ImageURL)
	as = setNullable(as, "advisor_id", patch.AdvisorID)
	as = setNullable(as, "department_id", patch.DepartmentID)
	return as
}

// Update assigns the patched columns and returns the updated student, or nil if absent
func (r *StudentRepository) Update(ctx context.Context, id int64, patch models.StudentPatch) (*models.GradStudent, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var updated *models.GradStudent
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		found, err := execUpdate(ctx, tx, "gradstudent", "student_id", id, studentAssignments(patch))
		if err != nil || !found {
			return err
		}

		if patch.ResearchAreaIDs != nil {
			if err := replaceResearchAreas(ctx, tx, "student_research_areas", "student_id", id, *patch.ResearchAreaIDs); err != nil {
				return err
			}
		}

		updated, err = getStudent(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Int64("studentID", id).Msg("Error updating student")
		return nil, err
	}
	return updated, nil
}

// Delete removes a student and reports whether it existed
func (r *StudentRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "gradstudent", "student_id", id)
}
