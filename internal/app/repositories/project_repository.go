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

// ProjectRepository handles project database operations
type ProjectRepository struct {
	db *pgxpool.Pool
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// projectSelect joins the lead professor and the department
func projectSelect() squirrel.SelectBuilder {
	return psql.Select(
		"pr.project_id", "pr.title", "pr.start_date", "pr.end_date", "pr.status",
		"pr.funding_amount::float8", "pr.funding_source", "pr.description",
		"pr.lead_professor_id", "pr.department_id",
		"lp.first_name", "lp.last_name", "d.name",
	).
		From("project pr").
		LeftJoin("professor lp ON lp.professor_id = pr.lead_professor_id").
		LeftJoin("department d ON d.department_id = pr.department_id")
}

func scanProject(row pgx.Row) (*models.Project, error) {
	p := &models.Project{}
	var leadFirst, leadLast, departmentName *string
	if err := row.Scan(
		&p.ID, &p.Title, &p.StartDate, &p.EndDate, &p.Status,
		&p.FundingAmount, &p.FundingSource, &p.Description,
		&p.LeadProfessorID, &p.DepartmentID,
		&leadFirst, &leadLast, &departmentName,
	); err != nil {
		return nil, err
	}
	if p.LeadProfessorID != nil && leadFirst != nil && leadLast != nil {
		p.LeadProfessor = &models.Professor{ID: *p.LeadProfessorID, FirstName: *leadFirst, LastName: *leadLast}
	}
	if p.DepartmentID != nil && departmentName != nil {
		p.Department = &models.Department{ID: *p.DepartmentID, Name: *departmentName}
	}
	return p, nil
}

// loadParticipants returns the members of every project in ids, keyed by project id.
// memberTable is professor or gradstudent, joinTable the matching association table.
func loadParticipants(ctx context.Context, q db.DBTX, joinTable, memberTable, memberColumn string, ids []int64) (map[int64][]models.Participant, error) {
	members := make(map[int64][]models.Participant, len(ids))
	if len(ids) == 0 {
		return members, nil
	}

	sql, args, err := psql.Select("j.project_id", "m."+memberColumn, "m.first_name", "m.last_name", "j.role").
		From(joinTable + " j").
		Join(memberTable + " m ON m." + memberColumn + " = j." + memberColumn).
		Where(squirrel.Expr("j.project_id = ANY(?)", ids)).
		OrderBy("j.project_id", "m."+memberColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build participants query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", joinTable).Msg("Error querying project participants")
		return nil, fmt.Errorf("error querying participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var projectID int64
		var m models.Participant
		if err := rows.Scan(&projectID, &m.MemberID, &m.FirstName, &m.LastName, &m.Role); err != nil {
			return nil, fmt.Errorf("error scanning participant row: %w", err)
		}
		members[projectID] = append(members[projectID], m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating participant rows: %w", err)
	}

	return members, nil
}

func queryProjects(ctx context.Context, q db.DBTX, sb squirrel.SelectBuilder) ([]*models.Project, error) {
	sql, args, err := sb.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building project select SQL")
		return nil, fmt.Errorf("failed to build project query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing project query")
		return nil, fmt.Errorf("error querying projects: %w", err)
	}
	defer rows.Close()

	projects := []*models.Project{}
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	rows.Close()

	ids := ownerIDs(projects, func(p *models.Project) int64 { return p.ID })
	professors, err := loadParticipants(ctx, q, "professor_project", "professor", "professor_id", ids)
	if err != nil {
		return nil, err
	}
	students, err := loadParticipants(ctx, q, "student_project", "gradstudent", "student_id", ids)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		p.Professors = professors[p.ID]
		p.Students = students[p.ID]
	}

	return projects, nil
}

func getProject(ctx context.Context, q db.DBTX, id int64) (*models.Project, error) {
	projects, err := queryProjects(ctx, q, projectSelect().Where(squirrel.Eq{"pr.project_id": id}))
	if err != nil {
		return nil, err
	}
	if len(projects) == 0 {
		return nil, nil
	}
	return projects[0], nil
}

// GetByID retrieves a project with its relationships, or nil if absent
func (r *ProjectRepository) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return getProject(ctx, r.db, id)
}

// List retrieves a page of projects in id order
func (r *ProjectRepository) List(ctx context.Context, page helpers.Page) ([]*models.Project, error) {
	return queryProjects(ctx, r.db, projectSelect().
		OrderBy("pr.project_id").
		Offset(page.Offset()).
		Limit(page.Size()))
}

// ExistsByID reports whether a project exists
func (r *ProjectRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, "project", "project_id", id)
}

func projectInsert(p *models.Project) (string, []any, error) {
	return psql.Insert("project").
		Columns("title", "start_date", "end_date", "status", "funding_amount", "funding_source",
			"description", "lead_professor_id", "department_id").
		Values(p.Title, p.StartDate, p.EndDate, string(p.Status), p.FundingAmount, p.FundingSource,
			p.Description, p.LeadProfessorID, p.DepartmentID).
		Suffix("RETURNING project_id").
		ToSql()
}

// Create inserts a project
func (r *ProjectRepository) Create(ctx context.Context, project *models.Project) (*models.Project, error) {
	var created *models.Project
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := projectInsert(project)
		if err != nil {
			return fmt.Errorf("failed to build create project query: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return fmt.Errorf("error creating project: %w", err)
		}

		created, err = getProject(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Str("title", project.Title).Msg("Error creating project")
		return nil, err
	}
	return created, nil
}

func projectAssignments(patch models.ProjectPatch) []assignment {
	var as []assignment
	as = set(as, "title", patch.Title)
	as = set(as, "start_date", patch.StartDate)
	as = setNullable(as, "end_date", patch.EndDate)
	if patch.Status != nil {
		as = append(as, assignment{column: "status", value: string(*patch.Status)})
	}
	as = setNullable(as, "funding_amount", patch.FundingAmount)
	as = set(as, "funding_source", patch.FundingSource)
	as = setNullable(as, "description", patch.Description)
	as = setNullable(as, "lead_professor_id", patch.LeadProfessorID)
	as = setNullable(as, "department_id", patch.DepartmentID)
	return as
}

// Update assigns the patched columns and returns the updated project, or nil if absent
func (r *ProjectRepository) Update(ctx context.Context, id int64, patch models.ProjectPatch) (*models.Project, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var updated *models.Project
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		found, err := execUpdate(ctx, tx, "project", "project_id", id, projectAssignments(patch))
		if err != nil || !found {
			return err
		}
		updated, err = getProject(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Int64("projectID", id).Msg("Error updating project")
		return nil, err
	}
	return updated, nil
}

// Delete removes a project and reports whether it existed
func (r *ProjectRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "project", "project_id", id)
}
