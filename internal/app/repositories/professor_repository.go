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

// ProfessorRepository handles professor database operations
type ProfessorRepository struct {
	db *pgxpool.Pool
}

// NewProfessorRepository creates a new ProfessorRepository
func NewProfessorRepository(db *pgxpool.Pool) *ProfessorRepository {
	return &ProfessorRepository{db: db}
}

// professorSelect joins the department so that one statement loads the to-one reference
func professorSelect() squirrel.SelectBuilder {
	return psql.Select(
		"p.professor_id", "p.first_name", "p.last_name", "p.email", "p.phone",
		"p.title", "p.office", "p.image_url", "p.department_id", "d.name",
	).
		From("professor p").
		LeftJoin("department d ON d.department_id = p.department_id")
}

func scanProfessor(row pgx.Row) (*models.Professor, error) {
	p := &models.Professor{}
	var departmentName *string
	if err := row.Scan(
		&p.ID, &p.FirstName, &p.LastName, &p.Email, &p.Phone,
		&p.Title, &p.Office, &p.ImageURL, &p.DepartmentID, &departmentName,
	); err != nil {
		return nil, err
	}
	if p.DepartmentID != nil && departmentName != nil {
		p.Department = &models.Department{ID: *p.DepartmentID, Name: *departmentName}
	}
	return p, nil
}

// queryProfessors runs a professor select and loads research areas with one batched query
func queryProfessors(ctx context.Context, q db.DBTX, sb squirrel.SelectBuilder) ([]*models.Professor, error) {
	sql, args, err := sb.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building professor select SQL")
		return nil, fmt.Errorf("failed to build professor query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing professor query")
		return nil, fmt.Errorf("error querying professors: %w", err)
	}
	defer rows.Close()

	professors := []*models.Professor{}
	for rows.Next() {
		p, err := scanProfessor(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning professor row: %w", err)
		}
		professors = append(professors, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating professor rows: %w", err)
	}
	rows.Close()

	ids := ownerIDs(professors, func(p *models.Professor) int64 { return p.ID })
	areas, err := loadResearchAreas(ctx, q, "professor_research_areas", "professor_id", ids)
	if err != nil {
		return nil, err
	}
	for _, p := range professors {
		p.ResearchAreas = areas[p.ID]
	}

	return professors, nil
}

func getProfessor(ctx context.Context, q db.DBTX, id int64) (*models.Professor, error) {
	professors, err := queryProfessors(ctx, q, professorSelect().Where(squirrel.Eq{"p.professor_id": id}))
	if err != nil {
		return nil, err
	}
	if len(professors) == 0 {
		return nil, nil
	}
	return professors[0], nil
}

// GetByID retrieves a professor with its relationships, or nil if absent
func (r *ProfessorRepository) GetByID(ctx context.Context, id int64) (*models.Professor, error) {
	return getProfessor(ctx, r.db, id)
}

// List retrieves a page of professors in id order
func (r *ProfessorRepository) List(ctx context.Context, page helpers.Page) ([]*models.Professor, error) {
	return queryProfessors(ctx, r.db, professorSelect().
		OrderBy("p.professor_id").
		Offset(page.Offset()).
		Limit(page.Size()))
}

// ExistsByID reports whether a professor exists
func (r *ProfessorRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, "professor", "professor_id", id)
}

// GetIDByEmail returns the id of the professor owning email, or 0 if none does
func (r *ProfessorRepository) GetIDByEmail(ctx context.Context, email string) (int64, error) {
	sql, args, err := psql.Select("professor_id").From("professor").Where(squirrel.Eq{"email": email}).ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build professor email query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		logger.Error().Err(err).Msg("Error checking professor email")
		return 0, fmt.Errorf("error checking professor email: %w", err)
	}
	return id, nil
}

func professorInsert(p *models.Professor) (string, []any, error) {
	return psql.Insert("professor").
		Columns("first_name", "last_name", "email", "phone", "title", "office", "image_url", "department_id").
		Values(p.FirstName, p.LastName, p.Email, p.Phone, p.Title, p.Office, p.ImageURL, p.DepartmentID).
		Suffix("RETURNING professor_id").
		ToSql()
}

// Create inserts a professor and links its research areas in one transaction
func (r *ProfessorRepository) Create(ctx context.Context, professor *models.Professor, researchAreaIDs []int64) (*models.Professor, error) {
	var created *models.Professor
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := professorInsert(professor)
		if err != nil {
			return fmt.Errorf("failed to build create professor query: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return fmt.Errorf("error creating professor: %w", err)
		}

		if err := insertResearchAreas(ctx, tx, "professor_research_areas", "professor_id", id, researchAreaIDs); err != nil {
			return err
		}

		created, err = getProfessor(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Str("email", professor.Email).Msg("Error creating professor")
		return nil, err
	}
	return created, nil
}

func professorAssignments(patch models.ProfessorPatch) []assignment {
	var as []assignment
	as = set(as, "first_name", patch.FirstName)
	as = set(as, "last_name", patch.LastName)
	as = set(as, "email", patch.Email)
	as = setNullable(as, "phone", patch.Phone)
	as = setNullable(as, "title", patch.Title)
	as = setNullable(as, "office", patch.Office)
	as = setNullable(as, "image_url", patch.ImageURL)
	as = setNullable(as, "department_id", patch.DepartmentID)
	return as
}

// Update assigns the patched columns and returns the updated professor, or nil if absent
func (r *ProfessorRepository) Update(ctx context.Context, id int64, patch models.ProfessorPatch) (*models.Professor, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var updated *models.Professor
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		found, err := execUpdate(ctx, tx, "professor", "professor_id", id, professorAssignments(patch))
		if err != nil || !found {
			return err
		}

		if patch.ResearchAreaIDs != nil {
			if err := replaceResearchAreas(ctx, tx, "professor_research_areas", "professor_id", id, *patch.ResearchAreaIDs); err != nil {
				return err
			}
		}

		updated, err = getProfessor(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Int64("professorID", id).Msg("Error updating professor")
		return nil, err
	}
	return updated, nil
}

// Delete removes a professor and reports whether it existed
func (r *ProfessorRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "professor", "professor_id", id)
}
