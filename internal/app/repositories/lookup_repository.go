package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/pkg/helpers"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// LookupRepository handles the name-keyed lookup tables (departments, journals, research areas)
type LookupRepository[T any] struct {
	db       *pgxpool.Pool
	table    string
	idColumn string
	build    func(id int64, name string) *T
}

func newLookupRepository[T any](db *pgxpool.Pool, table, idColumn string, build func(int64, string) *T) *LookupRepository[T] {
	return &LookupRepository[T]{db: db, table: table, idColumn: idColumn, build: build}
}

// NewDepartmentRepository creates the department lookup repository
func NewDepartmentRepository(db *pgxpool.Pool) *LookupRepository[models.Department] {
	return newLookupRepository(db, "department", "department_id", func(id int64, name string) *models.Department {
		return &models.Department{ID: id, Name: name}
	})
}

// NewJournalRepository creates the journal lookup repository
func NewJournalRepository(db *pgxpool.Pool) *LookupRepository[models.Journal] {
	return newLookupRepository(db, "journal", "journal_id", func(id int64, name string) *models.Journal {
		return &models.Journal{ID: id, Name: name}
	})
}

// NewResearchAreaRepository creates the research area lookup repository
func NewResearchAreaRepository(db *pgxpool.Pool) *LookupRepository[models.ResearchArea] {
	return newLookupRepository(db, "research_area", "area_id", func(id int64, name string) *models.ResearchArea {
		return &models.ResearchArea{ID: id, Name: name}
	})
}

// Create inserts a row by name
func (r *LookupRepository[T]) Create(ctx context.Context, name string) (*T, error) {
	sql, args, err := psql.Insert(r.table).
		Columns("name").
		Values(name).
		Suffix("RETURNING " + r.idColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build create %s query: %w", r.table, err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Str("table", r.table).Str("name", name).Msg("Error executing create lookup query")
		return nil, fmt.Errorf("error creating %s: %w", r.table, err)
	}
	return r.build(id, name), nil
}

func (r *LookupRepository[T]) getOne(ctx context.Context, where squirrel.Sqlizer) (*T, error) {
	sql, args, err := psql.Select(r.idColumn, "name").From(r.table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build get %s query: %w", r.table, err)
	}

	var id int64
	var name string
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id, &name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		logger.Error().Err(err).Str("table", r.table).Msg("Error scanning lookup row")
		return nil, fmt.Errorf("error getting %s: %w", r.table, err)
	}
	return r.build(id, name), nil
}

// GetByID retrieves a row, or nil if absent
func (r *LookupRepository[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	return r.getOne(ctx, squirrel.Eq{r.idColumn: id})
}

// GetByName retrieves a row by its unique name, or nil if absent
func (r *LookupRepository[T]) GetByName(ctx context.Context, name string) (*T, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// List retrieves a page of rows in id order
func (r *LookupRepository[T]) List(ctx context.Context, page helpers.Page) ([]*T, error) {
	sql, args, err := psql.Select(r.idColumn, "name").
		From(r.table).
		OrderBy(r.idColumn).
		Offset(page.Offset()).
		Limit(page.Size()).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build list %s query: %w", r.table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", r.table).Msg("Error executing list lookup query")
		return nil, fmt.Errorf("error querying %s: %w", r.table, err)
	}
	defer rows.Close()

	items := []*T{}
	for rows.Next() {
		var id int64
		var name string
		if err := rows.Scan(&id, &name); err != nil {
			return nil, fmt.Errorf("error scanning %s row: %w", r.table, err)
		}
		items = append(items, r.build(id, name))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s rows: %w", r.table, err)
	}
	return items, nil
}

// Exists reports whether a row with id exists
func (r *LookupRepository[T]) Exists(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, r.table, r.idColumn, id)
}

// MissingIDs returns the ids in ids that have no row, in input order
func (r *LookupRepository[T]) MissingIDs(ctx context.Context, ids []int64) ([]int64, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sql, args, err := psql.Select(r.idColumn).
		From(r.table).
		Where(squirrel.Expr(r.idColumn+" = ANY(?)", ids)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s ids query: %w", r.table, err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying %s ids: %w", r.table, err)
	}
	defer rows.Close()

	found := make(map[int64]bool, len(ids))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning %s id: %w", r.table, err)
		}
		found[id] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating %s ids: %w", r.table, err)
	}

	var missing []int64
	for _, id := range ids {
		if !found[id] {
			missing = append(missing, id)
		}
	}
	return missing, nil
}
