package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/db"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// psql builds statements with PostgreSQL placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// assignment is one "column = value" of an UPDATE, kept in a fixed order
type assignment struct {
	column string
	value  any
}

func set[T any](as []assignment, column string, v *T) []assignment {
	if v == nil {
		return as
	}
	return append(as, assignment{column: column, value: *v})
}

func setNullable[T any](as []assignment, column string, n models.Nullable[T]) []assignment {
	if !n.Set {
		return as
	}
	if n.Value == nil {
		return append(as, assignment{column: column, value: nil})
	}
	return append(as, assignment{column: column, value: *n.Value})
}

// updateStatement builds UPDATE table SET ... WHERE idColumn = id
func updateStatement(table, idColumn string, id int64, as []assignment) (string, []any, error) {
	q := psql.Update(table)
	for _, a := range as {
		q = q.Set(a.column, a.value)
	}
	return q.Where(squirrel.Eq{idColumn: id}).ToSql()
}

// execUpdate applies the assignments and reports whether the row exists.
// With no assignments it only checks for the row.
func execUpdate(ctx context.Context, q db.DBTX, table, idColumn string, id int64, as []assignment) (bool, error) {
	if len(as) == 0 {
		return rowExists(ctx, q, table, idColumn, id)
	}

	sql, args, err := updateStatement(table, idColumn, id, as)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error building update SQL")
		return false, fmt.Errorf("failed to build update %s query: %w", table, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		return false, fmt.Errorf("error updating %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// rowExists reports whether a row with the given id exists
func rowExists(ctx context.Context, q db.DBTX, table, idColumn string, id int64) (bool, error) {
	sql, args, err := psql.Select("1").
		From(table).
		Where(squirrel.Eq{idColumn: id}).
		Prefix("SELECT EXISTS (").Suffix(")").
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build exists query: %w", err)
	}

	var exists bool
	if err := q.QueryRow(ctx, sql, args...).Scan(&exists); err != nil {
		logger.Error().Err(err).Str("table", table).Int64("id", id).Msg("Error checking row existence")
		return false, fmt.Errorf("error checking %s existence: %w", table, err)
	}
	return exists, nil
}

// deleteByID deletes one row and reports whether it existed
func deleteByID(ctx context.Context, q db.DBTX, table, idColumn string, id int64) (bool, error) {
	sql, args, err := psql.Delete(table).Where(squirrel.Eq{idColumn: id}).ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build delete %s query: %w", table, err)
	}

	tag, err := q.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Int64("id", id).Msg("Error executing delete query")
		return false, fmt.Errorf("error deleting from %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// ownerIDs collects ids for a batched relationship query
func ownerIDs[T any](items []*T, id func(*T) int64) []int64 {
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		ids = append(ids, id(it))
	}
	return ids
}

// loadResearchAreas returns the research areas of every owner in ids, keyed by owner id.
// joinTable is professor_research_areas or student_research_areas.
func loadResearchAreas(ctx context.Context, q db.DBTX, joinTable, ownerColumn string, ids []int64) (map[int64][]models.ResearchArea, error) {
	areas := make(map[int64][]models.ResearchArea, len(ids))
	if len(ids) == 0 {
		return areas, nil
	}

	sql, args, err := psql.Select("j."+ownerColumn, "ra.area_id", "ra.name").
		From(joinTable + " j").
		Join("research_area ra ON ra.area_id = j.area_id").
		Where(squirrel.Expr("j."+ownerColumn+" = ANY(?)", ids)).
		OrderBy("j."+ownerColumn, "ra.area_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build research areas query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", joinTable).Msg("Error querying research areas")
		return nil, fmt.Errorf("error querying research areas: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var owner int64
		var area models.ResearchArea
		if err := rows.Scan(&owner, &area.ID, &area.Name); err != nil {
			return nil, fmt.Errorf("error scanning research area row: %w", err)
		}
		areas[owner] = append(areas[owner], area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating research area rows: %w", err)
	}

	return areas, nil
}

// replaceResearchAreas sets the owner's research areas to exactly areaIDs
func replaceResearchAreas(ctx context.Context, tx pgx.Tx, joinTable, ownerColumn string, owner int64, areaIDs []int64) error {
	sql, args, err := psql.Delete(joinTable).Where(squirrel.Eq{ownerColumn: owner}).ToSql()
	if err != nil {
		return fmt.Errorf("failed to build clear research areas query: %w", err)
	}
	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error clearing research areas: %w", err)
	}
	return insertResearchAreas(ctx, tx, joinTable, ownerColumn, owner, areaIDs)
}

// insertResearchAreas links the owner to each area, ignoring duplicates in areaIDs
func insertResearchAreas(ctx context.Context, tx pgx.Tx, joinTable, ownerColumn string, owner int64, areaIDs []int64) error {
	if len(areaIDs) == 0 {
		return nil
	}

	q := psql.Insert(joinTable).Columns(ownerColumn, "area_id")
	for _, areaID := range areaIDs {
		q = q.Values(owner, areaID)
	}
	sql, args, err := q.Suffix("ON CONFLICT DO NOTHING").ToSql()
	if err != nil {
		return fmt.Errorf("failed to build research areas insert: %w", err)
	}

	if _, err := tx.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error linking research areas: %w", err)
	}
	return nil
}
