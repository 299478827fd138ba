package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/researchdesk/internal/app/models"
	"github.com/yigit/researchdesk/internal/pkg/logger"
)

// AssociationRepository manages project participation and authorship rows
type AssociationRepository struct {
	db *pgxpool.Pool
}

// NewAssociationRepository creates a new AssociationRepository
func NewAssociationRepository(db *pgxpool.Pool) *AssociationRepository {
	return &AssociationRepository{db: db}
}

// upsertStatement inserts a composite-key row; an existing row gets its attribute replaced
func upsertStatement(table, ownerColumn, memberColumn, attrColumn string, owner, member int64, attr any) (string, []any, error) {
	return psql.Insert(table).
		Columns(ownerColumn, memberColumn, attrColumn).
		Values(owner, member, attr).
		Suffix(fmt.Sprintf("ON CONFLICT (%s, %s) DO UPDATE SET %s = EXCLUDED.%s", ownerColumn, memberColumn, attrColumn, attrColumn)).
		ToSql()
}

func (r *AssociationRepository) upsert(ctx context.Context, table, ownerColumn, memberColumn, attrColumn string, owner, member int64, attr any) error {
	sql, args, err := upsertStatement(table, ownerColumn, memberColumn, attrColumn, owner, member, attr)
	if err != nil {
		return fmt.Errorf("failed to build %s upsert: %w", table, err)
	}
	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Str("table", table).Int64(ownerColumn, owner).Int64(memberColumn, member).Msg("Error executing association upsert")
		return fmt.Errorf("error writing %s: %w", table, err)
	}
	return nil
}

func (r *AssociationRepository) remove(ctx context.Context, table, ownerColumn, memberColumn string, owner, member int64) (bool, error) {
	sql, args, err := psql.Delete(table).
		Where(squirrel.Eq{ownerColumn: owner, memberColumn: member}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("failed to build %s delete: %w", table, err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", table).Msg("Error executing association delete")
		return false, fmt.Errorf("error deleting from %s: %w", table, err)
	}
	return tag.RowsAffected() > 0, nil
}

// AddProfessorToProject attaches a professor to a project with a role
func (r *AssociationRepository) AddProfessorToProject(ctx context.Context, m models.ProjectMember) error {
	return r.upsert(ctx, "professor_project", "project_id", "professor_id", "role", m.ProjectID, m.MemberID, m.Role)
}

// RemoveProfessorFromProject detaches a professor and reports whether it was attached
func (r *AssociationRepository) RemoveProfessorFromProject(ctx context.Context, projectID, professorID int64) (bool, error) {
	return r.remove(ctx, "professor_project", "project_id", "professor_id", projectID, professorID)
}

// AddStudentToProject attaches a student to a project with a role
func (r *AssociationRepository) AddStudentToProject(ctx context.Context, m models.ProjectMember) error {
	return r.upsert(ctx, "student_project", "project_id", "student_id", "role", m.ProjectID, m.MemberID, m.Role)
}

// RemoveStudentFromProject detaches a student and reports whether it was attached
func (r *AssociationRepository) RemoveStudentFromProject(ctx context.Context, projectID, studentID int64) (bool, error) {
	return r.remove(ctx, "student_project", "project_id", "student_id", projectID, studentID)
}

// AddProfessorAuthor credits a professor on a publication at the given author order
func (r *AssociationRepository) AddProfessorAuthor(ctx context.Context, a models.Authorship) error {
	return r.upsert(ctx, "professor_authors", "publication_id", "professor_id", "author_order", a.PublicationID, a.AuthorID, a.AuthorOrder)
}

// RemoveProfessorAuthor removes a professor credit and reports whether it existed
func (r *AssociationRepository) RemoveProfessorAuthor(ctx context.Context, publicationID, professorID int64) (bool, error) {
	return r.remove(ctx, "professor_authors", "publication_id", "professor_id", publicationID, professorID)
}

// AddStudentAuthor credits a student on a publication at the given author order
func (r *AssociationRepository) AddStudentAuthor(ctx context.Context, a models.Authorship) error {
	return r.upsert(ctx, "student_authors", "publication_id", "student_id", "author_order", a.PublicationID, a.AuthorID, a.AuthorOrder)
}

// RemoveStudentAuthor removes a student credit and reports whether it existed
func (r *AssociationRepository) RemoveStudentAuthor(ctx context.Context, publicationID, studentID int64) (bool, error) {
	return r.remove(ctx, "student_authors", "publication_id", "student_id", publicationID, studentID)
}
