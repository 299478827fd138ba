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

// PublicationRepository handles publication database operations
type PublicationRepository struct {
	db *pgxpool.Pool
}

// NewPublicationRepository creates a new PublicationRepository
func NewPublicationRepository(db *pgxpool.Pool) *PublicationRepository {
	return &PublicationRepository{db: db}
}

// publicationSelect joins the journal
func publicationSelect() squirrel.SelectBuilder {
	return psql.Select(
		"pub.publication_id", "pub.title", "pub.journal_id", "pub.year", "pub.volume",
		"pub.issue", "pub.pages", "pub.citations", "pub.abstract", "j.name",
	).
		From("publication pub").
		LeftJoin("journal j ON j.journal_id = pub.journal_id")
}

func scanPublication(row pgx.Row) (*models.Publication, error) {
	p := &models.Publication{}
	var journalName *string
	if err := row.Scan(
		&p.ID, &p.Title, &p.JournalID, &p.Year, &p.Volume,
		&p.Issue, &p.Pages, &p.Citations, &p.Abstract, &journalName,
	); err != nil {
		return nil, err
	}
	if p.JournalID != nil && journalName != nil {
		p.Journal = &models.Journal{ID: *p.JournalID, Name: *journalName}
	}
	return p, nil
}

// loadAuthors returns the authors of every publication in ids, keyed by publication id
// and sorted by author order. authorTable is professor or gradstudent.
func loadAuthors(ctx context.Context, q db.DBTX, joinTable, authorTable, authorColumn string, ids []int64) (map[int64][]models.Author, error) {
	authors := make(map[int64][]models.Author, len(ids))
	if len(ids) == 0 {
		return authors, nil
	}

	sql, args, err := psql.Select("j.publication_id", "a."+authorColumn, "a.first_name", "a.last_name", "j.author_order").
		From(joinTable + " j").
		Join(authorTable + " a ON a." + authorColumn + " = j." + authorColumn).
		Where(squirrel.Expr("j.publication_id = ANY(?)", ids)).
		OrderBy("j.publication_id", "j.author_order", "a."+authorColumn).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build authors query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Str("table", joinTable).Msg("Error querying publication authors")
		return nil, fmt.Errorf("error querying authors: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var publicationID int64
		var a models.Author
		if err := rows.Scan(&publicationID, &a.AuthorID, &a.FirstName, &a.LastName, &a.Order); err != nil {
			return nil, fmt.Errorf("error scanning author row: %w", err)
		}
		authors[publicationID] = append(authors[publicationID], a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating author rows: %w", err)
	}

	return authors, nil
}

func queryPublications(ctx context.Context, q db.DBTX, sb squirrel.SelectBuilder) ([]*models.Publication, error) {
	sql, args, err := sb.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building publication select SQL")
		return nil, fmt.Errorf("failed to build publication query: %w", err)
	}

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing publication query")
		return nil, fmt.Errorf("error querying publications: %w", err)
	}
	defer rows.Close()

	publications := []*models.Publication{}
	for rows.Next() {
		p, err := scanPublication(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning publication row: %w", err)
		}
		publications = append(publications, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating publication rows: %w", err)
	}
	rows.Close()

	ids := ownerIDs(publications, func(p *models.Publication) int64 { return p.ID })
	professors, err := loadAuthors(ctx, q, "professor_authors", "professor", "professor_id", ids)
	if err != nil {
		return nil, err
	}
	students, err := loadAuthors(ctx, q, "student_authors", "gradstudent", "student_id", ids)
	if err != nil {
		return nil, err
	}
	for _, p := range publications {
		p.ProfessorAuthors = professors[p.ID]
		p.StudentAuthors = students[p.ID]
	}

	return publications, nil
}

func getPublication(ctx context.Context, q db.DBTX, id int64) (*models.Publication, error) {
	publications, err := queryPublications(ctx, q, publicationSelect().Where(squirrel.Eq{"pub.publication_id": id}))
	if err != nil {
		return nil, err
	}
	if len(publications) == 0 {
		return nil, nil
	}
	return publications[0], nil
}

// GetByID retrieves a publication with its journal and authors, or nil if absent
func (r *PublicationRepository) GetByID(ctx context.Context, id int64) (*models.Publication, error) {
	return getPublication(ctx, r.db, id)
}

// List retrieves a page of publications in id order
func (r *PublicationRepository) List(ctx context.Context, page helpers.Page) ([]*models.Publication, error) {
	return queryPublications(ctx, r.db, publicationSelect().
		OrderBy("pub.publication_id").
		Offset(page.Offset()).
		Limit(page.Size()))
}

// ExistsByID reports whether a publication exists
func (r *PublicationRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	return rowExists(ctx, r.db, "publication", "publication_id", id)
}

func publicationInsert(p *models.Publication) (string, []any, error) {
	return psql.Insert("publication").
		Columns("title", "journal_id", "year", "volume", "issue", "pages", "citations", "abstract").
		Values(p.Title, p.JournalID, p.Year, p.Volume, p.Issue, p.Pages, p.Citations, p.Abstract).
		Suffix("RETURNING publication_id").
		ToSql()
}

// Create inserts a publication
func (r *PublicationRepository) Create(ctx context.Context, publication *models.Publication) (*models.Publication, error) {
	var created *models.Publication
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		sql, args, err := publicationInsert(publication)
		if err != nil {
			return fmt.Errorf("failed to build create publication query: %w", err)
		}

		var id int64
		if err := tx.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
			return fmt.Errorf("error creating publication: %w", err)
		}

		created, err = getPublication(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Str("title", publication.Title).Msg("Error creating publication")
		return nil, err
	}
	return created, nil
}

func publicationAssignments(patch models.PublicationPatch) []assignment {
	var as []assignment
	as = set(as, "title", patch.Title)
	as = setNullable(as, "journal_id", patch.JournalID)
	as = set(as, "year", patch.Year)
	as = setNullable(as, "volume", patch.Volume)
	as = setNullable(as, "issue", patch.Issue)
	as = setNullable(as, "pages", patch.Pages)
	as = set(as, "citations", patch.Citations)
	as = setNullable(as, "abstract", patch.Abstract)
	return as
}

// Update assigns the patched columns and returns the updated publication, or nil if absent
func (r *PublicationRepository) Update(ctx context.Context, id int64, patch models.PublicationPatch) (*models.Publication, error) {
	if patch.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	var updated *models.Publication
	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		found, err := execUpdate(ctx, tx, "publication", "publication_id", id, publicationAssignments(patch))
		if err != nil || !found {
			return err
		}
		updated, err = getPublication(ctx, tx, id)
		return err
	})
	if err != nil {
		logger.Error().Err(err).Int64("publicationID", id).Msg("Error updating publication")
		return nil, err
	}
	return updated, nil
}

// Delete removes a publication and reports whether it existed
func (r *PublicationRepository) Delete(ctx context.Context, id int64) (bool, error) {
	return deleteByID(ctx, r.db, "publication", "publication_id", id)
}
