package repository

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

type ContentRepository interface {
	Create(ctx context.Context, item *models.ContentItem) error
	GetByID(ctx context.Context, id string) (*models.ContentItem, error)
	GetAll(ctx context.Context, kind string, limit, offset int) ([]models.ContentItem, int, error)
	Update(ctx context.Context, item *models.ContentItem) error
	Delete(ctx context.Context, id string) error
	CountByKind(ctx context.Context) (documents int, events int, err error)
	Exists(ctx context.Context, id string) (bool, error)
	Ping(ctx context.Context) error
}

type contentRepository struct {
	*PostgresRepository
}

func NewContentRepository(db *sql.DB, logger zerolog.Logger) ContentRepository {
	return &contentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *contentRepository) Create(ctx context.Context, item *models.ContentItem) error {
	query := `
		INSERT INTO content_items (
			id, kind, title, category, analyzable_text, text_hash,
			source_file_id, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Kind,
		item.Title,
		item.Category,
		item.AnalyzableText,
		item.TextHash,
		item.SourceFileID,
		item.CreatedAt,
		item.UpdatedAt,
	)

	return err
}

func (r *contentRepository) GetByID(ctx context.Context, id string) (*models.ContentItem, error) {
	query := `
		SELECT id, kind, title, category, analyzable_text, text_hash,
			source_file_id, created_at, updated_at
		FROM content_items
		WHERE id = $1
	`

	item := &models.ContentItem{}
	var category sql.NullString
	var sourceFileID sql.NullString

	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID,
		&item.Kind,
		&item.Title,
		&category,
		&item.AnalyzableText,
		&item.TextHash,
		&sourceFileID,
		&item.CreatedAt,
		&item.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if category.Valid {
		item.Category = category.String
	}
	if sourceFileID.Valid {
		item.SourceFileID = &sourceFileID.String
	}

	return item, nil
}

func (r *contentRepository) GetAll(ctx context.Context, kind string, limit, offset int) ([]models.ContentItem, int, error) {
	countQuery := `SELECT COUNT(*) FROM content_items WHERE ($1 = '' OR kind = $1)`
	var total int
	if err := r.db.QueryRowContext(ctx, countQuery, kind).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, kind, title, category, analyzable_text, text_hash,
			source_file_id, created_at, updated_at
		FROM content_items
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.QueryContext(ctx, query, kind, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var items []models.ContentItem
	for rows.Next() {
		var item models.ContentItem
		var category sql.NullString
		var sourceFileID sql.NullString

		err := rows.Scan(
			&item.ID,
			&item.Kind,
			&item.Title,
			&category,
			&item.AnalyzableText,
			&item.TextHash,
			&sourceFileID,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}

		if category.Valid {
			item.Category = category.String
		}
		if sourceFileID.Valid {
			item.SourceFileID = &sourceFileID.String
		}

		items = append(items, item)
	}

	return items, total, rows.Err()
}

func (r *contentRepository) Update(ctx context.Context, item *models.ContentItem) error {
	query := `
		UPDATE content_items
		SET title = $1, category = $2, analyzable_text = $3, text_hash = $4, updated_at = $5
		WHERE id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		item.Title,
		item.Category,
		item.AnalyzableText,
		item.TextHash,
		item.UpdatedAt,
		item.ID,
	)

	return err
}

func (r *contentRepository) Delete(ctx context.Context, id string) error {
	// Assignments cascade via FK; readiness is recomputed by the caller.
	query := `DELETE FROM content_items WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *contentRepository) CountByKind(ctx context.Context) (int, int, error) {
	query := `
		SELECT
			COUNT(*) FILTER (WHERE kind = 'document'),
			COUNT(*) FILTER (WHERE kind = 'event')
		FROM content_items
	`

	var documents, events int
	err := r.db.QueryRowContext(ctx, query).Scan(&documents, &events)
	return documents, events, err
}

func (r *contentRepository) Exists(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM content_items WHERE id = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, id).Scan(&exists)
	return exists, err
}

func (r *contentRepository) Ping(ctx context.Context) error {
	return r.PostgresRepository.Ping(ctx)
}
