package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

type AwardRepository interface {
	Create(ctx context.Context, award *models.AwardDefinition) error
	GetByKey(ctx context.Context, key string) (*models.AwardDefinition, error)
	GetAll(ctx context.Context) ([]models.AwardDefinition, error)
	Update(ctx context.Context, award *models.AwardDefinition) error
	Delete(ctx context.Context, key string) error
	Count(ctx context.Context) (int, error)
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}

type awardRepository struct {
	*PostgresRepository
}

func NewAwardRepository(db *sql.DB, logger zerolog.Logger) AwardRepository {
	return &awardRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *awardRepository) Create(ctx context.Context, award *models.AwardDefinition) error {
	query := `
		INSERT INTO awards (key, name, criteria, keywords, threshold, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		award.Key,
		award.Name,
		pq.Array(award.Criteria),
		pq.Array(award.Keywords),
		award.Threshold,
		award.CreatedAt,
		award.UpdatedAt,
	)

	return err
}

func (r *awardRepository) GetByKey(ctx context.Context, key string) (*models.AwardDefinition, error) {
	query := `
		SELECT key, name, criteria, keywords, threshold, created_at, updated_at
		FROM awards
		WHERE key = $1
	`

	award := &models.AwardDefinition{}
	err := r.db.QueryRowContext(ctx, query, key).Scan(
		&award.Key,
		&award.Name,
		pq.Array(&award.Criteria),
		pq.Array(&award.Keywords),
		&award.Threshold,
		&award.CreatedAt,
		&award.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return award, nil
}

func (r *awardRepository) GetAll(ctx context.Context) ([]models.AwardDefinition, error) {
	// Taxonomy order is creation order; the assigner relies on it for
	// stable tie-breaking.
	query := `
		SELECT key, name, criteria, keywords, threshold, created_at, updated_at
		FROM awards
		ORDER BY created_at ASC, key ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var awards []models.AwardDefinition
	for rows.Next() {
		var award models.AwardDefinition
		err := rows.Scan(
			&award.Key,
			&award.Name,
			pq.Array(&award.Criteria),
			pq.Array(&award.Keywords),
			&award.Threshold,
			&award.CreatedAt,
			&award.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		awards = append(awards, award)
	}

	return awards, rows.Err()
}

func (r *awardRepository) Update(ctx context.Context, award *models.AwardDefinition) error {
	query := `
		UPDATE awards
		SET name = $1, criteria = $2, keywords = $3, threshold = $4, updated_at = $5
		WHERE key = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		award.Name,
		pq.Array(award.Criteria),
		pq.Array(award.Keywords),
		award.Threshold,
		award.UpdatedAt,
		award.Key,
	)

	return err
}

func (r *awardRepository) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM awards WHERE key = $1`
	_, err := r.db.ExecContext(ctx, query, key)
	return err
}

func (r *awardRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM awards`
	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func (r *awardRepository) Exists(ctx context.Context, key string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM awards WHERE key = $1)`
	var exists bool
	err := r.db.QueryRowContext(ctx, query, key).Scan(&exists)
	return exists, err
}

func (r *awardRepository) Ping(ctx context.Context) error {
	return r.PostgresRepository.Ping(ctx)
}
