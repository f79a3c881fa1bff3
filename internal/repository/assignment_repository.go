package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

type AssignmentRepository interface {
	Get(ctx context.Context, contentID, awardKey string) (*models.Assignment, error)
	GetByContent(ctx context.Context, contentID string) ([]models.Assignment, error)
	GetAssignedItems(ctx context.Context, awardKey string) ([]models.AssignedItem, error)
	AwardKeysForContent(ctx context.Context, contentID string) ([]string, error)
	ReplaceForContent(ctx context.Context, contentID string, assignments []models.Assignment) error
	Upsert(ctx context.Context, assignment *models.Assignment) error
	Delete(ctx context.Context, contentID, awardKey string) error
	DeleteByContent(ctx context.Context, contentID string) error
	CountAll(ctx context.Context) (int, error)
	CountOverrides(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

type assignmentRepository struct {
	*PostgresRepository
}

func NewAssignmentRepository(db *sql.DB, logger zerolog.Logger) AssignmentRepository {
	return &assignmentRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

func (r *assignmentRepository) Get(ctx context.Context, contentID, awardKey string) (*models.Assignment, error) {
	query := `
		SELECT content_id, award_key, confidence, score, matched_keywords,
			satisfied_criteria, is_manual_override, created_at, updated_at
		FROM assignments
		WHERE content_id = $1 AND award_key = $2
	`

	assignment := &models.Assignment{}
	err := r.db.QueryRowContext(ctx, query, contentID, awardKey).Scan(
		&assignment.ContentID,
		&assignment.AwardKey,
		&assignment.Confidence,
		&assignment.Score,
		pq.Array(&assignment.MatchedKeywords),
		pq.Array(&assignment.SatisfiedCriteria),
		&assignment.IsManualOverride,
		&assignment.CreatedAt,
		&assignment.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return assignment, nil
}

func (r *assignmentRepository) GetByContent(ctx context.Context, contentID string) ([]models.Assignment, error) {
	query := `
		SELECT content_id, award_key, confidence, score, matched_keywords,
			satisfied_criteria, is_manual_override, created_at, updated_at
		FROM assignments
		WHERE content_id = $1
		ORDER BY confidence DESC, award_key ASC
	`

	rows, err := r.db.QueryContext(ctx, query, contentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAssignments(rows)
}

// GetAssignedItems returns the assignments for one award joined with the
// content fields the readiness aggregator needs.
func (r *assignmentRepository) GetAssignedItems(ctx context.Context, awardKey string) ([]models.AssignedItem, error) {
	query := `
		SELECT c.id, c.kind, c.title, c.analyzable_text, a.is_manual_override
		FROM assignments a
		JOIN content_items c ON c.id = a.content_id
		WHERE a.award_key = $1
		ORDER BY c.created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, awardKey)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.AssignedItem
	for rows.Next() {
		var item models.AssignedItem
		err := rows.Scan(
			&item.ContentID,
			&item.Kind,
			&item.Title,
			&item.AnalyzableText,
			&item.IsManualOverride,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}

func (r *assignmentRepository) AwardKeysForContent(ctx context.Context, contentID string) ([]string, error) {
	query := `SELECT award_key FROM assignments WHERE content_id = $1`

	rows, err := r.db.QueryContext(ctx, query, contentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}

	return keys, rows.Err()
}

// ReplaceForContent swaps the item's automatic assignments for the given list
// in one transaction. Manual-override rows survive untouched; an incoming
// assignment for an award that already has an override is skipped rather than
// allowed to overwrite the human decision.
func (r *assignmentRepository) ReplaceForContent(ctx context.Context, contentID string, assignments []models.Assignment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM assignments WHERE content_id = $1 AND is_manual_override = FALSE`,
		contentID,
	); err != nil {
		return err
	}

	insert := `
		INSERT INTO assignments (
			content_id, award_key, confidence, score, matched_keywords,
			satisfied_criteria, is_manual_override, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (content_id, award_key) DO NOTHING
	`

	for _, a := range assignments {
		if _, err := tx.ExecContext(ctx, insert,
			a.ContentID,
			a.AwardKey,
			a.Confidence,
			a.Score,
			pq.Array(a.MatchedKeywords),
			pq.Array(a.SatisfiedCriteria),
			a.IsManualOverride,
			a.CreatedAt,
			a.UpdatedAt,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *assignmentRepository) Upsert(ctx context.Context, assignment *models.Assignment) error {
	query := `
		INSERT INTO assignments (
			content_id, award_key, confidence, score, matched_keywords,
			satisfied_criteria, is_manual_override, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (content_id, award_key) DO UPDATE SET
			confidence = EXCLUDED.confidence,
			score = EXCLUDED.score,
			matched_keywords = EXCLUDED.matched_keywords,
			satisfied_criteria = EXCLUDED.satisfied_criteria,
			is_manual_override = EXCLUDED.is_manual_override,
			updated_at = EXCLUDED.updated_at
	`

	_, err := r.db.ExecContext(ctx, query,
		assignment.ContentID,
		assignment.AwardKey,
		assignment.Confidence,
		assignment.Score,
		pq.Array(assignment.MatchedKeywords),
		pq.Array(assignment.SatisfiedCriteria),
		assignment.IsManualOverride,
		assignment.CreatedAt,
		assignment.UpdatedAt,
	)

	return err
}

func (r *assignmentRepository) Delete(ctx context.Context, contentID, awardKey string) error {
	query := `DELETE FROM assignments WHERE content_id = $1 AND award_key = $2`
	_, err := r.db.ExecContext(ctx, query, contentID, awardKey)
	return err
}

func (r *assignmentRepository) DeleteByContent(ctx context.Context, contentID string) error {
	query := `DELETE FROM assignments WHERE content_id = $1`
	_, err := r.db.ExecContext(ctx, query, contentID)
	return err
}

func (r *assignmentRepository) CountAll(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM assignments`
	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func (r *assignmentRepository) CountOverrides(ctx context.Context) (int, error) {
	query := `SELECT COUNT(*) FROM assignments WHERE is_manual_override = TRUE`
	var count int
	err := r.db.QueryRowContext(ctx, query).Scan(&count)
	return count, err
}

func (r *assignmentRepository) Ping(ctx context.Context) error {
	return r.PostgresRepository.Ping(ctx)
}

func scanAssignments(rows *sql.Rows) ([]models.Assignment, error) {
	var assignments []models.Assignment
	for rows.Next() {
		var a models.Assignment
		err := rows.Scan(
			&a.ContentID,
			&a.AwardKey,
			&a.Confidence,
			&a.Score,
			pq.Array(&a.MatchedKeywords),
			pq.Array(&a.SatisfiedCriteria),
			&a.IsManualOverride,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		assignments = append(assignments, a)
	}

	return assignments, rows.Err()
}
