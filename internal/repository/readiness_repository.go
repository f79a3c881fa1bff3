package repository

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

type ReadinessRepository interface {
	Replace(ctx context.Context, status *models.ReadinessStatus) error
	GetByAwardKey(ctx context.Context, awardKey string) (*models.ReadinessStatus, error)
	GetAll(ctx context.Context) ([]models.ReadinessStatus, error)
	Delete(ctx context.Context, awardKey string) error
	Ping(ctx context.Context) error
}

type readinessRepository struct {
	*PostgresRepository
}

func NewReadinessRepository(db *sql.DB, logger zerolog.Logger) ReadinessRepository {
	return &readinessRepository{
		PostgresRepository: NewPostgresRepository(db, logger),
	}
}

// Replace writes the full snapshot in a single upsert. Concurrent recomputes
// for the same award race as last-writer-wins on the whole row; the row is
// never patched field by field, so no run can observe a half-updated status.
func (r *readinessRepository) Replace(ctx context.Context, status *models.ReadinessStatus) error {
	query := `
		INSERT INTO readiness_status (
			award_key, total_documents, total_events, total_items,
			satisfied_criteria, unsatisfied_criteria, readiness_percentage,
			is_ready, last_calculated
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (award_key) DO UPDATE SET
			total_documents = EXCLUDED.total_documents,
			total_events = EXCLUDED.total_events,
			total_items = EXCLUDED.total_items,
			satisfied_criteria = EXCLUDED.satisfied_criteria,
			unsatisfied_criteria = EXCLUDED.unsatisfied_criteria,
			readiness_percentage = EXCLUDED.readiness_percentage,
			is_ready = EXCLUDED.is_ready,
			last_calculated = EXCLUDED.last_calculated
	`

	_, err := r.db.ExecContext(ctx, query,
		status.AwardKey,
		status.TotalDocuments,
		status.TotalEvents,
		status.TotalItems,
		pq.Array(status.SatisfiedCriteria),
		pq.Array(status.UnsatisfiedCriteria),
		status.ReadinessPercentage,
		status.IsReady,
		status.LastCalculated,
	)

	return err
}

func (r *readinessRepository) GetByAwardKey(ctx context.Context, awardKey string) (*models.ReadinessStatus, error) {
	query := `
		SELECT award_key, total_documents, total_events, total_items,
			satisfied_criteria, unsatisfied_criteria, readiness_percentage,
			is_ready, last_calculated
		FROM readiness_status
		WHERE award_key = $1
	`

	status := &models.ReadinessStatus{}
	err := r.db.QueryRowContext(ctx, query, awardKey).Scan(
		&status.AwardKey,
		&status.TotalDocuments,
		&status.TotalEvents,
		&status.TotalItems,
		pq.Array(&status.SatisfiedCriteria),
		pq.Array(&status.UnsatisfiedCriteria),
		&status.ReadinessPercentage,
		&status.IsReady,
		&status.LastCalculated,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return status, nil
}

func (r *readinessRepository) GetAll(ctx context.Context) ([]models.ReadinessStatus, error) {
	query := `
		SELECT award_key, total_documents, total_events, total_items,
			satisfied_criteria, unsatisfied_criteria, readiness_percentage,
			is_ready, last_calculated
		FROM readiness_status
		ORDER BY award_key ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var statuses []models.ReadinessStatus
	for rows.Next() {
		var status models.ReadinessStatus
		err := rows.Scan(
			&status.AwardKey,
			&status.TotalDocuments,
			&status.TotalEvents,
			&status.TotalItems,
			pq.Array(&status.SatisfiedCriteria),
			pq.Array(&status.UnsatisfiedCriteria),
			&status.ReadinessPercentage,
			&status.IsReady,
			&status.LastCalculated,
		)
		if err != nil {
			return nil, err
		}
		statuses = append(statuses, status)
	}

	return statuses, rows.Err()
}

func (r *readinessRepository) Delete(ctx context.Context, awardKey string) error {
	query := `DELETE FROM readiness_status WHERE award_key = $1`
	_, err := r.db.ExecContext(ctx, query, awardKey)
	return err
}

func (r *readinessRepository) Ping(ctx context.Context) error {
	return r.PostgresRepository.Ping(ctx)
}
