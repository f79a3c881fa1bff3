package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/RubachokBoss/award-tracker/internal/queue"
	"github.com/RubachokBoss/award-tracker/internal/repository"
	"github.com/RubachokBoss/award-tracker/internal/service/engine"
)

// ReadinessService recomputes and serves the per-award rollups. Every
// recompute reads the current assignment set and writes a complete snapshot;
// concurrent recomputes for the same award settle as last-writer-wins, which
// is accepted behavior, not a fault.
type ReadinessService interface {
	Recompute(ctx context.Context, awardKey string) (*models.ReadinessStatus, error)
	RecomputeMany(ctx context.Context, awardKeys []string) error
	RecomputeAll(ctx context.Context) (*models.RecalculateResponse, error)
	GetStatus(ctx context.Context, awardKey string) (*models.ReadinessStatus, error)
	GetRecommendations(ctx context.Context, awardKey string) ([]models.Recommendation, error)
}

type ReadinessConfig struct {
	MinPercentage int
}

type readinessService struct {
	awardService   AwardService
	assignmentRepo repository.AssignmentRepository
	readinessRepo  repository.ReadinessRepository
	publisher      queue.EventPublisher
	config         ReadinessConfig
	logger         zerolog.Logger
}

func NewReadinessService(
	awardService AwardService,
	assignmentRepo repository.AssignmentRepository,
	readinessRepo repository.ReadinessRepository,
	publisher queue.EventPublisher,
	config ReadinessConfig,
	logger zerolog.Logger,
) ReadinessService {
	if config.MinPercentage <= 0 {
		config.MinPercentage = engine.DefaultReadinessPercentage
	}
	return &readinessService{
		awardService:   awardService,
		assignmentRepo: assignmentRepo,
		readinessRepo:  readinessRepo,
		publisher:      publisher,
		config:         config,
		logger:         logger,
	}
}

func (s *readinessService) Recompute(ctx context.Context, awardKey string) (*models.ReadinessStatus, error) {
	award, err := s.awardService.GetAward(ctx, awardKey)
	if err != nil {
		return nil, err
	}

	items, err := s.assignmentRepo.GetAssignedItems(ctx, awardKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load assigned items: %w", err)
	}

	status := engine.ComputeReadiness(*award, items, s.config.MinPercentage, time.Now())

	if err := s.readinessRepo.Replace(ctx, &status); err != nil {
		return nil, fmt.Errorf("failed to store readiness status: %w", err)
	}

	if err := s.publisher.PublishReadinessUpdated(ctx, models.ReadinessUpdatedEvent{
		AwardKey:            status.AwardKey,
		IsReady:             status.IsReady,
		ReadinessPercentage: status.ReadinessPercentage,
		TotalItems:          status.TotalItems,
		CalculatedAt:        status.LastCalculated,
	}); err != nil {
		s.logger.Warn().Err(err).Str("award_key", awardKey).Msg("Failed to publish readiness event")
	}

	s.logger.Info().
		Str("award_key", awardKey).
		Int("total_items", status.TotalItems).
		Int("readiness_percentage", status.ReadinessPercentage).
		Bool("is_ready", status.IsReady).
		Msg("Readiness recomputed")

	return &status, nil
}

func (s *readinessService) RecomputeMany(ctx context.Context, awardKeys []string) error {
	seen := make(map[string]bool, len(awardKeys))
	for _, key := range awardKeys {
		if seen[key] {
			continue
		}
		seen[key] = true
		if _, err := s.Recompute(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (s *readinessService) RecomputeAll(ctx context.Context) (*models.RecalculateResponse, error) {
	awards, err := s.awardService.ListAwards(ctx)
	if err != nil {
		return nil, err
	}

	response := &models.RecalculateResponse{
		Statuses: make([]models.ReadinessStatus, 0, len(awards)),
	}

	for _, award := range awards {
		status, err := s.Recompute(ctx, award.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to recompute award %s: %w", award.Key, err)
		}
		response.Statuses = append(response.Statuses, *status)
		response.Recalculated++
	}

	response.CompletedAt = time.Now()
	return response, nil
}

// GetStatus returns the stored snapshot, computing one on first request for
// an award that has never been rolled up.
func (s *readinessService) GetStatus(ctx context.Context, awardKey string) (*models.ReadinessStatus, error) {
	if _, err := s.awardService.GetAward(ctx, awardKey); err != nil {
		return nil, err
	}

	status, err := s.readinessRepo.GetByAwardKey(ctx, awardKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get readiness status: %w", err)
	}
	if status == nil {
		return s.Recompute(ctx, awardKey)
	}

	return status, nil
}

func (s *readinessService) GetRecommendations(ctx context.Context, awardKey string) ([]models.Recommendation, error) {
	award, err := s.awardService.GetAward(ctx, awardKey)
	if err != nil {
		return nil, err
	}

	status, err := s.GetStatus(ctx, awardKey)
	if err != nil {
		return nil, err
	}

	return engine.Recommend(*award, *status), nil
}
