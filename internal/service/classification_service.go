package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/RubachokBoss/award-tracker/internal/queue"
	"github.com/RubachokBoss/award-tracker/internal/repository"
	"github.com/RubachokBoss/award-tracker/internal/service/engine"
)

// ClassificationService runs the classifier and manages the assignment set:
// automatic replace-all persists on (re)classification and manual overrides
// that bypass scoring.
type ClassificationService interface {
	ClassifyText(ctx context.Context, req *models.ClassifyRequest) (*models.ClassifyResponse, error)
	ClassifyItem(ctx context.Context, item *models.ContentItem) ([]models.Assignment, []string, error)
	ApplyOverride(ctx context.Context, contentID string, req *models.OverrideRequest) ([]string, error)
}

type ClassificationConfig struct {
	Strategy        string
	AcceptThreshold float64
}

const (
	StrategyLinear = "linear"
	StrategyRubric = "rubric"
)

type classificationService struct {
	awardService   AwardService
	contentRepo    repository.ContentRepository
	assignmentRepo repository.AssignmentRepository
	publisher      queue.EventPublisher
	classifier     engine.Classifier
	config         ClassificationConfig
	logger         zerolog.Logger
}

func NewClassificationService(
	awardService AwardService,
	contentRepo repository.ContentRepository,
	assignmentRepo repository.AssignmentRepository,
	publisher queue.EventPublisher,
	config ClassificationConfig,
	logger zerolog.Logger,
) ClassificationService {
	if config.AcceptThreshold <= 0 {
		config.AcceptThreshold = engine.DefaultAcceptThreshold
	}

	var classifier engine.Classifier
	switch config.Strategy {
	case StrategyRubric:
		classifier = engine.NewRubricClassifier()
	default:
		classifier = engine.NewLinearClassifier()
	}

	return &classificationService{
		awardService:   awardService,
		contentRepo:    contentRepo,
		assignmentRepo: assignmentRepo,
		publisher:      publisher,
		classifier:     classifier,
		config:         config,
		logger:         logger,
	}
}

// ClassifyText scores free text against the taxonomy without touching any
// stored state. Empty text is not an error; it scores zero everywhere.
func (s *classificationService) ClassifyText(ctx context.Context, req *models.ClassifyRequest) (*models.ClassifyResponse, error) {
	taxonomy, err := s.awardService.LoadTaxonomy(ctx)
	if err != nil {
		return nil, err
	}

	text := engine.Normalize(req.Title, req.Text)
	results := engine.ClassifyAll(s.classifier, text, taxonomy)
	assignable := engine.Assign(results, s.config.AcceptThreshold)

	return &models.ClassifyResponse{
		Results:     results,
		Assignable:  assignable,
		Threshold:   s.config.AcceptThreshold,
		EvaluatedAt: time.Now(),
	}, nil
}

// ClassifyItem reclassifies one content item and replaces its automatic
// assignments. It returns the new assignment list plus the union of award
// keys whose readiness is now stale (old and new assignments alike).
func (s *classificationService) ClassifyItem(ctx context.Context, item *models.ContentItem) ([]models.Assignment, []string, error) {
	taxonomy, err := s.awardService.LoadTaxonomy(ctx)
	if err != nil {
		return nil, nil, err
	}

	previousKeys, err := s.assignmentRepo.AwardKeysForContent(ctx, item.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load previous assignments: %w", err)
	}

	text := engine.Normalize(item.Title, item.AnalyzableText)
	results := engine.ClassifyAll(s.classifier, text, taxonomy)
	assignments := engine.Assign(results, s.config.AcceptThreshold)

	now := time.Now()
	for i := range assignments {
		assignments[i].ContentID = item.ID
		assignments[i].CreatedAt = now
		assignments[i].UpdatedAt = now
	}

	if err := s.assignmentRepo.ReplaceForContent(ctx, item.ID, assignments); err != nil {
		return nil, nil, fmt.Errorf("failed to replace assignments: %w", err)
	}

	affected := unionKeys(previousKeys, assignmentKeys(assignments))

	if err := s.publisher.PublishContentClassified(ctx, models.ContentClassifiedEvent{
		ContentID:    item.ID,
		Kind:         item.Kind,
		AwardKeys:    assignmentKeys(assignments),
		ClassifiedAt: now,
	}); err != nil {
		s.logger.Warn().Err(err).Str("content_id", item.ID).Msg("Failed to publish classification event")
	}

	s.logger.Info().
		Str("content_id", item.ID).
		Str("kind", item.Kind).
		Int("assignments", len(assignments)).
		Msg("Content classified")

	return assignments, affected, nil
}

// ApplyOverride forces or removes an assignment by human decision. Returns
// the award keys whose readiness must be recomputed.
func (s *classificationService) ApplyOverride(ctx context.Context, contentID string, req *models.OverrideRequest) ([]string, error) {
	if _, err := uuid.Parse(contentID); err != nil {
		return nil, ErrInvalidContentID
	}

	exists, err := s.contentRepo.Exists(ctx, contentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check content existence: %w", err)
	}
	if !exists {
		return nil, ErrContentNotFound
	}

	// Unknown award key must fail before any state changes.
	if _, err := s.awardService.GetAward(ctx, req.AwardKey); err != nil {
		return nil, err
	}

	action := models.OverrideAction(req.Action)
	switch action {
	case models.OverrideActionAdd:
		assignment := engine.OverrideAssignment(contentID, req.AwardKey)
		now := time.Now()
		assignment.CreatedAt = now
		assignment.UpdatedAt = now
		if err := s.assignmentRepo.Upsert(ctx, &assignment); err != nil {
			return nil, fmt.Errorf("failed to store override: %w", err)
		}
	case models.OverrideActionRemove:
		if err := s.assignmentRepo.Delete(ctx, contentID, req.AwardKey); err != nil {
			return nil, fmt.Errorf("failed to remove assignment: %w", err)
		}
	default:
		return nil, ErrInvalidAction
	}

	if err := s.publisher.PublishOverrideApplied(ctx, models.OverrideAppliedEvent{
		ContentID: contentID,
		AwardKey:  req.AwardKey,
		Action:    action.String(),
		AppliedAt: time.Now(),
	}); err != nil {
		s.logger.Warn().Err(err).Str("content_id", contentID).Msg("Failed to publish override event")
	}

	s.logger.Info().
		Str("content_id", contentID).
		Str("award_key", req.AwardKey).
		Str("action", action.String()).
		Msg("Manual override applied")

	return []string{req.AwardKey}, nil
}

func assignmentKeys(assignments []models.Assignment) []string {
	keys := make([]string, 0, len(assignments))
	for _, a := range assignments {
		keys = append(keys, a.AwardKey)
	}
	return keys
}

func unionKeys(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, key := range append(append([]string{}, a...), b...) {
		if !seen[key] {
			seen[key] = true
			out = append(out, key)
		}
	}
	return out
}
