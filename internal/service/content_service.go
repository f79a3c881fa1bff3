package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/RubachokBoss/award-tracker/internal/repository"
	"github.com/RubachokBoss/award-tracker/internal/service/integration"
	"github.com/RubachokBoss/award-tracker/pkg/utils"
)

// ContentService owns the content lifecycle and drives the engine pipeline:
// normalize -> classify -> persist assignments -> recompute readiness. All of
// it runs synchronously inside the request.
type ContentService interface {
	CreateContent(ctx context.Context, req *models.CreateContentRequest) (*models.ContentResponse, error)
	GetContent(ctx context.Context, id string) (*models.ContentResponse, error)
	ListContent(ctx context.Context, kind string, page, limit int) (*models.ContentListResponse, error)
	UpdateContent(ctx context.Context, id string, req *models.UpdateContentRequest) (*models.ContentResponse, error)
	DeleteContent(ctx context.Context, id string) error
	Reclassify(ctx context.Context, id string) (*models.ContentResponse, error)
}

type contentService struct {
	contentRepo      repository.ContentRepository
	assignmentRepo   repository.AssignmentRepository
	classification   ClassificationService
	readiness        ReadinessService
	extractionClient integration.ExtractionClient
	logger           zerolog.Logger
}

func NewContentService(
	contentRepo repository.ContentRepository,
	assignmentRepo repository.AssignmentRepository,
	classification ClassificationService,
	readiness ReadinessService,
	extractionClient integration.ExtractionClient,
	logger zerolog.Logger,
) ContentService {
	return &contentService{
		contentRepo:      contentRepo,
		assignmentRepo:   assignmentRepo,
		classification:   classification,
		readiness:        readiness,
		extractionClient: extractionClient,
		logger:           logger,
	}
}

func (s *contentService) CreateContent(ctx context.Context, req *models.CreateContentRequest) (*models.ContentResponse, error) {
	if !models.ValidKind(req.Kind) {
		return nil, ErrInvalidKind
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}

	text := req.AnalyzableText
	if text == "" && req.SourceFileID != nil && *req.SourceFileID != "" {
		extracted, err := s.extractionClient.GetExtractedText(ctx, *req.SourceFileID)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
		}
		text = extracted
	}

	now := time.Now()
	item := &models.ContentItem{
		ID:             uuid.New().String(),
		Kind:           req.Kind,
		Title:          req.Title,
		Category:       req.Category,
		AnalyzableText: text,
		TextHash:       utils.HashText(req.Title, text),
		SourceFileID:   req.SourceFileID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.contentRepo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create content item: %w", err)
	}

	assignments, affected, err := s.classification.ClassifyItem(ctx, item)
	if err != nil {
		return nil, err
	}

	if err := s.readiness.RecomputeMany(ctx, affected); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("content_id", item.ID).
		Str("kind", item.Kind).
		Int("assignments", len(assignments)).
		Msg("Content created")

	return &models.ContentResponse{Item: *item, Assignments: assignments}, nil
}

func (s *contentService) GetContent(ctx context.Context, id string) (*models.ContentResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, err := s.assignmentRepo.GetByContent(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load assignments: %w", err)
	}

	return &models.ContentResponse{Item: *item, Assignments: assignments}, nil
}

func (s *contentService) ListContent(ctx context.Context, kind string, page, limit int) (*models.ContentListResponse, error) {
	if kind != "" && !models.ValidKind(kind) {
		return nil, ErrInvalidKind
	}

	page, limit = utils.ClampPage(page, limit)
	offset := (page - 1) * limit

	items, total, err := s.contentRepo.GetAll(ctx, kind, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}

	return &models.ContentListResponse{
		Items: items,
		Total: total,
		Page:  page,
		Limit: limit,
	}, nil
}

func (s *contentService) UpdateContent(ctx context.Context, id string, req *models.UpdateContentRequest) (*models.ContentResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, ErrTitleRequired
		}
		item.Title = *req.Title
	}
	if req.Category != nil {
		item.Category = *req.Category
	}
	if req.AnalyzableText != nil {
		item.AnalyzableText = *req.AnalyzableText
	}

	newHash := utils.HashText(item.Title, item.AnalyzableText)
	textChanged := newHash != item.TextHash
	item.TextHash = newHash
	item.UpdatedAt = time.Now()

	if err := s.contentRepo.Update(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update content item: %w", err)
	}

	// Unchanged analysis text means unchanged scores; skip the reclassify.
	if !textChanged {
		assignments, err := s.assignmentRepo.GetByContent(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("failed to load assignments: %w", err)
		}
		return &models.ContentResponse{Item: *item, Assignments: assignments}, nil
	}

	assignments, affected, err := s.classification.ClassifyItem(ctx, item)
	if err != nil {
		return nil, err
	}

	if err := s.readiness.RecomputeMany(ctx, affected); err != nil {
		return nil, err
	}

	return &models.ContentResponse{Item: *item, Assignments: assignments}, nil
}

func (s *contentService) DeleteContent(ctx context.Context, id string) error {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return err
	}

	affected, err := s.assignmentRepo.AwardKeysForContent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load assignments: %w", err)
	}

	if err := s.contentRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete content item: %w", err)
	}

	if err := s.readiness.RecomputeMany(ctx, affected); err != nil {
		return err
	}

	s.logger.Info().
		Str("content_id", id).
		Str("kind", item.Kind).
		Int("affected_awards", len(affected)).
		Msg("Content deleted")

	return nil
}

// Reclassify forces a fresh classification run for one item, e.g. after its
// text was re-extracted upstream.
func (s *contentService) Reclassify(ctx context.Context, id string) (*models.ContentResponse, error) {
	item, err := s.getItem(ctx, id)
	if err != nil {
		return nil, err
	}

	assignments, affected, err := s.classification.ClassifyItem(ctx, item)
	if err != nil {
		return nil, err
	}

	if err := s.readiness.RecomputeMany(ctx, affected); err != nil {
		return nil, err
	}

	return &models.ContentResponse{Item: *item, Assignments: assignments}, nil
}

func (s *contentService) getItem(ctx context.Context, id string) (*models.ContentItem, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidContentID
	}

	item, err := s.contentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get content item: %w", err)
	}
	if item == nil {
		return nil, ErrContentNotFound
	}

	return item, nil
}
