package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/RubachokBoss/award-tracker/internal/repository"
	"github.com/RubachokBoss/award-tracker/internal/service/engine"
)

// AwardService manages the award taxonomy. The awards table is the source of
// truth; a YAML taxonomy file (or the built-in defaults) only seeds it when
// the table is empty.
type AwardService interface {
	Seed(ctx context.Context) error
	LoadTaxonomy(ctx context.Context) (*engine.Taxonomy, error)
	GetAward(ctx context.Context, key string) (*models.AwardDefinition, error)
	ListAwards(ctx context.Context) ([]models.AwardDefinition, error)
	CreateAward(ctx context.Context, req *models.CreateAwardRequest) (*models.AwardDefinition, error)
	UpdateAward(ctx context.Context, key string, req *models.UpdateAwardRequest) (*models.AwardDefinition, error)
	DeleteAward(ctx context.Context, key string) error
}

type awardService struct {
	awardRepo    repository.AwardRepository
	taxonomyPath string
	logger       zerolog.Logger
}

func NewAwardService(awardRepo repository.AwardRepository, taxonomyPath string, logger zerolog.Logger) AwardService {
	return &awardService{
		awardRepo:    awardRepo,
		taxonomyPath: taxonomyPath,
		logger:       logger,
	}
}

func (s *awardService) Seed(ctx context.Context) error {
	count, err := s.awardRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count awards: %w", err)
	}
	if count > 0 {
		return nil
	}

	awards := engine.DefaultAwards()
	source := "defaults"
	if s.taxonomyPath != "" {
		loaded, err := engine.LoadTaxonomyFile(s.taxonomyPath)
		if err != nil {
			return fmt.Errorf("failed to load taxonomy file: %w", err)
		}
		awards = loaded
		source = s.taxonomyPath
	}

	now := time.Now()
	for _, award := range awards {
		award.CreatedAt = now
		award.UpdatedAt = now
		if err := s.awardRepo.Create(ctx, &award); err != nil {
			return fmt.Errorf("failed to seed award %s: %w", award.Key, err)
		}
		// Keep creation order stable so taxonomy order survives the
		// created_at sort.
		now = now.Add(time.Millisecond)
	}

	s.logger.Info().
		Int("awards", len(awards)).
		Str("source", source).
		Msg("Award taxonomy seeded")

	return nil
}

// LoadTaxonomy reads the full award list once. Each evaluation run works
// against the snapshot it loaded; concurrent admin edits apply to later runs.
func (s *awardService) LoadTaxonomy(ctx context.Context) (*engine.Taxonomy, error) {
	awards, err := s.awardRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load awards: %w", err)
	}
	if len(awards) == 0 {
		return nil, ErrNoTaxonomy
	}

	taxonomy, err := engine.NewTaxonomy(awards)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAward, err)
	}

	return taxonomy, nil
}

func (s *awardService) GetAward(ctx context.Context, key string) (*models.AwardDefinition, error) {
	award, err := s.awardRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get award: %w", err)
	}
	if award == nil {
		return nil, ErrAwardNotFound
	}
	return award, nil
}

func (s *awardService) ListAwards(ctx context.Context) ([]models.AwardDefinition, error) {
	awards, err := s.awardRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list awards: %w", err)
	}
	return awards, nil
}

func (s *awardService) CreateAward(ctx context.Context, req *models.CreateAwardRequest) (*models.AwardDefinition, error) {
	award := models.AwardDefinition{
		Key:       req.Key,
		Name:      req.Name,
		Criteria:  req.Criteria,
		Keywords:  req.Keywords,
		Threshold: req.Threshold,
	}

	if err := engine.ValidateAward(award); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAward, err)
	}

	exists, err := s.awardRepo.Exists(ctx, award.Key)
	if err != nil {
		return nil, fmt.Errorf("failed to check award existence: %w", err)
	}
	if exists {
		return nil, ErrAwardExists
	}

	now := time.Now()
	award.CreatedAt = now
	award.UpdatedAt = now

	if err := s.awardRepo.Create(ctx, &award); err != nil {
		return nil, fmt.Errorf("failed to create award: %w", err)
	}

	s.logger.Info().
		Str("award_key", award.Key).
		Int("criteria", len(award.Criteria)).
		Msg("Award created")

	return &award, nil
}

func (s *awardService) UpdateAward(ctx context.Context, key string, req *models.UpdateAwardRequest) (*models.AwardDefinition, error) {
	award, err := s.awardRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get award: %w", err)
	}
	if award == nil {
		return nil, ErrAwardNotFound
	}

	if req.Name != nil {
		award.Name = *req.Name
	}
	if req.Criteria != nil {
		award.Criteria = req.Criteria
	}
	if req.Keywords != nil {
		award.Keywords = req.Keywords
	}
	if req.Threshold != nil {
		award.Threshold = *req.Threshold
	}

	if err := engine.ValidateAward(*award); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAward, err)
	}

	award.UpdatedAt = time.Now()

	if err := s.awardRepo.Update(ctx, award); err != nil {
		return nil, fmt.Errorf("failed to update award: %w", err)
	}

	s.logger.Info().
		Str("award_key", award.Key).
		Msg("Award updated")

	return award, nil
}

// DeleteAward removes an award; its assignments and readiness snapshot go
// with it through the foreign key cascade.
func (s *awardService) DeleteAward(ctx context.Context, key string) error {
	award, err := s.awardRepo.GetByKey(ctx, key)
	if err != nil {
		return fmt.Errorf("failed to get award: %w", err)
	}
	if award == nil {
		return ErrAwardNotFound
	}

	if err := s.awardRepo.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete award: %w", err)
	}

	s.logger.Info().
		Str("award_key", key).
		Msg("Award deleted")

	return nil
}
