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

// ReportService assembles the read-only dashboard aggregate: summary numbers,
// per-award detail and derived recommendations.
type ReportService interface {
	GetStatusReport(ctx context.Context) (*models.StatusReport, error)
}

type reportService struct {
	awardService   AwardService
	readiness      ReadinessService
	contentRepo    repository.ContentRepository
	assignmentRepo repository.AssignmentRepository
	logger         zerolog.Logger
}

func NewReportService(
	awardService AwardService,
	readiness ReadinessService,
	contentRepo repository.ContentRepository,
	assignmentRepo repository.AssignmentRepository,
	logger zerolog.Logger,
) ReportService {
	return &reportService{
		awardService:   awardService,
		readiness:      readiness,
		contentRepo:    contentRepo,
		assignmentRepo: assignmentRepo,
		logger:         logger,
	}
}

func (s *reportService) GetStatusReport(ctx context.Context) (*models.StatusReport, error) {
	awards, err := s.awardService.ListAwards(ctx)
	if err != nil {
		return nil, err
	}

	report := &models.StatusReport{
		Awards:      make([]models.AwardReport, 0, len(awards)),
		GeneratedAt: time.Now(),
	}

	percentageSum := 0
	for _, award := range awards {
		status, err := s.readiness.GetStatus(ctx, award.Key)
		if err != nil {
			return nil, fmt.Errorf("failed to get status for award %s: %w", award.Key, err)
		}

		report.Awards = append(report.Awards, models.AwardReport{
			Award:           award,
			Status:          *status,
			Recommendations: engine.Recommend(award, *status),
		})

		percentageSum += status.ReadinessPercentage
		if status.IsReady {
			report.Summary.ReadyAwards++
		}
	}

	report.Summary.TotalAwards = len(awards)
	if len(awards) > 0 {
		report.Summary.AvgReadiness = percentageSum / len(awards)
	}

	documents, events, err := s.contentRepo.CountByKind(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count content: %w", err)
	}
	report.Summary.TotalDocuments = documents
	report.Summary.TotalEvents = events

	assigned, err := s.assignmentRepo.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count assignments: %w", err)
	}
	report.Summary.TotalAssigned = assigned

	overrides, err := s.assignmentRepo.CountOverrides(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count overrides: %w", err)
	}
	report.Summary.ManualOverrides = overrides

	return report, nil
}
