package service

import (
	"github.com/rs/zerolog"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/RubachokBoss/award-tracker/internal/queue"
)

type testEnv struct {
	awardRepo      *fakeAwardRepo
	contentRepo    *fakeContentRepo
	assignmentRepo *fakeAssignmentRepo
	readinessRepo  *fakeReadinessRepo
	extraction     *fakeExtractionClient

	awards         AwardService
	classification ClassificationService
	readiness      ReadinessService
	content        ContentService
	report         ReportService
}

func newTestEnv(awards ...models.AwardDefinition) *testEnv {
	log := zerolog.Nop()

	awardRepo := &fakeAwardRepo{awards: awards}
	contentRepo := newFakeContentRepo()
	assignmentRepo := newFakeAssignmentRepo(contentRepo)
	readinessRepo := newFakeReadinessRepo()
	extraction := &fakeExtractionClient{texts: make(map[string]string)}

	awardService := NewAwardService(awardRepo, "", log)

	classification := NewClassificationService(
		awardService,
		contentRepo,
		assignmentRepo,
		queue.NopPublisher{},
		ClassificationConfig{Strategy: StrategyLinear, AcceptThreshold: 0.2},
		log,
	)

	readiness := NewReadinessService(
		awardService,
		assignmentRepo,
		readinessRepo,
		queue.NopPublisher{},
		ReadinessConfig{MinPercentage: 80},
		log,
	)

	content := NewContentService(
		contentRepo,
		assignmentRepo,
		classification,
		readiness,
		extraction,
		log,
	)

	report := NewReportService(awardService, readiness, contentRepo, assignmentRepo, log)

	return &testEnv{
		awardRepo:      awardRepo,
		contentRepo:    contentRepo,
		assignmentRepo: assignmentRepo,
		readinessRepo:  readinessRepo,
		extraction:     extraction,
		awards:         awardService,
		classification: classification,
		readiness:      readiness,
		content:        content,
		report:         report,
	}
}

func leadershipAward() models.AwardDefinition {
	return models.AwardDefinition{
		Key:       "leadership",
		Name:      "Leadership Excellence",
		Criteria:  []string{"Lead with Purpose"},
		Keywords:  []string{"leadership", "vision"},
		Threshold: 1,
	}
}

func serviceAward() models.AwardDefinition {
	return models.AwardDefinition{
		Key:       "community-service",
		Name:      "Community Service",
		Criteria:  []string{"Serve the Local Community", "Document Service Hours"},
		Keywords:  []string{"service", "volunteer"},
		Threshold: 2,
	}
}
