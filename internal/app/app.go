package app

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/RubachokBoss/award-tracker/internal/config"
	"github.com/RubachokBoss/award-tracker/internal/delivery/httpd"
	"github.com/RubachokBoss/award-tracker/internal/queue"
	"github.com/RubachokBoss/award-tracker/internal/repository"
	"github.com/RubachokBoss/award-tracker/internal/service"
	"github.com/RubachokBoss/award-tracker/internal/service/integration"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
)

type App struct {
	server       *http.Server
	logger       zerolog.Logger
	config       *config.Config
	db           *sql.DB
	rabbitMQRepo repository.RabbitMQRepository
	awardService service.AwardService
}

func New(cfg *config.Config, log zerolog.Logger, db *sql.DB) (*App, error) {
	var rabbitMQRepo repository.RabbitMQRepository
	var publisher queue.EventPublisher = queue.NopPublisher{}

	if cfg.RabbitMQ.Enabled {
		broker, err := repository.NewRabbitMQRepository(cfg.RabbitMQ.URL, log)
		if err != nil {
			return nil, err
		}
		if err := broker.SetupExchange(cfg.RabbitMQ.Exchange); err != nil {
			return nil, err
		}
		rabbitMQRepo = broker
		publisher = queue.NewEventPublisher(broker, cfg.RabbitMQ.Exchange, log)
	} else {
		log.Info().Msg("RabbitMQ disabled, events will not be published")
	}

	awardRepo := repository.NewAwardRepository(db, log)
	contentRepo := repository.NewContentRepository(db, log)
	assignmentRepo := repository.NewAssignmentRepository(db, log)
	readinessRepo := repository.NewReadinessRepository(db, log)

	extractionClient := integration.NewExtractionClient(
		cfg.Services.Extraction.URL,
		cfg.Services.Extraction.Timeout,
		cfg.Services.Extraction.RetryCount,
		cfg.Services.Extraction.RetryDelay,
		log,
	)

	awardService := service.NewAwardService(awardRepo, cfg.Engine.TaxonomyPath, log)

	classificationService := service.NewClassificationService(
		awardService,
		contentRepo,
		assignmentRepo,
		publisher,
		service.ClassificationConfig{
			Strategy:        cfg.Engine.Strategy,
			AcceptThreshold: cfg.Engine.AcceptThreshold,
		},
		log,
	)

	readinessService := service.NewReadinessService(
		awardService,
		assignmentRepo,
		readinessRepo,
		publisher,
		service.ReadinessConfig{
			MinPercentage: cfg.Engine.ReadinessPercentage,
		},
		log,
	)

	contentService := service.NewContentService(
		contentRepo,
		assignmentRepo,
		classificationService,
		readinessService,
		extractionClient,
		log,
	)

	reportService := service.NewReportService(
		awardService,
		readinessService,
		contentRepo,
		assignmentRepo,
		log,
	)

	handler := httpd.NewHandler(
		contentService,
		awardService,
		classificationService,
		readinessService,
		reportService,
		log,
	)

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   cfg.CORS.AllowedMethods,
		AllowedHeaders:   cfg.CORS.AllowedHeaders,
		ExposedHeaders:   cfg.CORS.ExposedHeaders,
		AllowCredentials: cfg.CORS.AllowCredentials,
		MaxAge:           cfg.CORS.MaxAge,
	}))

	handler.RegisterRoutes(router)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return &App{
		server:       server,
		logger:       log,
		config:       cfg,
		db:           db,
		rabbitMQRepo: rabbitMQRepo,
		awardService: awardService,
	}, nil
}

func (a *App) Run() error {
	// Seed the taxonomy before accepting traffic so classification never sees
	// an empty awards table on a fresh install.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.awardService.Seed(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to seed award taxonomy")
		return err
	}

	a.logger.Info().Msgf("Starting award tracker on %s", a.config.Server.Address)
	return a.server.ListenAndServe()
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info().Msg("Shutting down award tracker...")

	if a.rabbitMQRepo != nil {
		if err := a.rabbitMQRepo.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close RabbitMQ connection")
		}
	}

	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Error().Err(err).Msg("Failed to close database connection")
		}
	}

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error().Err(err).Msg("Failed to shutdown HTTP server")
		return err
	}

	a.logger.Info().Msg("Award tracker stopped")
	return nil
}
