package httpd

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/RubachokBoss/award-tracker/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

type Handler struct {
	contentService        service.ContentService
	awardService          service.AwardService
	classificationService service.ClassificationService
	readinessService      service.ReadinessService
	reportService         service.ReportService
	logger                zerolog.Logger
}

func NewHandler(
	contentService service.ContentService,
	awardService service.AwardService,
	classificationService service.ClassificationService,
	readinessService service.ReadinessService,
	reportService service.ReportService,
	logger zerolog.Logger,
) *Handler {
	return &Handler{
		contentService:        contentService,
		awardService:          awardService,
		classificationService: classificationService,
		readinessService:      readinessService,
		reportService:         reportService,
		logger:                logger,
	}
}

func (h *Handler) RegisterRoutes(router chi.Router) {
	// Health check
	router.Get("/health", h.HealthCheck)
	router.Get("/status", h.GetServiceStatus)
	router.Get("/stats", h.GetStats)

	// Versioned API
	router.Route("/api/v1", func(api chi.Router) {
		// Content endpoints
		api.Route("/content", func(r chi.Router) {
			r.Post("/", h.CreateContent)
			r.Get("/", h.ListContent)
			r.Get("/{content_id}", h.GetContent)
			r.Put("/{content_id}", h.UpdateContent)
			r.Delete("/{content_id}", h.DeleteContent)
			r.Post("/{content_id}/reclassify", h.ReclassifyContent)
			r.Post("/{content_id}/overrides", h.ApplyOverride)
		})

		// Dry-run classification
		api.Post("/classify", h.ClassifyText)

		// Award taxonomy endpoints
		api.Route("/awards", func(r chi.Router) {
			r.Get("/", h.ListAwards)
			r.Post("/", h.CreateAward)
			r.Get("/{award_key}", h.GetAward)
			r.Put("/{award_key}", h.UpdateAward)
			r.Delete("/{award_key}", h.DeleteAward)
			r.Get("/{award_key}/readiness", h.GetReadiness)
			r.Post("/{award_key}/recalculate", h.RecalculateAward)
			r.Get("/{award_key}/recommendations", h.GetRecommendations)
		})

		// Readiness endpoints
		api.Post("/readiness/recalculate", h.RecalculateAll)
		api.Get("/report", h.GetStatusReport)
	})
}

// handleServiceError translates service sentinel errors into HTTP codes.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidContentID),
		errors.Is(err, service.ErrInvalidKind),
		errors.Is(err, service.ErrTitleRequired),
		errors.Is(err, service.ErrInvalidAction),
		errors.Is(err, service.ErrInvalidAward):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrContentNotFound),
		errors.Is(err, service.ErrAwardNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAwardExists):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrNoTaxonomy):
		writeError(w, http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrExtractionFailed):
		h.logger.Error().Err(err).Msg("Extraction service error")
		writeError(w, http.StatusBadGateway, "Extraction service unavailable")
	default:
		h.logger.Error().Err(err).Msg("Request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func getIntQueryParam(r *http.Request, key string, defaultValue int) int {
	value := r.URL.Query().Get(key)
	if value == "" {
		return defaultValue
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}

	return intValue
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]interface{}{
		"error":   http.StatusText(status),
		"message": message,
	})
}

func writeSuccess(w http.ResponseWriter, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, http.StatusOK, response)
}

func writeCreated(w http.ResponseWriter, data interface{}) {
	response := map[string]interface{}{
		"success": true,
		"data":    data,
	}
	writeJSON(w, http.StatusCreated, response)
}
