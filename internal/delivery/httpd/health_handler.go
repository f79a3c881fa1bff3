package httpd

import (
	"net/http"
	"time"
)

func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "award-tracker",
		"timestamp": time.Now().UTC(),
		"version":   "1.0.0",
	}

	writeJSON(w, http.StatusOK, response)
}

func (h *Handler) GetServiceStatus(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Listing the taxonomy doubles as a database reachability check.
	awards, err := h.awardService.ListAwards(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to get service status")
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":    "degraded",
			"service":   "award-tracker",
			"timestamp": time.Now().UTC(),
		})
		return
	}

	writeSuccess(w, map[string]interface{}{
		"status":    "ok",
		"service":   "award-tracker",
		"awards":    len(awards),
		"timestamp": time.Now().UTC(),
	})
}
