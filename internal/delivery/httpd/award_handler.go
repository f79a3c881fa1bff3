package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) ListAwards(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	awards, err := h.awardService.ListAwards(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, awards)
}

func (h *Handler) GetAward(w http.ResponseWriter, r *http.Request) {
	awardKey := chi.URLParam(r, "award_key")
	if awardKey == "" {
		writeError(w, http.StatusBadRequest, "Award key is required")
		return
	}

	ctx := r.Context()
	award, err := h.awardService.GetAward(ctx, awardKey)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, award)
}

func (h *Handler) CreateAward(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	award, err := h.awardService.CreateAward(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeCreated(w, award)
}

func (h *Handler) UpdateAward(w http.ResponseWriter, r *http.Request) {
	awardKey := chi.URLParam(r, "award_key")
	if awardKey == "" {
		writeError(w, http.StatusBadRequest, "Award key is required")
		return
	}

	var req models.UpdateAwardRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	award, err := h.awardService.UpdateAward(ctx, awardKey, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	// Criteria or threshold edits change what counts as ready.
	if _, err := h.readinessService.Recompute(ctx, awardKey); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, award)
}

func (h *Handler) DeleteAward(w http.ResponseWriter, r *http.Request) {
	awardKey := chi.URLParam(r, "award_key")
	if awardKey == "" {
		writeError(w, http.StatusBadRequest, "Award key is required")
		return
	}

	ctx := r.Context()
	if err := h.awardService.DeleteAward(ctx, awardKey); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"award_key": awardKey,
		"message":   "Award deleted",
	})
}

func (h *Handler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	awardKey := chi.URLParam(r, "award_key")
	if awardKey == "" {
		writeError(w, http.StatusBadRequest, "Award key is required")
		return
	}

	ctx := r.Context()
	status, err := h.readinessService.GetStatus(ctx, awardKey)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, status)
}

func (h *Handler) RecalculateAward(w http.ResponseWriter, r *http.Request) {
	awardKey := chi.URLParam(r, "award_key")
	if awardKey == "" {
		writeError(w, http.StatusBadRequest, "Award key is required")
		return
	}

	ctx := r.Context()
	status, err := h.readinessService.Recompute(ctx, awardKey)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, status)
}

func (h *Handler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	awardKey := chi.URLParam(r, "award_key")
	if awardKey == "" {
		writeError(w, http.StatusBadRequest, "Award key is required")
		return
	}

	ctx := r.Context()
	recommendations, err := h.readinessService.GetRecommendations(ctx, awardKey)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, recommendations)
}

func (h *Handler) RecalculateAll(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	response, err := h.readinessService.RecomputeAll(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}
