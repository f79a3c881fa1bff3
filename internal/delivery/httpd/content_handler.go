package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/RubachokBoss/award-tracker/internal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) CreateContent(w http.ResponseWriter, r *http.Request) {
	var req models.CreateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	response, err := h.contentService.CreateContent(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeCreated(w, response)
}

func (h *Handler) GetContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "content_id")
	if contentID == "" {
		writeError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	ctx := r.Context()
	response, err := h.contentService.GetContent(ctx, contentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) ListContent(w http.ResponseWriter, r *http.Request) {
	kind := r.URL.Query().Get("kind")
	page := getIntQueryParam(r, "page", 1)
	limit := getIntQueryParam(r, "limit", 20)

	ctx := r.Context()
	response, err := h.contentService.ListContent(ctx, kind, page, limit)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) UpdateContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "content_id")
	if contentID == "" {
		writeError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	var req models.UpdateContentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	response, err := h.contentService.UpdateContent(ctx, contentID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) DeleteContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "content_id")
	if contentID == "" {
		writeError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	ctx := r.Context()
	if err := h.contentService.DeleteContent(ctx, contentID); err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"content_id": contentID,
		"message":    "Content deleted",
	})
}

func (h *Handler) ReclassifyContent(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "content_id")
	if contentID == "" {
		writeError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	ctx := r.Context()
	response, err := h.contentService.Reclassify(ctx, contentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}

func (h *Handler) ApplyOverride(w http.ResponseWriter, r *http.Request) {
	contentID := chi.URLParam(r, "content_id")
	if contentID == "" {
		writeError(w, http.StatusBadRequest, "Content ID is required")
		return
	}

	var req models.OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.AwardKey == "" {
		writeError(w, http.StatusBadRequest, "Award key is required")
		return
	}

	ctx := r.Context()
	affected, err := h.classificationService.ApplyOverride(ctx, contentID, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	if err := h.readinessService.RecomputeMany(ctx, affected); err != nil {
		h.handleServiceError(w, err)
		return
	}

	response, err := h.contentService.GetContent(ctx, contentID)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}
