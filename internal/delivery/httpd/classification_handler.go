package httpd

import (
	"encoding/json"
	"net/http"

	"github.com/RubachokBoss/award-tracker/internal/models"
)

// ClassifyText scores arbitrary text against the taxonomy without persisting
// anything. Used by the frontend for live previews.
func (h *Handler) ClassifyText(w http.ResponseWriter, r *http.Request) {
	var req models.ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	ctx := r.Context()
	response, err := h.classificationService.ClassifyText(ctx, &req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, response)
}
