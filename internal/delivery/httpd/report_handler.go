package httpd

import (
	"net/http"
)

func (h *Handler) GetStatusReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report, err := h.reportService.GetStatusReport(ctx)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	writeSuccess(w, report)
}

func (h *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report, err := h.reportService.GetStatusReport(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("Failed to get stats")
		writeError(w, http.StatusInternalServerError, "Failed to get statistics")
		return
	}

	writeSuccess(w, report.Summary)
}
