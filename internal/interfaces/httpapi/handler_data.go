package httpapi

import "net/http"

func (h *Handler) GetDataStatus(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDataStatus")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.datasetService.Status())
}

func (h *Handler) RefreshData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RefreshData")
	defer span.End()

	status, err := h.datasetService.Refresh(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "refresh data failed", "error", err, "notices", len(status.Notices))
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, status)
}
