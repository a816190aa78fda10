package httpapi

import (
	"net/http"
	"strings"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
)

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPages")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, pagesToDTO(view.AllPages()))
}

func (h *Handler) ListPalettes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPalettes")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, palettesToDTO(h.viewService.Palettes(), h.viewService.DefaultPalette()))
}

func (h *Handler) GetTeamColors(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamColors")
	defer span.End()

	paletteName := strings.TrimSpace(r.URL.Query().Get("palette"))
	writeSuccess(ctx, w, http.StatusOK, h.viewService.TeamColors(ctx, paletteName))
}
