package httpapi

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/fpl-dashboard/internal/domain/view"
	"github.com/riskibarqy/fpl-dashboard/internal/usecase"
)

func (h *Handler) RenderView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenderView")
	defer span.End()

	page, in, err := h.parseViewRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(pageAttr(page.Slug()))

	rendered, err := h.viewService.Render(ctx, page, in)
	if err != nil {
		h.logger.WarnContext(ctx, "render view failed", "page", page.Slug(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, rendered)
}

func (h *Handler) ExportView(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExportView")
	defer span.End()

	page, in, err := h.parseViewRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	span.SetAttributes(pageAttr(page.Slug()))

	rendered, err := h.viewService.Render(ctx, page, in)
	if err != nil {
		h.logger.WarnContext(ctx, "export view failed", "page", page.Slug(), "error", err)
		writeError(ctx, w, err)
		return
	}

	table, ok := rendered.PrimaryTable()
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: page %s has no table to export", usecase.ErrNotFound, page.Slug()))
		return
	}

	if err := writeCSV(ctx, w, page.Slug()+".csv", table); err != nil {
		h.logger.ErrorContext(ctx, "write csv export failed", "page", page.Slug(), "error", err)
	}
}

func (h *Handler) RenderSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RenderSession")
	defer span.End()

	var req sessionRenderRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}

	in := req.Input.toInput()
	if err := h.validateRequest(ctx, in); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.viewService.RenderSession(ctx, usecase.SessionRequest{
		State:    req.State,
		Navigate: strings.TrimSpace(req.Navigate),
		Input:    in,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "render session failed", "page", req.State.Page.Slug(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) parseViewRequest(r *http.Request) (view.Page, usecase.ViewInput, error) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.parseViewRequest")
	defer span.End()

	page, err := view.ParsePage(r.PathValue("page"))
	if err != nil {
		return 0, usecase.ViewInput{}, fmt.Errorf("%w: %v", usecase.ErrNotFound, err)
	}

	query := r.URL.Query()
	payload := viewInputPayload{
		Palette:   query.Get("palette"),
		SortBy:    query.Get("sortBy"),
		Players:   listParam(query, "players"),
		ChartKind: query.Get("chartKind"),
		Query:     query.Get("query"),
		Teams:     listParam(query, "teams"),
		Metrics:   listParam(query, "metrics"),
		Team:      query.Get("team"),
		Position:  query.Get("position"),
	}
	if raw := strings.TrimSpace(query.Get("rows")); raw != "" {
		rows, err := strconv.Atoi(raw)
		if err != nil {
			return 0, usecase.ViewInput{}, fmt.Errorf("%w: invalid rows: %v", usecase.ErrInvalidInput, err)
		}
		payload.Rows = rows
	}

	in := payload.toInput()
	if err := h.validateRequest(ctx, in); err != nil {
		return 0, usecase.ViewInput{}, err
	}
	return page, in, nil
}

// listParam accepts both repeated keys and comma separated values.
func listParam(query url.Values, key string) []string {
	var out []string
	for _, raw := range query[key] {
		for _, part := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				out = append(out, trimmed)
			}
		}
	}
	return out
}
