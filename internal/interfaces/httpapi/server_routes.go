package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/pages", handler.ListPages)
	mux.HandleFunc("GET /v1/palettes", handler.ListPalettes)
	mux.HandleFunc("GET /v1/teams/colors", handler.GetTeamColors)
}

func registerDataRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/data/status", handler.GetDataStatus)
	mux.HandleFunc("POST /v1/data/refresh", handler.RefreshData)
}

func registerViewRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/views/{page}", handler.RenderView)
	mux.HandleFunc("GET /v1/views/{page}/export", handler.ExportView)
	mux.HandleFunc("POST /v1/session/render", handler.RenderSession)
}
