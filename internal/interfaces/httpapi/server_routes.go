package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerReportRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/season-totals", handler.GetSeasonTotals)
	mux.HandleFunc("GET /v1/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/matches/{matchID}/sheet", handler.GetMatchSheet)
}

func registerIngestRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/loads", handler.RunLoad)
	mux.HandleFunc("POST /v1/reports/refresh", handler.RefreshReports)
}
