package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /readyz", handler.Readyz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/teams", handler.ListTeamsByLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/overview", handler.GetLeagueOverview)
	mux.HandleFunc("GET /v1/leagues/{leagueKey}/summaries", handler.ListTeamSummaries)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/ingest/leagues", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestLeagues)))
	mux.Handle("POST /v1/internal/ingest/teams", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestTeams)))
	mux.Handle("POST /v1/internal/ingest/matchups", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestMatchups)))
	mux.Handle("POST /v1/internal/ingest/standings", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestStandings)))
	mux.Handle("POST /v1/internal/ingest/transactions", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestTransactions)))
	mux.Handle("POST /v1/internal/export/overviews", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.ExportOverviews)))
}
