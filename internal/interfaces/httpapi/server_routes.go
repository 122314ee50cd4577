package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/schools", handler.ListSchools)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/calendar", handler.GetSeasonCalendar)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/leagues", handler.ListLeaguesBySeason)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/weeks/{week}/school-points", handler.ListSchoolWeeklyPoints)
	mux.HandleFunc("GET /v1/seasons/{seasonID}/schools/{schoolID}/points", handler.ListSchoolSeasonPoints)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/standings", handler.GetLeagueStandings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/weeks/{week}/points", handler.ListTeamWeeklyPoints)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/teams/{teamID}/history", handler.GetTeamHistory)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/bonuses", handler.ListLeagueBonuses)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/jobs/recalculate-week", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateWeekJob)))
	mux.Handle("POST /v1/internal/jobs/recalculate-season", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunRecalculateSeasonJob)))
	mux.Handle("POST /v1/internal/jobs/reconcile", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunReconcileJob)))
	mux.Handle("POST /v1/internal/jobs/sync-scoreboard", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunScoreboardSyncJob)))
}
