package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leagues/{leagueID}/history", handler.GetLeagueHistory)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/settings", handler.GetLeagueSettings)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/roster-positions", handler.GetRosterPositions)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/scoring", handler.GetScoring)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/rosters", handler.GetRosters)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/users", handler.GetRosterUsers)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/matchups/{week}", handler.GetMatchups)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/transactions", handler.GetSeasonTransactions)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/transactions/{week}", handler.GetTransactions)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/transactions/{week}/moves", handler.GetTransactionMoves)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/brackets/previous", handler.GetPreviousSeasonBracket)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/traded-picks", handler.GetTradedPicks)
}

func registerStateRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/state/nfl", handler.GetNFLState)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/nfl", handler.GetPlayers)
}
