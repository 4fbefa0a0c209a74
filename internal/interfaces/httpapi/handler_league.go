package httpapi

import (
	"fmt"
	"net/http"

	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func (h *Handler) GetLeagueHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueHistory")
	defer span.End()

	query, err := h.parseSeasonQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.HistoryTable(ctx, query.LeagueID, query.Season)
	h.respondTable(ctx, w, "league history", query.Format, table, err)
}

func (h *Handler) GetLeagueSettings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueSettings")
	defer span.End()

	query, err := h.parseTableQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.LeagueSettings(ctx, query.LeagueID)
	h.respondTable(ctx, w, "league settings", query.Format, table, err)
}

func (h *Handler) GetRosterPositions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterPositions")
	defer span.End()

	query, err := h.parseTableQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.RosterPositions(ctx, query.LeagueID)
	h.respondTable(ctx, w, "roster positions", query.Format, table, err)
}

func (h *Handler) GetScoring(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetScoring")
	defer span.End()

	query, err := h.parseTableQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.Scoring(ctx, query.LeagueID)
	h.respondTable(ctx, w, "scoring settings", query.Format, table, err)
}

func (h *Handler) GetRosters(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosters")
	defer span.End()

	query, err := h.parseTableQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	archive, err := parseBoolParam("archive", r.URL.Query().Get("archive"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.Rosters(ctx, query.LeagueID, usecase.RosterOptions{Archive: archive})
	h.respondTable(ctx, w, "rosters", query.Format, table, err)
}

func (h *Handler) GetRosterUsers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetRosterUsers")
	defer span.End()

	query, err := h.parseTableQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.RosterUsers(ctx, query.LeagueID)
	h.respondTable(ctx, w, "roster users", query.Format, table, err)
}

func (h *Handler) GetMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchups")
	defer span.End()

	query, err := h.parseWeekQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.Matchups(ctx, query.LeagueID, query.Week)
	h.respondTable(ctx, w, "matchups", query.Format, table, err)
}

func (h *Handler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTransactions")
	defer span.End()

	query, err := h.parseWeekQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.Transactions(ctx, query.LeagueID, query.Week)
	h.respondTable(ctx, w, "transactions", query.Format, table, err)
}

func (h *Handler) GetTransactionMoves(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTransactionMoves")
	defer span.End()

	query, err := h.parseWeekQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.TransactionMoves(ctx, query.LeagueID, query.Week)
	h.respondTable(ctx, w, "transaction moves", query.Format, table, err)
}

func (h *Handler) GetPreviousSeasonBracket(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPreviousSeasonBracket")
	defer span.End()

	query, err := h.parseSeasonQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, ok, err := h.leagueService.PreviousSeasonBracketTable(ctx, query.LeagueID, query.Season)
	if err == nil && !ok {
		err = fmt.Errorf("%w: no playoff bracket before season %d for league %s", usecase.ErrNotFound, query.Season, query.LeagueID)
	}
	h.respondTable(ctx, w, "previous season bracket", query.Format, table, err)
}

func (h *Handler) GetTradedPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTradedPicks")
	defer span.End()

	query, err := h.parseTableQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.TradedPicks(ctx, query.LeagueID)
	h.respondTable(ctx, w, "traded picks", query.Format, table, err)
}

func (h *Handler) GetNFLState(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetNFLState")
	defer span.End()

	format := readTableQuery(r).Format
	if err := h.validator.VarCtx(ctx, format, "omitempty,oneof=json csv parquet"); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err))
		return
	}

	table, err := h.leagueService.NFLState(ctx)
	h.respondTable(ctx, w, "nfl state", format, table, err)
}

type seasonTransactionsQuery struct {
	tableQuery
	From int `validate:"gte=1,lte=18"`
	To   int `validate:"gtefield=From,lte=18"`
}

func (h *Handler) GetSeasonTransactions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSeasonTransactions")
	defer span.End()

	values := r.URL.Query()
	from, err := parseIntParam("from", values.Get("from"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	to, err := parseIntParam("to", values.Get("to"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	moves, err := parseBoolParam("moves", values.Get("moves"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	query := seasonTransactionsQuery{tableQuery: readTableQuery(r), From: from, To: to}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.leagueService.SeasonTransactions(ctx, query.LeagueID, usecase.WeekRange{From: query.From, To: query.To}, moves)
	h.respondTable(ctx, w, "season transactions", query.Format, table, err)
}
