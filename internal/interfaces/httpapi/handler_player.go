package httpapi

import (
	"net/http"
	"strings"
)

type playersQuery struct {
	PlayerIDs []string `validate:"required,min=1,max=100,dive,numeric|alpha"`
	Format    string   `validate:"omitempty,oneof=json csv parquet"`
}

func (h *Handler) GetPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayers")
	defer span.End()

	query := playersQuery{
		PlayerIDs: splitIDs(r.URL.Query().Get("ids")),
		Format:    readTableQuery(r).Format,
	}
	if err := h.validateRequest(ctx, query); err != nil {
		writeError(ctx, w, err)
		return
	}

	table, err := h.playerService.Players(ctx, query.PlayerIDs)
	h.respondTable(ctx, w, "players", query.Format, table, err)
}

func splitIDs(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if id := strings.TrimSpace(part); id != "" {
			out = append(out, id)
		}
	}
	return out
}
