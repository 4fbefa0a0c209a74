package league

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

// Source fetches the raw league documents the history walk needs.
type Source interface {
	GetLeague(ctx context.Context, leagueID string) (rawdata.Document, error)
	GetPlayoffBracket(ctx context.Context, leagueID, bracket string) ([]rawdata.Document, error)
}

// StateSource exposes the current NFL calendar state.
type StateSource interface {
	GetNFLState(ctx context.Context) (rawdata.Document, error)
}
