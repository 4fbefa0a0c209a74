package matchup

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

// Record is one roster's result for a scoring week. PlayerIDs and
// PlayerPoints are parallel and ordered by player id.
type Record struct {
	MatchupID      float64
	RosterID       int64
	Week           int
	Points         float64
	Starters       []string
	StartersPoints []float64
	PlayerIDs      []string
	PlayerPoints   []float64
}

type Source interface {
	GetMatchups(ctx context.Context, leagueID string, week int) ([]rawdata.Document, error)
}
