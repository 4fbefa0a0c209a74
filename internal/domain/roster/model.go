package roster

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

// FAABBudget is the fixed free agent budget every roster starts a season with.
const FAABBudget = 100

// Points combines Sleeper's split integer and hundredths fields.
type Points struct {
	Whole   float64
	Decimal float64
}

// Record is one team's roster state within a league.
type Record struct {
	OwnerID               string
	RosterID              int64
	LeagueID              string
	Streak                string
	Record                string
	Wins                  float64
	Losses                float64
	Ties                  float64
	WaiverBudgetUsed      float64
	WaiverBudgetRemaining float64
	PointsFor             Points
	PointsAgainst         Points
	MaxPointsFor          Points
	// CoOwners is a single id when one co-owner exists and the full list otherwise.
	CoOwners any
	Players  []string
	Starters []string
	Reserve  []string
	Taxi     []string
	Keepers  []string
}

// Source fetches the raw roster and member documents of a league.
type Source interface {
	GetLeagueRosters(ctx context.Context, leagueID string) ([]rawdata.Document, error)
	GetLeagueUsers(ctx context.Context, leagueID string) ([]rawdata.Document, error)
}
