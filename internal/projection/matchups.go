package projection

import (
	"fmt"

	"github.com/riskibarqy/sleeper-league/internal/domain/matchup"
	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

var matchupColumns = []Column{
	{Name: "starters_points", Kind: KindList},
	{Name: "starters", Kind: KindList},
	{Name: "matchup_id", Kind: KindNumber},
	{Name: "roster_id", Kind: KindRequired},
	{Name: "players", Kind: KindList},
	{Name: "points", Kind: KindList},
	{Name: "fpts", Kind: KindNumber},
	{Name: "week", Kind: KindNumber},
}

// Matchups projects one week of matchup documents. players_points becomes two
// parallel lists ordered by player id.
func Matchups(docs []rawdata.Document, week int) ([]matchup.Record, error) {
	out := make([]matchup.Record, 0, len(docs))
	for i, doc := range docs {
		rosterID, err := requiredInteger(doc, "roster_id")
		if err != nil {
			return nil, fmt.Errorf("matchup %d: %w", i, err)
		}

		playerPoints := object(doc, "players_points")
		ids := sortedKeys(playerPoints)
		points := make([]float64, 0, len(ids))
		for _, id := range ids {
			points = append(points, numberValue(playerPoints[id]))
		}

		out = append(out, matchup.Record{
			MatchupID:      number(doc, "matchup_id"),
			RosterID:       rosterID,
			Week:           week,
			Points:         number(doc, "points"),
			Starters:       textList(doc, "starters"),
			StartersPoints: numberList(doc, "starters_points"),
			PlayerIDs:      ids,
			PlayerPoints:   points,
		})
	}
	return out, nil
}

func MatchupsTable(records []matchup.Record) *Table {
	table := NewTable("matchups", matchupColumns...)
	for _, r := range records {
		table.Append(
			r.StartersPoints,
			r.Starters,
			r.MatchupID,
			float64(r.RosterID),
			r.PlayerIDs,
			r.PlayerPoints,
			r.Points,
			float64(r.Week),
		)
	}
	return table
}
