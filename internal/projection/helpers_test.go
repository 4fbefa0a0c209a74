package projection

import (
	"math"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

var testJSON = sonic.Config{UseNumber: true}.Froze()

func decodeDoc(t *testing.T, raw string) rawdata.Document {
	t.Helper()
	var doc rawdata.Document
	if err := testJSON.UnmarshalFromString(raw, &doc); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return doc
}

func decodeDocs(t *testing.T, raw string) []rawdata.Document {
	t.Helper()
	var docs []rawdata.Document
	if err := testJSON.UnmarshalFromString(raw, &docs); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}
	return docs
}

func cell(t *testing.T, table *Table, row int, column string) Value {
	t.Helper()
	v, ok := table.Value(row, column)
	if !ok {
		t.Fatalf("table %s has no cell row=%d column=%s", table.Name, row, column)
	}
	return v
}

func assertNaN(t *testing.T, table *Table, row int, column string) {
	t.Helper()
	v, ok := cell(t, table, row, column).(float64)
	if !ok || !math.IsNaN(v) {
		t.Fatalf("expected NaN in %s[%d], got %#v", column, row, cell(t, table, row, column))
	}
}

const leagueFixture = `{
	"league_id": "1048274672483328000",
	"previous_league_id": "916267370808360960",
	"name": "Dynasty Degenerates",
	"season": "2024",
	"status": "in_season",
	"draft_id": "1048274672483328001",
	"bracket_id": 1048274672483328002,
	"loser_bracket_id": null,
	"roster_positions": ["QB","RB","RB","WR","WR","TE","FLEX","SUPER_FLEX","BN","BN","BN"],
	"settings": {
		"num_teams": 12,
		"reserve_slots": 2,
		"reserve_allow_cov": 1,
		"reserve_allow_out": 0,
		"taxi_slots": 3,
		"taxi_years": 1,
		"taxi_deadline": 4,
		"waiver_type": 2,
		"waiver_budget": 100,
		"waiver_day_of_week": 2,
		"daily_waivers_hour": 0,
		"waiver_clear_days": 2,
		"daily_waivers_last_ran": 14,
		"start_week": 1,
		"trade_deadline": 11,
		"playoff_week_start": 15,
		"playoff_teams": 6,
		"playoff_seed_type": 0,
		"draft_rounds": 4
	},
	"scoring_settings": {"rec": 1.0, "pass_td": 4.0, "fum_lost": -2}
}`
