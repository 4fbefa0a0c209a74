package projection

import (
	"errors"
	"testing"
)

func TestMatchups_ParallelSequencesOrderedByPlayer(t *testing.T) {
	t.Parallel()

	docs := decodeDocs(t, `[
		{"roster_id":1,"matchup_id":2,"points":101.5,
		 "starters":["6794","4046"],"starters_points":[20.5,30],
		 "players_points":{"6794":20.5,"4046":30,"1234":0}},
		{"roster_id":2,"matchup_id":null,"points":88}
	]`)

	records, err := Matchups(docs, 3)
	if err != nil {
		t.Fatalf("project matchups: %v", err)
	}
	table := MatchupsTable(records)

	players := cell(t, table, 0, "players").([]string)
	points := cell(t, table, 0, "points").([]float64)
	if len(players) != 3 || players[0] != "1234" || players[1] != "4046" || players[2] != "6794" {
		t.Fatalf("unexpected player order: %v", players)
	}
	if points[0] != 0 || points[1] != 30 || points[2] != 20.5 {
		t.Fatalf("points not parallel to players: %v", points)
	}
	if cell(t, table, 0, "fpts") != 101.5 || cell(t, table, 0, "week") != float64(3) {
		t.Fatalf("unexpected fpts/week: %v %v", cell(t, table, 0, "fpts"), cell(t, table, 0, "week"))
	}
	assertNaN(t, table, 1, "matchup_id")
	if got := cell(t, table, 1, "players").([]string); len(got) != 0 {
		t.Fatalf("expected empty players list, got %v", got)
	}
}

func TestMatchups_MissingRosterIDFaults(t *testing.T) {
	t.Parallel()

	if _, err := Matchups(decodeDocs(t, `[{"matchup_id":1}]`), 1); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}
