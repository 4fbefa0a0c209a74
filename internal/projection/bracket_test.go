package projection

import "testing"

func TestBracketTable(t *testing.T) {
	t.Parallel()

	docs := decodeDocs(t, `[
		{"r":1,"m":1,"t1":3,"t2":6,"w":3,"l":6},
		{"r":2,"m":4,"t1":5,"t2":8,"w":null,"l":null},
		{"r":3,"m":6,"t1":null,"t2":null,"t1_from":{"w":3},"t2_from":{"w":4},"p":1},
		{"r":3,"m":7,"t1":null,"t2":null,"t1_from":{"l":3},"t2_from":{"l":4},"p":3},
		{"r":3,"m":8,"t1":1,"t2":2,"p":5}
	]`)

	table := BracketTable(Bracket(docs))
	want := []string{
		"Rd 1: Teams 3/6",
		"Rd 2: Teams 5/8",
		"Championship: Winner of Match 3/4",
		"Battle for 3rd: Losers of Match 3/4",
		"Battle for 5th (Rd 3): Teams 1/2",
	}
	for i, desc := range want {
		if got := cell(t, table, i, "matchup_desc"); got != desc {
			t.Fatalf("row %d: got %q want %q", i, got, desc)
		}
	}
	if got := cell(t, table, 0, "winning_team"); got != float64(3) {
		t.Fatalf("unexpected winner: %v", got)
	}
	assertNaN(t, table, 1, "winning_team")
	assertNaN(t, table, 2, "team_1")
}
