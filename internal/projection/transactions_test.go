package projection

import "testing"

const transactionsFixture = `[
	{
		"transaction_id": "t-trade",
		"type": "trade",
		"status": "complete",
		"creator": "u1",
		"created": 1725000000000,
		"status_updated": 1725000100000,
		"roster_ids": [1, 2],
		"metadata": {"notes": "league winner"},
		"adds": {"6794": 1, "4046": 2},
		"drops": {"4046": 1, "6794": 2},
		"draft_picks": [
			{"season": "2025", "round": 1, "roster_id": 1, "previous_owner_id": 1, "owner_id": 2, "league_id": null},
			{"season": "2026", "round": 2, "roster_id": 2, "previous_owner_id": 2, "owner_id": 1, "league_id": null}
		],
		"waiver_budget": [{"sender": 2, "receiver": 1, "amount": 15}]
	},
	{
		"transaction_id": "t-free",
		"type": "free_agent",
		"status": "complete",
		"adds": null,
		"drops": {"1234": 3}
	}
]`

func TestTransactionsTable_FirstOnly(t *testing.T) {
	t.Parallel()

	txs := Transactions(decodeDocs(t, transactionsFixture), 4)
	table := TransactionsTable(txs)
	if table.Len() != 2 {
		t.Fatalf("unexpected row count: %d", table.Len())
	}

	if got := cell(t, table, 0, "player_id_add"); got != "4046" {
		t.Fatalf("expected lowest player id as first add, got %v", got)
	}
	if got := cell(t, table, 0, "roster_id_add"); got != float64(2) {
		t.Fatalf("unexpected roster_id_add: %v", got)
	}
	if got := cell(t, table, 0, "pick_season"); got != "2025" {
		t.Fatalf("unexpected pick_season: %v", got)
	}
	assertNaN(t, table, 0, "league_id")
	if got := cell(t, table, 0, "amount_faab"); got != float64(15) {
		t.Fatalf("unexpected amount_faab: %v", got)
	}
	if got := cell(t, table, 0, "notes"); got != "league winner" {
		t.Fatalf("unexpected notes: %v", got)
	}

	assertNaN(t, table, 1, "player_id_add")
	assertNaN(t, table, 1, "roster_id_add")
	assertNaN(t, table, 1, "pick_round")
	assertNaN(t, table, 1, "amount_faab")
	if got := cell(t, table, 1, "player_id_drop"); got != "1234" {
		t.Fatalf("unexpected player_id_drop: %v", got)
	}
	if got := cell(t, table, 1, "week"); got != float64(4) {
		t.Fatalf("unexpected week: %v", got)
	}
}

func TestTransactionMovesTable_ExpandsEveryEntry(t *testing.T) {
	t.Parallel()

	table := TransactionMovesTable(Transactions(decodeDocs(t, transactionsFixture), 4))

	counts := map[string]int{}
	for i := range table.Rows {
		counts[cell(t, table, i, "move").(string)]++
	}
	want := map[string]int{MoveAdd: 2, MoveDrop: 3, MovePick: 2, MoveWaiverBudget: 1}
	for move, n := range want {
		if counts[move] != n {
			t.Fatalf("move %s: got %d rows want %d (all=%v)", move, counts[move], n, counts)
		}
	}
	if table.Len() != 8 {
		t.Fatalf("unexpected row count: %d", table.Len())
	}
}
