package projection

import (
	"math"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
	"github.com/riskibarqy/sleeper-league/internal/domain/transaction"
)

var transactionColumns = []Column{
	{Name: "week", Kind: KindNumber},
	{Name: "type", Kind: KindText},
	{Name: "status_updated", Kind: KindNumber},
	{Name: "status", Kind: KindText},
	{Name: "notes", Kind: KindText},
	{Name: "transaction_id", Kind: KindText},
	{Name: "creator", Kind: KindText},
	{Name: "created", Kind: KindNumber},
	{Name: "player_id_add", Kind: KindOptional},
	{Name: "roster_id_add", Kind: KindOptional},
	{Name: "player_id_drop", Kind: KindOptional},
	{Name: "roster_id_drop", Kind: KindOptional},
	{Name: "previous_owner_id", Kind: KindOptional},
	{Name: "owner_id", Kind: KindOptional},
	{Name: "roster_id", Kind: KindOptional},
	{Name: "league_id", Kind: KindOptional},
	{Name: "pick_season", Kind: KindOptional},
	{Name: "pick_round", Kind: KindOptional},
	{Name: "sender_id_faab", Kind: KindOptional},
	{Name: "receiver_id_faab", Kind: KindOptional},
	{Name: "amount_faab", Kind: KindOptional},
}

var transactionMoveColumns = []Column{
	{Name: "transaction_id", Kind: KindText},
	{Name: "week", Kind: KindNumber},
	{Name: "type", Kind: KindText},
	{Name: "status", Kind: KindText},
	{Name: "move", Kind: KindText},
	{Name: "player_id", Kind: KindOptional},
	{Name: "roster_id", Kind: KindOptional},
	{Name: "previous_owner_id", Kind: KindOptional},
	{Name: "owner_id", Kind: KindOptional},
	{Name: "pick_season", Kind: KindOptional},
	{Name: "pick_round", Kind: KindOptional},
	{Name: "sender_id", Kind: KindOptional},
	{Name: "receiver_id", Kind: KindOptional},
	{Name: "amount", Kind: KindOptional},
}

const (
	MoveAdd          = "add"
	MoveDrop         = "drop"
	MovePick         = "pick"
	MoveWaiverBudget = "faab"
)

// Transactions projects one week of transaction documents. Adds and drops are
// ordered by player id so "first" is stable across runs.
func Transactions(docs []rawdata.Document, week int) []transaction.Transaction {
	out := make([]transaction.Transaction, 0, len(docs))
	for _, doc := range docs {
		tx := transaction.Transaction{
			ID:            text(doc, "transaction_id"),
			Week:          week,
			Type:          text(doc, "type"),
			Status:        text(doc, "status"),
			Notes:         text(doc, "metadata", "notes"),
			Creator:       text(doc, "creator"),
			Created:       number(doc, "created"),
			StatusUpdated: number(doc, "status_updated"),
			RosterIDs:     numberList(doc, "roster_ids"),
			Adds:          moves(object(doc, "adds")),
			Drops:         moves(object(doc, "drops")),
		}
		for _, item := range items(doc, "draft_picks") {
			pick, ok := item.(map[string]any)
			if !ok {
				continue
			}
			tx.DraftPicks = append(tx.DraftPicks, transaction.PickTransfer{
				Season:          text(pick, "season"),
				Round:           number(pick, "round"),
				RosterID:        number(pick, "roster_id"),
				PreviousOwnerID: number(pick, "previous_owner_id"),
				OwnerID:         number(pick, "owner_id"),
				LeagueID:        text(pick, "league_id"),
			})
		}
		for _, item := range items(doc, "waiver_budget") {
			transfer, ok := item.(map[string]any)
			if !ok {
				continue
			}
			tx.WaiverBudget = append(tx.WaiverBudget, transaction.BudgetTransfer{
				Sender:   number(transfer, "sender"),
				Receiver: number(transfer, "receiver"),
				Amount:   number(transfer, "amount"),
			})
		}
		out = append(out, tx)
	}
	return out
}

func moves(doc rawdata.Document) []transaction.Move {
	if len(doc) == 0 {
		return nil
	}
	out := make([]transaction.Move, 0, len(doc))
	for _, playerID := range sortedKeys(doc) {
		out = append(out, transaction.Move{PlayerID: playerID, RosterID: numberValue(doc[playerID])})
	}
	return out
}

// TransactionsTable keeps one row per transaction with only the first add,
// drop, pick and budget transfer. Absent entries are NaN.
func TransactionsTable(txs []transaction.Transaction) *Table {
	table := NewTable("transactions", transactionColumns...)
	nan := math.NaN()
	for _, tx := range txs {
		row := []Value{
			float64(tx.Week), tx.Type, tx.StatusUpdated, tx.Status, tx.Notes, tx.ID, tx.Creator, tx.Created,
			nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan, nan,
		}
		if add, ok := tx.FirstAdd(); ok {
			row[8], row[9] = add.PlayerID, add.RosterID
		}
		if drop, ok := tx.FirstDrop(); ok {
			row[10], row[11] = drop.PlayerID, drop.RosterID
		}
		if pick, ok := tx.FirstPick(); ok {
			row[12], row[13], row[14] = pick.PreviousOwnerID, pick.OwnerID, pick.RosterID
			row[15], row[16], row[17] = optionalText(pick.LeagueID), optionalText(pick.Season), pick.Round
		}
		if budget, ok := tx.FirstWaiverBudget(); ok {
			row[18], row[19], row[20] = budget.Sender, budget.Receiver, budget.Amount
		}
		table.Append(row...)
	}
	return table
}

// TransactionMovesTable expands every add, drop, pick and budget transfer into its own row.
func TransactionMovesTable(txs []transaction.Transaction) *Table {
	table := NewTable("transaction_moves", transactionMoveColumns...)
	nan := math.NaN()
	for _, tx := range txs {
		head := []Value{tx.ID, float64(tx.Week), tx.Type, tx.Status}
		emit := func(tail ...Value) {
			table.Append(append(append([]Value(nil), head...), tail...)...)
		}
		for _, add := range tx.Adds {
			emit(MoveAdd, add.PlayerID, add.RosterID, nan, nan, nan, nan, nan, nan, nan)
		}
		for _, drop := range tx.Drops {
			emit(MoveDrop, drop.PlayerID, drop.RosterID, nan, nan, nan, nan, nan, nan, nan)
		}
		for _, pick := range tx.DraftPicks {
			emit(MovePick, nan, pick.RosterID, pick.PreviousOwnerID, pick.OwnerID, optionalText(pick.Season), pick.Round, nan, nan, nan)
		}
		for _, budget := range tx.WaiverBudget {
			emit(MoveWaiverBudget, nan, nan, nan, nan, nan, nan, budget.Sender, budget.Receiver, budget.Amount)
		}
	}
	return table
}

func optionalText(value string) Value {
	if value == "" {
		return math.NaN()
	}
	return value
}
