package transaction

import (
	"context"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

// Move is a single player added to or dropped from a roster.
type Move struct {
	PlayerID string
	RosterID float64
}

// PickTransfer is one draft pick changing hands.
type PickTransfer struct {
	Season          string
	Round           float64
	RosterID        float64
	PreviousOwnerID float64
	OwnerID         float64
	LeagueID        string
}

// BudgetTransfer is FAAB moving between rosters in a trade.
type BudgetTransfer struct {
	Sender   float64
	Receiver float64
	Amount   float64
}

// Transaction is one league transaction. Adds and Drops are ordered by player id.
type Transaction struct {
	ID            string
	Week          int
	Type          string
	Status        string
	Notes         string
	Creator       string
	Created       float64
	StatusUpdated float64
	RosterIDs     []float64
	Adds          []Move
	Drops         []Move
	DraftPicks    []PickTransfer
	WaiverBudget  []BudgetTransfer
}

func (t Transaction) FirstAdd() (Move, bool) {
	if len(t.Adds) == 0 {
		return Move{}, false
	}
	return t.Adds[0], true
}

func (t Transaction) FirstDrop() (Move, bool) {
	if len(t.Drops) == 0 {
		return Move{}, false
	}
	return t.Drops[0], true
}

func (t Transaction) FirstPick() (PickTransfer, bool) {
	if len(t.DraftPicks) == 0 {
		return PickTransfer{}, false
	}
	return t.DraftPicks[0], true
}

func (t Transaction) FirstWaiverBudget() (BudgetTransfer, bool) {
	if len(t.WaiverBudget) == 0 {
		return BudgetTransfer{}, false
	}
	return t.WaiverBudget[0], true
}

type Source interface {
	GetTransactions(ctx context.Context, leagueID string, week int) ([]rawdata.Document, error)
	GetTradedPicks(ctx context.Context, leagueID string) ([]rawdata.Document, error)
}
