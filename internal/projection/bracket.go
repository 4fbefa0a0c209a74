package projection

import (
	"math"

	"github.com/riskibarqy/sleeper-league/internal/domain/bracket"
	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

var bracketColumns = []Column{
	{Name: "matchup_round", Kind: KindNumber},
	{Name: "match_id", Kind: KindNumber},
	{Name: "winning_team", Kind: KindOptional},
	{Name: "losing_team", Kind: KindOptional},
	{Name: "team_1", Kind: KindOptional},
	{Name: "team_2", Kind: KindOptional},
	{Name: "matchup_desc", Kind: KindText},
}

// Bracket projects playoff bracket documents in input order.
func Bracket(docs []rawdata.Document) bracket.Entries {
	out := make(bracket.Entries, 0, len(docs))
	for _, doc := range docs {
		round, _ := integer(doc, "r")
		match, _ := integer(doc, "m")
		out = append(out, bracket.Entry{
			Round:     round,
			Match:     match,
			Team1:     bracket.Slot{RosterID: integerPtr(doc, "t1"), From: slotRef(object(doc, "t1_from"))},
			Team2:     bracket.Slot{RosterID: integerPtr(doc, "t2"), From: slotRef(object(doc, "t2_from"))},
			Winner:    integerPtr(doc, "w"),
			Loser:     integerPtr(doc, "l"),
			Placement: integerPtr(doc, "p"),
		})
	}
	return out
}

func slotRef(doc rawdata.Document) *bracket.SlotRef {
	if match, ok := integer(doc, string(bracket.OutcomeWinner)); ok {
		return &bracket.SlotRef{Outcome: bracket.OutcomeWinner, Match: match}
	}
	if match, ok := integer(doc, string(bracket.OutcomeLoser)); ok {
		return &bracket.SlotRef{Outcome: bracket.OutcomeLoser, Match: match}
	}
	return nil
}

func BracketTable(entries bracket.Entries) *Table {
	table := NewTable("playoff_bracket", bracketColumns...)
	for _, e := range entries {
		table.Append(
			float64(e.Round),
			float64(e.Match),
			optionalID(e.Winner),
			optionalID(e.Loser),
			optionalID(e.Team1.RosterID),
			optionalID(e.Team2.RosterID),
			e.Description(),
		)
	}
	return table
}

func optionalID(id *int64) Value {
	if id == nil {
		return math.NaN()
	}
	return float64(*id)
}
