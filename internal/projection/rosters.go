package projection

import (
	"fmt"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
)

var rosterColumns = []Column{
	{Name: "user_id", Kind: KindText},
	{Name: "roster_id", Kind: KindRequired},
	{Name: "league_id", Kind: KindText},
	{Name: "streak", Kind: KindText},
	{Name: "record", Kind: KindText},
	{Name: "wins", Kind: KindNumber},
	{Name: "losses", Kind: KindNumber},
	{Name: "ties", Kind: KindNumber},
	{Name: "waiver_budget_used", Kind: KindNumber},
	{Name: "waiver_budget_remaining", Kind: KindNumber},
	{Name: "fpts", Kind: KindNumber},
	{Name: "fpts_against", Kind: KindNumber},
	{Name: "max_fpts", Kind: KindNumber},
	{Name: "fpts_decimal", Kind: KindNumber},
	{Name: "fpts_against_decimal", Kind: KindNumber},
	{Name: "max_fpts_decimal", Kind: KindNumber},
	{Name: "co_owners", Kind: KindAny},
	{Name: "players", Kind: KindList},
	{Name: "reserve", Kind: KindList},
	{Name: "taxi", Kind: KindList},
	{Name: "keepers", Kind: KindList},
}

// Rosters projects roster documents in input order. Every roster needs a roster_id.
func Rosters(docs []rawdata.Document) ([]roster.Record, error) {
	out := make([]roster.Record, 0, len(docs))
	for i, doc := range docs {
		record, err := rosterRecord(doc)
		if err != nil {
			return nil, fmt.Errorf("roster %d: %w", i, err)
		}
		out = append(out, record)
	}
	return out, nil
}

func rosterRecord(doc rawdata.Document) (roster.Record, error) {
	rosterID, err := requiredInteger(doc, "roster_id")
	if err != nil {
		return roster.Record{}, err
	}
	settings := object(doc, "settings")
	metadata := object(doc, "metadata")
	used := number(settings, "waiver_budget_used")

	return roster.Record{
		OwnerID:               text(doc, "owner_id"),
		RosterID:              rosterID,
		LeagueID:              text(doc, "league_id"),
		Streak:                text(metadata, "streak"),
		Record:                text(metadata, "record"),
		Wins:                  number(settings, "wins"),
		Losses:                number(settings, "losses"),
		Ties:                  number(settings, "ties"),
		WaiverBudgetUsed:      used,
		WaiverBudgetRemaining: roster.FAABBudget - used,
		PointsFor:             roster.Points{Whole: number(settings, "fpts"), Decimal: number(settings, "fpts_decimal")},
		PointsAgainst:         roster.Points{Whole: number(settings, "fpts_against"), Decimal: number(settings, "fpts_against_decimal")},
		MaxPointsFor:          roster.Points{Whole: number(settings, "ppts"), Decimal: number(settings, "ppts_decimal")},
		CoOwners:              coOwners(doc),
		Players:               textList(doc, "players"),
		Starters:              textList(doc, "starters"),
		Reserve:               textList(doc, "reserve"),
		Taxi:                  textList(doc, "taxi"),
		Keepers:               textList(doc, "keepers"),
	}, nil
}

// coOwners collapses a one-element list to its only id.
func coOwners(doc rawdata.Document) any {
	raw, ok := lookup(doc, "co_owners")
	if !ok {
		return ""
	}
	list, isList := raw.([]any)
	if !isList {
		return textValue(raw)
	}
	switch len(list) {
	case 0:
		return ""
	case 1:
		return textValue(list[0])
	default:
		ids := make([]string, 0, len(list))
		for _, item := range list {
			ids = append(ids, textValue(item))
		}
		return ids
	}
}

func RostersTable(records []roster.Record) *Table {
	table := NewTable("rosters", rosterColumns...)
	for _, r := range records {
		table.Append(
			r.OwnerID,
			float64(r.RosterID),
			r.LeagueID,
			r.Streak,
			r.Record,
			r.Wins,
			r.Losses,
			r.Ties,
			r.WaiverBudgetUsed,
			r.WaiverBudgetRemaining,
			r.PointsFor.Whole,
			r.PointsAgainst.Whole,
			r.MaxPointsFor.Whole,
			r.PointsFor.Decimal,
			r.PointsAgainst.Decimal,
			r.MaxPointsFor.Decimal,
			r.CoOwners,
			r.Players,
			r.Reserve,
			r.Taxi,
			r.Keepers,
		)
	}
	return table
}
