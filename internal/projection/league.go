package projection

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

var leagueSettingsColumns = []Column{
	{Name: "league_name", Kind: KindText},
	{Name: "league_id", Kind: KindRequired},
	{Name: "previous_league_id", Kind: KindText},
	{Name: "draft_id", Kind: KindText},
	{Name: "bracket_id", Kind: KindText},
	{Name: "loser_bracket_id", Kind: KindText},
	{Name: "teams", Kind: KindNumber},
	{Name: "reserve_slots", Kind: KindNumber},
	{Name: "reserve_covid_slots", Kind: KindNumber},
	{Name: "reserve_allow_out", Kind: KindNumber},
	{Name: "taxi_slots", Kind: KindNumber},
	{Name: "taxi_years", Kind: KindNumber},
	{Name: "taxi_deadline", Kind: KindText},
	{Name: "waiver_type", Kind: KindText},
	{Name: "waiver_budget", Kind: KindNumber},
	{Name: "waiver_day_of_week", Kind: KindNumber},
	{Name: "daily_waivers_hour_PST", Kind: KindNumber},
	{Name: "waiver_clear_days", Kind: KindNumber},
	{Name: "daily_waivers_last_ran", Kind: KindNumber},
	{Name: "start_week", Kind: KindNumber},
	{Name: "trade_deadline", Kind: KindNumber},
	{Name: "playoff_week_start", Kind: KindNumber},
	{Name: "playoff_teams", Kind: KindNumber},
	{Name: "playoff_seed_type", Kind: KindText},
	{Name: "draft_rounds", Kind: KindNumber},
	{Name: "roster_positions", Kind: KindText},
}

// LeagueSnapshot projects one league document. A document without a
// league_id is malformed and faults with ErrMissingField.
func LeagueSnapshot(doc rawdata.Document) (league.Snapshot, error) {
	leagueID, err := requiredText(doc, "league_id")
	if err != nil {
		return league.Snapshot{}, err
	}
	settings := object(doc, "settings")

	snapshot := league.Snapshot{
		LeagueID:         leagueID,
		PreviousLeagueID: text(doc, "previous_league_id"),
		Name:             text(doc, "name"),
		Season:           text(doc, "season"),
		Status:           text(doc, "status"),
		DraftID:          text(doc, "draft_id"),
		BracketID:        text(doc, "bracket_id"),
		LoserBracketID:   text(doc, "loser_bracket_id"),
		RosterPositions:  textList(doc, "roster_positions"),
		Roster: league.RosterRules{
			Teams:             number(settings, "num_teams"),
			ReserveSlots:      number(settings, "reserve_slots"),
			ReserveCovidSlots: number(settings, "reserve_allow_cov"),
			ReserveAllowOut:   number(settings, "reserve_allow_out"),
			TaxiSlots:         number(settings, "taxi_slots"),
			TaxiYears:         number(settings, "taxi_years"),
		},
		Waivers: league.WaiverRules{
			Budget:            number(settings, "waiver_budget"),
			DayOfWeek:         number(settings, "waiver_day_of_week"),
			DailyHourPST:      number(settings, "daily_waivers_hour"),
			ClearDays:         number(settings, "waiver_clear_days"),
			DailyLastRanOnDay: number(settings, "daily_waivers_last_ran"),
		},
		Playoffs: league.PlayoffRules{
			WeekStart: number(settings, "playoff_week_start"),
			Teams:     number(settings, "playoff_teams"),
		},
		StartWeek:     number(settings, "start_week"),
		TradeDeadline: number(settings, "trade_deadline"),
		DraftRounds:   number(settings, "draft_rounds"),
		Scoring:       numberMap(object(doc, "scoring_settings")),
	}

	snapshot.Roster.TaxiDeadline = resolveLabel(&snapshot.Warnings, settings, "taxi_deadline", league.TaxiDeadline)
	snapshot.Waivers.Type = resolveLabel(&snapshot.Warnings, settings, "waiver_type", league.WaiverType)
	snapshot.Playoffs.SeedType = resolveLabel(&snapshot.Warnings, settings, "playoff_seed_type", league.PlayoffSeedType)

	return snapshot, nil
}

func resolveLabel(warnings *[]string, settings rawdata.Document, field string, resolve func(int) (league.Label, bool)) string {
	code, ok := integer(settings, field)
	if !ok {
		*warnings = append(*warnings, fmt.Sprintf("%s: code missing", field))
		return league.Unrecognized
	}
	label, known := resolve(int(code))
	if !known {
		*warnings = append(*warnings, fmt.Sprintf("%s: unrecognized code %d", field, code))
	}
	return label.Name
}

func numberMap(doc rawdata.Document) map[string]float64 {
	out := make(map[string]float64, len(doc))
	for key, raw := range doc {
		out[key] = numberValue(raw)
	}
	return out
}

// LeagueSettingsTable has one row per snapshot, in the given order.
func LeagueSettingsTable(snapshots ...league.Snapshot) *Table {
	table := NewTable("league_settings", leagueSettingsColumns...)
	for _, s := range snapshots {
		table.Append(settingsRow(s)...)
		table.Warnings = append(table.Warnings, s.Warnings...)
	}
	return table
}

// HistoryTable puts season first and keeps the settings column order for every row.
func HistoryTable(history league.History) *Table {
	columns := append([]Column{{Name: "season", Kind: KindNumber}}, leagueSettingsColumns...)
	table := NewTable("league_history", columns...)
	for _, entry := range history {
		row := append([]Value{float64(entry.Season)}, settingsRow(entry.Snapshot)...)
		table.Append(row...)
		for _, warning := range entry.Snapshot.Warnings {
			table.Warnf("season %d: %s", entry.Season, warning)
		}
	}
	return table
}

func settingsRow(s league.Snapshot) []Value {
	return []Value{
		s.Name,
		s.LeagueID,
		s.PreviousLeagueID,
		s.DraftID,
		s.BracketID,
		s.LoserBracketID,
		s.Roster.Teams,
		s.Roster.ReserveSlots,
		s.Roster.ReserveCovidSlots,
		s.Roster.ReserveAllowOut,
		s.Roster.TaxiSlots,
		s.Roster.TaxiYears,
		s.Roster.TaxiDeadline,
		s.Waivers.Type,
		s.Waivers.Budget,
		s.Waivers.DayOfWeek,
		s.Waivers.DailyHourPST,
		s.Waivers.ClearDays,
		s.Waivers.DailyLastRanOnDay,
		s.StartWeek,
		s.TradeDeadline,
		s.Playoffs.WeekStart,
		s.Playoffs.Teams,
		s.Playoffs.SeedType,
		s.DraftRounds,
		RosterComposition(s.RosterPositions),
	}
}

// RosterComposition summarizes slots as "1QB,2RB,2WR" in first-appearance order.
func RosterComposition(positions []string) string {
	order, counts := countPositions(positions)
	parts := make([]string, 0, len(order))
	for _, position := range order {
		parts = append(parts, strconv.Itoa(counts[position])+position)
	}
	return strings.Join(parts, ",")
}

func countPositions(positions []string) ([]string, map[string]int) {
	order := make([]string, 0, len(positions))
	counts := make(map[string]int, len(positions))
	for _, position := range positions {
		if counts[position] == 0 {
			order = append(order, position)
		}
		counts[position]++
	}
	return order, counts
}

var starterSlotColumns = []string{"QB", "RB", "WR", "TE", "FLEX", "SUPER_FLEX", "BN"}

// RosterPositionsTable counts slots per position; TAXI and IR come from settings.
func RosterPositionsTable(s league.Snapshot) *Table {
	columns := make([]Column, 0, len(starterSlotColumns)+2)
	for _, name := range starterSlotColumns {
		columns = append(columns, Column{Name: name, Kind: KindNumber})
	}
	columns = append(columns, Column{Name: "TAXI", Kind: KindNumber}, Column{Name: "IR", Kind: KindNumber})

	_, counts := countPositions(s.RosterPositions)
	row := make([]Value, 0, len(columns))
	for _, name := range starterSlotColumns {
		row = append(row, float64(counts[name]))
	}
	row = append(row, s.Roster.TaxiSlots, s.Roster.ReserveSlots)

	table := NewTable("roster_positions", columns...)
	table.Append(row...)
	return table
}

// ScoringTable lists scoring settings sorted by setting name.
func ScoringTable(s league.Snapshot) *Table {
	table := NewTable("scoring_settings", Column{Name: "setting", Kind: KindText}, Column{Name: "points", Kind: KindNumber})
	for _, key := range sortedKeys(s.Scoring) {
		table.Append(key, s.Scoring[key])
	}
	return table
}
