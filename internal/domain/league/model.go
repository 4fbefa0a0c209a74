package league

import "strings"

// Snapshot is the typed view of one season's league record.
// Numeric settings that the upstream payload omits are NaN.
type Snapshot struct {
	LeagueID         string
	PreviousLeagueID string
	Name             string
	Season           string
	Status           string
	DraftID          string
	BracketID        string
	LoserBracketID   string
	RosterPositions  []string
	Roster           RosterRules
	Waivers          WaiverRules
	Playoffs         PlayoffRules
	StartWeek        float64
	TradeDeadline    float64
	DraftRounds      float64
	Scoring          map[string]float64
	// Warnings collects label lookups that fell back to Unrecognized.
	Warnings []string
}

type RosterRules struct {
	Teams             float64
	ReserveSlots      float64
	ReserveCovidSlots float64
	ReserveAllowOut   float64
	TaxiSlots         float64
	TaxiYears         float64
	TaxiDeadline      string
}

type WaiverRules struct {
	Type              string
	Budget            float64
	DayOfWeek         float64
	DailyHourPST      float64
	ClearDays         float64
	DailyLastRanOnDay float64
}

type PlayoffRules struct {
	WeekStart float64
	Teams     float64
	SeedType  string
}

// HasPrevious reports whether the snapshot points at a prior season.
// Sleeper uses null, "" and "0" for "no previous league".
func (s Snapshot) HasPrevious() bool {
	ref := strings.TrimSpace(s.PreviousLeagueID)
	return ref != "" && ref != "0"
}

// SeasonSnapshot tags a snapshot with the season it was resolved for.
type SeasonSnapshot struct {
	Season   int
	Snapshot Snapshot
}

// History is ordered newest season first.
type History []SeasonSnapshot

func (h History) BySeason(season int) (SeasonSnapshot, bool) {
	for _, entry := range h {
		if entry.Season == season {
			return entry, true
		}
	}
	return SeasonSnapshot{}, false
}

func (h History) LeagueIDs() []string {
	out := make([]string, 0, len(h))
	for _, entry := range h {
		out = append(out, entry.Snapshot.LeagueID)
	}
	return out
}
