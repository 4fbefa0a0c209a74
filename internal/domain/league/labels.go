package league

import "fmt"

// Unrecognized is the label used for codes outside the documented tables.
const Unrecognized = "Unrecognized"

// Label is a human-readable name for an enumerated league setting.
type Label struct {
	Code        int
	Name        string
	Description string
}

var waiverTypes = map[int]Label{
	0: {Code: 0, Name: "Rolling Waivers", Description: "claims are processed in a rolling priority order"},
	1: {Code: 1, Name: "Reverse Standings", Description: "waiver priority follows reverse standings"},
	2: {Code: 2, Name: "FAAB Bidding", Description: "free agent acquisition budget bidding"},
}

var taxiDeadlines = map[int]Label{
	0: {Code: 0, Name: "None", Description: "taxi squad players can be moved all season"},
	1: {Code: 1, Name: "Preseason Week 1", Description: "taxi squad locks after preseason week 1"},
	2: {Code: 2, Name: "Preseason Week 2", Description: "taxi squad locks after preseason week 2"},
	3: {Code: 3, Name: "Preseason Week 3", Description: "taxi squad locks after preseason week 3"},
	4: {Code: 4, Name: "Start of Regular Season", Description: "taxi squad locks when the regular season starts"},
}

var playoffSeedTypes = map[int]Label{
	0: {Code: 0, Name: "Default", Description: "bracket keeps its original seeding"},
	1: {Code: 1, Name: "Re-seed", Description: "remaining teams are re-seeded every round"},
}

// WaiverType resolves a waiver_type code. ok is false for unknown codes.
func WaiverType(code int) (Label, bool) {
	return lookup(waiverTypes, code)
}

// TaxiDeadline resolves a taxi_deadline code. ok is false for unknown codes.
func TaxiDeadline(code int) (Label, bool) {
	return lookup(taxiDeadlines, code)
}

// PlayoffSeedType resolves a playoff_seed_type code. ok is false for unknown codes.
func PlayoffSeedType(code int) (Label, bool) {
	return lookup(playoffSeedTypes, code)
}

func lookup(table map[int]Label, code int) (Label, bool) {
	label, ok := table[code]
	if !ok {
		return Label{Code: code, Name: Unrecognized, Description: fmt.Sprintf("unrecognized code %d", code)}, false
	}
	return label, true
}
