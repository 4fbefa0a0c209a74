package bracket

import (
	"strconv"
	"strings"
)

const (
	Winners = "winners"
	Losers  = "losers"
)

// Outcome selects which side of a previous match feeds a slot.
type Outcome string

const (
	OutcomeWinner Outcome = "w"
	OutcomeLoser  Outcome = "l"
)

// SlotRef points a slot at the winner or loser of an earlier match.
type SlotRef struct {
	Outcome Outcome
	Match   int64
}

// Slot holds either a concrete roster, a forward reference, or both once resolved.
type Slot struct {
	RosterID *int64
	From     *SlotRef
}

// Entry is one match of a playoff bracket.
type Entry struct {
	Round     int64
	Match     int64
	Team1     Slot
	Team2     Slot
	Winner    *int64
	Loser     *int64
	Placement *int64
}

type Entries []Entry

// Description renders the human-readable match label.
func (e Entry) Description() string {
	var b strings.Builder
	switch {
	case fromOutcome(e.Team1, OutcomeWinner) && fromOutcome(e.Team2, OutcomeWinner):
		b.WriteString("Championship: Winner of Match ")
		b.WriteString(strconv.FormatInt(e.Team1.From.Match, 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(e.Team2.From.Match, 10))
	case fromOutcome(e.Team1, OutcomeLoser) && fromOutcome(e.Team2, OutcomeLoser):
		b.WriteString("Battle for ")
		b.WriteString(e.placementOrdinal(3))
		b.WriteString(": Losers of Match ")
		b.WriteString(strconv.FormatInt(e.Team1.From.Match, 10))
		b.WriteByte('/')
		b.WriteString(strconv.FormatInt(e.Team2.From.Match, 10))
	case e.Placement != nil && e.Team1.From == nil:
		b.WriteString("Battle for ")
		b.WriteString(e.placementOrdinal(5))
		b.WriteString(" (Rd ")
		b.WriteString(strconv.FormatInt(e.Round, 10))
		b.WriteString("): Teams ")
		b.WriteString(e.Team1.label())
		b.WriteByte('/')
		b.WriteString(e.Team2.label())
	default:
		b.WriteString("Rd ")
		b.WriteString(strconv.FormatInt(e.Round, 10))
		b.WriteString(": Teams ")
		b.WriteString(e.Team1.label())
		b.WriteByte('/')
		b.WriteString(e.Team2.label())
	}
	return b.String()
}

func (e Entry) placementOrdinal(fallback int64) string {
	if e.Placement != nil && *e.Placement > 0 {
		return Ordinal(*e.Placement)
	}
	return Ordinal(fallback)
}

func (s Slot) label() string {
	if s.RosterID == nil {
		return "TBD"
	}
	return strconv.FormatInt(*s.RosterID, 10)
}

func fromOutcome(s Slot, outcome Outcome) bool {
	return s.From != nil && s.From.Outcome == outcome
}

// Ordinal formats 1 as "1st", 2 as "2nd", 11 as "11th" and so on.
func Ordinal(n int64) string {
	suffix := "th"
	if n%100 < 11 || n%100 > 13 {
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.FormatInt(n, 10) + suffix
}

// Normalize lower-cases a bracket name and reports whether it is known.
func Normalize(name string) (string, bool) {
	value := strings.ToLower(strings.TrimSpace(name))
	switch value {
	case Winners, Losers:
		return value, true
	default:
		return value, false
	}
}
