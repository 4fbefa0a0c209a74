package store

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

type Clock interface {
	Now() time.Time
}

// RosterArchive saves raw roster payloads as dated JSON snapshots.
type RosterArchive struct {
	store *JSONStore
	clock Clock
}

func NewRosterArchive(store *JSONStore, clock Clock) *RosterArchive {
	return &RosterArchive{store: store, clock: clock}
}

// Save writes {base}_YYYYMMDD.json and returns the file path.
func (a *RosterArchive) Save(base string, rosters []rawdata.Document) (string, error) {
	base = strings.TrimSpace(base)
	if base == "" {
		base = "rosters"
	}
	name := base + "_" + a.clock.Now().Format("20060102") + ".json"
	if rosters == nil {
		rosters = []rawdata.Document{}
	}
	return a.store.WriteJSON(filepath.Clean(name), rosters)
}
