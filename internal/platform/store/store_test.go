package store

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func TestJSONStore_WriteThenRead(t *testing.T) {
	t.Parallel()

	s := NewJSONStore(t.TempDir())
	path, err := s.WriteJSON(filepath.Join("nested", "doc.json"), map[string]any{"league_id": "289646328504385536"})
	if err != nil {
		t.Fatalf("write json: %v", err)
	}
	if !s.Exists(filepath.Join("nested", "doc.json")) {
		t.Fatalf("expected %s to exist", path)
	}

	raw, err := s.ReadRaw(filepath.Join("nested", "doc.json"))
	if err != nil {
		t.Fatalf("read raw: %v", err)
	}
	if !strings.Contains(string(raw), "\n  \"league_id\"") {
		t.Fatalf("expected two-space indentation, got %s", raw)
	}

	var out map[string]any
	if err := s.ReadJSON(filepath.Join("nested", "doc.json"), &out); err != nil {
		t.Fatalf("read json: %v", err)
	}
	if out["league_id"] != "289646328504385536" {
		t.Fatalf("unexpected league_id: %v", out["league_id"])
	}
}

func TestJSONStore_ReadJSONKeepsNumberPrecision(t *testing.T) {
	t.Parallel()

	s := NewJSONStore(t.TempDir())
	if _, err := s.WriteRaw("ids.json", []byte(`{"bracket_id": 1048274672483328000}`)); err != nil {
		t.Fatalf("write raw: %v", err)
	}
	var out map[string]any
	if err := s.ReadJSON("ids.json", &out); err != nil {
		t.Fatalf("read json: %v", err)
	}
	num, ok := out["bracket_id"].(json.Number)
	if !ok || num.String() != "1048274672483328000" {
		t.Fatalf("unexpected bracket_id: %#v", out["bracket_id"])
	}
}

func TestRosterArchive_SaveUsesDatedName(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	archive := NewRosterArchive(NewJSONStore(dir), fixedClock{now: time.Date(2024, 9, 3, 12, 0, 0, 0, time.UTC)})

	path, err := archive.Save("league_rosters", []rawdata.Document{{"roster_id": 1}})
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if want := filepath.Join(dir, "league_rosters_20240903.json"); path != want {
		t.Fatalf("unexpected path: got=%s want=%s", path, want)
	}
}
