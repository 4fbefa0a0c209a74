package httpapi

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	sonic "github.com/bytedance/sonic"
	clock "github.com/itbasis/go-clock"
	"github.com/riskibarqy/sleeper-league/external/sleeper"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

const (
	currentLeague  = `{"league_id":"300","previous_league_id":"200","name":"Gridiron","season":"2024","settings":{"num_teams":10,"waiver_type":2,"taxi_deadline":0,"playoff_seed_type":0}}`
	previousLeague = `{"league_id":"200","previous_league_id":"100","name":"Gridiron","season":"2023","settings":{"num_teams":10,"waiver_type":1,"taxi_deadline":1,"playoff_seed_type":1}}`
	firstLeague    = `{"league_id":"100","previous_league_id":null,"name":"Gridiron","season":"2022","settings":{"num_teams":10,"waiver_type":0,"taxi_deadline":2,"playoff_seed_type":0}}`
	bracket200     = `[{"r":1,"m":1,"t1":1,"t2":2,"w":1,"l":2},{"r":2,"m":2,"t1_from":{"w":1},"t2_from":{"w":1},"w":1,"l":3,"p":1}]`
)

type routerFixture struct {
	server   *httptest.Server
	upstream atomic.Int64
}

func newRouterFixture(t *testing.T, routes map[string]string) *routerFixture {
	t.Helper()

	fixture := &routerFixture{}
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fixture.upstream.Add(1)
		body, ok := routes[r.URL.Path]
		if !ok {
			http.Error(w, `{"error":"not found"}`, http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(upstream.Close)

	logger := logging.NewNop()
	client := sleeper.NewClient(sleeper.ClientConfig{BaseURL: upstream.URL + "/v1", CDNURL: upstream.URL, Logger: logger})
	history := usecase.NewHistoryService(client, usecase.DefaultHistoryMaxSeasons, logger)
	leagues := usecase.NewLeagueService(client, history, nil, logger)
	players := usecase.NewPlayerService(sleeper.NewPlayersCache(t.TempDir(), client, clock.New(), logger), logger)

	fixture.server = httptest.NewServer(NewRouter(NewHandler(leagues, players, logger), logger, nil))
	t.Cleanup(fixture.server.Close)
	return fixture
}

func (f *routerFixture) get(t *testing.T, path string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Get(f.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp, body
}

type tableEnvelope struct {
	Data struct {
		Name    string   `json:"name"`
		Columns []string `json:"columns"`
		Rows    [][]any  `json:"rows"`
	} `json:"data"`
	Error *struct {
		Code   int    `json:"code"`
		Status string `json:"status"`
	} `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) tableEnvelope {
	t.Helper()

	var env tableEnvelope
	if err := sonic.Unmarshal(body, &env); err != nil {
		t.Fatalf("unmarshal envelope: %v (%s)", err, body)
	}
	return env
}

func TestRouter_Healthz(t *testing.T) {
	fixture := newRouterFixture(t, nil)

	resp, body := fixture.get(t, "/healthz")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, body)
	}
}

func TestRouter_LeagueHistoryWalksChain(t *testing.T) {
	fixture := newRouterFixture(t, map[string]string{
		"/v1/league/300": currentLeague,
		"/v1/league/200": previousLeague,
		"/v1/league/100": firstLeague,
	})

	resp, body := fixture.get(t, "/v1/leagues/300/history?season=2024")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, body)
	}

	env := decodeEnvelope(t, body)
	if env.Data.Name != "league_history" {
		t.Fatalf("unexpected table name %q", env.Data.Name)
	}
	if len(env.Data.Rows) != 3 {
		t.Fatalf("expected 3 seasons, got %d", len(env.Data.Rows))
	}
	seasons := []float64{2024, 2023, 2022}
	for i, want := range seasons {
		if got, _ := env.Data.Rows[i][0].(float64); got != want {
			t.Fatalf("row %d season=%v want=%v", i, env.Data.Rows[i][0], want)
		}
	}
}

func TestRouter_HistoryRejectsBadSeason(t *testing.T) {
	fixture := newRouterFixture(t, nil)

	for _, query := range []string{"", "?season=abc", "?season=1999"} {
		resp, body := fixture.get(t, "/v1/leagues/300/history"+query)
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("query %q: expected 400, got %d (%s)", query, resp.StatusCode, body)
		}
	}
	if got := fixture.upstream.Load(); got != 0 {
		t.Fatalf("expected no upstream calls, got %d", got)
	}
}

func TestRouter_MatchupsWeekOutOfRange(t *testing.T) {
	fixture := newRouterFixture(t, nil)

	resp, body := fixture.get(t, "/v1/leagues/300/matchups/18")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", resp.StatusCode, body)
	}
	if got := fixture.upstream.Load(); got != 0 {
		t.Fatalf("expected no upstream calls, got %d", got)
	}
}

func TestRouter_UpstreamMissingLeagueIsBadGateway(t *testing.T) {
	fixture := newRouterFixture(t, nil)

	resp, body := fixture.get(t, "/v1/leagues/999/settings")
	if resp.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d (%s)", resp.StatusCode, body)
	}
	env := decodeEnvelope(t, body)
	if env.Error == nil || env.Error.Status != "UNAVAILABLE" {
		t.Fatalf("unexpected error envelope: %s", body)
	}
}

func TestRouter_PreviousSeasonBracket(t *testing.T) {
	fixture := newRouterFixture(t, map[string]string{
		"/v1/league/300":                 currentLeague,
		"/v1/league/200":                 previousLeague,
		"/v1/league/100":                 firstLeague,
		"/v1/league/200/winners_bracket": bracket200,
	})

	resp, body := fixture.get(t, "/v1/leagues/300/brackets/previous?season=2024")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, body)
	}
	env := decodeEnvelope(t, body)
	if len(env.Data.Rows) != 2 {
		t.Fatalf("expected 2 bracket rows, got %d", len(env.Data.Rows))
	}
	last := env.Data.Rows[1]
	if desc, _ := last[len(last)-1].(string); desc != "Championship: Winner of Match 1/1" {
		t.Fatalf("unexpected description %q", desc)
	}

	// League 100 has no predecessor, so the season before 2023 has no bracket to show.
	resp, body = fixture.get(t, "/v1/leagues/200/brackets/previous?season=2023")
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 without an earlier bracket, got %d (%s)", resp.StatusCode, body)
	}
}

func TestRouter_SettingsAsCSV(t *testing.T) {
	fixture := newRouterFixture(t, map[string]string{"/v1/league/100": firstLeague})

	resp, body := fixture.get(t, "/v1/leagues/100/settings?format=csv")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, body)
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "text/csv") {
		t.Fatalf("unexpected content type %q", resp.Header.Get("Content-Type"))
	}
	lines := strings.Split(strings.TrimSpace(string(body)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header plus one row, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "league_name,league_id,") {
		t.Fatalf("unexpected header %q", lines[0])
	}
}

func TestRouter_RejectsUnknownFormat(t *testing.T) {
	fixture := newRouterFixture(t, nil)

	resp, body := fixture.get(t, "/v1/leagues/100/settings?format=xml")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", resp.StatusCode, body)
	}
}

func TestRouter_PlayersFromDailyCache(t *testing.T) {
	fixture := newRouterFixture(t, map[string]string{
		"/v1/players/nfl": `{"4046":{"player_id":"4046","full_name":"Patrick Mahomes","team":"KC"},"6794":{"player_id":"6794","full_name":"Justin Jefferson","team":"MIN"}}`,
	})

	for i := 0; i < 2; i++ {
		resp, body := fixture.get(t, "/v1/players/nfl?ids=6794,4046")
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, body)
		}
		env := decodeEnvelope(t, body)
		if len(env.Data.Rows) != 2 {
			t.Fatalf("expected 2 players, got %d", len(env.Data.Rows))
		}
	}
	if got := fixture.upstream.Load(); got != 1 {
		t.Fatalf("expected one directory download, got %d", got)
	}

	resp, body := fixture.get(t, "/v1/players/nfl")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 without ids, got %d (%s)", resp.StatusCode, body)
	}
}

func TestRouter_SeasonTransactions(t *testing.T) {
	fixture := newRouterFixture(t, map[string]string{
		"/v1/league/300/transactions/1": `[{"transaction_id":"a","type":"waiver","status":"complete","adds":{"4046":1}}]`,
		"/v1/league/300/transactions/2": `[]`,
		"/v1/league/300/transactions/3": `[{"transaction_id":"c","type":"free_agent","status":"complete","drops":{"6794":2}}]`,
	})

	resp, body := fixture.get(t, "/v1/leagues/300/transactions?from=1&to=3")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", resp.StatusCode, body)
	}
	env := decodeEnvelope(t, body)
	if len(env.Data.Rows) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(env.Data.Rows))
	}

	resp, body = fixture.get(t, "/v1/leagues/300/transactions?from=4&to=2")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for reversed range, got %d (%s)", resp.StatusCode, body)
	}
}
