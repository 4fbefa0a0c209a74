package app

import (
	"testing"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/config"
)

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	if _, err := NewHTTPServer(config.Config{}, nil); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNewHTTPServer_UsesConfig(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:          ":0",
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      7 * time.Second,
		SleeperBaseURL:    "http://127.0.0.1:1/v1",
		PlayersCacheDir:   t.TempDir(),
		RosterArchiveDir:  t.TempDir(),
		HistoryMaxSeasons: 5,
	}

	srv, err := NewHTTPServer(cfg, nil)
	if err != nil {
		t.Fatalf("build server: %v", err)
	}
	if srv.Addr != ":0" || srv.ReadTimeout != 5*time.Second || srv.WriteTimeout != 7*time.Second {
		t.Fatalf("unexpected server settings: addr=%q read=%s write=%s", srv.Addr, srv.ReadTimeout, srv.WriteTimeout)
	}
	if srv.Handler == nil {
		t.Fatalf("expected router to be wired")
	}
}
