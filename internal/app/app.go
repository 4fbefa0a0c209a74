package app

import (
	"fmt"
	"net/http"

	clock "github.com/itbasis/go-clock"
	"github.com/riskibarqy/sleeper-league/external/sleeper"
	"github.com/riskibarqy/sleeper-league/internal/config"
	"github.com/riskibarqy/sleeper-league/internal/interfaces/httpapi"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/resilience"
	"github.com/riskibarqy/sleeper-league/internal/platform/store"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = logging.NewNop()
	}
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	wallClock := clock.New()

	client := sleeper.NewClient(sleeper.ClientConfig{
		BaseURL:   cfg.SleeperBaseURL,
		CDNURL:    cfg.SleeperCDNURL,
		Timeout:   cfg.SleeperTimeout,
		UserAgent: cfg.SleeperUserAgent,
		Logger:    logger,
		Breaker:   resilience.NewCircuitBreaker(cfg.SleeperBreaker, wallClock),
	})
	playersCache := sleeper.NewPlayersCache(cfg.PlayersCacheDir, client, wallClock, logger)
	rosterArchive := store.NewRosterArchive(store.NewJSONStore(cfg.RosterArchiveDir), wallClock)

	historySvc := usecase.NewHistoryService(client, cfg.HistoryMaxSeasons, logger)
	leagueSvc := usecase.NewLeagueService(client, historySvc, rosterArchive, logger)
	playerSvc := usecase.NewPlayerService(playersCache, logger)

	handler := httpapi.NewHandler(leagueSvc, playerSvc, logger)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
