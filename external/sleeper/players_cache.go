package sleeper

import (
	"context"
	"maps"
	"time"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/platform/store"
	"golang.org/x/sync/singleflight"
)

const (
	lastFetchDateKey  = "last_fetch_date"
	playersFileLayout = "2006-01-02"
)

type PlayersFetcher interface {
	GetPlayers(ctx context.Context) (rawdata.Document, error)
}

type Clock interface {
	Now() time.Time
}

// PlayersCache keeps one copy of the NFL player directory per calendar day on disk.
type PlayersCache struct {
	store   *store.JSONStore
	fetcher PlayersFetcher
	clock   Clock
	logger  *logging.Logger
	flight  singleflight.Group
}

func NewPlayersCache(dir string, fetcher PlayersFetcher, clock Clock, logger *logging.Logger) *PlayersCache {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PlayersCache{
		store:   store.NewJSONStore(dir),
		fetcher: fetcher,
		clock:   clock,
		logger:  logger.Named("players_cache"),
	}
}

// FileName is the cache file used for the given day.
func FileName(day time.Time) string {
	return "sleeper_players_" + day.Format(playersFileLayout) + ".json"
}

// Load returns today's player directory, downloading it at most once per day.
// The returned map never contains the freshness marker.
func (c *PlayersCache) Load(ctx context.Context) (rawdata.Document, error) {
	today := c.clock.Now()
	key := today.Format(playersFileLayout)

	out, err, _ := c.flight.Do(key, func() (any, error) {
		return c.load(ctx, today)
	})
	if err != nil {
		return nil, err
	}
	return maps.Clone(out.(rawdata.Document)), nil
}

func (c *PlayersCache) load(ctx context.Context, today time.Time) (rawdata.Document, error) {
	day := today.Format(playersFileLayout)
	name := FileName(today)

	if c.store.Exists(name) {
		var cached rawdata.Document
		err := c.store.ReadJSON(name, &cached)
		switch {
		case err != nil:
			c.logger.WarnContext(ctx, "players cache unreadable, refetching", "file", c.store.Path(name), "error", err)
		case markerDate(cached) == day:
			delete(cached, lastFetchDateKey)
			c.logger.DebugContext(ctx, "players cache hit", "file", c.store.Path(name), "players", len(cached))
			return cached, nil
		default:
			c.logger.InfoContext(ctx, "players cache stale, refetching", "file", c.store.Path(name), "marker", markerDate(cached))
		}
	}

	c.logger.WarnContext(ctx, "downloading the full NFL player directory; use sparingly, at most once per day")
	players, err := c.fetcher.GetPlayers(ctx)
	if err != nil {
		return nil, err
	}
	if players == nil {
		players = rawdata.Document{}
	}

	marked := maps.Clone(players)
	marked[lastFetchDateKey] = day
	if path, err := c.store.WriteJSON(name, marked); err != nil {
		c.logger.WarnContext(ctx, "players cache write failed", "file", c.store.Path(name), "error", err)
	} else {
		c.logger.InfoContext(ctx, "players cache refreshed", "file", path, "players", len(players))
	}

	delete(players, lastFetchDateKey)
	return players, nil
}

func markerDate(doc rawdata.Document) string {
	value, _ := doc[lastFetchDateKey].(string)
	return value
}
