package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/projection"
)

// PlayersDirectory yields the full NFL player map keyed by player id.
type PlayersDirectory interface {
	Load(ctx context.Context) (rawdata.Document, error)
}

type PlayerService struct {
	directory PlayersDirectory
	logger    *logging.Logger
}

func NewPlayerService(directory PlayersDirectory, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PlayerService{directory: directory, logger: logger}
}

// Players flattens the requested players into one table, in the order given.
// Unknown ids are reported as ErrNotFound.
func (s *PlayerService) Players(ctx context.Context, playerIDs []string) (_ *projection.Table, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Players")
	defer func() { endUsecaseSpan(span, err) }()

	ids := make([]string, 0, len(playerIDs))
	for _, id := range playerIDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("%w: at least one player id is required", ErrInvalidInput)
	}

	directory, err := s.directory.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load players directory: %w", err)
	}

	docs := make([]rawdata.Document, 0, len(ids))
	var missing []string
	for _, id := range ids {
		doc, ok := directory[id].(map[string]any)
		if !ok {
			missing = append(missing, id)
			continue
		}
		docs = append(docs, doc)
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: players %s", ErrNotFound, strings.Join(missing, ","))
	}

	s.logger.DebugContext(ctx, "players resolved", "requested", len(ids), "directory_size", len(directory))
	return projection.Flatten("players", docs), nil
}
