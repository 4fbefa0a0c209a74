package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/bracket"
	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/projection"
	"go.opentelemetry.io/otel/attribute"
)

const DefaultHistoryMaxSeasons = 50

// HistoryCycleError reports a back-reference chain that revisits a league or
// runs past the configured number of seasons.
type HistoryCycleError struct {
	StartLeagueID    string
	RepeatedLeagueID string
	Seasons          int
	MaxSeasons       int
}

func (e *HistoryCycleError) Error() string {
	if e.RepeatedLeagueID != "" {
		return fmt.Sprintf("league history from %s revisits league %s after %d seasons", e.StartLeagueID, e.RepeatedLeagueID, e.Seasons)
	}
	return fmt.Sprintf("league history from %s exceeds %d seasons", e.StartLeagueID, e.MaxSeasons)
}

func (e *HistoryCycleError) Is(target error) bool { return target == ErrHistoryCycle }

type HistoryService struct {
	source     league.Source
	maxSeasons int
	logger     *logging.Logger
}

func NewHistoryService(source league.Source, maxSeasons int, logger *logging.Logger) *HistoryService {
	if maxSeasons <= 0 {
		maxSeasons = DefaultHistoryMaxSeasons
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &HistoryService{source: source, maxSeasons: maxSeasons, logger: logger}
}

// ResolveHistory follows previous_league_id from leagueID, tagging each hop
// with one season less. The result is newest first. A league document that
// cannot be projected ends the walk without an error; source faults are
// returned unchanged.
func (s *HistoryService) ResolveHistory(ctx context.Context, leagueID string, season int) (_ league.History, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.ResolveHistory")
	defer func() { endUsecaseSpan(span, err) }()

	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return nil, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	history := make(league.History, 0, 4)
	visited := make(map[string]struct{}, 4)
	current, currentSeason := leagueID, season

	for {
		if _, seen := visited[current]; seen {
			return nil, &HistoryCycleError{StartLeagueID: leagueID, RepeatedLeagueID: current, Seasons: len(history)}
		}
		if len(history) >= s.maxSeasons {
			return nil, &HistoryCycleError{StartLeagueID: leagueID, Seasons: len(history), MaxSeasons: s.maxSeasons}
		}
		visited[current] = struct{}{}

		doc, err := s.source.GetLeague(ctx, current)
		if err != nil {
			return nil, err
		}

		snapshot, err := projection.LeagueSnapshot(doc)
		if err != nil {
			s.logger.WarnContext(ctx, "league snapshot malformed, stopping history walk",
				"league_id", current,
				"season", currentSeason,
				"resolved_seasons", len(history),
				"error", err,
			)
			break
		}
		for _, warning := range snapshot.Warnings {
			s.logger.DebugContext(ctx, "league setting label", "league_id", current, "season", currentSeason, "warning", warning)
		}

		history = append(history, league.SeasonSnapshot{Season: currentSeason, Snapshot: snapshot})
		if !snapshot.HasPrevious() {
			break
		}
		current, currentSeason = strings.TrimSpace(snapshot.PreviousLeagueID), currentSeason-1
	}

	span.SetAttributes(attribute.Int("history.seasons", len(history)))
	s.logger.InfoContext(ctx, "league history resolved", "league_id", leagueID, "season", season, "seasons", len(history))
	return history, nil
}

// PreviousSeasonBracket returns the winners bracket of the season before
// season. ok is false when that season is not in the history or has no
// back-reference of its own.
func (s *HistoryService) PreviousSeasonBracket(ctx context.Context, leagueID string, season int) (_ bracket.Entries, _ bool, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.HistoryService.PreviousSeasonBracket")
	defer func() { endUsecaseSpan(span, err) }()

	history, err := s.ResolveHistory(ctx, leagueID, season)
	if err != nil {
		return nil, false, err
	}

	previous, ok := history.BySeason(season - 1)
	if !ok || !previous.Snapshot.HasPrevious() {
		s.logger.InfoContext(ctx, "no previous season bracket", "league_id", leagueID, "season", season)
		return nil, false, nil
	}

	docs, err := s.source.GetPlayoffBracket(ctx, previous.Snapshot.LeagueID, bracket.Winners)
	if err != nil {
		return nil, false, err
	}
	return projection.Bracket(docs), true, nil
}
