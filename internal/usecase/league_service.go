package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/league"
	"github.com/riskibarqy/sleeper-league/internal/domain/matchup"
	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
	"github.com/riskibarqy/sleeper-league/internal/domain/roster"
	"github.com/riskibarqy/sleeper-league/internal/domain/transaction"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/projection"
)

// LeagueDataSource is the set of Sleeper reads the league tables are built from.
type LeagueDataSource interface {
	league.Source
	league.StateSource
	roster.Source
	matchup.Source
	transaction.Source
}

type RosterArchiver interface {
	Save(base string, rosters []rawdata.Document) (string, error)
}

type RosterOptions struct {
	// Archive saves the raw roster payload as a dated JSON file.
	Archive     bool
	ArchiveBase string
}

// LeagueService pairs Sleeper reads with their table projections.
type LeagueService struct {
	source  LeagueDataSource
	history *HistoryService
	archive RosterArchiver
	logger  *logging.Logger
}

func NewLeagueService(source LeagueDataSource, history *HistoryService, archive RosterArchiver, logger *logging.Logger) *LeagueService {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &LeagueService{source: source, history: history, archive: archive, logger: logger}
}

func (s *LeagueService) Snapshot(ctx context.Context, leagueID string) (league.Snapshot, error) {
	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return league.Snapshot{}, err
	}

	doc, err := s.source.GetLeague(ctx, leagueID)
	if err != nil {
		return league.Snapshot{}, fmt.Errorf("get league: %w", err)
	}
	snapshot, err := projection.LeagueSnapshot(doc)
	if err != nil {
		return league.Snapshot{}, fmt.Errorf("%w: league=%s: %v", ErrNotFound, leagueID, err)
	}
	for _, warning := range snapshot.Warnings {
		s.logger.WarnContext(ctx, "league setting not recognized", "league_id", leagueID, "warning", warning)
	}
	return snapshot, nil
}

func (s *LeagueService) LeagueSettings(ctx context.Context, leagueID string) (_ *projection.Table, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.LeagueSettings")
	defer func() { endUsecaseSpan(span, err) }()

	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return projection.LeagueSettingsTable(snapshot), nil
}

func (s *LeagueService) RosterPositions(ctx context.Context, leagueID string) (*projection.Table, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return projection.RosterPositionsTable(snapshot), nil
}

func (s *LeagueService) Scoring(ctx context.Context, leagueID string) (*projection.Table, error) {
	snapshot, err := s.Snapshot(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	return projection.ScoringTable(snapshot), nil
}

func (s *LeagueService) Rosters(ctx context.Context, leagueID string, opts RosterOptions) (_ *projection.Table, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Rosters")
	defer func() { endUsecaseSpan(span, err) }()

	leagueID, err = requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}
	docs, err := s.source.GetLeagueRosters(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league rosters: %w", err)
	}

	if opts.Archive && s.archive != nil {
		base := strings.TrimSpace(opts.ArchiveBase)
		if base == "" {
			base = "rosters_" + leagueID
		}
		path, archiveErr := s.archive.Save(base, docs)
		if archiveErr != nil {
			s.logger.WarnContext(ctx, "archive rosters failed", "league_id", leagueID, "error", archiveErr)
		} else {
			s.logger.InfoContext(ctx, "rosters archived", "league_id", leagueID, "path", path)
		}
	}

	records, err := projection.Rosters(docs)
	if err != nil {
		return nil, fmt.Errorf("project rosters league=%s: %w", leagueID, err)
	}
	return projection.RostersTable(records), nil
}

func (s *LeagueService) RosterUsers(ctx context.Context, leagueID string) (_ *projection.Table, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.RosterUsers")
	defer func() { endUsecaseSpan(span, err) }()

	rosters, err := s.Rosters(ctx, leagueID, RosterOptions{})
	if err != nil {
		return nil, err
	}
	users, err := s.source.GetLeagueUsers(ctx, strings.TrimSpace(leagueID))
	if err != nil {
		return nil, fmt.Errorf("get league users: %w", err)
	}
	return projection.RosterUsersTable(rosters, projection.Users(users)), nil
}

func (s *LeagueService) Matchups(ctx context.Context, leagueID string, week int) (_ *projection.Table, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.Matchups")
	defer func() { endUsecaseSpan(span, err) }()

	leagueID, err = requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}
	docs, err := s.source.GetMatchups(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("get matchups week=%d: %w", week, err)
	}
	records, err := projection.Matchups(docs, week)
	if err != nil {
		return nil, fmt.Errorf("project matchups league=%s week=%d: %w", leagueID, week, err)
	}
	return projection.MatchupsTable(records), nil
}

func (s *LeagueService) Transactions(ctx context.Context, leagueID string, week int) (*projection.Table, error) {
	txs, err := s.transactions(ctx, leagueID, week)
	if err != nil {
		return nil, err
	}
	return projection.TransactionsTable(txs), nil
}

func (s *LeagueService) TransactionMoves(ctx context.Context, leagueID string, week int) (*projection.Table, error) {
	txs, err := s.transactions(ctx, leagueID, week)
	if err != nil {
		return nil, err
	}
	return projection.TransactionMovesTable(txs), nil
}

func (s *LeagueService) transactions(ctx context.Context, leagueID string, week int) ([]transaction.Transaction, error) {
	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}
	docs, err := s.source.GetTransactions(ctx, leagueID, week)
	if err != nil {
		return nil, fmt.Errorf("get transactions week=%d: %w", week, err)
	}
	return projection.Transactions(docs, week), nil
}

func (s *LeagueService) TradedPicks(ctx context.Context, leagueID string) (*projection.Table, error) {
	leagueID, err := requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}
	docs, err := s.source.GetTradedPicks(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get traded picks: %w", err)
	}
	return projection.Flatten("traded_picks", docs), nil
}

func (s *LeagueService) NFLState(ctx context.Context) (*projection.Table, error) {
	doc, err := s.source.GetNFLState(ctx)
	if err != nil {
		return nil, fmt.Errorf("get nfl state: %w", err)
	}
	return projection.Flatten("nfl_state", []rawdata.Document{doc}), nil
}

func (s *LeagueService) HistoryTable(ctx context.Context, leagueID string, season int) (*projection.Table, error) {
	history, err := s.history.ResolveHistory(ctx, leagueID, season)
	if err != nil {
		return nil, err
	}
	table := projection.HistoryTable(history)
	for _, warning := range table.Warnings {
		s.logger.WarnContext(ctx, "league setting not recognized", "league_id", leagueID, "warning", warning)
	}
	return table, nil
}

// PreviousSeasonBracketTable reports ok=false when there is no earlier bracket to show.
func (s *LeagueService) PreviousSeasonBracketTable(ctx context.Context, leagueID string, season int) (*projection.Table, bool, error) {
	entries, ok, err := s.history.PreviousSeasonBracket(ctx, leagueID, season)
	if err != nil || !ok {
		return nil, ok, err
	}
	return projection.BracketTable(entries), true, nil
}

func requireLeagueID(leagueID string) (string, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return "", fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}
	return leagueID, nil
}
