package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/sleeper-league/internal/domain/transaction"
	"github.com/riskibarqy/sleeper-league/internal/projection"
	"go.opentelemetry.io/otel/attribute"
)

const seasonFetchWorkers = 4

type WeekRange struct {
	From int
	To   int
}

func (r WeekRange) weeks() int { return r.To - r.From + 1 }

// SeasonTransactions fetches every week in weeks through a small worker pool
// and returns the rows in week order. The first failing week, in week order,
// fails the whole call.
func (s *LeagueService) SeasonTransactions(ctx context.Context, leagueID string, weeks WeekRange, moves bool) (_ *projection.Table, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.SeasonTransactions")
	defer func() { endUsecaseSpan(span, err) }()

	leagueID, err = requireLeagueID(leagueID)
	if err != nil {
		return nil, err
	}
	if weeks.From < 1 || weeks.To < weeks.From {
		return nil, fmt.Errorf("%w: invalid week range %d..%d", ErrInvalidInput, weeks.From, weeks.To)
	}
	span.SetAttributes(attribute.Int("transactions.weeks", weeks.weeks()))

	pool, err := ants.NewPool(min(seasonFetchWorkers, weeks.weeks()))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	perWeek := make([][]transaction.Transaction, weeks.weeks())
	errs := make([]error, weeks.weeks())

	var workers sync.WaitGroup
	for i := range perWeek {
		week := weeks.From + i
		workers.Add(1)
		if submitErr := pool.Submit(func() {
			defer workers.Done()
			perWeek[i], errs[i] = s.transactions(ctx, leagueID, week)
		}); submitErr != nil {
			workers.Done()
			errs[i] = fmt.Errorf("submit week=%d to worker pool: %w", week, submitErr)
		}
	}
	workers.Wait()

	var all []transaction.Transaction
	for i, weekErr := range errs {
		if weekErr != nil {
			return nil, weekErr
		}
		all = append(all, perWeek[i]...)
	}

	s.logger.InfoContext(ctx, "season transactions fetched",
		"league_id", leagueID,
		"from_week", weeks.From,
		"to_week", weeks.To,
		"transactions", len(all),
	)
	if moves {
		return projection.TransactionMovesTable(all), nil
	}
	return projection.TransactionsTable(all), nil
}
