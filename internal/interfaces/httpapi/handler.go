package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/sleeper-league/internal/platform/logging"
	"github.com/riskibarqy/sleeper-league/internal/projection"
	"github.com/riskibarqy/sleeper-league/internal/usecase"
)

type Handler struct {
	leagueService *usecase.LeagueService
	playerService *usecase.PlayerService
	logger        *logging.Logger
	validator     *validator.Validate
}

func NewHandler(leagueService *usecase.LeagueService, playerService *usecase.PlayerService, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.NewNop()
	}

	return &Handler{
		leagueService: leagueService,
		playerService: playerService,
		logger:        logger.Named("httpapi"),
		validator:     validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type tableQuery struct {
	LeagueID string `validate:"required,numeric"`
	Format   string `validate:"omitempty,oneof=json csv parquet"`
}

type seasonQuery struct {
	tableQuery
	Season int `validate:"required,gte=2017,lte=2100"`
}

type weekQuery struct {
	tableQuery
	Week int `validate:"required,gte=1"`
}

func readTableQuery(r *http.Request) tableQuery {
	return tableQuery{
		LeagueID: strings.TrimSpace(r.PathValue("leagueID")),
		Format:   strings.ToLower(strings.TrimSpace(r.URL.Query().Get("format"))),
	}
}

func (h *Handler) parseTableQuery(ctx context.Context, r *http.Request) (tableQuery, error) {
	query := readTableQuery(r)
	if err := h.validateRequest(ctx, query); err != nil {
		return tableQuery{}, err
	}
	return query, nil
}

func (h *Handler) parseSeasonQuery(ctx context.Context, r *http.Request) (seasonQuery, error) {
	season, err := parseIntParam("season", r.URL.Query().Get("season"))
	if err != nil {
		return seasonQuery{}, err
	}

	query := seasonQuery{tableQuery: readTableQuery(r), Season: season}
	if err := h.validateRequest(ctx, query); err != nil {
		return seasonQuery{}, err
	}
	return query, nil
}

func (h *Handler) parseWeekQuery(ctx context.Context, r *http.Request) (weekQuery, error) {
	week, err := parseIntParam("week", r.PathValue("week"))
	if err != nil {
		return weekQuery{}, err
	}

	query := weekQuery{tableQuery: readTableQuery(r), Week: week}
	if err := h.validateRequest(ctx, query); err != nil {
		return weekQuery{}, err
	}
	return query, nil
}

func parseIntParam(name, raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("%w: %s is required", usecase.ErrInvalidInput, name)
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

func parseBoolParam(name, raw string) (bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return false, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean, got %q", usecase.ErrInvalidInput, name, raw)
	}
	return value, nil
}

// respondTable writes the table, or the error when loading it failed.
func (h *Handler) respondTable(ctx context.Context, w http.ResponseWriter, op string, format string, table *projection.Table, err error) {
	if err != nil {
		h.logger.WarnContext(ctx, op+" failed", "error", err)
		writeError(ctx, w, err)
		return
	}
	writeTable(ctx, w, format, table)
}
