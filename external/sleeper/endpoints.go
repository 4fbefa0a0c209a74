package sleeper

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/sleeper-league/internal/domain/bracket"
	"github.com/riskibarqy/sleeper-league/internal/domain/rawdata"
)

const (
	minMatchupWeek = 1
	maxMatchupWeek = 17
)

func (c *Client) GetUser(ctx context.Context, userIDOrName string) (rawdata.Document, error) {
	if err := requireID("user id or username", userIDOrName); err != nil {
		return nil, err
	}
	return c.getDocument(ctx, "/user/"+pathEscape(userIDOrName))
}

func (c *Client) GetUserLeagues(ctx context.Context, userID, sport string, season int) ([]rawdata.Document, error) {
	path, err := userSeasonPath(userID, "leagues", sport, season)
	if err != nil {
		return nil, err
	}
	return c.getDocuments(ctx, path)
}

func (c *Client) GetUserDrafts(ctx context.Context, userID, sport string, season int) ([]rawdata.Document, error) {
	path, err := userSeasonPath(userID, "drafts", sport, season)
	if err != nil {
		return nil, err
	}
	return c.getDocuments(ctx, path)
}

func (c *Client) GetLeague(ctx context.Context, leagueID string) (rawdata.Document, error) {
	if err := requireID("league id", leagueID); err != nil {
		return nil, err
	}
	return c.getDocument(ctx, "/league/"+pathEscape(leagueID))
}

func (c *Client) GetLeagueRosters(ctx context.Context, leagueID string) ([]rawdata.Document, error) {
	return c.leagueList(ctx, leagueID, "rosters")
}

func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) ([]rawdata.Document, error) {
	return c.leagueList(ctx, leagueID, "users")
}

// GetMatchups fetches one scoring week; weeks outside 1..17 are rejected before any request.
func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) ([]rawdata.Document, error) {
	if err := requireID("league id", leagueID); err != nil {
		return nil, err
	}
	if week < minMatchupWeek || week > maxMatchupWeek {
		return nil, invalidInput("week must be between %d and %d, got %d", minMatchupWeek, maxMatchupWeek, week)
	}
	return c.getDocuments(ctx, fmt.Sprintf("/league/%s/matchups/%d", pathEscape(leagueID), week))
}

// GetPlayoffBracket accepts "winners" or "losers" in any letter case.
func (c *Client) GetPlayoffBracket(ctx context.Context, leagueID, name string) ([]rawdata.Document, error) {
	if err := requireID("league id", leagueID); err != nil {
		return nil, err
	}
	normalized, ok := bracket.Normalize(name)
	if !ok {
		return nil, invalidInput("bracket must be %q or %q, got %q", bracket.Winners, bracket.Losers, name)
	}
	return c.getDocuments(ctx, "/league/"+pathEscape(leagueID)+"/"+normalized+"_bracket")
}

func (c *Client) GetTransactions(ctx context.Context, leagueID string, week int) ([]rawdata.Document, error) {
	if err := requireID("league id", leagueID); err != nil {
		return nil, err
	}
	if week < 1 {
		return nil, invalidInput("week must be positive, got %d", week)
	}
	return c.getDocuments(ctx, fmt.Sprintf("/league/%s/transactions/%d", pathEscape(leagueID), week))
}

func (c *Client) GetTradedPicks(ctx context.Context, leagueID string) ([]rawdata.Document, error) {
	return c.leagueList(ctx, leagueID, "traded_picks")
}

func (c *Client) GetLeagueDrafts(ctx context.Context, leagueID string) ([]rawdata.Document, error) {
	return c.leagueList(ctx, leagueID, "drafts")
}

func (c *Client) GetDraft(ctx context.Context, draftID string) (rawdata.Document, error) {
	if err := requireID("draft id", draftID); err != nil {
		return nil, err
	}
	return c.getDocument(ctx, "/draft/"+pathEscape(draftID))
}

func (c *Client) GetDraftPicks(ctx context.Context, draftID string) ([]rawdata.Document, error) {
	if err := requireID("draft id", draftID); err != nil {
		return nil, err
	}
	return c.getDocuments(ctx, "/draft/"+pathEscape(draftID)+"/picks")
}

func (c *Client) GetDraftTradedPicks(ctx context.Context, draftID string) ([]rawdata.Document, error) {
	if err := requireID("draft id", draftID); err != nil {
		return nil, err
	}
	return c.getDocuments(ctx, "/draft/"+pathEscape(draftID)+"/traded_picks")
}

func (c *Client) GetNFLState(ctx context.Context) (rawdata.Document, error) {
	return c.getDocument(ctx, "/state/nfl")
}

// GetPlayers downloads the full NFL player directory (several megabytes).
// Prefer PlayersCache.Load.
func (c *Client) GetPlayers(ctx context.Context) (rawdata.Document, error) {
	return c.getDocument(ctx, "/players/nfl")
}

func (c *Client) leagueList(ctx context.Context, leagueID, resource string) ([]rawdata.Document, error) {
	if err := requireID("league id", leagueID); err != nil {
		return nil, err
	}
	return c.getDocuments(ctx, "/league/"+pathEscape(leagueID)+"/"+resource)
}

func (c *Client) getDocument(ctx context.Context, path string) (rawdata.Document, error) {
	var out rawdata.Document
	if _, err := c.doJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getDocuments(ctx context.Context, path string) ([]rawdata.Document, error) {
	var out []rawdata.Document
	if _, err := c.doJSON(ctx, path, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func userSeasonPath(userID, resource, sport string, season int) (string, error) {
	if err := requireID("user id", userID); err != nil {
		return "", err
	}
	if strings.TrimSpace(sport) == "" {
		return "", invalidInput("sport is required")
	}
	if season <= 0 {
		return "", invalidInput("season must be positive, got %d", season)
	}
	return fmt.Sprintf("/user/%s/%s/%s/%d", pathEscape(userID), resource, pathEscape(strings.ToLower(sport)), season), nil
}
