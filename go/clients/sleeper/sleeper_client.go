// Package sleeper is a read-only client for the public Sleeper fantasy API.
// Every endpoint is unauthenticated; the client performs no retries.
package sleeper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"

	"github.com/mpetrick/draftcaddy/go/clients"
)

type Client struct {
	*clients.BaseClient
}

func NewClient() *Client {
	return &Client{
		BaseClient: clients.NewBaseClient(BaseURL),
	}
}

func (c *Client) GetUser(ctx context.Context, usernameOrID string) (*User, error) {
	body, err := c.Get(ctx, fmt.Sprintf(UserEndpoint, url.PathEscape(usernameOrID)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user: %w", err)
	}
	if user.UserID == "" {
		return nil, fmt.Errorf("no user found for %q", usernameOrID)
	}
	return &user, nil
}

func (c *Client) GetUserDrafts(ctx context.Context, userID, season string) ([]Draft, error) {
	body, err := c.Get(ctx, fmt.Sprintf(UserDraftsEndpoint, url.PathEscape(userID), url.PathEscape(season)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user drafts: %w", err)
	}

	var drafts []Draft
	if err := json.Unmarshal(body, &drafts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user drafts: %w", err)
	}
	return drafts, nil
}

func (c *Client) GetUserLeagues(ctx context.Context, userID, season string) ([]League, error) {
	body, err := c.Get(ctx, fmt.Sprintf(UserLeaguesEndpoint, url.PathEscape(userID), url.PathEscape(season)))
	if err != nil {
		return nil, fmt.Errorf("failed to get user leagues: %w", err)
	}

	var leagues []League
	if err := json.Unmarshal(body, &leagues); err != nil {
		return nil, fmt.Errorf("failed to unmarshal user leagues: %w", err)
	}
	return leagues, nil
}

func (c *Client) GetLeague(ctx context.Context, leagueID string) (*League, error) {
	body, err := c.Get(ctx, fmt.Sprintf(LeagueEndpoint, url.PathEscape(leagueID)))
	if err != nil {
		return nil, fmt.Errorf("failed to get league: %w", err)
	}

	var league League
	if err := json.Unmarshal(body, &league); err != nil {
		return nil, fmt.Errorf("failed to unmarshal league: %w", err)
	}
	return &league, nil
}

func (c *Client) GetLeagueDrafts(ctx context.Context, leagueID string) ([]Draft, error) {
	if leagueID == "" {
		return nil, nil
	}
	body, err := c.Get(ctx, fmt.Sprintf(LeagueDraftsEndpoint, url.PathEscape(leagueID)))
	if err != nil {
		return nil, fmt.Errorf("failed to get league drafts: %w", err)
	}

	var drafts []Draft
	if err := json.Unmarshal(body, &drafts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal league drafts: %w", err)
	}
	return drafts, nil
}

func (c *Client) GetLeagueUsers(ctx context.Context, leagueID string) ([]LeagueUser, error) {
	body, err := c.Get(ctx, fmt.Sprintf(LeagueUsersEndpoint, url.PathEscape(leagueID)))
	if err != nil {
		return nil, fmt.Errorf("failed to get league users: %w", err)
	}

	var users []LeagueUser
	if err := json.Unmarshal(body, &users); err != nil {
		return nil, fmt.Errorf("failed to unmarshal league users: %w", err)
	}
	return users, nil
}

func (c *Client) GetDraft(ctx context.Context, draftID string) (*Draft, error) {
	body, err := c.Get(ctx, fmt.Sprintf(DraftEndpoint, url.PathEscape(draftID)))
	if err != nil {
		return nil, fmt.Errorf("failed to get draft: %w", err)
	}

	var draft Draft
	if err := json.Unmarshal(body, &draft); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft: %w", err)
	}
	return &draft, nil
}

func (c *Client) GetDraftPicks(ctx context.Context, draftID string) ([]DraftPick, error) {
	body, err := c.Get(ctx, fmt.Sprintf(DraftPicksEndpoint, url.PathEscape(draftID)))
	if err != nil {
		return nil, fmt.Errorf("failed to get draft picks: %w", err)
	}

	var picks []DraftPick
	if err := json.Unmarshal(body, &picks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal draft picks: %w", err)
	}
	return picks, nil
}

// GetPlayers fetches the full NFL player catalog keyed by player id. The
// payload is large; callers are expected to cache it.
func (c *Client) GetPlayers(ctx context.Context) (map[string]PlayerMeta, error) {
	body, err := c.Get(ctx, PlayersEndpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to get players: %w", err)
	}

	var players map[string]PlayerMeta
	if err := json.Unmarshal(body, &players); err != nil {
		return nil, fmt.Errorf("failed to unmarshal players: %w", err)
	}
	return players, nil
}

// MergeDraftsUnique merges draft lists keeping the first occurrence per
// draft id, then orders newest first with the id as a stable fallback.
func MergeDraftsUnique(lists ...[]Draft) []Draft {
	seen := map[string]bool{}
	var merged []Draft
	for _, list := range lists {
		for _, d := range list {
			if d.DraftID == "" || seen[d.DraftID] {
				continue
			}
			seen[d.DraftID] = true
			merged = append(merged, d)
		}
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].StartTime != merged[j].StartTime {
			return merged[i].StartTime > merged[j].StartTime
		}
		return merged[i].DraftID > merged[j].DraftID
	})
	return merged
}
