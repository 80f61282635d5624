package sleeper

import (
	"context"
	"fmt"
	"strings"
)

// PreferredLeague picks the league a live session most likely targets: the
// first one currently drafting or in season, else the first listed.
func PreferredLeague(leagues []League) *League {
	for i := range leagues {
		if leagues[i].Status == "drafting" || leagues[i].Status == "in_season" {
			return &leagues[i]
		}
	}
	if len(leagues) > 0 {
		return &leagues[0]
	}
	return nil
}

// FindLeagueUser matches a league member by display name,
// case-insensitively. Returns nil when no member matches.
func FindLeagueUser(users []LeagueUser, name string) *LeagueUser {
	if name == "" {
		return nil
	}
	for i := range users {
		if strings.EqualFold(users[i].DisplayName, name) {
			return &users[i]
		}
	}
	return nil
}

// DiscoverDraft finds the newest draft visible to a user in a season,
// searching the user's own drafts and the drafts of their preferred league.
func (c *Client) DiscoverDraft(ctx context.Context, userID, season string) (*Draft, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required for draft discovery")
	}

	userDrafts, err := c.GetUserDrafts(ctx, userID, season)
	if err != nil {
		return nil, err
	}
	leagues, err := c.GetUserLeagues(ctx, userID, season)
	if err != nil {
		return nil, err
	}

	var leagueDrafts []Draft
	if league := PreferredLeague(leagues); league != nil {
		leagueDrafts, err = c.GetLeagueDrafts(ctx, league.LeagueID)
		if err != nil {
			return nil, err
		}
	}

	merged := MergeDraftsUnique(userDrafts, leagueDrafts)
	if len(merged) == 0 {
		return nil, fmt.Errorf("no drafts found for user %s in season %s", userID, season)
	}
	return &merged[0], nil
}
