package sleeper

const (
	// Base URL
	BaseURL = "https://api.sleeper.app/v1"

	// API Endpoints
	UserEndpoint         = "/user/%s"
	UserDraftsEndpoint   = "/user/%s/drafts/nfl/%s"
	UserLeaguesEndpoint  = "/user/%s/leagues/nfl/%s"
	LeagueEndpoint       = "/league/%s"
	LeagueDraftsEndpoint = "/league/%s/drafts"
	LeagueUsersEndpoint  = "/league/%s/users"
	DraftEndpoint        = "/draft/%s"
	DraftPicksEndpoint   = "/draft/%s/picks"
	PlayersEndpoint      = "/players/nfl"
)
