package sleeper

import "encoding/json"

type User struct {
	UserID      string `json:"user_id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}

type League struct {
	LeagueID        string   `json:"league_id"`
	Name            string   `json:"name"`
	Status          string   `json:"status"`
	Season          string   `json:"season"`
	TotalRosters    int      `json:"total_rosters"`
	RosterPositions []string `json:"roster_positions"`
	DraftID         string   `json:"draft_id"`
}

type LeagueUser struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
	IsOwner     bool   `json:"is_owner"`
}

type DraftSettings struct {
	Teams  int `json:"teams"`
	Rounds int `json:"rounds"`
}

type DraftMetadata struct {
	Name        string `json:"name"`
	ScoringType string `json:"scoring_type"`
}

type Draft struct {
	DraftID    string         `json:"draft_id"`
	LeagueID   string         `json:"league_id"`
	Status     string         `json:"status"`
	Type       string         `json:"type"`
	Season     string         `json:"season"`
	StartTime  int64          `json:"start_time"` // unix millis, 0 when unscheduled
	Settings   DraftSettings  `json:"settings"`
	Metadata   DraftMetadata  `json:"metadata"`
	DraftOrder map[string]int `json:"draft_order"` // user id -> draft slot
}

type PickMetadata struct {
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Position     string `json:"position"`
	Team         string `json:"team"`
	InjuryStatus string `json:"injury_status"`
}

type DraftPick struct {
	PickNo    int          `json:"pick_no"`
	Round     int          `json:"round"`
	DraftSlot int          `json:"draft_slot"`
	PickedBy  string       `json:"picked_by"`
	RosterID  *int         `json:"roster_id"`
	PlayerID  string       `json:"player_id"`
	IsKeeper  bool         `json:"is_keeper"`
	Metadata  PickMetadata `json:"metadata"`
}

// PlayerMeta is one record of the full /players/nfl catalog, slimmed to the
// fields the enrichment merge consumes.
type PlayerMeta struct {
	PlayerID         string      `json:"player_id"`
	FullName         string      `json:"full_name"`
	FirstName        string      `json:"first_name"`
	LastName         string      `json:"last_name"`
	Team             string      `json:"team"`
	Position         string      `json:"position"`
	FantasyPositions []string    `json:"fantasy_positions"`
	ByeWeek          json.Number `json:"bye_week"`
	InjuryStatus     string      `json:"injury_status"`
	Age              int         `json:"age"`
}
