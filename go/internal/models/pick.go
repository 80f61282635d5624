package models

// Pick is a single recorded selection in a draft. Picks are immutable once
// recorded; the sync layer re-delivers the full list and derived state is
// recomputed from scratch, so out-of-order or duplicate delivery is harmless.
type Pick struct {
	PickNo    int    `json:"pick_no"`
	Round     int    `json:"round,omitempty"`
	DraftSlot int    `json:"draft_slot,omitempty"` // 0 when unknown
	PickedBy  string `json:"picked_by,omitempty"`  // platform user id, "" when unknown
	RosterID  *int   `json:"roster_id,omitempty"`

	PlayerID     string   `json:"player_id,omitempty"`
	FirstName    string   `json:"first_name,omitempty"`
	LastName     string   `json:"last_name,omitempty"`
	Position     Position `json:"position,omitempty"`
	TeamAbbr     string   `json:"team_abbr,omitempty"`
	ByeWeek      int      `json:"bye_week,omitempty"` // 0 when unknown
	InjuryStatus string   `json:"injury_status,omitempty"`
}

// PlayerName returns the pick's player name as recorded by the platform.
func (p Pick) PlayerName() string {
	switch {
	case p.FirstName == "":
		return p.LastName
	case p.LastName == "":
		return p.FirstName
	default:
		return p.FirstName + " " + p.LastName
	}
}
