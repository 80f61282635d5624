package models

// Strategy is a draft-strategy toggle set by the viewer. Strategies only
// adjust tip scoring; they never gate the pipeline itself.
type Strategy string

const (
	StrategyBalanced Strategy = "balanced"
	StrategyHeroRB   Strategy = "hero_rb"
	StrategyZeroRB   Strategy = "zero_rb"
	StrategyEliteTE  Strategy = "elite_te"
	StrategyEarlyQB  Strategy = "qb_early_sf"
)

// StrategyLabels maps each strategy to its display label.
var StrategyLabels = map[Strategy]string{
	StrategyBalanced: "Balanced",
	StrategyHeroRB:   "Hero RB",
	StrategyZeroRB:   "Zero RB",
	StrategyEliteTE:  "Elite TE or Punt",
	StrategyEarlyQB:  "Early QB (Superflex)",
}

// DraftConfig is the league and draft configuration supplied by the setup
// collaborator. Every field may be missing; consumers fall back per the
// resolution chains in draftmath and rosterreq.
type DraftConfig struct {
	TeamsCount      int      `json:"teams,omitempty"`  // 0 when unknown
	Rounds          int      `json:"rounds,omitempty"` // 0 when unknown
	LeagueSize      int      `json:"league_size,omitempty"`
	RosterPositions []string `json:"roster_positions,omitempty"`
	ViewerUserID    string   `json:"viewer_user_id,omitempty"`
	ViewerSlot      int      `json:"viewer_slot,omitempty"` // explicit draft slot, 0 when unknown
}
