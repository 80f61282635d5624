package models

import "time"

// MatchStatus records how a board row was joined against platform metadata.
type MatchStatus string

const (
	MatchUnenriched MatchStatus = ""
	MatchMatched    MatchStatus = "matched"
	MatchUnmatched  MatchStatus = "unmatched"
)

// BoardPlayer is one ranked catalog entry on the draft board. Rows come from
// a rankings CSV, get enriched with platform metadata, and are mutated in
// place only to record draft status as matching picks arrive.
type BoardPlayer struct {
	ID             int      `json:"id"`
	SleeperID      string   `json:"sleeper_id,omitempty"`
	Name           string   `json:"name"`
	NormalizedName string   `json:"nname"`
	Position       Position `json:"pos"`
	TeamAbbr       string   `json:"team,omitempty"`
	ByeWeek        int      `json:"bye,omitempty"`  // 0 when unknown
	Tier           int      `json:"tier,omitempty"` // 0 when unknown
	Rank           float64  `json:"rank"`           // board (expert consensus) rank
	MarketRank     float64  `json:"adp,omitempty"`  // ADP; 0 when unknown
	ECRvsADP       float64  `json:"ecr_vs_adp,omitempty"`
	SOS            string   `json:"sos,omitempty"`
	InjuryStatus   string   `json:"injury_status,omitempty"`
	Age            int      `json:"age,omitempty"`

	Drafted   bool     `json:"drafted"`
	DraftedBy OwnerKey `json:"drafted_by,omitempty"`
	PickNo    int      `json:"pick_no,omitempty"`

	MatchStatus MatchStatus `json:"match_status,omitempty"`
	EnrichedAt  time.Time   `json:"enriched_at,omitempty"`
}

// HasRank reports whether the board rank is usable in numeric comparisons.
func (b BoardPlayer) HasRank() bool { return b.Rank > 0 }

// HasMarketRank reports whether an ADP value is usable in numeric comparisons.
func (b BoardPlayer) HasMarketRank() bool { return b.MarketRank > 0 }
