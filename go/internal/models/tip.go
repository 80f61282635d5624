package models

// TipType discriminates the advisory heuristic a tip came from.
type TipType string

const (
	TipOnTheClock TipType = "on_the_clock"
	TipPosNeed    TipType = "pos_need"
	TipTierCliff  TipType = "tier_cliff"
	TipRunWarning TipType = "run_warning"
	TipValue      TipType = "value"
	TipByeRisk    TipType = "bye_risk"
	TipStack      TipType = "stack"
	TipInjury     TipType = "injury"
	TipStrategy   TipType = "strategy"
)

// Severity is the coarse urgency a tip is rendered with.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarn     Severity = "warn"
	SeverityCritical Severity = "critical"
	SeveritySuccess  Severity = "success"
)

// TipFeatures carries the raw signal values a candidate tip was generated
// from. The prioritizer scores from these; generators never pre-bake scores.
type TipFeatures struct {
	Distance      int     `json:"distance,omitempty"`       // picks until the viewer's turn
	DistanceKnown bool    `json:"distance_known,omitempty"` // false when teams count is unknown
	NeedGap       float64 `json:"need_gap,omitempty"`       // required minus owned at Position
	TierLeft      int     `json:"tier_left,omitempty"`      // undrafted players left in the tier
	TierGap       float64 `json:"tier_gap,omitempty"`       // rank gap to the next tier
	RunCount      int     `json:"run_count,omitempty"`      // recent picks sharing Position
	RunWindow     int     `json:"run_window,omitempty"`
	ValueEdge     float64 `json:"value_edge,omitempty"` // market rank minus board rank
	ByePileup     int     `json:"bye_pileup,omitempty"` // core players sharing the bye week
	ByeWeek       int     `json:"bye_week,omitempty"`
	StackCount    int     `json:"stack_count,omitempty"` // viewer players on the same NFL team
	PlayerRank    float64 `json:"player_rank,omitempty"`
	InjuryStatus  string  `json:"injury_status,omitempty"`
}

// Tip is a single advisory. Tips are ephemeral: the full set is regenerated
// on every recomputation and only the cooldown index outlives a run.
type Tip struct {
	ID         string      `json:"id"` // stable hash of the discriminating fields
	Type       TipType     `json:"type"`
	Severity   Severity    `json:"severity"`
	Text       string      `json:"text"`
	Position   Position    `json:"pos,omitempty"`
	PlayerID   string      `json:"player_id,omitempty"`
	PlayerName string      `json:"player_name,omitempty"`
	Features   TipFeatures `json:"features"`
	Score      float64     `json:"score"` // assigned by the prioritizer
}
