package tips

import (
	"sort"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// qbGateScore is the hard suppression score for gated QB-need tips. No
// combination of positive signals can lift a tip back over it.
const qbGateScore = -999

var severityWeights = map[models.Severity]float64{
	models.SeverityCritical: 25,
	models.SeverityWarn:     15,
	models.SeveritySuccess:  12,
	models.SeverityInfo:     8,
}

// Fixed per-type weights. Strategy tips carry no weight because they are
// filtered out of the ranked output entirely.
var typeWeights = map[models.TipType]float64{
	models.TipOnTheClock: 30,
	models.TipPosNeed:    20,
	models.TipValue:      18,
	models.TipTierCliff:  16,
	models.TipRunWarning: 15,
	models.TipStack:      12,
	models.TipByeRisk:    -6,
	models.TipInjury:     -12,
}

// Config tunes the prioritizer. Zero values fall back to the defaults.
type Config struct {
	MaxTips         int
	PerTypeCap      int
	Cooldown        time.Duration
	CooldownPenalty float64
}

func (c Config) withDefaults() Config {
	if c.MaxTips <= 0 {
		c.MaxTips = 6
	}
	if c.PerTypeCap <= 0 {
		c.PerTypeCap = 2
	}
	if c.Cooldown <= 0 {
		c.Cooldown = 10 * time.Minute
	}
	if c.CooldownPenalty <= 0 {
		c.CooldownPenalty = 12
	}
	return c
}

// Prioritizer scores, deduplicates, time-suppresses, and truncates
// candidate tips into the ranked list shown to the viewer.
type Prioritizer struct {
	cfg   Config
	store CooldownStore
	clock clockwork.Clock
}

// NewPrioritizer builds a prioritizer around an injected cooldown store and
// clock.
func NewPrioritizer(store CooldownStore, clock clockwork.Clock, cfg Config) *Prioritizer {
	return &Prioritizer{cfg: cfg.withDefaults(), store: store, clock: clock}
}

// Rank turns the candidate set into the final ranked list and records the
// surfaced ids in the cooldown index. Output never contains two tips with
// the same id, at most PerTypeCap tips per type (pos_need excepted), and at
// most MaxTips entries.
func (p *Prioritizer) Rank(candidates []models.Tip, ctx Context) []models.Tip {
	now := p.clock.Now()

	best := map[string]models.Tip{}
	var order []string
	for _, tip := range candidates {
		if tip.Type == models.TipStrategy {
			continue
		}
		tip.Score = p.score(tip, ctx, now)

		prev, ok := best[tip.ID]
		if !ok {
			order = append(order, tip.ID)
			best[tip.ID] = tip
			continue
		}
		if tip.Score > prev.Score {
			best[tip.ID] = tip
		}
	}

	ranked := make([]models.Tip, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, best[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})

	perType := map[models.TipType]int{}
	out := make([]models.Tip, 0, p.cfg.MaxTips)
	for _, tip := range ranked {
		if len(out) == p.cfg.MaxTips {
			break
		}
		if tip.Type != models.TipPosNeed && perType[tip.Type] == p.cfg.PerTypeCap {
			continue
		}
		perType[tip.Type]++
		out = append(out, tip)
	}

	for _, tip := range out {
		p.store.MarkShown(tip.ID, now)
	}
	return out
}

func (p *Prioritizer) score(tip models.Tip, ctx Context, now time.Time) float64 {
	// The QB gate must hold against any positive signal.
	if tip.Type == models.TipPosNeed && tip.Position == models.PositionQB && ctx.qbGateApplies() {
		return qbGateScore
	}

	score := severityWeights[tip.Severity]
	score += typeWeights[tip.Type]
	score += needGapWeight(tip.Features.NeedGap)
	score += tierPressureWeight(tip.Features)
	score += valueEdgeWeight(tip.Features.ValueEdge)
	score += goneRiskWeight(tip.Features.PlayerRank, ctx)
	score += strategyAdjustment(tip, ctx)

	if last, ok := p.store.LastShown(tip.ID); ok && now.Sub(last) < p.cfg.Cooldown {
		score -= p.cfg.CooldownPenalty
	}
	return score
}

func needGapWeight(gap float64) float64 {
	switch {
	case gap >= 2:
		return 10
	case gap >= 1:
		return 6
	default:
		return 0
	}
}

func tierPressureWeight(f models.TipFeatures) float64 {
	if f.TierLeft > 0 && f.TierLeft <= 1 && f.TierGap >= tierCliffGap {
		return 8
	}
	return 0
}

func valueEdgeWeight(edge float64) float64 {
	switch {
	case edge >= 12:
		return 10
	case edge >= 8:
		return 7
	case edge >= 4:
		return 4
	case edge <= -10:
		return -6
	default:
		return 0
	}
}

// goneRiskWeight boosts tips about players likely gone before the viewer's
// next turn. The window runs one round past the last observed pick, which
// is ctx.CurrentPick-1 since CurrentPick is the pick now on the clock.
func goneRiskWeight(rank float64, ctx Context) float64 {
	if rank <= 0 || ctx.TeamsCount <= 0 || ctx.CurrentPick <= 1 {
		return 0
	}
	windowEnd := float64(ctx.CurrentPick - 1 + ctx.TeamsCount)
	switch {
	case rank <= windowEnd:
		return 7
	case rank <= windowEnd+float64(ctx.TeamsCount):
		return 3
	default:
		return 0
	}
}

// strategyAdjustment nudges scores toward the viewer's declared plan.
// Strategies tilt advice, they never override the gate or the caps.
func strategyAdjustment(tip models.Tip, ctx Context) float64 {
	var adj float64
	if ctx.Strategies[models.StrategyZeroRB] && tip.Position == models.PositionRB &&
		tip.Type == models.TipPosNeed && ctx.Round > 0 && ctx.Round <= 5 {
		adj -= 8
	}
	if ctx.Strategies[models.StrategyZeroRB] && tip.Type == models.TipValue &&
		(tip.Position == models.PositionWR || tip.Position == models.PositionTE) {
		adj += 3
	}
	if ctx.Strategies[models.StrategyHeroRB] && tip.Position == models.PositionRB &&
		(tip.Type == models.TipValue || tip.Type == models.TipPosNeed) && ctx.Round > 0 && ctx.Round <= 2 {
		adj += 5
	}
	if ctx.Strategies[models.StrategyEliteTE] && tip.Position == models.PositionTE &&
		(tip.Type == models.TipTierCliff || tip.Type == models.TipValue) &&
		ctx.viewerCount(models.PositionTE) == 0 {
		adj += 5
	}
	if ctx.Strategies[models.StrategyEarlyQB] && tip.Position == models.PositionQB &&
		tip.Type == models.TipPosNeed {
		adj += 5
	}
	return adj
}
