package tips

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// Board scan depths per generator. The board is rank-sorted, so a shallow
// prefix of the undrafted pool covers every player a tip could plausibly
// name.
const (
	valueScanDepth  = 20
	stackScanDepth  = 30
	injuryScanDepth = 15

	runWindow      = 6
	tierCliffGap   = 8.0
	valueEdgeFloor = 6.0
	byePileupFloor = 3
)

// Generate runs every tip generator over the context and returns the
// unranked candidate set. Each generator is pure and independent, so the
// whole set recomputes deterministically on every pick or board change.
func Generate(ctx Context) []models.Tip {
	var out []models.Tip
	out = append(out, onTheClockTips(ctx)...)
	out = append(out, posNeedTips(ctx)...)
	out = append(out, tierCliffTips(ctx)...)
	out = append(out, runWarningTips(ctx)...)
	out = append(out, valueTips(ctx)...)
	out = append(out, byeRiskTips(ctx)...)
	out = append(out, stackTips(ctx)...)
	out = append(out, injuryTips(ctx)...)
	out = append(out, strategyTips(ctx)...)
	return out
}

func onTheClockTips(ctx Context) []models.Tip {
	if !ctx.DistanceKnown || ctx.Distance > 3 {
		return nil
	}

	feat := models.TipFeatures{Distance: ctx.Distance, DistanceKnown: true}
	if ctx.Distance == 0 {
		return []models.Tip{{
			ID:       tipID("on_the_clock", "0"),
			Type:     models.TipOnTheClock,
			Severity: models.SeverityCritical,
			Text:     "You are on the clock.",
			Features: feat,
		}}
	}
	return []models.Tip{{
		ID:       tipID("on_the_clock", strconv.Itoa(ctx.Distance)),
		Type:     models.TipOnTheClock,
		Severity: models.SeverityWarn,
		Text:     fmt.Sprintf("%d picks until your turn.", ctx.Distance),
		Features: feat,
	}}
}

func posNeedTips(ctx Context) []models.Tip {
	if ctx.Viewer.IsUnknown() {
		return nil
	}

	var out []models.Tip
	for _, pos := range models.StarterPositions {
		gap := ctx.Requirements.Gap(pos, ctx.viewerCount(pos))
		if gap < 1 {
			continue
		}
		if pos == models.PositionQB && ctx.qbGateApplies() {
			continue
		}

		sev := models.SeverityInfo
		if gap >= 2 {
			sev = models.SeverityCritical
		}
		need := int(math.Ceil(gap))
		text := fmt.Sprintf("You still need %d starter at %s.", need, pos)
		if need > 1 {
			text = fmt.Sprintf("You still need %d starters at %s.", need, pos)
		}
		out = append(out, models.Tip{
			ID:       tipID("pos_need", string(pos), strconv.Itoa(need)),
			Type:     models.TipPosNeed,
			Severity: sev,
			Text:     text,
			Position: pos,
			Features: models.TipFeatures{NeedGap: gap},
		})
	}
	return out
}

func tierCliffTips(ctx Context) []models.Tip {
	var out []models.Tip
	for _, pos := range models.StarterPositions {
		// Undrafted players at this position, in rank order with a known tier.
		var pool []*models.BoardPlayer
		for i := range ctx.Board {
			p := &ctx.Board[i]
			if !p.Drafted && p.Position == pos && p.Tier > 0 && p.HasRank() {
				pool = append(pool, p)
			}
		}
		if len(pool) == 0 {
			continue
		}

		tier := pool[0].Tier
		var inTier []*models.BoardPlayer
		var next *models.BoardPlayer
		for _, p := range pool {
			if p.Tier == tier {
				inTier = append(inTier, p)
				continue
			}
			next = p
			break
		}
		if len(inTier) > 1 || next == nil {
			continue
		}

		last := inTier[len(inTier)-1]
		gap := next.Rank - last.Rank
		if gap < tierCliffGap {
			continue
		}
		out = append(out, models.Tip{
			ID:         tipID("tier_cliff", string(pos), last.NormalizedName),
			Type:       models.TipTierCliff,
			Severity:   models.SeverityWarn,
			Text:       fmt.Sprintf("%s is the last tier-%d %s before a drop of %d ranks.", last.Name, tier, pos, int(gap)),
			Position:   pos,
			PlayerID:   last.SleeperID,
			PlayerName: last.Name,
			Features: models.TipFeatures{
				TierLeft:   len(inTier),
				TierGap:    gap,
				PlayerRank: last.Rank,
			},
		})
	}
	return out
}

func runWarningTips(ctx Context) []models.Tip {
	if len(ctx.Picks) < runWindow {
		return nil
	}

	recent := make([]models.Pick, len(ctx.Picks))
	copy(recent, ctx.Picks)
	sort.Slice(recent, func(i, j int) bool { return recent[i].PickNo > recent[j].PickNo })
	recent = recent[:runWindow]

	counts := map[models.Position]int{}
	for _, p := range recent {
		pos := p.Position
		if ctx.Resolve != nil {
			if bp := ctx.Resolve(p); bp != nil && bp.Position != "" {
				pos = bp.Position
			}
		}
		if pos != "" {
			counts[pos]++
		}
	}

	threshold := int(math.Ceil(float64(runWindow) * 2.0 / 3.0))
	var out []models.Tip
	for _, pos := range models.StarterPositions {
		n := counts[pos]
		if n < threshold {
			continue
		}
		out = append(out, models.Tip{
			ID:       tipID("run_warning", string(pos), strconv.Itoa(n)),
			Type:     models.TipRunWarning,
			Severity: models.SeverityWarn,
			Text:     fmt.Sprintf("%s run underway: %d of the last %d picks.", pos, n, runWindow),
			Position: pos,
			Features: models.TipFeatures{RunCount: n, RunWindow: runWindow},
		})
	}
	return out
}

func valueTips(ctx Context) []models.Tip {
	var out []models.Tip
	seen := 0
	for i := range ctx.Board {
		p := &ctx.Board[i]
		if p.Drafted {
			continue
		}
		seen++
		if seen > valueScanDepth {
			break
		}
		if !p.HasRank() || !p.HasMarketRank() {
			continue
		}
		edge := p.MarketRank - p.Rank
		if edge < valueEdgeFloor {
			continue
		}
		out = append(out, models.Tip{
			ID:         tipID("value", p.NormalizedName),
			Type:       models.TipValue,
			Severity:   models.SeveritySuccess,
			Text:       fmt.Sprintf("%s (%s) is falling %d spots below market expectation.", p.Name, p.Position, int(edge)),
			Position:   p.Position,
			PlayerID:   p.SleeperID,
			PlayerName: p.Name,
			Features:   models.TipFeatures{ValueEdge: edge, PlayerRank: p.Rank},
		})
	}
	return out
}

func byeRiskTips(ctx Context) []models.Tip {
	st := ctx.viewerState()
	if st == nil {
		return nil
	}
	week, count := st.MaxByePileup()
	if count < byePileupFloor {
		return nil
	}
	return []models.Tip{{
		ID:       tipID("bye_risk", strconv.Itoa(week), strconv.Itoa(count)),
		Type:     models.TipByeRisk,
		Severity: models.SeverityWarn,
		Text:     fmt.Sprintf("%d of your core players share bye week %d.", count, week),
		Features: models.TipFeatures{ByePileup: count, ByeWeek: week},
	}}
}

func stackTips(ctx Context) []models.Tip {
	st := ctx.viewerState()
	if st == nil || len(st.NFLTeamCounts) == 0 {
		return nil
	}

	var out []models.Tip
	seen := 0
	for i := range ctx.Board {
		p := &ctx.Board[i]
		if p.Drafted {
			continue
		}
		seen++
		if seen > stackScanDepth {
			break
		}
		if p.Position != models.PositionWR && p.Position != models.PositionTE {
			continue
		}
		owned := st.NFLTeamCounts[p.TeamAbbr]
		if p.TeamAbbr == "" || owned == 0 {
			continue
		}
		out = append(out, models.Tip{
			ID:         tipID("stack", p.NormalizedName),
			Type:       models.TipStack,
			Severity:   models.SeverityInfo,
			Text:       fmt.Sprintf("%s stacks with your %s players.", p.Name, p.TeamAbbr),
			Position:   p.Position,
			PlayerID:   p.SleeperID,
			PlayerName: p.Name,
			Features:   models.TipFeatures{StackCount: owned, PlayerRank: p.Rank},
		})
	}
	return out
}

func injuryTips(ctx Context) []models.Tip {
	var out []models.Tip
	seen := 0
	for i := range ctx.Board {
		p := &ctx.Board[i]
		if p.Drafted {
			continue
		}
		seen++
		if seen > injuryScanDepth {
			break
		}
		if p.InjuryStatus == "" {
			continue
		}
		out = append(out, models.Tip{
			ID:         tipID("injury", p.NormalizedName),
			Type:       models.TipInjury,
			Severity:   models.SeverityInfo,
			Text:       fmt.Sprintf("%s carries a %s designation; discount or avoid.", p.Name, p.InjuryStatus),
			Position:   p.Position,
			PlayerID:   p.SleeperID,
			PlayerName: p.Name,
			Features:   models.TipFeatures{InjuryStatus: p.InjuryStatus, PlayerRank: p.Rank},
		})
	}
	return out
}

func strategyTips(ctx Context) []models.Tip {
	var active []models.Strategy
	for s, on := range ctx.Strategies {
		if on && s != models.StrategyBalanced {
			active = append(active, s)
		}
	}
	sort.Slice(active, func(i, j int) bool { return active[i] < active[j] })

	var out []models.Tip
	for _, s := range active {
		label := models.StrategyLabels[s]
		if label == "" {
			label = string(s)
		}
		out = append(out, models.Tip{
			ID:       tipID("strategy", string(s)),
			Type:     models.TipStrategy,
			Severity: models.SeverityInfo,
			Text:     label + " strategy active.",
		})
	}
	return out
}
