// Package grade computes the post-draft composite quality score per team.
// It runs once over the complete pick history, independently of the live
// tip pipeline, and grades every team relative to the field.
package grade

import (
	"math"
	"sort"

	"github.com/mpetrick/draftcaddy/go/internal/models"
	"github.com/mpetrick/draftcaddy/go/internal/rosterreq"
	"github.com/mpetrick/draftcaddy/go/internal/teamstate"
)

const (
	expertWeight = 0.85
	marketWeight = 0.15
	deltaCap     = 20.0

	earlyPickCutoff = 100
	midPickCutoff   = 160
	midPickDamp     = 0.75
	latePickDamp    = 0.5
	kickerDefDamp   = 0.25

	diversityPickWindow = 8
	diversityCap        = 4

	byePenaltyPerPlayer = 12
	byePileupAllowance  = 2

	valueWeight      = 0.35
	positionalWeight = 0.25
	balanceWeight    = 0.15
	diversityWeight  = 0.15
	byeWeight        = 0.10
)

// Compute grades every resolvable team from the full pick history and
// returns the score table ranked best first. Ties on total break by the
// value sub-score, then by owner key, so the ordering never depends on map
// iteration or pick arrival order.
func Compute(picks []models.Pick, teams int, req rosterreq.Requirements, resolve teamstate.Resolver) []models.TeamScore {
	states := teamstate.Aggregate(picks, teams, resolve)
	if len(states) == 0 {
		return nil
	}

	owners := make([]models.OwnerKey, 0, len(states))
	for owner := range states {
		owners = append(owners, owner)
	}
	sort.Slice(owners, func(i, j int) bool { return owners[i] < owners[j] })

	raw := make(map[models.OwnerKey]float64, len(owners))
	for _, owner := range owners {
		raw[owner] = rawValue(states[owner], resolve)
	}
	normalized := normalizeValues(owners, raw)

	scores := make([]models.TeamScore, 0, len(owners))
	for _, owner := range owners {
		st := states[owner]
		s := models.TeamScore{
			Owner:      owner,
			Value:      normalized[owner],
			Positional: positionalScore(st, req),
			Balance:    balanceScore(st),
			Diversity:  diversityScore(st, resolve),
			Bye:        byeScore(st),
		}
		s.Total = int(math.Round(
			valueWeight*float64(s.Value) +
				positionalWeight*float64(s.Positional) +
				balanceWeight*float64(s.Balance) +
				diversityWeight*float64(s.Diversity) +
				byeWeight*float64(s.Bye)))
		scores = append(scores, s)
	}

	sort.SliceStable(scores, func(i, j int) bool {
		if scores[i].Total != scores[j].Total {
			return scores[i].Total > scores[j].Total
		}
		if scores[i].Value != scores[j].Value {
			return scores[i].Value > scores[j].Value
		}
		return scores[i].Owner < scores[j].Owner
	})
	for i := range scores {
		scores[i].Rank = i + 1
	}
	return scores
}

// rawValue accumulates draft-capital surplus for one team: how far below
// their pick number the team's selections ranked, blended across expert and
// market views. Each delta is capped so one outlier pick cannot dominate,
// then damped for late rounds and for K/DEF picks.
func rawValue(st *teamstate.TeamState, resolve teamstate.Resolver) float64 {
	var total float64
	for _, pick := range st.Picks {
		if resolve == nil || pick.PickNo <= 0 {
			continue
		}
		bp := resolve(pick)
		if bp == nil {
			continue
		}

		var delta float64
		var weighted bool
		if bp.HasRank() {
			delta += expertWeight * capDelta(float64(pick.PickNo)-bp.Rank)
			weighted = true
		}
		if bp.HasMarketRank() {
			delta += marketWeight * capDelta(float64(pick.PickNo)-bp.MarketRank)
			weighted = true
		}
		if !weighted {
			continue
		}

		damp := 1.0
		switch {
		case pick.PickNo > midPickCutoff:
			damp = latePickDamp
		case pick.PickNo > earlyPickCutoff:
			damp = midPickDamp
		}
		pos := bp.Position
		if pos == models.PositionK || pos == models.PositionDEF {
			damp *= kickerDefDamp
		}
		total += delta * damp
	}
	return total
}

func capDelta(d float64) float64 {
	if d > deltaCap {
		return deltaCap
	}
	if d < -deltaCap {
		return -deltaCap
	}
	return d
}

// normalizeValues projects raw per-team value onto 0-100 relative to the
// field. A single team, or a field with identical raw values, lands on 50.
func normalizeValues(owners []models.OwnerKey, raw map[models.OwnerKey]float64) map[models.OwnerKey]int {
	min, max := math.Inf(1), math.Inf(-1)
	for _, owner := range owners {
		v := raw[owner]
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	out := make(map[models.OwnerKey]int, len(owners))
	spread := max - min
	for _, owner := range owners {
		if spread <= 0 {
			out[owner] = 50
			continue
		}
		out[owner] = int(math.Round((raw[owner] - min) / spread * 100))
	}
	return out
}

// positionalScore is the fraction of required core starters actually filled,
// with each position capped at its own requirement.
func positionalScore(st *teamstate.TeamState, req rosterreq.Requirements) int {
	var need, filled float64
	for _, pos := range models.CorePositions {
		r := req[pos]
		if r <= 0 {
			continue
		}
		need += r
		filled += math.Min(float64(st.PositionCounts[pos]), r)
	}
	if need == 0 {
		return 50
	}
	return clampScore(math.Round(filled / need * 100))
}

// balanceScore penalizes a lopsided RB:WR split. Teams with fewer than two
// combined RB/WR picks have no signal yet and sit at the neutral 50.
func balanceScore(st *teamstate.TeamState) int {
	rb := float64(st.PositionCounts[models.PositionRB])
	wr := float64(st.PositionCounts[models.PositionWR])
	if rb+wr < 2 {
		return 50
	}
	skew := math.Abs(rb-wr) / (rb + wr)
	return clampScore(math.Round(100 - skew*100))
}

// diversityScore rewards spreading the first picks across positions. Four
// distinct positions inside the first eight picks is a full score.
func diversityScore(st *teamstate.TeamState, resolve teamstate.Resolver) int {
	window := st.Picks
	if len(window) > diversityPickWindow {
		window = window[:diversityPickWindow]
	}
	distinct := map[models.Position]bool{}
	for _, pick := range window {
		pos := pick.Position
		if resolve != nil {
			if bp := resolve(pick); bp != nil && bp.Position != "" {
				pos = bp.Position
			}
		}
		if pos != "" {
			distinct[pos] = true
		}
	}
	n := len(distinct)
	if n > diversityCap {
		n = diversityCap
	}
	return clampScore(math.Round(float64(n) / diversityCap * 100))
}

// byeScore docks points for the worst bye-week pileup only: each core
// player beyond two sharing that week costs points. A second pileup week
// does not stack.
func byeScore(st *teamstate.TeamState) int {
	_, worst := st.MaxByePileup()
	if worst <= byePileupAllowance {
		return 100
	}
	return clampScore(float64(100 - byePenaltyPerPlayer*(worst-byePileupAllowance)))
}

func clampScore(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(v)
}
