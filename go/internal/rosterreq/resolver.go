// Package rosterreq resolves a league's roster-slot list into required
// starter counts per position. Requirements may be fractional where a flex
// slot cannot be attributed to a single position; consumers treat fractional
// need as partial pressure and round only at display time.
package rosterreq

import (
	"strings"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// Requirements maps each starter position to its required count. Values can
// be fractional because of flex attribution.
type Requirements map[models.Position]float64

// FlexPolicy controls how a generic flex slot (RB/WR/TE) is split across
// positions. The default split is a policy heuristic, not a law; it is kept
// overridable from configuration.
type FlexPolicy struct {
	RB float64 `yaml:"rb"`
	WR float64 `yaml:"wr"`
	TE float64 `yaml:"te"`
}

// DefaultFlexPolicy is the stock flex attribution.
var DefaultFlexPolicy = FlexPolicy{RB: 0.5, WR: 0.5, TE: 0.25}

// defaultShape is the fallback when the slot list is empty or unparseable.
// The pipeline never fails on missing league config.
var defaultShape = Requirements{
	models.PositionQB: 1,
	models.PositionRB: 2,
	models.PositionWR: 2,
	models.PositionTE: 1,
}

// Resolve resolves a roster-slot list with the default flex policy.
func Resolve(slots []string) Requirements {
	return ResolveWithPolicy(slots, DefaultFlexPolicy)
}

// ResolveWithPolicy turns an ordered roster-slot list (e.g. QB, RB, RB, WR,
// WR, TE, FLEX, SUPER_FLEX, DEF, K, BN...) into required starter counts.
// Direct slots count 1:1, generic flex slots split per the policy, a
// superflex adds a full QB, and bench/IR/taxi slots are ignored.
func ResolveWithPolicy(slots []string, policy FlexPolicy) Requirements {
	req := Requirements{}
	parsed := false

	for _, raw := range slots {
		label := strings.ToUpper(strings.TrimSpace(raw))
		switch label {
		case "", "BN", "BENCH", "IR", "TAXI":
			continue
		case "FLEX", "WRRB_FLEX", "WRT_FLEX", "REC_FLEX":
			req[models.PositionRB] += policy.RB
			req[models.PositionWR] += policy.WR
			req[models.PositionTE] += policy.TE
			parsed = true
			continue
		case "SUPER_FLEX", "SUPERFLEX", "QB_FLEX":
			req[models.PositionQB]++
			parsed = true
			continue
		}
		if pos := models.NormalizePosition(label); pos != "" {
			req[pos]++
			parsed = true
		}
	}

	if !parsed {
		fallback := Requirements{}
		for pos, n := range defaultShape {
			fallback[pos] = n
		}
		return fallback
	}
	return req
}

// Gap returns required minus owned for a position, floored at zero.
func (r Requirements) Gap(pos models.Position, owned int) float64 {
	gap := r[pos] - float64(owned)
	if gap < 0 {
		return 0
	}
	return gap
}

// IsSingleQB reports whether the league starts at most one QB. Superflex
// leagues resolve to QB requirements of 1.5 or more and are excluded from
// the early-QB suppression rules.
func (r Requirements) IsSingleQB() bool {
	return r[models.PositionQB] < 1.5
}

// Total sums all resolved requirements, flex contributions included.
func (r Requirements) Total() float64 {
	var sum float64
	for _, n := range r {
		sum += n
	}
	return sum
}
