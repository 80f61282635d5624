// Package draftmath implements snake-draft pick arithmetic: pick numbers,
// draft slots, distance to a team's next turn, and draft completion. All
// functions are pure and degrade to "unknown" instead of failing when the
// teams count cannot be resolved.
package draftmath

import (
	"fmt"

	"github.com/mpetrick/draftcaddy/go/internal/identity"
	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// CurrentPickNumber returns the highest pick number seen, or 0 before any
// pick has been recorded.
func CurrentPickNumber(picks []models.Pick) int {
	max := 0
	for _, p := range picks {
		if p.PickNo > max {
			max = p.PickNo
		}
	}
	return max
}

// TeamsCount resolves the number of teams in the draft. Fallback priority:
// explicit draft config, distinct draft slots observed in picks, pick count
// within the earliest observed round, league size. Returns 0 when every
// fallback fails; callers must disable distance-dependent heuristics then.
func TeamsCount(cfg models.DraftConfig, picks []models.Pick) int {
	if cfg.TeamsCount > 0 {
		return cfg.TeamsCount
	}

	if len(picks) > 0 {
		slots := map[int]bool{}
		for _, p := range picks {
			if p.DraftSlot > 0 {
				slots[p.DraftSlot] = true
			}
		}
		if len(slots) > 0 {
			return len(slots)
		}

		minRound, inFirst := 0, 0
		for _, p := range picks {
			if p.Round <= 0 {
				continue
			}
			if minRound == 0 || p.Round < minRound {
				minRound = p.Round
				inFirst = 1
			} else if p.Round == minRound {
				inFirst++
			}
		}
		if inFirst > 0 {
			return inFirst
		}
	}

	if cfg.LeagueSize > 0 {
		return cfg.LeagueSize
	}
	return 0
}

// RoundOf returns the 1-based round a pick number falls in.
func RoundOf(pickNo, teams int) int {
	if pickNo <= 0 || teams <= 0 {
		return 0
	}
	return (pickNo-1)/teams + 1
}

// PickInRound returns the 1-based position of a pick within its round.
func PickInRound(pickNo, teams int) int {
	if pickNo <= 0 || teams <= 0 {
		return 0
	}
	return (pickNo-1)%teams + 1
}

// SlotForPick returns the draft slot that owns a pick number under snake
// order: odd rounds run 1..teams, even rounds reverse.
func SlotForPick(pickNo, teams int) int {
	round := RoundOf(pickNo, teams)
	inRound := PickInRound(pickNo, teams)
	if round == 0 {
		return 0
	}
	if round%2 == 1 {
		return inRound
	}
	return teams - inRound + 1
}

// DraftSlot resolves a team's draft slot. An explicit slot wins; otherwise
// the slot is inferred from the earliest pick belonging to the owner via
// snake parity. Returns 0 when the owner has no picks yet and no slot is
// known; callers treat 0 as "unknown distance", never as zero distance.
func DraftSlot(picks []models.Pick, owner models.OwnerKey, explicitSlot, teams int) int {
	if explicitSlot > 0 {
		return explicitSlot
	}
	if owner.IsUnknown() {
		return 0
	}

	earliest := 0
	earliestSlot := 0
	for _, p := range picks {
		if p.PickNo <= 0 || identity.ResolveOwnerKey(p, teams) != owner {
			continue
		}
		if earliest == 0 || p.PickNo < earliest {
			earliest = p.PickNo
			earliestSlot = p.DraftSlot
		}
	}
	if earliest == 0 {
		return 0
	}
	if earliestSlot > 0 {
		return earliestSlot
	}
	if teams <= 0 {
		return 0
	}
	return SlotForPick(earliest, teams)
}

// PicksUntilNextTurn returns how many picks remain before the owner is on
// the clock. Zero means on the clock right now; the owner's own upcoming
// pick is never counted. ok is false when the teams count or the owner's
// slot cannot be resolved.
func PicksUntilNextTurn(picks []models.Pick, owner models.OwnerKey, explicitSlot, teams int) (int, bool) {
	if teams <= 0 {
		return 0, false
	}
	slot := DraftSlot(picks, owner, explicitSlot, teams)
	if slot <= 0 || slot > teams {
		return 0, false
	}

	next := CurrentPickNumber(picks) + 1
	// The owner appears exactly once per round, so scanning two rounds of
	// pick numbers always finds the next turn.
	for n := next; n < next+2*teams; n++ {
		if SlotForPick(n, teams) == slot {
			return n - next, true
		}
	}
	return 0, false
}

// FormatRoundPick renders a pick number as "round.pickInRound", or "" when
// the teams count is unknown.
func FormatRoundPick(pickNo, teams int) string {
	if pickNo <= 0 || teams <= 0 {
		return ""
	}
	return fmt.Sprintf("%d.%d", RoundOf(pickNo, teams), PickInRound(pickNo, teams))
}

// EstimateRounds estimates the round count from the highest observed pick
// number. Returns 0 when nothing can be estimated.
func EstimateRounds(picks []models.Pick, teams int) int {
	if teams <= 0 {
		return 0
	}
	max := CurrentPickNumber(picks)
	if max == 0 {
		return 0
	}
	return (max + teams - 1) / teams
}

// IsDraftComplete reports whether the draft has produced every expected
// pick. When rounds is unknown it is estimated from the observed picks.
// Completion counts unique pick numbers so re-delivered picks are harmless.
func IsDraftComplete(picks []models.Pick, teams, rounds int) bool {
	if rounds <= 0 {
		rounds = EstimateRounds(picks, teams)
	}
	if teams <= 0 || rounds <= 0 {
		return false
	}

	unique := map[int]bool{}
	for _, p := range picks {
		if p.PickNo > 0 {
			unique[p.PickNo] = true
		}
	}
	return len(unique) >= teams*rounds
}
