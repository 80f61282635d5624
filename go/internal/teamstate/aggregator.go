// Package teamstate folds the pick list into derived per-team state. The
// fold is a full pass on every invocation; draft sizes are small enough that
// incremental state is not worth the consistency risk after out-of-order or
// corrected pick delivery.
package teamstate

import (
	"sort"

	"github.com/mpetrick/draftcaddy/go/internal/identity"
	"github.com/mpetrick/draftcaddy/go/internal/models"
	"github.com/mpetrick/draftcaddy/go/internal/rosterreq"
)

// Resolver maps a pick onto its board entry, or nil when no entry matches.
// Board data wins over pick metadata because the board carries enrichment
// the live feed lacks (tier, ranks, bye weeks).
type Resolver func(models.Pick) *models.BoardPlayer

// TeamState is the derived state for one team. It is recomputed fresh from
// the full pick list and never mutated across runs.
type TeamState struct {
	Owner          models.OwnerKey
	Picks          []models.Pick // sorted by pick number
	PositionCounts map[models.Position]int
	ByeCounts      map[int]int // bye week -> core players sharing it
	NFLTeamCounts  map[string]int
}

// Aggregate resolves every pick to its owner and accumulates per-team
// counts. Picks whose owner cannot be resolved at all are dropped rather
// than failing the computation. The result is independent of pick order.
func Aggregate(picks []models.Pick, teams int, resolve Resolver) map[models.OwnerKey]*TeamState {
	states := map[models.OwnerKey]*TeamState{}

	for _, p := range picks {
		owner := identity.ResolveOwnerKey(p, teams)
		if owner.IsUnknown() {
			continue
		}

		st := states[owner]
		if st == nil {
			st = &TeamState{
				Owner:          owner,
				PositionCounts: map[models.Position]int{},
				ByeCounts:      map[int]int{},
				NFLTeamCounts:  map[string]int{},
			}
			states[owner] = st
		}
		st.Picks = append(st.Picks, p)

		pos := p.Position
		team := p.TeamAbbr
		bye := p.ByeWeek
		if resolve != nil {
			if bp := resolve(p); bp != nil {
				if bp.Position != "" {
					pos = bp.Position
				}
				if bp.TeamAbbr != "" {
					team = bp.TeamAbbr
				}
				if bp.ByeWeek > 0 {
					bye = bp.ByeWeek
				}
			}
		}

		if pos != "" {
			st.PositionCounts[pos]++
			if pos.IsCore() && bye > 0 {
				st.ByeCounts[bye]++
			}
		}
		if team != "" {
			st.NFLTeamCounts[team]++
		}
	}

	for _, st := range states {
		sort.Slice(st.Picks, func(i, j int) bool { return st.Picks[i].PickNo < st.Picks[j].PickNo })
	}
	return states
}

// NeedGaps computes required-minus-owned per starter position, floored at
// zero. Fractional gaps surface partial flex pressure.
func (s *TeamState) NeedGaps(req rosterreq.Requirements) map[models.Position]float64 {
	gaps := map[models.Position]float64{}
	for _, pos := range models.StarterPositions {
		if gap := req.Gap(pos, s.PositionCounts[pos]); gap > 0 {
			gaps[pos] = gap
		}
	}
	return gaps
}

// MaxByePileup returns the largest core-position pileup on a single bye
// week and the week it falls on.
func (s *TeamState) MaxByePileup() (week, count int) {
	for w, c := range s.ByeCounts {
		if c > count || (c == count && w < week) {
			week, count = w, c
		}
	}
	return week, count
}
