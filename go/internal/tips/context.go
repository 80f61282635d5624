// Package tips generates candidate advisories from draft state and ranks
// them into the short list shown to the viewer. Generation is pure; only
// the prioritizer touches the cooldown index.
package tips

import (
	"github.com/mpetrick/draftcaddy/go/internal/models"
	"github.com/mpetrick/draftcaddy/go/internal/rosterreq"
	"github.com/mpetrick/draftcaddy/go/internal/teamstate"
)

// Context is the full input snapshot for one tip run. Every field is
// derived fresh from the picks/board snapshot before generation; generators
// never reach into shared mutable state.
type Context struct {
	Picks []models.Pick
	Board []models.BoardPlayer

	TeamsCount  int // 0 when unknown
	CurrentPick int // pick now on the clock: last observed pick number + 1
	Round       int // round of the upcoming pick, 0 when unknown

	Viewer     models.OwnerKey
	ViewerSlot int

	Distance      int // picks until the viewer's turn
	DistanceKnown bool

	Requirements rosterreq.Requirements
	States       map[models.OwnerKey]*teamstate.TeamState
	Strategies   map[models.Strategy]bool

	Resolve func(models.Pick) *models.BoardPlayer
}

// viewerState returns the viewer's aggregated team state, or nil before the
// viewer has any picks.
func (c Context) viewerState() *teamstate.TeamState {
	if c.Viewer.IsUnknown() {
		return nil
	}
	return c.States[c.Viewer]
}

// viewerCount returns how many players the viewer owns at a position.
func (c Context) viewerCount(pos models.Position) int {
	if st := c.viewerState(); st != nil {
		return st.PositionCounts[pos]
	}
	return 0
}

// qbGateApplies reports whether QB-need advice is suppressed: single-QB
// league, before round 7, skill-position need still outstanding, and no
// early-QB strategy active. Skill positions outrank QB scarcity in 1-QB
// formats, so the gate holds against any positive signal.
func (c Context) qbGateApplies() bool {
	if c.Strategies[models.StrategyEarlyQB] {
		return false
	}
	if !c.Requirements.IsSingleQB() {
		return false
	}
	if c.Round == 0 || c.Round >= 7 {
		return false
	}
	rbGap := c.Requirements.Gap(models.PositionRB, c.viewerCount(models.PositionRB))
	wrGap := c.Requirements.Gap(models.PositionWR, c.viewerCount(models.PositionWR))
	return rbGap > 0 || wrGap > 0
}
