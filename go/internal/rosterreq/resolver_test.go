package rosterreq

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

func TestResolveDirectSlots(t *testing.T) {
	req := Resolve([]string{"QB", "RB", "RB", "WR", "WR", "TE", "DEF", "K", "BN", "BN"})

	assert.Equal(t, 1.0, req[models.PositionQB])
	assert.Equal(t, 2.0, req[models.PositionRB])
	assert.Equal(t, 2.0, req[models.PositionWR])
	assert.Equal(t, 1.0, req[models.PositionTE])
	assert.Equal(t, 1.0, req[models.PositionDEF])
	assert.Equal(t, 1.0, req[models.PositionK])
}

func TestResolveFlexSplit(t *testing.T) {
	req := Resolve([]string{"RB", "WR", "FLEX", "FLEX"})

	assert.InDelta(t, 2.0, req[models.PositionRB], 1e-9)
	assert.InDelta(t, 2.0, req[models.PositionWR], 1e-9)
	assert.InDelta(t, 0.5, req[models.PositionTE], 1e-9)
}

func TestResolveSuperflexAddsFullQB(t *testing.T) {
	req := Resolve([]string{"QB", "SUPER_FLEX"})

	assert.Equal(t, 2.0, req[models.PositionQB])
	assert.False(t, req.IsSingleQB())
}

func TestResolveFallbackOnEmptyOrUnparseable(t *testing.T) {
	want := Requirements{
		models.PositionQB: 1,
		models.PositionRB: 2,
		models.PositionWR: 2,
		models.PositionTE: 1,
	}

	assert.Equal(t, want, Resolve(nil))
	assert.Equal(t, want, Resolve([]string{}))
	assert.Equal(t, want, Resolve([]string{"BN", "BN", "IR", "TAXI"}))
	assert.Equal(t, want, Resolve([]string{"???", "IDP"}))
}

func TestResolveIgnoresBenchLikeSlots(t *testing.T) {
	req := Resolve([]string{"QB", "BN", "IR", "TAXI", "RB"})

	assert.InDelta(t, 2.0, req.Total(), 1e-9)
}

// Sum across positions equals direct non-bench slots plus the flex policy
// contribution per flex slot and one per superflex.
func TestResolveTotalInvariant(t *testing.T) {
	slots := []string{"QB", "RB", "RB", "WR", "WR", "TE", "FLEX", "SUPER_FLEX", "DEF", "K", "BN", "BN", "BN"}
	req := Resolve(slots)

	direct := 8.0 // QB RB RB WR WR TE DEF K
	flex := DefaultFlexPolicy.RB + DefaultFlexPolicy.WR + DefaultFlexPolicy.TE
	assert.InDelta(t, direct+flex+1, req.Total(), 1e-9)
}

func TestResolveCustomPolicy(t *testing.T) {
	req := ResolveWithPolicy([]string{"FLEX"}, FlexPolicy{RB: 1, WR: 0, TE: 0})

	assert.Equal(t, 1.0, req[models.PositionRB])
	assert.Equal(t, 0.0, req[models.PositionWR])
}

func TestGap(t *testing.T) {
	req := Resolve([]string{"QB", "RB", "RB"})

	assert.Equal(t, 2.0, req.Gap(models.PositionRB, 0))
	assert.Equal(t, 1.0, req.Gap(models.PositionRB, 1))
	assert.Equal(t, 0.0, req.Gap(models.PositionRB, 5))
	assert.Equal(t, 0.0, req.Gap(models.PositionWR, 0))
}

func TestIsSingleQB(t *testing.T) {
	assert.True(t, Resolve([]string{"QB", "RB"}).IsSingleQB())
	assert.False(t, Resolve([]string{"QB", "QB"}).IsSingleQB())
}
