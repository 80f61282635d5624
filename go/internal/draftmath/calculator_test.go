package draftmath

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// picksThrough builds a snake draft's first n picks for a team count, with
// draft slots filled in.
func picksThrough(n, teams int) []models.Pick {
	picks := make([]models.Pick, 0, n)
	for i := 1; i <= n; i++ {
		picks = append(picks, models.Pick{
			PickNo:    i,
			Round:     RoundOf(i, teams),
			DraftSlot: SlotForPick(i, teams),
		})
	}
	return picks
}

func TestCurrentPickNumber(t *testing.T) {
	assert.Equal(t, 0, CurrentPickNumber(nil))
	assert.Equal(t, 23, CurrentPickNumber([]models.Pick{{PickNo: 7}, {PickNo: 23}, {PickNo: 11}}))
}

func TestTeamsCountFallbackChain(t *testing.T) {
	t.Run("ExplicitConfigWins", func(t *testing.T) {
		got := TeamsCount(models.DraftConfig{TeamsCount: 12, LeagueSize: 10}, picksThrough(5, 8))
		assert.Equal(t, 12, got)
	})

	t.Run("DistinctDraftSlots", func(t *testing.T) {
		got := TeamsCount(models.DraftConfig{}, picksThrough(15, 10))
		assert.Equal(t, 10, got)
	})

	t.Run("FirstRoundPickCount", func(t *testing.T) {
		picks := []models.Pick{
			{PickNo: 1, Round: 1}, {PickNo: 2, Round: 1}, {PickNo: 3, Round: 1},
			{PickNo: 4, Round: 2},
		}
		assert.Equal(t, 3, TeamsCount(models.DraftConfig{}, picks))
	})

	t.Run("LeagueSizeLast", func(t *testing.T) {
		assert.Equal(t, 10, TeamsCount(models.DraftConfig{LeagueSize: 10}, nil))
	})

	t.Run("Unknown", func(t *testing.T) {
		assert.Equal(t, 0, TeamsCount(models.DraftConfig{}, nil))
	})
}

func TestSlotForPickSnakeParity(t *testing.T) {
	tests := []struct {
		pickNo, teams, want int
	}{
		{1, 10, 1},
		{10, 10, 10},
		{11, 10, 10}, // round 2 reverses
		{20, 10, 1},
		{21, 10, 1}, // round 3 runs forward again
		{23, 10, 3},
		{38, 10, 3}, // round 4, slot 3 picks 8th
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, SlotForPick(tc.pickNo, tc.teams), "pick %d", tc.pickNo)
	}
}

func TestDraftSlot(t *testing.T) {
	t.Run("ExplicitSlotWins", func(t *testing.T) {
		assert.Equal(t, 5, DraftSlot(nil, "user:u1", 5, 10))
	})

	t.Run("InferredFromEarliestPick", func(t *testing.T) {
		picks := []models.Pick{
			{PickNo: 18, PickedBy: "u1"}, // round 2 slot 3
			{PickNo: 3, PickedBy: "u1"},  // round 1 slot 3
		}
		assert.Equal(t, 3, DraftSlot(picks, "user:u1", 0, 10))
	})

	t.Run("UnknownWithoutPicks", func(t *testing.T) {
		assert.Equal(t, 0, DraftSlot(nil, "user:u1", 0, 10))
	})
}

func TestPicksUntilNextTurnScenario(t *testing.T) {
	// 10 teams, viewer holds slot 3 and just made pick 23 (round 3, third
	// pick in round). The next turn is pick 38 (round 4 reversed, slot 3
	// picks eighth), so 14 picks happen first.
	teams := 10
	picks := picksThrough(23, teams)
	picks[2].PickedBy = "u1"  // pick 3
	picks[17].PickedBy = "u1" // pick 18
	picks[22].PickedBy = "u1" // pick 23

	dist, ok := PicksUntilNextTurn(picks, "user:u1", 0, teams)
	require.True(t, ok)
	assert.Equal(t, 14, dist)
}

// Distance decreases by exactly one per recorded pick until it reaches zero
// (on the clock), then resets to a positive value after the owner picks.
func TestPicksUntilNextTurnMonotonicity(t *testing.T) {
	teams := 10
	slot := 3

	prev, ok := PicksUntilNextTurn(picksThrough(3, teams), "slot:3", slot, teams)
	require.True(t, ok)

	sawZero := false
	for n := 4; n <= 40; n++ {
		dist, ok := PicksUntilNextTurn(picksThrough(n, teams), "slot:3", slot, teams)
		require.True(t, ok)

		if prev == 0 {
			assert.Greater(t, dist, 0, "distance resets after the owner picks")
			sawZero = true
		} else {
			assert.Equal(t, prev-1, dist, "after pick %d", n)
		}
		prev = dist
	}
	assert.True(t, sawZero)
}

func TestPicksUntilNextTurnUnknown(t *testing.T) {
	_, ok := PicksUntilNextTurn(picksThrough(5, 10), "user:ghost", 0, 0)
	assert.False(t, ok, "unknown teams count")

	_, ok = PicksUntilNextTurn(picksThrough(5, 10), "user:ghost", 0, 10)
	assert.False(t, ok, "owner has no picks and no slot")
}

func TestPicksUntilNextTurnOnTheClock(t *testing.T) {
	// After 2 picks of a 10-team draft, slot 3 is on the clock.
	dist, ok := PicksUntilNextTurn(picksThrough(2, 10), "slot:3", 3, 10)
	require.True(t, ok)
	assert.Equal(t, 0, dist)
}

func TestFormatRoundPick(t *testing.T) {
	assert.Equal(t, "3.3", FormatRoundPick(23, 10))
	assert.Equal(t, "1.1", FormatRoundPick(1, 10))
	assert.Equal(t, "", FormatRoundPick(23, 0))
	assert.Equal(t, "", FormatRoundPick(0, 10))
}

func TestEstimateRounds(t *testing.T) {
	assert.Equal(t, 3, EstimateRounds(picksThrough(23, 10), 10))
	assert.Equal(t, 2, EstimateRounds(picksThrough(20, 10), 10))
	assert.Equal(t, 0, EstimateRounds(nil, 10))
	assert.Equal(t, 0, EstimateRounds(picksThrough(5, 10), 0))
}

func TestIsDraftComplete(t *testing.T) {
	t.Run("CompleteTwelveTeamFifteenRounds", func(t *testing.T) {
		picks := picksThrough(180, 12)
		assert.True(t, IsDraftComplete(picks, 12, 15))
	})

	t.Run("RoundsEstimatedWhenUnknown", func(t *testing.T) {
		picks := picksThrough(180, 12)
		assert.True(t, IsDraftComplete(picks, 12, 0))
	})

	t.Run("IncompleteMissingPicks", func(t *testing.T) {
		picks := picksThrough(179, 12)
		assert.False(t, IsDraftComplete(picks, 12, 15))
	})

	t.Run("DuplicateDeliveryDoesNotInflate", func(t *testing.T) {
		picks := picksThrough(179, 12)
		picks = append(picks, picks[0], picks[1]) // re-delivered
		assert.False(t, IsDraftComplete(picks, 12, 15))
	})

	t.Run("UnknownTeams", func(t *testing.T) {
		assert.False(t, IsDraftComplete(picksThrough(180, 12), 0, 15))
	})
}
