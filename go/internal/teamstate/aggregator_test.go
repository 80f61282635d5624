package teamstate

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrick/draftcaddy/go/internal/models"
	"github.com/mpetrick/draftcaddy/go/internal/rosterreq"
)

func samplePicks() []models.Pick {
	return []models.Pick{
		{PickNo: 1, PickedBy: "u1", Position: models.PositionRB, TeamAbbr: "SF", ByeWeek: 9},
		{PickNo: 2, PickedBy: "u2", Position: models.PositionWR, TeamAbbr: "DAL", ByeWeek: 7},
		{PickNo: 3, PickedBy: "u1", Position: models.PositionWR, TeamAbbr: "SF", ByeWeek: 9},
		{PickNo: 4, PickedBy: "u2", Position: models.PositionRB, TeamAbbr: "PHI", ByeWeek: 5},
		{PickNo: 5, PickedBy: "u1", Position: models.PositionQB, TeamAbbr: "BUF", ByeWeek: 9},
		{PickNo: 6, PickedBy: "u1", Position: models.PositionK, TeamAbbr: "SF", ByeWeek: 9},
	}
}

func TestAggregateCounts(t *testing.T) {
	states := Aggregate(samplePicks(), 10, nil)
	require.Len(t, states, 2)

	u1 := states["user:u1"]
	require.NotNil(t, u1)
	assert.Equal(t, 1, u1.PositionCounts[models.PositionRB])
	assert.Equal(t, 1, u1.PositionCounts[models.PositionWR])
	assert.Equal(t, 1, u1.PositionCounts[models.PositionQB])
	assert.Equal(t, 1, u1.PositionCounts[models.PositionK])

	// Kicker bye weeks do not count toward the core pileup.
	assert.Equal(t, 3, u1.ByeCounts[9])
	assert.Equal(t, 3, u1.NFLTeamCounts["SF"])

	week, count := u1.MaxByePileup()
	assert.Equal(t, 9, week)
	assert.Equal(t, 3, count)
}

func TestAggregatePicksSortedByPickNo(t *testing.T) {
	picks := samplePicks()
	picks[0], picks[4] = picks[4], picks[0]

	states := Aggregate(picks, 10, nil)
	u1 := states["user:u1"]
	require.NotNil(t, u1)

	prev := 0
	for _, p := range u1.Picks {
		assert.Greater(t, p.PickNo, prev)
		prev = p.PickNo
	}
}

// Shuffling the pick list must not change any derived count.
func TestAggregateOrderIndependent(t *testing.T) {
	base := Aggregate(samplePicks(), 10, nil)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 20; i++ {
		shuffled := samplePicks()
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, base, Aggregate(shuffled, 10, nil))
	}
}

func TestAggregateDropsUnresolvableOwner(t *testing.T) {
	picks := []models.Pick{
		{PickNo: 1, PickedBy: "u1", Position: models.PositionRB},
		{Position: models.PositionWR}, // no owner signal at all
	}
	states := Aggregate(picks, 0, nil)
	require.Len(t, states, 1)
	assert.NotNil(t, states["user:u1"])
}

func TestAggregatePrefersBoardData(t *testing.T) {
	picks := []models.Pick{{PickNo: 1, PickedBy: "u1", Position: models.PositionWR}}
	board := models.BoardPlayer{Position: models.PositionRB, TeamAbbr: "KC", ByeWeek: 6}

	states := Aggregate(picks, 10, func(models.Pick) *models.BoardPlayer { return &board })
	u1 := states["user:u1"]
	require.NotNil(t, u1)
	assert.Equal(t, 1, u1.PositionCounts[models.PositionRB])
	assert.Equal(t, 0, u1.PositionCounts[models.PositionWR])
	assert.Equal(t, 1, u1.NFLTeamCounts["KC"])
	assert.Equal(t, 1, u1.ByeCounts[6])
}

func TestAggregateEmptyInput(t *testing.T) {
	assert.Empty(t, Aggregate(nil, 10, nil))
}

func TestNeedGaps(t *testing.T) {
	states := Aggregate(samplePicks(), 10, nil)
	req := rosterreq.Resolve([]string{"QB", "RB", "RB", "WR", "WR", "TE"})

	gaps := states["user:u1"].NeedGaps(req)
	assert.Equal(t, 1.0, gaps[models.PositionRB])
	assert.Equal(t, 1.0, gaps[models.PositionWR])
	assert.Equal(t, 1.0, gaps[models.PositionTE])
	assert.NotContains(t, gaps, models.PositionQB)
}
