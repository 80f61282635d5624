package board

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Ja'Marr Chase", "jamarr chase"},
		{"Kenneth Walker III", "kenneth walker"},
		{"Odell Beckham Jr.", "odell beckham"},
		{"Sebastián Aho", "sebastian aho"},
		{"AMON-RA ST. BROWN", "amonra st brown"},
		{"  D'Andre   Swift ", "dandre swift"},
		{"", ""},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, NormalizeName(tc.in), "input %q", tc.in)
	}
}

const sampleCSV = `RK,TIERS,PLAYER NAME,TEAM,POS,BYE WEEK,SOS SEASON,ECR VS. ADP
1,1,Justin Jefferson,MIN,WR1,13,3 out of 5,0
2,1,Christian McCaffrey,SF,RB1,9,4/5,+1
3,2,Ja'Marr Chase,CIN,WR2,7,,"-2"
bad-rank,2,Travis Kelce,KC,TE1,10,,
,,,,,
`

func TestParseBoard(t *testing.T) {
	players, err := ParseBoard(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, players, 4)

	jj := players[0]
	assert.Equal(t, "Justin Jefferson", jj.Name)
	assert.Equal(t, "justin jefferson", jj.NormalizedName)
	assert.Equal(t, models.PositionWR, jj.Position)
	assert.Equal(t, "MIN", jj.TeamAbbr)
	assert.Equal(t, 13, jj.ByeWeek)
	assert.Equal(t, 1, jj.Tier)
	assert.Equal(t, 1.0, jj.Rank)
	assert.Equal(t, "3/5", jj.SOS)
	assert.Equal(t, 1.0, jj.MarketRank) // rank + 0

	cmc := players[1]
	assert.Equal(t, 3.0, cmc.MarketRank) // 2 + 1
	assert.Equal(t, "4/5", cmc.SOS)

	chase := players[2]
	assert.Equal(t, 1.0, chase.MarketRank) // 3 - 2
	assert.Equal(t, -2.0, chase.ECRvsADP)

	// Malformed rank falls back to row position; empty name row is skipped.
	kelce := players[3]
	assert.Equal(t, "Travis Kelce", kelce.Name)
	assert.Equal(t, 4.0, kelce.Rank)
	assert.Equal(t, models.PositionTE, kelce.Position)
}

func TestParseBoardEmpty(t *testing.T) {
	players, err := ParseBoard(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, players)
}

func TestEnrichPrecedence(t *testing.T) {
	now := time.Now()
	players := []models.BoardPlayer{
		{
			Name:           "Justin Jefferson",
			NormalizedName: "justin jefferson",
			Position:       models.PositionWR,
			TeamAbbr:       "MIN",
			ByeWeek:        13,
		},
		{
			Name:           "Josh Allen",
			NormalizedName: "josh allen",
		},
	}
	metas := map[string]Meta{
		"1001": {
			PlayerID: "1001", FullName: "Justin Jefferson", Team: "XXX",
			Position: models.PositionWR, ByeWeek: 5, InjuryStatus: "Questionable", Age: 25,
		},
		"1002": {
			PlayerID: "1002", FullName: "Josh Allen", Team: "BUF",
			Position: models.PositionQB, ByeWeek: 12, Age: 28,
		},
	}

	Enrich(players, metas, now)

	// CSV fields are authoritative: team and bye survive, platform-only
	// fields are adopted.
	jj := players[0]
	assert.Equal(t, "MIN", jj.TeamAbbr)
	assert.Equal(t, 13, jj.ByeWeek)
	assert.Equal(t, "1001", jj.SleeperID)
	assert.Equal(t, "Questionable", jj.InjuryStatus)
	assert.Equal(t, 25, jj.Age)
	assert.Equal(t, models.MatchMatched, jj.MatchStatus)

	// Empty CSV fields are filled from metadata.
	allen := players[1]
	assert.Equal(t, "BUF", allen.TeamAbbr)
	assert.Equal(t, models.PositionQB, allen.Position)
	assert.Equal(t, 12, allen.ByeWeek)
}

func TestEnrichAmbiguousNameDisambiguatesByTeam(t *testing.T) {
	players := []models.BoardPlayer{{
		Name:           "Josh Allen",
		NormalizedName: "josh allen",
		TeamAbbr:       "JAX",
		Position:       models.PositionDEF,
	}}
	metas := map[string]Meta{
		"qb": {PlayerID: "qb", FullName: "Josh Allen", Team: "BUF", Position: models.PositionQB},
		"lb": {PlayerID: "lb", FullName: "Josh Allen", Team: "JAX", Position: models.PositionDEF},
	}

	Enrich(players, metas, time.Now())
	assert.Equal(t, "lb", players[0].SleeperID)
}

func TestEnrichSkipsFreshRows(t *testing.T) {
	now := time.Now()
	players := []models.BoardPlayer{{
		Name:           "Josh Allen",
		NormalizedName: "josh allen",
		EnrichedAt:     now.Add(-time.Hour),
		MatchStatus:    models.MatchUnmatched,
	}}
	metas := map[string]Meta{
		"qb": {PlayerID: "qb", FullName: "Josh Allen", Team: "BUF"},
	}

	Enrich(players, metas, now)
	assert.Empty(t, players[0].SleeperID, "fresh row must not be touched")

	// Past the TTL the row is enriched again.
	players[0].EnrichedAt = now.Add(-25 * time.Hour)
	Enrich(players, metas, now)
	assert.Equal(t, "qb", players[0].SleeperID)
}

func boardFixture() []models.BoardPlayer {
	return []models.BoardPlayer{
		{ID: 1, SleeperID: "p1", Name: "Alpha One", NormalizedName: "alpha one", Rank: 1},
		{ID: 2, Name: "Beta Two", NormalizedName: "beta two", Rank: 2},
		{ID: 3, Name: "Gamma Three", NormalizedName: "gamma three", Rank: 3},
	}
}

func TestApplyPicksMatchesByIDThenName(t *testing.T) {
	players := boardFixture()
	picks := []models.Pick{
		{PickNo: 1, PickedBy: "u1", PlayerID: "p1"},
		{PickNo: 2, PickedBy: "u2", FirstName: "Beta", LastName: "Two"},
	}

	ApplyPicks(players, picks, 10)

	assert.True(t, players[0].Drafted)
	assert.Equal(t, models.OwnerKey("user:u1"), players[0].DraftedBy)
	assert.Equal(t, 1, players[0].PickNo)

	assert.True(t, players[1].Drafted)
	assert.Equal(t, models.OwnerKey("user:u2"), players[1].DraftedBy)

	assert.False(t, players[2].Drafted)
}

func TestApplyPicksIdempotentAndSelfCorrecting(t *testing.T) {
	players := boardFixture()
	picks := []models.Pick{{PickNo: 1, PickedBy: "u1", PlayerID: "p1"}}

	ApplyPicks(players, picks, 10)
	ApplyPicks(players, picks, 10)
	assert.True(t, players[0].Drafted)
	assert.Equal(t, 1, players[0].PickNo)

	// A withdrawn pick clears on the next full application.
	ApplyPicks(players, nil, 10)
	assert.False(t, players[0].Drafted)
	assert.Empty(t, players[0].DraftedBy)
}

func TestUndrafted(t *testing.T) {
	players := boardFixture()
	ApplyPicks(players, []models.Pick{{PickNo: 1, PickedBy: "u1", PlayerID: "p1"}}, 10)

	avail := Undrafted(players)
	require.Len(t, avail, 2)
	assert.Equal(t, "Beta Two", avail[0].Name)
}
