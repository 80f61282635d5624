package board

import (
	"strings"
	"time"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// Meta is one platform player-metadata record, as supplied by the external
// enrichment collaborator.
type Meta struct {
	PlayerID         string
	FullName         string
	Team             string
	Position         models.Position
	FantasyPositions []models.Position
	ByeWeek          int
	InjuryStatus     string
	Age              int
}

// enrichTTL bounds how long an enriched row is considered fresh.
const enrichTTL = 24 * time.Hour

// primaryPosition picks the fantasy-relevant position off a metadata record.
func (m Meta) primaryPosition() models.Position {
	if len(m.FantasyPositions) > 0 && m.FantasyPositions[0] != "" {
		return m.FantasyPositions[0]
	}
	return m.Position
}

// Enrich layers platform metadata onto board rows with explicit precedence:
// imported CSV fields are authoritative and only filled when empty, while
// the platform id, injury status, and age are adopted whenever absent.
// Matching prefers a stable id, then a unique normalized name, then team
// and position disambiguation. Rows enriched within the TTL are left alone.
func Enrich(players []models.BoardPlayer, metas map[string]Meta, now time.Time) {
	if len(players) == 0 || len(metas) == 0 {
		return
	}

	byName := map[string][]Meta{}
	for _, m := range metas {
		key := NormalizeName(m.FullName)
		if key != "" {
			byName[key] = append(byName[key], m)
		}
	}

	for i := range players {
		p := &players[i]
		if !p.EnrichedAt.IsZero() && now.Sub(p.EnrichedAt) < enrichTTL {
			continue
		}

		meta, ok := matchMeta(*p, metas, byName)
		p.EnrichedAt = now
		if !ok {
			p.MatchStatus = models.MatchUnmatched
			continue
		}
		p.MatchStatus = models.MatchMatched

		if p.TeamAbbr == "" && meta.Team != "" {
			p.TeamAbbr = strings.ToUpper(meta.Team)
		}
		if p.Position == "" {
			p.Position = meta.primaryPosition()
		}
		if p.ByeWeek == 0 && meta.ByeWeek > 0 {
			p.ByeWeek = meta.ByeWeek
		}
		if p.SleeperID == "" {
			p.SleeperID = meta.PlayerID
		}
		if p.InjuryStatus == "" {
			p.InjuryStatus = meta.InjuryStatus
		}
		if p.Age == 0 {
			p.Age = meta.Age
		}
	}
}

func matchMeta(p models.BoardPlayer, metas map[string]Meta, byName map[string][]Meta) (Meta, bool) {
	if p.SleeperID != "" {
		if m, ok := metas[p.SleeperID]; ok {
			return m, true
		}
	}

	candidates := byName[p.NormalizedName]
	switch len(candidates) {
	case 0:
		return Meta{}, false
	case 1:
		return candidates[0], true
	}

	// Ambiguous name: narrow by NFL team, then position.
	team := strings.ToUpper(p.TeamAbbr)
	var byTeam []Meta
	if team != "" {
		for _, c := range candidates {
			if strings.ToUpper(c.Team) == team {
				byTeam = append(byTeam, c)
			}
		}
	}
	pool := candidates
	if len(byTeam) > 0 {
		pool = byTeam
	}
	for _, c := range pool {
		if c.primaryPosition() == p.Position {
			return c, true
		}
	}
	return pool[0], true
}
