package sleeper

import (
	"github.com/mpetrick/draftcaddy/go/internal/board"
	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// ToPick converts a wire pick into the internal model.
func ToPick(p DraftPick) models.Pick {
	return models.Pick{
		PickNo:       p.PickNo,
		Round:        p.Round,
		DraftSlot:    p.DraftSlot,
		PickedBy:     p.PickedBy,
		RosterID:     p.RosterID,
		PlayerID:     p.PlayerID,
		FirstName:    p.Metadata.FirstName,
		LastName:     p.Metadata.LastName,
		Position:     models.NormalizePosition(p.Metadata.Position),
		TeamAbbr:     p.Metadata.Team,
		InjuryStatus: p.Metadata.InjuryStatus,
	}
}

// ToPicks converts a wire pick list into internal models.
func ToPicks(picks []DraftPick) []models.Pick {
	out := make([]models.Pick, 0, len(picks))
	for _, p := range picks {
		out = append(out, ToPick(p))
	}
	return out
}

// ToMeta converts a catalog record into the enrichment merge's input shape.
func ToMeta(p PlayerMeta) board.Meta {
	var positions []models.Position
	for _, fp := range p.FantasyPositions {
		if pos := models.NormalizePosition(fp); pos != "" {
			positions = append(positions, pos)
		}
	}
	bye := 0
	if n, err := p.ByeWeek.Int64(); err == nil {
		bye = int(n)
	}
	return board.Meta{
		PlayerID:         p.PlayerID,
		FullName:         p.FullName,
		Team:             p.Team,
		Position:         models.NormalizePosition(p.Position),
		FantasyPositions: positions,
		ByeWeek:          bye,
		InjuryStatus:     p.InjuryStatus,
		Age:              p.Age,
	}
}

// ToMetas converts the player catalog, dropping records without an id.
func ToMetas(players map[string]PlayerMeta) map[string]board.Meta {
	out := make(map[string]board.Meta, len(players))
	for _, p := range players {
		if p.PlayerID == "" {
			continue
		}
		out[p.PlayerID] = ToMeta(p)
	}
	return out
}

// ToDraftConfig derives the league/draft configuration from a draft record
// and optionally its league.
func ToDraftConfig(d *Draft, league *League, viewerUserID string) models.DraftConfig {
	cfg := models.DraftConfig{ViewerUserID: viewerUserID}
	if d != nil {
		cfg.TeamsCount = d.Settings.Teams
		cfg.Rounds = d.Settings.Rounds
		if viewerUserID != "" {
			cfg.ViewerSlot = d.DraftOrder[viewerUserID]
		}
	}
	if league != nil {
		cfg.LeagueSize = league.TotalRosters
		cfg.RosterPositions = league.RosterPositions
	}
	return cfg
}
