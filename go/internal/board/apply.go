package board

import (
	"github.com/mpetrick/draftcaddy/go/internal/identity"
	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// Index provides pick-to-player resolution over a board snapshot. The
// platform id is preferred; the normalized name is the fallback join key.
type Index struct {
	byID   map[string]*models.BoardPlayer
	byName map[string]*models.BoardPlayer
}

// NewIndex builds an index over the given board slice. The index holds
// pointers into the slice, so lookups observe later in-place mutation.
func NewIndex(players []models.BoardPlayer) *Index {
	ix := &Index{
		byID:   map[string]*models.BoardPlayer{},
		byName: map[string]*models.BoardPlayer{},
	}
	for i := range players {
		p := &players[i]
		if p.SleeperID != "" {
			ix.byID[p.SleeperID] = p
		}
		if p.NormalizedName != "" {
			if _, dup := ix.byName[p.NormalizedName]; !dup {
				ix.byName[p.NormalizedName] = p
			}
		}
	}
	return ix
}

// PlayerForPick resolves a pick to its board entry, or nil when the pick
// names a player the board does not carry.
func (ix *Index) PlayerForPick(p models.Pick) *models.BoardPlayer {
	if p.PlayerID != "" {
		if bp, ok := ix.byID[p.PlayerID]; ok {
			return bp
		}
	}
	if name := NormalizeName(p.PlayerName()); name != "" {
		if bp, ok := ix.byName[name]; ok {
			return bp
		}
	}
	return nil
}

// Resolver adapts the index for consumers that take a resolution function.
func (ix *Index) Resolver() func(models.Pick) *models.BoardPlayer {
	return ix.PlayerForPick
}

// ApplyPicks re-derives draft status for the whole board from the full pick
// list. Every row is reset first, so re-delivered, corrected, or withdrawn
// picks converge to the same state on every call.
func ApplyPicks(players []models.BoardPlayer, picks []models.Pick, teams int) {
	for i := range players {
		players[i].Drafted = false
		players[i].DraftedBy = ""
		players[i].PickNo = 0
	}

	ix := NewIndex(players)
	for _, pick := range picks {
		bp := ix.PlayerForPick(pick)
		if bp == nil {
			continue
		}
		bp.Drafted = true
		bp.DraftedBy = identity.ResolveOwnerKey(pick, teams)
		bp.PickNo = pick.PickNo
	}
}

// Undrafted returns the undrafted board entries in rank order. The board is
// kept rank-sorted by ingestion, so no re-sort happens here.
func Undrafted(players []models.BoardPlayer) []*models.BoardPlayer {
	var out []*models.BoardPlayer
	for i := range players {
		if !players[i].Drafted {
			out = append(out, &players[i])
		}
	}
	return out
}
