// Package identity derives the canonical per-team key for a draft. Every
// subsystem that references a team (aggregation, tip generation, grading)
// resolves keys through this package so team identity never drifts between
// components.
package identity

import (
	"strconv"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// ResolveOwnerKey resolves the canonical team key for a pick. Fallback
// priority: authenticated user id, league roster id, explicit draft slot,
// slot derived from the overall pick number. When even the derivation fails
// the pick maps to models.OwnerUnknown and is skipped downstream.
func ResolveOwnerKey(p models.Pick, teamsCount int) models.OwnerKey {
	if p.PickedBy != "" {
		return UserKey(p.PickedBy)
	}
	if p.RosterID != nil {
		return models.OwnerKey("roster:" + strconv.Itoa(*p.RosterID))
	}
	if p.DraftSlot > 0 {
		return SlotKey(p.DraftSlot)
	}
	if teamsCount > 0 && p.PickNo > 0 {
		return SlotKey(((p.PickNo - 1) % teamsCount) + 1)
	}
	return models.OwnerUnknown
}

// UserKey returns the owner key for an authenticated platform user id.
func UserKey(userID string) models.OwnerKey {
	if userID == "" {
		return models.OwnerUnknown
	}
	return models.OwnerKey("user:" + userID)
}

// SlotKey returns the owner key for a raw draft slot.
func SlotKey(slot int) models.OwnerKey {
	if slot <= 0 {
		return models.OwnerUnknown
	}
	return models.OwnerKey("slot:" + strconv.Itoa(slot))
}
