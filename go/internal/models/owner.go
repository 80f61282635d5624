package models

import "strings"

// OwnerKey is the canonical per-team identity for a draft. It is derived from
// the best signal available on a pick (user id, roster id, draft slot, or a
// slot computed from the overall pick number) and is the join key between
// aggregation, tip generation, and grading.
type OwnerKey string

// OwnerUnknown marks a pick whose team could not be resolved at all. Teams
// carrying this key are skipped rather than scored.
const OwnerUnknown OwnerKey = "slot:unknown"

// IsUnknown reports whether the key failed every resolution fallback.
func (k OwnerKey) IsUnknown() bool {
	return k == "" || k == OwnerUnknown
}

// IsUser reports whether the key was resolved from an authenticated user id.
func (k OwnerKey) IsUser() bool {
	return strings.HasPrefix(string(k), "user:")
}
