package models

import "strings"

// Position is a fantasy-relevant NFL position.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDEF Position = "DEF"
)

// StarterPositions are the positions a roster requirement can resolve to.
var StarterPositions = []Position{PositionQB, PositionRB, PositionWR, PositionTE, PositionDEF, PositionK}

// CorePositions are the positions that count toward bye-week pileups and
// positional grading.
var CorePositions = []Position{PositionQB, PositionRB, PositionWR, PositionTE}

// NormalizePosition maps a raw position label onto a Position. Slot indices
// ("WR1") and defense aliases ("DST", "D/ST") are folded in; unknown labels
// come back as an empty Position.
func NormalizePosition(raw string) Position {
	s := strings.ToUpper(strings.TrimSpace(raw))
	s = strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return -1
		}
		return r
	}, s)
	switch s {
	case "D/ST", "DST", "DEF":
		return PositionDEF
	}
	for _, p := range StarterPositions {
		if s == string(p) {
			return p
		}
	}
	return Position("")
}

// IsCore reports whether the position counts as a core starter position.
func (p Position) IsCore() bool {
	for _, c := range CorePositions {
		if p == c {
			return true
		}
	}
	return false
}
