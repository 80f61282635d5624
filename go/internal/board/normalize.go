// Package board owns the ranked player catalog: CSV ingestion, metadata
// enrichment, and the pick-to-player join that marks players drafted.
package board

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// deaccent strips combining marks so "São" and "Sao" normalize identically.
var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var nameSuffixes = map[string]bool{
	"jr": true, "sr": true, "ii": true, "iii": true, "iv": true,
}

// NormalizeName produces the case-insensitive, diacritics- and
// suffix-stripped form of a player name. It is the join key between board
// rows, platform metadata, and live picks whenever no stable id exists.
func NormalizeName(name string) string {
	s, _, err := transform.String(deaccent, name)
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)

	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || r == ' ' {
			b.WriteRune(r)
		}
	}

	fields := strings.Fields(b.String())
	out := fields[:0]
	for _, f := range fields {
		if !nameSuffixes[f] {
			out = append(out, f)
		}
	}
	return strings.Join(out, " ")
}
