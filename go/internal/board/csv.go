package board

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// Recognized header variants per field. Rankings exports are not stable
// about header naming, so each field probes a list.
var csvHeaders = map[string][]string{
	"rank":   {"RK", "RANK"},
	"tier":   {"TIERS", "TIER"},
	"name":   {"PLAYER NAME", "PLAYER", "NAME"},
	"team":   {"TEAM"},
	"pos":    {"POS", "POSITION"},
	"bye":    {"BYE WEEK", "BYE"},
	"sos":    {"SOS SEASON", "SOS"},
	"ecradp": {"ECR VS. ADP", "ECR VS ADP", "ECRVSADP", "ECR-ADP", "ECR_VS_ADP"},
}

var sosRe = regexp.MustCompile(`(?i)(\d)\s*(?:out\s*of|/)\s*5`)

// ParseBoard reads a rankings CSV into board players. Rows without a player
// name are skipped; malformed numeric cells are treated as absent rather
// than failing the import. Market rank (ADP) is reconstructed as
// rank + (ECR vs. ADP) when the delta column is present.
func ParseBoard(r io.Reader) ([]models.BoardPlayer, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	cols := map[string]int{}
	for i, h := range header {
		key := strings.ToUpper(strings.TrimSpace(h))
		for field, variants := range csvHeaders {
			if _, taken := cols[field]; taken {
				continue
			}
			for _, v := range variants {
				if key == v {
					cols[field] = i
				}
			}
		}
	}

	var players []models.BoardPlayer
	for idx := 0; ; idx++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV row %d: %w", idx+2, err)
		}

		cell := func(field string) string {
			i, ok := cols[field]
			if !ok || i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}

		name := cell("name")
		if name == "" {
			continue
		}

		rank, rankOK := parseNum(cell("rank"))
		if !rankOK || rank <= 0 {
			rank = float64(len(players) + 1)
		}

		p := models.BoardPlayer{
			ID:             len(players) + 1,
			Name:           name,
			NormalizedName: NormalizeName(name),
			Position:       models.NormalizePosition(cell("pos")),
			TeamAbbr:       strings.ToUpper(cell("team")),
			Rank:           rank,
			SOS:            formatSOS(cell("sos")),
		}
		if tier, ok := parseNum(cell("tier")); ok && tier > 0 {
			p.Tier = int(tier)
		}
		if bye, ok := parseNum(cell("bye")); ok && bye > 0 {
			p.ByeWeek = int(bye)
		}
		if delta, ok := parseNum(cell("ecradp")); ok {
			p.ECRvsADP = delta
			if adp := p.Rank + delta; adp > 0 {
				p.MarketRank = adp
			}
		}
		players = append(players, p)
	}
	sort.SliceStable(players, func(i, j int) bool { return players[i].Rank < players[j].Rank })
	return players, nil
}

// parseNum parses rankings-export numbers, tolerating signs ("+3") and
// comma decimals ("3,2").
func parseNum(s string) (float64, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ",", "."))
	s = strings.TrimPrefix(s, "+")
	if s == "" {
		return 0, false
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// formatSOS folds "3 out of 5" style cells into "3/5".
func formatSOS(raw string) string {
	if m := sosRe.FindStringSubmatch(raw); m != nil {
		return m[1] + "/5"
	}
	return raw
}
