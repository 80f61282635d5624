package models

// TeamScore is the post-draft composite grade for one team. All sub-scores
// and the total are on a 0-100 scale; Rank is 1-based within the draft.
type TeamScore struct {
	Rank       int      `json:"rank"`
	Owner      OwnerKey `json:"owner"`
	Total      int      `json:"total"`
	Value      int      `json:"value"`
	Positional int      `json:"positional"`
	Balance    int      `json:"balance"`
	Diversity  int      `json:"diversity"`
	Bye        int      `json:"bye"`
}
