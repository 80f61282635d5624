// Package archive persists completed-draft score tables to Postgres so the
// review UI can load past drafts. Archiving is optional; the advisor runs
// fine without a database.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/sqlc-dev/pqtype"

	"github.com/mpetrick/draftcaddy/go/internal/models"
	"github.com/mpetrick/draftcaddy/go/internal/sqlutil"
)

const schema = `
CREATE TABLE IF NOT EXISTS archived_drafts (
    draft_id     TEXT PRIMARY KEY,
    league_id    TEXT,
    season       TEXT,
    teams        INT,
    rounds       INT,
    completed_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS archived_team_scores (
    draft_id   TEXT NOT NULL REFERENCES archived_drafts(draft_id) ON DELETE CASCADE,
    rank       INT NOT NULL,
    owner_key  TEXT NOT NULL,
    total      INT NOT NULL,
    sub_scores JSONB,
    PRIMARY KEY (draft_id, owner_key)
);
`

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// EnsureSchema creates the archive tables if they do not exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to create archive schema: %w", err)
	}
	return nil
}

type ArchiveDraftRequest struct {
	DraftID     string             `json:"draft_id"`
	LeagueID    string             `json:"league_id,omitempty"`
	Season      string             `json:"season,omitempty"`
	Teams       int                `json:"teams,omitempty"`
	Rounds      int                `json:"rounds,omitempty"`
	CompletedAt time.Time          `json:"completed_at"`
	Scores      []models.TeamScore `json:"scores"`
}

// ArchivedDraft is one row of the archive listing.
type ArchivedDraft struct {
	DraftID     string    `json:"draft_id"`
	LeagueID    string    `json:"league_id,omitempty"`
	Season      string    `json:"season,omitempty"`
	Teams       int       `json:"teams,omitempty"`
	Rounds      int       `json:"rounds,omitempty"`
	CompletedAt time.Time `json:"completed_at"`
}

// subScores is the JSON persisted per team alongside the total.
type subScores struct {
	Value      int `json:"value"`
	Positional int `json:"positional"`
	Balance    int `json:"balance"`
	Diversity  int `json:"diversity"`
	Bye        int `json:"bye"`
}

type queries struct {
	tx *sql.Tx
}

func newQueries(tx *sql.Tx) *queries {
	return &queries{tx: tx}
}

// ArchiveDraft stores the draft header and its full score table in one
// transaction. Re-archiving the same draft replaces the previous table.
func (r *Repository) ArchiveDraft(ctx context.Context, req ArchiveDraftRequest) error {
	if req.DraftID == "" {
		return fmt.Errorf("draft id is required")
	}

	err := sqlutil.Run(ctx, r.db, newQueries, func(q *queries) error {
		if err := q.upsertDraft(ctx, req); err != nil {
			return err
		}
		if err := q.replaceScores(ctx, req.DraftID, req.Scores); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to archive draft: %w", err)
	}
	return nil
}

func (q *queries) upsertDraft(ctx context.Context, req ArchiveDraftRequest) error {
	_, err := q.tx.ExecContext(ctx, `
        INSERT INTO archived_drafts (draft_id, league_id, season, teams, rounds, completed_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (draft_id) DO UPDATE SET
            league_id = EXCLUDED.league_id,
            season = EXCLUDED.season,
            teams = EXCLUDED.teams,
            rounds = EXCLUDED.rounds,
            completed_at = EXCLUDED.completed_at
    `,
		req.DraftID,
		sqlutil.ToSqlString(req.LeagueID),
		sqlutil.ToSqlString(req.Season),
		sqlutil.ToSqlInt32NonZero(req.Teams),
		sqlutil.ToSqlInt32NonZero(req.Rounds),
		req.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}
	return nil
}

func (q *queries) replaceScores(ctx context.Context, draftID string, scores []models.TeamScore) error {
	if _, err := q.tx.ExecContext(ctx, `DELETE FROM archived_team_scores WHERE draft_id = $1`, draftID); err != nil {
		return fmt.Errorf("failed to clear previous scores: %w", err)
	}

	for _, score := range scores {
		subs, err := json.Marshal(subScores{
			Value:      score.Value,
			Positional: score.Positional,
			Balance:    score.Balance,
			Diversity:  score.Diversity,
			Bye:        score.Bye,
		})
		if err != nil {
			return fmt.Errorf("failed to marshal sub-scores: %w", err)
		}

		_, err = q.tx.ExecContext(ctx, `
            INSERT INTO archived_team_scores (draft_id, rank, owner_key, total, sub_scores)
            VALUES ($1, $2, $3, $4, $5)
        `,
			draftID,
			score.Rank,
			string(score.Owner),
			score.Total,
			pqtype.NullRawMessage{RawMessage: subs, Valid: len(subs) > 0},
		)
		if err != nil {
			return fmt.Errorf("failed to insert score for %s: %w", score.Owner, err)
		}
	}
	return nil
}

// GetScores loads a draft's archived score table, ranked best first.
func (r *Repository) GetScores(ctx context.Context, draftID string) ([]models.TeamScore, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT rank, owner_key, total, sub_scores
        FROM archived_team_scores
        WHERE draft_id = $1
        ORDER BY rank
    `, draftID)
	if err != nil {
		return nil, fmt.Errorf("failed to query scores: %w", err)
	}
	defer rows.Close()

	var scores []models.TeamScore
	for rows.Next() {
		var (
			score models.TeamScore
			owner string
			raw   pqtype.NullRawMessage
		)
		if err := rows.Scan(&score.Rank, &owner, &score.Total, &raw); err != nil {
			return nil, fmt.Errorf("failed to scan score row: %w", err)
		}
		score.Owner = models.OwnerKey(owner)

		if raw.Valid {
			var subs subScores
			if err := json.Unmarshal(raw.RawMessage, &subs); err != nil {
				return nil, fmt.Errorf("failed to unmarshal sub-scores: %w", err)
			}
			score.Value = subs.Value
			score.Positional = subs.Positional
			score.Balance = subs.Balance
			score.Diversity = subs.Diversity
			score.Bye = subs.Bye
		}
		scores = append(scores, score)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read score rows: %w", err)
	}
	return scores, nil
}

// ListDrafts returns archived draft headers, newest first.
func (r *Repository) ListDrafts(ctx context.Context) ([]ArchivedDraft, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT draft_id, league_id, season, teams, rounds, completed_at
        FROM archived_drafts
        ORDER BY completed_at DESC
    `)
	if err != nil {
		return nil, fmt.Errorf("failed to query drafts: %w", err)
	}
	defer rows.Close()

	var drafts []ArchivedDraft
	for rows.Next() {
		var (
			d        ArchivedDraft
			leagueID sql.NullString
			season   sql.NullString
			teams    sql.NullInt32
			rounds   sql.NullInt32
		)
		if err := rows.Scan(&d.DraftID, &leagueID, &season, &teams, &rounds, &d.CompletedAt); err != nil {
			return nil, fmt.Errorf("failed to scan draft row: %w", err)
		}
		d.LeagueID = sqlutil.FromSqlString(leagueID, "")
		d.Season = sqlutil.FromSqlString(season, "")
		d.Teams = sqlutil.FromSqlInt32(teams)
		d.Rounds = sqlutil.FromSqlInt32(rounds)
		drafts = append(drafts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read draft rows: %w", err)
	}
	return drafts, nil
}
