package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mpetrick/draftcaddy/go/internal/board"
	"github.com/mpetrick/draftcaddy/go/internal/dbconfig"
)

const boardSchema = `
CREATE TABLE IF NOT EXISTS board_players (
    normalized_name TEXT PRIMARY KEY,
    name            TEXT NOT NULL,
    position        TEXT NOT NULL,
    team_abbr       TEXT,
    bye_week        INT,
    tier            INT,
    rank            DOUBLE PRECISION,
    market_rank     DOUBLE PRECISION,
    sos             TEXT
)
`

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: import_board <rankings.csv>")
		os.Exit(1)
	}

	// 1) Parse the rankings CSV
	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "open csv: %v\n", err)
		os.Exit(1)
	}
	players, err := board.ParseBoard(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "parse csv: %v\n", err)
		os.Exit(1)
	}

	// 2) Connect to DB
	cfg := dbconfig.NewConfigFromEnv()
	pool, err := pgxpool.New(ctx, cfg.DSN())
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect error: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if _, err := pool.Exec(ctx, boardSchema); err != nil {
		fmt.Fprintf(os.Stderr, "ensure schema: %v\n", err)
		os.Exit(1)
	}

	// 3) Upsert board rows
	total, inserted, updated, errs := len(players), 0, 0, 0
	for _, p := range players {
		tag, err := pool.Exec(ctx, `
            INSERT INTO board_players (
              normalized_name, name, position, team_abbr,
              bye_week, tier, rank, market_rank, sos
            ) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
            ON CONFLICT (normalized_name) DO UPDATE SET
              name = EXCLUDED.name,
              position = EXCLUDED.position,
              team_abbr = EXCLUDED.team_abbr,
              bye_week = EXCLUDED.bye_week,
              tier = EXCLUDED.tier,
              rank = EXCLUDED.rank,
              market_rank = EXCLUDED.market_rank,
              sos = EXCLUDED.sos
        `, p.NormalizedName, p.Name, string(p.Position), p.TeamAbbr,
			p.ByeWeek, p.Tier, p.Rank, p.MarketRank, p.SOS)
		if err != nil {
			errs++
			continue
		}
		if tag.RowsAffected() == 1 {
			inserted++
		} else {
			updated++
		}
	}
	fmt.Printf(
		"Board import: total=%d inserted=%d updated=%d errors=%d\n",
		total, inserted, updated, errs,
	)
}
