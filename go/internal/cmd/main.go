package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mpetrick/draftcaddy/go/clients/sleeper"
	"github.com/mpetrick/draftcaddy/go/internal/advisor"
	"github.com/mpetrick/draftcaddy/go/internal/archive"
	"github.com/mpetrick/draftcaddy/go/internal/board"
	"github.com/mpetrick/draftcaddy/go/internal/gateway"
	"github.com/mpetrick/draftcaddy/go/internal/models"
	"github.com/mpetrick/draftcaddy/go/internal/syncer"
	"github.com/mpetrick/draftcaddy/go/internal/tips"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Debug().Err(err).Msg("no .env file loaded")
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	config, err := loadConfig(getEnv("CONFIG_PATH", "config.yaml"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	config.applyEnvOverrides()

	if config.Draft.DraftID == "" && config.Draft.ViewerUserID == "" && config.Draft.ViewerUsername == "" {
		log.Fatal().Msg("draft_id or a viewer identity is required (config file or DRAFT_ID/VIEWER_USERNAME)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, config); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("draftcaddy exited")
	}
}

func run(ctx context.Context, config *Config) error {
	client := sleeper.NewClient()
	clock := clockwork.NewRealClock()

	if config.Draft.DraftID == "" {
		if err := discoverDraft(ctx, client, config); err != nil {
			return err
		}
	}

	draftCfg, err := resolveDraftConfig(ctx, client, config)
	if err != nil {
		return err
	}

	players, err := loadBoard(ctx, client, config)
	if err != nil {
		return err
	}

	svc := advisor.New(clock, tips.Config{}, log.Logger)

	cm := gateway.NewConnectionManager(gateway.DefaultConnectionConfig())
	go cm.Start(ctx)

	svc.OnUpdate(func(result advisor.Result) {
		events, err := gateway.EventsForResult(result)
		if err != nil {
			log.Error().Err(err).Msg("failed to build events")
			return
		}
		for _, event := range events {
			cm.Broadcast(event)
		}
	})

	if config.Archive.Enabled {
		if err := setupArchiving(ctx, svc, config); err != nil {
			return err
		}
	}

	strategies := config.strategies()
	fetch := func(ctx context.Context) ([]models.Pick, error) {
		wire, err := client.GetDraftPicks(ctx, config.Draft.DraftID)
		if err != nil {
			return nil, err
		}
		return sleeper.ToPicks(wire), nil
	}
	onPicks := func(picks []models.Pick) {
		svc.Recompute(advisor.Snapshot{
			Picks:      picks,
			Board:      players,
			Config:     draftCfg,
			Strategies: strategies,
		})
	}
	poller := syncer.NewPoller(fetch, onPicks, clock, time.Duration(config.Sync.IntervalSeconds)*time.Second, log.Logger)

	handler := gateway.NewHandler(svc, cm, poller.Wake)
	server := setupServer(handler)

	go func() {
		if err := poller.Run(ctx); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("poller stopped")
		}
	}()

	go func() {
		log.Info().Str("addr", server.Addr).Msg("draftcaddy listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// discoverDraft fills in the draft id by searching the viewer's drafts and
// their preferred league's drafts for the season, newest first.
func discoverDraft(ctx context.Context, client *sleeper.Client, config *Config) error {
	viewerID := config.Draft.ViewerUserID
	if viewerID == "" {
		user, err := client.GetUser(ctx, config.Draft.ViewerUsername)
		if err != nil {
			return err
		}
		viewerID = user.UserID
		config.Draft.ViewerUserID = viewerID
	}

	season := config.Draft.Season
	if season == "" {
		season = strconv.Itoa(time.Now().Year())
	}

	draft, err := client.DiscoverDraft(ctx, viewerID, season)
	if err != nil {
		return err
	}
	config.Draft.DraftID = draft.DraftID
	if config.Draft.LeagueID == "" {
		config.Draft.LeagueID = draft.LeagueID
	}
	log.Info().Str("draft_id", draft.DraftID).Str("season", season).Msg("discovered draft")
	return nil
}

// resolveDraftConfig pulls the league/draft shape from the platform and lets
// explicit config values override it.
func resolveDraftConfig(ctx context.Context, client *sleeper.Client, config *Config) (models.DraftConfig, error) {
	viewerID := config.Draft.ViewerUserID
	if viewerID == "" && config.Draft.ViewerUsername != "" {
		user, err := client.GetUser(ctx, config.Draft.ViewerUsername)
		if err != nil {
			log.Warn().Err(err).Str("username", config.Draft.ViewerUsername).Msg("could not resolve viewer by username")
		} else {
			viewerID = user.UserID
			log.Info().Str("username", config.Draft.ViewerUsername).Str("user_id", viewerID).Msg("resolved viewer")
		}
	}

	draft, err := client.GetDraft(ctx, config.Draft.DraftID)
	if err != nil {
		log.Warn().Err(err).Msg("could not load draft settings, relying on fallbacks")
		draft = nil
	}

	var league *sleeper.League
	leagueID := config.Draft.LeagueID
	if leagueID == "" && draft != nil {
		leagueID = draft.LeagueID
	}
	if leagueID != "" {
		league, err = client.GetLeague(ctx, leagueID)
		if err != nil {
			log.Warn().Err(err).Str("league_id", leagueID).Msg("could not load league, relying on fallbacks")
			league = nil
		}
	}

	// Usernames that resolve nowhere may still match a league member's
	// display name.
	if viewerID == "" && config.Draft.ViewerUsername != "" && leagueID != "" {
		users, err := client.GetLeagueUsers(ctx, leagueID)
		if err != nil {
			log.Warn().Err(err).Str("league_id", leagueID).Msg("could not load league users")
		} else if member := sleeper.FindLeagueUser(users, config.Draft.ViewerUsername); member != nil {
			viewerID = member.UserID
			log.Info().Str("display_name", member.DisplayName).Str("user_id", viewerID).Msg("resolved viewer from league members")
		}
	}

	draftCfg := sleeper.ToDraftConfig(draft, league, viewerID)
	if config.Draft.Teams > 0 {
		draftCfg.TeamsCount = config.Draft.Teams
	}
	if config.Draft.Rounds > 0 {
		draftCfg.Rounds = config.Draft.Rounds
	}
	if config.Draft.ViewerSlot > 0 {
		draftCfg.ViewerSlot = config.Draft.ViewerSlot
	}
	if len(config.Draft.RosterPositions) > 0 {
		draftCfg.RosterPositions = config.Draft.RosterPositions
	}
	return draftCfg, nil
}

// loadBoard parses the rankings CSV and enriches it with platform metadata.
// A missing board is not fatal: picks still sync, board tips are skipped.
func loadBoard(ctx context.Context, client *sleeper.Client, config *Config) ([]models.BoardPlayer, error) {
	if config.Board.CSVPath == "" {
		log.Warn().Msg("no board csv configured, running without rankings")
		return nil, nil
	}

	f, err := os.Open(config.Board.CSVPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	players, err := board.ParseBoard(f)
	if err != nil {
		return nil, err
	}
	log.Info().Int("players", len(players)).Str("path", config.Board.CSVPath).Msg("board loaded")

	metas, err := client.GetPlayers(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("player metadata fetch failed, board stays unenriched")
		return players, nil
	}
	board.Enrich(players, sleeper.ToMetas(metas), time.Now())
	log.Info().Int("metas", len(metas)).Msg("board enriched")
	return players, nil
}

// setupArchiving persists the score table the first time the draft
// completes.
func setupArchiving(ctx context.Context, svc *advisor.Service, config *Config) error {
	db, err := setupDatabase()
	if err != nil {
		return err
	}
	repo := archive.NewRepository(db)
	if err := repo.EnsureSchema(ctx); err != nil {
		return err
	}

	var once sync.Once
	svc.OnUpdate(func(result advisor.Result) {
		if !result.Complete || len(result.Scores) == 0 {
			return
		}
		once.Do(func() {
			req := archive.ArchiveDraftRequest{
				DraftID:     config.Draft.DraftID,
				LeagueID:    config.Draft.LeagueID,
				Season:      config.Draft.Season,
				Teams:       result.TeamsCount,
				Rounds:      estimateRounds(result),
				CompletedAt: result.ComputedAt,
				Scores:      result.Scores,
			}
			if err := repo.ArchiveDraft(ctx, req); err != nil {
				log.Error().Err(err).Msg("failed to archive draft")
				return
			}
			log.Info().Str("draft_id", req.DraftID).Int("teams", len(req.Scores)).Msg("draft archived")
		})
	})
	return nil
}

func estimateRounds(result advisor.Result) int {
	if result.TeamsCount <= 0 {
		return 0
	}
	picksMade := result.CurrentPick - 1
	if picksMade <= 0 {
		return 0
	}
	return (picksMade + result.TeamsCount - 1) / result.TeamsCount
}
