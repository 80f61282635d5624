// Package advisor composes the full pipeline: board application, team
// aggregation, tip generation and ranking, and post-draft grading. Each
// recomputation runs over an immutable snapshot and publishes one result;
// the cooldown store is the only state carried across runs.
package advisor

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/mpetrick/draftcaddy/go/internal/board"
	"github.com/mpetrick/draftcaddy/go/internal/draftmath"
	"github.com/mpetrick/draftcaddy/go/internal/grade"
	"github.com/mpetrick/draftcaddy/go/internal/identity"
	"github.com/mpetrick/draftcaddy/go/internal/models"
	"github.com/mpetrick/draftcaddy/go/internal/rosterreq"
	"github.com/mpetrick/draftcaddy/go/internal/teamstate"
	"github.com/mpetrick/draftcaddy/go/internal/tips"
)

// Snapshot is one complete input state for a pipeline run. The service
// copies the board before mutating draft status, so callers can hand in the
// same slices on every call.
type Snapshot struct {
	Picks      []models.Pick
	Board      []models.BoardPlayer
	Config     models.DraftConfig
	Strategies map[models.Strategy]bool
}

// Result is the output of one pipeline run.
type Result struct {
	Tips   []models.Tip         `json:"tips"`
	Scores []models.TeamScore   `json:"scores,omitempty"`
	Board  []models.BoardPlayer `json:"board"`

	TeamsCount    int  `json:"teams_count"`
	CurrentPick   int  `json:"current_pick"`
	Round         int  `json:"round"`
	Distance      int  `json:"distance"`
	DistanceKnown bool `json:"distance_known"`
	Complete      bool `json:"complete"`

	ComputedAt time.Time `json:"computed_at"`
}

// UpdateFunc receives every published result.
type UpdateFunc func(Result)

// Service runs the pipeline and holds the latest result.
type Service struct {
	prioritizer *tips.Prioritizer
	clock       clockwork.Clock
	logger      zerolog.Logger

	mu        sync.RWMutex
	latest    *Result
	listeners []UpdateFunc
}

// New builds a service around a shared clock. The cooldown store lives for
// the service's lifetime so repeated tips stay suppressed across runs.
func New(clock clockwork.Clock, cfg tips.Config, logger zerolog.Logger) *Service {
	return &Service{
		prioritizer: tips.NewPrioritizer(tips.NewMemoryCooldownStore(), clock, cfg),
		clock:       clock,
		logger:      logger,
	}
}

// OnUpdate registers a listener invoked after every recomputation.
func (s *Service) OnUpdate(fn UpdateFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Latest returns the most recently published result.
func (s *Service) Latest() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return Result{}, false
	}
	return *s.latest, true
}

// Recompute runs the full pipeline over the snapshot and publishes the
// result. Safe to call from any goroutine; each run is independently
// consistent and the last write wins.
func (s *Service) Recompute(snap Snapshot) Result {
	result := s.compute(snap)

	s.mu.Lock()
	s.latest = &result
	listeners := make([]UpdateFunc, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	s.logger.Info().
		Int("picks", len(snap.Picks)).
		Int("tips", len(result.Tips)).
		Int("current_pick", result.CurrentPick).
		Bool("complete", result.Complete).
		Msg("pipeline recomputed")

	for _, fn := range listeners {
		fn(result)
	}
	return result
}

func (s *Service) compute(snap Snapshot) Result {
	boardCopy := make([]models.BoardPlayer, len(snap.Board))
	copy(boardCopy, snap.Board)

	teams := draftmath.TeamsCount(snap.Config, snap.Picks)
	board.ApplyPicks(boardCopy, snap.Picks, teams)
	resolve := board.NewIndex(boardCopy).Resolver()

	req := rosterreq.Resolve(snap.Config.RosterPositions)
	states := teamstate.Aggregate(snap.Picks, teams, resolve)

	viewer := viewerKey(snap.Config)
	currentPick := draftmath.CurrentPickNumber(snap.Picks) + 1
	round := draftmath.RoundOf(currentPick, teams)
	distance, distanceKnown := draftmath.PicksUntilNextTurn(snap.Picks, viewer, snap.Config.ViewerSlot, teams)

	ctx := tips.Context{
		Picks:         snap.Picks,
		Board:         boardCopy,
		TeamsCount:    teams,
		CurrentPick:   currentPick,
		Round:         round,
		Viewer:        viewer,
		ViewerSlot:    snap.Config.ViewerSlot,
		Distance:      distance,
		DistanceKnown: distanceKnown,
		Requirements:  req,
		States:        states,
		Strategies:    snap.Strategies,
		Resolve:       resolve,
	}
	ranked := s.prioritizer.Rank(tips.Generate(ctx), ctx)

	result := Result{
		Tips:          ranked,
		Board:         boardCopy,
		TeamsCount:    teams,
		CurrentPick:   currentPick,
		Round:         round,
		Distance:      distance,
		DistanceKnown: distanceKnown,
		ComputedAt:    s.clock.Now(),
	}
	if draftmath.IsDraftComplete(snap.Picks, teams, snap.Config.Rounds) {
		result.Complete = true
		result.Scores = grade.Compute(snap.Picks, teams, req, resolve)
	}
	return result
}

// viewerKey resolves the viewer's canonical team key from configuration.
func viewerKey(cfg models.DraftConfig) models.OwnerKey {
	if cfg.ViewerUserID != "" {
		return identity.UserKey(cfg.ViewerUserID)
	}
	if cfg.ViewerSlot > 0 {
		return identity.SlotKey(cfg.ViewerSlot)
	}
	return models.OwnerUnknown
}
