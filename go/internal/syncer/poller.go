// Package syncer polls the platform pick feed and pushes changed pick lists
// into the advisor. The feed re-delivers the full list every time, so the
// poller only detects change; correctness under duplicates and reordering
// is the pipeline's job.
package syncer

import (
	"context"
	"fmt"
	"hash/fnv"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/mpetrick/draftcaddy/go/internal/models"
)

// FetchFunc retrieves the current full pick list.
type FetchFunc func(ctx context.Context) ([]models.Pick, error)

// Poller drives periodic pick syncs. A Wake call forces an immediate sync
// without waiting out the interval.
type Poller struct {
	fetch    FetchFunc
	onPicks  func([]models.Pick)
	clock    clockwork.Clock
	interval time.Duration
	logger   zerolog.Logger

	wakeCh   chan struct{}
	lastHash uint64
	synced   bool
}

// NewPoller builds a poller. onPicks fires only when the fetched list
// differs from the previous one.
func NewPoller(fetch FetchFunc, onPicks func([]models.Pick), clock clockwork.Clock, interval time.Duration, logger zerolog.Logger) *Poller {
	if interval <= 0 {
		interval = 5 * time.Second
	}
	return &Poller{
		fetch:    fetch,
		onPicks:  onPicks,
		clock:    clock,
		interval: interval,
		logger:   logger,
		wakeCh:   make(chan struct{}, 1),
	}
}

// Wake requests an immediate sync. Never blocks; a pending wake coalesces.
func (p *Poller) Wake() {
	select {
	case p.wakeCh <- struct{}{}:
	default:
	}
}

// Run polls until the context is cancelled. One timer is reused across
// iterations so repeated polls allocate nothing.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info().Dur("interval", p.interval).Msg("pick poller started")

	p.syncOnce(ctx)

	timer := p.clock.NewTimer(p.interval)
	defer stopAndDrainTimer(timer)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("pick poller shutting down")
			return ctx.Err()
		case <-timer.Chan():
			p.syncOnce(ctx)
			timer.Reset(p.interval)
		case <-p.wakeCh:
			stopAndDrainTimer(timer)
			p.syncOnce(ctx)
			timer.Reset(p.interval)
		}
	}
}

// syncOnce fetches the pick list and forwards it when changed. Fetch
// failures are logged and swallowed; the next tick retries.
func (p *Poller) syncOnce(ctx context.Context) {
	picks, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() == nil {
			p.logger.Warn().Err(err).Msg("pick sync failed")
		}
		return
	}

	h := hashPicks(picks)
	if p.synced && h == p.lastHash {
		return
	}
	p.synced = true
	p.lastHash = h

	p.logger.Info().Int("picks", len(picks)).Msg("pick list changed")
	p.onPicks(picks)
}

// hashPicks fingerprints a pick list independent of its order.
func hashPicks(picks []models.Pick) uint64 {
	var sum uint64
	for _, pick := range picks {
		h := fnv.New64a()
		fmt.Fprintf(h, "%d|%s|%s", pick.PickNo, pick.PlayerID, pick.PickedBy)
		sum += h.Sum64()
	}
	return sum ^ uint64(len(picks))
}

// stopAndDrainTimer safely stops a timer and drains its channel to prevent
// goroutine leaks.
func stopAndDrainTimer(timer clockwork.Timer) {
	if !timer.Stop() {
		select {
		case <-timer.Chan():
		default:
		}
	}
}
