// Package scheduler keeps the order store fresh without polling when it
// cannot matter: ticks and foreground transitions only fire a refresh while
// the application is visible and the session is authenticated.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// DefaultInterval is the fixed polling period.
const DefaultInterval = 30 * time.Second

// OrderFetcher is the single refresh entry point; both triggers call it and
// the store does not distinguish between them.
type OrderFetcher interface {
	FetchOrders(ctx context.Context, statusFilter string) error
}

// AuthState is the read-only slice of the session gate the scheduler needs.
type AuthState interface {
	IsAuthenticated() bool
}

// Scheduler drives periodic and lifecycle-triggered order refreshes. Stop
// releases the timer and the lifecycle subscription together; neither may
// outlive the scheduler.
type Scheduler struct {
	interval  time.Duration
	fetcher   OrderFetcher
	auth      AuthState
	lifecycle *Lifecycle
	log       *zap.SugaredLogger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

func New(interval time.Duration, fetcher OrderFetcher, auth AuthState, lifecycle *Lifecycle, log *zap.SugaredLogger) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		interval:  interval,
		fetcher:   fetcher,
		auth:      auth,
		lifecycle: lifecycle,
		log:       log,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the polling loop. It returns immediately; refreshes run on
// the scheduler's own goroutine until Stop is called or ctx is cancelled.
func (s *Scheduler) Start(ctx context.Context) {
	go s.run(ctx)
}

// Stop tears the scheduler down deterministically: the ticker and the
// lifecycle subscription are released together, exactly once, and Stop
// blocks until the loop has exited.
func (s *Scheduler) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
	<-s.done
}

func (s *Scheduler) run(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	transitions, cancel := s.lifecycle.Subscribe()
	defer cancel()

	prev := s.lifecycle.State()
	for {
		select {
		case <-ctx.Done():
			s.log.Debugw("scheduler stopped", "reason", "context cancelled")
			return
		case <-s.stop:
			s.log.Debugw("scheduler stopped", "reason", "stop requested")
			return
		case <-ticker.C:
			if s.lifecycle.State() == StateActive && s.auth.IsAuthenticated() {
				s.refresh(ctx, "tick")
			}
		case next := <-transitions:
			cameToForeground := prev != StateActive && next == StateActive
			prev = next
			if cameToForeground && s.auth.IsAuthenticated() {
				s.refresh(ctx, "foreground")
			}
		}
	}
}

func (s *Scheduler) refresh(ctx context.Context, trigger string) {
	if err := s.fetcher.FetchOrders(ctx, ""); err != nil {
		// Already recorded in the store and routed through the dedup cache;
		// the trigger source is the only detail worth adding here.
		s.log.Debugw("scheduled refresh failed", "trigger", trigger, "error", err)
		return
	}
	s.log.Debugw("scheduled refresh completed", "trigger", trigger)
}
