package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingFetcher struct {
	calls atomic.Int64
}

func (f *countingFetcher) FetchOrders(ctx context.Context, statusFilter string) error {
	f.calls.Add(1)
	return nil
}

type fakeAuth struct {
	authed atomic.Bool
}

func (a *fakeAuth) IsAuthenticated() bool { return a.authed.Load() }

func TestTimerTriggerFiresWhenForegroundAndAuthenticated(t *testing.T) {
	fetcher := &countingFetcher{}
	auth := &fakeAuth{}
	auth.authed.Store(true)
	lifecycle := NewLifecycle(StateActive)

	s := New(20*time.Millisecond, fetcher, auth, lifecycle, zap.NewNop().Sugar())
	s.Start(context.Background())
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return fetcher.calls.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestNoTriggerFiresWhenUnauthenticated(t *testing.T) {
	fetcher := &countingFetcher{}
	auth := &fakeAuth{} // unauthenticated
	lifecycle := NewLifecycle(StateBackground)

	s := New(20*time.Millisecond, fetcher, auth, lifecycle, zap.NewNop().Sugar())
	s.Start(context.Background())
	defer s.Stop()

	// Foreground transition while unauthenticated must be a no-op too.
	lifecycle.SetState(StateActive)

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, fetcher.calls.Load())
}

func TestTimerIsNoOpWhileBackgrounded(t *testing.T) {
	fetcher := &countingFetcher{}
	auth := &fakeAuth{}
	auth.authed.Store(true)
	lifecycle := NewLifecycle(StateBackground)

	s := New(20*time.Millisecond, fetcher, auth, lifecycle, zap.NewNop().Sugar())
	s.Start(context.Background())
	defer s.Stop()

	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, fetcher.calls.Load())
}

func TestForegroundTransitionFiresExactlyOnce(t *testing.T) {
	fetcher := &countingFetcher{}
	auth := &fakeAuth{}
	lifecycle := NewLifecycle(StateBackground)

	// Long interval so only the lifecycle trigger can fire.
	s := New(time.Hour, fetcher, auth, lifecycle, zap.NewNop().Sugar())
	s.Start(context.Background())
	defer s.Stop()
	time.Sleep(10 * time.Millisecond) // let the loop subscribe

	auth.authed.Store(true)
	lifecycle.SetState(StateActive)

	assert.Eventually(t, func() bool {
		return fetcher.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)

	// Staying active is not a transition.
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, int64(1), fetcher.calls.Load())
}

func TestInactiveToActiveCountsAsForegroundTransition(t *testing.T) {
	fetcher := &countingFetcher{}
	auth := &fakeAuth{}
	auth.authed.Store(true)
	lifecycle := NewLifecycle(StateActive)

	s := New(time.Hour, fetcher, auth, lifecycle, zap.NewNop().Sugar())
	s.Start(context.Background())
	defer s.Stop()
	time.Sleep(10 * time.Millisecond) // let the loop subscribe

	lifecycle.SetState(StateInactive)
	lifecycle.SetState(StateActive)

	assert.Eventually(t, func() bool {
		return fetcher.calls.Load() == 1
	}, time.Second, 5*time.Millisecond)
}

func TestStopReleasesTriggersAndIsIdempotent(t *testing.T) {
	fetcher := &countingFetcher{}
	auth := &fakeAuth{}
	auth.authed.Store(true)
	lifecycle := NewLifecycle(StateBackground)

	s := New(10*time.Millisecond, fetcher, auth, lifecycle, zap.NewNop().Sugar())
	s.Start(context.Background())
	s.Stop()
	s.Stop() // second Stop must not panic or block

	before := fetcher.calls.Load()
	lifecycle.SetState(StateActive)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, before, fetcher.calls.Load(), "no trigger may fire after Stop")
}

func TestContextCancellationStopsLoop(t *testing.T) {
	fetcher := &countingFetcher{}
	auth := &fakeAuth{}
	lifecycle := NewLifecycle(StateActive)

	ctx, cancel := context.WithCancel(context.Background())
	s := New(10*time.Millisecond, fetcher, auth, lifecycle, zap.NewNop().Sugar())
	s.Start(ctx)
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("scheduler loop did not exit on context cancellation")
	}
}
