package countdown

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// DefaultInterval is the refresh period of every countdown.
const DefaultInterval = time.Second

// ErrAlreadyStarted is returned by Start when the scheduler is running.
var ErrAlreadyStarted = errors.New("countdown: scheduler already started")

// Scheduler owns one periodic timer per renderer. Timers live from
// Start until Stop or until the parent context is cancelled.
type Scheduler struct {
	renderers []Renderer
	interval  time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewScheduler creates a scheduler for the given renderers. A
// non-positive interval falls back to DefaultInterval.
func NewScheduler(interval time.Duration, renderers ...Renderer) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{renderers: renderers, interval: interval}
}

// Start renders every countdown once and then arms an independent
// ticker for each of them. It does not block.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		return ErrAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)

	for _, r := range s.renderers {
		r.Render()
	}
	for _, r := range s.renderers {
		g.Go(func() error {
			return s.run(gctx, r)
		})
	}

	s.cancel = cancel
	s.group = g
	return nil
}

func (s *Scheduler) run(ctx context.Context, r Renderer) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			r.Render()
		}
	}
}

// Stop cancels every timer and waits for them to exit. Calling Stop on
// a scheduler that is not running is a no-op. A stopped scheduler can
// be started again.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	cancel, g := s.cancel, s.group
	s.cancel, s.group = nil, nil
	s.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	_ = g.Wait()
}

// Running reports whether the timers are armed.
func (s *Scheduler) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cancel != nil
}
