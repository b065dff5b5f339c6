// Package health keeps the server status indicator current by probing the
// feature API on a fixed interval.
package health

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/shhac/featuredesk/internal/domain"
	"github.com/shhac/featuredesk/internal/schedule"
)

// DefaultInterval is the time between scheduled probes.
const DefaultInterval = 30 * time.Second

// Checker probes the API once.
type Checker interface {
	Check(ctx context.Context) domain.ServerStatus
}

// Poller runs Checker on a schedule and publishes the newest status.
type Poller struct {
	checker   Checker
	scheduler *schedule.Scheduler
	interval  time.Duration
	logger    *slog.Logger

	mu      sync.RWMutex
	current domain.ServerStatus
	handle  *schedule.Handle
	stopped bool

	// Callback for status changes
	onStatusChange func(status domain.ServerStatus)
}

// NewPoller creates a poller. It does nothing until Start is called.
func NewPoller(checker Checker, scheduler *schedule.Scheduler, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Poller{
		checker:   checker,
		scheduler: scheduler,
		interval:  interval,
		logger:    logger,
		current:   domain.ServerStatus{Message: domain.StatusMessageChecking},
	}
}

// SetStatusCallback registers a function called whenever a newer status is applied.
func (p *Poller) SetStatusCallback(fn func(status domain.ServerStatus)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.onStatusChange = fn
}

// Start probes immediately and then once per interval. Calling Start on a
// running poller is a no-op.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.handle != nil && !p.handle.Cancelled() {
		return
	}
	p.stopped = false
	p.handle = p.scheduler.Every(p.interval, p.poll)
	p.logger.Debug("health poller started", slog.Duration("interval", p.interval))
}

// Stop cancels future probes. A probe already in flight is discarded when
// it returns.
func (p *Poller) Stop() {
	p.mu.Lock()
	handle := p.handle
	p.handle = nil
	p.stopped = true
	p.mu.Unlock()

	if handle != nil {
		handle.Cancel()
		p.logger.Debug("health poller stopped")
	}
}

// Refresh runs an extra probe outside the interval without blocking. It is
// scheduled like the interval probes, so stopping the scheduler covers it.
func (p *Poller) Refresh() {
	p.scheduler.After(0, p.poll)
}

// Status returns the most recently applied status.
func (p *Poller) Status() domain.ServerStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.current
}

func (p *Poller) poll() {
	ctx, cancel := context.WithTimeout(context.Background(), p.interval)
	defer cancel()

	p.apply(p.checker.Check(ctx))
}

// apply publishes status unless a probe issued later has already reported.
func (p *Poller) apply(status domain.ServerStatus) bool {
	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		p.logger.Debug("discarding health result after stop")
		return false
	}
	if !status.NewerThan(p.current) {
		p.mu.Unlock()
		p.logger.Debug("discarding stale health result",
			slog.Time("requested_at", status.RequestedAt),
		)
		return false
	}
	changed := status.Online != p.current.Online || status.Message != p.current.Message
	p.current = status
	callback := p.onStatusChange
	p.mu.Unlock()

	if changed {
		p.logger.Info("server status changed",
			slog.Bool("online", status.Online),
			slog.String("message", status.Message),
		)
	}

	if callback != nil {
		callback(status)
	}
	return true
}
