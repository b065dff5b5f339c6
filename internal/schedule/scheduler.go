// Package schedule runs timer-driven tasks that can be cancelled through a
// handle: the health poll interval and notification dismissal both use it.
package schedule

import (
	"sync"
	"time"
)

// Handle controls a single scheduled task.
type Handle struct {
	mu        sync.Mutex
	cancelled bool
	done      chan struct{}
	timer     *time.Timer
	owner     *Scheduler
}

// Cancel stops the task. No run starts after Cancel returns; a run that is
// already executing finishes. Cancel is safe to call more than once.
func (h *Handle) Cancel() {
	h.mu.Lock()
	if h.cancelled {
		h.mu.Unlock()
		return
	}
	h.cancelled = true
	if h.timer != nil {
		h.timer.Stop()
	}
	close(h.done)
	h.mu.Unlock()

	if h.owner != nil {
		h.owner.forget(h)
	}
}

// Cancelled reports whether Cancel has been called.
func (h *Handle) Cancelled() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.cancelled
}

// Done is closed when the task is cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// runIfActive invokes fn unless the handle was cancelled.
func (h *Handle) runIfActive(fn func()) bool {
	h.mu.Lock()
	active := !h.cancelled
	h.mu.Unlock()
	if active {
		fn()
	}
	return active
}

// Scheduler tracks outstanding tasks so they can be cancelled together.
type Scheduler struct {
	mu      sync.Mutex
	handles map[*Handle]struct{}
	stopped bool
}

// New creates an empty scheduler.
func New() *Scheduler {
	return &Scheduler{
		handles: make(map[*Handle]struct{}),
	}
}

// After runs fn once after delay.
func (s *Scheduler) After(delay time.Duration, fn func()) *Handle {
	h := s.newHandle()
	if h.Cancelled() {
		return h
	}

	h.mu.Lock()
	h.timer = time.AfterFunc(delay, func() {
		if h.runIfActive(fn) {
			s.forget(h)
		}
	})
	h.mu.Unlock()

	return h
}

// Every runs fn immediately and then once per interval until cancelled.
// Runs never overlap: ticks that arrive while fn is executing are dropped.
func (s *Scheduler) Every(interval time.Duration, fn func()) *Handle {
	h := s.newHandle()
	if h.Cancelled() {
		return h
	}

	go func() {
		if !h.runIfActive(fn) {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				if !h.runIfActive(fn) {
					return
				}
			}
		}
	}()

	return h
}

// Pending returns the number of tasks that have not completed or been cancelled.
func (s *Scheduler) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.handles)
}

// Stop cancels every outstanding task. Tasks scheduled afterwards are
// returned already cancelled.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	handles := make([]*Handle, 0, len(s.handles))
	for h := range s.handles {
		handles = append(handles, h)
	}
	s.mu.Unlock()

	for _, h := range handles {
		h.Cancel()
	}
}

func (s *Scheduler) newHandle() *Handle {
	h := &Handle{
		done:  make(chan struct{}),
		owner: s,
	}

	s.mu.Lock()
	stopped := s.stopped
	if !stopped {
		s.handles[h] = struct{}{}
	}
	s.mu.Unlock()

	if stopped {
		h.owner = nil
		h.Cancel()
	}
	return h
}

func (s *Scheduler) forget(h *Handle) {
	s.mu.Lock()
	delete(s.handles, h)
	s.mu.Unlock()
}
