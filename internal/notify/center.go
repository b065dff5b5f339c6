// Package notify manages transient toast notifications. Each notification
// has its own timer-driven lifetime; there is no queue.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/shhac/featuredesk/internal/schedule"
)

// Kind selects the notification styling.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Phase is where a notification is in its lifecycle.
type Phase int

const (
	PhaseEntering Phase = iota // created, not yet slid in
	PhaseVisible               // fully shown
	PhaseLeaving               // exit transition running
)

// Default lifecycle timings.
const (
	DefaultEnterDelay = 100 * time.Millisecond
	DefaultDisplay    = 3 * time.Second
	DefaultExit       = 300 * time.Millisecond
)

// Timings controls the notification lifecycle.
type Timings struct {
	EnterDelay time.Duration // creation -> visible
	Display    time.Duration // creation -> leaving
	Exit       time.Duration // leaving -> removed
}

// DefaultTimings returns the standard 100ms / 3s / 300ms lifecycle.
func DefaultTimings() Timings {
	return Timings{
		EnterDelay: DefaultEnterDelay,
		Display:    DefaultDisplay,
		Exit:       DefaultExit,
	}
}

// Notification is a snapshot of one toast.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	Phase     Phase
	CreatedAt time.Time
}

type entry struct {
	Notification
	timers []*schedule.Handle
}

// Center owns the active notifications.
type Center struct {
	scheduler *schedule.Scheduler
	timings   Timings
	logger    *slog.Logger

	mu       sync.Mutex
	active   map[string]*entry
	order    []string
	onChange func([]Notification)
}

// NewCenter creates a notification center using scheduler for lifetimes.
func NewCenter(scheduler *schedule.Scheduler, timings Timings, logger *slog.Logger) *Center {
	return &Center{
		scheduler: scheduler,
		timings:   timings,
		logger:    logger,
		active:    make(map[string]*entry),
	}
}

// SetOnChange registers a callback that receives a snapshot after every
// lifecycle transition.
func (c *Center) SetOnChange(fn func([]Notification)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = fn
}

// Notify shows message and schedules its dismissal. It returns the id.
func (c *Center) Notify(message string, kind Kind) string {
	if kind == "" {
		kind = KindInfo
	}

	e := &entry{Notification: Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      kind,
		Phase:     PhaseEntering,
		CreatedAt: time.Now(),
	}}
	id := e.ID

	c.mu.Lock()
	c.active[id] = e
	c.order = append(c.order, id)
	c.mu.Unlock()

	c.logger.Debug("notification shown",
		slog.String("id", id),
		slog.String("kind", string(kind)),
		slog.String("message", message),
	)
	c.publish()

	// Timers start after the entering snapshot is published so listeners
	// always observe the phases in order.
	timers := []*schedule.Handle{
		c.scheduler.After(c.timings.EnterDelay, func() { c.setPhase(id, PhaseVisible) }),
		c.scheduler.After(c.timings.Display, func() { c.setPhase(id, PhaseLeaving) }),
		c.scheduler.After(c.timings.Display+c.timings.Exit, func() { c.remove(id) }),
	}

	c.mu.Lock()
	if _, ok := c.active[id]; ok {
		e.timers = timers
		c.mu.Unlock()
	} else {
		c.mu.Unlock()
		for _, h := range timers {
			h.Cancel()
		}
	}
	return id
}

// Active returns the current notifications in creation order.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Close cancels every pending lifecycle timer and drops all notifications.
func (c *Center) Close() {
	c.mu.Lock()
	for _, e := range c.active {
		for _, h := range e.timers {
			h.Cancel()
		}
	}
	c.active = make(map[string]*entry)
	c.order = nil
	c.mu.Unlock()

	c.publish()
}

func (c *Center) setPhase(id string, phase Phase) {
	c.mu.Lock()
	e, ok := c.active[id]
	if !ok || e.Phase >= phase {
		c.mu.Unlock()
		return
	}
	e.Phase = phase
	c.mu.Unlock()

	c.publish()
}

func (c *Center) remove(id string) {
	c.mu.Lock()
	if _, ok := c.active[id]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.active, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	c.mu.Unlock()

	c.logger.Debug("notification removed", slog.String("id", id))
	c.publish()
}

func (c *Center) publish() {
	c.mu.Lock()
	callback := c.onChange
	snapshot := c.snapshotLocked()
	c.mu.Unlock()

	if callback != nil {
		callback(snapshot)
	}
}

func (c *Center) snapshotLocked() []Notification {
	out := make([]Notification, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.active[id].Notification)
	}
	return out
}
