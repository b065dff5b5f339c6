package notify

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shhac/featuredesk/internal/logging"
	"github.com/shhac/featuredesk/internal/schedule"
)

// fastTimings shrinks the 100ms/3s/300ms lifecycle by a factor of 100.
func fastTimings() Timings {
	return Timings{
		EnterDelay: time.Millisecond,
		Display:    30 * time.Millisecond,
		Exit:       3 * time.Millisecond,
	}
}

func newTestCenter(t *testing.T, timings Timings) *Center {
	t.Helper()
	sched := schedule.New()
	t.Cleanup(sched.Stop)
	return NewCenter(sched, timings, logging.NewNopLogger())
}

func TestDefaultTimings(t *testing.T) {
	tm := DefaultTimings()
	assert.Equal(t, 3300*time.Millisecond, tm.Display+tm.Exit)
	assert.Equal(t, 100*time.Millisecond, tm.EnterDelay)
}

func TestNotify_LifecycleEndsInRemoval(t *testing.T) {
	c := newTestCenter(t, fastTimings())

	var mu sync.Mutex
	var phases []Phase
	c.SetOnChange(func(ns []Notification) {
		mu.Lock()
		defer mu.Unlock()
		if len(ns) == 1 {
			phases = append(phases, ns[0].Phase)
		}
	})

	id := c.Notify("Request successful!", KindSuccess)
	require.NotEmpty(t, id)

	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Request successful!", active[0].Message)
	assert.Equal(t, KindSuccess, active[0].Kind)

	assert.Eventually(t, func() bool { return len(c.Active()) == 0 }, time.Second, time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []Phase{PhaseEntering, PhaseVisible, PhaseLeaving}, phases)
}

func TestNotify_RemovedWithinDisplayPlusExit(t *testing.T) {
	tm := fastTimings()
	c := newTestCenter(t, tm)

	start := time.Now()
	c.Notify("Request failed", KindError)

	deadline := tm.Display + tm.Exit
	assert.Eventually(t, func() bool { return len(c.Active()) == 0 }, deadline+200*time.Millisecond, time.Millisecond)
	assert.GreaterOrEqual(t, time.Since(start), deadline)
}

func TestNotify_IndependentLifetimes(t *testing.T) {
	tm := Timings{EnterDelay: time.Millisecond, Display: 40 * time.Millisecond, Exit: 5 * time.Millisecond}
	c := newTestCenter(t, tm)

	first := c.Notify("first", KindInfo)
	time.Sleep(20 * time.Millisecond)
	second := c.Notify("second", KindInfo)

	active := c.Active()
	require.Len(t, active, 2, "notifications stack rather than queue")
	assert.Equal(t, first, active[0].ID)
	assert.Equal(t, second, active[1].ID)

	require.Eventually(t, func() bool {
		a := c.Active()
		return len(a) == 1 && a[0].ID == second
	}, time.Second, time.Millisecond, "first expires while second is still shown")

	assert.Eventually(t, func() bool { return len(c.Active()) == 0 }, time.Second, time.Millisecond)
}

func TestNotify_DefaultsToInfo(t *testing.T) {
	c := newTestCenter(t, fastTimings())
	c.Notify("hello", "")
	active := c.Active()
	require.Len(t, active, 1)
	assert.Equal(t, KindInfo, active[0].Kind)
}

func TestClose_DropsEverything(t *testing.T) {
	c := newTestCenter(t, DefaultTimings())
	c.Notify("one", KindInfo)
	c.Notify("two", KindError)
	require.Len(t, c.Active(), 2)

	c.Close()
	assert.Empty(t, c.Active())
}
