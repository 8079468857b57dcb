package notify

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTimer struct {
	at      time.Time
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	was := !t.stopped && !t.fired
	t.stopped = true
	return was
}

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{at: c.now.Add(d), f: f}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves time forward and runs due timers, including stopped ones
// that a real timer could have already started before Stop.
func (c *fakeClock) Advance(d time.Duration, fireStopped bool) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	var due []*fakeTimer
	for _, t := range c.timers {
		if t.fired || t.at.After(c.now) {
			continue
		}
		if t.stopped && !fireStopped {
			continue
		}
		t.fired = true
		due = append(due, t)
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

func newTestCenter() (*Center, *fakeClock) {
	clk := newFakeClock()
	return NewCenter(WithClock(clk)), clk
}

func messages(ns []Notification) []string {
	out := make([]string, len(ns))
	for i, n := range ns {
		out[i] = n.Message
	}
	return out
}

func TestShow_AppendsInCallOrder(t *testing.T) {
	c, _ := newTestCenter()

	c.Show("first", KindSuccess)
	c.Show("second", KindError)
	c.Show("first", KindSuccess)

	active := c.Active()
	assert.Equal(t, []string{"first", "second", "first"}, messages(active))
	assert.NotEqual(t, active[0].ID, active[2].ID)
}

func TestShow_ExpiresAfterTTL(t *testing.T) {
	c, clk := newTestCenter()

	n := c.Show("saved", KindSuccess)
	require.NotEmpty(t, n.ID)

	clk.Advance(4999*time.Millisecond, false)
	assert.Len(t, c.Active(), 1)

	clk.Advance(time.Millisecond, false)
	assert.Empty(t, c.Active())
}

func TestShow_EachExpiresIndependently(t *testing.T) {
	c, clk := newTestCenter()

	c.Show("a", KindInfo)
	clk.Advance(2*time.Second, false)
	c.Show("b", KindInfo)

	clk.Advance(3*time.Second, false)
	assert.Equal(t, []string{"b"}, messages(c.Active()))

	clk.Advance(2*time.Second, false)
	assert.Empty(t, c.Active())
}

func TestShow_UnknownKindFallsBackToInfo(t *testing.T) {
	c, _ := newTestCenter()

	assert.Equal(t, KindInfo, c.Show("x", Kind("bogus")).Kind)
	assert.Equal(t, KindInfo, c.Show("y", "").Kind)
	assert.Equal(t, KindWarning, c.Show("z", Kind("WARNING")).Kind)
}

func TestShow_EmptyMessageIgnored(t *testing.T) {
	c, _ := newTestCenter()

	n := c.Show("  ", KindError)
	assert.Equal(t, Notification{}, n)
	assert.Empty(t, c.Active())
}

func TestDismiss_BeforeTimer(t *testing.T) {
	c, clk := newTestCenter()

	a := c.Show("a", KindInfo)
	b := c.Show("b", KindInfo)

	assert.True(t, c.Dismiss(a.ID))
	assert.False(t, c.Dismiss(a.ID))
	assert.Equal(t, []string{"b"}, messages(c.Active()))

	// A timer that fires after the dismiss must not disturb the stack.
	require.NotPanics(t, func() { clk.Advance(5*time.Second, true) })
	assert.Empty(t, c.Active())
	assert.False(t, c.Dismiss(b.ID))
}

func TestDismiss_UnknownID(t *testing.T) {
	c, _ := newTestCenter()
	assert.False(t, c.Dismiss("nope"))
}

func TestClose_StopsTimers(t *testing.T) {
	c, clk := newTestCenter()
	c.Show("a", KindInfo)
	c.Show("b", KindInfo)

	c.Close()
	for _, tm := range clk.timers {
		assert.True(t, tm.stopped)
	}
	assert.Empty(t, c.Active())
	assert.Equal(t, Notification{}, c.Show("late", KindInfo))
}

func TestShow_PrintsToOutput(t *testing.T) {
	var buf bytes.Buffer
	c := NewCenter(WithClock(newFakeClock()), WithOutput(&buf))

	c.Error("Network error")
	c.Success("Saved")

	out := buf.String()
	assert.Contains(t, out, "✖")
	assert.Contains(t, out, "Network error")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "Saved")
}

func TestWithTTL(t *testing.T) {
	clk := newFakeClock()
	c := NewCenter(WithClock(clk), WithTTL(time.Second), WithTTL(0))

	c.Info("short")
	clk.Advance(time.Second, false)
	assert.Empty(t, c.Active())
}

func TestCenter_ConcurrentShowAndDismiss(t *testing.T) {
	c := NewCenter(WithTTL(time.Hour))
	defer c.Close()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			n := c.Info("msg")
			c.Dismiss(n.ID)
		}()
	}
	wg.Wait()
	assert.Empty(t, c.Active())
}
