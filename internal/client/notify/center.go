package notify

import (
	"io"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays visible.
const DefaultTTL = 5 * time.Second

// Notification is one visible message.
type Notification struct {
	ID        string
	Message   string
	Kind      Kind
	CreatedAt time.Time
}

type entry struct {
	n     Notification
	timer Timer
}

// stack is the ordered set of visible notifications.
type stack struct {
	entries []*entry
}

func (s *stack) remove(id string) *entry {
	for i, e := range s.entries {
		if e.n.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			return e
		}
	}
	return nil
}

// Center owns the notification stack. It is safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	clock  Clock
	ttl    time.Duration
	render *Renderer
	stack  *stack
	closed bool
}

type Option func(*Center)

func WithClock(c Clock) Option { return func(n *Center) { n.clock = c } }

// WithTTL overrides DefaultTTL. Non-positive values are ignored.
func WithTTL(d time.Duration) Option {
	return func(n *Center) {
		if d > 0 {
			n.ttl = d
		}
	}
}

// WithOutput prints every shown notification to w.
func WithOutput(w io.Writer) Option {
	return func(n *Center) { n.render = NewRenderer(w) }
}

func NewCenter(opts ...Option) *Center {
	c := &Center{clock: realClock{}, ttl: DefaultTTL}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Show pushes a notification and schedules its removal. Unknown kinds are
// shown as info. An empty message is ignored and the zero Notification is
// returned, as it is after Close.
func (c *Center) Show(message string, kind Kind) Notification {
	if strings.TrimSpace(message) == "" {
		return Notification{}
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Notification{}
	}
	if c.stack == nil {
		c.stack = &stack{}
	}
	n := Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Kind:      ParseKind(string(kind)),
		CreatedAt: c.clock.Now(),
	}
	e := &entry{n: n}
	c.stack.entries = append(c.stack.entries, e)
	id := n.ID
	e.timer = c.clock.AfterFunc(c.ttl, func() { c.expire(id) })
	c.mu.Unlock()

	c.render.Print(n)
	return n
}

func (c *Center) Success(message string) Notification { return c.Show(message, KindSuccess) }
func (c *Center) Error(message string) Notification   { return c.Show(message, KindError) }
func (c *Center) Info(message string) Notification    { return c.Show(message, KindInfo) }
func (c *Center) Warning(message string) Notification { return c.Show(message, KindWarning) }

func (c *Center) expire(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stack != nil {
		c.stack.remove(id)
	}
}

// Dismiss removes the notification with id. It reports whether it was
// still visible.
func (c *Center) Dismiss(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stack == nil {
		return false
	}
	e := c.stack.remove(id)
	if e == nil {
		return false
	}
	if e.timer != nil {
		e.timer.Stop()
	}
	return true
}

// Active returns the visible notifications, oldest first.
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stack == nil {
		return []Notification{}
	}
	out := make([]Notification, len(c.stack.entries))
	for i, e := range c.stack.entries {
		out[i] = e.n
	}
	return out
}

// Close stops all pending timers and drops the stack. Later calls to Show
// are ignored.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.stack == nil {
		return
	}
	for _, e := range c.stack.entries {
		if e.timer != nil {
			e.timer.Stop()
		}
	}
	c.stack = nil
}
