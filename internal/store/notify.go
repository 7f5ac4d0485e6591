package store

import (
	"sync"
	"time"
)

// Severity grades a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeveritySuccess
	SeverityError
)

// Notification is one short-lived status message. Expiring marks the entry
// as fading out shortly before removal.
type Notification struct {
	ID       int
	Message  string
	Severity Severity
	Expiring bool
}

// Notifier keeps a FIFO queue of live notifications with automatic expiry.
// Multiple notifications may be live at once; there is no deduplication.
type Notifier struct {
	mu      sync.Mutex
	nextID  int
	active  []Notification
	showFor time.Duration
	fadeFor time.Duration
}

const (
	defaultShowFor = 4 * time.Second
	defaultFadeFor = 300 * time.Millisecond
)

// NewNotifier returns a Notifier with the default display timings.
func NewNotifier() *Notifier {
	return &Notifier{showFor: defaultShowFor, fadeFor: defaultFadeFor}
}

// Push enqueues a message and schedules its expiry: after showFor it is
// marked expiring, after a further fadeFor it is removed. Returns the
// assigned id, which increases monotonically.
func (n *Notifier) Push(message string, severity Severity) int {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.active = append(n.active, Notification{ID: id, Message: message, Severity: severity})
	show, fade := n.showFor, n.fadeFor
	n.mu.Unlock()

	time.AfterFunc(show, func() {
		n.markExpiring(id)
		time.AfterFunc(fade, func() {
			n.remove(id)
		})
	})
	return id
}

// Active returns a copy of the live notifications in push order.
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.active) == 0 {
		return nil
	}
	dup := make([]Notification, len(n.active))
	copy(dup, n.active)
	return dup
}

func (n *Notifier) markExpiring(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i := range n.active {
		if n.active[i].ID == id {
			n.active[i].Expiring = true
			return
		}
	}
}

func (n *Notifier) remove(id int) {
	n.mu.Lock()
	defer n.mu.Unlock()
	kept := n.active[:0]
	for _, t := range n.active {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	n.active = kept
}
