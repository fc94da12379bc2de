package session

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// NotificationTTL is how long a toast stays visible
const NotificationTTL = 3 * time.Second

// Kind distinguishes success toasts from error toasts
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
)

// Notification is a transient, dismissable message about an operation outcome
type Notification struct {
	ID      uuid.UUID
	Kind    Kind
	Text    string
	Expires time.Time
}

// Notifier keeps the visible notifications in creation order
type Notifier struct {
	mu    sync.Mutex
	ttl   time.Duration
	items []Notification
}

// NewNotifier creates a Notifier; a non-positive ttl uses NotificationTTL
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = NotificationTTL
	}
	return &Notifier{ttl: ttl}
}

// Push adds a notification that expires ttl after now
func (n *Notifier) Push(kind Kind, text string, now time.Time) Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	note := Notification{
		ID:      uuid.New(),
		Kind:    kind,
		Text:    text,
		Expires: now.Add(n.ttl),
	}
	n.items = append(n.items, note)
	return note
}

// Active drops expired notifications and returns the rest
func (n *Notifier) Active(now time.Time) []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	kept := n.items[:0]
	for _, note := range n.items {
		if now.Before(note.Expires) {
			kept = append(kept, note)
		}
	}
	n.items = kept

	return append([]Notification(nil), kept...)
}

// Dismiss removes a notification before it expires
func (n *Notifier) Dismiss(id uuid.UUID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, note := range n.items {
		if note.ID == id {
			n.items = append(n.items[:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}
