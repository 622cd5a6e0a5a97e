package notify

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Display durations
const (
	DefaultDuration  = 3000 * time.Millisecond
	BookmarkDuration = 2000 * time.Millisecond
)

// Variant selects the toast styling
type Variant int

const (
	VariantDefault Variant = iota
	VariantDestructive
)

// String returns the string representation of Variant
func (v Variant) String() string {
	switch v {
	case VariantDestructive:
		return "destructive"
	default:
		return "default"
	}
}

// Notification is a transient message shown in the window corner. Title and
// Description are text keys; Args fill format verbs in the resolved
// description.
type Notification struct {
	ID          string
	Title       string
	Description string
	Args        []any
	Variant     Variant
	Duration    time.Duration
	CreatedAt   time.Time
}

// Notifier keeps the list of visible notifications and expires each one
// after its duration. Expiry of one notification never affects another.
type Notifier struct {
	mu       sync.Mutex
	items    []Notification
	timers   map[string]*time.Timer
	onChange func([]Notification)
}

// New creates an empty notifier
func New() *Notifier {
	return &Notifier{timers: make(map[string]*time.Timer)}
}

// SetUpdateCallback sets the function called with the visible list after
// every change. It is called outside the notifier lock.
func (n *Notifier) SetUpdateCallback(callback func([]Notification)) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.onChange = callback
}

// Notify shows note and returns its ID. Missing ID and duration are filled in.
func (n *Notifier) Notify(note Notification) string {
	if note.ID == "" {
		note.ID = uuid.NewString()
	}
	if note.Duration <= 0 {
		note.Duration = DefaultDuration
	}
	note.CreatedAt = time.Now()

	n.mu.Lock()
	n.items = append(n.items, note)
	id := note.ID
	n.timers[id] = time.AfterFunc(note.Duration, func() { n.expire(id) })
	n.mu.Unlock()

	n.notifyUpdate()
	return id
}

// Info shows a default-styled notification
func (n *Notifier) Info(title, description string, args ...any) string {
	return n.Notify(Notification{Title: title, Description: description, Args: args})
}

// Error shows a destructive notification
func (n *Notifier) Error(title, description string, args ...any) string {
	return n.Notify(Notification{Title: title, Description: description, Args: args, Variant: VariantDestructive})
}

// Dismiss removes the notification with id before it expires
func (n *Notifier) Dismiss(id string) bool {
	n.mu.Lock()
	removed := n.remove(id)
	n.mu.Unlock()

	if removed {
		n.notifyUpdate()
	}
	return removed
}

// Active returns the visible notifications, oldest first
func (n *Notifier) Active() []Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.snapshot()
}

// Close stops all pending expiry timers and clears the list
func (n *Notifier) Close() {
	n.mu.Lock()
	for id, t := range n.timers {
		t.Stop()
		delete(n.timers, id)
	}
	n.items = nil
	n.mu.Unlock()
}

func (n *Notifier) expire(id string) {
	n.mu.Lock()
	removed := n.remove(id)
	n.mu.Unlock()

	if removed {
		n.notifyUpdate()
	}
}

// remove must be called with mu held
func (n *Notifier) remove(id string) bool {
	if t, ok := n.timers[id]; ok {
		t.Stop()
		delete(n.timers, id)
	}
	for i, item := range n.items {
		if item.ID == id {
			n.items = append(n.items[:i:i], n.items[i+1:]...)
			return true
		}
	}
	return false
}

func (n *Notifier) snapshot() []Notification {
	out := make([]Notification, len(n.items))
	copy(out, n.items)
	return out
}

func (n *Notifier) notifyUpdate() {
	n.mu.Lock()
	callback := n.onChange
	items := n.snapshot()
	n.mu.Unlock()

	if callback != nil {
		callback(items)
	}
}
