// Package notify holds the in-memory notification center that surfaces
// mutation results to the UI shell. Each notification schedules its own
// removal after a fixed lifetime, keyed by a unique id so a removal only
// ever targets its own entry.
package notify

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/hyunwoopark/podomarket/internal/sched"
)

// Level classifies a notification for display.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
	LevelWarning Level = "warning"
)

// Notification is one toast entry.
type Notification struct {
	ID      string `json:"id"`
	Message string `json:"message"`
	Type    Level  `json:"type"`
}

// Center collects notifications and expires them independently.
type Center struct {
	ttl    time.Duration
	logger *slog.Logger

	mu     sync.Mutex
	items  []Notification
	timers map[string]*sched.Task
	closed bool
}

// NewCenter creates a notification center whose entries dismiss themselves
// after ttl.
func NewCenter(ttl time.Duration, logger *slog.Logger) *Center {
	if logger == nil {
		logger = slog.Default()
	}
	return &Center{
		ttl:    ttl,
		logger: logger,
		timers: make(map[string]*sched.Task),
	}
}

// Push adds a notification and schedules its removal. Returns the assigned id.
func (c *Center) Push(message string, level Level) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ""
	}

	id := uuid.New().String()
	c.items = append(c.items, Notification{ID: id, Message: message, Type: level})
	c.timers[id] = sched.Schedule(c.ttl, func() {
		c.Dismiss(id)
	})

	c.logger.Debug("notification pushed", "id", id, "type", string(level), "message", message)
	return id
}

// Success pushes a success notification.
func (c *Center) Success(message string) { c.Push(message, LevelSuccess) }

// Error pushes an error notification.
func (c *Center) Error(message string) { c.Push(message, LevelError) }

// Warning pushes a warning notification.
func (c *Center) Warning(message string) { c.Push(message, LevelWarning) }

// Dismiss removes the notification with the given id, cancelling its
// expiry timer. Unknown ids are a no-op.
func (c *Center) Dismiss(id string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if task, ok := c.timers[id]; ok {
		task.Cancel()
		delete(c.timers, id)
	}
	for i, n := range c.items {
		if n.ID == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
}

// List returns a snapshot of the visible notifications, oldest first.
func (c *Center) List() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, len(c.items))
	copy(out, c.items)
	return out
}

// Close cancels all pending expiry timers. Used on shutdown so no
// callback fires against a torn-down center.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.closed = true
	for id, task := range c.timers {
		task.Cancel()
		delete(c.timers, id)
	}
	c.items = nil
}
