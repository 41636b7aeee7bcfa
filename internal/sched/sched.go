// Package sched provides small cancellable timer primitives: one-shot
// scheduled tasks and a debouncer. The storefront uses them for
// notification auto-dismissal and search-term quiescence; they carry no
// dependency on any UI mechanism.
package sched

import (
	"sync"
	"time"
)

// Task is a one-shot scheduled function. Cancel is safe to call at any
// time, including after the task has fired.
type Task struct {
	timer *time.Timer

	mu        sync.Mutex
	done      bool
	cancelled bool
}

// Schedule runs fn after d on its own goroutine.
func Schedule(d time.Duration, fn func()) *Task {
	t := &Task{}
	t.timer = time.AfterFunc(d, func() {
		t.mu.Lock()
		if t.cancelled {
			t.mu.Unlock()
			return
		}
		t.done = true
		t.mu.Unlock()
		fn()
	})
	return t
}

// Cancel stops the task if it hasn't fired. Returns true if the task was
// prevented from running.
func (t *Task) Cancel() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.done || t.cancelled {
		return false
	}
	t.cancelled = true
	t.timer.Stop()
	return true
}

// Debouncer coalesces a burst of triggers into a single callback after a
// quiescence window: every Trigger cancels the previously pending one and
// schedules anew. Stop cancels any pending callback; it is what component
// teardown must call so no callback dangles.
type Debouncer struct {
	d time.Duration

	mu      sync.Mutex
	pending *Task
	stopped bool
}

// NewDebouncer creates a debouncer with the given quiescence window.
func NewDebouncer(d time.Duration) *Debouncer {
	return &Debouncer{d: d}
}

// Trigger schedules fn to run after the quiescence window, cancelling any
// pending earlier trigger. Triggers after Stop are ignored.
func (db *Debouncer) Trigger(fn func()) {
	db.mu.Lock()
	defer db.mu.Unlock()

	if db.stopped {
		return
	}
	if db.pending != nil {
		db.pending.Cancel()
	}
	db.pending = Schedule(db.d, fn)
}

// Stop cancels any pending callback and rejects further triggers.
func (db *Debouncer) Stop() {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.stopped = true
	if db.pending != nil {
		db.pending.Cancel()
		db.pending = nil
	}
}
