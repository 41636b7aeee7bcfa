package storefront

import (
	"log/slog"
	"sync"
	"time"

	"github.com/hyunwoopark/podomarket/internal/sched"
	"github.com/hyunwoopark/podomarket/internal/telemetry"
)

// SearchTracker mirrors the storefront search box behavior: the raw term
// takes effect immediately for filtering, while the committed term settles
// only after a quiescence window with no further input. A burst of
// keystrokes therefore counts as one search in telemetry and logs.
type SearchTracker struct {
	debouncer *sched.Debouncer
	metrics   *telemetry.BusinessMetrics
	logger    *slog.Logger

	mu        sync.Mutex
	raw       string
	committed string
}

// NewSearchTracker creates a tracker with the given quiescence window.
// metrics may be nil.
func NewSearchTracker(window time.Duration, metrics *telemetry.BusinessMetrics, logger *slog.Logger) *SearchTracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &SearchTracker{
		debouncer: sched.NewDebouncer(window),
		metrics:   metrics,
		logger:    logger,
	}
}

// Observe records a raw term and schedules its commit. Empty terms reset
// the raw value without committing a search.
func (t *SearchTracker) Observe(term string) {
	t.mu.Lock()
	t.raw = term
	t.mu.Unlock()

	if term == "" {
		return
	}

	t.debouncer.Trigger(func() {
		t.mu.Lock()
		t.committed = term
		t.mu.Unlock()

		if t.metrics != nil {
			t.metrics.ProductSearches.Inc()
		}
		t.logger.Debug("search committed", "term", term)
	})
}

// Term returns the last committed term.
func (t *SearchTracker) Term() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.committed
}

// Close cancels any pending commit. Called on shutdown.
func (t *SearchTracker) Close() {
	t.debouncer.Stop()
}
