package service

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/hyunwoopark/podomarket/internal/storage"
)

// persistTimeout bounds each background write so a stuck backend cannot
// pile up goroutines forever.
const persistTimeout = 5 * time.Second

// persister mirrors service state to the key-addressed store after each
// successful mutation. Writes are fire-and-forget: failures are logged and
// never fail the mutation that triggered them.
type persister struct {
	store  storage.Store
	logger *slog.Logger
}

func newPersister(store storage.Store, logger *slog.Logger) *persister {
	if logger == nil {
		logger = slog.Default()
	}
	return &persister{store: store, logger: logger}
}

// save marshals v and writes it to key in the background.
func (p *persister) save(key string, v any) {
	if p.store == nil {
		return
	}

	data, err := json.Marshal(v)
	if err != nil {
		p.logger.Error("failed to marshal state", "key", key, "error", err)
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := p.store.Save(ctx, key, data); err != nil {
			p.logger.Error("failed to persist state", "key", key, "error", err)
		}
	}()
}

// remove deletes key in the background.
func (p *persister) remove(key string) {
	if p.store == nil {
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
		defer cancel()
		if err := p.store.Delete(ctx, key); err != nil {
			p.logger.Error("failed to delete persisted state", "key", key, "error", err)
		}
	}()
}

// loadList reads and parses the JSON array stored at key. Absence is
// normal (first run); a malformed value is logged and the fallback is
// returned - corrupt persisted data must never fail startup.
func loadList[T any](ctx context.Context, store storage.Store, key string, fallback []T, logger *slog.Logger) []T {
	if store == nil {
		return fallback
	}
	if logger == nil {
		logger = slog.Default()
	}

	data, err := store.Load(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			logger.Warn("failed to load persisted state, using defaults", "key", key, "error", err)
		}
		return fallback
	}

	var out []T
	if err := json.Unmarshal(data, &out); err != nil {
		logger.Warn("malformed persisted state, using defaults", "key", key, "error", err)
		return fallback
	}
	return out
}
