package storage

import (
	"context"

	"github.com/hyunwoopark/podomarket/internal"
)

// Well-known state keys. Each holds a JSON array.
const (
	KeyProducts = "products"
	KeyCoupons  = "coupons"
	KeyCart     = "cart"
)

// Store is a key-addressed JSON state store. It mirrors the contract the
// original storefront had with browser-local storage: whole values are
// rewritten on every change, and a key can be removed outright.
//
// Implementations can use the local filesystem, Postgres, or memory.
type Store interface {
	// Load returns the raw value stored at key.
	// Returns ErrKeyNotFound when the key is absent.
	Load(ctx context.Context, key string) ([]byte, error)

	// Save stores value at key, replacing any previous value.
	Save(ctx context.Context, key string, value []byte) error

	// Delete removes the value at key.
	// Returns nil if the key doesn't exist (idempotent).
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// NewStore creates a Store implementation based on configuration.
func NewStore(ctx context.Context, cfg internal.StorageConfig) (Store, error) {
	switch cfg.Provider {
	case "local", "":
		return NewLocalStore(cfg.LocalPath)
	case "postgres":
		return NewPostgresStore(ctx, cfg.DatabaseURL)
	case "memory":
		return NewMemoryStore(), nil
	default:
		return nil, ErrUnknownProvider(cfg.Provider)
	}
}
