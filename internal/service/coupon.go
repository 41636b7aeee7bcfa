package service

import (
	"context"
	"log/slog"
	"sync"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/notify"
	"github.com/hyunwoopark/podomarket/internal/storage"
)

// CouponService provides business logic for coupon management.
type CouponService interface {
	// List returns all coupons in insertion order.
	List(ctx context.Context) []domain.Coupon

	// Get returns the coupon with the given code.
	Get(ctx context.Context, code string) (domain.Coupon, error)

	// Add validates and inserts a new coupon. Duplicate codes are rejected.
	Add(ctx context.Context, c domain.Coupon) error

	// Delete removes a coupon by code. The deletion hook runs so a
	// selection referencing the coupon is cleared.
	Delete(ctx context.Context, code string) error
}

type couponService struct {
	mu      sync.Mutex
	coupons []domain.Coupon

	// onDelete runs after a coupon is removed, outside the lock.
	// Wired to the cart's DeselectIfCode at startup.
	onDelete func(code string)

	persist  *persister
	notifier *notify.Center
	logger   *slog.Logger
}

// NewCouponService loads coupons from the store (seed data when absent or
// malformed). onDelete may be nil.
func NewCouponService(ctx context.Context, store storage.Store, onDelete func(code string), notifier *notify.Center, logger *slog.Logger) CouponService {
	if logger == nil {
		logger = slog.Default()
	}

	coupons := loadList(ctx, store, storage.KeyCoupons, domain.SeedCoupons(), logger)

	return &couponService{
		coupons:  coupons,
		onDelete: onDelete,
		persist:  newPersister(store, logger),
		notifier: notifier,
		logger:   logger,
	}
}

func (s *couponService) List(ctx context.Context) []domain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]domain.Coupon, len(s.coupons))
	copy(out, s.coupons)
	return out
}

func (s *couponService) Get(ctx context.Context, code string) (domain.Coupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range s.coupons {
		if c.Code == code {
			return c, nil
		}
	}
	return domain.Coupon{}, ErrCouponNotFound
}

func (s *couponService) Add(ctx context.Context, c domain.Coupon) error {
	if err := c.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	for _, existing := range s.coupons {
		if existing.Code == c.Code {
			s.mu.Unlock()
			if s.notifier != nil {
				s.notifier.Error("Coupon code already exists.")
			}
			return ErrDuplicateCouponCode
		}
	}
	s.coupons = append(s.coupons, c)
	s.persist.save(storage.KeyCoupons, s.coupons)
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Success("Coupon added.")
	}
	return nil
}

func (s *couponService) Delete(ctx context.Context, code string) error {
	s.mu.Lock()
	idx := -1
	for i, existing := range s.coupons {
		if existing.Code == code {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return ErrCouponNotFound
	}
	s.coupons = append(s.coupons[:idx], s.coupons[idx+1:]...)
	s.persist.save(storage.KeyCoupons, s.coupons)
	s.mu.Unlock()

	if s.onDelete != nil {
		s.onDelete(code)
	}
	if s.notifier != nil {
		s.notifier.Success("Coupon deleted.")
	}
	return nil
}
