package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/notify"
	"github.com/hyunwoopark/podomarket/internal/pricing"
	"github.com/hyunwoopark/podomarket/internal/storage"
)

// CartService provides business logic for the shopping cart and the
// selected coupon. One logical cart per service instance.
type CartService interface {
	// Items returns a snapshot of the cart lines with current product data.
	Items(ctx context.Context) domain.Cart

	// Summary returns lines with per-line totals plus cart totals, with
	// the selected coupon applied.
	Summary(ctx context.Context) *CartSummary

	// Add puts one more unit of the product in the cart.
	Add(ctx context.Context, productID string) error

	// Remove deletes the line for the product. No-op if absent.
	Remove(ctx context.Context, productID string) error

	// UpdateQuantity sets the line's quantity. Zero or negative removes
	// the line; beyond stock is rejected with the quantity unchanged.
	UpdateQuantity(ctx context.Context, productID string, quantity int) error

	// ApplyCoupon selects the coupon. Percentage coupons are rejected
	// below the minimum order amount; the previous selection is kept.
	ApplyCoupon(ctx context.Context, coupon domain.Coupon) error

	// SelectedCoupon returns the active coupon, or nil.
	SelectedCoupon(ctx context.Context) *domain.Coupon

	// DeselectCoupon clears the selection.
	DeselectCoupon(ctx context.Context)

	// DeselectIfCode clears the selection only when it references code.
	// Wired as the coupon deletion hook.
	DeselectIfCode(code string)

	// CompleteOrder issues an order number and clears the cart and the
	// selected coupon.
	CompleteOrder(ctx context.Context) (string, error)
}

// CartLine is one cart line enriched with its computed total.
type CartLine struct {
	Product   domain.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"lineTotal"`
}

// CartSummary aggregates cart lines with calculated totals.
type CartSummary struct {
	Lines     []CartLine     `json:"lines"`
	ItemCount int            `json:"itemCount"`
	Totals    pricing.Totals `json:"totals"`
	Coupon    *domain.Coupon `json:"coupon,omitempty"`
}

type cartService struct {
	mu       sync.Mutex
	items    domain.Cart
	selected *domain.Coupon

	catalog               CatalogService
	percentCouponMinOrder int64
	persist               *persister
	notifier              *notify.Center
	logger                *slog.Logger
}

// NewCartService loads any persisted cart (empty when absent or malformed)
// and returns a CartService backed by the given catalog.
func NewCartService(ctx context.Context, store storage.Store, catalog CatalogService, percentCouponMinOrder int64, notifier *notify.Center, logger *slog.Logger) CartService {
	if logger == nil {
		logger = slog.Default()
	}

	items := domain.Cart(loadList[domain.CartItem](ctx, store, storage.KeyCart, nil, logger))

	return &cartService{
		items:                 items,
		catalog:               catalog,
		percentCouponMinOrder: percentCouponMinOrder,
		persist:               newPersister(store, logger),
		notifier:              notifier,
		logger:                logger,
	}
}

func (s *cartService) Items(ctx context.Context) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.refreshed(ctx)
}

func (s *cartService) Summary(ctx context.Context) *CartSummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.refreshed(ctx)
	lines := make([]CartLine, 0, len(cart))
	for _, item := range cart {
		lines = append(lines, CartLine{
			Product:   item.Product,
			Quantity:  item.Quantity,
			LineTotal: pricing.LineTotal(item.Product, item.Quantity),
		})
	}

	return &CartSummary{
		Lines:     lines,
		ItemCount: cart.ItemCount(),
		Totals:    pricing.CartTotals(cart, s.selected),
		Coupon:    s.selected,
	}
}

func (s *cartService) Add(ctx context.Context, productID string) error {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.items.Find(productID)
	if idx >= 0 {
		if s.items[idx].Quantity+1 > product.Stock {
			s.mu.Unlock()
			if s.notifier != nil {
				s.notifier.Error("Insufficient stock.")
			}
			return ErrInsufficientStock
		}
		s.items[idx].Quantity++
		s.items[idx].Product = product
	} else {
		if product.Stock <= 0 {
			s.mu.Unlock()
			if s.notifier != nil {
				s.notifier.Error("Product is out of stock.")
			}
			return ErrOutOfStock
		}
		s.items = append(s.items, domain.CartItem{Product: product, Quantity: 1})
	}
	s.persistCart()
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Success("Added to cart.")
	}
	return nil
}

func (s *cartService) Remove(ctx context.Context, productID string) error {
	s.mu.Lock()
	idx := s.items.Find(productID)
	if idx < 0 {
		s.mu.Unlock()
		return nil
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)
	s.persistCart()
	s.mu.Unlock()
	return nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	idx := s.items.Find(productID)
	if idx < 0 {
		s.mu.Unlock()
		return ErrCartLineNotFound
	}
	if quantity > product.Stock {
		s.mu.Unlock()
		if s.notifier != nil {
			s.notifier.Error(fmt.Sprintf("Only %d in stock.", product.Stock))
		}
		return ErrInsufficientStock
	}
	s.items[idx].Quantity = quantity
	s.items[idx].Product = product
	s.persistCart()
	s.mu.Unlock()
	return nil
}

func (s *cartService) ApplyCoupon(ctx context.Context, coupon domain.Coupon) error {
	s.mu.Lock()
	if coupon.DiscountType == domain.DiscountPercentage {
		// Gate percentage coupons on the pre-coupon, bulk-discounted
		// subtotal. Amount coupons have no such restriction.
		subtotal := pricing.CartTotals(s.refreshed(ctx), nil).TotalAfterDiscount
		if subtotal < float64(s.percentCouponMinOrder) {
			s.mu.Unlock()
			if s.notifier != nil {
				s.notifier.Warning(fmt.Sprintf("Percentage coupons require orders of at least %d.", s.percentCouponMinOrder))
			}
			return ErrCouponThresholdNotMet
		}
	}
	s.selected = &coupon
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Success("Coupon applied.")
	}
	return nil
}

func (s *cartService) SelectedCoupon(ctx context.Context) *domain.Coupon {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selected == nil {
		return nil
	}
	coupon := *s.selected
	return &coupon
}

func (s *cartService) DeselectCoupon(ctx context.Context) {
	s.mu.Lock()
	s.selected = nil
	s.mu.Unlock()
}

func (s *cartService) DeselectIfCode(code string) {
	s.mu.Lock()
	if s.selected != nil && s.selected.Code == code {
		s.selected = nil
	}
	s.mu.Unlock()
}

func (s *cartService) CompleteOrder(ctx context.Context) (string, error) {
	orderNumber := fmt.Sprintf("ORD-%d", time.Now().UnixMilli())

	s.mu.Lock()
	s.items = nil
	s.selected = nil
	s.persistCart()
	s.mu.Unlock()

	if s.notifier != nil {
		s.notifier.Success(fmt.Sprintf("Order completed. Order number: %s", orderNumber))
	}
	return orderNumber, nil
}

// refreshed resolves each line's product against the catalog so totals
// always reflect current price, stock and discounts. Lines whose product
// was deleted keep their snapshot. Caller holds s.mu.
func (s *cartService) refreshed(ctx context.Context) domain.Cart {
	out := make(domain.Cart, len(s.items))
	for i, item := range s.items {
		if current, err := s.catalog.Get(ctx, item.Product.ID); err == nil {
			item.Product = current
		}
		out[i] = item
	}
	return out
}

// persistCart mirrors the cart to storage: rewritten while non-empty,
// removed once it empties. Caller holds s.mu.
func (s *cartService) persistCart() {
	if len(s.items) > 0 {
		s.persist.save(storage.KeyCart, s.items)
	} else {
		s.persist.remove(storage.KeyCart)
	}
}
