// Package pricing is the pure computation core of the storefront: remaining
// stock, per-line totals with bulk discounts, and cart totals with an
// optional coupon. It holds no state of its own; every function is computed
// from the snapshots passed in, so callers re-derive totals after any
// mutation to the cart, catalog or selected coupon.
package pricing

import (
	"github.com/hyunwoopark/podomarket/internal/domain"
)

// Totals aggregates the two cart-level sums. TotalBeforeDiscount ignores
// all discounts; TotalAfterDiscount has bulk discounts applied per line and
// the coupon, if any, applied once on top.
type Totals struct {
	TotalBeforeDiscount float64 `json:"totalBeforeDiscount"`
	TotalAfterDiscount  float64 `json:"totalAfterDiscount"`
}

// RemainingStock returns the product's stock minus the quantity currently
// held in the cart. The raw value may be zero or negative; display layers
// clamp it and treat <= 0 as sold out.
func RemainingStock(p domain.Product, cart domain.Cart) int {
	return p.Stock - cart.Quantity(p.ID)
}

// BestRate selects the best applicable bulk discount rate for the given
// quantity: the maximum rate among tiers whose quantity threshold is met.
// Tiers need not be sorted. Returns 0 when no tier qualifies.
func BestRate(discounts []domain.Discount, quantity int) float64 {
	best := 0.0
	for _, d := range discounts {
		if d.Quantity <= quantity && d.Rate > best {
			best = d.Rate
		}
	}
	return best
}

// LineTotal computes price*quantity with the best applicable bulk discount
// applied. Tiers are evaluated independently per line; discounts never
// combine across products. No rounding happens here; rounding belongs to
// display formatting.
func LineTotal(p domain.Product, quantity int) float64 {
	base := float64(p.Price) * float64(quantity)
	return base * (1 - BestRate(p.Discounts, quantity))
}

// ApplyCoupon applies the coupon once to an already bulk-discounted
// subtotal. Amount coupons subtract and floor at zero; percentage coupons
// scale. A nil coupon returns the subtotal unchanged.
func ApplyCoupon(subtotal float64, coupon *domain.Coupon) float64 {
	if coupon == nil {
		return subtotal
	}
	switch coupon.DiscountType {
	case domain.DiscountAmount:
		total := subtotal - coupon.DiscountValue
		if total < 0 {
			return 0
		}
		return total
	case domain.DiscountPercentage:
		return subtotal * (1 - coupon.DiscountValue/100)
	default:
		return subtotal
	}
}

// CartTotals computes both cart-level sums from the given snapshot. Each
// line's Product must be the current catalog record; callers resolve lines
// against the catalog before calling. The coupon affects only
// TotalAfterDiscount.
func CartTotals(cart domain.Cart, coupon *domain.Coupon) Totals {
	var before, after float64
	for _, item := range cart {
		before += float64(item.Product.Price) * float64(item.Quantity)
		after += LineTotal(item.Product, item.Quantity)
	}
	return Totals{
		TotalBeforeDiscount: before,
		TotalAfterDiscount:  ApplyCoupon(after, coupon),
	}
}
