package domain

// =============================================================================
// COUPON DOMAIN TYPES
// =============================================================================

// DiscountType distinguishes flat from percentage coupons.
type DiscountType string

const (
	// DiscountAmount subtracts a fixed currency value from the cart total.
	DiscountAmount DiscountType = "amount"

	// DiscountPercentage reduces the cart total by a percentage.
	DiscountPercentage DiscountType = "percentage"
)

// Coupon is a cart-wide discount applied once to the bulk-discounted
// subtotal. Code is the unique identifier.
type Coupon struct {
	Code          string       `json:"code" validate:"required"`
	Name          string       `json:"name" validate:"required"`
	DiscountType  DiscountType `json:"discountType" validate:"oneof=amount percentage"`
	DiscountValue float64      `json:"discountValue" validate:"gte=0"`
}

// Validate checks the coupon invariants beyond struct tags.
func (c Coupon) Validate() error {
	if c.Code == "" {
		return Invalid("coupon.validate", "coupon code is required")
	}
	if c.Name == "" {
		return Invalid("coupon.validate", "coupon name is required")
	}
	switch c.DiscountType {
	case DiscountAmount:
		if c.DiscountValue < 0 {
			return Invalid("coupon.validate", "discount amount must not be negative")
		}
	case DiscountPercentage:
		if c.DiscountValue < 0 || c.DiscountValue > 100 {
			return Invalid("coupon.validate", "discount percentage must be between 0 and 100")
		}
	default:
		return Invalid("coupon.validate", "discount type must be amount or percentage")
	}
	return nil
}
