package service

import (
	"github.com/hyunwoopark/podomarket/internal/domain"
)

// Catalog errors - use domain.ENOTFOUND
var (
	ErrProductNotFound = domain.Errorf(domain.ENOTFOUND, "", "Product not found")
	ErrCouponNotFound  = domain.Errorf(domain.ENOTFOUND, "", "Coupon not found")
	ErrCartLineNotFound = domain.Errorf(domain.ENOTFOUND, "", "Product is not in the cart")
)

// Stock errors - use domain.ENOSTOCK. Both are recoverable: the cart is
// left unchanged and the message is surfaced as a notification.
var (
	ErrInsufficientStock = domain.Errorf(domain.ENOSTOCK, "", "Insufficient stock")
	ErrOutOfStock        = domain.Errorf(domain.ENOSTOCK, "", "Product is out of stock")
)

// Coupon errors
var (
	ErrDuplicateCouponCode   = domain.Errorf(domain.ECONFLICT, "", "Coupon code already exists")
	ErrCouponThresholdNotMet = domain.Errorf(domain.ETHRESHOLD, "", "Percentage coupons require a minimum order amount")
)
