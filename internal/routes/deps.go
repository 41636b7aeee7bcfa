package routes

import (
	"github.com/hyunwoopark/podomarket/internal/handler/admin"
	"github.com/hyunwoopark/podomarket/internal/handler/storefront"
)

// StorefrontDeps contains dependencies for storefront routes
type StorefrontDeps struct {
	// Products (list + search)
	ProductHandler *storefront.ProductHandler

	// Cart
	CartHandler *storefront.CartHandler

	// Coupons (list + cart selection)
	CouponHandler *storefront.CouponHandler

	// Checkout
	OrderHandler *storefront.OrderHandler

	// Toast notifications
	NotificationHandler *storefront.NotificationHandler
}

// AdminDeps contains dependencies for admin routes
type AdminDeps struct {
	// Product management
	ProductHandler *admin.ProductHandler

	// Coupon management
	CouponHandler *admin.CouponHandler
}
