package routes

import (
	"github.com/hyunwoopark/podomarket/internal/router"
)

// RegisterStorefrontRoutes registers all customer-facing routes.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Catalog
	r.Get("/products", deps.ProductHandler.List)

	// Cart
	r.Get("/cart", deps.CartHandler.View)
	r.Post("/cart/items", deps.CartHandler.Add)
	r.Put("/cart/items/{id}", deps.CartHandler.UpdateQuantity)
	r.Delete("/cart/items/{id}", deps.CartHandler.Remove)

	// Coupons
	r.Get("/coupons", deps.CouponHandler.List)
	r.Post("/cart/coupon", deps.CouponHandler.Apply)
	r.Delete("/cart/coupon", deps.CouponHandler.Deselect)

	// Checkout
	r.Post("/orders", deps.OrderHandler.Complete)

	// Notifications
	r.Get("/notifications", deps.NotificationHandler.List)
	r.Delete("/notifications/{id}", deps.NotificationHandler.Dismiss)
}
