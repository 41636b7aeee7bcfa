package routes

import (
	"github.com/hyunwoopark/podomarket/internal/router"
)

// RegisterAdminRoutes registers all admin management routes.
//
// These routes are served at /admin/* and share the same
// port as the storefront.
func RegisterAdminRoutes(r *router.Router, deps AdminDeps) {
	// Product management
	r.Get("/admin/products", deps.ProductHandler.List)
	r.Post("/admin/products", deps.ProductHandler.Create)
	r.Put("/admin/products/{id}", deps.ProductHandler.Update)
	r.Delete("/admin/products/{id}", deps.ProductHandler.Delete)

	// Coupon management
	r.Get("/admin/coupons", deps.CouponHandler.List)
	r.Post("/admin/coupons", deps.CouponHandler.Create)
	r.Delete("/admin/coupons/{code}", deps.CouponHandler.Delete)
}
