package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// BusinessMetrics holds Prometheus metrics for business-level observability
// of the storefront: catalog engagement, cart activity and order outcomes.
type BusinessMetrics struct {
	// Catalog engagement
	ProductSearches prometheus.Counter
	ProductAddToCart *prometheus.CounterVec

	// Cart
	CartUpdated prometheus.Counter
	CartValue   prometheus.Histogram

	// Coupons
	CouponsApplied  *prometheus.CounterVec
	CouponsRejected *prometheus.CounterVec

	// Orders
	OrdersCompleted prometheus.Counter
	OrderValue      prometheus.Histogram
}

// NewBusinessMetrics creates and registers storefront business metrics.
func NewBusinessMetrics(namespace string) *BusinessMetrics {
	if namespace == "" {
		namespace = "podomarket"
	}

	return &BusinessMetrics{
		ProductSearches: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_searches_total",
			Help:      "Committed product searches (one per quiescent search session)",
		}),
		ProductAddToCart: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "product_add_to_cart_total",
			Help:      "Add-to-cart attempts by outcome",
		}, []string{"outcome"}),
		CartUpdated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_updates_total",
			Help:      "Successful cart mutations",
		}),
		CartValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "cart_value",
			Help:      "Cart total after discounts, sampled after each cart mutation",
			Buckets:   []float64{1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		}),
		CouponsApplied: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupons_applied_total",
			Help:      "Coupons applied to the cart by discount type",
		}, []string{"type"}),
		CouponsRejected: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coupons_rejected_total",
			Help:      "Coupon applications rejected by reason",
		}, []string{"reason"}),
		OrdersCompleted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "orders_completed_total",
			Help:      "Completed orders",
		}),
		OrderValue: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "order_value",
			Help:      "Final order total after all discounts",
			Buckets:   []float64{1000, 5000, 10000, 50000, 100000, 500000, 1000000},
		}),
	}
}
