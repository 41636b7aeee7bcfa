package storefront

import (
	"net/http"

	"github.com/hyunwoopark/podomarket/internal/handler"
	"github.com/hyunwoopark/podomarket/internal/service"
	"github.com/hyunwoopark/podomarket/internal/telemetry"
)

// OrderHandler completes checkout for the current cart.
type OrderHandler struct {
	cart    service.CartService
	metrics *telemetry.BusinessMetrics
}

func NewOrderHandler(cart service.CartService, metrics *telemetry.BusinessMetrics) *OrderHandler {
	return &OrderHandler{cart: cart, metrics: metrics}
}

// Complete handles POST /orders
func (h *OrderHandler) Complete(w http.ResponseWriter, r *http.Request) {
	// Capture the payable total before the cart is cleared.
	total := h.cart.Summary(r.Context()).Totals.TotalAfterDiscount

	orderNumber, err := h.cart.CompleteOrder(r.Context())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.OrdersCompleted.Inc()
		h.metrics.OrderValue.Observe(total)
	}
	handler.RespondJSON(w, http.StatusCreated, map[string]any{
		"orderNumber": orderNumber,
	})
}
