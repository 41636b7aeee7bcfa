package storefront

import (
	"net/http"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/handler"
	"github.com/hyunwoopark/podomarket/internal/service"
	"github.com/hyunwoopark/podomarket/internal/telemetry"
)

// CartHandler handles all cart-related storefront routes
type CartHandler struct {
	cart    service.CartService
	metrics *telemetry.BusinessMetrics
}

// NewCartHandler creates a new cart handler. metrics may be nil.
func NewCartHandler(cart service.CartService, metrics *telemetry.BusinessMetrics) *CartHandler {
	return &CartHandler{cart: cart, metrics: metrics}
}

// cartLineView is one cart line as rendered to the customer.
type cartLineView struct {
	Product   domain.Product `json:"product"`
	Quantity  int            `json:"quantity"`
	LineTotal float64        `json:"lineTotal"`
	Display   string         `json:"display"`
}

func (h *CartHandler) summaryResponse(r *http.Request) map[string]any {
	summary := h.cart.Summary(r.Context())

	lines := make([]cartLineView, 0, len(summary.Lines))
	for _, line := range summary.Lines {
		lines = append(lines, cartLineView{
			Product:   line.Product,
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal,
			Display:   handler.FormatPrice(line.LineTotal, false),
		})
	}

	resp := map[string]any{
		"lines":     lines,
		"itemCount": summary.ItemCount,
		"totals": map[string]any{
			"totalBeforeDiscount":        summary.Totals.TotalBeforeDiscount,
			"totalAfterDiscount":         summary.Totals.TotalAfterDiscount,
			"displayTotalAfterDiscount":  handler.FormatPrice(summary.Totals.TotalAfterDiscount, false),
			"displayTotalBeforeDiscount": handler.FormatPrice(summary.Totals.TotalBeforeDiscount, false),
		},
	}
	if summary.Coupon != nil {
		resp["coupon"] = summary.Coupon
	}
	return resp
}

// View handles GET /cart
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, h.summaryResponse(r))
}

func (h *CartHandler) recordMutation(r *http.Request) {
	if h.metrics == nil {
		return
	}
	h.metrics.CartUpdated.Inc()
	h.metrics.CartValue.Observe(h.cart.Summary(r.Context()).Totals.TotalAfterDiscount)
}

// Add handles POST /cart/items
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ProductID string `json:"productId"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if req.ProductID == "" {
		handler.RespondError(w, r, domain.Invalid("cart.add", "productId is required"))
		return
	}

	if err := h.cart.Add(r.Context(), req.ProductID); err != nil {
		if h.metrics != nil {
			h.metrics.ProductAddToCart.WithLabelValues("rejected").Inc()
		}
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.ProductAddToCart.WithLabelValues("ok").Inc()
	}
	h.recordMutation(r)
	handler.RespondJSON(w, http.StatusOK, h.summaryResponse(r))
}

// UpdateQuantity handles PUT /cart/items/{id}
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID := r.PathValue("id")

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.cart.UpdateQuantity(r.Context(), productID, req.Quantity); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.recordMutation(r)
	handler.RespondJSON(w, http.StatusOK, h.summaryResponse(r))
}

// Remove handles DELETE /cart/items/{id}
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Remove(r.Context(), r.PathValue("id")); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	h.recordMutation(r)
	handler.RespondJSON(w, http.StatusOK, h.summaryResponse(r))
}
