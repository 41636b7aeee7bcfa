package storefront

import (
	"net/http"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/handler"
	"github.com/hyunwoopark/podomarket/internal/service"
	"github.com/hyunwoopark/podomarket/internal/telemetry"
)

// CouponHandler exposes the coupon list and cart coupon selection.
type CouponHandler struct {
	coupons service.CouponService
	cart    service.CartService
	metrics *telemetry.BusinessMetrics
}

func NewCouponHandler(coupons service.CouponService, cart service.CartService, metrics *telemetry.BusinessMetrics) *CouponHandler {
	return &CouponHandler{coupons: coupons, cart: cart, metrics: metrics}
}

// List handles GET /coupons
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]any{
		"coupons": h.coupons.List(r.Context()),
	})
}

// Apply handles POST /cart/coupon
func (h *CouponHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Code string `json:"code"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if req.Code == "" {
		handler.RespondError(w, r, domain.Invalid("coupon.apply", "code is required"))
		return
	}

	coupon, err := h.coupons.Get(r.Context(), req.Code)
	if err != nil {
		if h.metrics != nil {
			h.metrics.CouponsRejected.WithLabelValues("not_found").Inc()
		}
		handler.RespondError(w, r, err)
		return
	}

	if err := h.cart.ApplyCoupon(r.Context(), coupon); err != nil {
		if h.metrics != nil {
			h.metrics.CouponsRejected.WithLabelValues(domain.ErrorCode(err)).Inc()
		}
		handler.RespondError(w, r, err)
		return
	}

	if h.metrics != nil {
		h.metrics.CouponsApplied.WithLabelValues(string(coupon.DiscountType)).Inc()
	}
	handler.RespondJSON(w, http.StatusOK, map[string]any{
		"coupon": coupon,
		"totals": h.cart.Summary(r.Context()).Totals,
	})
}

// Deselect handles DELETE /cart/coupon
func (h *CouponHandler) Deselect(w http.ResponseWriter, r *http.Request) {
	h.cart.DeselectCoupon(r.Context())
	handler.RespondJSON(w, http.StatusOK, map[string]any{
		"totals": h.cart.Summary(r.Context()).Totals,
	})
}
