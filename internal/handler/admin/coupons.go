package admin

import (
	"net/http"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/handler"
	"github.com/hyunwoopark/podomarket/internal/service"
)

// CouponHandler implements the admin coupon management routes.
type CouponHandler struct {
	coupons service.CouponService
}

func NewCouponHandler(coupons service.CouponService) *CouponHandler {
	return &CouponHandler{coupons: coupons}
}

type couponPayload struct {
	Code          string  `json:"code" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	DiscountType  string  `json:"discountType" validate:"oneof=amount percentage"`
	DiscountValue float64 `json:"discountValue" validate:"gte=0"`
}

// List handles GET /admin/coupons
func (h *CouponHandler) List(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]any{
		"coupons": h.coupons.List(r.Context()),
	})
}

// Create handles POST /admin/coupons
func (h *CouponHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload couponPayload
	if err := handler.DecodeJSON(r, &payload); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		handler.RespondError(w, r, domain.WrapError(err, domain.EINVALID, "admin.coupons.create", "invalid coupon payload"))
		return
	}

	coupon := domain.Coupon{
		Code:          payload.Code,
		Name:          payload.Name,
		DiscountType:  domain.DiscountType(payload.DiscountType),
		DiscountValue: payload.DiscountValue,
	}
	if err := h.coupons.Add(r.Context(), coupon); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, coupon)
}

// Delete handles DELETE /admin/coupons/{code}
func (h *CouponHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.coupons.Delete(r.Context(), r.PathValue("code")); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
