package admin

import (
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/handler"
	"github.com/hyunwoopark/podomarket/internal/service"
)

// validate is shared by all admin payloads.
var validate = validator.New()

// ProductHandler implements the admin product management routes.
type ProductHandler struct {
	catalog service.CatalogService
}

func NewProductHandler(catalog service.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

type discountPayload struct {
	Quantity int     `json:"quantity" validate:"gte=1"`
	Rate     float64 `json:"rate" validate:"gte=0,lt=1"`
}

type productPayload struct {
	Name          string            `json:"name" validate:"required"`
	Price         int64             `json:"price" validate:"gte=0"`
	Stock         int               `json:"stock" validate:"gte=0"`
	Discounts     []discountPayload `json:"discounts" validate:"dive"`
	Description   string            `json:"description"`
	IsRecommended bool              `json:"isRecommended"`
}

func (p productPayload) toDomain() domain.Product {
	discounts := make([]domain.Discount, 0, len(p.Discounts))
	for _, d := range p.Discounts {
		discounts = append(discounts, domain.Discount{Quantity: d.Quantity, Rate: d.Rate})
	}
	return domain.Product{
		Name:          p.Name,
		Price:         p.Price,
		Stock:         p.Stock,
		Discounts:     discounts,
		Description:   p.Description,
		IsRecommended: p.IsRecommended,
	}
}

// productView adds the admin price format to a product.
type productView struct {
	domain.Product
	DisplayPrice string `json:"displayPrice"`
}

func adminView(p domain.Product) productView {
	return productView{Product: p, DisplayPrice: handler.FormatPrice(float64(p.Price), true)}
}

// List handles GET /admin/products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products := h.catalog.List(r.Context())
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, adminView(p))
	}
	handler.RespondJSON(w, http.StatusOK, map[string]any{"products": views})
}

// Create handles POST /admin/products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := handler.DecodeJSON(r, &payload); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		handler.RespondError(w, r, domain.WrapError(err, domain.EINVALID, "admin.products.create", "invalid product payload"))
		return
	}

	created, err := h.catalog.Add(r.Context(), payload.toDomain())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusCreated, adminView(created))
}

// Update handles PUT /admin/products/{id}
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var payload productPayload
	if err := handler.DecodeJSON(r, &payload); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	if err := validate.Struct(payload); err != nil {
		handler.RespondError(w, r, domain.WrapError(err, domain.EINVALID, "admin.products.update", "invalid product payload"))
		return
	}

	updated, err := h.catalog.Update(r.Context(), r.PathValue("id"), payload.toDomain())
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}
	handler.RespondJSON(w, http.StatusOK, adminView(updated))
}

// Delete handles DELETE /admin/products/{id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(r.Context(), r.PathValue("id")); err != nil {
		handler.RespondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
