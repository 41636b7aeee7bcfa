package storefront

import (
	"net/http"

	"github.com/hyunwoopark/podomarket/internal/domain"
	"github.com/hyunwoopark/podomarket/internal/handler"
	"github.com/hyunwoopark/podomarket/internal/pricing"
	"github.com/hyunwoopark/podomarket/internal/service"
)

// ProductHandler handles the customer-facing product listing
type ProductHandler struct {
	catalog service.CatalogService
	cart    service.CartService
	search  *SearchTracker
}

// NewProductHandler creates a new product handler
func NewProductHandler(catalog service.CatalogService, cart service.CartService, search *SearchTracker) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		cart:    cart,
		search:  search,
	}
}

// productView is one catalog entry as shown to customers.
type productView struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Price          int64             `json:"price"`
	DisplayPrice   string            `json:"displayPrice"`
	RemainingStock int               `json:"remainingStock"`
	SoldOut        bool              `json:"soldOut"`
	Discounts      []domain.Discount `json:"discounts,omitempty"`
	Description    string            `json:"description,omitempty"`
	IsRecommended  bool              `json:"isRecommended,omitempty"`
}

// List handles GET /products?q=term
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	term := r.URL.Query().Get("q")
	if h.search != nil {
		h.search.Observe(term)
	}

	products := h.catalog.Search(ctx, term)
	cart := h.cart.Items(ctx)

	views := make([]productView, 0, len(products))
	for _, p := range products {
		remaining := pricing.RemainingStock(p, cart)
		if remaining < 0 {
			remaining = 0
		}
		views = append(views, productView{
			ID:             p.ID,
			Name:           p.Name,
			Price:          p.Price,
			DisplayPrice:   handler.FormatStockPrice(float64(p.Price), remaining, false),
			RemainingStock: remaining,
			SoldOut:        remaining <= 0,
			Discounts:      p.Discounts,
			Description:    p.Description,
			IsRecommended:  p.IsRecommended,
		})
	}

	handler.RespondJSON(w, http.StatusOK, map[string]any{
		"products": views,
	})
}
