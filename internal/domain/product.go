package domain

// =============================================================================
// PRODUCT DOMAIN TYPES
// =============================================================================

// Discount is one bulk discount tier: buying at least Quantity units of the
// product applies Rate to the whole line. Tiers are not required to be
// sorted; the pricing engine picks the best applicable one.
type Discount struct {
	Quantity int     `json:"quantity" validate:"gte=1"`
	Rate     float64 `json:"rate" validate:"gte=0,lt=1"`
}

// Product represents a catalog product.
// JSON field names match the persisted state format.
type Product struct {
	ID    string `json:"id"`
	Name  string `json:"name" validate:"required"`
	Price int64  `json:"price" validate:"gte=0"`
	Stock int    `json:"stock" validate:"gte=0"`

	// Discounts are the bulk discount tiers, evaluated per cart line.
	Discounts []Discount `json:"discounts" validate:"dive"`

	// Display metadata, irrelevant to pricing.
	Description   string `json:"description,omitempty"`
	IsRecommended bool   `json:"isRecommended,omitempty"`
}

// Validate checks the product invariants beyond struct tags.
func (p Product) Validate() error {
	if p.Name == "" {
		return Invalid("product.validate", "product name is required")
	}
	if p.Price < 0 {
		return Invalid("product.validate", "price must not be negative")
	}
	if p.Stock < 0 {
		return Invalid("product.validate", "stock must not be negative")
	}
	for _, d := range p.Discounts {
		if d.Quantity < 1 {
			return Invalid("product.validate", "discount quantity must be at least 1")
		}
		if d.Rate < 0 || d.Rate >= 1 {
			return Invalid("product.validate", "discount rate must be in [0, 1)")
		}
	}
	return nil
}
