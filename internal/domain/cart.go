package domain

// =============================================================================
// CART DOMAIN TYPES
// =============================================================================

// CartItem is one product-quantity pairing within a cart.
//
// Product is a snapshot taken when the line was created; it keeps the
// persisted state self-contained. Pricing always resolves the current
// product from the catalog, never the snapshot.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart is an ordered sequence of lines. Insertion order is preserved for
// display; it has no pricing significance. At most one line per product id.
type Cart []CartItem

// Find returns the index of the line for the given product id, or -1.
func (c Cart) Find(productID string) int {
	for i, item := range c {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// Quantity returns the quantity held for the given product id, or 0.
func (c Cart) Quantity(productID string) int {
	if i := c.Find(productID); i >= 0 {
		return c[i].Quantity
	}
	return 0
}

// ItemCount returns the total number of units across all lines.
func (c Cart) ItemCount() int {
	count := 0
	for _, item := range c {
		count += item.Quantity
	}
	return count
}

// Clone returns a copy safe to hand out as a snapshot.
func (c Cart) Clone() Cart {
	if c == nil {
		return nil
	}
	out := make(Cart, len(c))
	copy(out, c)
	return out
}
