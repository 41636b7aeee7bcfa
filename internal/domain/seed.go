package domain

// Seed data used when no persisted state exists or the persisted state
// fails to parse. Values mirror the original storefront data set.

// SeedProducts returns the built-in default catalog.
func SeedProducts() []Product {
	return []Product{
		{
			ID:    "p1",
			Name:  "Product 1",
			Price: 10000,
			Stock: 20,
			Discounts: []Discount{
				{Quantity: 10, Rate: 0.1},
				{Quantity: 20, Rate: 0.2},
			},
			Description: "Top quality premium product.",
		},
		{
			ID:    "p2",
			Name:  "Product 2",
			Price: 20000,
			Stock: 20,
			Discounts: []Discount{
				{Quantity: 10, Rate: 0.15},
			},
			Description:   "Practical product with a wide range of features.",
			IsRecommended: true,
		},
		{
			ID:    "p3",
			Name:  "Product 3",
			Price: 30000,
			Stock: 20,
			Discounts: []Discount{
				{Quantity: 10, Rate: 0.2},
				{Quantity: 30, Rate: 0.25},
			},
			Description: "High capacity, high performance product.",
		},
	}
}

// SeedCoupons returns the built-in default coupons.
func SeedCoupons() []Coupon {
	return []Coupon{
		{
			Code:          "AMOUNT5000",
			Name:          "5,000 won off",
			DiscountType:  DiscountAmount,
			DiscountValue: 5000,
		},
		{
			Code:          "PERCENT10",
			Name:          "10% off",
			DiscountType:  DiscountPercentage,
			DiscountValue: 10,
		},
	}
}
