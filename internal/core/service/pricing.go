package service

import "github.com/marketflow/storefront/internal/core/domain"

// Pricing rules. Shipping is free strictly above the threshold: a subtotal
// of exactly 50.00 still pays the flat fee.
const (
	FreeShippingThreshold = 50.0
	FlatShippingFee       = 9.99
	TaxRate               = 0.08
)

// PriceCart computes the full pricing breakdown for the given cart lines.
// It is a pure function: callers recompute it whenever the cart changes.
func PriceCart(lines []domain.CartLine) domain.Quote {
	subtotal := domain.CartTotal(lines)

	shipping := FlatShippingFee
	if subtotal > FreeShippingThreshold {
		shipping = 0
	}

	tax := subtotal * TaxRate

	return domain.Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal + shipping + tax,
	}
}
