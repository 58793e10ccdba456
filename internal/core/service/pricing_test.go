package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/service"
)

func TestPriceCart(t *testing.T) {
	tests := []struct {
		name     string
		lines    []domain.CartLine
		subtotal float64
		shipping float64
		tax      float64
		total    float64
	}{
		{
			name:     "BelowFreeShippingThreshold",
			lines:    []domain.CartLine{{Price: 40.0, Quantity: 1}},
			subtotal: 40.0,
			shipping: 9.99,
			tax:      3.20,
			total:    53.19,
		},
		{
			name:     "AboveFreeShippingThreshold",
			lines:    []domain.CartLine{{Price: 20.0, Quantity: 3}},
			subtotal: 60.0,
			shipping: 0,
			tax:      4.80,
			total:    64.80,
		},
		{
			name:     "ExactlyAtThresholdStillPaysShipping",
			lines:    []domain.CartLine{{Price: 25.0, Quantity: 2}},
			subtotal: 50.0,
			shipping: 9.99,
			tax:      4.00,
			total:    63.99,
		},
		{
			name:     "EmptyCart",
			lines:    nil,
			subtotal: 0,
			shipping: 9.99,
			tax:      0,
			total:    9.99,
		},
		{
			name: "MixedLines",
			lines: []domain.CartLine{
				{Price: 18.0, Quantity: 2},
				{Price: 24.0, Quantity: 1},
			},
			subtotal: 60.0,
			shipping: 0,
			tax:      4.80,
			total:    64.80,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			q := service.PriceCart(tc.lines)
			assert.InDelta(t, tc.subtotal, q.Subtotal, 1e-9)
			assert.InDelta(t, tc.shipping, q.Shipping, 1e-9)
			assert.InDelta(t, tc.tax, q.Tax, 1e-9)
			assert.InDelta(t, tc.total, q.Total, 1e-9)
		})
	}
}
