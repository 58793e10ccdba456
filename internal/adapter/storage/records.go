package storage

import (
	"time"

	"github.com/marketflow/storefront/internal/core/domain"
)

// Persisted JSON shapes. They are kept separate from the domain types so
// the storage layout stays stable when the domain evolves.
type (
	cartLineRecord struct {
		ID        string  `json:"id"`
		ProductID string  `json:"productId"`
		Size      string  `json:"size,omitempty"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	}

	shippingRecord struct {
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		Phone     string `json:"phone,omitempty"`
		Address   string `json:"address"`
		City      string `json:"city"`
		State     string `json:"state"`
		ZipCode   string `json:"zipCode"`
		Country   string `json:"country"`
	}

	billingRecord struct {
		SameAsShipping bool   `json:"sameAsShipping"`
		FirstName      string `json:"firstName"`
		LastName       string `json:"lastName"`
		Address        string `json:"address"`
		City           string `json:"city"`
		State          string `json:"state"`
		ZipCode        string `json:"zipCode"`
		Country        string `json:"country"`
	}

	paymentRecord struct {
		CardNumber     string `json:"cardNumber"`
		ExpiryDate     string `json:"expiryDate"`
		CVV            string `json:"cvv"`
		CardholderName string `json:"cardholderName"`
	}

	orderRecord struct {
		OrderID           string           `json:"orderId"`
		TrackingNumber    string           `json:"trackingNumber"`
		Status            string           `json:"status"`
		Items             []cartLineRecord `json:"items"`
		Shipping          shippingRecord   `json:"shipping"`
		Billing           billingRecord    `json:"billing"`
		Payment           paymentRecord    `json:"payment"`
		Subtotal          float64          `json:"subtotal"`
		ShippingCost      float64          `json:"shippingCost"`
		Tax               float64          `json:"tax"`
		Total             float64          `json:"total"`
		CreatedAt         time.Time        `json:"createdAt"`
		EstimatedDelivery time.Time        `json:"estimatedDelivery"`
	}
)

func lineToRecord(l domain.CartLine) cartLineRecord {
	return cartLineRecord{
		ID:        l.LineID,
		ProductID: l.ProductID,
		Size:      l.Size,
		Quantity:  l.Quantity,
		Price:     l.Price,
	}
}

func lineToDomain(r cartLineRecord) domain.CartLine {
	return domain.CartLine{
		LineID:    r.ID,
		ProductID: r.ProductID,
		Size:      r.Size,
		Quantity:  r.Quantity,
		Price:     r.Price,
	}
}

func linesToRecords(ls []domain.CartLine) []cartLineRecord {
	rs := make([]cartLineRecord, len(ls))
	for i, l := range ls {
		rs[i] = lineToRecord(l)
	}
	return rs
}

func linesToDomain(rs []cartLineRecord) []domain.CartLine {
	ls := make([]domain.CartLine, len(rs))
	for i, r := range rs {
		ls[i] = lineToDomain(r)
	}
	return ls
}

func orderToRecord(o domain.Order) orderRecord {
	return orderRecord{
		OrderID:        o.OrderID,
		TrackingNumber: o.TrackingNumber,
		Status:         string(o.Status),
		Items:          linesToRecords(o.Items),
		Shipping: shippingRecord{
			FirstName: o.Shipping.FirstName,
			LastName:  o.Shipping.LastName,
			Email:     o.Shipping.Email,
			Phone:     o.Shipping.Phone,
			Address:   o.Shipping.Address,
			City:      o.Shipping.City,
			State:     o.Shipping.State,
			ZipCode:   o.Shipping.ZipCode,
			Country:   o.Shipping.Country,
		},
		Billing: billingRecord{
			SameAsShipping: o.Billing.SameAsShipping,
			FirstName:      o.Billing.FirstName,
			LastName:       o.Billing.LastName,
			Address:        o.Billing.Address,
			City:           o.Billing.City,
			State:          o.Billing.State,
			ZipCode:        o.Billing.ZipCode,
			Country:        o.Billing.Country,
		},
		Payment: paymentRecord{
			CardNumber:     o.Payment.CardNumber,
			ExpiryDate:     o.Payment.ExpiryDate,
			CVV:            o.Payment.CVV,
			CardholderName: o.Payment.CardholderName,
		},
		Subtotal:          o.Subtotal,
		ShippingCost:      o.ShippingCost,
		Tax:               o.Tax,
		Total:             o.Total,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}

func orderToDomain(r orderRecord) domain.Order {
	return domain.Order{
		OrderID:        r.OrderID,
		TrackingNumber: r.TrackingNumber,
		Status:         domain.OrderStatus(r.Status),
		Items:          linesToDomain(r.Items),
		Shipping: domain.ShippingInfo{
			FirstName: r.Shipping.FirstName,
			LastName:  r.Shipping.LastName,
			Email:     r.Shipping.Email,
			Phone:     r.Shipping.Phone,
			Address:   r.Shipping.Address,
			City:      r.Shipping.City,
			State:     r.Shipping.State,
			ZipCode:   r.Shipping.ZipCode,
			Country:   r.Shipping.Country,
		},
		Billing: domain.BillingInfo{
			SameAsShipping: r.Billing.SameAsShipping,
			FirstName:      r.Billing.FirstName,
			LastName:       r.Billing.LastName,
			Address:        r.Billing.Address,
			City:           r.Billing.City,
			State:          r.Billing.State,
			ZipCode:        r.Billing.ZipCode,
			Country:        r.Billing.Country,
		},
		Payment: domain.PaymentInfo{
			CardNumber:     r.Payment.CardNumber,
			ExpiryDate:     r.Payment.ExpiryDate,
			CVV:            r.Payment.CVV,
			CardholderName: r.Payment.CardholderName,
		},
		Subtotal:          r.Subtotal,
		ShippingCost:      r.ShippingCost,
		Tax:               r.Tax,
		Total:             r.Total,
		CreatedAt:         r.CreatedAt,
		EstimatedDelivery: r.EstimatedDelivery,
	}
}
