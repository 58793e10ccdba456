package domain

import "time"

type OrderStatus string

const (
	StatusProcessing OrderStatus = "Processing"
	StatusShipped    OrderStatus = "Shipped"
	StatusDelivered  OrderStatus = "Delivered"
	StatusCancelled  OrderStatus = "Cancelled"
)

var validNext = map[OrderStatus]map[OrderStatus]bool{
	StatusProcessing: {StatusShipped: true, StatusCancelled: true},
	StatusShipped:    {StatusDelivered: true, StatusCancelled: true},
	StatusDelivered:  {},
	StatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := validNext[s]
	return ok
}

func (s OrderStatus) CanTransition(to OrderStatus) bool {
	return validNext[s][to]
}

// DeliveryEstimateOffset is added to an order's creation time to produce
// its estimated delivery date.
const DeliveryEstimateOffset = 5 * 24 * time.Hour

type (
	ShippingInfo struct {
		FirstName string
		LastName  string
		Email     string
		Phone     string
		Address   string
		City      string
		State     string
		ZipCode   string
		Country   string
	}

	BillingInfo struct {
		SameAsShipping bool
		FirstName      string
		LastName       string
		Address        string
		City           string
		State          string
		ZipCode        string
		Country        string
	}

	PaymentInfo struct {
		CardNumber     string
		ExpiryDate     string
		CVV            string
		CardholderName string
	}

	// Order is a placed order. Items and the pricing breakdown are frozen
	// at creation time; only Status (and delivery estimate) may change
	// afterwards.
	Order struct {
		OrderID           string
		TrackingNumber    string
		Status            OrderStatus
		Items             []CartLine
		Shipping          ShippingInfo
		Billing           BillingInfo
		Payment           PaymentInfo
		Subtotal          float64
		ShippingCost      float64
		Tax               float64
		Total             float64
		CreatedAt         time.Time
		EstimatedDelivery time.Time
	}

	// OrderDraft is the payload handed to the order store. Identifiers,
	// status and timestamps are assigned by the store on creation.
	OrderDraft struct {
		Items        []CartLine
		Shipping     ShippingInfo
		Billing      BillingInfo
		Payment      PaymentInfo
		Subtotal     float64
		ShippingCost float64
		Tax          float64
		Total        float64
	}

	// OrderPatch carries the mutable fields of a placed order.
	OrderPatch struct {
		Status            *OrderStatus
		EstimatedDelivery *time.Time
	}
)

// FromShipping copies address fields of s into a billing block marked
// same-as-shipping.
func FromShipping(s ShippingInfo) BillingInfo {
	return BillingInfo{
		SameAsShipping: true,
		FirstName:      s.FirstName,
		LastName:       s.LastName,
		Address:        s.Address,
		City:           s.City,
		State:          s.State,
		ZipCode:        s.ZipCode,
		Country:        s.Country,
	}
}
