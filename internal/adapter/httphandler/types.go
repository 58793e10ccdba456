package httphandler

import (
	"time"

	"github.com/marketflow/storefront/internal/core/domain"
)

type (
	Product struct {
		ID          string   `json:"id"`
		Name        string   `json:"name"`
		Description string   `json:"description"`
		Brand       string   `json:"brand"`
		Category    string   `json:"category"`
		Price       float64  `json:"price"`
		Rating      float64  `json:"rating"`
		ReviewCount int      `json:"reviewCount"`
		InStock     bool     `json:"inStock"`
		Sizes       []string `json:"sizes,omitempty"`
		Images      []string `json:"images"`
	}

	Review struct {
		ID        string    `json:"id"`
		ProductID string    `json:"productId"`
		Author    string    `json:"author"`
		Rating    int       `json:"rating"`
		Title     string    `json:"title"`
		Comment   string    `json:"comment"`
		Verified  bool      `json:"verified"`
		Date      time.Time `json:"date"`
	}

	CartLine struct {
		ID        string  `json:"id"`
		ProductID string  `json:"productId"`
		Size      string  `json:"size,omitempty"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	}

	Cart struct {
		Items []CartLine `json:"items"`
		Total float64    `json:"total"`
		Count int        `json:"count"`
	}

	AddCartLineReq struct {
		ProductID string  `json:"productId"`
		Size      string  `json:"size"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
	}

	SetQuantityReq struct {
		ProductID string `json:"productId"`
		Size      string `json:"size"`
		Quantity  int    `json:"quantity"`
	}

	ShippingInfo struct {
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

	BillingInfo struct {
		SameAsShipping bool   `json:"sameAsShipping"`
		FirstName      string `json:"firstName"`
		LastName       string `json:"lastName"`
		Address        string `json:"address"`
		City           string `json:"city"`
		State          string `json:"state"`
		ZipCode        string `json:"zipCode"`
		Country        string `json:"country"`
	}

	PaymentInfo struct {
		CardNumber     string `json:"cardNumber"`
		ExpiryDate     string `json:"expiryDate"`
		CVV            string `json:"cvv"`
		CardholderName string `json:"cardholderName"`
	}

	CheckoutSession struct {
		Step     int          `json:"step"`
		Shipping ShippingInfo `json:"shipping"`
		Billing  BillingInfo  `json:"billing"`
		Payment  PaymentInfo  `json:"payment"`
	}

	Quote struct {
		Subtotal float64 `json:"subtotal"`
		Shipping float64 `json:"shipping"`
		Tax      float64 `json:"tax"`
		Total    float64 `json:"total"`
	}

	UpdateStatusReq struct {
		Status string `json:"status"`
	}

	Order struct {
		OrderID           string       `json:"orderId"`
		TrackingNumber    string       `json:"trackingNumber"`
		Status            string       `json:"status"`
		Items             []CartLine   `json:"items"`
		Shipping          ShippingInfo `json:"shipping"`
		Billing           BillingInfo  `json:"billing"`
		Payment           PaymentInfo  `json:"payment"`
		Subtotal          float64      `json:"subtotal"`
		ShippingCost      float64      `json:"shippingCost"`
		Tax               float64      `json:"tax"`
		Total             float64      `json:"total"`
		CreatedAt         time.Time    `json:"createdAt"`
		EstimatedDelivery time.Time    `json:"estimatedDelivery"`
	}
)

func productToView(p domain.Product) Product {
	return Product{
		ID:          p.ProductID,
		Name:        p.Name,
		Description: p.Description,
		Brand:       p.Brand,
		Category:    p.Category,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		InStock:     p.InStock,
		Sizes:       p.Sizes,
		Images:      p.Images,
	}
}

func productsToView(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = productToView(p)
	}
	return out
}

func reviewToView(r domain.Review) Review {
	return Review{
		ID:        r.ReviewID,
		ProductID: r.ProductID,
		Author:    r.Author,
		Rating:    r.Rating,
		Title:     r.Title,
		Comment:   r.Comment,
		Verified:  r.Verified,
		Date:      r.Date,
	}
}

func linesToView(ls []domain.CartLine) []CartLine {
	out := make([]CartLine, len(ls))
	for i, l := range ls {
		out[i] = CartLine{
			ID:        l.LineID,
			ProductID: l.ProductID,
			Size:      l.Size,
			Quantity:  l.Quantity,
			Price:     l.Price,
		}
	}
	return out
}

func shippingToView(v domain.ShippingInfo) ShippingInfo {
	return ShippingInfo(v)
}

func (v ShippingInfo) toDomain() domain.ShippingInfo {
	return domain.ShippingInfo(v)
}

func billingToView(v domain.BillingInfo) BillingInfo {
	return BillingInfo(v)
}

func (v BillingInfo) toDomain() domain.BillingInfo {
	return domain.BillingInfo(v)
}

func paymentToView(v domain.PaymentInfo) PaymentInfo {
	return PaymentInfo(v)
}

func (v PaymentInfo) toDomain() domain.PaymentInfo {
	return domain.PaymentInfo(v)
}

func sessionToView(s domain.CheckoutSession) CheckoutSession {
	return CheckoutSession{
		Step:     int(s.Step),
		Shipping: shippingToView(s.Shipping),
		Billing:  billingToView(s.Billing),
		Payment:  paymentToView(s.Payment),
	}
}

func quoteToView(q domain.Quote) Quote {
	return Quote(q)
}

func orderToView(o domain.Order) Order {
	return Order{
		OrderID:           o.OrderID,
		TrackingNumber:    o.TrackingNumber,
		Status:            string(o.Status),
		Items:             linesToView(o.Items),
		Shipping:          shippingToView(o.Shipping),
		Billing:           billingToView(o.Billing),
		Payment:           paymentToView(o.Payment),
		Subtotal:          o.Subtotal,
		ShippingCost:      o.ShippingCost,
		Tax:               o.Tax,
		Total:             o.Total,
		CreatedAt:         o.CreatedAt,
		EstimatedDelivery: o.EstimatedDelivery,
	}
}
