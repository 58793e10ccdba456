package port

import (
	"context"

	"github.com/marketflow/storefront/internal/core/domain"
)

type ProductReader interface {
	Products(context.Context) ([]domain.Product, error)
	ProductByID(context.Context, string) (domain.Product, error)
	ProductsByCategory(context.Context, string) ([]domain.Product, error)
	SearchProducts(context.Context, string) ([]domain.Product, error)
}

type ReviewReader interface {
	Reviews(context.Context) ([]domain.Review, error)
	ReviewByID(context.Context, string) (domain.Review, error)
	ReviewsByProduct(context.Context, string) ([]domain.Review, error)
}

type CartStore interface {
	Items(context.Context) ([]domain.CartLine, error)
	Add(context.Context, domain.CartLine) ([]domain.CartLine, error)
	SetQuantity(ctx context.Context, productID, size string, quantity int) ([]domain.CartLine, error)
	Remove(ctx context.Context, productID, size string) ([]domain.CartLine, error)
	Clear(context.Context) error
	Total(context.Context) (float64, error)
	Count(context.Context) (int, error)
}

type OrderStore interface {
	CreateOrder(context.Context, domain.OrderDraft) (domain.Order, error)
	Orders(context.Context) ([]domain.Order, error)
	OrderByID(context.Context, string) (domain.Order, error)
	UpdateOrder(context.Context, string, domain.OrderPatch) (domain.Order, error)
	UpdateOrderStatus(context.Context, string, domain.OrderStatus) (domain.Order, error)
	DeleteOrder(context.Context, string) error
}

type Checkout interface {
	Begin(context.Context) (domain.CheckoutSession, error)
	Session() (domain.CheckoutSession, error)
	SetShipping(domain.ShippingInfo) error
	SetBilling(domain.BillingInfo) error
	SetPayment(domain.PaymentInfo) error
	Next(context.Context) (domain.CheckoutSession, error)
	Back() (domain.CheckoutSession, error)
	Quote(context.Context) (domain.Quote, error)
	CartProducts(context.Context) (map[string]domain.Product, error)
	PlaceOrder(context.Context) (domain.Order, error)
}
