// Package service hosts the checkout orchestrator: the component that
// sequences the shipping -> billing -> payment wizard over the cart and
// order stores.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/port"
)

var _ port.Checkout = (*Service)(nil)

// Service coordinates the cart store, the product catalog and the order
// store. It owns at most one transient checkout session at a time; the
// session is never persisted and is discarded on restart.
type Service struct {
	catalog port.ProductReader
	cart    port.CartStore
	orders  port.OrderStore

	mu      sync.Mutex
	session *domain.CheckoutSession
}

func New(
	catalog port.ProductReader,
	cart port.CartStore,
	orders port.OrderStore,
) *Service {
	return &Service{catalog: catalog, cart: cart, orders: orders}
}

// Begin opens a checkout session on the shipping step. An empty cart is a
// hard precondition failure: the caller is expected to route the user back
// to the cart view.
func (s *Service) Begin(ctx context.Context) (domain.CheckoutSession, error) {
	const op = "Service.Begin"

	lines, err := s.cart.Items(ctx)
	if err != nil {
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(lines) == 0 {
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.session = &domain.CheckoutSession{
		Step:    domain.StepShipping,
		Billing: domain.BillingInfo{SameAsShipping: true},
	}
	return *s.session, nil
}

func (s *Service) Session() (domain.CheckoutSession, error) {
	const op = "Service.Session"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	return *s.session, nil
}

func (s *Service) SetShipping(v domain.ShippingInfo) error {
	const op = "Service.SetShipping"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	s.session.Shipping = v
	return nil
}

func (s *Service) SetBilling(v domain.BillingInfo) error {
	const op = "Service.SetBilling"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	s.session.Billing = v
	return nil
}

func (s *Service) SetPayment(v domain.PaymentInfo) error {
	const op = "Service.SetPayment"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	s.session.Payment = v
	return nil
}

// Next advances the wizard by one step after validating the current one.
// A failed validation blocks the transition with ErrMissingFields and
// leaves the session where it is. On the payment step Next is a no-op and
// returns the session unchanged; PlaceOrder is the only way forward.
func (s *Service) Next(ctx context.Context) (domain.CheckoutSession, error) {
	const op = "Service.Next"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	if s.session.Step >= domain.StepPayment {
		return *s.session, nil
	}
	if !stepValid(*s.session) {
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, domain.ErrMissingFields)
	}

	s.session.Step++
	return *s.session, nil
}

// Back steps the wizard backward without validation, never below the
// shipping step.
func (s *Service) Back() (domain.CheckoutSession, error) {
	const op = "Service.Back"

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return domain.CheckoutSession{}, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	if s.session.Step > domain.StepShipping {
		s.session.Step--
	}
	return *s.session, nil
}

// CartProducts resolves the catalog entries referenced by the current cart
// lines, keyed by product identifier. The checkout summary renders from
// this map.
func (s *Service) CartProducts(
	ctx context.Context,
) (map[string]domain.Product, error) {
	const op = "Service.CartProducts"

	lines, err := s.cart.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	products := make(map[string]domain.Product)
	for _, l := range lines {
		if _, ok := products[l.ProductID]; ok {
			continue
		}
		p, err := s.catalog.ProductByID(ctx, l.ProductID)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		products[l.ProductID] = p
	}
	return products, nil
}

// Quote prices the live cart contents.
func (s *Service) Quote(ctx context.Context) (domain.Quote, error) {
	const op = "Service.Quote"

	lines, err := s.cart.Items(ctx)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("%s: %w", op, err)
	}
	return PriceCart(lines), nil
}

// PlaceOrder submits the wizard. The session must have reached the payment
// step: Next already validated shipping and billing on the way there, so a
// session still on an earlier step has unchecked addresses and is rejected.
// Payment fields are re-validated here since no Next guards them. On success
// the cart is cleared and the session ends. A cart-clear failure after a
// successful create is logged and swallowed: the order exists, a stale cart
// is the lesser problem. A create failure leaves both cart and session
// intact so the user can retry.
func (s *Service) PlaceOrder(ctx context.Context) (domain.Order, error) {
	const op = "Service.PlaceOrder"
	log := slog.With("op", op)

	s.mu.Lock()
	if s.session == nil {
		s.mu.Unlock()
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrNoCheckout)
	}
	sess := *s.session
	s.mu.Unlock()

	if sess.Step != domain.StepPayment {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrMissingFields)
	}
	if !paymentValid(sess.Payment) {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrMissingFields)
	}

	lines, err := s.cart.Items(ctx)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	if len(lines) == 0 {
		return domain.Order{}, fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	billing := sess.Billing
	if billing.SameAsShipping {
		billing = domain.FromShipping(sess.Shipping)
	}

	quote := PriceCart(lines)
	draft := domain.OrderDraft{
		Items:        lines,
		Shipping:     sess.Shipping,
		Billing:      billing,
		Payment:      sess.Payment,
		Subtotal:     quote.Subtotal,
		ShippingCost: quote.Shipping,
		Tax:          quote.Tax,
		Total:        quote.Total,
	}

	order, err := s.orders.CreateOrder(ctx, draft)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	if err := s.cart.Clear(ctx); err != nil {
		log.Error("failed to clear cart after order creation",
			"orderID", order.OrderID, "err", err)
	}

	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()

	log.Info("order placed", "orderID", order.OrderID, "total", order.Total)
	return order, nil
}
