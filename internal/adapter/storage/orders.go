package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/port"
)

var _ port.OrderStore = (*OrderStore)(nil)

const (
	orderIDPrefix     = "ORD-"
	orderIDSuffixLen  = 6
	trackingNumberLen = 10
	idAlphabet        = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// OrderStore keeps the placed orders in memory and writes the whole
// collection back to the KV key after every mutation. Orders are
// practically append-only: items and pricing never change after creation,
// only the status (and delivery estimate) do. Delete exists as an
// administrative operation.
type OrderStore struct {
	kv  *KV
	now func() time.Time

	mu     sync.Mutex
	orders []domain.Order
}

func NewOrderStore(kv *KV) (*OrderStore, error) {
	const op = "OrderStore.New"

	raw, err := kv.get(OrdersKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []orderRecord
	if raw != nil {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("%s: malformed orders blob: %w", op, err)
		}
	}

	orders := make([]domain.Order, len(records))
	for i, r := range records {
		orders[i] = orderToDomain(r)
	}

	return &OrderStore{kv: kv, now: time.Now, orders: orders}, nil
}

// CreateOrder assigns identifiers, stamps timestamps, sets the initial
// status and appends the order. The returned order carries all generated
// fields.
func (s *OrderStore) CreateOrder(
	ctx context.Context, draft domain.OrderDraft,
) (domain.Order, error) {
	const op = "OrderStore.CreateOrder"

	if err := s.kv.delay(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	createdAt := s.now().UTC()
	items := make([]domain.CartLine, len(draft.Items))
	copy(items, draft.Items)

	order := domain.Order{
		OrderID:           s.nextOrderID(createdAt),
		TrackingNumber:    s.nextTrackingNumber(),
		Status:            domain.StatusProcessing,
		Items:             items,
		Shipping:          draft.Shipping,
		Billing:           draft.Billing,
		Payment:           draft.Payment,
		Subtotal:          draft.Subtotal,
		ShippingCost:      draft.ShippingCost,
		Tax:               draft.Tax,
		Total:             draft.Total,
		CreatedAt:         createdAt,
		EstimatedDelivery: createdAt.Add(domain.DeliveryEstimateOffset),
	}

	s.orders = append(s.orders, order)
	if err := s.persist(); err != nil {
		s.orders = s.orders[:len(s.orders)-1]
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

func (s *OrderStore) Orders(ctx context.Context) ([]domain.Order, error) {
	const op = "OrderStore.Orders"

	if err := s.kv.delay(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cp := make([]domain.Order, len(s.orders))
	copy(cp, s.orders)
	return cp, nil
}

func (s *OrderStore) OrderByID(
	ctx context.Context, orderID string,
) (domain.Order, error) {
	const op = "OrderStore.OrderByID"

	if err := s.kv.delay(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(orderID)
	if idx == -1 {
		return domain.Order{}, fmt.Errorf("%s: order %s: %w", op, orderID, domain.ErrNotFound)
	}
	return s.orders[idx], nil
}

// UpdateOrder merges the patch into the stored order. Items, addresses and
// the pricing breakdown are immutable after creation and are not part of
// the patch shape.
func (s *OrderStore) UpdateOrder(
	ctx context.Context, orderID string, patch domain.OrderPatch,
) (domain.Order, error) {
	const op = "OrderStore.UpdateOrder"

	if err := s.kv.delay(ctx); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(orderID)
	if idx == -1 {
		return domain.Order{}, fmt.Errorf("%s: order %s: %w", op, orderID, domain.ErrNotFound)
	}

	order := s.orders[idx]
	if patch.Status != nil {
		if !order.Status.CanTransition(*patch.Status) {
			return domain.Order{}, fmt.Errorf(
				"%s: %s -> %s: %w", op, order.Status, *patch.Status, domain.ErrBadTransition,
			)
		}
		order.Status = *patch.Status
	}
	if patch.EstimatedDelivery != nil {
		order.EstimatedDelivery = *patch.EstimatedDelivery
	}

	s.orders[idx] = order
	if err := s.persist(); err != nil {
		return domain.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	return order, nil
}

func (s *OrderStore) UpdateOrderStatus(
	ctx context.Context, orderID string, status domain.OrderStatus,
) (domain.Order, error) {
	return s.UpdateOrder(ctx, orderID, domain.OrderPatch{Status: &status})
}

func (s *OrderStore) DeleteOrder(ctx context.Context, orderID string) error {
	const op = "OrderStore.DeleteOrder"

	if err := s.kv.delay(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(orderID)
	if idx == -1 {
		return fmt.Errorf("%s: order %s: %w", op, orderID, domain.ErrNotFound)
	}

	s.orders = append(s.orders[:idx], s.orders[idx+1:]...)
	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	slog.Warn("order deleted", "op", op, "orderID", orderID)
	return nil
}

// indexOf returns the position of the order or -1. Callers must hold s.mu.
func (s *OrderStore) indexOf(orderID string) int {
	for i := range s.orders {
		if s.orders[i].OrderID == orderID {
			return i
		}
	}
	return -1
}

// nextOrderID derives a human-readable identifier from the millisecond
// timestamp suffix, e.g. ORD-847201. Rapid successive calls can land in
// the same window, so on collision the suffix is replaced with random
// characters instead. Callers must hold s.mu.
func (s *OrderStore) nextOrderID(createdAt time.Time) string {
	ms := strconv.FormatInt(createdAt.UnixMilli(), 10)
	id := orderIDPrefix + ms[len(ms)-orderIDSuffixLen:]
	for s.orderIDTaken(id) {
		id = orderIDPrefix + randomToken(orderIDSuffixLen)
	}
	return id
}

func (s *OrderStore) orderIDTaken(id string) bool {
	return s.indexOf(id) != -1
}

// nextTrackingNumber returns a random alphanumeric token distinct from
// every stored order's tracking number. Callers must hold s.mu.
func (s *OrderStore) nextTrackingNumber() string {
	for {
		tn := randomToken(trackingNumberLen)
		taken := false
		for i := range s.orders {
			if s.orders[i].TrackingNumber == tn {
				taken = true
				break
			}
		}
		if !taken {
			return tn
		}
	}
}

func randomToken(n int) string {
	b := make([]byte, n)
	for i := range b {
		b[i] = idAlphabet[rand.Intn(len(idAlphabet))]
	}
	return string(b)
}

// persist writes the whole collection under the orders key.
// Callers must hold s.mu.
func (s *OrderStore) persist() error {
	records := make([]orderRecord, len(s.orders))
	for i, o := range s.orders {
		records[i] = orderToRecord(o)
	}
	data, err := json.Marshal(records)
	if err != nil {
		return err
	}
	return s.kv.put(OrdersKey, data)
}
