package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/port"
)

var _ port.CartStore = (*CartStore)(nil)

// CartStore keeps the cart lines in memory and writes the whole collection
// back to the KV key after every mutation. State is loaded once at
// construction; a concurrent writer on the same file is silently
// overwritten (last write wins), which matches the single-user contract of
// the storefront.
type CartStore struct {
	kv *KV

	mu    sync.Mutex
	lines []domain.CartLine
}

func NewCartStore(kv *KV) (*CartStore, error) {
	const op = "CartStore.New"

	raw, err := kv.get(CartKey)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var records []cartLineRecord
	if raw != nil {
		if err := json.Unmarshal(raw, &records); err != nil {
			return nil, fmt.Errorf("%s: malformed cart blob: %w", op, err)
		}
	}

	return &CartStore{kv: kv, lines: linesToDomain(records)}, nil
}

func (s *CartStore) Items(ctx context.Context) ([]domain.CartLine, error) {
	const op = "CartStore.Items"

	if err := s.kv.delay(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.copyLines(), nil
}

// Add merges the incoming line into an existing (product, size) line by
// summing quantities. The stored unit price is kept as-is: the first add
// wins. A new selection gets a fresh line identifier.
func (s *CartStore) Add(
	ctx context.Context, line domain.CartLine,
) ([]domain.CartLine, error) {
	const op = "CartStore.Add"

	if err := s.kv.delay(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].SameSelection(line.ProductID, line.Size) {
			s.lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		line.LineID = uuid.NewString()
		s.lines = append(s.lines, line)
	}

	if err := s.persist(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.copyLines(), nil
}

// SetQuantity sets the quantity of the matching line exactly. A quantity
// of zero or less removes the line rather than failing.
func (s *CartStore) SetQuantity(
	ctx context.Context, productID, size string, quantity int,
) ([]domain.CartLine, error) {
	const op = "CartStore.SetQuantity"

	if err := s.kv.delay(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.lines {
		if s.lines[i].SameSelection(productID, size) {
			idx = i
			break
		}
	}
	if idx == -1 {
		return nil, fmt.Errorf("%s: cart line: %w", op, domain.ErrNotFound)
	}

	if quantity <= 0 {
		s.lines = append(s.lines[:idx], s.lines[idx+1:]...)
	} else {
		s.lines[idx].Quantity = quantity
	}

	if err := s.persist(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.copyLines(), nil
}

// Remove deletes the matching line. Removing an absent selection is a
// no-op, not an error.
func (s *CartStore) Remove(
	ctx context.Context, productID, size string,
) ([]domain.CartLine, error) {
	const op = "CartStore.Remove"

	if err := s.kv.delay(ctx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.lines[:0]
	for _, l := range s.lines {
		if !l.SameSelection(productID, size) {
			kept = append(kept, l)
		}
	}
	s.lines = kept

	if err := s.persist(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.copyLines(), nil
}

func (s *CartStore) Clear(ctx context.Context) error {
	const op = "CartStore.Clear"

	if err := s.kv.delay(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = nil
	if err := s.persist(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *CartStore) Total(ctx context.Context) (float64, error) {
	const op = "CartStore.Total"

	if err := s.kv.delay(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartTotal(s.lines), nil
}

func (s *CartStore) Count(ctx context.Context) (int, error) {
	const op = "CartStore.Count"

	if err := s.kv.delay(ctx); err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.CartCount(s.lines), nil
}

// persist writes the whole collection under the cart key.
// Callers must hold s.mu.
func (s *CartStore) persist() error {
	data, err := json.Marshal(linesToRecords(s.lines))
	if err != nil {
		return err
	}
	return s.kv.put(CartKey, data)
}

func (s *CartStore) copyLines() []domain.CartLine {
	cp := make([]domain.CartLine, len(s.lines))
	copy(cp, s.lines)
	return cp
}
