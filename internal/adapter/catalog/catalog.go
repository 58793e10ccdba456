// Package catalog serves the static product and review lists. The data is
// compiled into the binary and loaded once at construction; nothing here
// ever mutates it.
package catalog

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/port"
	"github.com/marketflow/storefront/pkg/simwait"
)

//go:embed products.json
var productsJSON []byte

//go:embed reviews.json
var reviewsJSON []byte

var _ port.ProductReader = (*Catalog)(nil)
var _ port.ReviewReader = (*Catalog)(nil)

type (
	productRecord struct {
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

	reviewRecord struct {
		ID        string    `json:"id"`
		ProductID string    `json:"productId"`
		Author    string    `json:"author"`
		Rating    int       `json:"rating"`
		Title     string    `json:"title"`
		Comment   string    `json:"comment"`
		Verified  bool      `json:"verified"`
		Date      time.Time `json:"date"`
	}
)

type Catalog struct {
	latency  time.Duration
	products []domain.Product
	reviews  []domain.Review
}

func New(latency time.Duration) (*Catalog, error) {
	const op = "catalog.New"

	var ps []productRecord
	if err := json.Unmarshal(productsJSON, &ps); err != nil {
		return nil, fmt.Errorf("%s: products data: %w", op, err)
	}

	var rs []reviewRecord
	if err := json.Unmarshal(reviewsJSON, &rs); err != nil {
		return nil, fmt.Errorf("%s: reviews data: %w", op, err)
	}

	c := &Catalog{latency: latency}
	for _, p := range ps {
		c.products = append(c.products, domain.Product{
			ProductID:   p.ID,
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
		})
	}
	for _, r := range rs {
		c.reviews = append(c.reviews, domain.Review{
			ReviewID:  r.ID,
			ProductID: r.ProductID,
			Author:    r.Author,
			Rating:    r.Rating,
			Title:     r.Title,
			Comment:   r.Comment,
			Verified:  r.Verified,
			Date:      r.Date,
		})
	}
	return c, nil
}

func (c *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	const op = "Catalog.Products"

	if err := simwait.Wait(ctx, c.latency); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cp := make([]domain.Product, len(c.products))
	copy(cp, c.products)
	return cp, nil
}

func (c *Catalog) ProductByID(
	ctx context.Context, id string,
) (domain.Product, error) {
	const op = "Catalog.ProductByID"

	if err := simwait.Wait(ctx, c.latency); err != nil {
		return domain.Product{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, p := range c.products {
		if p.ProductID == id {
			return p, nil
		}
	}
	return domain.Product{}, fmt.Errorf("%s: product %s: %w", op, id, domain.ErrNotFound)
}

func (c *Catalog) ProductsByCategory(
	ctx context.Context, category string,
) ([]domain.Product, error) {
	const op = "Catalog.ProductsByCategory"

	if err := simwait.Wait(ctx, c.latency); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var out []domain.Product
	for _, p := range c.products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

// SearchProducts matches the query as a case-insensitive substring of the
// product name, description, category or brand.
func (c *Catalog) SearchProducts(
	ctx context.Context, query string,
) ([]domain.Product, error) {
	const op = "Catalog.SearchProducts"

	if err := simwait.Wait(ctx, c.latency); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	term := strings.ToLower(query)
	var out []domain.Product
	for _, p := range c.products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Brand), term) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (c *Catalog) Reviews(ctx context.Context) ([]domain.Review, error) {
	const op = "Catalog.Reviews"

	if err := simwait.Wait(ctx, c.latency); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	cp := make([]domain.Review, len(c.reviews))
	copy(cp, c.reviews)
	return cp, nil
}

func (c *Catalog) ReviewByID(
	ctx context.Context, id string,
) (domain.Review, error) {
	const op = "Catalog.ReviewByID"

	if err := simwait.Wait(ctx, c.latency); err != nil {
		return domain.Review{}, fmt.Errorf("%s: %w", op, err)
	}

	for _, r := range c.reviews {
		if r.ReviewID == id {
			return r, nil
		}
	}
	return domain.Review{}, fmt.Errorf("%s: review %s: %w", op, id, domain.ErrNotFound)
}

func (c *Catalog) ReviewsByProduct(
	ctx context.Context, productID string,
) ([]domain.Review, error) {
	const op = "Catalog.ReviewsByProduct"

	if err := simwait.Wait(ctx, c.latency); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var out []domain.Review
	for _, r := range c.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out, nil
}
