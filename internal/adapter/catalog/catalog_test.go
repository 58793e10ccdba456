package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketflow/storefront/internal/adapter/catalog"
	"github.com/marketflow/storefront/internal/core/domain"
)

func newCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New(0)
	require.NoError(t, err)
	return c
}

func TestCatalogProducts(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		c := newCatalog(t)

		ps, err := c.Products(context.Background())
		require.NoError(t, err)
		assert.NotEmpty(t, ps)
	})

	t.Run("ByID", func(t *testing.T) {
		c := newCatalog(t)

		p, err := c.ProductByID(context.Background(), "1")
		require.NoError(t, err)
		assert.Equal(t, "Velocity Running Sneakers", p.Name)
		assert.True(t, p.HasSize("10"))
		assert.False(t, p.HasSize("15"))
	})

	t.Run("ByIDNotFound", func(t *testing.T) {
		c := newCatalog(t)

		_, err := c.ProductByID(context.Background(), "999")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("ByCategoryIsCaseInsensitive", func(t *testing.T) {
		c := newCatalog(t)

		upper, err := c.ProductsByCategory(context.Background(), "SHOES")
		require.NoError(t, err)
		lower, err := c.ProductsByCategory(context.Background(), "shoes")
		require.NoError(t, err)

		assert.Len(t, upper, 2)
		assert.Equal(t, upper, lower)
	})

	t.Run("SearchMatchesAllTextFields", func(t *testing.T) {
		c := newCatalog(t)

		byName, err := c.SearchProducts(context.Background(), "denim")
		require.NoError(t, err)
		require.Len(t, byName, 1)
		assert.Equal(t, "2", byName[0].ProductID)

		byBrand, err := c.SearchProducts(context.Background(), "northloom")
		require.NoError(t, err)
		assert.Len(t, byBrand, 3)

		byDescription, err := c.SearchProducts(context.Background(), "waterproof")
		require.NoError(t, err)
		require.Len(t, byDescription, 1)
		assert.Equal(t, "4", byDescription[0].ProductID)

		none, err := c.SearchProducts(context.Background(), "zeppelin")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("SizelessProductAcceptsOnlyEmptySize", func(t *testing.T) {
		c := newCatalog(t)

		p, err := c.ProductByID(context.Background(), "5")
		require.NoError(t, err)
		assert.True(t, p.HasSize(""))
		assert.False(t, p.HasSize("M"))
	})
}

func TestCatalogReviews(t *testing.T) {
	t.Run("ByProduct", func(t *testing.T) {
		c := newCatalog(t)

		rs, err := c.ReviewsByProduct(context.Background(), "6")
		require.NoError(t, err)
		require.Len(t, rs, 2)
		for _, r := range rs {
			assert.Equal(t, "6", r.ProductID)
		}
	})

	t.Run("ByProductNoReviews", func(t *testing.T) {
		c := newCatalog(t)

		rs, err := c.ReviewsByProduct(context.Background(), "8")
		require.NoError(t, err)
		assert.Empty(t, rs)
	})

	t.Run("ByID", func(t *testing.T) {
		c := newCatalog(t)

		r, err := c.ReviewByID(context.Background(), "104")
		require.NoError(t, err)
		assert.Equal(t, "3", r.ProductID)
		assert.Equal(t, 5, r.Rating)
	})

	t.Run("ByIDNotFound", func(t *testing.T) {
		c := newCatalog(t)

		_, err := c.ReviewByID(context.Background(), "999")
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
