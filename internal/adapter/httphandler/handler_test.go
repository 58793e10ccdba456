package httphandler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marketflow/storefront/internal/adapter/catalog"
	"github.com/marketflow/storefront/internal/adapter/httphandler"
	"github.com/marketflow/storefront/internal/adapter/storage"
	"github.com/marketflow/storefront/internal/core/service"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	kv, err := storage.OpenKV(filepath.Join(t.TempDir(), "test.db"), 0)
	require.NoError(t, err)
	t.Cleanup(func() { kv.Close() })

	cart, err := storage.NewCartStore(kv)
	require.NoError(t, err)
	orders, err := storage.NewOrderStore(kv)
	require.NoError(t, err)
	c, err := catalog.New(0)
	require.NoError(t, err)

	svc := service.New(c, cart, orders)

	r := httphandler.NewRouter()
	httphandler.RegisterProducts(r, c, c)
	httphandler.RegisterCart(r, cart, c)
	httphandler.RegisterCheckout(r, svc)
	httphandler.RegisterOrders(r, orders)

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func do(
	t *testing.T, srv *httptest.Server, method, path string, body any,
) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, srv.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func TestProductRoutes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("List", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/v1/products", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ps := decode[[]httphandler.Product](t, resp)
		assert.NotEmpty(t, ps)
	})

	t.Run("Category", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/v1/products?category=shoes", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ps := decode[[]httphandler.Product](t, resp)
		assert.Len(t, ps, 2)
	})

	t.Run("Search", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/v1/products?q=denim", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		ps := decode[[]httphandler.Product](t, resp)
		require.Len(t, ps, 1)
		assert.Equal(t, "2", ps[0].ID)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/v1/products/999", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("Reviews", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/v1/products/1/reviews", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		rs := decode[[]httphandler.Review](t, resp)
		assert.Len(t, rs, 2)
	})
}

func TestCartRoutes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("AddAndGet", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/v1/cart/items",
			httphandler.AddCartLineReq{ProductID: "1", Size: "10", Quantity: 2})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		items := decode[[]httphandler.CartLine](t, resp)
		require.Len(t, items, 1)
		assert.Equal(t, 89.99, items[0].Price, "price defaults to catalog price")

		resp = do(t, srv, http.MethodGet, "/v1/cart", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		cart := decode[httphandler.Cart](t, resp)
		assert.Equal(t, 2, cart.Count)
		assert.InDelta(t, 179.98, cart.Total, 1e-9)
	})

	t.Run("UnknownProduct", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/v1/cart/items",
			httphandler.AddCartLineReq{ProductID: "999", Quantity: 1})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("UnknownSize", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/v1/cart/items",
			httphandler.AddCartLineReq{ProductID: "1", Size: "15", Quantity: 1})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("SetQuantityToZeroRemoves", func(t *testing.T) {
		resp := do(t, srv, http.MethodPut, "/v1/cart/items",
			httphandler.SetQuantityReq{ProductID: "1", Size: "10", Quantity: 0})
		require.Equal(t, http.StatusOK, resp.StatusCode)
		items := decode[[]httphandler.CartLine](t, resp)
		assert.Empty(t, items)
	})

	t.Run("SetQuantityUnknownLine", func(t *testing.T) {
		resp := do(t, srv, http.MethodPut, "/v1/cart/items",
			httphandler.SetQuantityReq{ProductID: "1", Size: "10", Quantity: 1})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestCheckoutFlow(t *testing.T) {
	srv := newTestServer(t)

	t.Run("EmptyCartIsRejected", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/v1/checkout", nil)
		assert.Equal(t, http.StatusConflict, resp.StatusCode)
	})

	t.Run("FullFlow", func(t *testing.T) {
		resp := do(t, srv, http.MethodPost, "/v1/cart/items",
			httphandler.AddCartLineReq{ProductID: "6", Quantity: 1})
		require.Equal(t, http.StatusOK, resp.StatusCode)

		resp = do(t, srv, http.MethodPost, "/v1/checkout", nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		sess := decode[httphandler.CheckoutSession](t, resp)
		assert.Equal(t, 1, sess.Step)

		resp = do(t, srv, http.MethodPost, "/v1/checkout/next", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

		resp = do(t, srv, http.MethodPut, "/v1/checkout/shipping",
			httphandler.ShippingInfo{
				FirstName: "Dana", LastName: "Miles",
				Email: "dana@example.com", Address: "1 Main St",
				City: "Portland", State: "OR", ZipCode: "97201",
				Country: "United States",
			})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = do(t, srv, http.MethodPost, "/v1/checkout/next", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		sess = decode[httphandler.CheckoutSession](t, resp)
		assert.Equal(t, 2, sess.Step)

		resp = do(t, srv, http.MethodPost, "/v1/checkout/next", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		sess = decode[httphandler.CheckoutSession](t, resp)
		assert.Equal(t, 3, sess.Step)

		resp = do(t, srv, http.MethodGet, "/v1/checkout/quote", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		quote := decode[httphandler.Quote](t, resp)
		assert.InDelta(t, 59.99, quote.Subtotal, 1e-9)
		assert.InDelta(t, 0, quote.Shipping, 1e-9)

		resp = do(t, srv, http.MethodPut, "/v1/checkout/payment",
			httphandler.PaymentInfo{
				CardNumber: "4111111111111111", ExpiryDate: "12/28",
				CVV: "123", CardholderName: "Dana Miles",
			})
		require.Equal(t, http.StatusNoContent, resp.StatusCode)

		resp = do(t, srv, http.MethodPost, "/v1/checkout/order", nil)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		order := decode[httphandler.Order](t, resp)
		assert.NotEmpty(t, order.OrderID)
		assert.Equal(t, "Processing", order.Status)

		resp = do(t, srv, http.MethodGet, "/v1/cart", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		cart := decode[httphandler.Cart](t, resp)
		assert.Empty(t, cart.Items)

		resp = do(t, srv, http.MethodGet, "/v1/orders/"+order.OrderID, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
		stored := decode[httphandler.Order](t, resp)
		assert.Equal(t, order.Items, stored.Items)
	})
}

func TestOrderRoutes(t *testing.T) {
	srv := newTestServer(t)

	t.Run("UnknownOrder", func(t *testing.T) {
		resp := do(t, srv, http.MethodGet, "/v1/orders/ORD-000000", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		resp := do(t, srv, http.MethodPatch, "/v1/orders/ORD-000000/status",
			httphandler.UpdateStatusReq{Status: "Teleported"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}
