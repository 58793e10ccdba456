package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/port"
)

type ProductsHandler struct {
	products port.ProductReader
	reviews  port.ReviewReader
}

func RegisterProducts(
	r chi.Router, products port.ProductReader, reviews port.ReviewReader,
) {
	h := ProductsHandler{products, reviews}
	r.Get("/v1/products", h.list)
	r.Get("/v1/products/{id}", h.byID)
	r.Get("/v1/products/{id}/reviews", h.reviewsByProduct)
}

// list serves the whole catalog, one category, or a search result,
// depending on the category / q query parameters.
func (h ProductsHandler) list(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.list"
	log := slog.With("op", op)

	var (
		vs  []domain.Product
		err error
	)
	query := r.URL.Query()
	switch {
	case query.Get("category") != "":
		vs, err = h.products.ProductsByCategory(r.Context(), query.Get("category"))
	case query.Get("q") != "":
		vs, err = h.products.SearchProducts(r.Context(), query.Get("q"))
	default:
		vs, err = h.products.Products(r.Context())
	}
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, productsToView(vs))
}

func (h ProductsHandler) byID(w http.ResponseWriter, r *http.Request) {
	const op = "ProductsHandler.byID"
	log := slog.With("op", op)

	p, err := h.products.ProductByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, productToView(p))
}

func (h ProductsHandler) reviewsByProduct(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "ProductsHandler.reviewsByProduct"
	log := slog.With("op", op)

	rs, err := h.reviews.ReviewsByProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}

	out := make([]Review, len(rs))
	for i, rv := range rs {
		out[i] = reviewToView(rv)
	}
	writeJSON(w, http.StatusOK, out)
}
