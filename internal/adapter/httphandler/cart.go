package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/port"
)

type CartHandler struct {
	cart     port.CartStore
	products port.ProductReader
}

func RegisterCart(
	r chi.Router, cart port.CartStore, products port.ProductReader,
) {
	h := CartHandler{cart, products}
	r.Get("/v1/cart", h.get)
	r.Post("/v1/cart/items", h.add)
	r.Put("/v1/cart/items", h.setQuantity)
	r.Delete("/v1/cart/items", h.remove)
	r.Delete("/v1/cart", h.clear)
}

func (h CartHandler) get(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.get"
	log := slog.With("op", op)

	items, err := h.cart.Items(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, Cart{
		Items: linesToView(items),
		Total: domain.CartTotal(items),
		Count: domain.CartCount(items),
	})
}

// add puts a product selection into the cart. The unit price defaults to
// the catalog price when the request leaves it unset; either way the line
// keeps whatever price it was first added with.
func (h CartHandler) add(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.add"
	log := slog.With("op", op)

	var req AddCartLineReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" || req.Quantity < 1 {
		writeJSON(w, http.StatusBadRequest, errorResp{"missing fields"})
		return
	}

	p, err := h.products.ProductByID(r.Context(), req.ProductID)
	if err != nil {
		writeError(w, log, err)
		return
	}
	if !p.HasSize(req.Size) {
		writeJSON(w, http.StatusBadRequest, errorResp{"unknown size"})
		return
	}

	price := req.Price
	if price == 0 {
		price = p.Price
	}

	items, err := h.cart.Add(r.Context(), domain.CartLine{
		ProductID: req.ProductID,
		Size:      req.Size,
		Quantity:  req.Quantity,
		Price:     price,
	})
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("added to cart", "productID", req.ProductID, "size", req.Size,
		"quantity", req.Quantity)
	writeJSON(w, http.StatusOK, linesToView(items))
}

func (h CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.setQuantity"
	log := slog.With("op", op)

	var req SetQuantityReq
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.ProductID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp{"missing fields"})
		return
	}

	items, err := h.cart.SetQuantity(
		r.Context(), req.ProductID, req.Size, req.Quantity,
	)
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, linesToView(items))
}

func (h CartHandler) remove(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.remove"
	log := slog.With("op", op)

	query := r.URL.Query()
	productID := query.Get("productId")
	if productID == "" {
		writeJSON(w, http.StatusBadRequest, errorResp{"missing productId"})
		return
	}

	items, err := h.cart.Remove(r.Context(), productID, query.Get("size"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, linesToView(items))
}

func (h CartHandler) clear(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.clear"
	log := slog.With("op", op)

	if err := h.cart.Clear(r.Context()); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
