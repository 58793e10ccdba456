package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketflow/storefront/internal/core/port"
)

type CheckoutHandler struct {
	checkout port.Checkout
}

func RegisterCheckout(r chi.Router, checkout port.Checkout) {
	h := CheckoutHandler{checkout}
	r.Post("/v1/checkout", h.begin)
	r.Get("/v1/checkout", h.session)
	r.Put("/v1/checkout/shipping", h.setShipping)
	r.Put("/v1/checkout/billing", h.setBilling)
	r.Put("/v1/checkout/payment", h.setPayment)
	r.Post("/v1/checkout/next", h.next)
	r.Post("/v1/checkout/back", h.back)
	r.Get("/v1/checkout/quote", h.quote)
	r.Get("/v1/checkout/products", h.cartProducts)
	r.Post("/v1/checkout/order", h.placeOrder)
}

func (h CheckoutHandler) begin(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.begin"
	log := slog.With("op", op)

	sess, err := h.checkout.Begin(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionToView(sess))
}

func (h CheckoutHandler) session(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.session"
	log := slog.With("op", op)

	sess, err := h.checkout.Session()
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionToView(sess))
}

func (h CheckoutHandler) setShipping(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.setShipping"
	log := slog.With("op", op)

	var req ShippingInfo
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.checkout.SetShipping(req.toDomain()); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CheckoutHandler) setBilling(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.setBilling"
	log := slog.With("op", op)

	var req BillingInfo
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.checkout.SetBilling(req.toDomain()); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CheckoutHandler) setPayment(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.setPayment"
	log := slog.With("op", op)

	var req PaymentInfo
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := h.checkout.SetPayment(req.toDomain()); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CheckoutHandler) next(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.next"
	log := slog.With("op", op)

	sess, err := h.checkout.Next(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionToView(sess))
}

func (h CheckoutHandler) back(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.back"
	log := slog.With("op", op)

	sess, err := h.checkout.Back()
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionToView(sess))
}

func (h CheckoutHandler) quote(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.quote"
	log := slog.With("op", op)

	q, err := h.checkout.Quote(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteToView(q))
}

func (h CheckoutHandler) cartProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.cartProducts"
	log := slog.With("op", op)

	ps, err := h.checkout.CartProducts(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	out := make(map[string]Product, len(ps))
	for id, p := range ps {
		out[id] = productToView(p)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h CheckoutHandler) placeOrder(w http.ResponseWriter, r *http.Request) {
	const op = "CheckoutHandler.placeOrder"
	log := slog.With("op", op)

	order, err := h.checkout.PlaceOrder(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderToView(order))
}
