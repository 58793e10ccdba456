package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/marketflow/storefront/internal/core/domain"
	"github.com/marketflow/storefront/internal/core/port"
)

type OrdersHandler struct {
	orders port.OrderStore
}

func RegisterOrders(r chi.Router, orders port.OrderStore) {
	h := OrdersHandler{orders}
	r.Get("/v1/orders", h.list)
	r.Get("/v1/orders/{id}", h.byID)
	r.Patch("/v1/orders/{id}/status", h.updateStatus)
	r.Delete("/v1/orders/{id}", h.delete)
}

func (h OrdersHandler) list(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.list"
	log := slog.With("op", op)

	orders, err := h.orders.Orders(r.Context())
	if err != nil {
		writeError(w, log, err)
		return
	}

	out := make([]Order, len(orders))
	for i, o := range orders {
		out[i] = orderToView(o)
	}
	writeJSON(w, http.StatusOK, out)
}

func (h OrdersHandler) byID(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.byID"
	log := slog.With("op", op)

	o, err := h.orders.OrderByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, orderToView(o))
}

func (h OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.updateStatus"
	log := slog.With("op", op)

	var req UpdateStatusReq
	if !decodeJSON(w, r, &req) {
		return
	}

	status := domain.OrderStatus(req.Status)
	if !status.Valid() {
		writeJSON(w, http.StatusBadRequest, errorResp{"unknown status"})
		return
	}

	o, err := h.orders.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), status)
	if err != nil {
		writeError(w, log, err)
		return
	}

	log.Info("order status updated", "orderID", o.OrderID, "status", o.Status)
	writeJSON(w, http.StatusOK, orderToView(o))
}

// delete is administrative: placed orders never go away in the normal flow.
func (h OrdersHandler) delete(w http.ResponseWriter, r *http.Request) {
	const op = "OrdersHandler.delete"
	log := slog.With("op", op)

	if err := h.orders.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
