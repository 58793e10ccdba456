// Package httphandler exposes the store operations over REST. It is the
// stand-in for the storefront's presentation layer: every route maps onto
// one store or orchestrator call.
package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/marketflow/storefront/internal/core/domain"
)

type errorResp struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps domain errors onto status codes. Anything unexpected is
// reported generically and logged with full detail; the client never sees
// internals.
func writeError(w http.ResponseWriter, log *slog.Logger, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResp{"not found"})
	case errors.Is(err, domain.ErrMissingFields):
		writeJSON(w, http.StatusUnprocessableEntity,
			errorResp{"please fill in all required fields"})
	case errors.Is(err, domain.ErrEmptyCart):
		writeJSON(w, http.StatusConflict, errorResp{"cart is empty"})
	case errors.Is(err, domain.ErrNoCheckout):
		writeJSON(w, http.StatusConflict, errorResp{"no active checkout"})
	case errors.Is(err, domain.ErrBadTransition):
		writeJSON(w, http.StatusConflict, errorResp{"invalid status transition"})
	default:
		log.Error("request failed", "err", err)
		writeJSON(w, http.StatusInternalServerError,
			errorResp{"something went wrong"})
	}
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResp{"invalid JSON data"})
		return false
	}
	return true
}
