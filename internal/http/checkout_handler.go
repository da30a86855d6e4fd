package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/checkout"
	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
)

type CheckoutService interface {
	Checkout(ctx context.Context, store *cart.Store, tender order.Tender) (*order.Order, error)
}

type CheckoutHandler struct {
	carts   *cart.Manager
	service CheckoutService
}

func NewCheckoutHandler(carts *cart.Manager, service CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{carts: carts, service: service}
}

func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing "+HeaderSessionID+" header")
		return
	}

	var body struct {
		TenderType string `json:"tenderType"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	store := h.carts.Get(r.Context(), sessionID)

	o, err := h.service.Checkout(r.Context(), store, order.Tender(body.TenderType))
	if err != nil {
		switch {
		case errors.Is(err, checkout.ErrUnknownTender):
			writeError(w, http.StatusBadRequest, "unknown tender type")
		case errors.Is(err, checkout.ErrEmptyCart):
			writeError(w, http.StatusConflict, "cart is empty")
		default:
			writeError(w, http.StatusInternalServerError, "failed to place order")
		}
		return
	}

	writeJSON(w, http.StatusCreated, o)
}
