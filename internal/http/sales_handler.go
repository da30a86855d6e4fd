package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/order"
)

type SalesHandler struct {
	orders order.Repository
}

func NewSalesHandler(orders order.Repository) *SalesHandler {
	return &SalesHandler{orders: orders}
}

func (h *SalesHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > 200 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 200")
			return
		}
		limit = n
	}

	orders, err := h.orders.ListRecent(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load orders")
		return
	}
	if orders == nil {
		orders = []order.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *SalesHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.orders.GetByID(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load order")
		return
	}
	if o == nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// Summary aggregates sales since the given time, defaulting to the start of
// the current day (UTC).
func (h *SalesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	since := time.Now().UTC().Truncate(24 * time.Hour)
	if v := r.URL.Query().Get("since"); v != "" {
		parsed, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "since must be RFC3339")
			return
		}
		since = parsed
	}

	s, err := h.orders.Summarize(r.Context(), since)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to summarize sales")
		return
	}
	writeJSON(w, http.StatusOK, s)
}
