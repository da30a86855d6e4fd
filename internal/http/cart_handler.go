package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/cart"
)

// HeaderSessionID identifies the register tab. Each session gets its own
// cart; carts are never shared across sessions.
const HeaderSessionID = "X-Session-Id"

type CartHandler struct {
	carts *cart.Manager
}

func NewCartHandler(carts *cart.Manager) *CartHandler {
	return &CartHandler{carts: carts}
}

// cartView is what every cart endpoint returns: the items plus the totals
// derived from them.
type cartView struct {
	SessionID string          `json:"sessionId"`
	Items     []cart.LineItem `json:"items"`
	cart.Totals
}

func (h *CartHandler) view(sessionID string, snap cart.Snapshot, totals cart.Totals) cartView {
	return cartView{SessionID: sessionID, Items: snap.Items, Totals: totals}
}

// flexID accepts the id as either a JSON string or a JSON number, the two
// forms menu rows have used over time, and normalizes to a string.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*f = flexID(n.String())
		return nil
	}
	return fmt.Errorf("id must be a string or number")
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing "+HeaderSessionID+" header")
		return
	}

	store := h.carts.Get(r.Context(), sessionID)
	snap, totals := store.View()
	writeJSON(w, http.StatusOK, h.view(sessionID, snap, totals))
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing "+HeaderSessionID+" header")
		return
	}

	var body struct {
		ID             flexID `json:"id"`
		Name           string `json:"name"`
		UnitPriceCents *int64 `json:"unitPriceCents"`
		Quantity       *int64 `json:"quantity"`
		Notes          string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	cand := cart.Candidate{
		ID:    string(body.ID),
		Name:  body.Name,
		Notes: body.Notes,
	}
	if body.UnitPriceCents != nil {
		cand.UnitPriceCents = *body.UnitPriceCents
	} else {
		cand.UnitPriceCents = -1
	}
	if body.Quantity != nil {
		cand.Quantity = *body.Quantity
	}

	// An invalid candidate is a no-op by contract, so the response is the
	// unchanged cart rather than an error.
	store := h.carts.Get(r.Context(), sessionID)
	store.AddItem(r.Context(), cand)
	snap, totals := store.View()
	writeJSON(w, http.StatusOK, h.view(sessionID, snap, totals))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	h.mutateByID(w, r, func(store *cart.Store, id string) {
		store.RemoveItem(r.Context(), id)
	})
}

func (h *CartHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.mutateByID(w, r, func(store *cart.Store, id string) {
		store.Increment(r.Context(), id)
	})
}

func (h *CartHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.mutateByID(w, r, func(store *cart.Store, id string) {
		store.Decrement(r.Context(), id)
	})
}

func (h *CartHandler) SetItemNote(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing "+HeaderSessionID+" header")
		return
	}

	var body struct {
		Note string `json:"note"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}

	store := h.carts.Get(r.Context(), sessionID)
	store.SetItemNote(r.Context(), chi.URLParam(r, "itemId"), body.Note)
	snap, totals := store.View()
	writeJSON(w, http.StatusOK, h.view(sessionID, snap, totals))
}

func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing "+HeaderSessionID+" header")
		return
	}

	store := h.carts.Get(r.Context(), sessionID)
	store.Clear(r.Context())
	snap, totals := store.View()
	writeJSON(w, http.StatusOK, h.view(sessionID, snap, totals))
}

func (h *CartHandler) mutateByID(w http.ResponseWriter, r *http.Request, op func(store *cart.Store, id string)) {
	sessionID := r.Header.Get(HeaderSessionID)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing "+HeaderSessionID+" header")
		return
	}

	store := h.carts.Get(r.Context(), sessionID)
	op(store, chi.URLParam(r, "itemId"))
	snap, totals := store.View()
	writeJSON(w, http.StatusOK, h.view(sessionID, snap, totals))
}
