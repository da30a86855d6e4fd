package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/kavia-common/cafe-pos/pos-service-go/internal/menu"
)

type MenuHandler struct {
	repo menu.Repository
}

func NewMenuHandler(repo menu.Repository) *MenuHandler {
	return &MenuHandler{repo: repo}
}

func (h *MenuHandler) List(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("all") == ""

	items, err := h.repo.List(r.Context(), activeOnly)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load menu")
		return
	}
	if items == nil {
		items = []menu.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *MenuHandler) Get(w http.ResponseWriter, r *http.Request) {
	it, err := h.repo.GetByID(r.Context(), chi.URLParam(r, "itemId"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load menu item")
		return
	}
	if it == nil {
		writeError(w, http.StatusNotFound, "menu item not found")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *MenuHandler) Create(w http.ResponseWriter, r *http.Request) {
	var it menu.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	if it.Name == "" || it.PriceCents < 0 {
		writeError(w, http.StatusBadRequest, "name required and priceCents must be non-negative")
		return
	}

	if err := h.repo.Create(r.Context(), &it); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to create menu item")
		return
	}
	writeJSON(w, http.StatusCreated, it)
}

func (h *MenuHandler) Update(w http.ResponseWriter, r *http.Request) {
	var it menu.Item
	if err := json.NewDecoder(r.Body).Decode(&it); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json")
		return
	}
	it.ID = chi.URLParam(r, "itemId")
	if it.Name == "" || it.PriceCents < 0 {
		writeError(w, http.StatusBadRequest, "name required and priceCents must be non-negative")
		return
	}

	if err := h.repo.Update(r.Context(), &it); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeError(w, http.StatusNotFound, "menu item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to update menu item")
		return
	}
	writeJSON(w, http.StatusOK, it)
}

func (h *MenuHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.repo.Delete(r.Context(), chi.URLParam(r, "itemId")); err != nil {
		if errors.Is(err, menu.ErrNotFound) {
			writeError(w, http.StatusNotFound, "menu item not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "failed to delete menu item")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
