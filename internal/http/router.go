package httpapi

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	posmw "github.com/kavia-common/cafe-pos/pos-service-go/internal/middleware"
)

func NewRouter(
	cartHandler *CartHandler,
	menuHandler *MenuHandler,
	checkoutHandler *CheckoutHandler,
	salesHandler *SalesHandler,
	diagHandler *DiagHandler,
	logger *log.Logger,
) http.Handler {
	r := chi.NewRouter()
	r.Use(posmw.CorrelationID)
	r.Use(chimw.RealIP)
	r.Use(posmw.Recover(logger))

	r.Get("/health", Health)

	r.Route("/api", func(r chi.Router) {
		r.Route("/menu", func(r chi.Router) {
			r.Get("/", menuHandler.List)
			r.Post("/", menuHandler.Create)
			r.Get("/{itemId}", menuHandler.Get)
			r.Put("/{itemId}", menuHandler.Update)
			r.Delete("/{itemId}", menuHandler.Delete)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartHandler.GetCart)
			r.Delete("/", cartHandler.Clear)
			r.Post("/items", cartHandler.AddItem)
			r.Delete("/items/{itemId}", cartHandler.RemoveItem)
			r.Post("/items/{itemId}/increment", cartHandler.Increment)
			r.Post("/items/{itemId}/decrement", cartHandler.Decrement)
			r.Put("/items/{itemId}/note", cartHandler.SetItemNote)
		})

		r.Post("/checkout", checkoutHandler.Checkout)

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", salesHandler.ListOrders)
			r.Get("/{orderId}", salesHandler.GetOrder)
		})
		r.Get("/sales/summary", salesHandler.Summary)

		r.Get("/diagnostics", diagHandler.Diagnostics)
	})

	return r
}
