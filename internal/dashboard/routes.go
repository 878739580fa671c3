package dashboard

import "github.com/go-chi/chi/v5"

// MountRoutes attaches the dashboard and read-only catalogue routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/dashboard", func(r chi.Router) {
		r.Get("/summary", h.Summary)
		r.Get("/recent-sales", h.RecentSales)
		r.Get("/top-customers", h.TopCustomers)
		r.Get("/top-products", h.TopProducts)
		r.Post("/warmup", h.Warmup)
	})
	r.Get("/products", h.Products)
	r.Get("/sales", h.Sales)
}
