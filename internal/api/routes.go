package api

import "github.com/go-chi/chi/v5"

// SetupRoutes registers the sightings routes. Every path answers both with
// and without a trailing slash.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Get("/healthz", h.Health)

	router.Route("/sightings", func(r chi.Router) {
		r.Post("/", h.CreateSighting)
		r.Get("/", h.ListSightings)

		r.Get("/search", h.SearchSightings)
		r.Get("/search/", h.SearchSightings)

		r.Put("/{id}", h.UpdateSighting)
		r.Put("/{id}/", h.UpdateSighting)
		r.Delete("/{id}", h.DeleteSighting)
		r.Delete("/{id}/", h.DeleteSighting)
	})
}
