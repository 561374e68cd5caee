package handlers

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/jwtauth"
)

func (h *Handler) SetRoutes(r *chi.Mux) {
	r.Get("/", h.HealthHandler)

	r.Route("/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Login)
			r.Post("/signup", h.Signup)
		})

		r.Route("/cards", func(r chi.Router) {
			r.Post("/", h.AddCard)
			r.Get("/", h.ListCards)
			r.Get("/search", h.SearchCards)
			r.Get("/count", h.CountCards)
			r.Delete("/{id}", h.DeleteCard)
		})

		r.Route("/messages", func(r chi.Router) {
			r.Post("/", h.PostMessage)
			r.Get("/", h.ListMessages)
			r.Delete("/{id}", h.DeleteMessage)
		})

		r.Route("/updates", func(r chi.Router) {
			r.Get("/", h.ListUpdates)

			// Secure routes
			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(h.tokenAuth))
				r.Use(h.RequireAdmin)

				r.Post("/", h.AddUpdate)
				r.Delete("/{id}", h.DeleteUpdate)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		respondError(w, http.StatusNotFound, "route not found")
	})
}
