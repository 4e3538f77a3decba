package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	mux := chi.NewRouter()
	mux.Use(mw.Log, mw.Recover)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Handle("/metrics", promhttp.Handler())

		r.Get("/state", h.State)
		r.Post("/refresh", h.Refresh)

		r.Post("/login", h.Login)
		r.Post("/logout", h.Logout)
		r.Post("/register", h.Register)
		r.Put("/profile/password", h.ChangePassword)

		r.Post("/buildings", h.CreateBuilding)
		r.Put("/buildings/{id}", h.UpdateBuilding)
		r.Post("/doormen", h.RegisterDoorman)
		r.Put("/doormen/{id}", h.EditDoorman)
		r.Post("/visitors", h.CreateVisitor)
		r.Put("/visitors/{id}", h.UpdateVisitor)
		r.Post("/users", h.CreateUser)

		r.Route("/visits", func(r chi.Router) {
			r.Post("/", h.CheckIn)
			r.Post("/{id}/checkout", h.CheckOut)
			r.Put("/{id}", h.UpdateVisit)
		})
	})

	return mux
}
