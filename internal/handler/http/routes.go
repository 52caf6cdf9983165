package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.pipeline()...)

	router.Get("/users", h.handle(h.listUsers))
	router.Post("/users", h.handle(h.createUser))
	router.Get("/users/{id}", h.handle(h.getUser))
	router.Put("/users/{id}", h.handle(h.updateUser))
	router.Delete("/users/{id}", h.handle(h.deleteUser))

	router.Get("/version", h.handle(h.getServerVersion))

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, http.StatusText(http.StatusNotFound))
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
	})

	return router
}
