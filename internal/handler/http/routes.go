package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/user/sign-up", h.signUp)
		r.Post("/api/user/login", h.login)
	})

	// token introspection for other services
	router.Post("/api/token/validate", h.validateToken)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
