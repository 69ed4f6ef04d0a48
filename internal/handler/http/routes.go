package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
	}))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
		r.Post("/auth/refresh", h.refresh)
		r.Get("/version", h.getServerVersion)
	})

	// routes protected by the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/chat", h.sendMessage)
		r.Get("/chat/history", h.getHistory)
		r.Delete("/chat/history", h.clearHistory)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
